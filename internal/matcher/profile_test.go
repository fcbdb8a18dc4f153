package matcher

import (
	"context"
	"errors"
	"reflect"
	"testing"
)

// fakeSource returns canned records for a single person ID.
type fakeSource struct {
	personID     string
	projects     []Project
	publications []Publication
	history      []GrantRecord
	err          error
}

func (f *fakeSource) ProjectsForPerson(_ context.Context, personID string) ([]Project, error) {
	if f.err != nil {
		return nil, f.err
	}
	if personID != f.personID {
		return nil, nil
	}
	return f.projects, nil
}

func (f *fakeSource) PublicationsForPerson(_ context.Context, personID string) ([]Publication, error) {
	if f.err != nil {
		return nil, f.err
	}
	if personID != f.personID {
		return nil, nil
	}
	return f.publications, nil
}

func (f *fakeSource) GrantHistoryForPerson(_ context.Context, personID string) ([]GrantRecord, error) {
	if f.err != nil {
		return nil, f.err
	}
	if personID != f.personID {
		return nil, nil
	}
	return f.history, nil
}

func TestProfileBuilder_Build(t *testing.T) {
	source := &fakeSource{
		personID: "pi-1",
		projects: []Project{
			{Title: "Carotid stenosis progression", Abstract: "ultrasound surveillance cohort", Stage: StageDataCollection},
		},
		publications: []Publication{
			{Title: "Outcomes after aortic repair", Topic: "clinical outcomes"},
		},
		history: []GrantRecord{
			{Agency: "NIH", Status: GrantStatusCompleted},
		},
	}
	b := NewProfileBuilder(matcherTaxonomy(t), source)

	profile, err := b.Build(context.Background(), "pi-1")
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if profile.PersonID != "pi-1" {
		t.Errorf("PersonID = %q, want pi-1", profile.PersonID)
	}

	// Project title, project abstract, publication title, and publication
	// topic all feed the category set.
	want := []string{"aortic", "carotid", "clinical", "imaging"}
	if got := profile.Categories.Sorted(); !reflect.DeepEqual(got, want) {
		t.Errorf("Categories = %v, want %v", got, want)
	}

	if len(profile.Projects) != 1 || len(profile.GrantHistory) != 1 {
		t.Errorf("Projects = %d, GrantHistory = %d, want 1 and 1", len(profile.Projects), len(profile.GrantHistory))
	}
}

func TestProfileBuilder_Build_UnknownPerson(t *testing.T) {
	b := NewProfileBuilder(matcherTaxonomy(t), &fakeSource{personID: "pi-1"})

	profile, err := b.Build(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("Build() error = %v, want nil for unknown person", err)
	}
	if profile.Categories.Len() != 0 {
		t.Errorf("Categories = %v, want empty", profile.Categories.Sorted())
	}
	if len(profile.Projects) != 0 || len(profile.GrantHistory) != 0 {
		t.Error("unknown person has records attached")
	}
}

func TestProfileBuilder_Build_SourceError(t *testing.T) {
	wantErr := errors.New("db locked")
	b := NewProfileBuilder(matcherTaxonomy(t), &fakeSource{err: wantErr})

	if _, err := b.Build(context.Background(), "pi-1"); !errors.Is(err, wantErr) {
		t.Errorf("Build() error = %v, want wrapped %v", err, wantErr)
	}
}
