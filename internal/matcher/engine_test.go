package matcher

import (
	"testing"
	"time"

	"github.com/arcc-research/grantmatch/internal/taxonomy"
)

func matcherTaxonomy(t *testing.T) *taxonomy.Taxonomy {
	t.Helper()
	tax, err := taxonomy.Parse([]byte(`{
		"vascular": {"keywords": ["vascular", "artery"]},
		"aortic":   {"keywords": ["aortic", "aorta"]},
		"imaging":  {"keywords": ["ultrasound", "mri"]},
		"clinical": {"keywords": ["clinical", "patient"]},
		"carotid":  {"keywords": ["carotid"]}
	}`))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	return tax
}

func testEngine(t *testing.T, opts ...Option) *Engine {
	t.Helper()
	opts = append([]Option{WithClock(func() time.Time { return testNow })}, opts...)
	return NewEngine(matcherTaxonomy(t), opts...)
}

func TestEngine_ScoreCandidate(t *testing.T) {
	e := testEngine(t)

	// Profile covers four categories; the candidate's text hits three of
	// them plus one more, for a Jaccard of 3/5 = 0.6. One planning project
	// against an opportunity opening today contributes 0.4, and an
	// all-successful NIH history against an NIH candidate scores 1.0.
	profile := &Profile{
		PersonID:   "pi-1",
		Categories: taxonomy.NewCategorySet("vascular", "aortic", "imaging", "clinical"),
		Projects: []Project{
			{Title: "aortic screening pilot", Stage: StagePlanning},
		},
		GrantHistory: []GrantRecord{
			{Agency: "NIH", Status: GrantStatusActive},
			{Agency: "NIH", Status: GrantStatusCompleted},
		},
	}
	c := Candidate{
		ID:          "opp-1",
		Title:       "Vascular imaging of carotid disease",
		Description: "clinical applications of ultrasound",
		Status:      StatusPosted,
		AgencyName:  "NIH",
		OpenDate:    daysFromNow(0),
	}

	r := e.ScoreCandidate(profile, c, DefaultWeights())

	if r.SemanticScore != 0.6 {
		t.Errorf("SemanticScore = %v, want 0.6", r.SemanticScore)
	}
	if r.TimeScore != 0.4 {
		t.Errorf("TimeScore = %v, want 0.4", r.TimeScore)
	}
	if r.EligibilityScore != 1.0 {
		t.Errorf("EligibilityScore = %v, want 1.0", r.EligibilityScore)
	}
	// 0.6*0.5 + 0.4*0.3 + 1.0*0.2
	if r.OverallScore != 0.5 {
		t.Errorf("OverallScore = %v, want 0.5", r.OverallScore)
	}
	if r.CandidateID != "opp-1" {
		t.Errorf("CandidateID = %q, want opp-1", r.CandidateID)
	}
}

func TestEngine_ScoreCandidate_ZeroWeightsFallBack(t *testing.T) {
	e := testEngine(t)

	profile := &Profile{
		Categories: taxonomy.NewCategorySet("vascular"),
		GrantHistory: []GrantRecord{
			{Agency: "NIH", Status: GrantStatusActive},
		},
	}
	c := Candidate{
		Title:      "vascular research",
		Status:     StatusPosted,
		AgencyName: "NIH",
	}

	got := e.ScoreCandidate(profile, c, Weights{})
	want := e.ScoreCandidate(profile, c, DefaultWeights())
	if got.OverallScore != want.OverallScore {
		t.Errorf("zero weights OverallScore = %v, want %v (defaults)", got.OverallScore, want.OverallScore)
	}
	if got.WeightsUsed != DefaultWeights() {
		t.Errorf("WeightsUsed = %+v, want defaults", got.WeightsUsed)
	}
}

func TestEngine_PassesFilters(t *testing.T) {
	e := testEngine(t)

	profile := &Profile{
		Categories: taxonomy.NewCategorySet("vascular", "clinical"),
		Projects: []Project{
			{Title: "registry build-out", Stage: StagePlanning},
		},
	}

	passing := Candidate{
		Title:    "vascular clinical research program",
		Status:   StatusPosted,
		OpenDate: daysFromNow(30),
	}

	tests := []struct {
		name   string
		mutate func(c *Candidate)
		want   bool
	}{
		{
			name:   "passes all gates",
			mutate: func(c *Candidate) {},
			want:   true,
		},
		{
			name:   "forecasted also passes",
			mutate: func(c *Candidate) { c.Status = StatusForecasted },
			want:   true,
		},
		{
			name:   "closed rejected",
			mutate: func(c *Candidate) { c.Status = StatusClosed },
			want:   false,
		},
		{
			name:   "archived rejected",
			mutate: func(c *Candidate) { c.Status = StatusArchived },
			want:   false,
		},
		{
			name: "no topical overlap rejected",
			mutate: func(c *Candidate) {
				c.Title = "quantum networking testbed"
				c.Description = ""
			},
			want: false,
		},
		{
			name:   "opens too far out rejected",
			mutate: func(c *Candidate) { c.OpenDate = daysFromNow(365) },
			want:   false,
		},
		{
			name:   "nil open date rejected",
			mutate: func(c *Candidate) { c.OpenDate = nil },
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := passing
			tt.mutate(&c)
			if got := e.PassesFilters(profile, c); got != tt.want {
				t.Errorf("PassesFilters() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEngine_PassesFilters_EmptyProfile(t *testing.T) {
	e := testEngine(t)

	profile := &Profile{Categories: taxonomy.NewCategorySet()}
	c := Candidate{
		Title:    "vascular clinical research program",
		Status:   StatusPosted,
		OpenDate: daysFromNow(0),
	}

	if e.PassesFilters(profile, c) {
		t.Error("PassesFilters() = true for empty profile, want false")
	}
}

func TestEngine_Rank(t *testing.T) {
	e := testEngine(t)

	profile := &Profile{
		Categories: taxonomy.NewCategorySet("vascular", "aortic"),
		Projects: []Project{
			{Title: "aneurysm growth model", Stage: StagePlanning},
		},
		GrantHistory: []GrantRecord{
			{Agency: "NIH", Status: GrantStatusActive},
		},
	}

	candidates := []Candidate{
		{
			ID:       "broad",
			Title:    "vascular biology",
			Status:   StatusPosted,
			OpenDate: daysFromNow(30),
		},
		{
			ID:         "exact",
			Title:      "aortic and vascular disease",
			Status:     StatusPosted,
			AgencyName: "NIH",
			OpenDate:   daysFromNow(30),
		},
		{
			ID:       "closed",
			Title:    "aortic and vascular disease",
			Status:   StatusClosed,
			OpenDate: daysFromNow(30),
		},
		{
			ID:     "off-topic",
			Title:  "marine ecology survey",
			Status: StatusPosted,
		},
	}

	results := e.Rank(profile, candidates, DefaultWeights(), 0)

	if len(results) != 2 {
		t.Fatalf("Rank() returned %d results, want 2", len(results))
	}
	if results[0].CandidateID != "exact" {
		t.Errorf("Rank()[0] = %q, want exact", results[0].CandidateID)
	}
	if results[1].CandidateID != "broad" {
		t.Errorf("Rank()[1] = %q, want broad", results[1].CandidateID)
	}
	for _, r := range results {
		if r.CandidateID == "closed" || r.CandidateID == "off-topic" {
			t.Errorf("filtered candidate %q present in results", r.CandidateID)
		}
	}
}

func TestEngine_Rank_StableTiesAndLimit(t *testing.T) {
	e := testEngine(t)

	profile := &Profile{
		Categories: taxonomy.NewCategorySet("vascular"),
		Projects: []Project{
			{Title: "device study", Stage: StagePlanning},
		},
	}

	// Identical candidates score identically; stable sort keeps input order.
	var candidates []Candidate
	for _, id := range []string{"first", "second", "third"} {
		candidates = append(candidates, Candidate{
			ID:       id,
			Title:    "vascular research",
			Status:   StatusPosted,
			OpenDate: daysFromNow(10),
		})
	}

	results := e.Rank(profile, candidates, DefaultWeights(), 0)
	if len(results) != 3 {
		t.Fatalf("Rank() returned %d results, want 3", len(results))
	}
	for i, id := range []string{"first", "second", "third"} {
		if results[i].CandidateID != id {
			t.Errorf("Rank()[%d] = %q, want %q", i, results[i].CandidateID, id)
		}
	}

	limited := e.Rank(profile, candidates, DefaultWeights(), 2)
	if len(limited) != 2 {
		t.Errorf("Rank(limit=2) returned %d results, want 2", len(limited))
	}

	// Ranking the same batch twice gives identical output.
	again := e.Rank(profile, candidates, DefaultWeights(), 0)
	for i := range results {
		if results[i].CandidateID != again[i].CandidateID || results[i].OverallScore != again[i].OverallScore {
			t.Errorf("Rank() not deterministic at index %d", i)
		}
	}
}

func TestEngine_WithThresholds(t *testing.T) {
	profile := &Profile{
		Categories: taxonomy.NewCategorySet("vascular", "aortic", "imaging", "clinical"),
		Projects: []Project{
			{Title: "screening pilot", Stage: StageDataCollection},
		},
	}
	// Jaccard 1/4 = 0.25, time score 0.3.
	c := Candidate{
		Title:    "vascular program",
		Status:   StatusPosted,
		OpenDate: daysFromNow(10),
	}

	if !testEngine(t).PassesFilters(profile, c) {
		t.Error("default thresholds: PassesFilters() = false, want true")
	}
	strict := testEngine(t, WithThresholds(0.3, 0.2))
	if strict.PassesFilters(profile, c) {
		t.Error("raised semantic threshold: PassesFilters() = true, want false")
	}
}
