package store

import (
	"context"
	"time"

	"github.com/arcc-research/grantmatch/internal/matcher"
)

// Source adapts the store to the matcher's ProfileSource interface,
// converting stored rows into the matcher's pure value types. Malformed or
// missing dates become nil rather than errors; the scorers treat them as "no
// signal".
type Source struct {
	db *DB
}

// NewSource builds a Source over the given database.
func NewSource(db *DB) *Source {
	return &Source{db: db}
}

// ProjectsForPerson returns the person's projects as matcher values.
func (s *Source) ProjectsForPerson(ctx context.Context, personID string) ([]matcher.Project, error) {
	rows, err := s.db.ProjectsForPerson(ctx, personID)
	if err != nil {
		return nil, err
	}

	projects := make([]matcher.Project, 0, len(rows))
	for _, r := range rows {
		projects = append(projects, matcher.Project{
			Title:     r.Title,
			Abstract:  deref(r.Abstract),
			Stage:     matcher.Stage(r.Stage),
			StartDate: parseDate(r.StartDate),
			EndDate:   parseDate(r.EndDate),
		})
	}
	return projects, nil
}

// PublicationsForPerson returns the person's publications as matcher values.
func (s *Source) PublicationsForPerson(ctx context.Context, personID string) ([]matcher.Publication, error) {
	rows, err := s.db.PublicationsForPerson(ctx, personID)
	if err != nil {
		return nil, err
	}

	publications := make([]matcher.Publication, 0, len(rows))
	for _, r := range rows {
		publications = append(publications, matcher.Publication{
			Title: r.Title,
			Topic: deref(r.Topic),
		})
	}
	return publications, nil
}

// GrantHistoryForPerson returns the person's grant history as matcher values.
func (s *Source) GrantHistoryForPerson(ctx context.Context, personID string) ([]matcher.GrantRecord, error) {
	rows, err := s.db.GrantHistoryForPerson(ctx, personID)
	if err != nil {
		return nil, err
	}

	records := make([]matcher.GrantRecord, 0, len(rows))
	for _, r := range rows {
		records = append(records, matcher.GrantRecord{
			Agency:    deref(r.Agency),
			Mechanism: deref(r.Mechanism),
			Status:    deref(r.Status),
		})
	}
	return records, nil
}

// CandidateFromOpportunity converts a stored opportunity into a matcher
// candidate.
func CandidateFromOpportunity(o Opportunity) matcher.Candidate {
	return matcher.Candidate{
		ID:          o.ID,
		Number:      deref(o.OpportunityNumber),
		Title:       o.Title,
		Description: deref(o.Description),
		Status:      matcher.CandidateStatus(o.Status),
		AgencyName:  deref(o.AgencyName),
		Mechanism:   deref(o.Mechanism),
		OpenDate:    parseDate(o.OpenDate),
		CloseDate:   parseDate(o.CloseDate),
	}
}

// parseDate parses a stored YYYY-MM-DD date. Missing or malformed values
// yield nil so the corresponding scorer contribution is skipped.
func parseDate(s *string) *time.Time {
	if s == nil || *s == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", *s)
	if err != nil {
		return nil
	}
	return &t
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
