package matcher

import (
	"context"
	"fmt"

	"github.com/arcc-research/grantmatch/internal/taxonomy"
)

// ProfileSource provides read access to a PI's tracked records. The store
// package implements it; tests substitute fakes.
type ProfileSource interface {
	ProjectsForPerson(ctx context.Context, personID string) ([]Project, error)
	PublicationsForPerson(ctx context.Context, personID string) ([]Publication, error)
	GrantHistoryForPerson(ctx context.Context, personID string) ([]GrantRecord, error)
}

// ProfileBuilder derives research profiles from a PI's projects and
// publications. Build the profile once per PI per batch and reuse it for
// every candidate in that batch; the profile itself does no I/O after
// construction.
type ProfileBuilder struct {
	tax    *taxonomy.Taxonomy
	source ProfileSource
}

// NewProfileBuilder builds a ProfileBuilder over the given taxonomy and
// record source.
func NewProfileBuilder(tax *taxonomy.Taxonomy, source ProfileSource) *ProfileBuilder {
	return &ProfileBuilder{tax: tax, source: source}
}

// Build fetches the PI's projects, publications, and grant history and
// reduces them to a research profile. A PI with no linked records (or an
// unknown PI) gets an empty category set, not an error: downstream the empty
// profile scores 0 semantic similarity against every candidate and fails the
// filter gate, so unknown PIs receive no matches rather than arbitrary ones.
// Store-level errors surface unchanged.
func (b *ProfileBuilder) Build(ctx context.Context, personID string) (*Profile, error) {
	projects, err := b.source.ProjectsForPerson(ctx, personID)
	if err != nil {
		return nil, fmt.Errorf("failed to load projects: %w", err)
	}

	publications, err := b.source.PublicationsForPerson(ctx, personID)
	if err != nil {
		return nil, fmt.Errorf("failed to load publications: %w", err)
	}

	history, err := b.source.GrantHistoryForPerson(ctx, personID)
	if err != nil {
		return nil, fmt.Errorf("failed to load grant history: %w", err)
	}

	categories := make(taxonomy.CategorySet)
	for _, p := range projects {
		categories = categories.Union(b.tax.Extract(p.Title))
		categories = categories.Union(b.tax.Extract(p.Abstract))
	}
	for _, pub := range publications {
		categories = categories.Union(b.tax.Extract(pub.Title))
		categories = categories.Union(b.tax.Extract(pub.Topic))
	}

	return &Profile{
		PersonID:     personID,
		Categories:   categories,
		Projects:     projects,
		GrantHistory: history,
	}, nil
}
