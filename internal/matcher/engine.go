package matcher

import (
	"math"
	"sort"
	"time"

	"github.com/arcc-research/grantmatch/internal/taxonomy"
)

// Hard filter thresholds. Candidates below either line are excluded outright
// rather than scored low.
const (
	DefaultMinSemanticScore = 0.1
	DefaultMinTimeScore     = 0.2
)

// Engine scores funding opportunities against a PI profile. It is stateless
// across calls apart from its configuration and safe for reuse across
// batches; one ranking call reads the clock exactly once so all candidates
// in a batch see the same "today".
type Engine struct {
	tax         *taxonomy.Taxonomy
	minSemantic float64
	minTime     float64
	now         func() time.Time
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock overrides the engine's time source. Tests use this to pin
// "today".
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// WithThresholds overrides the filter gate's minimum semantic and time
// scores.
func WithThresholds(minSemantic, minTime float64) Option {
	return func(e *Engine) {
		e.minSemantic = minSemantic
		e.minTime = minTime
	}
}

// NewEngine builds an Engine over the given taxonomy.
func NewEngine(tax *taxonomy.Taxonomy, opts ...Option) *Engine {
	e := &Engine{
		tax:         tax,
		minSemantic: DefaultMinSemanticScore,
		minTime:     DefaultMinTimeScore,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ScoreCandidate computes the full score breakdown for one candidate. An
// all-zero weight vector falls back to the defaults; anything else is
// normalized to sum to 1.0.
func (e *Engine) ScoreCandidate(profile *Profile, c Candidate, weights Weights) Result {
	return e.scoreAt(profile, c, weights, e.now())
}

// PassesFilters runs the candidate through the binary filter gate: the
// opportunity must be posted or forecasted, have at least minimal topical
// overlap with the profile, and at least minimal timing fit.
func (e *Engine) PassesFilters(profile *Profile, c Candidate) bool {
	return e.passesAt(profile, c, e.now())
}

// Rank filters, scores, and sorts the candidates, highest overall score
// first, returning at most limit results (all of them when limit <= 0).
// Candidates that fail the filter gate are absent from the output, not
// scored as zero. Ties keep their original retrieval order.
func (e *Engine) Rank(profile *Profile, candidates []Candidate, weights Weights, limit int) []Result {
	now := e.now()

	results := make([]Result, 0, len(candidates))
	for _, c := range candidates {
		if !e.passesAt(profile, c, now) {
			continue
		}
		results = append(results, e.scoreAt(profile, c, weights, now))
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].OverallScore > results[j].OverallScore
	})

	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	return results
}

func (e *Engine) passesAt(profile *Profile, c Candidate, now time.Time) bool {
	if !c.Status.Open() {
		return false
	}
	if Jaccard(profile.Categories, e.CandidateCategories(c)) < e.minSemantic {
		return false
	}
	if TimeScore(profile.Projects, c.OpenDate, c.CloseDate, now) < e.minTime {
		return false
	}
	return true
}

func (e *Engine) scoreAt(profile *Profile, c Candidate, weights Weights, now time.Time) Result {
	if weights.IsZero() {
		weights = DefaultWeights()
	}
	weights = weights.Normalize()

	semantic := Jaccard(profile.Categories, e.CandidateCategories(c))
	timeScore := TimeScore(profile.Projects, c.OpenDate, c.CloseDate, now)
	eligibility := EligibilityScore(profile.GrantHistory, c.AgencyName)

	overall := semantic*weights.Semantic +
		timeScore*weights.Time +
		eligibility*weights.Eligibility

	return Result{
		CandidateID:       c.ID,
		Number:            c.Number,
		Title:             c.Title,
		AgencyName:        c.AgencyName,
		OverallScore:      round3(overall),
		SemanticScore:     round3(semantic),
		TimeScore:         round3(timeScore),
		EligibilityScore:  round3(eligibility),
		ProfileCategories: profile.Categories.Sorted(),
		WeightsUsed:       weights,
	}
}

// round3 rounds to 3 decimal places for display stability.
func round3(f float64) float64 {
	return math.Round(f*1000) / 1000
}
