package matcher

import (
	"time"

	"github.com/arcc-research/grantmatch/internal/taxonomy"
)

// Stage is the lifecycle phase of a research project.
type Stage string

const (
	StageIdea           Stage = "idea"
	StagePlanning       Stage = "planning"
	StageDataCollection Stage = "data-collection"
	StageAnalysis       Stage = "analysis"
	StageManuscript     Stage = "manuscript"
	StageSubmitted      Stage = "submitted"
	StageFunded         Stage = "funded"
	StageInactive       Stage = "inactive"
)

// ActiveNeed reports whether a project in this stage still needs funding.
// Only these stages contribute to the temporal alignment score.
func (s Stage) ActiveNeed() bool {
	switch s {
	case StageIdea, StagePlanning, StageDataCollection, StageAnalysis:
		return true
	}
	return false
}

// CandidateStatus is the publication state of a funding opportunity.
type CandidateStatus string

const (
	StatusPosted     CandidateStatus = "posted"
	StatusForecasted CandidateStatus = "forecasted"
	StatusClosed     CandidateStatus = "closed"
	StatusArchived   CandidateStatus = "archived"
)

// Open reports whether the opportunity is still worth applying to.
func (s CandidateStatus) Open() bool {
	return s == StatusPosted || s == StatusForecasted
}

// Grant history statuses that count as successful outcomes.
const (
	GrantStatusActive    = "active"
	GrantStatusCompleted = "completed"
)

// Project is one research project linked to a PI.
type Project struct {
	Title     string     `json:"title"`
	Abstract  string     `json:"abstract,omitempty"`
	Stage     Stage      `json:"stage"`
	StartDate *time.Time `json:"start_date,omitempty"`
	EndDate   *time.Time `json:"end_date,omitempty"`
}

// Publication is one publication authored by a PI.
type Publication struct {
	Title string `json:"title"`
	Topic string `json:"topic,omitempty"`
}

// GrantRecord is one grant historically associated with a PI through any of
// their projects.
type GrantRecord struct {
	Agency    string `json:"agency,omitempty"`
	Mechanism string `json:"mechanism,omitempty"`
	Status    string `json:"status,omitempty"`
}

// Profile is a PI's research footprint: the taxonomy categories derived from
// their projects and publications, plus the raw records the temporal and
// eligibility scorers need. Built once per scoring batch and treated as
// immutable; rebuilding replaces it wholesale.
type Profile struct {
	PersonID     string               `json:"person_id"`
	Categories   taxonomy.CategorySet `json:"categories"`
	Projects     []Project            `json:"projects,omitempty"`
	GrantHistory []GrantRecord        `json:"grant_history,omitempty"`
}

// Candidate is one funding opportunity under evaluation.
type Candidate struct {
	ID          string          `json:"id"`
	Number      string          `json:"opportunity_number,omitempty"`
	Title       string          `json:"title"`
	Description string          `json:"description,omitempty"`
	Status      CandidateStatus `json:"status"`
	AgencyName  string          `json:"agency_name,omitempty"`
	Mechanism   string          `json:"mechanism,omitempty"`
	OpenDate    *time.Time      `json:"open_date,omitempty"`
	CloseDate   *time.Time      `json:"close_date,omitempty"`
}

// Result is the full score breakdown for one (profile, candidate) pair.
// Results are transient; persisting them is the caller's concern.
type Result struct {
	CandidateID       string   `json:"candidate_id"`
	Number            string   `json:"opportunity_number,omitempty"`
	Title             string   `json:"title,omitempty"`
	AgencyName        string   `json:"agency_name,omitempty"`
	OverallScore      float64  `json:"overall_score"`
	SemanticScore     float64  `json:"semantic_score"`
	TimeScore         float64  `json:"time_score"`
	EligibilityScore  float64  `json:"eligibility_score"`
	ProfileCategories []string `json:"profile_categories"`
	WeightsUsed       Weights  `json:"weights_used"`
}
