package matcher

import "time"

// Temporal alignment heuristics. Early-stage projects can plan around a
// grant opening within roughly two funding cycles; projects already
// collecting or analyzing data need money sooner.
const (
	neutralTimeScore = 0.3

	earlyStageWindowDays  = 180
	earlyStageWeight      = 0.4
	activeStageWindowDays = 90
	activeStageWeight     = 0.3
)

// TimeScore scores how well an opportunity's availability window lines up
// with where the PI's projects sit in their lifecycle. With no projects in
// an active-need stage it returns a neutral 0.3. Otherwise each active
// project whose stage matches the opportunity's opening window adds its
// contribution, and the total is capped at 1.0. A nil open date skips the
// contribution rather than erroring. The close date is accepted for the
// contract but the current heuristics key off the open date alone.
func TimeScore(projects []Project, openDate, closeDate *time.Time, now time.Time) float64 {
	var active []Project
	for _, p := range projects {
		if p.Stage.ActiveNeed() {
			active = append(active, p)
		}
	}
	if len(active) == 0 {
		return neutralTimeScore
	}

	score := 0.0
	for _, p := range active {
		switch p.Stage {
		case StageIdea, StagePlanning:
			// Opens within 180 days, or is already open.
			if openDate != nil && !openDate.After(now.AddDate(0, 0, earlyStageWindowDays)) {
				score += earlyStageWeight
			}
		case StageDataCollection, StageAnalysis:
			if openDate != nil && !openDate.After(now.AddDate(0, 0, activeStageWindowDays)) {
				score += activeStageWeight
			}
		}
	}

	if score > 1.0 {
		score = 1.0
	}
	return score
}
