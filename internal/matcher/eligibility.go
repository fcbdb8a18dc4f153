package matcher

// Eligibility sub-score weights. Familiarity with the candidate's agency and
// the PI's historical success rate are weighted equally.
const (
	neutralEligibility      = 0.5
	agencyFamiliarityWeight = 0.5
	successRateWeight       = 0.5
)

// EligibilityScore scores how competitive an application from this PI would
// be, from their grant history. New PIs with no history get a neutral 0.5,
// neither penalized nor favored. Otherwise the score combines agency
// familiarity (fraction of past grants from the candidate's agency; 0 when
// no agency is supplied) with success rate (fraction of past grants that are
// active or completed). Clamped to [0, 1].
func EligibilityScore(history []GrantRecord, agency string) float64 {
	if len(history) == 0 {
		return neutralEligibility
	}

	var agencyMatches, successes int
	for _, g := range history {
		if agency != "" && g.Agency == agency {
			agencyMatches++
		}
		if g.Status == GrantStatusActive || g.Status == GrantStatusCompleted {
			successes++
		}
	}

	total := float64(len(history))
	score := 0.0
	if agency != "" {
		score += float64(agencyMatches) / total * agencyFamiliarityWeight
	}
	score += float64(successes) / total * successRateWeight

	if score > 1.0 {
		score = 1.0
	}
	return score
}
