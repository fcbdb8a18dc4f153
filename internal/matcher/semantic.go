package matcher

import "github.com/arcc-research/grantmatch/internal/taxonomy"

// Jaccard returns the Jaccard similarity between two category sets:
// |intersection| / |union|. If either set is empty the score is 0.0: "no
// signal" must never read as a perfect match. Symmetric in its arguments.
func Jaccard(a, b taxonomy.CategorySet) float64 {
	if a.Len() == 0 || b.Len() == 0 {
		return 0.0
	}

	intersection := 0
	for name := range a {
		if b.Has(name) {
			intersection++
		}
	}

	union := a.Len() + b.Len() - intersection
	return float64(intersection) / float64(union)
}

// CandidateCategories extracts the taxonomy categories of a funding
// opportunity from its title and description.
func (e *Engine) CandidateCategories(c Candidate) taxonomy.CategorySet {
	return e.tax.Extract(c.Title + " " + c.Description)
}
