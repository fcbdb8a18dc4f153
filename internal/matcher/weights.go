package matcher

import "sort"

// Weights controls how the three component scores combine into the overall
// score. Values must be non-negative; they are normalized to sum to 1.0
// before use.
type Weights struct {
	Semantic    float64 `json:"semantic"`
	Time        float64 `json:"time"`
	Eligibility float64 `json:"eligibility"`
}

// DefaultWeights returns the built-in weighting: research alignment matters
// most, then timing, then track record.
func DefaultWeights() Weights {
	return Weights{Semantic: 0.5, Time: 0.3, Eligibility: 0.2}
}

// presets are the named weight configurations carried over from the
// dashboard's quick-select modes.
var presets = map[string]Weights{
	"research":   {Semantic: 0.7, Time: 0.2, Eligibility: 0.1},
	"timing":     {Semantic: 0.3, Time: 0.6, Eligibility: 0.1},
	"experience": {Semantic: 0.3, Time: 0.2, Eligibility: 0.5},
}

// Preset returns a named weight configuration.
func Preset(name string) (Weights, bool) {
	w, ok := presets[name]
	return w, ok
}

// PresetNames returns the available preset names in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Sum returns the total of all three components.
func (w Weights) Sum() float64 {
	return w.Semantic + w.Time + w.Eligibility
}

// IsZero reports whether all components are zero.
func (w Weights) IsZero() bool {
	return w.Semantic == 0 && w.Time == 0 && w.Eligibility == 0
}

// Normalize returns a new Weights whose components sum to 1.0. A zero-sum
// vector is returned unchanged rather than dividing by zero; callers that
// want default behavior for the zero vector check IsZero first.
func (w Weights) Normalize() Weights {
	sum := w.Sum()
	if sum == 0 {
		return w
	}
	return Weights{
		Semantic:    w.Semantic / sum,
		Time:        w.Time / sum,
		Eligibility: w.Eligibility / sum,
	}
}
