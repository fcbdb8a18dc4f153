package config

import "github.com/arcc-research/grantmatch/internal/matcher"

// Config represents the application configuration.
type Config struct {
	Database DatabaseConfig `toml:"database"`
	Taxonomy TaxonomyConfig `toml:"taxonomy"`
	Matching MatchingConfig `toml:"matching"`
	Log      LogConfig      `toml:"log"`
}

// DatabaseConfig contains database settings.
type DatabaseConfig struct {
	Path string `toml:"path"`
}

// TaxonomyConfig points at the keyword taxonomy document. An empty path
// selects the embedded default taxonomy.
type TaxonomyConfig struct {
	Path string `toml:"path"`
}

// MatchingConfig contains scoring thresholds and default weights.
type MatchingConfig struct {
	MinSemanticScore float64       `toml:"min_semantic_score"`
	MinTimeScore     float64       `toml:"min_time_score"`
	Limit            int           `toml:"limit"`
	Weights          WeightsConfig `toml:"weights"`
}

// WeightsConfig is the configured default weight vector.
type WeightsConfig struct {
	Semantic    float64 `toml:"semantic"`
	Time        float64 `toml:"time"`
	Eligibility float64 `toml:"eligibility"`
}

// Weights converts the configured vector into matcher weights.
func (w WeightsConfig) Weights() matcher.Weights {
	return matcher.Weights{
		Semantic:    w.Semantic,
		Time:        w.Time,
		Eligibility: w.Eligibility,
	}
}

// LogConfig contains logging settings.
type LogConfig struct {
	JSON bool `toml:"json"`
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		Database: DatabaseConfig{
			Path: "~/.local/share/grantmatch/grantmatch.db",
		},
		Taxonomy: TaxonomyConfig{
			Path: "", // embedded medical/vascular taxonomy
		},
		Matching: MatchingConfig{
			MinSemanticScore: matcher.DefaultMinSemanticScore,
			MinTimeScore:     matcher.DefaultMinTimeScore,
			Limit:            20,
			Weights: WeightsConfig{
				Semantic:    0.5,
				Time:        0.3,
				Eligibility: 0.2,
			},
		},
		Log: LogConfig{
			JSON: false,
		},
	}
}
