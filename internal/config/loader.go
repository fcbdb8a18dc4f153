package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Load reads and parses the configuration file.
func Load(path string) (*Config, error) {
	// Expand path
	expandedPath, err := expandPath(path)
	if err != nil {
		return nil, fmt.Errorf("failed to expand config path: %w", err)
	}

	// Read file
	data, err := os.ReadFile(expandedPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config file not found: %s (run 'grantmatch config init' to create)", expandedPath)
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	// Parse TOML
	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	// Expand paths in config
	if err := cfg.expandPaths(); err != nil {
		return nil, fmt.Errorf("failed to expand paths: %w", err)
	}

	// Validate
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// expandPath expands ~ to home directory.
func expandPath(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, path[1:]), nil
}

// expandPaths expands ~ in all path fields.
func (c *Config) expandPaths() error {
	var err error

	c.Database.Path, err = expandPath(c.Database.Path)
	if err != nil {
		return err
	}

	c.Taxonomy.Path, err = expandPath(c.Taxonomy.Path)
	if err != nil {
		return err
	}

	return nil
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	var errs []error

	// Database validation
	if c.Database.Path == "" {
		errs = append(errs, errors.New("database.path is required"))
	}

	// Matching validation
	if c.Matching.MinSemanticScore < 0 || c.Matching.MinSemanticScore > 1 {
		errs = append(errs, errors.New("matching.min_semantic_score must be between 0 and 1"))
	}
	if c.Matching.MinTimeScore < 0 || c.Matching.MinTimeScore > 1 {
		errs = append(errs, errors.New("matching.min_time_score must be between 0 and 1"))
	}
	if c.Matching.Limit < 0 {
		errs = append(errs, errors.New("matching.limit must not be negative"))
	}

	// Weights validation: components must be non-negative. An all-zero
	// vector is allowed and falls back to the built-in defaults at scoring
	// time.
	w := c.Matching.Weights
	if w.Semantic < 0 || w.Time < 0 || w.Eligibility < 0 {
		errs = append(errs, errors.New("matching.weights components must not be negative"))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}

// EnsureDirectories creates necessary directories for the database.
func (c *Config) EnsureDirectories() error {
	dir := filepath.Dir(c.Database.Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	return nil
}
