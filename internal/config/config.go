// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Dharaneesh-S-S/resume-engine/internal/scoring"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	Resume string `json:"resume,omitempty"` // Path to resume text file
	Job    string `json:"job,omitempty"`    // Path to job posting text file
	JobURL string `json:"job_url,omitempty"` // URL to fetch job posting from
	Vocab  string `json:"vocab,omitempty"`  // Path to skill vocabulary JSON (builtin when empty)
	Out    string `json:"out,omitempty"`    // Path to write the analysis result JSON

	// Behavior
	Verbose bool `json:"verbose,omitempty"` // Print detailed stage output

	// Scoring overrides the ATS scoring constants; nil means defaults.
	Scoring *scoring.Config `json:"scoring,omitempty"`
}

// Load loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values. Required fields
// are not checked here since those are handled by CLI flag validation after
// merging.
func (c *Config) Validate() error {
	if c.Job != "" && c.JobURL != "" {
		return fmt.Errorf("config error: 'job' and 'job_url' are mutually exclusive")
	}

	for name, path := range map[string]string{"resume": c.Resume, "job": c.Job, "vocab": c.Vocab} {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return fmt.Errorf("config error: %s file not found: %s", name, path)
		}
	}

	if c.Scoring != nil {
		if err := validateScoring(c.Scoring); err != nil {
			return err
		}
	}
	return nil
}

// validateScoring rejects scoring constants that would make the model
// degenerate (negative points, inverted token bands).
func validateScoring(s *scoring.Config) error {
	if s.PointsPerSection < 0 || s.PointsPerSkill < 0 || s.SkillMax < 0 || s.LengthMax < 0 {
		return fmt.Errorf("config error: scoring points must be non-negative")
	}
	if s.HardMinTokens > s.IdealMinTokens || s.IdealMinTokens > s.IdealMaxTokens || s.IdealMaxTokens > s.HardMaxTokens {
		return fmt.Errorf("config error: scoring token bands must be ordered hard_min <= ideal_min <= ideal_max <= hard_max")
	}
	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. Used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Resume == "" {
		result.Resume = defaults.Resume
	}
	if result.Job == "" {
		result.Job = defaults.Job
	}
	if result.JobURL == "" {
		result.JobURL = defaults.JobURL
	}
	if result.Vocab == "" {
		result.Vocab = defaults.Vocab
	}
	if result.Out == "" {
		result.Out = defaults.Out
	}
	if result.Scoring == nil {
		result.Scoring = defaults.Scoring
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
