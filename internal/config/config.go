// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/resume-screener/internal/parsing"
	"github.com/jonathan/resume-screener/internal/schemas"
	"github.com/jonathan/resume-screener/internal/types"
)

// Config represents the screener configuration that can be loaded from a
// JSON file. All fields are optional; missing values use defaults or
// must be provided via CLI flags.
type Config struct {
	// Paths
	JobProfile  string `json:"job_profile,omitempty"`  // Path to job profile JSON file
	PostingHTML string `json:"posting_html,omitempty"` // Path to saved job-posting HTML (skill suggestions)
	OutputCSV   string `json:"output_csv,omitempty"`   // Path to write the ranked CSV export

	// Scoring weights; zero values fall back to the engine defaults.
	SkillsWeight     float64 `json:"skills_weight,omitempty"`
	ExperienceWeight float64 `json:"experience_weight,omitempty"`
	EducationWeight  float64 `json:"education_weight,omitempty"`

	// Behavior
	MinScore float64 `json:"min_score,omitempty"` // Hide results below this total score
	Verbose  bool    `json:"verbose,omitempty"`   // Print detailed per-candidate output
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
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

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.SkillsWeight < 0 || c.ExperienceWeight < 0 || c.EducationWeight < 0 {
		return fmt.Errorf("config error: scoring weights must be non-negative")
	}
	if c.MinScore < 0 || c.MinScore > 100 {
		return fmt.Errorf("config error: 'min_score' must be within [0,100]")
	}

	if c.JobProfile != "" {
		if _, err := os.Stat(c.JobProfile); os.IsNotExist(err) {
			return fmt.Errorf("config error: job profile file not found: %s", c.JobProfile)
		}
	}
	if c.PostingHTML != "" {
		if _, err := os.Stat(c.PostingHTML); os.IsNotExist(err) {
			return fmt.Errorf("config error: posting HTML file not found: %s", c.PostingHTML)
		}
	}

	return nil
}

// LoadJobProfile reads a job profile JSON file, validates it against the
// schema, and returns the normalized typed profile.
func LoadJobProfile(path string) (*types.JobProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read job profile %s: %w", path, err)
	}

	if err := schemas.ValidateJobProfileJSON(data); err != nil {
		return nil, err
	}

	var profile types.JobProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("failed to parse job profile JSON: %w", err)
	}

	return parsing.NewJobProfile(profile.Title, profile.RequiredSkills, profile.MinExperienceYears, profile.MinEducationLevel)
}
