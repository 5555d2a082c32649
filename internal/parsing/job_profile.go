package parsing

import (
	"fmt"

	"github.com/jonathan/resume-screener/internal/types"
)

// NewJobProfile builds a validated JobProfile. Skill entries are
// normalized (lower-cased, trimmed, deduplicated with first-seen order
// preserved) before validation.
func NewJobProfile(title string, requiredSkills []string, minYears float64, minLevel types.EducationLevel) (*types.JobProfile, error) {
	profile := &types.JobProfile{
		Title:              title,
		RequiredSkills:     NormalizeSkills(requiredSkills),
		MinExperienceYears: minYears,
		MinEducationLevel:  minLevel,
	}

	if err := profile.Validate(); err != nil {
		return nil, fmt.Errorf("invalid job profile: %w", err)
	}

	return profile, nil
}

// SampleJobProfile returns a ready-to-use profile for demonstration runs.
func SampleJobProfile() *types.JobProfile {
	return &types.JobProfile{
		Title: "Software Engineer",
		RequiredSkills: []string{
			"python", "javascript", "sql", "git", "react", "django", "flask",
			"html", "css", "rest api", "json", "agile", "problem solving",
			"communication", "teamwork", "linux", "aws", "docker",
		},
		MinExperienceYears: 3,
		MinEducationLevel:  types.EducationBachelor,
	}
}
