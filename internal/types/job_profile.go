// Package types provides type definitions for structured data used throughout the resume-screener system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// JobProfile represents the hiring criteria a batch of candidates is
// scored against. RequiredSkills entries are lower-cased, trimmed and
// unique; construct profiles through parsing.NewJobProfile to keep that
// invariant. A profile is immutable for the duration of a scoring batch
// and may be replaced wholesale between batches.
type JobProfile struct {
	Title              string         `json:"job_title" validate:"required"`
	RequiredSkills     []string       `json:"required_skills" validate:"dive,required"`
	MinExperienceYears float64        `json:"experience_years" validate:"gte=0"`
	MinEducationLevel  EducationLevel `json:"education_level" validate:"gte=0,lte=4"`
}

// Validate validates the JobProfile using the validator, plus the
// required-skills invariants the struct tags cannot express.
func (p *JobProfile) Validate() error {
	validate := validator.New()
	if err := validate.Struct(p); err != nil {
		return err
	}

	seen := make(map[string]bool, len(p.RequiredSkills))
	for _, skill := range p.RequiredSkills {
		if skill != strings.ToLower(strings.TrimSpace(skill)) {
			return fmt.Errorf("required skill %q is not normalized (must be lower-case and trimmed)", skill)
		}
		if seen[skill] {
			return fmt.Errorf("duplicate required skill %q", skill)
		}
		seen[skill] = true
	}
	return nil
}
