package types

import "github.com/google/uuid"

// Sentinel values used when a contact field could not be extracted.
// These are never empty strings; a consumer can rely on every contact
// field carrying either a matched value or its sentinel.
const (
	NameNotFound  = "Name not found"
	EmailNotFound = "Email not found"
	PhoneNotFound = "Phone not found"
)

// Caps on list-valued extraction results.
const (
	MaxSkills         = 50
	MaxCertifications = 10
	MaxOrganizations  = 20
)

// CandidateRecord holds the structured facts extracted from one resume
// document. It is produced once per document by the extractor and is not
// mutated afterwards; scoring enriches a copy into a ScoredRecord.
type CandidateRecord struct {
	ID     uuid.UUID `json:"id"`
	Source string    `json:"source,omitempty"` // document name supplied by the decoder

	// RawText is the normalized source text, retained for audit.
	RawText string `json:"raw_text,omitempty"`

	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`

	// Skills is sorted, title-cased and case-insensitively distinct,
	// capped at MaxSkills.
	Skills []string `json:"skills"`

	ExperienceYears float64 `json:"experience_years"`

	// Education is a display label from EducationLevel.Label, or
	// NotSpecified.
	Education string `json:"education"`

	Certifications []string `json:"certifications,omitempty"`
	Organizations  []string `json:"organizations,omitempty"`
}

// ScoredRecord is a CandidateRecord enriched with scoring outputs.
// All scores are in [0,100], rounded to one decimal place; TotalScore is
// the weighted sum of the three component scores.
type ScoredRecord struct {
	CandidateRecord

	TotalScore      float64 `json:"total_score"`
	SkillsScore     float64 `json:"skills_score"`
	ExperienceScore float64 `json:"experience_score"`
	EducationScore  float64 `json:"education_score"`

	// MatchedSkills entries may carry a "(similar to X)" annotation when
	// credit came from a fuzzy match rather than an exact one.
	MatchedSkills    []string `json:"matched_skills"`
	MissingSkills    []string `json:"missing_skills"`
	AdditionalSkills []string `json:"additional_skills"`

	Recommendation string `json:"recommendation"`
}
