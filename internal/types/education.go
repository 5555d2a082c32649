package types

import "strings"

// EducationLevel is the ordered education scale used by the extractor and
// by job requirements. Higher values indicate more advanced education.
type EducationLevel int

const (
	EducationHighSchool EducationLevel = iota
	EducationCertificate
	EducationBachelor
	EducationMaster
	EducationPhD
)

// NotSpecified is the sentinel label used when no education keyword was
// found in a resume.
const NotSpecified = "Not specified"

// educationLabels maps each level to its display label.
var educationLabels = map[EducationLevel]string{
	EducationHighSchool:  "High School",
	EducationCertificate: "Certificate/Diploma",
	EducationBachelor:    "Bachelor's Degree",
	EducationMaster:      "Master's Degree",
	EducationPhD:         "PhD",
}

// Label returns the display label for the level, or NotSpecified for
// out-of-range values.
func (l EducationLevel) Label() string {
	if label, ok := educationLabels[l]; ok {
		return label
	}
	return NotSpecified
}

// ParseEducationLabel resolves a display label back to its level.
// Matching is case-insensitive. The second return value is false for
// unknown labels (including NotSpecified).
func ParseEducationLabel(label string) (EducationLevel, bool) {
	for level, l := range educationLabels {
		if strings.EqualFold(l, label) {
			return level, true
		}
	}
	return 0, false
}
