package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEducationLevel_Label(t *testing.T) {
	assert.Equal(t, "High School", EducationHighSchool.Label())
	assert.Equal(t, "Certificate/Diploma", EducationCertificate.Label())
	assert.Equal(t, "Bachelor's Degree", EducationBachelor.Label())
	assert.Equal(t, "Master's Degree", EducationMaster.Label())
	assert.Equal(t, "PhD", EducationPhD.Label())
}

func TestEducationLevel_Label_OutOfRange(t *testing.T) {
	assert.Equal(t, NotSpecified, EducationLevel(9).Label())
	assert.Equal(t, NotSpecified, EducationLevel(-1).Label())
}

func TestParseEducationLabel_RoundTrip(t *testing.T) {
	for _, level := range []EducationLevel{
		EducationHighSchool,
		EducationCertificate,
		EducationBachelor,
		EducationMaster,
		EducationPhD,
	} {
		parsed, ok := ParseEducationLabel(level.Label())
		assert.True(t, ok)
		assert.Equal(t, level, parsed)
	}
}

func TestParseEducationLabel_CaseInsensitive(t *testing.T) {
	parsed, ok := ParseEducationLabel("bachelor's degree")
	assert.True(t, ok)
	assert.Equal(t, EducationBachelor, parsed)
}

func TestParseEducationLabel_Unknown(t *testing.T) {
	_, ok := ParseEducationLabel(NotSpecified)
	assert.False(t, ok)

	_, ok = ParseEducationLabel("Bootcamp")
	assert.False(t, ok)
}
