package schemas

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateJobProfileJSON_Valid(t *testing.T) {
	doc := []byte(`{
		"job_title": "Software Engineer",
		"required_skills": ["python", "sql"],
		"experience_years": 3,
		"education_level": 2
	}`)

	assert.NoError(t, ValidateJobProfileJSON(doc))
}

func TestValidateJobProfileJSON_MinimalValid(t *testing.T) {
	assert.NoError(t, ValidateJobProfileJSON([]byte(`{"job_title": "Analyst"}`)))
}

func TestValidateJobProfileJSON_MissingTitle(t *testing.T) {
	err := ValidateJobProfileJSON([]byte(`{"required_skills": ["go"]}`))
	require.Error(t, err)

	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.NotEmpty(t, validationErr.Errors)
	assert.Contains(t, validationErr.Error(), "job_title")
}

func TestValidateJobProfileJSON_BadEducationLevel(t *testing.T) {
	err := ValidateJobProfileJSON([]byte(`{"job_title": "X", "education_level": 9}`))

	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
}

func TestValidateJobProfileJSON_UnknownField(t *testing.T) {
	err := ValidateJobProfileJSON([]byte(`{"job_title": "X", "salary": 100}`))

	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
}

func TestValidateJobProfileJSON_Malformed(t *testing.T) {
	err := ValidateJobProfileJSON([]byte(`{not json`))
	require.Error(t, err)

	var validationErr *ValidationError
	assert.False(t, errors.As(err, &validationErr), "malformed JSON is not a field-level validation error")
}
