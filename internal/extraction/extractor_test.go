package extraction

import (
	"strings"
	"testing"

	"github.com/jonathan/resume-screener/internal/ner"
	"github.com/jonathan/resume-screener/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleResume = `John Smith
john.smith@example.com
+1 (555) 123-4567

Senior Software Engineer with 5 years of experience building web
applications with Python, Django and PostgreSQL. Worked at Acme Corp
on cloud deployments using Docker and AWS.

Education: Bachelor of Science in Computer Science
Certified in Kubernetes Administration
`

// stubRecognizer returns canned entities for extractor tests.
type stubRecognizer struct {
	entities []ner.Entity
}

func (s *stubRecognizer) Entities(string) []ner.Entity {
	return s.entities
}

// panicRecognizer simulates an internal failure inside a rule.
type panicRecognizer struct{}

func (p *panicRecognizer) Entities(string) []ner.Entity {
	panic("model exploded")
}

func TestExtractInformation_FullResume(t *testing.T) {
	extractor := NewExtractor(nil)

	record, err := extractor.ExtractInformation(sampleResume)
	require.NoError(t, err)

	assert.Equal(t, "John Smith", record.Name)
	assert.Equal(t, "john.smith@example.com", record.Email)
	assert.Contains(t, record.Phone, "555")
	assert.Contains(t, record.Skills, "Python")
	assert.Contains(t, record.Skills, "Django")
	assert.Contains(t, record.Skills, "Docker")
	assert.Equal(t, 5.0, record.ExperienceYears)
	assert.Equal(t, "Bachelor's Degree", record.Education)
	assert.NotEmpty(t, record.Certifications)
	assert.Empty(t, record.Organizations, "no recognizer means no organizations")
	assert.NotEqual(t, record.ID.String(), "00000000-0000-0000-0000-000000000000")
}

func TestExtractInformation_TooShort(t *testing.T) {
	extractor := NewExtractor(nil)

	_, err := extractor.ExtractInformation("too short")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInputTooShort)
}

func TestExtractInformation_NormalizesRawText(t *testing.T) {
	extractor := NewExtractor(nil)

	record, err := extractor.ExtractInformation(sampleResume)
	require.NoError(t, err)

	assert.NotContains(t, record.RawText, "\n")
	assert.NotContains(t, record.RawText, "  ")
}

func TestExtractInformation_RuleFailureIsIsolated(t *testing.T) {
	extractor := NewExtractor(&panicRecognizer{})

	record, err := extractor.ExtractInformation(sampleResume)
	require.NoError(t, err)

	// The name and organization rules both touch the broken recognizer
	// and fall back to their defaults; everything else still extracts.
	assert.Equal(t, types.NameNotFound, record.Name)
	assert.Empty(t, record.Organizations)
	assert.Equal(t, "john.smith@example.com", record.Email)
	assert.Contains(t, record.Skills, "Python")
}

func TestExtractName_PrefersPersonEntity(t *testing.T) {
	extractor := NewExtractor(&stubRecognizer{entities: []ner.Entity{
		{Text: "Acme Corp", Label: ner.LabelOrganization},
		{Text: "Jane", Label: ner.LabelPerson},
		{Text: "Jane A. Doe", Label: ner.LabelPerson},
	}})

	record, err := extractor.ExtractInformation(sampleResume)
	require.NoError(t, err)

	// Single-word person entities are skipped; the first with two or
	// more words wins.
	assert.Equal(t, "Jane A. Doe", record.Name)
}

func TestExtractNameFallback_ScansFirstFiveLines(t *testing.T) {
	lines := []string{
		"RESUME",
		"Mary Jane Watson",
		"Software Engineer",
	}
	assert.Equal(t, "Mary Jane Watson", extractNameFallback(lines))
}

func TestExtractNameFallback_IgnoresLongAndNonAlphabeticLines(t *testing.T) {
	lines := []string{
		"123 Main Street Apt 4",
		strings.Repeat("Very Long Name ", 10),
		"a",
	}
	assert.Equal(t, types.NameNotFound, extractNameFallback(lines))
}

func TestExtractNameFallback_StripsPunctuationBeforeCheck(t *testing.T) {
	lines := []string{"Smith, John P."}
	assert.Equal(t, "Smith, John P.", extractNameFallback(lines))
}

func TestExtractEmail_Sentinel(t *testing.T) {
	assert.Equal(t, types.EmailNotFound, extractEmail("no contact details here"))
}

func TestExtractPhone_PatternPrecedence(t *testing.T) {
	assert.Equal(t, "(555) 123-4567", extractPhone("call (555) 123-4567 today"))
	assert.Equal(t, "555-123-4567", extractPhone("call 555-123-4567 today"))
	assert.Equal(t, "5551234567", extractPhone("call 5551234567 today"))
	assert.Equal(t, types.PhoneNotFound, extractPhone("no number"))
}

func TestExtractSkills_CaseInsensitiveDedup(t *testing.T) {
	skills := extractSkills("Python python PYTHON")
	assert.Equal(t, []string{"Python"}, skills)
}

func TestExtractSkills_WholeWordOnly(t *testing.T) {
	// "javascript" must not match inside a longer token, and "r" must
	// not match single letters inside words.
	skills := extractSkills("I wrote javascripty prose but know Java")
	assert.NotContains(t, skills, "Javascript")
	assert.Contains(t, skills, "Java")
}

func TestExtractSkills_SortedAndTitleCased(t *testing.T) {
	skills := extractSkills("knows sql, docker and aws")
	assert.Equal(t, []string{"Aws", "Docker", "Sql"}, skills)
}

func TestExtractExperienceYears_ExplicitMax(t *testing.T) {
	text := "3 years of experience in frontend, then 7+ years of experience in backend"
	assert.Equal(t, 7.0, extractExperienceYears(text))
}

func TestExtractExperienceYears_IgnoresImplausible(t *testing.T) {
	assert.Equal(t, 0.0, extractExperienceYears("99 years of experience"))
}

func TestExtractExperienceYears_EstimatesFromJobIndicators(t *testing.T) {
	text := "worked at Alpha, then worked at Beta, then worked at Gamma"
	assert.Equal(t, 6.0, extractExperienceYears(text))
}

func TestExtractExperienceYears_EstimateCapped(t *testing.T) {
	text := strings.Repeat("worked at X. ", 20)
	assert.Equal(t, 15.0, extractExperienceYears(text))
}

func TestExtractExperienceYears_NoSignal(t *testing.T) {
	assert.Equal(t, 0.0, extractExperienceYears("fresh graduate"))
}

func TestExtractEducation_HighestLevelWins(t *testing.T) {
	text := "Bachelor of Arts, later completed a PhD"
	assert.Equal(t, "PhD", extractEducation(text))
}

func TestExtractEducation_NotSpecified(t *testing.T) {
	assert.Equal(t, types.NotSpecified, extractEducation("loves dogs"))
}

func TestExtractEducation_HighSchool(t *testing.T) {
	assert.Equal(t, "High School", extractEducation("high school graduate, nothing further"))
}

func TestExtractCertifications_Patterns(t *testing.T) {
	text := "Certified in Google Cloud Architecture. AWS certified since 2020. Certification: Scrum Alliance CSM"
	certs := extractCertifications(text)

	assert.NotEmpty(t, certs)
	joined := strings.Join(certs, "|")
	assert.Contains(t, joined, "Google Cloud Architecture")
	assert.Contains(t, joined, "AWS certified")
}

func TestExtractCertifications_LengthBounds(t *testing.T) {
	certs := extractCertifications("certified in AB. certification: " + strings.Repeat("x", 150))
	assert.Empty(t, certs)
}

func TestExtractOrganizations_FromRecognizer(t *testing.T) {
	extractor := NewExtractor(&stubRecognizer{entities: []ner.Entity{
		{Text: "Acme Corp", Label: ner.LabelOrganization},
		{Text: "Acme Corp", Label: ner.LabelOrganization},
		{Text: "John Smith", Label: ner.LabelPerson},
	}})

	orgs := extractor.extractOrganizations("whatever")
	assert.Equal(t, []string{"Acme Corp"}, orgs)
}
