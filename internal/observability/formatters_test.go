package observability

import (
	"bytes"
	"testing"

	"github.com/jonathan/resume-screener/internal/export"
	"github.com/jonathan/resume-screener/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestPrintJobProfile(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf)

	printer.PrintJobProfile(&types.JobProfile{
		Title:              "Backend Engineer",
		RequiredSkills:     []string{"go", "sql", "docker", "kubernetes", "aws", "terraform"},
		MinExperienceYears: 3,
		MinEducationLevel:  types.EducationBachelor,
	})

	out := buf.String()
	assert.Contains(t, out, "Backend Engineer")
	assert.Contains(t, out, "3+ years")
	assert.Contains(t, out, "Bachelor's Degree")
	assert.Contains(t, out, "... and 1 more")
}

func TestPrintJobProfile_Nil(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintJobProfile(nil)
	assert.Empty(t, buf.String())
}

func TestPrintScoredRecord(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf)

	printer.PrintScoredRecord(1, &types.ScoredRecord{
		CandidateRecord: types.CandidateRecord{
			Source: "jane.pdf",
			Name:   "Jane Doe",
			Email:  "jane@example.com",
		},
		TotalScore:     91.5,
		Recommendation: "Strong Match - Highly Recommended",
		MatchedSkills:  []string{"Python"},
	})

	out := buf.String()
	assert.Contains(t, out, "#1  jane.pdf")
	assert.Contains(t, out, "Jane Doe")
	assert.Contains(t, out, "91.5")
}

func TestPrintRanking_Empty(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintRanking(nil)
	assert.Contains(t, buf.String(), "No candidates scored")
}

func TestPrintRanking_Order(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintRanking([]*types.ScoredRecord{
		{CandidateRecord: types.CandidateRecord{Name: "A", Source: "a.pdf"}, TotalScore: 90},
		{CandidateRecord: types.CandidateRecord{Name: "B", Source: "b.pdf"}, TotalScore: 70},
	})

	out := buf.String()
	assert.Less(t, bytes.Index(buf.Bytes(), []byte("a.pdf")), bytes.Index(buf.Bytes(), []byte("b.pdf")))
	assert.Contains(t, out, "Rank")
}

func TestPrintSummary(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintSummary(export.Summary{
		TotalCandidates:     3,
		AverageScore:        66.7,
		HighestScore:        90,
		LowestScore:         40,
		QualifiedCandidates: 2,
		AverageExperience:   3,
	})

	out := buf.String()
	assert.Contains(t, out, "Batch Summary")
	assert.Contains(t, out, "Candidates:  3")
	assert.Contains(t, out, "Qualified:   2")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "a very ...", truncate("a very long string", 10))
}
