// Package export flattens scored records for tabular export and computes
// batch summary statistics.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jonathan/resume-screener/internal/types"
)

// csvHeader fixes the exported column order.
var csvHeader = []string{
	"Resume File",
	"Candidate Name",
	"Email",
	"Phone",
	"Total Score",
	"Skills Score",
	"Experience Score",
	"Education Score",
	"Years of Experience",
	"Education Level",
	"Skills",
	"Recommendation",
	"Matched Skills",
	"Missing Skills",
	"Processed Date",
}

// WriteCSV writes scored records as CSV rows in ranked order. List-valued
// fields are comma-joined when flattened to a row.
func WriteCSV(w io.Writer, records []*types.ScoredRecord, processedAt time.Time) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	date := processedAt.Format("2006-01-02 15:04")
	for _, record := range records {
		row := []string{
			record.Source,
			record.Name,
			record.Email,
			record.Phone,
			fmt.Sprintf("%.1f", record.TotalScore),
			fmt.Sprintf("%.1f", record.SkillsScore),
			fmt.Sprintf("%.1f", record.ExperienceScore),
			fmt.Sprintf("%.1f", record.EducationScore),
			fmt.Sprintf("%g", record.ExperienceYears),
			record.Education,
			strings.Join(record.Skills, ", "),
			record.Recommendation,
			strings.Join(record.MatchedSkills, ", "),
			strings.Join(record.MissingSkills, ", "),
			date,
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row for %s: %w", record.Source, err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// FormatSkillList renders a skill list for display, eliding everything
// past maxDisplay.
func FormatSkillList(skills []string, maxDisplay int) string {
	if len(skills) == 0 {
		return "None"
	}
	if len(skills) <= maxDisplay {
		return strings.Join(skills, ", ")
	}
	return fmt.Sprintf("%s (+ %d more)", strings.Join(skills[:maxDisplay], ", "), len(skills)-maxDisplay)
}
