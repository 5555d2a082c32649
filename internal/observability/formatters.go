// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-screener/internal/export"
	"github.com/jonathan/resume-screener/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintJobProfile outputs a human-readable summary of the job profile a
// batch is being scored against.
func (p *Printer) PrintJobProfile(profile *types.JobProfile) {
	if profile == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Role:       %s\n", profile.Title))
	sb.WriteString(fmt.Sprintf("Experience: %g+ years\n", profile.MinExperienceYears))
	sb.WriteString(fmt.Sprintf("Education:  %s\n", profile.MinEducationLevel.Label()))

	if len(profile.RequiredSkills) > 0 {
		sb.WriteString("\nRequired Skills:\n")
		count := min(len(profile.RequiredSkills), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", profile.RequiredSkills[i]))
		}
		if len(profile.RequiredSkills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(profile.RequiredSkills)-maxItemsToShow))
		}
	}

	p.printBox("Job Profile", strings.TrimRight(sb.String(), "\n"))
}

// PrintScoredRecord outputs one candidate's score breakdown.
func (p *Printer) PrintScoredRecord(rank int, record *types.ScoredRecord) {
	if record == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Name:       %s\n", record.Name))
	sb.WriteString(fmt.Sprintf("Email:      %s\n", record.Email))
	sb.WriteString(fmt.Sprintf("Total:      %.1f\n", record.TotalScore))
	sb.WriteString(fmt.Sprintf("  Skills:     %.1f\n", record.SkillsScore))
	sb.WriteString(fmt.Sprintf("  Experience: %.1f (%g years)\n", record.ExperienceScore, record.ExperienceYears))
	sb.WriteString(fmt.Sprintf("  Education:  %.1f (%s)\n", record.EducationScore, record.Education))
	sb.WriteString(fmt.Sprintf("Matched:    %s\n", export.FormatSkillList(record.MatchedSkills, maxItemsToShow)))
	sb.WriteString(fmt.Sprintf("Missing:    %s\n", export.FormatSkillList(record.MissingSkills, maxItemsToShow)))
	sb.WriteString(fmt.Sprintf("Additional: %s\n", export.FormatSkillList(record.AdditionalSkills, maxItemsToShow)))
	sb.WriteString(record.Recommendation)

	title := fmt.Sprintf("#%d  %s", rank, record.Source)
	p.printBox(title, sb.String())
}

// PrintRanking outputs the one-line-per-candidate ranked list.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintRanking(records []*types.ScoredRecord) {
	if len(records) == 0 {
		fmt.Fprintln(p.out, "No candidates scored.")
		return
	}

	fmt.Fprintf(p.out, "%-4s %-24s %-28s %7s  %s\n", "Rank", "Candidate", "Resume", "Score", "Recommendation")
	for i, record := range records {
		fmt.Fprintf(p.out, "%-4d %-24s %-28s %7.1f  %s\n",
			i+1, truncate(record.Name, 24), truncate(record.Source, 28), record.TotalScore, record.Recommendation)
	}
}

// PrintSummary outputs batch summary statistics.
func (p *Printer) PrintSummary(summary export.Summary) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Candidates:  %d\n", summary.TotalCandidates))
	sb.WriteString(fmt.Sprintf("Average:     %.1f\n", summary.AverageScore))
	sb.WriteString(fmt.Sprintf("Highest:     %.1f\n", summary.HighestScore))
	sb.WriteString(fmt.Sprintf("Lowest:      %.1f\n", summary.LowestScore))
	sb.WriteString(fmt.Sprintf("Qualified:   %d\n", summary.QualifiedCandidates))
	sb.WriteString(fmt.Sprintf("Avg. Years:  %.1f", summary.AverageExperience))

	p.printBox("Batch Summary", sb.String())
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
