// Package parsing provides text normalization and job profile
// construction for the resume-screener pipeline.
package parsing

import (
	"regexp"
	"strings"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// Normalize collapses every run of whitespace (including newlines) to a
// single space and trims leading/trailing whitespace. It performs no
// other transformation and is idempotent: normalizing already-normalized
// text is a no-op.
func Normalize(text string) string {
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(text, " "))
}

// NormalizeSkill lowers and trims a skill name for matching. Job profile
// required skills are always stored in this form.
func NormalizeSkill(skill string) string {
	return strings.ToLower(strings.TrimSpace(skill))
}

// NormalizeSkills normalizes each entry, drops empties and deduplicates,
// preserving first-seen order for display.
func NormalizeSkills(skills []string) []string {
	normalized := make([]string, 0, len(skills))
	seen := make(map[string]bool, len(skills))

	for _, skill := range skills {
		s := NormalizeSkill(skill)
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		normalized = append(normalized, s)
	}

	return normalized
}

// TitleCase upper-cases the first letter of each space-separated word,
// matching the display form used for extracted skills.
func TitleCase(s string) string {
	words := strings.Fields(s)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}
