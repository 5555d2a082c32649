package extraction

import (
	"regexp"

	"github.com/jonathan/resume-screener/internal/types"
)

var emailPattern = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)

// phonePatterns are tried in order of decreasing specificity: country
// code with parenthesized area code, country code without parentheses,
// then a bare 10-digit number.
var phonePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\+\d{1,3}[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`),
	regexp.MustCompile(`(\+\d{1,3}[-.\s]?)?\d{3}[-.\s]?\d{3}[-.\s]?\d{4}`),
	regexp.MustCompile(`(\+\d{1,3}[-.\s]?)?\d{10}`),
}

// extractEmail returns the first email address in the text, or the
// sentinel.
func extractEmail(text string) string {
	if match := emailPattern.FindString(text); match != "" {
		return match
	}
	return types.EmailNotFound
}

// extractPhone returns the first phone number matched by any pattern, or
// the sentinel.
func extractPhone(text string) string {
	for _, pattern := range phonePatterns {
		if match := pattern.FindString(text); match != "" {
			return match
		}
	}
	return types.PhoneNotFound
}
