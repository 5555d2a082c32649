package extraction

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-screener/internal/types"
)

// certificationPatterns capture certification phrases in their common
// textual forms.
var certificationPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)certified\s+in\s+([^.\n]+)`),
	regexp.MustCompile(`(?i)certification\s*:?\s*([^.\n]+)`),
	regexp.MustCompile(`(?i)cert\.\s*([^.\n]+)`),
	regexp.MustCompile(`(?i)([A-Z]{2,}\s+certified)`),
}

const (
	minCertLength = 3
	maxCertLength = 100
)

// extractCertifications merges matches from all patterns, trims them,
// keeps entries with length strictly between the bounds, deduplicates
// preserving first-seen order and caps the result.
func extractCertifications(text string) []string {
	seen := make(map[string]bool)
	var certs []string

	for _, pattern := range certificationPatterns {
		for _, match := range pattern.FindAllStringSubmatch(text, -1) {
			cert := strings.TrimSpace(match[1])
			if len(cert) <= minCertLength || len(cert) >= maxCertLength || seen[cert] {
				continue
			}
			seen[cert] = true
			certs = append(certs, cert)
			if len(certs) == types.MaxCertifications {
				return certs
			}
		}
	}

	return certs
}
