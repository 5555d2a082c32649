package extraction

import (
	"strings"
	"unicode"

	"github.com/jonathan/resume-screener/internal/ner"
	"github.com/jonathan/resume-screener/internal/types"
)

const (
	// nameSearchWindow limits entity recognition to the top of the
	// document, where resumes put the candidate's name.
	nameSearchWindow = 500
	// nameFallbackLines is how many leading lines the heuristic scans.
	nameFallbackLines = 5
	// maxNameLength rejects header lines too long to be a name.
	maxNameLength = 50
)

// extractName prefers a person entity from the recognizer, requiring at
// least two words so single capitalized tokens (section headers, cities)
// don't win. Without a recognizer, or without a match, it falls back to
// the line heuristic.
func (e *Extractor) extractName(cleaned string, rawLines []string) string {
	if e.recognizer != nil {
		window := cleaned
		if len(window) > nameSearchWindow {
			window = window[:nameSearchWindow]
		}

		for _, entity := range e.recognizer.Entities(window) {
			if entity.Label == ner.LabelPerson && len(strings.Fields(entity.Text)) >= 2 {
				return strings.TrimSpace(entity.Text)
			}
		}
	}

	return extractNameFallback(rawLines)
}

// extractNameFallback scans the first lines of the document for one that
// looks like a name: 2-4 alphabetic tokens (periods and commas stripped
// before the check) under maxNameLength characters. Returns the line
// verbatim, or the sentinel.
func extractNameFallback(rawLines []string) string {
	lines := rawLines
	if len(lines) > nameFallbackLines {
		lines = lines[:nameFallbackLines]
	}

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || len(line) >= maxNameLength {
			continue
		}

		words := strings.Fields(line)
		if len(words) < 2 || len(words) > 4 {
			continue
		}

		allAlphabetic := true
		for _, word := range words {
			stripped := strings.NewReplacer(".", "", ",", "").Replace(word)
			if stripped == "" || !isAlphabetic(stripped) {
				allAlphabetic = false
				break
			}
		}
		if allAlphabetic {
			return line
		}
	}

	return types.NameNotFound
}

func isAlphabetic(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
