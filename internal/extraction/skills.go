package extraction

import (
	"sort"

	"github.com/jonathan/resume-screener/internal/parsing"
	"github.com/jonathan/resume-screener/internal/types"
)

// MatchVocabulary returns every vocabulary term present in the text as a
// case-insensitive whole word, in vocabulary order, lower-cased. Used by
// skills extraction and by job-posting skill suggestion.
func MatchVocabulary(text string) ([]string, error) {
	entries, err := vocabulary()
	if err != nil {
		return nil, err
	}

	var matched []string
	for _, entry := range entries {
		if entry.pattern.MatchString(text) {
			matched = append(matched, entry.term)
		}
	}
	return matched, nil
}

// extractSkills matches the vocabulary against the text and returns the
// hits sorted lexicographically, title-cased, deduplicated and capped.
func extractSkills(text string) []string {
	terms, err := MatchVocabulary(text)
	if err != nil {
		panic(err) // isolated by the per-field rule wrapper
	}

	seen := make(map[string]bool)
	var found []string
	for _, term := range terms {
		display := parsing.TitleCase(term)
		if seen[display] {
			continue
		}
		seen[display] = true
		found = append(found, display)
	}

	sort.Strings(found)
	if len(found) > types.MaxSkills {
		found = found[:types.MaxSkills]
	}
	return found
}
