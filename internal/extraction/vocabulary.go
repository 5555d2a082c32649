package extraction

import (
	"embed"
	"encoding/json"
	"fmt"
	"regexp"
	"sync"
)

// The skill vocabulary is versioned configuration data, embedded at
// compile time so the extractor has no runtime file dependency.
//
//go:embed vocabulary.json
var vocabularyFile embed.FS

// vocabularyEntry pairs a vocabulary term with its compiled whole-word
// matcher. Patterns are compiled once per process and shared read-only
// across all extraction calls.
type vocabularyEntry struct {
	term    string
	pattern *regexp.Regexp
}

var (
	vocabOnce    sync.Once
	vocabEntries []vocabularyEntry
	vocabErr     error
)

// vocabulary returns the shared compiled skill vocabulary.
func vocabulary() ([]vocabularyEntry, error) {
	vocabOnce.Do(func() {
		data, err := vocabularyFile.ReadFile("vocabulary.json")
		if err != nil {
			vocabErr = fmt.Errorf("failed to read vocabulary: %w", err)
			return
		}

		var terms []string
		if err := json.Unmarshal(data, &terms); err != nil {
			vocabErr = fmt.Errorf("failed to parse vocabulary: %w", err)
			return
		}

		entries := make([]vocabularyEntry, 0, len(terms))
		for _, term := range terms {
			pattern, err := regexp.Compile(`(?i)\b` + regexp.QuoteMeta(term) + `\b`)
			if err != nil {
				vocabErr = fmt.Errorf("invalid vocabulary term %q: %w", term, err)
				return
			}
			entries = append(entries, vocabularyEntry{term: term, pattern: pattern})
		}
		vocabEntries = entries
	})
	return vocabEntries, vocabErr
}
