// Package extraction derives structured candidate attributes from raw
// resume text using pattern matching and optional named-entity
// recognition. Each field rule is independent: an internal failure in
// one rule falls back to that field's documented default without
// affecting the others.
package extraction

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"
	"github.com/jonathan/resume-screener/internal/ner"
	"github.com/jonathan/resume-screener/internal/parsing"
	"github.com/jonathan/resume-screener/internal/types"
)

// minViableChars is the minimum number of non-whitespace characters a
// document must yield before a record is produced.
const minViableChars = 50

// ErrInputTooShort is returned when the document text is below the
// minimum viable length. No record is produced.
var ErrInputTooShort = errors.New("insufficient text extracted from document")

// Extractor turns raw document text into a CandidateRecord. The zero
// value is not usable; construct with NewExtractor. A nil recognizer is
// valid and selects heuristic-only mode (no organization extraction,
// fallback name heuristic).
type Extractor struct {
	recognizer ner.Recognizer
}

// NewExtractor returns an Extractor using the given recognizer, which
// may be nil for degraded mode.
func NewExtractor(recognizer ner.Recognizer) *Extractor {
	return &Extractor{recognizer: recognizer}
}

// NewDefaultExtractor loads the shared entity recognizer and falls back
// to heuristic-only mode if it is unavailable. The degradation is logged
// once by ner.Load semantics, not per document.
func NewDefaultExtractor() *Extractor {
	recognizer, err := ner.Load()
	if err != nil {
		log.Printf("Warning: %v; continuing without entity recognition", err)
	}
	return NewExtractor(recognizer)
}

// ExtractInformation extracts structured candidate attributes from raw
// document text. The returned record holds the normalized text plus one
// value (or documented sentinel) per field. Returns ErrInputTooShort for
// documents below the minimum viable length.
func (e *Extractor) ExtractInformation(text string) (*types.CandidateRecord, error) {
	cleaned := parsing.Normalize(text)
	if len(strings.ReplaceAll(cleaned, " ", "")) < minViableChars {
		return nil, fmt.Errorf("%w: got %d non-whitespace characters, need %d",
			ErrInputTooShort, len(strings.ReplaceAll(cleaned, " ", "")), minViableChars)
	}

	record := &types.CandidateRecord{
		ID:      uuid.New(),
		RawText: cleaned,
	}

	// The name fallback heuristic needs the original line structure,
	// which normalization destroys.
	rawLines := strings.Split(text, "\n")

	record.Name = stringRule(types.NameNotFound, func() string { return e.extractName(cleaned, rawLines) })
	record.Email = stringRule(types.EmailNotFound, func() string { return extractEmail(cleaned) })
	record.Phone = stringRule(types.PhoneNotFound, func() string { return extractPhone(cleaned) })
	record.Skills = listRule(func() []string { return extractSkills(cleaned) })
	record.ExperienceYears = floatRule(func() float64 { return extractExperienceYears(cleaned) })
	record.Education = stringRule(types.NotSpecified, func() string { return extractEducation(cleaned) })
	record.Certifications = listRule(func() []string { return extractCertifications(cleaned) })
	record.Organizations = listRule(func() []string { return e.extractOrganizations(cleaned) })

	return record, nil
}

// stringRule runs one extraction rule, converting any panic into the
// field's documented fallback.
func stringRule(fallback string, rule func() string) (result string) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("extraction rule failed: %v", r)
			result = fallback
		}
	}()
	return rule()
}

func listRule(rule func() []string) (result []string) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("extraction rule failed: %v", r)
			result = nil
		}
	}()
	return rule()
}

func floatRule(rule func() float64) (result float64) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("extraction rule failed: %v", r)
			result = 0
		}
	}()
	return rule()
}
