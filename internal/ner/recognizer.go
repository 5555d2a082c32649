// Package ner wraps the optional named-entity recognition capability.
// The underlying model is an expensive resource loaded once per process;
// load failure is not fatal and degrades the extractor to heuristic-only
// mode.
package ner

import (
	"errors"
	"fmt"
	"sync"

	prose "github.com/jdkato/prose/v2"
)

// Entity labels exposed to callers.
const (
	LabelPerson       = "person"
	LabelOrganization = "organization"
)

// ErrUnavailable is returned by Load when the entity model cannot be
// initialized. Callers handle it by passing a nil Recognizer downstream.
var ErrUnavailable = errors.New("entity recognizer unavailable")

// Entity is a span of text tagged with a semantic category.
type Entity struct {
	Text  string
	Label string
}

// Recognizer tags spans of text with semantic categories. Implementations
// are safe for concurrent read-only use.
type Recognizer interface {
	Entities(text string) []Entity
}

var (
	loadOnce   sync.Once
	shared     Recognizer
	sharedErr  error
)

// Load initializes the process-wide recognizer on first call and returns
// the same instance afterwards (initialize-and-publish; safe to call from
// multiple goroutines). On failure every call returns ErrUnavailable.
func Load() (Recognizer, error) {
	loadOnce.Do(func() {
		r, err := newProseRecognizer()
		if err != nil {
			sharedErr = fmt.Errorf("%w: %v", ErrUnavailable, err)
			return
		}
		shared = r
	})
	return shared, sharedErr
}

// proseRecognizer is the prose/v2-backed implementation.
type proseRecognizer struct{}

func newProseRecognizer() (*proseRecognizer, error) {
	// Run the model once at load time so a broken installation surfaces
	// here rather than on the first document.
	if _, err := prose.NewDocument("probe"); err != nil {
		return nil, err
	}
	return &proseRecognizer{}, nil
}

// Entities runs the model over text and returns recognized entities with
// normalized labels. Unrecognized label categories are dropped. Model
// errors yield an empty result; extraction rules treat that the same as
// no entities found.
func (r *proseRecognizer) Entities(text string) []Entity {
	doc, err := prose.NewDocument(text)
	if err != nil {
		return nil
	}

	var entities []Entity
	for _, ent := range doc.Entities() {
		label, ok := normalizeLabel(ent.Label)
		if !ok {
			continue
		}
		entities = append(entities, Entity{Text: ent.Text, Label: label})
	}
	return entities
}

// normalizeLabel maps model-specific tags to the labels this package
// exposes. prose tags people as PERSON and places/organizations as GPE
// or ORG depending on model version.
func normalizeLabel(proseLabel string) (string, bool) {
	switch proseLabel {
	case "PERSON":
		return LabelPerson, true
	case "ORG", "GPE":
		return LabelOrganization, true
	default:
		return "", false
	}
}
