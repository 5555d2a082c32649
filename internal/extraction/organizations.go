package extraction

import (
	"strings"

	"github.com/jonathan/resume-screener/internal/ner"
	"github.com/jonathan/resume-screener/internal/types"
)

const (
	minOrgLength = 2
	maxOrgLength = 100
)

// extractOrganizations collects organization entities from the full
// text. It returns nothing in degraded mode; organization extraction has
// no heuristic fallback.
func (e *Extractor) extractOrganizations(text string) []string {
	if e.recognizer == nil {
		return nil
	}

	seen := make(map[string]bool)
	var orgs []string
	for _, entity := range e.recognizer.Entities(text) {
		if entity.Label != ner.LabelOrganization {
			continue
		}
		org := strings.TrimSpace(entity.Text)
		if len(org) <= minOrgLength || len(org) >= maxOrgLength || seen[org] {
			continue
		}
		seen[org] = true
		orgs = append(orgs, org)
		if len(orgs) == types.MaxOrganizations {
			break
		}
	}

	return orgs
}
