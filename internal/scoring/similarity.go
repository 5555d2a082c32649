// Package scoring computes weighted match scores for candidate records
// against a job profile.
package scoring

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
)

// The skill-family table is versioned configuration data: umbrella terms
// mapped to their related technologies, embedded at compile time.
//
//go:embed families.json
var familiesFile embed.FS

var (
	familiesOnce sync.Once
	families     map[string][]string
	familiesErr  error
)

func skillFamilies() (map[string][]string, error) {
	familiesOnce.Do(func() {
		data, err := familiesFile.ReadFile("families.json")
		if err != nil {
			familiesErr = fmt.Errorf("failed to read skill families: %w", err)
			return
		}
		if err := json.Unmarshal(data, &families); err != nil {
			familiesErr = fmt.Errorf("failed to parse skill families: %w", err)
		}
	})
	return families, familiesErr
}

// Similarity thresholds and credits used across scoring.
const (
	substringSimilarity = 0.8
	familySimilarity    = 0.7
	fuzzyThreshold      = 0.7
)

// Similarity returns a symmetric [0,1] similarity between two skill
// strings, which callers pass already lower-cased. Rules are tried in
// order and the first match wins: exact equality, substring containment
// in either direction, shared skill-family membership, then a Jaccard
// fallback over the two strings' character sets. Exact and substring
// relationships short-circuit the coarse character-set comparison.
func Similarity(a, b string) float64 {
	if a == b {
		return 1.0
	}

	if a != "" && b != "" && (strings.Contains(a, b) || strings.Contains(b, a)) {
		return substringSimilarity
	}

	if inSameFamily(a, b) {
		return familySimilarity
	}

	return jaccard(a, b)
}

// inSameFamily reports whether one skill is a family umbrella term and
// the other a member, or both are members of the same family.
func inSameFamily(a, b string) bool {
	table, err := skillFamilies()
	if err != nil {
		return false
	}

	for family, related := range table {
		aMember := contains(related, a)
		bMember := contains(related, b)
		if (a == family && bMember) || (b == family && aMember) || (aMember && bMember) {
			return true
		}
	}
	return false
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}

// jaccard computes |intersection| / |union| over the rune sets of the
// two strings; 0 if both are empty.
func jaccard(a, b string) float64 {
	setA := runeSet(a)
	setB := runeSet(b)

	union := make(map[rune]bool, len(setA)+len(setB))
	intersection := 0
	for r := range setA {
		union[r] = true
		if setB[r] {
			intersection++
		}
	}
	for r := range setB {
		union[r] = true
	}

	if len(union) == 0 {
		return 0
	}
	return float64(intersection) / float64(len(union))
}

func runeSet(s string) map[rune]bool {
	set := make(map[rune]bool, len(s))
	for _, r := range s {
		set[r] = true
	}
	return set
}
