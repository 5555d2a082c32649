package scoring

import (
	"fmt"
	"log"
	"math"
	"sort"
	"strings"

	"github.com/jonathan/resume-screener/internal/parsing"
	"github.com/jonathan/resume-screener/internal/types"
)

// Default weights for the three score components.
const (
	defaultSkillsWeight     = 0.5
	defaultExperienceWeight = 0.3
	defaultEducationWeight  = 0.2
)

const (
	// noRequirementsSkillsScore is awarded when the job lists no
	// required skills.
	noRequirementsSkillsScore = 80.0
	// fuzzyCredit is the partial credit for a similar-but-not-exact
	// skill match.
	fuzzyCredit = 0.8
	// maxAdditionalSkills caps the reported additional-skills list.
	maxAdditionalSkills = 20
)

// scoringEducationLevels is the scorer's 1-5 education scale, keyed by
// display label. It is deliberately offset from the extractor's 0-4
// scale; the two are kept separate and are not interchangeable.
var scoringEducationLevels = map[string]int{
	"High School":         1,
	"Certificate/Diploma": 2,
	"Bachelor's Degree":   3,
	"Master's Degree":     4,
	"PhD":                 5,
}

// Engine scores candidate records against a job profile using a weight
// triple over skills, experience and education. Weights always sum to 1.
type Engine struct {
	skillsWeight     float64
	experienceWeight float64
	educationWeight  float64
}

// NewEngine returns an Engine with the default 0.5/0.3/0.2 weights.
func NewEngine() *Engine {
	return &Engine{
		skillsWeight:     defaultSkillsWeight,
		experienceWeight: defaultExperienceWeight,
		educationWeight:  defaultEducationWeight,
	}
}

// Weights returns the current skills, experience and education weights.
func (e *Engine) Weights() (skills, experience, education float64) {
	return e.skillsWeight, e.experienceWeight, e.educationWeight
}

// AdjustWeights replaces the weight triple, renormalizing the three
// non-negative inputs to sum to 1. A zero-sum input is a no-op and the
// prior weights are retained.
func (e *Engine) AdjustWeights(skills, experience, education float64) {
	total := skills + experience + education
	if total <= 0 {
		return
	}
	e.skillsWeight = skills / total
	e.experienceWeight = experience / total
	e.educationWeight = education / total
}

// ScoreResume scores one candidate against the job profile, producing a
// ScoredRecord with component scores, skill analysis and a qualitative
// recommendation. The candidate record itself is not mutated.
func (e *Engine) ScoreResume(candidate *types.CandidateRecord, job *types.JobProfile) *types.ScoredRecord {
	skillsScore := e.scoreSkills(candidate, job)
	experienceScore := e.scoreExperience(candidate, job)
	educationScore := e.scoreEducation(candidate, job)

	total := skillsScore*e.skillsWeight +
		experienceScore*e.experienceWeight +
		educationScore*e.educationWeight

	matched, missing, additional := e.analyzeSkills(candidate, job)

	return &types.ScoredRecord{
		CandidateRecord:  *candidate,
		TotalScore:       round1(total),
		SkillsScore:      round1(skillsScore),
		ExperienceScore:  round1(experienceScore),
		EducationScore:   round1(educationScore),
		MatchedSkills:    matched,
		MissingSkills:    missing,
		AdditionalSkills: additional,
		Recommendation:   Recommendation(round1(total)),
	}
}

// BatchScore scores every candidate independently and returns the
// results ordered by total score descending. A failure scoring one
// candidate is logged and that candidate excluded; the batch continues.
func (e *Engine) BatchScore(candidates []*types.CandidateRecord, job *types.JobProfile) []*types.ScoredRecord {
	scored := make([]*types.ScoredRecord, 0, len(candidates))
	for _, candidate := range candidates {
		record, err := e.scoreSafely(candidate, job)
		if err != nil {
			log.Printf("Error scoring resume %s: %v", sourceName(candidate), err)
			continue
		}
		scored = append(scored, record)
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].TotalScore > scored[j].TotalScore
	})

	return scored
}

// scoreSafely isolates a scoring failure to its candidate.
func (e *Engine) scoreSafely(candidate *types.CandidateRecord, job *types.JobProfile) (record *types.ScoredRecord, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("scoring failed: %v", r)
		}
	}()
	return e.ScoreResume(candidate, job), nil
}

// scoreSkills computes the skills component. Exact matches score
// proportionally, each missing required skill may earn fuzzy credit from
// the first sufficiently similar candidate skill, and candidates with
// more than 10 skills earn a breadth bonus. Capped at 100.
func (e *Engine) scoreSkills(candidate *types.CandidateRecord, job *types.JobProfile) float64 {
	required := job.RequiredSkills
	if len(required) == 0 {
		return noRequirementsSkillsScore
	}

	candidateSkills := lowerAll(candidate.Skills)

	exactMatches := 0
	fuzzyCredits := 0.0
	for _, req := range required {
		if contains(candidateSkills, req) {
			exactMatches++
			continue
		}
		for _, skill := range candidateSkills {
			if Similarity(req, skill) > fuzzyThreshold {
				fuzzyCredits += fuzzyCredit
				break
			}
		}
	}

	exactScore := float64(exactMatches) / float64(len(required)) * 100
	fuzzyScore := fuzzyCredits / float64(len(required)) * 100
	combined := math.Min(exactScore+fuzzyScore*0.5, 100)

	bonus := 0.0
	if len(candidateSkills) > 10 {
		bonus = math.Min(float64(len(candidateSkills))*2, 20)
	}

	return math.Min(combined+bonus, 100)
}

// scoreExperience computes the experience component. Meeting or
// exceeding the requirement yields exactly 100: the base already
// saturates the cap, so the exceeding-years bonus is absorbed by it.
// That saturation is intentional and preserved.
func (e *Engine) scoreExperience(candidate *types.CandidateRecord, job *types.JobProfile) float64 {
	required := job.MinExperienceYears
	if required == 0 {
		return 100
	}

	years := candidate.ExperienceYears
	if years >= required {
		bonus := math.Min((years-required)*5, 20)
		return math.Min(100+bonus, 100)
	}

	return math.Max(years/required*80, 10)
}

// scoreEducation computes the education component on the scorer's 1-5
// scale. Unknown labels (including "Not specified") map to the lowest
// level. As with experience, the exceeding-level bonus is absorbed by
// the 100 cap.
func (e *Engine) scoreEducation(candidate *types.CandidateRecord, job *types.JobProfile) float64 {
	candidateLevel := educationRank(candidate.Education)
	requiredLevel := educationRank(job.MinEducationLevel.Label())

	if candidateLevel >= requiredLevel {
		bonus := math.Max(float64(candidateLevel-requiredLevel)*10, 0)
		return math.Min(100+bonus, 100)
	}

	return math.Max(float64(candidateLevel)/float64(requiredLevel)*70, 30)
}

func educationRank(label string) int {
	if level, ok := scoringEducationLevels[label]; ok {
		return level
	}
	return 1
}

// analyzeSkills classifies every skill: each required skill is matched
// (exactly or with a similar-to annotation) or missing, and candidate
// skills unrelated to any requirement are reported as additional.
func (e *Engine) analyzeSkills(candidate *types.CandidateRecord, job *types.JobProfile) (matched, missing, additional []string) {
	required := job.RequiredSkills
	candidateSkills := lowerAll(candidate.Skills)

	matched = []string{}
	missing = []string{}
	additional = []string{}

	for _, req := range required {
		if contains(candidateSkills, req) {
			matched = append(matched, parsing.TitleCase(req))
			continue
		}

		foundSimilar := false
		for _, skill := range candidateSkills {
			if Similarity(req, skill) > fuzzyThreshold {
				matched = append(matched, fmt.Sprintf("%s (similar to %s)", parsing.TitleCase(skill), parsing.TitleCase(req)))
				foundSimilar = true
				break
			}
		}
		if !foundSimilar {
			missing = append(missing, parsing.TitleCase(req))
		}
	}

	for _, skill := range candidateSkills {
		if contains(required, skill) {
			continue
		}
		isAdditional := true
		for _, req := range required {
			if Similarity(skill, req) > fuzzyThreshold {
				isAdditional = false
				break
			}
		}
		if isAdditional && len(additional) < maxAdditionalSkills {
			additional = append(additional, parsing.TitleCase(skill))
		}
	}

	return matched, missing, additional
}

func sourceName(candidate *types.CandidateRecord) string {
	if candidate == nil || candidate.Source == "" {
		return "unknown"
	}
	return candidate.Source
}

func lowerAll(skills []string) []string {
	lowered := make([]string, len(skills))
	for i, s := range skills {
		lowered[i] = strings.ToLower(s)
	}
	return lowered
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
