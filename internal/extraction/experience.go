package extraction

import (
	"regexp"
	"strconv"
	"strings"
)

// experiencePatterns match numeric-years-near-"experience" constructs.
// The first capture group is the year count.
var experiencePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d+\.?\d*)\s*(?:\+\s*)?(?:years?|yrs?)\s+(?:of\s+)?experience`),
	regexp.MustCompile(`(\d+\.?\d*)\s*(?:\+\s*)?(?:years?|yrs?)\s+(?:in|with|of)`),
	regexp.MustCompile(`experience\s*:?\s*(\d+\.?\d*)\s*(?:\+\s*)?(?:years?|yrs?)`),
	regexp.MustCompile(`(\d+\.?\d*)\s*(?:\+\s*)?(?:years?|yrs?)\s*(?:of\s+)?(?:professional\s+)?(?:work\s+)?experience`),
}

// jobIndicators are phrases counted when no explicit year figure exists.
var jobIndicators = []string{"worked at", "employed at", "position at", "role at", "job at"}

const (
	maxPlausibleYears  = 50
	yearsPerJob        = 2
	maxEstimatedYears  = 15
)

// extractExperienceYears returns the highest explicit year figure found
// in [0,50]. With no explicit figure it estimates two years per
// job-indicator phrase, capped at 15; with no indicators it returns 0.
func extractExperienceYears(text string) float64 {
	lower := strings.ToLower(text)

	best := -1.0
	for _, pattern := range experiencePatterns {
		for _, match := range pattern.FindAllStringSubmatch(lower, -1) {
			years, err := strconv.ParseFloat(match[1], 64)
			if err != nil || years < 0 || years > maxPlausibleYears {
				continue
			}
			if years > best {
				best = years
			}
		}
	}
	if best >= 0 {
		return best
	}

	jobCount := 0
	for _, indicator := range jobIndicators {
		jobCount += strings.Count(lower, indicator)
	}
	if jobCount > 0 {
		estimated := float64(jobCount * yearsPerJob)
		if estimated > maxEstimatedYears {
			return maxEstimatedYears
		}
		return estimated
	}

	return 0
}
