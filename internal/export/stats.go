package export

import "github.com/jonathan/resume-screener/internal/types"

// qualifiedThreshold is the total score at and above which a candidate
// counts as qualified in summaries.
const qualifiedThreshold = 70.0

// Summary aggregates a scored batch for display.
type Summary struct {
	TotalCandidates     int
	AverageScore        float64
	HighestScore        float64
	LowestScore         float64
	QualifiedCandidates int
	AverageExperience   float64
}

// SummaryStats computes summary statistics over a scored batch. An empty
// batch yields the zero Summary.
func SummaryStats(records []*types.ScoredRecord) Summary {
	if len(records) == 0 {
		return Summary{}
	}

	summary := Summary{
		TotalCandidates: len(records),
		HighestScore:    records[0].TotalScore,
		LowestScore:     records[0].TotalScore,
	}

	totalScore := 0.0
	totalExperience := 0.0
	for _, record := range records {
		totalScore += record.TotalScore
		totalExperience += record.ExperienceYears
		if record.TotalScore > summary.HighestScore {
			summary.HighestScore = record.TotalScore
		}
		if record.TotalScore < summary.LowestScore {
			summary.LowestScore = record.TotalScore
		}
		if record.TotalScore >= qualifiedThreshold {
			summary.QualifiedCandidates++
		}
	}

	summary.AverageScore = totalScore / float64(len(records))
	summary.AverageExperience = totalExperience / float64(len(records))
	return summary
}
