package scoring

// The five recommendation labels, tied to fixed total-score bands.
const (
	StrongMatch   = "Strong Match - Highly Recommended"
	GoodMatch     = "Good Match - Recommended"
	FairMatch     = "Fair Match - Consider with reservations"
	PoorMatch     = "Poor Match - Not recommended"
	VeryPoorMatch = "Very Poor Match - Reject"
)

// Recommendation maps a total score to its qualitative hiring label.
func Recommendation(totalScore float64) string {
	switch {
	case totalScore >= 85:
		return StrongMatch
	case totalScore >= 70:
		return GoodMatch
	case totalScore >= 55:
		return FairMatch
	case totalScore >= 40:
		return PoorMatch
	default:
		return VeryPoorMatch
	}
}
