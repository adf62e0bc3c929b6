package rating

// Grade maps a composite score to a letter grade. Thresholds are inclusive
// lower bounds, so the mapping is monotonic in the score.
func Grade(score float64) string {
	switch {
	case score >= 9.0:
		return "A+"
	case score >= 8.5:
		return "A"
	case score >= 8.0:
		return "A-"
	case score >= 7.5:
		return "B+"
	case score >= 7.0:
		return "B"
	case score >= 6.5:
		return "B-"
	case score >= 6.0:
		return "C+"
	case score >= 5.5:
		return "C"
	case score >= 5.0:
		return "C-"
	case score >= 4.0:
		return "D"
	default:
		return "F"
	}
}
