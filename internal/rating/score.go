// Package rating converts finalized per-file metrics into sub-scores, a
// composite score, and a letter grade. The formula is fixed; changing any
// constant breaks reproducibility with previously generated reports.
package rating

import (
	"math"

	"github.com/calder-systems/pygrade/internal/model"
)

// Per-issue-kind penalties by category.
const (
	penaltyErrorHandling   = 0.5
	penaltyMaintainability = 0.3
	penaltyScalability     = 0.4
	penaltySecurity        = 2.0
)

// Per-occurrence severity weights.
const (
	weightError   = 2.0
	weightWarning = 1.0
	weightInfo    = 0.2
)

// Composite weights for the four sub-scores.
const (
	shareErrorHandling   = 0.25
	shareMaintainability = 0.35
	shareScalability     = 0.25
	shareSecurity        = 0.15
)

// Rate computes a file's rating from its finalized metrics.
//
// Each sub-score starts at 10.0 and is reduced by:
//  1. fixed per-issue-kind penalties within the kind's category;
//  2. severity-weighted penalties, cross-distributed: ERROR hits security
//     fully and error handling at half weight, WARNING hits error handling,
//     maintainability and scalability at 0.3x, INFO hits maintainability
//     at 0.2x;
//  3. a tiered complexity penalty on maintainability and scalability.
//
// Sub-scores are clamped to [0,10]; the composite is their weighted average.
func Rate(m *model.FileMetrics) model.FileRating {
	errorHandling := 10.0
	maintainability := 10.0
	scalability := 10.0
	security := 10.0

	for kind, count := range m.IssueCounts {
		c := float64(count)
		switch kind.Category() {
		case model.CategoryErrorHandling:
			errorHandling -= c * penaltyErrorHandling
		case model.CategoryMaintainability:
			maintainability -= c * penaltyMaintainability
		case model.CategoryScalability:
			scalability -= c * penaltyScalability
		case model.CategorySecurity:
			security -= c * penaltySecurity
		}
	}

	errPenalty := float64(m.SeverityCounts[model.SeverityError]) * weightError
	security -= errPenalty
	errorHandling -= errPenalty * 0.5

	warnPenalty := float64(m.SeverityCounts[model.SeverityWarning]) * weightWarning
	errorHandling -= warnPenalty * 0.3
	maintainability -= warnPenalty * 0.3
	scalability -= warnPenalty * 0.3

	infoPenalty := float64(m.SeverityCounts[model.SeverityInfo]) * weightInfo
	maintainability -= infoPenalty * 0.2

	switch {
	case m.ComplexityScore > 50:
		maintainability -= 2.0
		scalability -= 1.0
	case m.ComplexityScore > 30:
		maintainability -= 1.0
		scalability -= 0.5
	}

	errorHandling = clamp(errorHandling)
	maintainability = clamp(maintainability)
	scalability = clamp(scalability)
	security = clamp(security)

	overall := errorHandling*shareErrorHandling +
		maintainability*shareMaintainability +
		scalability*shareScalability +
		security*shareSecurity

	return model.FileRating{
		ErrorHandling:   round1(errorHandling),
		Maintainability: round1(maintainability),
		Scalability:     round1(scalability),
		Security:        round1(security),
		Overall:         round1(overall),
		Grade:           Grade(overall),
	}
}

func clamp(score float64) float64 {
	return math.Max(0, math.Min(10, score))
}

func round1(score float64) float64 {
	return math.Round(score*10) / 10
}
