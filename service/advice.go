package service

import (
	"fmt"

	"gpa-calculator/domain"
)

// Analyze projects, for every target band above gpa, the average grade
// needed over the next FutureCredits credits. Bands already met are skipped.
func Analyze(gpa, totalCredits, totalGradePoints float64) []domain.TargetRecommendation {
	recommendations := []domain.TargetRecommendation{}

	for _, band := range TargetBands {
		if band.GPA <= gpa {
			continue
		}
		recommendations = append(recommendations, projectTarget(band, totalCredits, totalGradePoints))
	}

	return recommendations
}

func projectTarget(band TargetBand, totalCredits, totalGradePoints float64) domain.TargetRecommendation {
	totalFutureCredits := totalCredits + FutureCredits
	requiredGradePoints := band.GPA * totalFutureCredits
	neededGradePoints := requiredGradePoints - totalGradePoints
	neededAverage := neededGradePoints / FutureCredits

	outcome, message := describeTarget(band, neededAverage)

	return domain.TargetRecommendation{
		ThresholdLabel: band.Label,
		ThresholdGPA:   band.GPA,
		NeededAverage:  roundTo2Decimals(neededAverage),
		Outcome:        outcome,
		Message:        message,
	}
}

func describeTarget(band TargetBand, neededAverage float64) (domain.Outcome, string) {
	switch {
	case neededAverage > MaxGradeValue:
		return domain.OutcomeUnachievable, fmt.Sprintf(
			"Reaching %s (%.2f) would need an average of %s over the %s, which is not achievable on the standard 0-5 scale.",
			band.Label, band.GPA, format2Decimals(neededAverage), futureLoadText())
	case neededAverage < MinGradeValue:
		return domain.OutcomeExceeded, fmt.Sprintf(
			"You have already exceeded the %s (%.2f) target.",
			band.Label, band.GPA)
	default:
		return domain.OutcomeReachable, fmt.Sprintf(
			"To reach %s (%.2f), aim for %s or better in your %s: an average of %s grade points.",
			band.Label, band.GPA, ClosestGrade(neededAverage), futureLoadText(), format2Decimals(neededAverage))
	}
}

func futureLoadText() string {
	return fmt.Sprintf("next %d courses (%d credits)", FutureCourses, FutureCredits)
}

// Advise is the caller-level entry point: an excellent GPA gets a
// congratulatory message and Analyze is not consulted at all.
func Advise(result domain.AggregateResult) domain.Advice {
	if result.GPA >= ExcellentGPA {
		return domain.Advice{
			GPA:             result.GPA,
			Congratulatory:  true,
			Message:         fmt.Sprintf("Excellent work! Your GPA of %s is already in the First Class band.", format2Decimals(result.GPA)),
			Recommendations: []domain.TargetRecommendation{},
		}
	}

	return domain.Advice{
		GPA:             result.GPA,
		Recommendations: Analyze(result.GPA, result.TotalCredits, result.TotalGradePoints),
	}
}
