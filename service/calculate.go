package service

import "gpa-calculator/domain"

// Calculate aggregates well-formed course entries into a GPA. Totals are
// kept unrounded; only GPA and per-course grade points are rounded for
// display. It is pure and never fails, an empty list yields a 0.00 GPA.
func Calculate(courses []domain.CourseEntry) domain.AggregateResult {
	totalGradePoints := 0.0
	totalCredits := 0.0
	results := make([]domain.CourseResult, 0, len(courses))

	for _, c := range courses {
		points := float64(c.GradeValue) * c.Credits
		totalGradePoints += points
		totalCredits += c.Credits

		results = append(results, domain.CourseResult{
			CourseEntry:        c,
			Letter:             LetterGrade(float64(c.GradeValue)),
			GradePoints:        roundTo2Decimals(points),
			GradePointsDisplay: format2Decimals(points),
		})
	}

	gpa := 0.0
	if totalCredits > 0 {
		gpa = totalGradePoints / totalCredits
	}

	return domain.AggregateResult{
		GPA:              roundTo2Decimals(gpa),
		GPADisplay:       format2Decimals(gpa),
		TotalCourses:     len(courses),
		TotalCredits:     totalCredits,
		TotalGradePoints: totalGradePoints,
		Courses:          results,
	}
}
