package service

import (
	"math"
	"strings"

	"gpa-calculator/domain"
)

// FilterCourses keeps only rows that can be aggregated: a name, an integer
// grade on the 0-5 scale and credits within the table limits. Malformed rows
// are dropped, never reported.
func FilterCourses(rows []domain.CourseRow) []domain.CourseEntry {
	courses := make([]domain.CourseEntry, 0, len(rows))

	for _, row := range rows {
		course, ok := toCourseEntry(row)
		if !ok {
			continue
		}
		courses = append(courses, course)
	}

	return courses
}

func toCourseEntry(row domain.CourseRow) (domain.CourseEntry, bool) {
	name := strings.TrimSpace(row.Name)
	if name == "" {
		return domain.CourseEntry{}, false
	}

	if !row.Grade.Valid || row.Grade.Value != math.Trunc(row.Grade.Value) {
		return domain.CourseEntry{}, false
	}
	if row.Grade.Value < MinGradeValue || row.Grade.Value > MaxGradeValue {
		return domain.CourseEntry{}, false
	}

	if !row.Credits.Valid || row.Credits.Value < MinCredits || row.Credits.Value > MaxCredits {
		return domain.CourseEntry{}, false
	}

	return domain.CourseEntry{
		Name:       name,
		GradeValue: int(row.Grade.Value),
		Credits:    row.Credits.Value,
	}, true
}
