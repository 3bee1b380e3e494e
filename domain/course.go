package domain

import "time"

// CourseEntry is one well-formed row of the course table.
type CourseEntry struct {
	Name       string  `json:"name"`
	GradeValue int     `json:"gradeValue"`
	Credits    float64 `json:"credits"`
}

type CourseResult struct {
	CourseEntry
	Letter             string  `json:"letter"`
	GradePoints        float64 `json:"gradePoints"`
	GradePointsDisplay string  `json:"gradePointsDisplay"`
}

type AggregateResult struct {
	GPA              float64        `json:"gpa"`
	GPADisplay       string         `json:"gpaDisplay"`
	TotalCourses     int            `json:"totalCourses"`
	TotalCredits     float64        `json:"totalCredits"`
	TotalGradePoints float64        `json:"totalGradePoints"`
	Courses          []CourseResult `json:"courses"`
}

// Snapshot is the persisted course list. Writes always replace the whole
// snapshot.
type Snapshot struct {
	Courses []CourseEntry `json:"courses"`
	SavedAt time.Time     `json:"savedAt"`
}
