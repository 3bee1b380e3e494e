package service

import (
	"fmt"
	"math"
	"strconv"
)

var letters = map[int]string{
	5: "A",
	4: "B",
	3: "C",
	2: "D",
	1: "E",
	0: "F",
}

// NotApplicable is the letter for any value outside the 0..5 integer scale.
const NotApplicable = "N/A"

// LetterGrade maps an integer grade value to its letter. It never fails.
func LetterGrade(value float64) string {
	if value != math.Trunc(value) {
		return NotApplicable
	}
	if letter, ok := letters[int(value)]; ok {
		return letter
	}
	return NotApplicable
}

// GradeBand is a discrete letter grade and its value on the 0-5 scale.
type GradeBand struct {
	Letter string
	Value  float64
}

func (b GradeBand) String() string {
	return fmt.Sprintf("%s (%.1f)", b.Letter, b.Value)
}

// closestGrades holds inclusive lower bounds, checked top-down.
var closestGrades = []struct {
	min  float64
	band GradeBand
}{
	{4.5, GradeBand{"A", 5}},
	{3.5, GradeBand{"B", 4}},
	{2.5, GradeBand{"C", 3}},
	{1.5, GradeBand{"D", 2}},
	{0.5, GradeBand{"E", 1}},
}

// ClosestGrade maps a continuous average to the nearest attainable letter
// grade. Range checks (above 5, below 0) belong to the caller.
func ClosestGrade(average float64) GradeBand {
	for _, g := range closestGrades {
		if average >= g.min {
			return g.band
		}
	}
	return GradeBand{"F", 0}
}

// roundTo2Decimals redondea a 2 decimales (mitad lejos de cero)
func roundTo2Decimals(value float64) float64 {
	return math.Round(value*100) / 100
}

func format2Decimals(value float64) string {
	rounded := roundTo2Decimals(value)
	if rounded == 0 {
		rounded = 0 // sin "-0.00"
	}
	return strconv.FormatFloat(rounded, 'f', 2, 64)
}
