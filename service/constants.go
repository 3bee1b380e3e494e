package service

const (
	MinGradeValue = 0
	MaxGradeValue = 5
	MinCredits    = 1.0
	MaxCredits    = 10.0 // límite de la tabla, no del cálculo

	// Proyección fija: 3 cursos de 3 créditos
	FutureCourses       = 3
	FutureCourseCredits = 3
	FutureCredits       = FutureCourses * FutureCourseCredits

	ExcellentGPA = 4.5 // a partir de aquí no se calculan recomendaciones

	MaxCoursesPerRequest = 200
	MaxProfileLength     = 128
)

// TargetBand is one of the fixed GPA thresholds used for advice.
type TargetBand struct {
	Label string
	GPA   float64
}

// Evaluated in this order.
var TargetBands = []TargetBand{
	{Label: "First Class", GPA: 4.5},
	{Label: "Second Class Upper", GPA: 3.5},
	{Label: "Second Class Lower", GPA: 2.5},
}
