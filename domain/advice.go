package domain

type Outcome string

const (
	OutcomeReachable    Outcome = "reachable"
	OutcomeUnachievable Outcome = "unachievable"
	OutcomeExceeded     Outcome = "exceeded"
)

type TargetRecommendation struct {
	ThresholdLabel string  `json:"thresholdLabel"`
	ThresholdGPA   float64 `json:"thresholdGpa"`
	NeededAverage  float64 `json:"neededAverage"`
	Outcome        Outcome `json:"outcome"`
	Message        string  `json:"message"`
}

type Advice struct {
	GPA             float64                `json:"gpa"`
	Congratulatory  bool                   `json:"congratulatory"`
	Message         string                 `json:"message,omitempty"`
	Recommendations []TargetRecommendation `json:"recommendations"`
	Summary         string                 `json:"summary,omitempty"` // texto del narrador
}

type AdviceInput struct {
	GPA              float64 `json:"gpa"`
	TotalCredits     float64 `json:"totalCredits"`
	TotalGradePoints float64 `json:"totalGradePoints"`
}
