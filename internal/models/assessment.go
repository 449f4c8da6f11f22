package models

import "time"

// Assessment kinds
const (
	AssessmentDepression = "depression"
	AssessmentAnxiety    = "anxiety"
	AssessmentStress     = "stress"
)

// AssessmentResult represents one submitted questionnaire result
type AssessmentResult struct {
	ID        string    `json:"_id" db:"id"`                // Primary key
	UserID    string    `json:"userId" db:"user_id"`        // Owner
	Kind      string    `json:"kind" db:"kind"`             // depression, anxiety or stress
	Score     *float64  `json:"score,omitempty" db:"score"` // BDI/BAI score, absent for stress
	Level     string    `json:"level" db:"level"`           // Categorical level
	CreatedAt time.Time `json:"createdAt" db:"created_at"`  // Creation timestamp
}

// MentalHealthSummary holds the latest level of every assessment kind
type MentalHealthSummary struct {
	Depression     string     `json:"depression"`
	Anxiety        string     `json:"anxiety"`
	Stress         string     `json:"stress"`
	DepressionDate *time.Time `json:"depressionDate,omitempty"`
	AnxietyDate    *time.Time `json:"anxietyDate,omitempty"`
	StressDate     *time.Time `json:"stressDate,omitempty"`
}
