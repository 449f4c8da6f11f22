package models

import (
	"database/sql/driver"
	"time"
)

// EmotionBreakdown holds per-emotion scores of a detection
type EmotionBreakdown struct {
	Angry    float64 `json:"Angry"`
	Disgust  float64 `json:"Disgust"`
	Fear     float64 `json:"Fear"`
	Happy    float64 `json:"Happy"`
	Neutral  float64 `json:"Neutral"`
	Sad      float64 `json:"Sad"`
	Surprise float64 `json:"Surprise"`
}

// Value implements driver.Valuer.
func (e EmotionBreakdown) Value() (driver.Value, error) { return jsonValue(e) }

// Scan implements sql.Scanner.
func (e *EmotionBreakdown) Scan(src any) error { return scanJSON(src, e) }

// BoundingBox locates the detected face in the frame
type BoundingBox struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Value implements driver.Valuer.
func (b BoundingBox) Value() (driver.Value, error) { return jsonValue(b) }

// Scan implements sql.Scanner.
func (b *BoundingBox) Scan(src any) error { return scanJSON(src, b) }

// FaceExpression represents one stored face-expression detection
type FaceExpression struct {
	ID               string            `json:"_id" db:"id"`                             // Primary key
	UserID           string            `json:"userId" db:"user_id"`                     // Owner
	FacesDetected    int               `json:"facesDetected" db:"faces_detected"`       // Number of faces in the frame
	PredictedEmotion string            `json:"predictedEmotion" db:"predicted_emotion"` // Top emotion label
	Confidence       *float64          `json:"confidence" db:"confidence"`              // Confidence of the top label
	AllEmotions      *EmotionBreakdown `json:"allEmotions,omitempty" db:"all_emotions"` // Per-emotion scores
	BoundingBox      *BoundingBox      `json:"boundingBox,omitempty" db:"bounding_box"` // Face location
	RawResult        RawJSON           `json:"rawResult" db:"raw_result"`               // Inference payload as received
	CapturedAt       time.Time         `json:"capturedAt" db:"captured_at"`             // Client capture time
	CreatedAt        time.Time         `json:"createdAt" db:"created_at"`               // Creation timestamp
}
