package services

import (
	"context"
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/sbilibin2017/vibecare/internal/logger"
	"github.com/sbilibin2017/vibecare/internal/models"
	"github.com/sbilibin2017/vibecare/internal/pagination"
)

//go:generate mockgen -source=face.go -destination=mock_face.go -package=services

// FaceStore defines the face-expression operations.
type FaceStore interface {
	Create(ctx context.Context, e *models.FaceExpression) error
	ListByUser(ctx context.Context, userID string, p pagination.Params) (pagination.Page[models.FaceExpression], error)
}

// inferenceResult is the payload produced by the expression model.
// Fields with an unexpected shape are ignored instead of failing the save.
type inferenceResult struct {
	FacesDetected json.RawMessage   `json:"faces_detected"`
	Predictions   []json.RawMessage `json:"predictions"`
}

type prediction struct {
	PredictedEmotion string          `json:"predicted_emotion"`
	Confidence       lenientFloat    `json:"confidence"`
	AllEmotions      json.RawMessage `json:"all_emotions"`
	BoundingBox      json.RawMessage `json:"bounding_box"`
}

// lenientFloat accepts a JSON number or a numeric string. Anything else is left unset.
type lenientFloat struct {
	v *float64
}

func (f *lenientFloat) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}
	var n float64
	if err := json.Unmarshal(b, &n); err == nil {
		f.v = &n
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		if n, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil && !math.IsNaN(n) && !math.IsInf(n, 0) {
			f.v = &n
		}
	}
	return nil
}

// decodeLoose unmarshals raw into dst and reports whether it worked.
func decodeLoose(raw json.RawMessage, dst any) bool {
	if len(raw) == 0 || string(raw) == "null" {
		return false
	}
	return json.Unmarshal(raw, dst) == nil
}

// FaceService stores expression detections.
type FaceService struct {
	store FaceStore
	now   func() time.Time
}

// NewFaceService creates a new FaceService instance.
func NewFaceService(store FaceStore) *FaceService {
	return &FaceService{store: store, now: time.Now}
}

// Save stores the first prediction of an inference result. An unparsable
// timestamp falls back to the current time.
func (svc *FaceService) Save(ctx context.Context, userID string, result, timestamp json.RawMessage) (*models.FaceExpression, error) {
	if err := validateID(userID); err != nil {
		return nil, err
	}
	if len(result) == 0 || string(result) == "null" {
		return nil, ErrResultRequired
	}

	entry := &models.FaceExpression{
		UserID:     userID,
		RawResult:  models.RawJSON(result),
		CapturedAt: svc.capturedAt(timestamp),
	}

	var parsed inferenceResult
	decodeLoose(result, &parsed)

	var p prediction
	if len(parsed.Predictions) > 0 && decodeLoose(parsed.Predictions[0], &p) {
		entry.PredictedEmotion = p.PredictedEmotion
		entry.Confidence = p.Confidence.v
		entry.FacesDetected = 1

		var emotions models.EmotionBreakdown
		if decodeLoose(p.AllEmotions, &emotions) {
			entry.AllEmotions = &emotions
		}
		var box models.BoundingBox
		if decodeLoose(p.BoundingBox, &box) {
			entry.BoundingBox = &box
		}
	}

	var faces float64
	if decodeLoose(parsed.FacesDetected, &faces) {
		entry.FacesDetected = int(faces)
	}

	if err := svc.store.Create(ctx, entry); err != nil {
		logger.FromContext(ctx).Errorw("failed to save face data", "user_id", userID, "err", err)
		return nil, err
	}
	return entry, nil
}

// capturedAt accepts epoch milliseconds (number or digit string) and the
// usual date layouts. Anything else falls back to the current time.
func (svc *FaceService) capturedAt(timestamp json.RawMessage) time.Time {
	var ms float64
	if err := json.Unmarshal(timestamp, &ms); err == nil && string(timestamp) != "null" {
		return time.UnixMilli(int64(ms)).UTC()
	}

	var s string
	if err := json.Unmarshal(timestamp, &s); err == nil {
		s = strings.TrimSpace(s)
		if n, err := strconv.ParseInt(s, 10, 64); err == nil {
			return time.UnixMilli(n).UTC()
		}
		for _, layout := range timestampLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t.UTC()
			}
		}
	}
	return svc.now().UTC()
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	time.RFC1123,
	time.RFC1123Z,
}

// History returns one page of the user's detections, newest capture first.
func (svc *FaceService) History(ctx context.Context, userID string, p pagination.Params) (pagination.Page[models.FaceExpression], error) {
	if err := validateID(userID); err != nil {
		return pagination.Page[models.FaceExpression]{}, err
	}
	return svc.store.ListByUser(ctx, userID, p)
}
