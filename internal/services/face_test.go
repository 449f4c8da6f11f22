package services

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/vibecare/internal/models"
	"github.com/sbilibin2017/vibecare/internal/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFaceService_Save(t *testing.T) {
	userID := uuid.NewString()
	now := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name           string
		result         string
		timestamp      string
		wantErr        error
		wantFaces      int
		wantEmotion    string
		wantConfidence *float64
		wantAt         time.Time
	}{
		{
			name:           "first prediction is stored",
			result:         `{"faces_detected":2,"predictions":[{"predicted_emotion":"Happy","confidence":93.1,"all_emotions":{"Happy":0.93,"Sad":0.07},"bounding_box":{"x":1,"y":2,"width":30,"height":40}},{"predicted_emotion":"Sad"}]}`,
			timestamp:      `"2024-05-30T12:00:00Z"`,
			wantFaces:      2,
			wantEmotion:    "Happy",
			wantConfidence: ptr(93.1),
			wantAt:         time.Date(2024, 5, 30, 12, 0, 0, 0, time.UTC),
		},
		{
			name:        "faces default to one prediction",
			result:      `{"predictions":[{"predicted_emotion":"Neutral"}]}`,
			timestamp:   `"yesterday"`,
			wantFaces:   1,
			wantEmotion: "Neutral",
			wantAt:      now,
		},
		{
			name:           "confidence as numeric string",
			result:         `{"predictions":[{"predicted_emotion":"Sad","confidence":"87.5"}]}`,
			timestamp:      `1700000000000`,
			wantFaces:      1,
			wantEmotion:    "Sad",
			wantConfidence: ptr(87.5),
			wantAt:         time.UnixMilli(1700000000000).UTC(),
		},
		{
			name:        "unusable confidence is dropped",
			result:      `{"faces_detected":"one","predictions":[{"predicted_emotion":"Fear","confidence":"high"}]}`,
			timestamp:   `"1700000000000"`,
			wantFaces:   1,
			wantEmotion: "Fear",
			wantAt:      time.UnixMilli(1700000000000).UTC(),
		},
		{
			name:      "no predictions and no timestamp",
			result:    `{"predictions":[]}`,
			wantFaces: 0,
			wantAt:    now,
		},
		{
			name:      "non object result is kept raw",
			result:    `"smile"`,
			timestamp: `null`,
			wantFaces: 0,
			wantAt:    now,
		},
		{name: "missing result", result: ``, wantErr: ErrResultRequired},
		{name: "null result", result: `null`, wantErr: ErrResultRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := NewMockFaceStore(ctrl)
			svc := NewFaceService(store)
			svc.now = func() time.Time { return now }

			if tt.wantErr == nil {
				store.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
			}

			var ts json.RawMessage
			if tt.timestamp != "" {
				ts = json.RawMessage(tt.timestamp)
			}

			entry, err := svc.Save(context.Background(), userID, json.RawMessage(tt.result), ts)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantFaces, entry.FacesDetected)
			assert.Equal(t, tt.wantEmotion, entry.PredictedEmotion)
			assert.Equal(t, tt.wantConfidence, entry.Confidence)
			assert.Equal(t, tt.wantAt, entry.CapturedAt)
			assert.JSONEq(t, tt.result, string(entry.RawResult))
		})
	}
}

func TestFaceService_History(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := NewMockFaceStore(ctrl)
	svc := NewFaceService(store)

	_, err := svc.History(context.Background(), "nope", pagination.New(1, 10, pagination.DefaultHistoryLimit))
	assert.ErrorIs(t, err, ErrInvalidID)

	userID := uuid.NewString()
	p := pagination.New(2, 10, pagination.DefaultHistoryLimit)
	store.EXPECT().ListByUser(gomock.Any(), userID, p).Return(pagination.Page[models.FaceExpression]{Items: []models.FaceExpression{}}, nil)

	page, err := svc.History(context.Background(), userID, p)
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.False(t, page.HasMore)
}

func ptr[T any](v T) *T { return &v }
