package services

import (
	"context"
	"encoding/json"

	"github.com/sbilibin2017/vibecare/internal/logger"
)

//go:generate mockgen -source=prediction.go -destination=mock_prediction.go -package=services

// Predictor forwards features to the inference service.
type Predictor interface {
	Predict(ctx context.Context, features json.RawMessage) (json.RawMessage, error)
}

// PredictionService proxies prediction requests.
type PredictionService struct {
	predictor Predictor
}

// NewPredictionService creates a new PredictionService instance.
func NewPredictionService(predictor Predictor) *PredictionService {
	return &PredictionService{predictor: predictor}
}

// Predict returns the inference response body unchanged.
func (svc *PredictionService) Predict(ctx context.Context, features json.RawMessage) (json.RawMessage, error) {
	if len(features) == 0 || string(features) == "null" {
		return nil, ErrMissingFields
	}

	out, err := svc.predictor.Predict(ctx, features)
	if err != nil {
		logger.FromContext(ctx).Errorw("prediction failed", "err", err)
		return nil, err
	}
	return out, nil
}
