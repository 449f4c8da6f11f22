package handlers

import (
	"context"
	"encoding/json"
	"net/http"
)

//go:generate mockgen -source=predict.go -destination=mock_predict.go -package=handlers

// Predictor forwards features to the inference service.
type Predictor interface {
	Predict(ctx context.Context, features json.RawMessage) (json.RawMessage, error)
}

// PredictRequest carries the model features
// swagger:model PredictRequest
type PredictRequest struct {
	// required: true
	Features json.RawMessage `json:"features" swaggertype:"object"`
}

// NewPredictHandler proxies features and returns the inference body unchanged.
// @Summary Predict
// @Tags prediction
// @Accept json
// @Produce json
// @Param request body handlers.PredictRequest true "Features"
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} handlers.ErrorResponse "Failed to get prediction"
// @Router /predict [post]
func NewPredictHandler(svc Predictor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req PredictRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		out, err := svc.Predict(r.Context(), req.Features)
		if err != nil {
			writeServiceError(w, r, err, "Failed to get prediction")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(out)
	}
}
