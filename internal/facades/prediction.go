package facades

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sbilibin2017/vibecare/internal/logger"
)

// ErrPredictionFailed is returned when the inference service does not answer with 2xx.
var ErrPredictionFailed = errors.New("prediction service error")

// PredictionHTTPFacade forwards feature vectors to the external inference service.
type PredictionHTTPFacade struct {
	client *resty.Client
}

// NewPredictionHTTPFacade creates a facade for the service at baseURL.
func NewPredictionHTTPFacade(baseURL string, timeout time.Duration) *PredictionHTTPFacade {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(timeout)

	return &PredictionHTTPFacade{client: cli}
}

// Predict posts {"features": features} to /predict and returns the response body unchanged.
func (f *PredictionHTTPFacade) Predict(ctx context.Context, features json.RawMessage) (json.RawMessage, error) {
	if len(features) == 0 {
		features = json.RawMessage("null")
	}

	resp, err := f.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]json.RawMessage{"features": features}).
		Post("/predict")
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to call prediction service", "error", err)
		return nil, fmt.Errorf("predict request: %w", err)
	}

	if resp.StatusCode() < http.StatusOK || resp.StatusCode() >= http.StatusMultipleChoices {
		logger.FromContext(ctx).Errorw("prediction service returned error",
			"status", resp.StatusCode(), "body", strings.TrimSpace(resp.String()))
		return nil, fmt.Errorf("%w: http %d", ErrPredictionFailed, resp.StatusCode())
	}

	body := resp.Body()
	if !json.Valid(body) {
		return nil, fmt.Errorf("%w: invalid json body", ErrPredictionFailed)
	}

	return json.RawMessage(body), nil
}
