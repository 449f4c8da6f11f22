package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/vibecare/internal/models"
	"github.com/sbilibin2017/vibecare/internal/pagination"
	"github.com/sbilibin2017/vibecare/internal/services"
)

//go:generate mockgen -source=face.go -destination=mock_face.go -package=handlers

// ExpressionKeeper stores and pages face-expression detections.
type ExpressionKeeper interface {
	Save(ctx context.Context, userID string, result, timestamp json.RawMessage) (*models.FaceExpression, error)
	History(ctx context.Context, userID string, p pagination.Params) (pagination.Page[models.FaceExpression], error)
}

// SaveFaceRequest carries one inference result
// swagger:model SaveFaceRequest
type SaveFaceRequest struct {
	// required: true
	UserID string `json:"userId"`
	// required: true
	Result json.RawMessage `json:"result" swaggertype:"object"`
	// RFC3339 string or epoch milliseconds
	Timestamp json.RawMessage `json:"timestamp" swaggertype:"string"`
}

// FaceHistoryResponse is one page of detections
// swagger:model FaceHistoryResponse
type FaceHistoryResponse struct {
	Status  string                  `json:"status"`
	Data    []models.FaceExpression `json:"data"`
	Page    int                     `json:"page"`
	Limit   int                     `json:"limit"`
	HasMore bool                    `json:"hasMore"`
}

// NewSaveFaceHandler stores the first prediction of an inference result.
// @Summary Save face expression
// @Tags face
// @Accept json
// @Produce json
// @Param request body handlers.SaveFaceRequest true "Inference result"
// @Success 201 {object} handlers.DataResponse{data=models.FaceExpression}
// @Failure 400 {object} handlers.ErrorResponse "Valid userId is required"
// @Failure 500 {object} handlers.ErrorResponse "Failed to save face data"
// @Router /save-face-expression-result [post]
func NewSaveFaceHandler(svc ExpressionKeeper) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SaveFaceRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		entry, err := svc.Save(r.Context(), req.UserID, req.Result, req.Timestamp)
		switch {
		case errors.Is(err, services.ErrMissingID), errors.Is(err, services.ErrInvalidID):
			writeError(w, http.StatusBadRequest, "Valid userId is required")
			return
		case err != nil:
			writeServiceError(w, r, err, "Failed to save face data")
			return
		}

		writeJSON(w, http.StatusCreated, DataResponse{Status: StatusSuccess, Data: entry})
	}
}

// NewFaceHistoryHandler returns one page of a user's detections.
// @Summary Face expression history
// @Tags face
// @Produce json
// @Param userId path string true "User ID"
// @Param page query int false "Page, from 1"
// @Param limit query int false "Page size, default 10, max 50"
// @Success 200 {object} handlers.FaceHistoryResponse
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 500 {object} handlers.ErrorResponse "Failed to load history"
// @Router /face-expression-history/{userId} [get]
func NewFaceHistoryHandler(svc ExpressionKeeper) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p := pagination.Parse(r.URL.Query(), pagination.DefaultHistoryLimit)

		res, err := svc.History(r.Context(), chi.URLParam(r, "userId"), p)
		if err != nil {
			writeServiceError(w, r, err, "Failed to load history")
			return
		}

		writeJSON(w, http.StatusOK, FaceHistoryResponse{
			Status:  StatusSuccess,
			Data:    res.Items,
			Page:    p.Page,
			Limit:   p.Limit,
			HasMore: res.HasMore,
		})
	}
}
