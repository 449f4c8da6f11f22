package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/vibecare/internal/models"
)

//go:generate mockgen -source=assessments.go -destination=mock_assessments.go -package=handlers

// Assessor defines the questionnaire result operations.
type Assessor interface {
	Save(ctx context.Context, userID, kind string, score *float64, level string) (*models.AssessmentResult, error)
	Latest(ctx context.Context, userID, kind string) (*models.AssessmentResult, error)
	Summary(ctx context.Context, userID string) (*models.MentalHealthSummary, error)
	History(ctx context.Context, userID string) ([]models.AssessmentResult, error)
}

// DepressionResultRequest submits a BDI result
// swagger:model DepressionResultRequest
type DepressionResultRequest struct {
	// required: true
	UserID string `json:"userId"`
	// required: true
	BDIScore *float64 `json:"bdi_score"`
	// required: true
	DepressionLevel string `json:"depression_level"`
}

// DepressionResult is a stored BDI result
// swagger:model DepressionResult
type DepressionResult struct {
	ID              string    `json:"_id"`
	UserID          string    `json:"userId"`
	BDIScore        *float64  `json:"bdi_score"`
	DepressionLevel string    `json:"depression_level"`
	CreatedAt       time.Time `json:"createdAt"`
}

// DepressionResultResponse wraps the latest BDI result
// swagger:model DepressionResultResponse
type DepressionResultResponse struct {
	Status string           `json:"status"`
	Result DepressionResult `json:"result"`
}

// AnxietyResultRequest submits a BAI result
// swagger:model AnxietyResultRequest
type AnxietyResultRequest struct {
	// required: true
	UserID string `json:"userId"`
	// required: true
	BAIScore *float64 `json:"bai_score"`
	// required: true
	AnxietyLevel string `json:"anxiety_level"`
}

// AnxietyResult is the latest BAI score and level
// swagger:model AnxietyResult
type AnxietyResult struct {
	BAIScore     *float64 `json:"bai_score"`
	AnxietyLevel string   `json:"anxiety_level"`
}

// AnxietyResultResponse wraps the latest BAI result
// swagger:model AnxietyResultResponse
type AnxietyResultResponse struct {
	Status string        `json:"status"`
	Result AnxietyResult `json:"result"`
}

// StressResultRequest submits a stress level
// swagger:model StressResultRequest
type StressResultRequest struct {
	// required: true
	UserID string `json:"userId"`
	// required: true
	StressLevel string `json:"stress_level"`
}

// StressResult is a stored stress level
// swagger:model StressResult
type StressResult struct {
	ID          string    `json:"_id"`
	UserID      string    `json:"userId"`
	StressLevel string    `json:"stress_level"`
	CreatedAt   time.Time `json:"createdAt"`
}

// StressResultResponse wraps a stress result
// swagger:model StressResultResponse
type StressResultResponse struct {
	Status  string       `json:"status"`
	Message string       `json:"message,omitempty"`
	Data    StressResult `json:"data"`
}

func toStressResult(r *models.AssessmentResult) StressResult {
	return StressResult{ID: r.ID, UserID: r.UserID, StressLevel: r.Level, CreatedAt: r.CreatedAt}
}

// NewSaveDepressionHandler stores a BDI result.
// @Summary Save depression result
// @Tags assessments
// @Accept json
// @Produce json
// @Param request body handlers.DepressionResultRequest true "Result"
// @Success 200 {object} handlers.MessageResponse
// @Failure 400 {object} handlers.ErrorResponse "Missing required fields"
// @Router /depression-result [post]
func NewSaveDepressionHandler(svc Assessor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req DepressionResultRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if req.BDIScore == nil {
			writeError(w, http.StatusBadRequest, "Missing required fields")
			return
		}

		if _, err := svc.Save(r.Context(), req.UserID, models.AssessmentDepression, req.BDIScore, req.DepressionLevel); err != nil {
			writeServiceError(w, r, err, "")
			return
		}
		writeJSON(w, http.StatusOK, MessageResponse{Status: StatusSuccess, Message: "Result saved successfully"})
	}
}

// NewLatestDepressionHandler returns the newest BDI result.
// @Summary Latest depression result
// @Tags assessments
// @Produce json
// @Param userId query string true "User ID"
// @Success 200 {object} handlers.DepressionResultResponse
// @Failure 404 {object} handlers.ErrorResponse "No result found"
// @Router /get-latest-result [get]
func NewLatestDepressionHandler(svc Assessor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, err := svc.Latest(r.Context(), r.URL.Query().Get("userId"), models.AssessmentDepression)
		if err != nil {
			writeServiceError(w, r, err, "")
			return
		}
		writeJSON(w, http.StatusOK, DepressionResultResponse{
			Status: StatusSuccess,
			Result: DepressionResult{ID: res.ID, UserID: res.UserID, BDIScore: res.Score, DepressionLevel: res.Level, CreatedAt: res.CreatedAt},
		})
	}
}

// NewSaveAnxietyHandler stores a BAI result.
// @Summary Save anxiety result
// @Tags assessments
// @Accept json
// @Produce json
// @Param request body handlers.AnxietyResultRequest true "Result"
// @Success 200 {object} handlers.MessageResponse
// @Failure 400 {object} handlers.ErrorResponse "Missing required fields"
// @Router /anxiety-result [post]
func NewSaveAnxietyHandler(svc Assessor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AnxietyResultRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if req.BAIScore == nil {
			writeError(w, http.StatusBadRequest, "Missing required fields")
			return
		}

		if _, err := svc.Save(r.Context(), req.UserID, models.AssessmentAnxiety, req.BAIScore, req.AnxietyLevel); err != nil {
			writeServiceError(w, r, err, "")
			return
		}
		writeJSON(w, http.StatusOK, MessageResponse{Status: StatusSuccess, Message: "Result saved successfully"})
	}
}

// NewLatestAnxietyHandler returns the newest BAI score and level.
// @Summary Latest anxiety result
// @Tags assessments
// @Produce json
// @Param userId query string true "User ID"
// @Success 200 {object} handlers.AnxietyResultResponse
// @Failure 404 {object} handlers.ErrorResponse "No result found"
// @Router /get-latest-anxiety-result [get]
func NewLatestAnxietyHandler(svc Assessor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, err := svc.Latest(r.Context(), r.URL.Query().Get("userId"), models.AssessmentAnxiety)
		if err != nil {
			writeServiceError(w, r, err, "")
			return
		}
		writeJSON(w, http.StatusOK, AnxietyResultResponse{
			Status: StatusSuccess,
			Result: AnxietyResult{BAIScore: res.Score, AnxietyLevel: res.Level},
		})
	}
}

// NewSaveStressHandler stores a stress level.
// @Summary Save stress result
// @Tags assessments
// @Accept json
// @Produce json
// @Param request body handlers.StressResultRequest true "Result"
// @Success 200 {object} handlers.StressResultResponse
// @Failure 400 {object} handlers.ErrorResponse
// @Router /stress-result [post]
func NewSaveStressHandler(svc Assessor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req StressResultRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		res, err := svc.Save(r.Context(), req.UserID, models.AssessmentStress, nil, req.StressLevel)
		if err != nil {
			writeServiceError(w, r, err, "")
			return
		}
		writeJSON(w, http.StatusOK, StressResultResponse{
			Status:  StatusSuccess,
			Message: "Stress result saved successfully",
			Data:    toStressResult(res),
		})
	}
}

// NewLatestStressHandler returns the newest stress level.
// @Summary Latest stress result
// @Tags assessments
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {object} handlers.StressResultResponse
// @Failure 404 {object} handlers.ErrorResponse "No result found"
// @Router /stress-result/latest/{userId} [get]
func NewLatestStressHandler(svc Assessor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, err := svc.Latest(r.Context(), chi.URLParam(r, "userId"), models.AssessmentStress)
		if err != nil {
			writeServiceError(w, r, err, "")
			return
		}
		writeJSON(w, http.StatusOK, StressResultResponse{Status: StatusSuccess, Data: toStressResult(res)})
	}
}

// NewMentalHealthSummaryHandler returns the latest level of every kind.
// @Summary Mental health summary
// @Tags assessments
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {object} handlers.DataResponse
// @Router /mental-health-summary/{userId} [get]
func NewMentalHealthSummaryHandler(svc Assessor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		summary, err := svc.Summary(r.Context(), chi.URLParam(r, "userId"))
		if err != nil {
			writeServiceError(w, r, err, "")
			return
		}
		writeJSON(w, http.StatusOK, DataResponse{Status: StatusSuccess, Data: summary})
	}
}

// NewMentalHealthHistoryHandler returns every result of a user, newest first.
// @Summary Mental health history
// @Tags assessments
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {object} handlers.DataResponse
// @Router /mental-health-history/{userId} [get]
func NewMentalHealthHistoryHandler(svc Assessor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		history, err := svc.History(r.Context(), chi.URLParam(r, "userId"))
		if err != nil {
			writeServiceError(w, r, err, "")
			return
		}
		writeJSON(w, http.StatusOK, DataResponse{Status: StatusSuccess, Data: nonNil(history)})
	}
}
