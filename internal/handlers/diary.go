package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/vibecare/internal/models"
	"github.com/sbilibin2017/vibecare/internal/services"
)

//go:generate mockgen -source=diary.go -destination=mock_diary.go -package=handlers

// Diary defines the diary operations.
type Diary interface {
	Create(ctx context.Context, userID, note string) (*models.DiaryEntry, error)
	List(ctx context.Context, userID string) ([]models.DiaryEntry, error)
	Delete(ctx context.Context, id string) error
}

// DiaryRequest adds a note
// swagger:model DiaryRequest
type DiaryRequest struct {
	// required: true
	UserID string `json:"userId"`
	// required: true
	Note string `json:"note"`
}

// DiaryResponse returns a saved note
// swagger:model DiaryResponse
type DiaryResponse struct {
	Message string             `json:"message"`
	Entry   *models.DiaryEntry `json:"entry"`
}

// NewCreateDiaryHandler stores a note.
// @Summary Add diary entry
// @Tags diary
// @Accept json
// @Produce json
// @Param request body handlers.DiaryRequest true "Entry"
// @Success 201 {object} handlers.DiaryResponse
// @Failure 400 {object} handlers.ErrorResponse "User ID and note are required"
// @Router /diary [post]
func NewCreateDiaryHandler(svc Diary) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req DiaryRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		entry, err := svc.Create(r.Context(), req.UserID, req.Note)
		if err != nil {
			if errors.Is(err, services.ErrMissingFields) {
				writeError(w, http.StatusBadRequest, "User ID and note are required")
				return
			}
			writeServiceError(w, r, err, "Server error")
			return
		}

		writeJSON(w, http.StatusCreated, DiaryResponse{Message: "Diary entry saved successfully", Entry: entry})
	}
}

// NewListDiaryHandler lists a user's notes, newest first.
// @Summary List diary entries
// @Tags diary
// @Produce json
// @Param userId query string true "User ID"
// @Success 200 {array} models.DiaryEntry
// @Failure 400 {object} handlers.ErrorResponse
// @Router /diary [get]
func NewListDiaryHandler(svc Diary) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entries, err := svc.List(r.Context(), r.URL.Query().Get("userId"))
		if errors.Is(err, services.ErrMissingID) {
			writeError(w, http.StatusBadRequest, "User ID is required")
			return
		}
		if err != nil {
			writeServiceError(w, r, err, "Server error")
			return
		}
		writeJSON(w, http.StatusOK, nonNil(entries))
	}
}

// NewDeleteDiaryHandler deletes a note.
// @Summary Delete diary entry
// @Tags diary
// @Produce json
// @Param id path string true "Entry ID"
// @Success 200 {object} handlers.MessageResponse
// @Failure 404 {object} handlers.ErrorResponse "Diary entry not found"
// @Router /diary/{id} [delete]
func NewDeleteDiaryHandler(svc Diary) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
			writeServiceError(w, r, err, "Server error")
			return
		}
		writeJSON(w, http.StatusOK, MessageResponse{Status: StatusSuccess, Message: "Diary entry deleted successfully"})
	}
}
