package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/vibecare/internal/models"
	"github.com/sbilibin2017/vibecare/internal/services"
)

//go:generate mockgen -source=stories.go -destination=mock_stories.go -package=handlers

// StoryBoard defines the success story operations of the public routes.
type StoryBoard interface {
	Create(ctx context.Context, s *models.SuccessStory) error
	Published(ctx context.Context) ([]models.SuccessStory, error)
	Delete(ctx context.Context, id string) error
}

// CreateStoryRequest submits a story for moderation
// swagger:model CreateStoryRequest
type CreateStoryRequest struct {
	// required: true
	UserID string `json:"userId"`
	// required: true
	Title string `json:"title"`
	// required: true
	Subtitle string `json:"subtitle"`
	// required: true
	Story string `json:"story"`
}

// CreateStoryResponse returns the pending story
// swagger:model CreateStoryResponse
type CreateStoryResponse struct {
	Message string               `json:"message"`
	Story   *models.SuccessStory `json:"story"`
}

// NewListStoriesHandler lists published stories, newest first.
// @Summary Published success stories
// @Tags stories
// @Produce json
// @Success 200 {array} models.SuccessStory
// @Router /success-stories [get]
func NewListStoriesHandler(svc StoryBoard) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stories, err := svc.Published(r.Context())
		if err != nil {
			writeServiceError(w, r, err, "Server error")
			return
		}
		writeJSON(w, http.StatusOK, nonNil(stories))
	}
}

// NewCreateStoryHandler stores a pending story.
// @Summary Create success story
// @Tags stories
// @Accept json
// @Produce json
// @Param request body handlers.CreateStoryRequest true "Story"
// @Success 201 {object} handlers.CreateStoryResponse
// @Failure 400 {object} handlers.ErrorResponse "All fields are required"
// @Router /success-stories [post]
func NewCreateStoryHandler(svc StoryBoard) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateStoryRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		story := &models.SuccessStory{UserID: req.UserID, Title: req.Title, Subtitle: req.Subtitle, Story: req.Story}
		if err := svc.Create(r.Context(), story); err != nil {
			if errors.Is(err, services.ErrMissingFields) {
				writeError(w, http.StatusBadRequest, "All fields are required")
				return
			}
			writeServiceError(w, r, err, "Server error")
			return
		}

		writeJSON(w, http.StatusCreated, CreateStoryResponse{Message: "Story added successfully", Story: story})
	}
}

// NewDeleteStoryHandler deletes a story.
// @Summary Delete success story
// @Tags stories
// @Produce json
// @Param id path string true "Story ID"
// @Success 200 {object} handlers.MessageResponse
// @Failure 404 {object} handlers.ErrorResponse "Story not found"
// @Router /success-stories/{id} [delete]
func NewDeleteStoryHandler(svc StoryBoard) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
			writeServiceError(w, r, err, "Server error")
			return
		}
		writeJSON(w, http.StatusOK, MessageResponse{Status: StatusSuccess, Message: "Story deleted successfully"})
	}
}
