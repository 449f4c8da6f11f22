package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/vibecare/internal/models"
)

//go:generate mockgen -source=media.go -destination=mock_media.go -package=handlers

// MediaLibrary serves pictures and emoji lookups.
type MediaLibrary interface {
	RandomImages(ctx context.Context) ([]models.Image, error)
	Image(ctx context.Context, id string) (*models.Image, error)
	SearchEmoji(ctx context.Context, symbol string) (*models.EmojiMatch, error)
}

// NewRandomImagesHandler returns a random sample of five pictures.
// @Summary Random images
// @Tags media
// @Produce json
// @Success 200 {object} handlers.DataResponse{data=[]models.Image}
// @Failure 500 {object} handlers.ErrorResponse
// @Router /random-images [get]
func NewRandomImagesHandler(svc MediaLibrary) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		images, err := svc.RandomImages(r.Context())
		if err != nil {
			writeServiceError(w, r, err, "")
			return
		}
		writeJSON(w, http.StatusOK, DataResponse{Status: StatusSuccess, Data: nonNil(images)})
	}
}

// NewImageDetailsHandler returns a single picture.
// @Summary Image details
// @Tags media
// @Produce json
// @Param id path string true "Image ID"
// @Success 200 {object} handlers.DataResponse{data=models.Image}
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse "Image not found"
// @Failure 500 {object} handlers.ErrorResponse "Server error"
// @Router /image-details/{id} [get]
func NewImageDetailsHandler(svc MediaLibrary) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		img, err := svc.Image(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			writeServiceError(w, r, err, "Server error")
			return
		}
		writeJSON(w, http.StatusOK, DataResponse{Status: StatusSuccess, Data: img})
	}
}

// NewSearchEmojiHandler locates an emoji in the catalogue.
// @Summary Search emoji
// @Tags media
// @Produce json
// @Param q query string true "Emoji character"
// @Success 200 {object} models.EmojiMatch
// @Failure 400 {object} handlers.ErrorResponse "Emoji is required as query"
// @Failure 404 {object} handlers.ErrorResponse "Emoji not found"
// @Failure 500 {object} handlers.ErrorResponse
// @Router /searchEmoji [get]
func NewSearchEmojiHandler(svc MediaLibrary) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		match, err := svc.SearchEmoji(r.Context(), r.URL.Query().Get("q"))
		if err != nil {
			writeServiceError(w, r, err, "")
			return
		}
		writeJSON(w, http.StatusOK, match)
	}
}
