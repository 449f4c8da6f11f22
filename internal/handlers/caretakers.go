package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/vibecare/internal/models"
)

//go:generate mockgen -source=caretakers.go -destination=mock_caretakers.go -package=handlers

// CaretakerRegistry defines the caretaker operations.
type CaretakerRegistry interface {
	Add(ctx context.Context, userID, name, code string) (*models.Caretaker, error)
	List(ctx context.Context, userID string) ([]models.Caretaker, error)
	Delete(ctx context.Context, id string) error
	Verify(ctx context.Context, name, code string) (*models.Caretaker, error)
	LinkedUser(ctx context.Context, caretakerID string) (*models.Caretaker, *models.User, error)
}

// AddCaretakerRequest links a caretaker to a user
// swagger:model AddCaretakerRequest
type AddCaretakerRequest struct {
	// required: true
	UserID string `json:"userId"`
	// required: true
	CaretakerName string `json:"caretakerName"`
	// required: true
	CaretakerOTP string `json:"caretakerOtp"`
}

// VerifyCaretakerRequest checks caretaker credentials
// swagger:model VerifyCaretakerRequest
type VerifyCaretakerRequest struct {
	Name string `json:"name"`
	OTP  string `json:"otp"`
}

// VerifyCaretakerResponse identifies the caretaker and followed user
// swagger:model VerifyCaretakerResponse
type VerifyCaretakerResponse struct {
	Status      string `json:"status"`
	CaretakerID string `json:"caretakerId"`
	UserID      string `json:"userId"`
}

// CaretakersResponse lists caretakers of a user
// swagger:model CaretakersResponse
type CaretakersResponse struct {
	Status     string             `json:"status"`
	Caretakers []models.Caretaker `json:"caretakers"`
}

// LinkedUser is the account a caretaker follows
// swagger:model LinkedUser
type LinkedUser struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
}

// LinkedUserResponse returns the followed account
// swagger:model LinkedUserResponse
type LinkedUserResponse struct {
	Status      string     `json:"status"`
	CaretakerID string     `json:"caretakerId"`
	User        LinkedUser `json:"user"`
}

// NewAddCaretakerHandler registers a caretaker.
// @Summary Add caretaker
// @Tags caretakers
// @Accept json
// @Produce json
// @Param request body handlers.AddCaretakerRequest true "Caretaker"
// @Success 200 {object} handlers.MessageResponse
// @Failure 400 {object} handlers.ErrorResponse "Caretaker name must be unique for this user"
// @Router /add-caretaker [post]
func NewAddCaretakerHandler(svc CaretakerRegistry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AddCaretakerRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		if _, err := svc.Add(r.Context(), req.UserID, req.CaretakerName, req.CaretakerOTP); err != nil {
			writeServiceError(w, r, err, "")
			return
		}

		writeJSON(w, http.StatusOK, MessageResponse{Status: StatusSuccess, Message: "Caretaker added successfully"})
	}
}

// NewDeleteCaretakerHandler removes a caretaker.
// @Summary Delete caretaker
// @Tags caretakers
// @Produce json
// @Param id path string true "Caretaker ID"
// @Success 200 {object} handlers.MessageResponse
// @Failure 404 {object} handlers.ErrorResponse "Caretaker not found"
// @Router /delete-caretaker/{id} [delete]
func NewDeleteCaretakerHandler(svc CaretakerRegistry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
			writeServiceError(w, r, err, "")
			return
		}
		writeJSON(w, http.StatusOK, MessageResponse{Status: StatusSuccess, Message: "Caretaker deleted successfully"})
	}
}

// NewListCaretakersHandler lists a user's caretakers.
// @Summary List caretakers
// @Tags caretakers
// @Produce json
// @Param userId query string true "User ID"
// @Success 200 {object} handlers.CaretakersResponse
// @Router /get-caretakers [get]
func NewListCaretakersHandler(svc CaretakerRegistry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caretakers, err := svc.List(r.Context(), r.URL.Query().Get("userId"))
		if err != nil {
			writeServiceError(w, r, err, "")
			return
		}
		writeJSON(w, http.StatusOK, CaretakersResponse{Status: StatusSuccess, Caretakers: nonNil(caretakers)})
	}
}

// NewVerifyCaretakerHandler checks a caretaker name and access code.
// @Summary Verify caretaker
// @Tags caretakers
// @Accept json
// @Produce json
// @Param request body handlers.VerifyCaretakerRequest true "Credentials"
// @Success 200 {object} handlers.VerifyCaretakerResponse
// @Failure 401 {object} handlers.ErrorResponse "Invalid credentials"
// @Router /verify-caretaker [post]
func NewVerifyCaretakerHandler(svc CaretakerRegistry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req VerifyCaretakerRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		c, err := svc.Verify(r.Context(), req.Name, req.OTP)
		if err != nil {
			writeServiceError(w, r, err, "Server error")
			return
		}

		writeJSON(w, http.StatusOK, VerifyCaretakerResponse{Status: StatusSuccess, CaretakerID: c.ID, UserID: c.UserID})
	}
}

// NewLinkedUserHandler returns the account a caretaker follows.
// @Summary User by caretaker
// @Tags caretakers
// @Produce json
// @Param caretakerId query string true "Caretaker ID"
// @Success 200 {object} handlers.LinkedUserResponse
// @Failure 404 {object} handlers.ErrorResponse "Caretaker not found"
// @Router /get-user-by-caretaker [get]
func NewLinkedUserHandler(svc CaretakerRegistry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, user, err := svc.LinkedUser(r.Context(), r.URL.Query().Get("caretakerId"))
		if err != nil {
			writeServiceError(w, r, err, "")
			return
		}

		writeJSON(w, http.StatusOK, LinkedUserResponse{
			Status:      StatusSuccess,
			CaretakerID: c.ID,
			User:        LinkedUser{ID: user.ID, Name: user.Name, Username: user.Username},
		})
	}
}
