// Package handlers exposes the VibeCare HTTP API and the admin console.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/vibecare/internal/facades"
	"github.com/sbilibin2017/vibecare/internal/logger"
	"github.com/sbilibin2017/vibecare/internal/services"
)

// Envelope statuses
const (
	StatusSuccess = "success"
	StatusError   = "error"
	StatusOK      = "ok"
)

// MessageResponse is the envelope of a write without a payload
// swagger:model MessageResponse
type MessageResponse struct {
	// default: success
	Status string `json:"status"`
	// default: Operation completed
	Message string `json:"message"`
}

// DataResponse is the envelope of a read
// swagger:model DataResponse
type DataResponse struct {
	// default: success
	Status string `json:"status"`
	Data   any    `json:"data"`
}

// ErrorResponse is returned on every failure
// swagger:model ErrorResponse
type ErrorResponse struct {
	// default: error
	Status string `json:"status"`
	// default: Internal server error
	Message string `json:"message"`
}

type errorMapping struct {
	err     error
	status  int
	message string
}

// errorTable maps service errors to HTTP statuses. The first match wins.
var errorTable = []errorMapping{
	{services.ErrMissingID, http.StatusBadRequest, "ID is required"},
	{services.ErrInvalidID, http.StatusBadRequest, "Invalid ID format"},
	{services.ErrMissingFields, http.StatusBadRequest, "Missing required fields"},
	{services.ErrUserNotFound, http.StatusNotFound, "User not found"},
	{services.ErrUserDoesNotExist, http.StatusNotFound, "User does not exist"},
	{services.ErrEmailAlreadyInUse, http.StatusBadRequest, "Email already in use"},
	{services.ErrInvalidCredentials, http.StatusBadRequest, "Invalid credentials"},
	{services.ErrAccountDeactivated, http.StatusForbidden, "Account deactivated"},
	{services.ErrEmailAlreadyRegistered, http.StatusBadRequest, "Email already registered"},
	{services.ErrInvalidOrExpiredOTP, http.StatusBadRequest, "Invalid or expired OTP"},
	{services.ErrResetUserNotFound, http.StatusBadRequest, "User not found"},
	{services.ErrInvalidOTP, http.StatusBadRequest, "Invalid otp"},
	{services.ErrOTPExpired, http.StatusBadRequest, "OTP expired"},
	{services.ErrOTPEmailFailed, http.StatusInternalServerError, "Failed to send OTP email"},
	{services.ErrInvalidStatus, http.StatusBadRequest, "Invalid status"},
	{services.ErrFeedbackNotFound, http.StatusNotFound, "Ticket not found"},
	{services.ErrNoFeedback, http.StatusNotFound, "No feedback found for this user"},
	{services.ErrTicketExists, http.StatusBadRequest, "Ticket number already exists"},
	{services.ErrAlreadyResponded, http.StatusBadRequest, "Feedback already responded"},
	{services.ErrResponseRequired, http.StatusBadRequest, "Response is required"},
	{services.ErrStoryNotFound, http.StatusNotFound, "Story not found"},
	{services.ErrDiaryNotFound, http.StatusNotFound, "Diary entry not found"},
	{services.ErrCaretakerNotFound, http.StatusNotFound, "Caretaker not found"},
	{services.ErrCaretakerExists, http.StatusBadRequest, "Caretaker name must be unique for this user"},
	{services.ErrCaretakerCredentials, http.StatusUnauthorized, "Invalid credentials"},
	{services.ErrNoResult, http.StatusNotFound, "No result found"},
	{services.ErrInvalidMessage, http.StatusBadRequest, "Each message must have text and sender"},
	{services.ErrResultRequired, http.StatusBadRequest, "result payload is required"},
	{services.ErrImageNotFound, http.StatusNotFound, "Image not found"},
	{services.ErrEmojiRequired, http.StatusBadRequest, "Emoji is required as query"},
	{services.ErrEmojiNotFound, http.StatusNotFound, "Emoji not found"},
	{facades.ErrPredictionFailed, http.StatusInternalServerError, "Failed to get prediction"},
}

// classify returns the status and client message for err. Unmapped errors are 500.
func classify(err error) (int, string) {
	for _, m := range errorTable {
		if errors.Is(err, m.err) {
			return m.status, m.message
		}
	}
	return http.StatusInternalServerError, "Internal server error"
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Status: StatusError, Message: message})
}

// writeServiceError maps err through the error table. fallback replaces the
// generic 500 message when set.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	status, message := classify(err)
	if status == http.StatusInternalServerError {
		logger.FromContext(r.Context()).Errorw("request failed", "path", r.URL.Path, "err", err)
		if fallback != "" && message == "Internal server error" {
			message = fallback
		}
	}
	writeError(w, status, message)
}

// nonNil keeps empty lists encoded as [] instead of null.
func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}

func decodeJSON(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}

// NewRootHandler reports that the service is running.
// @Summary Liveness
// @Tags system
// @Produce json
// @Success 200 {object} map[string]string
// @Router / [get]
func NewRootHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "Started"})
	}
}
