package services

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

// Error variables
var (
	ErrMissingID              = errors.New("id is required")
	ErrInvalidID              = errors.New("invalid id format")
	ErrMissingFields          = errors.New("missing required fields")
	ErrUserNotFound           = errors.New("user not found")
	ErrUserDoesNotExist       = errors.New("user does not exist")
	ErrEmailAlreadyInUse      = errors.New("email already in use")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrAccountDeactivated     = errors.New("account deactivated")
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrInvalidOrExpiredOTP    = errors.New("invalid or expired otp")
	ErrResetUserNotFound      = errors.New("reset requested for unknown user")
	ErrInvalidOTP             = errors.New("invalid otp")
	ErrOTPExpired             = errors.New("otp expired")
	ErrOTPEmailFailed         = errors.New("failed to send otp email")
	ErrInvalidStatus          = errors.New("invalid status")
	ErrFeedbackNotFound       = errors.New("feedback not found")
	ErrNoFeedback             = errors.New("no feedback found for this user")
	ErrTicketExists           = errors.New("ticket number already exists")
	ErrAlreadyResponded       = errors.New("feedback already responded")
	ErrResponseRequired       = errors.New("response is required")
	ErrStoryNotFound          = errors.New("story not found")
	ErrDiaryNotFound          = errors.New("diary entry not found")
	ErrCaretakerNotFound      = errors.New("caretaker not found")
	ErrCaretakerExists        = errors.New("caretaker name must be unique for this user")
	ErrCaretakerCredentials   = errors.New("invalid caretaker credentials")
	ErrNoResult               = errors.New("no result found")
	ErrInvalidMessage         = errors.New("each message must have text and sender")
	ErrResultRequired         = errors.New("result payload is required")
	ErrImageNotFound          = errors.New("image not found")
	ErrEmojiRequired          = errors.New("emoji query is required")
	ErrEmojiNotFound          = errors.New("emoji not found")
)

// validateID checks that id is a well formed UUID.
func validateID(id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrMissingID
	}
	if _, err := uuid.Parse(id); err != nil {
		return ErrInvalidID
	}
	return nil
}

// normalizeEmail lowercases and trims an address.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
