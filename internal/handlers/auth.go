package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/sbilibin2017/vibecare/internal/models"
	"github.com/sbilibin2017/vibecare/internal/services"
)

//go:generate mockgen -source=auth.go -destination=mock_auth.go -package=handlers

// Authenticator defines the account and OTP operations the auth handlers need.
type Authenticator interface {
	Register(ctx context.Context, name, username, email, password string) (*models.User, error)
	Login(ctx context.Context, attempt services.LoginAttempt) (string, *models.User, error)
	SendVerificationOTP(ctx context.Context, email string) error
	SendResetOTP(ctx context.Context, email string) error
	VerifyOTP(ctx context.Context, email, code string) error
	ForgotPassword(ctx context.Context, email string) error
	VerifyResetOTP(ctx context.Context, email, code string) error
	ResetPassword(ctx context.Context, email, newPassword string) error
}

// RegisterRequest represents the JSON body for registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// default: Jane Doe
	Name string `json:"Name"`
	// default: jane
	Username string `json:"Username"`
	// required: true
	// default: jane@example.com
	Email string `json:"Email"`
	// required: true
	// default: secret123
	Password string `json:"Password"`
}

// RegisterResponse represents a successful registration
// swagger:model RegisterResponse
type RegisterResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	UserID  string `json:"userId"`
}

// LoginRequest represents the JSON body for login
// swagger:model LoginRequest
type LoginRequest struct {
	// required: true
	Email string `json:"Email"`
	// required: true
	Password string `json:"Password"`
}

// LoginResponse represents a successful login
// swagger:model LoginResponse
type LoginResponse struct {
	// default: ok
	Status string `json:"status"`
	// JWT token
	// default: JWT_TOKEN
	Data   string `json:"data"`
	UserID string `json:"userId"`
}

// OTPRequest carries the address an OTP is sent to or checked for
// swagger:model OTPRequest
type OTPRequest struct {
	// required: true
	Email string `json:"Email"`
	OTP   string `json:"otp,omitempty"`
}

// ResetPasswordRequest sets a new password
// swagger:model ResetPasswordRequest
type ResetPasswordRequest struct {
	// required: true
	Email string `json:"Email"`
	// required: true
	NewPassword string `json:"newPassword"`
}

// NewRegisterHandler returns an HTTP handler for user registration.
// @Summary Register user
// @Tags auth
// @Accept json
// @Produce json
// @Param registerRequest body handlers.RegisterRequest true "Register Request"
// @Success 200 {object} handlers.RegisterResponse
// @Failure 400 {object} handlers.ErrorResponse "Email already in use"
// @Failure 500 {object} handlers.ErrorResponse
// @Router /register [post]
func NewRegisterHandler(svc Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		user, err := svc.Register(r.Context(), req.Name, req.Username, req.Email, req.Password)
		if err != nil {
			writeServiceError(w, r, err, "")
			return
		}

		writeJSON(w, http.StatusOK, RegisterResponse{
			Status:  StatusSuccess,
			Message: "User registered successfully",
			UserID:  user.ID,
		})
	}
}

// NewLoginHandler returns an HTTP handler for user login.
// @Summary User login
// @Description Authenticate user, record the attempt and return a JWT token
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body handlers.LoginRequest true "Login Request"
// @Success 200 {object} handlers.LoginResponse "JWT token returned"
// @Failure 400 {object} handlers.ErrorResponse "Invalid credentials"
// @Failure 403 {object} handlers.ErrorResponse "Account deactivated"
// @Failure 404 {object} handlers.ErrorResponse "User does not exist"
// @Router /login-user [post]
func NewLoginHandler(svc Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		token, user, err := svc.Login(r.Context(), services.LoginAttempt{
			Email:     req.Email,
			Password:  req.Password,
			IP:        r.RemoteAddr,
			UserAgent: r.UserAgent(),
		})
		if err != nil {
			writeServiceError(w, r, err, "")
			return
		}

		writeJSON(w, http.StatusOK, LoginResponse{Status: StatusOK, Data: token, UserID: user.ID})
	}
}

// otpHandler decodes an OTPRequest, runs call and answers with message.
func otpHandler(call func(ctx context.Context, req OTPRequest) error, message string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req OTPRequest
		if err := decodeJSON(r, &req); err != nil || req.Email == "" {
			writeError(w, http.StatusBadRequest, "Email is required")
			return
		}

		if err := call(r.Context(), req); err != nil {
			writeServiceError(w, r, err, "")
			return
		}

		writeJSON(w, http.StatusOK, MessageResponse{Status: StatusSuccess, Message: message})
	}
}

// NewSendOTPHandler e-mails a verification code to an unregistered address.
// @Summary Send verification OTP
// @Tags otp
// @Accept json
// @Produce json
// @Param request body handlers.OTPRequest true "Email"
// @Success 200 {object} handlers.MessageResponse
// @Failure 400 {object} handlers.ErrorResponse "Email already registered"
// @Failure 500 {object} handlers.ErrorResponse "Failed to send OTP email"
// @Router /send-otp [post]
func NewSendOTPHandler(svc Authenticator) http.HandlerFunc {
	return otpHandler(func(ctx context.Context, req OTPRequest) error {
		return svc.SendVerificationOTP(ctx, req.Email)
	}, "OTP sent successfully")
}

// NewSendResetOTPHandler e-mails a verification code without an existence check.
// @Summary Send reset OTP
// @Tags otp
// @Accept json
// @Produce json
// @Param request body handlers.OTPRequest true "Email"
// @Success 200 {object} handlers.MessageResponse
// @Failure 500 {object} handlers.ErrorResponse "Failed to send OTP email"
// @Router /send-reset-otp [post]
func NewSendResetOTPHandler(svc Authenticator) http.HandlerFunc {
	return otpHandler(func(ctx context.Context, req OTPRequest) error {
		return svc.SendResetOTP(ctx, req.Email)
	}, "Reset OTP sent successfully")
}

// NewVerifyOTPHandler consumes a cached verification code.
// @Summary Verify OTP
// @Tags otp
// @Accept json
// @Produce json
// @Param request body handlers.OTPRequest true "Email and otp"
// @Success 200 {object} handlers.MessageResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid or expired OTP"
// @Router /verify-otp [post]
func NewVerifyOTPHandler(svc Authenticator) http.HandlerFunc {
	return otpHandler(func(ctx context.Context, req OTPRequest) error {
		return svc.VerifyOTP(ctx, req.Email, req.OTP)
	}, "OTP verified successfully")
}

// NewForgotPasswordHandler stores a reset code on the account and e-mails it.
// @Summary Forgot password
// @Tags otp
// @Accept json
// @Produce json
// @Param request body handlers.OTPRequest true "Email"
// @Success 200 {object} handlers.MessageResponse
// @Failure 404 {object} handlers.ErrorResponse "Email not registered!"
// @Router /forgot-password [post]
func NewForgotPasswordHandler(svc Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req OTPRequest
		if err := decodeJSON(r, &req); err != nil || req.Email == "" {
			writeError(w, http.StatusBadRequest, "Email is required")
			return
		}

		err := svc.ForgotPassword(r.Context(), req.Email)
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			writeError(w, http.StatusNotFound, "Email not registered!")
			return
		case err != nil:
			writeServiceError(w, r, err, "")
			return
		}

		writeJSON(w, http.StatusOK, MessageResponse{Status: StatusSuccess, Message: "OTP sent to your email"})
	}
}

// NewVerifyResetOTPHandler checks a reset code against the account.
// @Summary Verify reset OTP
// @Tags otp
// @Accept json
// @Produce json
// @Param request body handlers.OTPRequest true "Email and otp"
// @Success 200 {object} handlers.MessageResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid otp or OTP expired"
// @Router /verifyOtp [post]
func NewVerifyResetOTPHandler(svc Authenticator) http.HandlerFunc {
	return otpHandler(func(ctx context.Context, req OTPRequest) error {
		return svc.VerifyResetOTP(ctx, req.Email, req.OTP)
	}, "OTP verified")
}

// NewResetPasswordHandler sets a new password inside an open reset window.
// @Summary Reset password
// @Tags otp
// @Accept json
// @Produce json
// @Param request body handlers.ResetPasswordRequest true "Email and new password"
// @Success 200 {object} handlers.MessageResponse
// @Failure 400 {object} handlers.ErrorResponse "OTP expired"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /reset-password [post]
func NewResetPasswordHandler(svc Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ResetPasswordRequest
		if err := decodeJSON(r, &req); err != nil || req.Email == "" || req.NewPassword == "" {
			writeError(w, http.StatusBadRequest, "Email and new password are required")
			return
		}

		if err := svc.ResetPassword(r.Context(), req.Email, req.NewPassword); err != nil {
			writeServiceError(w, r, err, "")
			return
		}

		writeJSON(w, http.StatusOK, MessageResponse{Status: StatusSuccess, Message: "Password reset successfully"})
	}
}
