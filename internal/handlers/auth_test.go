package handlers

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/vibecare/internal/models"
	"github.com/sbilibin2017/vibecare/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestRegisterHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockAuthenticator(ctrl)

	tests := []struct {
		name         string
		inputBody    any
		mockSetup    func()
		expectedCode int
		expectedBody string
	}{
		{
			name:      "success",
			inputBody: RegisterRequest{Name: "Jane", Username: "jane", Email: "jane@example.com", Password: "secret"},
			mockSetup: func() {
				mockSvc.EXPECT().
					Register(gomock.Any(), "Jane", "jane", "jane@example.com", "secret").
					Return(&models.User{ID: testUserID}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"status":"success","message":"User registered successfully","userId":"` + testUserID + `"}`,
		},
		{
			name:         "invalid JSON",
			inputBody:    "{invalid json}",
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"status":"error","message":"invalid request body"}`,
		},
		{
			name:      "duplicate email",
			inputBody: RegisterRequest{Email: "jane@example.com", Password: "secret"},
			mockSetup: func() {
				mockSvc.EXPECT().
					Register(gomock.Any(), "", "", "jane@example.com", "secret").
					Return(nil, services.ErrEmailAlreadyInUse)
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"status":"error","message":"Email already in use"}`,
		},
		{
			name:      "internal error",
			inputBody: RegisterRequest{Email: "jane@example.com", Password: "secret"},
			mockSetup: func() {
				mockSvc.EXPECT().
					Register(gomock.Any(), "", "", "jane@example.com", "secret").
					Return(nil, errors.New("database error"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"status":"error","message":"Internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			w := serve(NewRegisterHandler(mockSvc), newJSONRequest(http.MethodPost, "/register", tt.inputBody))

			assert.Equal(t, tt.expectedCode, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}

func TestLoginHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockAuthenticator(ctrl)

	t.Run("success records client details", func(t *testing.T) {
		mockSvc.EXPECT().
			Login(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, a services.LoginAttempt) (string, *models.User, error) {
				assert.Equal(t, "jane@example.com", a.Email)
				assert.Equal(t, "secret", a.Password)
				assert.Equal(t, "okhttp/4.9", a.UserAgent)
				assert.NotEmpty(t, a.IP)
				return "JWT_TOKEN", &models.User{ID: testUserID}, nil
			})

		req := newJSONRequest(http.MethodPost, "/login-user", LoginRequest{Email: "jane@example.com", Password: "secret"})
		req.Header.Set("User-Agent", "okhttp/4.9")
		w := serve(NewLoginHandler(mockSvc), req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, LoginResponse{Status: StatusOK, Data: "JWT_TOKEN", UserID: testUserID}, decodeResponse[LoginResponse](t, w))
	})

	errCases := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{"unknown user", services.ErrUserDoesNotExist, http.StatusNotFound, "User does not exist"},
		{"wrong password", services.ErrInvalidCredentials, http.StatusBadRequest, "Invalid credentials"},
		{"deactivated", services.ErrAccountDeactivated, http.StatusForbidden, "Account deactivated"},
	}
	for _, tc := range errCases {
		t.Run(tc.name, func(t *testing.T) {
			mockSvc.EXPECT().Login(gomock.Any(), gomock.Any()).Return("", nil, tc.err)

			w := serve(NewLoginHandler(mockSvc), newJSONRequest(http.MethodPost, "/login-user", LoginRequest{Email: "a@b.c", Password: "x"}))

			assert.Equal(t, tc.code, w.Code)
			assert.Equal(t, tc.message, decodeResponse[ErrorResponse](t, w).Message)
		})
	}
}

func TestOTPHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockAuthenticator(ctrl)

	t.Run("missing email", func(t *testing.T) {
		w := serve(NewSendOTPHandler(mockSvc), newJSONRequest(http.MethodPost, "/send-otp", OTPRequest{}))
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Email is required", decodeResponse[ErrorResponse](t, w).Message)
	})

	t.Run("send verification", func(t *testing.T) {
		mockSvc.EXPECT().SendVerificationOTP(gomock.Any(), "new@example.com").Return(nil)

		w := serve(NewSendOTPHandler(mockSvc), newJSONRequest(http.MethodPost, "/send-otp", OTPRequest{Email: "new@example.com"}))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "OTP sent successfully", decodeResponse[MessageResponse](t, w).Message)
	})

	t.Run("already registered", func(t *testing.T) {
		mockSvc.EXPECT().SendVerificationOTP(gomock.Any(), "jane@example.com").Return(services.ErrEmailAlreadyRegistered)

		w := serve(NewSendOTPHandler(mockSvc), newJSONRequest(http.MethodPost, "/send-otp", OTPRequest{Email: "jane@example.com"}))
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Email already registered", decodeResponse[ErrorResponse](t, w).Message)
	})

	t.Run("mail failure", func(t *testing.T) {
		mockSvc.EXPECT().SendResetOTP(gomock.Any(), "jane@example.com").Return(services.ErrOTPEmailFailed)

		w := serve(NewSendResetOTPHandler(mockSvc), newJSONRequest(http.MethodPost, "/send-reset-otp", OTPRequest{Email: "jane@example.com"}))
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "Failed to send OTP email", decodeResponse[ErrorResponse](t, w).Message)
	})

	t.Run("verify expired", func(t *testing.T) {
		mockSvc.EXPECT().VerifyOTP(gomock.Any(), "jane@example.com", "123456").Return(services.ErrInvalidOrExpiredOTP)

		w := serve(NewVerifyOTPHandler(mockSvc), newJSONRequest(http.MethodPost, "/verify-otp", OTPRequest{Email: "jane@example.com", OTP: "123456"}))
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Invalid or expired OTP", decodeResponse[ErrorResponse](t, w).Message)
	})

	t.Run("forgot password for unknown address", func(t *testing.T) {
		mockSvc.EXPECT().ForgotPassword(gomock.Any(), "nobody@example.com").Return(services.ErrUserNotFound)

		w := serve(NewForgotPasswordHandler(mockSvc), newJSONRequest(http.MethodPost, "/forgot-password", OTPRequest{Email: "nobody@example.com"}))
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Email not registered!", decodeResponse[ErrorResponse](t, w).Message)
	})

	t.Run("forgot password", func(t *testing.T) {
		mockSvc.EXPECT().ForgotPassword(gomock.Any(), "jane@example.com").Return(nil)

		w := serve(NewForgotPasswordHandler(mockSvc), newJSONRequest(http.MethodPost, "/forgot-password", OTPRequest{Email: "jane@example.com"}))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "OTP sent to your email", decodeResponse[MessageResponse](t, w).Message)
	})

	t.Run("verify reset mismatch", func(t *testing.T) {
		mockSvc.EXPECT().VerifyResetOTP(gomock.Any(), "jane@example.com", "000000").Return(services.ErrInvalidOTP)

		w := serve(NewVerifyResetOTPHandler(mockSvc), newJSONRequest(http.MethodPost, "/verifyOtp", OTPRequest{Email: "jane@example.com", OTP: "000000"}))
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Invalid otp", decodeResponse[ErrorResponse](t, w).Message)
	})
}

func TestResetPasswordHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockAuthenticator(ctrl)

	t.Run("missing password", func(t *testing.T) {
		w := serve(NewResetPasswordHandler(mockSvc), newJSONRequest(http.MethodPost, "/reset-password", ResetPasswordRequest{Email: "jane@example.com"}))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("expired window", func(t *testing.T) {
		mockSvc.EXPECT().ResetPassword(gomock.Any(), "jane@example.com", "n3w").Return(services.ErrOTPExpired)

		w := serve(NewResetPasswordHandler(mockSvc), newJSONRequest(http.MethodPost, "/reset-password", ResetPasswordRequest{Email: "jane@example.com", NewPassword: "n3w"}))
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "OTP expired", decodeResponse[ErrorResponse](t, w).Message)
	})

	t.Run("success", func(t *testing.T) {
		mockSvc.EXPECT().ResetPassword(gomock.Any(), "jane@example.com", "n3w").Return(nil)

		w := serve(NewResetPasswordHandler(mockSvc), newJSONRequest(http.MethodPost, "/reset-password", ResetPasswordRequest{Email: "jane@example.com", NewPassword: "n3w"}))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Password reset successfully", decodeResponse[MessageResponse](t, w).Message)
	})
}
