package services

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/vibecare/internal/models"
	"github.com/sbilibin2017/vibecare/internal/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type authMocks struct {
	users   *MockAccountStore
	history *MockLoginRecorder
	otps    *MockOTPCache
	tokens  *MockTokenGenerator
	mailer  *MockMailer
	events  *MockEventPublisher
}

func newAuthService(t *testing.T) (*AuthService, authMocks) {
	ctrl := gomock.NewController(t)
	m := authMocks{
		users:   NewMockAccountStore(ctrl),
		history: NewMockLoginRecorder(ctrl),
		otps:    NewMockOTPCache(ctrl),
		tokens:  NewMockTokenGenerator(ctrl),
		mailer:  NewMockMailer(ctrl),
		events:  NewMockEventPublisher(ctrl),
	}
	svc := NewAuthService(m.users, m.history, m.otps, m.tokens, m.mailer, m.events, 15*time.Minute)
	return svc, m
}

func mustHash(t *testing.T, s string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(s), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

var sixDigits = regexp.MustCompile(`\b\d{6}\b`)

func TestAuthService_Register(t *testing.T) {
	tests := []struct {
		name      string
		email     string
		password  string
		setup     func(m authMocks)
		wantErr   error
		wantEmail string
	}{
		{
			name:     "successful registration",
			email:    " Alice@Example.com ",
			password: "pass123",
			setup: func(m authMocks) {
				m.users.EXPECT().GetByEmail(gomock.Any(), "alice@example.com").Return(nil, repositories.ErrNotFound)
				m.users.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, u *models.User) error {
					assert.NotEqual(t, "pass123", u.PasswordHash)
					assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("pass123")))
					u.ID = uuid.NewString()
					return nil
				})
				m.events.EXPECT().Publish(gomock.Any(), gomock.Any())
			},
			wantEmail: "alice@example.com",
		},
		{
			name:     "email already in use",
			email:    "bob@example.com",
			password: "pass123",
			setup: func(m authMocks) {
				m.users.EXPECT().GetByEmail(gomock.Any(), "bob@example.com").Return(&models.User{ID: uuid.NewString()}, nil)
			},
			wantErr: ErrEmailAlreadyInUse,
		},
		{
			name:     "duplicate on insert",
			email:    "carol@example.com",
			password: "pass123",
			setup: func(m authMocks) {
				m.users.EXPECT().GetByEmail(gomock.Any(), gomock.Any()).Return(nil, repositories.ErrNotFound)
				m.users.EXPECT().Create(gomock.Any(), gomock.Any()).Return(repositories.ErrDuplicate)
			},
			wantErr: ErrEmailAlreadyInUse,
		},
		{
			name:     "store error",
			email:    "eve@example.com",
			password: "pass123",
			setup: func(m authMocks) {
				m.users.EXPECT().GetByEmail(gomock.Any(), gomock.Any()).Return(nil, errors.New("db error"))
			},
			wantErr: errors.New("db error"),
		},
		{
			name:    "missing password",
			email:   "eve@example.com",
			setup:   func(m authMocks) {},
			wantErr: ErrMissingFields,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newAuthService(t)
			tt.setup(m)

			user, err := svc.Register(context.Background(), "Name", "user", tt.email, tt.password)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantEmail, user.Email)
			assert.Equal(t, models.UserStatusActive, user.Status)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	userID := uuid.New()
	active := &models.User{ID: userID.String(), Email: "jane@example.com", PasswordHash: mustHash(t, "secret"), Status: models.UserStatusActive}
	deactivated := &models.User{ID: userID.String(), Email: "jane@example.com", PasswordHash: mustHash(t, "secret"), Status: models.UserStatusDeactivated}
	fixed := time.Date(2024, 3, 9, 17, 4, 5, 0, time.UTC)

	t.Run("unknown user", func(t *testing.T) {
		svc, m := newAuthService(t)
		m.users.EXPECT().GetByEmail(gomock.Any(), "nobody@example.com").Return(nil, repositories.ErrNotFound)

		_, _, err := svc.Login(context.Background(), LoginAttempt{Email: "nobody@example.com", Password: "x"})
		assert.ErrorIs(t, err, ErrUserDoesNotExist)
	})

	t.Run("wrong password records failed attempt", func(t *testing.T) {
		svc, m := newAuthService(t)
		m.users.EXPECT().GetByEmail(gomock.Any(), "jane@example.com").Return(active, nil)
		m.history.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, h *models.LoginHistory) error {
			assert.False(t, h.Success)
			return nil
		})

		_, _, err := svc.Login(context.Background(), LoginAttempt{Email: "jane@example.com", Password: "wrong"})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("deactivated account", func(t *testing.T) {
		svc, m := newAuthService(t)
		m.users.EXPECT().GetByEmail(gomock.Any(), gomock.Any()).Return(deactivated, nil)
		m.history.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		_, _, err := svc.Login(context.Background(), LoginAttempt{Email: "jane@example.com", Password: "secret"})
		assert.ErrorIs(t, err, ErrAccountDeactivated)
	})

	t.Run("success", func(t *testing.T) {
		svc, m := newAuthService(t)
		svc.now = func() time.Time { return fixed }

		m.users.EXPECT().GetByEmail(gomock.Any(), "jane@example.com").Return(active, nil)
		m.tokens.EXPECT().Generate(gomock.Any(), userID, "jane@example.com").Return("JWT_TOKEN", nil)
		m.history.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, h *models.LoginHistory) error {
			assert.True(t, h.Success)
			assert.Equal(t, "2024-03-09", h.Date)
			assert.Equal(t, "17:04:05", h.Time)
			assert.Equal(t, models.DeviceAndroidApp, h.Device)
			assert.Equal(t, "10.0.0.1", h.IP)
			return nil
		})
		m.events.EXPECT().Publish(gomock.Any(), gomock.Any()).Do(func(_ context.Context, evt models.Event) {
			assert.Equal(t, models.EventUserLogin, evt.Type)
		})

		token, user, err := svc.Login(context.Background(), LoginAttempt{
			Email: "Jane@example.com", Password: "secret", IP: "10.0.0.1", UserAgent: "okhttp/4.9.2",
		})
		require.NoError(t, err)
		assert.Equal(t, "JWT_TOKEN", token)
		assert.Equal(t, active.ID, user.ID)
	})

	t.Run("history failure does not block login", func(t *testing.T) {
		svc, m := newAuthService(t)
		m.users.EXPECT().GetByEmail(gomock.Any(), gomock.Any()).Return(active, nil)
		m.tokens.EXPECT().Generate(gomock.Any(), gomock.Any(), gomock.Any()).Return("JWT_TOKEN", nil)
		m.history.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("db down"))
		m.events.EXPECT().Publish(gomock.Any(), gomock.Any())

		token, _, err := svc.Login(context.Background(), LoginAttempt{Email: "jane@example.com", Password: "secret"})
		require.NoError(t, err)
		assert.Equal(t, "JWT_TOKEN", token)
	})
}

func TestAuthService_SendVerificationOTP(t *testing.T) {
	t.Run("registered address is refused", func(t *testing.T) {
		svc, m := newAuthService(t)
		m.users.EXPECT().GetByEmail(gomock.Any(), "jane@example.com").Return(&models.User{}, nil)

		err := svc.SendVerificationOTP(context.Background(), "jane@example.com")
		assert.ErrorIs(t, err, ErrEmailAlreadyRegistered)
	})

	t.Run("code is hashed at rest and mailed in clear", func(t *testing.T) {
		svc, m := newAuthService(t)
		var stored string

		m.users.EXPECT().GetByEmail(gomock.Any(), gomock.Any()).Return(nil, repositories.ErrNotFound)
		m.otps.EXPECT().Set(gomock.Any(), "new@example.com", gomock.Any()).DoAndReturn(func(_ context.Context, _ string, h string) error {
			stored = h
			return nil
		})
		m.mailer.EXPECT().Send(gomock.Any(), "new@example.com", "Email Verification - VibeCare", gomock.Any()).
			DoAndReturn(func(_ context.Context, _, _ string, body string) error {
				code := sixDigits.FindString(body)
				require.NotEmpty(t, code)
				assert.NotEqual(t, code, stored)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored), []byte(code)))
				return nil
			})

		require.NoError(t, svc.SendVerificationOTP(context.Background(), "new@example.com"))
	})

	t.Run("mail failure", func(t *testing.T) {
		svc, m := newAuthService(t)
		m.users.EXPECT().GetByEmail(gomock.Any(), gomock.Any()).Return(nil, repositories.ErrNotFound)
		m.otps.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		m.mailer.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("smtp down"))

		err := svc.SendVerificationOTP(context.Background(), "new@example.com")
		assert.ErrorIs(t, err, ErrOTPEmailFailed)
	})
}

func TestAuthService_SendResetOTP_SkipsExistenceCheck(t *testing.T) {
	svc, m := newAuthService(t)
	m.otps.EXPECT().Set(gomock.Any(), "any@example.com", gomock.Any()).Return(nil)
	m.mailer.EXPECT().Send(gomock.Any(), "any@example.com", "Password Reset - VibeCare", gomock.Any()).Return(nil)

	require.NoError(t, svc.SendResetOTP(context.Background(), "any@example.com"))
}

func TestAuthService_VerifyOTP(t *testing.T) {
	hash := mustHash(t, "123456")

	t.Run("missing or expired", func(t *testing.T) {
		svc, m := newAuthService(t)
		m.otps.EXPECT().Get(gomock.Any(), "jane@example.com").Return("", repositories.ErrNotFound)

		assert.ErrorIs(t, svc.VerifyOTP(context.Background(), "jane@example.com", "123456"), ErrInvalidOrExpiredOTP)
	})

	t.Run("wrong code keeps entry", func(t *testing.T) {
		svc, m := newAuthService(t)
		m.otps.EXPECT().Get(gomock.Any(), gomock.Any()).Return(hash, nil)

		assert.ErrorIs(t, svc.VerifyOTP(context.Background(), "jane@example.com", "654321"), ErrInvalidOrExpiredOTP)
	})

	t.Run("correct code is consumed", func(t *testing.T) {
		svc, m := newAuthService(t)
		m.otps.EXPECT().Get(gomock.Any(), gomock.Any()).Return(hash, nil)
		m.otps.EXPECT().Delete(gomock.Any(), "jane@example.com").Return(nil)

		assert.NoError(t, svc.VerifyOTP(context.Background(), "jane@example.com", "123456"))
	})
}

func TestAuthService_ForgotPassword(t *testing.T) {
	fixed := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	t.Run("unknown address", func(t *testing.T) {
		svc, m := newAuthService(t)
		m.users.EXPECT().GetByEmail(gomock.Any(), gomock.Any()).Return(nil, repositories.ErrNotFound)

		assert.ErrorIs(t, svc.ForgotPassword(context.Background(), "x@example.com"), ErrUserNotFound)
	})

	t.Run("stores hashed code with expiry", func(t *testing.T) {
		svc, m := newAuthService(t)
		svc.now = func() time.Time { return fixed }
		var stored string

		m.users.EXPECT().GetByEmail(gomock.Any(), "jane@example.com").Return(&models.User{ID: "u1", Email: "jane@example.com"}, nil)
		m.users.EXPECT().SetResetOTP(gomock.Any(), "u1", gomock.Any(), fixed.Add(15*time.Minute)).
			DoAndReturn(func(_ context.Context, _ string, h string, _ time.Time) error {
				stored = h
				return nil
			})
		m.mailer.EXPECT().Send(gomock.Any(), "jane@example.com", "Password Reset OTP", gomock.Any()).
			DoAndReturn(func(_ context.Context, _, _ string, body string) error {
				code := sixDigits.FindString(body)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored), []byte(code)))
				return nil
			})

		require.NoError(t, svc.ForgotPassword(context.Background(), "jane@example.com"))
	})
}

func TestAuthService_VerifyResetOTP(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	hash := mustHash(t, "123456")
	past := now.Add(-time.Minute)
	future := now.Add(time.Minute)

	tests := []struct {
		name    string
		user    *models.User
		lookup  error
		code    string
		wantErr error
	}{
		{name: "unknown user", lookup: repositories.ErrNotFound, code: "123456", wantErr: ErrResetUserNotFound},
		{name: "no code issued", user: &models.User{}, code: "123456", wantErr: ErrInvalidOTP},
		{name: "wrong code", user: &models.User{OTPHash: &hash, ResetTokenExpiration: &future}, code: "000000", wantErr: ErrInvalidOTP},
		{name: "wrong and expired reports mismatch", user: &models.User{OTPHash: &hash, ResetTokenExpiration: &past}, code: "000000", wantErr: ErrInvalidOTP},
		{name: "expired", user: &models.User{OTPHash: &hash, ResetTokenExpiration: &past}, code: "123456", wantErr: ErrOTPExpired},
		{name: "valid", user: &models.User{OTPHash: &hash, ResetTokenExpiration: &future}, code: "123456"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newAuthService(t)
			svc.now = func() time.Time { return now }
			m.users.EXPECT().GetByEmail(gomock.Any(), "jane@example.com").Return(tt.user, tt.lookup)

			err := svc.VerifyResetOTP(context.Background(), "JANE@example.com", tt.code)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAuthService_ResetPassword(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Second)
	future := now.Add(time.Minute)

	t.Run("unknown user", func(t *testing.T) {
		svc, m := newAuthService(t)
		m.users.EXPECT().GetByEmail(gomock.Any(), gomock.Any()).Return(nil, repositories.ErrNotFound)
		assert.ErrorIs(t, svc.ResetPassword(context.Background(), "x@example.com", "new"), ErrUserNotFound)
	})

	t.Run("no reset window", func(t *testing.T) {
		svc, m := newAuthService(t)
		m.users.EXPECT().GetByEmail(gomock.Any(), gomock.Any()).Return(&models.User{ID: "u1"}, nil)
		assert.ErrorIs(t, svc.ResetPassword(context.Background(), "jane@example.com", "new"), ErrOTPExpired)
	})

	t.Run("expired window", func(t *testing.T) {
		svc, m := newAuthService(t)
		svc.now = func() time.Time { return now }
		m.users.EXPECT().GetByEmail(gomock.Any(), gomock.Any()).Return(&models.User{ID: "u1", ResetTokenExpiration: &past}, nil)
		assert.ErrorIs(t, svc.ResetPassword(context.Background(), "jane@example.com", "new"), ErrOTPExpired)
	})

	t.Run("success", func(t *testing.T) {
		svc, m := newAuthService(t)
		svc.now = func() time.Time { return now }
		m.users.EXPECT().GetByEmail(gomock.Any(), gomock.Any()).Return(&models.User{ID: "u1", ResetTokenExpiration: &future}, nil)
		m.users.EXPECT().ResetPassword(gomock.Any(), "u1", gomock.Any()).DoAndReturn(func(_ context.Context, _ string, h string) error {
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(h), []byte("new-pass")))
			return nil
		})

		assert.NoError(t, svc.ResetPassword(context.Background(), "jane@example.com", "new-pass"))
	})
}

func TestGenerateOTP(t *testing.T) {
	for i := 0; i < 50; i++ {
		code, err := generateOTP()
		require.NoError(t, err)
		assert.Regexp(t, `^[1-9]\d{5}$`, code)
	}
}
