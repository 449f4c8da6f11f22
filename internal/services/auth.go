package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/vibecare/internal/logger"
	"github.com/sbilibin2017/vibecare/internal/models"
	"github.com/sbilibin2017/vibecare/internal/repositories"
)

//go:generate mockgen -source=auth.go -destination=mock_auth.go -package=services

// AccountStore defines the user operations needed for authentication.
type AccountStore interface {
	Create(ctx context.Context, u *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	SetResetOTP(ctx context.Context, id, otpHash string, expiresAt time.Time) error
	ResetPassword(ctx context.Context, id, passwordHash string) error
}

// LoginRecorder appends login attempts.
type LoginRecorder interface {
	Create(ctx context.Context, h *models.LoginHistory) error
}

// OTPCache keeps verification code hashes with a TTL.
type OTPCache interface {
	Set(ctx context.Context, email, codeHash string) error
	Get(ctx context.Context, email string) (string, error)
	Delete(ctx context.Context, email string) error
}

// TokenGenerator issues bearer tokens.
type TokenGenerator interface {
	Generate(ctx context.Context, userID uuid.UUID, email string) (string, error)
}

// Mailer delivers plain-text e-mails.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

// EventPublisher publishes domain events without reporting failures.
type EventPublisher interface {
	Publish(ctx context.Context, evt models.Event)
}

// LoginAttempt describes a login request.
type LoginAttempt struct {
	Email     string
	Password  string
	IP        string
	UserAgent string
}

// AuthService handles registration, login and both OTP flows.
type AuthService struct {
	users   AccountStore
	history LoginRecorder
	otps    OTPCache
	tokens  TokenGenerator
	mailer  Mailer
	events  EventPublisher
	otpTTL  time.Duration
	now     func() time.Time
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(
	users AccountStore,
	history LoginRecorder,
	otps OTPCache,
	tokens TokenGenerator,
	mailer Mailer,
	events EventPublisher,
	otpTTL time.Duration,
) *AuthService {
	return &AuthService{
		users:   users,
		history: history,
		otps:    otps,
		tokens:  tokens,
		mailer:  mailer,
		events:  events,
		otpTTL:  otpTTL,
		now:     time.Now,
	}
}

// Register creates an account with a bcrypt-hashed password.
func (svc *AuthService) Register(ctx context.Context, name, username, email, password string) (*models.User, error) {
	log := logger.FromContext(ctx)
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, ErrMissingFields
	}

	_, err := svc.users.GetByEmail(ctx, email)
	switch {
	case err == nil:
		log.Errorw("email already in use", "email", email)
		return nil, ErrEmailAlreadyInUse
	case !errors.Is(err, repositories.ErrNotFound):
		log.Errorw("failed to check user exists", "err", err)
		return nil, err
	}

	hashedPassword, err := hashSecret(password)
	if err != nil {
		log.Errorw("failed to hash password", "err", err)
		return nil, err
	}

	user := &models.User{
		Name:         strings.TrimSpace(name),
		Username:     strings.TrimSpace(username),
		Email:        email,
		PasswordHash: hashedPassword,
		Status:       models.UserStatusActive,
	}
	if err := svc.users.Create(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, ErrEmailAlreadyInUse
		}
		log.Errorw("failed to save user", "err", err)
		return nil, err
	}

	svc.events.Publish(ctx, models.Event{
		Type:    models.EventUserRegistered,
		UserID:  user.ID,
		Payload: map[string]any{"email": user.Email},
	})

	return user, nil
}

// Login checks the password and returns a token. Every attempt against an
// existing account is recorded in the login history.
func (svc *AuthService) Login(ctx context.Context, attempt LoginAttempt) (string, *models.User, error) {
	log := logger.FromContext(ctx)
	email := normalizeEmail(attempt.Email)

	user, err := svc.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			log.Errorw("user does not exist", "email", email)
			return "", nil, ErrUserDoesNotExist
		}
		log.Errorw("failed to get user", "err", err)
		return "", nil, err
	}

	if !matchSecret(user.PasswordHash, attempt.Password) {
		svc.recordLogin(ctx, user, attempt, false)
		log.Errorw("invalid credentials", "email", email)
		return "", nil, ErrInvalidCredentials
	}

	if user.Status == models.UserStatusDeactivated {
		svc.recordLogin(ctx, user, attempt, false)
		return "", nil, ErrAccountDeactivated
	}

	userID, err := uuid.Parse(user.ID)
	if err != nil {
		return "", nil, fmt.Errorf("stored user id: %w", err)
	}

	token, err := svc.tokens.Generate(ctx, userID, user.Email)
	if err != nil {
		log.Errorw("failed to generate JWT", "err", err)
		return "", nil, err
	}

	svc.recordLogin(ctx, user, attempt, true)
	svc.events.Publish(ctx, models.Event{
		Type:    models.EventUserLogin,
		UserID:  user.ID,
		Payload: map[string]any{"device": models.DetectDevice(attempt.UserAgent)},
	})

	return token, user, nil
}

func (svc *AuthService) recordLogin(ctx context.Context, user *models.User, attempt LoginAttempt, success bool) {
	now := svc.now().UTC()
	userAgent := attempt.UserAgent
	if userAgent == "" {
		userAgent = "Unknown"
	}

	entry := &models.LoginHistory{
		UserID:    user.ID,
		Email:     user.Email,
		IP:        attempt.IP,
		Device:    models.DetectDevice(attempt.UserAgent),
		UserAgent: userAgent,
		Date:      now.Format("2006-01-02"),
		Time:      now.Format("15:04:05"),
		Success:   success,
	}
	if err := svc.history.Create(ctx, entry); err != nil {
		logger.FromContext(ctx).Errorw("failed to record login", "user_id", user.ID, "err", err)
	}
}

// SendVerificationOTP e-mails a code to an address that is not registered yet.
func (svc *AuthService) SendVerificationOTP(ctx context.Context, email string) error {
	email = normalizeEmail(email)
	if email == "" {
		return ErrMissingFields
	}

	_, err := svc.users.GetByEmail(ctx, email)
	switch {
	case err == nil:
		return ErrEmailAlreadyRegistered
	case !errors.Is(err, repositories.ErrNotFound):
		return err
	}

	return svc.issueCachedOTP(ctx, email,
		"Email Verification - VibeCare",
		"Your OTP is: %s\n\nVerify your email to get your mental health well-being journey started.")
}

// SendResetOTP e-mails a code without checking whether the address is registered.
func (svc *AuthService) SendResetOTP(ctx context.Context, email string) error {
	email = normalizeEmail(email)
	if email == "" {
		return ErrMissingFields
	}

	return svc.issueCachedOTP(ctx, email,
		"Password Reset - VibeCare",
		"Your OTP for password reset is: %s\n\nEnter this OTP in the app to proceed with resetting your password.")
}

func (svc *AuthService) issueCachedOTP(ctx context.Context, email, subject, bodyFormat string) error {
	code, err := generateOTP()
	if err != nil {
		return err
	}
	codeHash, err := hashSecret(code)
	if err != nil {
		return err
	}
	if err := svc.otps.Set(ctx, email, codeHash); err != nil {
		logger.FromContext(ctx).Errorw("failed to store otp", "email", email, "err", err)
		return err
	}

	if err := svc.mailer.Send(ctx, email, subject, fmt.Sprintf(bodyFormat, code)); err != nil {
		return fmt.Errorf("%w: %v", ErrOTPEmailFailed, err)
	}
	return nil
}

// VerifyOTP consumes a cached code. A missing, expired or wrong code is rejected.
func (svc *AuthService) VerifyOTP(ctx context.Context, email, code string) error {
	email = normalizeEmail(email)

	codeHash, err := svc.otps.Get(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrInvalidOrExpiredOTP
		}
		return err
	}

	if !matchSecret(codeHash, strings.TrimSpace(code)) {
		return ErrInvalidOrExpiredOTP
	}

	if err := svc.otps.Delete(ctx, email); err != nil {
		logger.FromContext(ctx).Errorw("failed to delete used otp", "email", email, "err", err)
	}
	return nil
}

// ForgotPassword stores a hashed reset code on the account and e-mails the code.
func (svc *AuthService) ForgotPassword(ctx context.Context, email string) error {
	email = normalizeEmail(email)

	user, err := svc.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	code, err := generateOTP()
	if err != nil {
		return err
	}
	codeHash, err := hashSecret(code)
	if err != nil {
		return err
	}

	if err := svc.users.SetResetOTP(ctx, user.ID, codeHash, svc.now().Add(svc.otpTTL)); err != nil {
		logger.FromContext(ctx).Errorw("failed to store reset otp", "user_id", user.ID, "err", err)
		return err
	}

	body := fmt.Sprintf("Your OTP for password reset is: %s", code)
	if err := svc.mailer.Send(ctx, user.Email, "Password Reset OTP", body); err != nil {
		return fmt.Errorf("%w: %v", ErrOTPEmailFailed, err)
	}
	return nil
}

// VerifyResetOTP checks the code first and the expiry second.
func (svc *AuthService) VerifyResetOTP(ctx context.Context, email, code string) error {
	user, err := svc.users.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrResetUserNotFound
		}
		return err
	}

	if user.OTPHash == nil || !matchSecret(*user.OTPHash, strings.TrimSpace(code)) {
		return ErrInvalidOTP
	}

	if user.ResetTokenExpiration != nil && user.ResetTokenExpiration.Before(svc.now()) {
		return ErrOTPExpired
	}
	return nil
}

// ResetPassword sets a new password inside an open reset window and closes the window.
func (svc *AuthService) ResetPassword(ctx context.Context, email, newPassword string) error {
	if newPassword == "" {
		return ErrMissingFields
	}

	user, err := svc.users.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	if user.ResetTokenExpiration == nil || user.ResetTokenExpiration.Before(svc.now()) {
		return ErrOTPExpired
	}

	hashedPassword, err := hashSecret(newPassword)
	if err != nil {
		return err
	}

	if err := svc.users.ResetPassword(ctx, user.ID, hashedPassword); err != nil {
		logger.FromContext(ctx).Errorw("failed to reset password", "user_id", user.ID, "err", err)
		return err
	}
	return nil
}
