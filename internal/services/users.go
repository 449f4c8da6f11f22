package services

import (
	"context"
	"errors"
	"strings"

	"github.com/sbilibin2017/vibecare/internal/logger"
	"github.com/sbilibin2017/vibecare/internal/models"
	"github.com/sbilibin2017/vibecare/internal/pagination"
	"github.com/sbilibin2017/vibecare/internal/repositories"
)

//go:generate mockgen -source=users.go -destination=mock_users.go -package=services

// UserStore defines the account operations used outside authentication.
type UserStore interface {
	GetByID(ctx context.Context, id string) (*models.User, error)
	Update(ctx context.Context, id string, upd models.UserUpdate) (*models.User, error)
	SetStatus(ctx context.Context, id, status string) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, p pagination.Params) (pagination.Page[models.User], error)
	ListAll(ctx context.Context) ([]models.User, error)
}

// LoginHistoryStore reads recorded login attempts.
type LoginHistoryStore interface {
	ListByUser(ctx context.Context, userID string) ([]models.LoginHistory, error)
	List(ctx context.Context, p pagination.Params) (pagination.Page[models.LoginHistory], error)
	CountByUser(ctx context.Context, userID string) (int64, error)
}

// ExpressionReader reads stored face-expression detections of a user.
type ExpressionReader interface {
	ListByUser(ctx context.Context, userID string, p pagination.Params) (pagination.Page[models.FaceExpression], error)
	CountByUser(ctx context.Context, userID string) (int64, error)
}

// UserDetail is the admin view of one account.
type UserDetail struct {
	User            *models.User
	LoginCount      int64
	ExpressionCount int64
	Expressions     pagination.Page[models.FaceExpression]
}

// UserService manages profiles and admin account operations.
type UserService struct {
	users       UserStore
	history     LoginHistoryStore
	expressions ExpressionReader
}

// NewUserService creates a new UserService instance.
func NewUserService(users UserStore, history LoginHistoryStore, expressions ExpressionReader) *UserService {
	return &UserService{users: users, history: history, expressions: expressions}
}

// Get returns the account with the given id.
func (svc *UserService) Get(ctx context.Context, id string) (*models.User, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}

	user, err := svc.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		logger.FromContext(ctx).Errorw("failed to get user", "user_id", id, "err", err)
		return nil, err
	}
	return user, nil
}

// EditProfile changes the non-empty fields among name, username and email.
func (svc *UserService) EditProfile(ctx context.Context, id, name, username, email string) (*models.User, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}

	var upd models.UserUpdate
	if v := strings.TrimSpace(name); v != "" {
		upd.Name = &v
	}
	if v := strings.TrimSpace(username); v != "" {
		upd.Username = &v
	}
	if v := normalizeEmail(email); v != "" {
		upd.Email = &v
	}
	if upd.IsEmpty() {
		return svc.Get(ctx, id)
	}

	return svc.update(ctx, id, upd)
}

// AdminEdit overwrites name, username, email and status. All four are required.
func (svc *UserService) AdminEdit(ctx context.Context, id, name, username, email, status string) (*models.User, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}

	name, username, email = strings.TrimSpace(name), strings.TrimSpace(username), normalizeEmail(email)
	if name == "" || username == "" || email == "" || status == "" {
		return nil, ErrMissingFields
	}
	if !models.ValidUserStatus(status) {
		return nil, ErrInvalidStatus
	}

	return svc.update(ctx, id, models.UserUpdate{Name: &name, Username: &username, Email: &email, Status: &status})
}

func (svc *UserService) update(ctx context.Context, id string, upd models.UserUpdate) (*models.User, error) {
	user, err := svc.users.Update(ctx, id, upd)
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		return nil, ErrUserNotFound
	case errors.Is(err, repositories.ErrDuplicate):
		return nil, ErrEmailAlreadyInUse
	case err != nil:
		logger.FromContext(ctx).Errorw("failed to update user", "user_id", id, "err", err)
		return nil, err
	}

	logger.FromContext(ctx).Infow("user updated", "user_id", id)
	return user, nil
}

// LoginHistory returns the user's login attempts, newest first.
func (svc *UserService) LoginHistory(ctx context.Context, userID string) ([]models.LoginHistory, error) {
	if err := validateID(userID); err != nil {
		return nil, err
	}
	return svc.history.ListByUser(ctx, userID)
}

// ListAll returns every account.
func (svc *UserService) ListAll(ctx context.Context) ([]models.User, error) {
	return svc.users.ListAll(ctx)
}

// List returns one page of accounts, newest first.
func (svc *UserService) List(ctx context.Context, p pagination.Params) (pagination.Page[models.User], error) {
	return svc.users.List(ctx, p)
}

// ListLogins returns one page of the global login history.
func (svc *UserService) ListLogins(ctx context.Context, p pagination.Params) (pagination.Page[models.LoginHistory], error) {
	return svc.history.List(ctx, p)
}

// Delete removes an account. Dependent records are kept.
func (svc *UserService) Delete(ctx context.Context, id string) error {
	if err := validateID(id); err != nil {
		return err
	}

	if err := svc.users.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrUserNotFound
		}
		logger.FromContext(ctx).Errorw("failed to delete user", "user_id", id, "err", err)
		return err
	}

	logger.FromContext(ctx).Infow("user deleted", "user_id", id)
	return nil
}

// Deactivate blocks further logins of an account.
func (svc *UserService) Deactivate(ctx context.Context, id string) error {
	if err := validateID(id); err != nil {
		return err
	}

	if err := svc.users.SetStatus(ctx, id, models.UserStatusDeactivated); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	return nil
}

// Detail returns an account with its activity counts and the first page of detections.
func (svc *UserService) Detail(ctx context.Context, id string, p pagination.Params) (*UserDetail, error) {
	user, err := svc.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	logins, err := svc.history.CountByUser(ctx, id)
	if err != nil {
		return nil, err
	}
	expressions, err := svc.expressions.CountByUser(ctx, id)
	if err != nil {
		return nil, err
	}
	page, err := svc.expressions.ListByUser(ctx, id, p)
	if err != nil {
		return nil, err
	}

	return &UserDetail{User: user, LoginCount: logins, ExpressionCount: expressions, Expressions: page}, nil
}
