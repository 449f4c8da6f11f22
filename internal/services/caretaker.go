package services

import (
	"context"
	"errors"
	"strings"

	"github.com/sbilibin2017/vibecare/internal/logger"
	"github.com/sbilibin2017/vibecare/internal/models"
	"github.com/sbilibin2017/vibecare/internal/repositories"
)

//go:generate mockgen -source=caretaker.go -destination=mock_caretaker.go -package=services

// CaretakerStore defines the caretaker operations.
type CaretakerStore interface {
	Create(ctx context.Context, c *models.Caretaker) error
	GetByID(ctx context.Context, id string) (*models.Caretaker, error)
	ListByUser(ctx context.Context, userID string) ([]models.Caretaker, error)
	FindByName(ctx context.Context, name string) ([]models.Caretaker, error)
	Delete(ctx context.Context, id string) error
}

// UserReader loads a single account.
type UserReader interface {
	GetByID(ctx context.Context, id string) (*models.User, error)
}

// CaretakerService links caretakers to users through a name and an access code.
type CaretakerService struct {
	store CaretakerStore
	users UserReader
}

// NewCaretakerService creates a new CaretakerService instance.
func NewCaretakerService(store CaretakerStore, users UserReader) *CaretakerService {
	return &CaretakerService{store: store, users: users}
}

// Add registers a caretaker. The name is unique per user, ignoring case.
func (svc *CaretakerService) Add(ctx context.Context, userID, name, code string) (*models.Caretaker, error) {
	name, code = strings.TrimSpace(name), strings.TrimSpace(code)
	if userID == "" || name == "" || code == "" {
		return nil, ErrMissingFields
	}
	if err := validateID(userID); err != nil {
		return nil, err
	}

	codeHash, err := hashSecret(code)
	if err != nil {
		return nil, err
	}

	c := &models.Caretaker{UserID: userID, CaretakerName: name, CodeHash: codeHash}
	if err := svc.store.Create(ctx, c); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, ErrCaretakerExists
		}
		logger.FromContext(ctx).Errorw("failed to save caretaker", "user_id", userID, "err", err)
		return nil, err
	}
	return c, nil
}

func (svc *CaretakerService) List(ctx context.Context, userID string) ([]models.Caretaker, error) {
	if err := validateID(userID); err != nil {
		return nil, err
	}
	return svc.store.ListByUser(ctx, userID)
}

func (svc *CaretakerService) Delete(ctx context.Context, id string) error {
	if err := validateID(id); err != nil {
		return err
	}

	if err := svc.store.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrCaretakerNotFound
		}
		return err
	}
	return nil
}

// Verify finds the caretaker whose name and access code match.
func (svc *CaretakerService) Verify(ctx context.Context, name, code string) (*models.Caretaker, error) {
	name, code = strings.TrimSpace(name), strings.TrimSpace(code)
	if name == "" || code == "" {
		return nil, ErrMissingFields
	}

	candidates, err := svc.store.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}
	for i := range candidates {
		if matchSecret(candidates[i].CodeHash, code) {
			return &candidates[i], nil
		}
	}

	logger.FromContext(ctx).Warnw("caretaker verification failed", "name", name)
	return nil, ErrCaretakerCredentials
}

// LinkedUser returns the caretaker and the user it follows.
func (svc *CaretakerService) LinkedUser(ctx context.Context, caretakerID string) (*models.Caretaker, *models.User, error) {
	if err := validateID(caretakerID); err != nil {
		return nil, nil, err
	}

	c, err := svc.store.GetByID(ctx, caretakerID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, nil, ErrCaretakerNotFound
		}
		return nil, nil, err
	}

	user, err := svc.users.GetByID(ctx, c.UserID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, nil, ErrUserNotFound
		}
		return nil, nil, err
	}
	return c, user, nil
}
