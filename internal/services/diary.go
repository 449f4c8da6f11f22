package services

import (
	"context"
	"errors"
	"strings"

	"github.com/sbilibin2017/vibecare/internal/models"
	"github.com/sbilibin2017/vibecare/internal/repositories"
)

//go:generate mockgen -source=diary.go -destination=mock_diary.go -package=services

// DiaryStore defines the diary operations.
type DiaryStore interface {
	Create(ctx context.Context, e *models.DiaryEntry) error
	ListByUser(ctx context.Context, userID string) ([]models.DiaryEntry, error)
	Delete(ctx context.Context, id string) error
}

type DiaryService struct {
	store DiaryStore
}

func NewDiaryService(store DiaryStore) *DiaryService {
	return &DiaryService{store: store}
}

func (svc *DiaryService) Create(ctx context.Context, userID, note string) (*models.DiaryEntry, error) {
	note = strings.TrimSpace(note)
	if userID == "" || note == "" {
		return nil, ErrMissingFields
	}
	if err := validateID(userID); err != nil {
		return nil, err
	}

	entry := &models.DiaryEntry{UserID: userID, Note: note}
	if err := svc.store.Create(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// List returns the user's entries, newest first.
func (svc *DiaryService) List(ctx context.Context, userID string) ([]models.DiaryEntry, error) {
	if err := validateID(userID); err != nil {
		return nil, err
	}
	return svc.store.ListByUser(ctx, userID)
}

func (svc *DiaryService) Delete(ctx context.Context, id string) error {
	if err := validateID(id); err != nil {
		return err
	}

	if err := svc.store.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrDiaryNotFound
		}
		return err
	}
	return nil
}
