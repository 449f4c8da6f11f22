package services

import (
	"context"
	"errors"
	"strings"

	"dario.cat/mergo"
	"github.com/sbilibin2017/vibecare/internal/logger"
	"github.com/sbilibin2017/vibecare/internal/models"
	"github.com/sbilibin2017/vibecare/internal/repositories"
)

//go:generate mockgen -source=preferences.go -destination=mock_preferences.go -package=services

// PreferencesStore defines the preference operations.
type PreferencesStore interface {
	Get(ctx context.Context, userID string) (*models.UserPreferences, error)
	Upsert(ctx context.Context, p *models.UserPreferences) error
}

// PreferencesService keeps one onboarding answer set per user.
type PreferencesService struct {
	store PreferencesStore
}

// NewPreferencesService creates a new PreferencesService instance.
func NewPreferencesService(store PreferencesStore) *PreferencesService {
	return &PreferencesService{store: store}
}

// Get returns the stored answers, or empty answers when none were saved.
func (svc *PreferencesService) Get(ctx context.Context, userID string) (*models.UserPreferences, error) {
	if err := validateID(userID); err != nil {
		return nil, err
	}

	prefs, err := svc.store.Get(ctx, userID)
	if errors.Is(err, repositories.ErrNotFound) {
		return &models.UserPreferences{UserID: userID}, nil
	}
	return prefs, err
}

// Save merges the non-empty fields of incoming onto the stored answers.
func (svc *PreferencesService) Save(ctx context.Context, incoming models.UserPreferences) (*models.UserPreferences, error) {
	prefs, err := svc.Get(ctx, incoming.UserID)
	if err != nil {
		return nil, err
	}

	incoming.Gender = strings.TrimSpace(incoming.Gender)
	incoming.AgeGroup = strings.TrimSpace(incoming.AgeGroup)
	incoming.RelationshipStatus = strings.TrimSpace(incoming.RelationshipStatus)
	incoming.LivingSituation = strings.TrimSpace(incoming.LivingSituation)

	if err := mergo.Merge(prefs, incoming, mergo.WithOverride); err != nil {
		return nil, err
	}

	if err := svc.store.Upsert(ctx, prefs); err != nil {
		logger.FromContext(ctx).Errorw("failed to save preferences", "user_id", incoming.UserID, "err", err)
		return nil, err
	}
	return prefs, nil
}
