package services

import (
	"context"
	"errors"
	"strings"

	"github.com/sbilibin2017/vibecare/internal/logger"
	"github.com/sbilibin2017/vibecare/internal/models"
	"github.com/sbilibin2017/vibecare/internal/repositories"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=assessment.go -destination=mock_assessment.go -package=services

// NoData marks an assessment kind the user never submitted.
const NoData = "No data"

// AssessmentStore defines the assessment result operations.
type AssessmentStore interface {
	Create(ctx context.Context, a *models.AssessmentResult) error
	Latest(ctx context.Context, userID, kind string) (*models.AssessmentResult, error)
	ListByUser(ctx context.Context, userID string) ([]models.AssessmentResult, error)
}

// AssessmentService stores questionnaire results and summarises them.
type AssessmentService struct {
	store AssessmentStore
}

// NewAssessmentService creates a new AssessmentService instance.
func NewAssessmentService(store AssessmentStore) *AssessmentService {
	return &AssessmentService{store: store}
}

// Save appends a result. Score is nil for stress results.
func (svc *AssessmentService) Save(ctx context.Context, userID, kind string, score *float64, level string) (*models.AssessmentResult, error) {
	level = strings.TrimSpace(level)
	if userID == "" || level == "" {
		return nil, ErrMissingFields
	}
	if err := validateID(userID); err != nil {
		return nil, err
	}

	res := &models.AssessmentResult{UserID: userID, Kind: kind, Score: score, Level: level}
	if err := svc.store.Create(ctx, res); err != nil {
		logger.FromContext(ctx).Errorw("failed to save result", "user_id", userID, "kind", kind, "err", err)
		return nil, err
	}
	return res, nil
}

// Latest returns the newest result of the given kind.
func (svc *AssessmentService) Latest(ctx context.Context, userID, kind string) (*models.AssessmentResult, error) {
	if err := validateID(userID); err != nil {
		return nil, err
	}

	res, err := svc.store.Latest(ctx, userID, kind)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrNoResult
		}
		return nil, err
	}
	return res, nil
}

// Summary returns the latest level of every kind, or NoData.
func (svc *AssessmentService) Summary(ctx context.Context, userID string) (*models.MentalHealthSummary, error) {
	if err := validateID(userID); err != nil {
		return nil, err
	}

	kinds := []string{models.AssessmentDepression, models.AssessmentAnxiety, models.AssessmentStress}
	latest := make([]*models.AssessmentResult, len(kinds))

	g, gctx := errgroup.WithContext(ctx)
	for i, kind := range kinds {
		i, kind := i, kind
		g.Go(func() error {
			res, err := svc.store.Latest(gctx, userID, kind)
			if errors.Is(err, repositories.ErrNotFound) {
				return nil
			}
			latest[i] = res
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	summary := &models.MentalHealthSummary{Depression: NoData, Anxiety: NoData, Stress: NoData}
	if r := latest[0]; r != nil {
		summary.Depression, summary.DepressionDate = r.Level, &r.CreatedAt
	}
	if r := latest[1]; r != nil {
		summary.Anxiety, summary.AnxietyDate = r.Level, &r.CreatedAt
	}
	if r := latest[2]; r != nil {
		summary.Stress, summary.StressDate = r.Level, &r.CreatedAt
	}
	return summary, nil
}

// History returns all results of a user, newest first.
func (svc *AssessmentService) History(ctx context.Context, userID string) ([]models.AssessmentResult, error) {
	if err := validateID(userID); err != nil {
		return nil, err
	}
	return svc.store.ListByUser(ctx, userID)
}
