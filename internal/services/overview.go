package services

import (
	"context"

	"github.com/sbilibin2017/vibecare/internal/models"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=overview.go -destination=mock_overview.go -package=services

// RecentLimit is the number of newest users and detections on the overview.
const RecentLimit = 5

// UserCounter counts accounts and lists the newest ones.
type UserCounter interface {
	Count(ctx context.Context) (int64, error)
	Recent(ctx context.Context, n int) ([]models.User, error)
}

// LoginCounter counts login attempts.
type LoginCounter interface {
	Count(ctx context.Context) (int64, error)
}

// ExpressionCounter counts detections and lists the newest ones.
type ExpressionCounter interface {
	Count(ctx context.Context) (int64, error)
	Recent(ctx context.Context, n int) ([]models.FaceExpression, error)
}

// AssessmentCounter counts results per kind.
type AssessmentCounter interface {
	CountByKind(ctx context.Context, kind string) (int64, error)
}

// OverviewService builds the admin analytics snapshot.
type OverviewService struct {
	users       UserCounter
	logins      LoginCounter
	expressions ExpressionCounter
	assessments AssessmentCounter
}

// NewOverviewService creates a new OverviewService instance.
func NewOverviewService(users UserCounter, logins LoginCounter, expressions ExpressionCounter, assessments AssessmentCounter) *OverviewService {
	return &OverviewService{users: users, logins: logins, expressions: expressions, assessments: assessments}
}

// Analytics runs every count in parallel and fails on the first error.
func (svc *OverviewService) Analytics(ctx context.Context) (*models.Analytics, error) {
	var a models.Analytics

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		a.UserCount, err = svc.users.Count(gctx)
		return err
	})
	g.Go(func() (err error) {
		a.LoginEntries, err = svc.logins.Count(gctx)
		return err
	})
	g.Go(func() (err error) {
		a.ExpressionEntries, err = svc.expressions.Count(gctx)
		return err
	})
	g.Go(func() (err error) {
		a.DepressionResults, err = svc.assessments.CountByKind(gctx, models.AssessmentDepression)
		return err
	})
	g.Go(func() (err error) {
		a.AnxietyResults, err = svc.assessments.CountByKind(gctx, models.AssessmentAnxiety)
		return err
	})
	g.Go(func() (err error) {
		a.StressResults, err = svc.assessments.CountByKind(gctx, models.AssessmentStress)
		return err
	})
	g.Go(func() (err error) {
		a.RecentUsers, err = svc.users.Recent(gctx, RecentLimit)
		return err
	})
	g.Go(func() (err error) {
		a.RecentExpressions, err = svc.expressions.Recent(gctx, RecentLimit)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &a, nil
}
