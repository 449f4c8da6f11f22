package repositories

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/vibecare/internal/models"
)

const assessmentColumns = "id, user_id, kind, score, level, created_at"

// AssessmentRepository stores depression, anxiety and stress results in one table.
type AssessmentRepository struct {
	db *sqlx.DB
}

func NewAssessmentRepository(db *sqlx.DB) *AssessmentRepository {
	return &AssessmentRepository{db: db}
}

func (r *AssessmentRepository) Create(ctx context.Context, a *models.AssessmentResult) error {
	b := psql.Insert("assessment_results").
		Columns("id", "user_id", "kind", "score", "level").
		Values(uuid.NewString(), a.UserID, a.Kind, a.Score, a.Level).
		Suffix("RETURNING " + assessmentColumns)

	created, err := getOne[models.AssessmentResult](ctx, r.db, b)
	if err != nil {
		return err
	}
	*a = *created
	return nil
}

// Latest returns the newest result of the given kind.
func (r *AssessmentRepository) Latest(ctx context.Context, userID, kind string) (*models.AssessmentResult, error) {
	b := psql.Select(assessmentColumns).
		From("assessment_results").
		Where(sq.Eq{"user_id": userID, "kind": kind}).
		OrderBy("created_at DESC", "id DESC").
		Limit(1)
	return getOne[models.AssessmentResult](ctx, r.db, b)
}

// ListByUser returns all results of the user, newest first.
func (r *AssessmentRepository) ListByUser(ctx context.Context, userID string) ([]models.AssessmentResult, error) {
	b := psql.Select(assessmentColumns).
		From("assessment_results").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "id DESC")
	return selectAll[models.AssessmentResult](ctx, r.db, b)
}

func (r *AssessmentRepository) CountByKind(ctx context.Context, kind string) (int64, error) {
	return count(ctx, r.db, "assessment_results", sq.Eq{"kind": kind})
}
