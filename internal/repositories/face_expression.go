package repositories

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/vibecare/internal/models"
	"github.com/sbilibin2017/vibecare/internal/pagination"
)

const faceExpressionColumns = "id, user_id, faces_detected, predicted_emotion, confidence, all_emotions, bounding_box, raw_result, captured_at, created_at"

// FaceExpressionRepository stores face-expression detections.
type FaceExpressionRepository struct {
	db *sqlx.DB
}

func NewFaceExpressionRepository(db *sqlx.DB) *FaceExpressionRepository {
	return &FaceExpressionRepository{db: db}
}

func (r *FaceExpressionRepository) Create(ctx context.Context, e *models.FaceExpression) error {
	b := psql.Insert("face_expression_history").
		Columns("id", "user_id", "faces_detected", "predicted_emotion", "confidence",
			"all_emotions", "bounding_box", "raw_result", "captured_at").
		Values(uuid.NewString(), e.UserID, e.FacesDetected, e.PredictedEmotion, e.Confidence,
			e.AllEmotions, e.BoundingBox, e.RawResult, e.CapturedAt).
		Suffix("RETURNING " + faceExpressionColumns)

	created, err := getOne[models.FaceExpression](ctx, r.db, b)
	if err != nil {
		return err
	}
	*e = *created
	return nil
}

// ListByUser returns one page of the user's detections, most recently captured first.
func (r *FaceExpressionRepository) ListByUser(ctx context.Context, userID string, p pagination.Params) (pagination.Page[models.FaceExpression], error) {
	b := psql.Select(faceExpressionColumns).
		From("face_expression_history").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("captured_at DESC", "created_at DESC", "id DESC")
	page, err := pagination.Fetch[models.FaceExpression](ctx, r.db, b, p)
	return page, mapError(err)
}

// Recent returns the n newest detections across all users.
func (r *FaceExpressionRepository) Recent(ctx context.Context, n int) ([]models.FaceExpression, error) {
	b := psql.Select(faceExpressionColumns).
		From("face_expression_history").
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(n))
	return selectAll[models.FaceExpression](ctx, r.db, b)
}

func (r *FaceExpressionRepository) CountByUser(ctx context.Context, userID string) (int64, error) {
	return count(ctx, r.db, "face_expression_history", sq.Eq{"user_id": userID})
}

func (r *FaceExpressionRepository) Count(ctx context.Context) (int64, error) {
	return count(ctx, r.db, "face_expression_history", nil)
}
