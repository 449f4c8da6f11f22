package repositories

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/vibecare/internal/models"
)

const diaryColumns = "id, user_id, note, created_at"

type DiaryRepository struct {
	db *sqlx.DB
}

func NewDiaryRepository(db *sqlx.DB) *DiaryRepository {
	return &DiaryRepository{db: db}
}

func (r *DiaryRepository) Create(ctx context.Context, e *models.DiaryEntry) error {
	b := psql.Insert("diary_entries").
		Columns("id", "user_id", "note").
		Values(uuid.NewString(), e.UserID, e.Note).
		Suffix("RETURNING " + diaryColumns)

	created, err := getOne[models.DiaryEntry](ctx, r.db, b)
	if err != nil {
		return err
	}
	*e = *created
	return nil
}

func (r *DiaryRepository) ListByUser(ctx context.Context, userID string) ([]models.DiaryEntry, error) {
	b := psql.Select(diaryColumns).
		From("diary_entries").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "id DESC")
	return selectAll[models.DiaryEntry](ctx, r.db, b)
}

func (r *DiaryRepository) Delete(ctx context.Context, id string) error {
	return execOne(ctx, r.db, psql.Delete("diary_entries").Where(sq.Eq{"id": id}))
}
