package repositories

import (
	"context"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/vibecare/internal/models"
)

const caretakerColumns = "id, user_id, caretaker_name, caretaker_otp_hash, created_at, updated_at"

// CaretakerRepository stores caretaker links.
type CaretakerRepository struct {
	db *sqlx.DB
}

func NewCaretakerRepository(db *sqlx.DB) *CaretakerRepository {
	return &CaretakerRepository{db: db}
}

// Create inserts a caretaker. A name already used by the same user,
// ignoring case, yields ErrDuplicate.
func (r *CaretakerRepository) Create(ctx context.Context, c *models.Caretaker) error {
	b := psql.Insert("caretakers").
		Columns("id", "user_id", "caretaker_name", "caretaker_otp_hash").
		Values(uuid.NewString(), c.UserID, strings.TrimSpace(c.CaretakerName), c.CodeHash).
		Suffix("RETURNING " + caretakerColumns)

	created, err := getOne[models.Caretaker](ctx, r.db, b)
	if err != nil {
		return err
	}
	*c = *created
	return nil
}

func (r *CaretakerRepository) GetByID(ctx context.Context, id string) (*models.Caretaker, error) {
	return getOne[models.Caretaker](ctx, r.db, psql.Select(caretakerColumns).From("caretakers").Where(sq.Eq{"id": id}))
}

func (r *CaretakerRepository) ListByUser(ctx context.Context, userID string) ([]models.Caretaker, error) {
	b := psql.Select(caretakerColumns).
		From("caretakers").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "id DESC")
	return selectAll[models.Caretaker](ctx, r.db, b)
}

// FindByName returns every caretaker with the name, ignoring case.
func (r *CaretakerRepository) FindByName(ctx context.Context, name string) ([]models.Caretaker, error) {
	b := psql.Select(caretakerColumns).
		From("caretakers").
		Where("LOWER(caretaker_name) = LOWER(?)", strings.TrimSpace(name)).
		OrderBy("created_at DESC", "id DESC")
	return selectAll[models.Caretaker](ctx, r.db, b)
}

func (r *CaretakerRepository) Delete(ctx context.Context, id string) error {
	return execOne(ctx, r.db, psql.Delete("caretakers").Where(sq.Eq{"id": id}))
}
