package repositories

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/vibecare/internal/models"
	"github.com/sbilibin2017/vibecare/internal/pagination"
)

const loginHistoryColumns = "id, user_id, email, ip, device, user_agent, date, time, success, created_at"

// LoginHistoryRepository appends and reads login attempts.
type LoginHistoryRepository struct {
	db *sqlx.DB
}

func NewLoginHistoryRepository(db *sqlx.DB) *LoginHistoryRepository {
	return &LoginHistoryRepository{db: db}
}

func (r *LoginHistoryRepository) Create(ctx context.Context, h *models.LoginHistory) error {
	b := psql.Insert("login_history").
		Columns("id", "user_id", "email", "ip", "device", "user_agent", "date", "time", "success").
		Values(uuid.NewString(), h.UserID, h.Email, h.IP, h.Device, h.UserAgent, h.Date, h.Time, h.Success).
		Suffix("RETURNING " + loginHistoryColumns)

	created, err := getOne[models.LoginHistory](ctx, r.db, b)
	if err != nil {
		return err
	}
	*h = *created
	return nil
}

// ListByUser returns every attempt of the user, newest first.
func (r *LoginHistoryRepository) ListByUser(ctx context.Context, userID string) ([]models.LoginHistory, error) {
	b := psql.Select(loginHistoryColumns).
		From("login_history").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "id DESC")
	return selectAll[models.LoginHistory](ctx, r.db, b)
}

// List returns one page of attempts across all users, newest first.
func (r *LoginHistoryRepository) List(ctx context.Context, p pagination.Params) (pagination.Page[models.LoginHistory], error) {
	b := psql.Select(loginHistoryColumns).From("login_history").OrderBy("created_at DESC", "id DESC")
	page, err := pagination.Fetch[models.LoginHistory](ctx, r.db, b, p)
	return page, mapError(err)
}

func (r *LoginHistoryRepository) CountByUser(ctx context.Context, userID string) (int64, error) {
	return count(ctx, r.db, "login_history", sq.Eq{"user_id": userID})
}

func (r *LoginHistoryRepository) Count(ctx context.Context) (int64, error) {
	return count(ctx, r.db, "login_history", nil)
}
