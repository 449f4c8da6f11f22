package repositories

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/vibecare/internal/models"
	"github.com/sbilibin2017/vibecare/internal/pagination"
)

const userColumns = "id, name, username, email, password_hash, otp_hash, reset_token_expiration, status, created_at, updated_at"

// UserRepository stores accounts in the users table.
type UserRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewUserRepository(db *sqlx.DB, txGetter TxGetter) *UserRepository {
	return &UserRepository{db: db, txGetter: txGetter}
}

// Create inserts the user and fills in the generated fields.
func (r *UserRepository) Create(ctx context.Context, u *models.User) error {
	if u.Status == "" {
		u.Status = models.UserStatusActive
	}
	b := psql.Insert("users").
		Columns("id", "name", "username", "email", "password_hash", "status").
		Values(uuid.NewString(), u.Name, u.Username, u.Email, u.PasswordHash, u.Status).
		Suffix("RETURNING " + userColumns)

	created, err := getOne[models.User](ctx, executor(ctx, r.db, r.txGetter), b)
	if err != nil {
		return err
	}
	*u = *created
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	b := psql.Select(userColumns).From("users").Where(sq.Eq{"id": id})
	return getOne[models.User](ctx, executor(ctx, r.db, r.txGetter), b)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	b := psql.Select(userColumns).From("users").Where(sq.Eq{"email": email})
	return getOne[models.User](ctx, executor(ctx, r.db, r.txGetter), b)
}

// Update applies the non-nil fields of upd and returns the stored row.
func (r *UserRepository) Update(ctx context.Context, id string, upd models.UserUpdate) (*models.User, error) {
	if upd.IsEmpty() {
		return r.GetByID(ctx, id)
	}

	set := map[string]any{}
	if upd.Name != nil {
		set["name"] = *upd.Name
	}
	if upd.Username != nil {
		set["username"] = *upd.Username
	}
	if upd.Email != nil {
		set["email"] = *upd.Email
	}
	if upd.Status != nil {
		set["status"] = *upd.Status
	}

	b := psql.Update("users").
		SetMap(set).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + userColumns)
	return getOne[models.User](ctx, executor(ctx, r.db, r.txGetter), b)
}

// SetResetOTP stores a hashed reset code and its expiry.
func (r *UserRepository) SetResetOTP(ctx context.Context, id, otpHash string, expiresAt time.Time) error {
	b := psql.Update("users").
		Set("otp_hash", otpHash).
		Set("reset_token_expiration", expiresAt).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id})
	return execOne(ctx, executor(ctx, r.db, r.txGetter), b)
}

// ResetPassword stores a new password hash and clears the reset window.
func (r *UserRepository) ResetPassword(ctx context.Context, id, passwordHash string) error {
	b := psql.Update("users").
		Set("password_hash", passwordHash).
		Set("otp_hash", nil).
		Set("reset_token_expiration", nil).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id})
	return execOne(ctx, executor(ctx, r.db, r.txGetter), b)
}

func (r *UserRepository) SetStatus(ctx context.Context, id, status string) error {
	b := psql.Update("users").
		Set("status", status).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id})
	return execOne(ctx, executor(ctx, r.db, r.txGetter), b)
}

func (r *UserRepository) Delete(ctx context.Context, id string) error {
	return execOne(ctx, executor(ctx, r.db, r.txGetter), psql.Delete("users").Where(sq.Eq{"id": id}))
}

// List returns one page of users, newest first.
func (r *UserRepository) List(ctx context.Context, p pagination.Params) (pagination.Page[models.User], error) {
	b := psql.Select(userColumns).From("users").OrderBy("created_at DESC", "id DESC")
	page, err := pagination.Fetch[models.User](ctx, r.db, b, p)
	return page, mapError(err)
}

// ListAll returns every user, newest first.
func (r *UserRepository) ListAll(ctx context.Context) ([]models.User, error) {
	b := psql.Select(userColumns).From("users").OrderBy("created_at DESC", "id DESC")
	return selectAll[models.User](ctx, r.db, b)
}

// Recent returns the n newest users.
func (r *UserRepository) Recent(ctx context.Context, n int) ([]models.User, error) {
	b := psql.Select(userColumns).From("users").OrderBy("created_at DESC", "id DESC").Limit(uint64(n))
	return selectAll[models.User](ctx, r.db, b)
}

func (r *UserRepository) Count(ctx context.Context) (int64, error) {
	return count(ctx, r.db, "users", nil)
}
