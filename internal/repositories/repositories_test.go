package repositories

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/vibecare/internal/models"
	"github.com/sbilibin2017/vibecare/internal/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return sqlx.NewDb(db, "sqlmock"), mock
}

func TestMapError(t *testing.T) {
	assert.NoError(t, mapError(nil))
	assert.ErrorIs(t, mapError(sql.ErrNoRows), ErrNotFound)
	assert.ErrorIs(t, mapError(&pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "users_email_key"}), ErrDuplicate)

	other := errors.New("boom")
	assert.Equal(t, other, mapError(other))
	assert.NotErrorIs(t, mapError(&pgconn.PgError{Code: pgerrcode.NotNullViolation}), ErrDuplicate)
}

func TestUserRepository_GetByEmail(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db, nil)
	ctx := context.Background()

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT "+userColumns+" FROM users WHERE email = $1")).
		WithArgs("jane@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "password_hash", "status", "created_at", "updated_at"}).
			AddRow("u1", "Jane", "jane@example.com", "hash", models.UserStatusActive, now, now))

	u, err := repo.GetByEmail(ctx, "jane@example.com")
	require.NoError(t, err)
	assert.Equal(t, "u1", u.ID)
	assert.Equal(t, "hash", u.PasswordHash)

	mock.ExpectQuery("SELECT .* FROM users WHERE email").WillReturnError(sql.ErrNoRows)
	_, err = repo.GetByEmail(ctx, "missing@example.com")
	assert.ErrorIs(t, err, ErrNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_UsesRequestTransaction(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	tx, err := db.Beginx()
	require.NoError(t, err)

	repo := NewUserRepository(db, func(ctx context.Context) *sqlx.Tx { return tx })

	mock.ExpectExec(regexp.QuoteMeta("UPDATE users SET status = $1, updated_at = NOW() WHERE id = $2")).
		WithArgs(models.UserStatusDeactivated, "u1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.SetStatus(context.Background(), "u1", models.UserStatusDeactivated))
	require.NoError(t, tx.Commit())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_DeleteMissing(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db, nil)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM users WHERE id = $1")).
		WithArgs("u1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.Delete(context.Background(), "u1"), ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_CreateDuplicate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db, nil)

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation})

	err := repo.Create(context.Background(), &models.User{Email: "jane@example.com", PasswordHash: "h"})
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestFeedbackRepository_ListOrder(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewFeedbackRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY f.responded ASC, f.created_at DESC, f.id DESC LIMIT 3 OFFSET 2")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "ticket_number", "responded", "user_email", "user_name"}).
			AddRow("f1", "T-1", false, "a@b.c", "A").
			AddRow("f2", "T-2", false, "", "").
			AddRow("f3", "T-3", true, "", ""))

	page, err := repo.List(context.Background(), pagination.New(2, 2, pagination.DefaultLimit))
	require.NoError(t, err)
	assert.True(t, page.HasMore)
	require.Len(t, page.Items, 2)
	assert.Equal(t, "a@b.c", page.Items[0].UserEmail)
	assert.Equal(t, "T-1", page.Items[0].TicketNumber)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFeedbackRepository_RespondOnlyOpen(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewFeedbackRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE feedback SET admin_response = $1, status = $2, responded = $3, updated_at = NOW() WHERE id = $4 AND responded = $5")).
		WithArgs("thanks", models.FeedbackStatusClosed, true, "f1", false).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.RespondByID(context.Background(), "f1", "thanks")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFaceExpressionRepository_ListByUserOrder(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewFaceExpressionRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE user_id = $1 ORDER BY captured_at DESC, created_at DESC, id DESC LIMIT 11 OFFSET 0")).
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "all_emotions", "raw_result"}).
			AddRow("e1", []byte(`{"Happy":0.7}`), []byte(`{"x":1}`)))

	page, err := repo.ListByUser(context.Background(), "u1", pagination.New(1, 10, pagination.DefaultHistoryLimit))
	require.NoError(t, err)
	assert.False(t, page.HasMore)
	require.Len(t, page.Items, 1)
	require.NotNil(t, page.Items[0].AllEmotions)
	assert.InDelta(t, 0.7, page.Items[0].AllEmotions.Happy, 1e-9)
	assert.JSONEq(t, `{"x":1}`, string(page.Items[0].RawResult))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCaretakerRepository_FindByName(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCaretakerRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE LOWER(caretaker_name) = LOWER($1)")).
		WithArgs("Mom").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "caretaker_name", "caretaker_otp_hash"}).
			AddRow("c1", "u1", "mom", "hash"))

	found, err := repo.FindByName(context.Background(), "  Mom ")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "hash", found[0].CodeHash)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAssessmentRepository_Latest(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAssessmentRepository(db)

	score := 21.0
	mock.ExpectQuery(regexp.QuoteMeta("FROM assessment_results WHERE kind = $1 AND user_id = $2 ORDER BY created_at DESC, id DESC LIMIT 1")).
		WithArgs(models.AssessmentDepression, "u1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "kind", "score", "level"}).
			AddRow("a1", models.AssessmentDepression, score, "Moderate depression"))

	res, err := repo.Latest(context.Background(), "u1", models.AssessmentDepression)
	require.NoError(t, err)
	require.NotNil(t, res.Score)
	assert.Equal(t, score, *res.Score)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestChatRepository_DeleteByUser(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewChatRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM chats WHERE user_id = $1")).
		WithArgs("u1").
		WillReturnResult(sqlmock.NewResult(0, 3))

	n, err := repo.DeleteByUser(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCount(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewLoginHistoryRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM login_history WHERE user_id = $1")).
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))

	n, err := repo.CountByUser(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(4), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestImageRepository_Random(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewImageRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, title, url, description, created_at FROM images ORDER BY RANDOM() LIMIT 5")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "url"}).
			AddRow("i1", "Lake", "https://cdn.example.com/lake.jpg").
			AddRow("i2", "Forest", "https://cdn.example.com/forest.jpg"))

	images, err := repo.Random(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, images, 2)
	assert.Equal(t, "Lake", images[0].Title)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestImageRepository_GetByIDMissing(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewImageRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM images WHERE id = $1")).
		WithArgs("i9").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), "i9")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmojiRepository_Find(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewEmojiRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE e.item->>'emoji' = $1 ORDER BY ec.id, c.ci, s.si, e.ei LIMIT 1")).
		WithArgs("😀").
		WillReturnRows(sqlmock.NewRows([]string{"category", "subcategory", "emoji_data"}).
			AddRow("Smileys & Emotion", "face-smiling", []byte(`{"emoji":"😀","name":"grinning face"}`)))

	match, err := repo.Find(context.Background(), "😀")
	require.NoError(t, err)
	assert.Equal(t, "face-smiling", match.Subcategory)
	assert.JSONEq(t, `{"emoji":"😀","name":"grinning face"}`, string(match.EmojiData))
	assert.NoError(t, mock.ExpectationsWereMet())

	mock.ExpectQuery(regexp.QuoteMeta("FROM emoji_catalogue ec")).
		WithArgs("🦄").
		WillReturnError(sql.ErrNoRows)
	_, err = repo.Find(context.Background(), "🦄")
	assert.ErrorIs(t, err, ErrNotFound)
}
