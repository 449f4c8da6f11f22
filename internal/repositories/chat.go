package repositories

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/vibecare/internal/models"
)

const chatColumns = "id, user_id, messages, created_at, updated_at"

// ChatRepository stores chat sessions.
type ChatRepository struct {
	db *sqlx.DB
}

func NewChatRepository(db *sqlx.DB) *ChatRepository {
	return &ChatRepository{db: db}
}

func (r *ChatRepository) Create(ctx context.Context, c *models.Chat) error {
	b := psql.Insert("chats").
		Columns("id", "user_id", "messages").
		Values(uuid.NewString(), c.UserID, c.Messages).
		Suffix("RETURNING " + chatColumns)

	created, err := getOne[models.Chat](ctx, r.db, b)
	if err != nil {
		return err
	}
	*c = *created
	return nil
}

// ListByUser returns up to limit chats of the user, newest first.
func (r *ChatRepository) ListByUser(ctx context.Context, userID string, limit int) ([]models.Chat, error) {
	b := psql.Select(chatColumns).
		From("chats").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(limit))
	return selectAll[models.Chat](ctx, r.db, b)
}

// ListAll returns up to limit chats of all users, newest first.
func (r *ChatRepository) ListAll(ctx context.Context, limit int) ([]models.Chat, error) {
	b := psql.Select(chatColumns).
		From("chats").
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(limit))
	return selectAll[models.Chat](ctx, r.db, b)
}

// DeleteByUser removes every chat of the user and returns how many were deleted.
func (r *ChatRepository) DeleteByUser(ctx context.Context, userID string) (int64, error) {
	return exec(ctx, r.db, psql.Delete("chats").Where(sq.Eq{"user_id": userID}))
}
