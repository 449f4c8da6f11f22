package services

import (
	"context"
	"strings"
	"time"

	"github.com/sbilibin2017/vibecare/internal/logger"
	"github.com/sbilibin2017/vibecare/internal/models"
)

//go:generate mockgen -source=chat.go -destination=mock_chat.go -package=services

// Chat listing limits
const (
	RecentChatsLimit = 50
	AllChatsLimit    = 500
)

// ChatStore defines the chat operations.
type ChatStore interface {
	Create(ctx context.Context, c *models.Chat) error
	ListByUser(ctx context.Context, userID string, limit int) ([]models.Chat, error)
	ListAll(ctx context.Context, limit int) ([]models.Chat, error)
	DeleteByUser(ctx context.Context, userID string) (int64, error)
}

// ChatService stores chatbot sessions.
type ChatService struct {
	store ChatStore
	now   func() time.Time
}

// NewChatService creates a new ChatService instance.
func NewChatService(store ChatStore) *ChatService {
	return &ChatService{store: store, now: time.Now}
}

// Save validates and stores a session. Messages without a timestamp get the current time.
func (svc *ChatService) Save(ctx context.Context, userID string, messages []models.ChatMessage) (*models.Chat, error) {
	if userID == "" || len(messages) == 0 {
		return nil, ErrMissingFields
	}
	if err := validateID(userID); err != nil {
		return nil, err
	}

	now := svc.now().UTC()
	for i := range messages {
		m := &messages[i]
		m.Text = strings.TrimSpace(m.Text)
		if m.Text == "" || (m.Sender != models.SenderUser && m.Sender != models.SenderBot) {
			return nil, ErrInvalidMessage
		}
		if m.Timestamp.IsZero() {
			m.Timestamp = now
		}
	}

	chat := &models.Chat{UserID: userID, Messages: messages}
	if err := svc.store.Create(ctx, chat); err != nil {
		logger.FromContext(ctx).Errorw("failed to save chat", "user_id", userID, "err", err)
		return nil, err
	}
	return chat, nil
}

// Recent returns the user's latest sessions.
func (svc *ChatService) Recent(ctx context.Context, userID string) ([]models.Chat, error) {
	if err := validateID(userID); err != nil {
		return nil, err
	}
	return svc.store.ListByUser(ctx, userID, RecentChatsLimit)
}

// ForUser returns up to AllChatsLimit sessions of a user.
func (svc *ChatService) ForUser(ctx context.Context, userID string) ([]models.Chat, error) {
	if err := validateID(userID); err != nil {
		return nil, err
	}
	return svc.store.ListByUser(ctx, userID, AllChatsLimit)
}

// All returns up to AllChatsLimit sessions across users.
func (svc *ChatService) All(ctx context.Context) ([]models.Chat, error) {
	return svc.store.ListAll(ctx, AllChatsLimit)
}

// DeleteAll removes every session of a user and reports how many were removed.
func (svc *ChatService) DeleteAll(ctx context.Context, userID string) (int64, error) {
	if err := validateID(userID); err != nil {
		return 0, err
	}

	n, err := svc.store.DeleteByUser(ctx, userID)
	if err != nil {
		return 0, err
	}
	logger.FromContext(ctx).Infow("chat history deleted", "user_id", userID, "count", n)
	return n, nil
}
