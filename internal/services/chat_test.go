package services

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/vibecare/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatService_Save(t *testing.T) {
	userID := uuid.NewString()
	now := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		userID   string
		messages []models.ChatMessage
		wantErr  error
	}{
		{name: "no messages", userID: userID, wantErr: ErrMissingFields},
		{name: "missing user", messages: []models.ChatMessage{{Text: "hi", Sender: models.SenderUser}}, wantErr: ErrMissingFields},
		{name: "empty text", userID: userID, messages: []models.ChatMessage{{Text: " ", Sender: models.SenderUser}}, wantErr: ErrInvalidMessage},
		{name: "unknown sender", userID: userID, messages: []models.ChatMessage{{Text: "hi", Sender: "system"}}, wantErr: ErrInvalidMessage},
		{name: "valid", userID: userID, messages: []models.ChatMessage{{Text: "hi", Sender: models.SenderUser}, {Text: "hello", Sender: models.SenderBot}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := NewMockChatStore(ctrl)
			svc := NewChatService(store)
			svc.now = func() time.Time { return now }

			if tt.wantErr == nil {
				store.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, c *models.Chat) error {
					c.ID = uuid.NewString()
					return nil
				})
			}

			chat, err := svc.Save(context.Background(), tt.userID, tt.messages)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, chat.ID)
			for _, m := range chat.Messages {
				assert.Equal(t, now, m.Timestamp)
			}
		})
	}
}

func TestChatService_Limits(t *testing.T) {
	userID := uuid.NewString()
	ctrl := gomock.NewController(t)
	store := NewMockChatStore(ctrl)
	svc := NewChatService(store)

	store.EXPECT().ListByUser(gomock.Any(), userID, RecentChatsLimit).Return(nil, nil)
	store.EXPECT().ListByUser(gomock.Any(), userID, AllChatsLimit).Return(nil, nil)
	store.EXPECT().ListAll(gomock.Any(), AllChatsLimit).Return(nil, nil)
	store.EXPECT().DeleteByUser(gomock.Any(), userID).Return(int64(3), nil)

	_, err := svc.Recent(context.Background(), userID)
	require.NoError(t, err)
	_, err = svc.ForUser(context.Background(), userID)
	require.NoError(t, err)
	_, err = svc.All(context.Background())
	require.NoError(t, err)

	n, err := svc.DeleteAll(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
}
