package handlers

import (
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/vibecare/internal/models"
	"github.com/sbilibin2017/vibecare/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestSaveChatHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockChatArchive(ctrl)
	messages := []models.ChatMessage{{Text: "hi", Sender: models.SenderUser}}

	t.Run("saved", func(t *testing.T) {
		mockSvc.EXPECT().Save(gomock.Any(), testUserID, messages).Return(&models.Chat{ID: "c1"}, nil)

		w := serve(NewSaveChatHandler(mockSvc), newJSONRequest(http.MethodPost, "/save-chat", SaveChatRequest{UserID: testUserID, Messages: messages}))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, SaveChatResponse{Status: StatusSuccess, Message: "Chat saved successfully", ChatID: "c1"}, decodeResponse[SaveChatResponse](t, w))
	})

	t.Run("missing messages", func(t *testing.T) {
		mockSvc.EXPECT().Save(gomock.Any(), testUserID, gomock.Nil()).Return(nil, services.ErrMissingFields)

		w := serve(NewSaveChatHandler(mockSvc), newJSONRequest(http.MethodPost, "/save-chat", SaveChatRequest{UserID: testUserID}))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Missing required fields (userId or messages)", decodeResponse[ErrorResponse](t, w).Message)
	})

	t.Run("bad message", func(t *testing.T) {
		mockSvc.EXPECT().Save(gomock.Any(), testUserID, gomock.Any()).Return(nil, services.ErrInvalidMessage)

		body := SaveChatRequest{UserID: testUserID, Messages: []models.ChatMessage{{Text: "hi"}}}
		w := serve(NewSaveChatHandler(mockSvc), newJSONRequest(http.MethodPost, "/save-chat", body))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Each message must have text and sender", decodeResponse[ErrorResponse](t, w).Message)
	})
}

func TestChatListHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockChatArchive(ctrl)

	t.Run("recent", func(t *testing.T) {
		mockSvc.EXPECT().Recent(gomock.Any(), testUserID).Return([]models.Chat{{ID: "c1"}}, nil)

		w := serve(NewRecentChatsHandler(mockSvc), newJSONRequest(http.MethodGet, "/get-chats?userId="+testUserID, nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Len(t, decodeResponse[ChatsResponse](t, w).Chats, 1)
	})

	t.Run("for user with bad id", func(t *testing.T) {
		mockSvc.EXPECT().ForUser(gomock.Any(), "bad").Return(nil, services.ErrInvalidID)

		req := withURLParam(newJSONRequest(http.MethodGet, "/get-user-chats/bad", nil), "userId", "bad")
		w := serve(NewUserChatsHandler(mockSvc), req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("all empty", func(t *testing.T) {
		mockSvc.EXPECT().All(gomock.Any()).Return(nil, nil)

		w := serve(NewAllChatsHandler(mockSvc), newJSONRequest(http.MethodGet, "/get-all-chats", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"status":"success","chats":[]}`, w.Body.String())
	})
}

func TestDeleteChatsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockChatArchive(ctrl)

	t.Run("deleted", func(t *testing.T) {
		mockSvc.EXPECT().DeleteAll(gomock.Any(), testUserID).Return(int64(3), nil)

		w := serve(NewDeleteChatsHandler(mockSvc), newJSONRequest(http.MethodDelete, "/delete-chats", DeleteChatsRequest{UserID: testUserID}))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, int64(3), decodeResponse[DeleteChatsResponse](t, w).DeletedCount)
	})

	t.Run("invalid user", func(t *testing.T) {
		mockSvc.EXPECT().DeleteAll(gomock.Any(), "").Return(int64(0), services.ErrMissingID)

		w := serve(NewDeleteChatsHandler(mockSvc), newJSONRequest(http.MethodDelete, "/delete-chats", DeleteChatsRequest{}))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Invalid user ID", decodeResponse[ErrorResponse](t, w).Message)
	})
}
