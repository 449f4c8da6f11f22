package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/vibecare/internal/models"
	"github.com/sbilibin2017/vibecare/internal/services"
)

//go:generate mockgen -source=chats.go -destination=mock_chats.go -package=handlers

// ChatArchive defines the chat session operations.
type ChatArchive interface {
	Save(ctx context.Context, userID string, messages []models.ChatMessage) (*models.Chat, error)
	Recent(ctx context.Context, userID string) ([]models.Chat, error)
	ForUser(ctx context.Context, userID string) ([]models.Chat, error)
	All(ctx context.Context) ([]models.Chat, error)
	DeleteAll(ctx context.Context, userID string) (int64, error)
}

// SaveChatRequest stores one chat session
// swagger:model SaveChatRequest
type SaveChatRequest struct {
	// required: true
	UserID string `json:"userId"`
	// required: true
	Messages []models.ChatMessage `json:"messages"`
}

// SaveChatResponse returns the new session id
// swagger:model SaveChatResponse
type SaveChatResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	ChatID  string `json:"chatId"`
}

// ChatsResponse lists chat sessions
// swagger:model ChatsResponse
type ChatsResponse struct {
	Status string        `json:"status"`
	Chats  []models.Chat `json:"chats"`
}

// DeleteChatsRequest names the user whose history is removed
// swagger:model DeleteChatsRequest
type DeleteChatsRequest struct {
	UserID string `json:"userId"`
}

// DeleteChatsResponse reports how many sessions were removed
// swagger:model DeleteChatsResponse
type DeleteChatsResponse struct {
	Status       string `json:"status"`
	Message      string `json:"message"`
	DeletedCount int64  `json:"deletedCount"`
}

// NewSaveChatHandler stores a chat session.
// @Summary Save chat
// @Tags chats
// @Accept json
// @Produce json
// @Param request body handlers.SaveChatRequest true "Session"
// @Success 200 {object} handlers.SaveChatResponse
// @Failure 400 {object} handlers.ErrorResponse
// @Router /save-chat [post]
func NewSaveChatHandler(svc ChatArchive) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SaveChatRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		chat, err := svc.Save(r.Context(), req.UserID, req.Messages)
		if err != nil {
			if errors.Is(err, services.ErrMissingFields) {
				writeError(w, http.StatusBadRequest, "Missing required fields (userId or messages)")
				return
			}
			writeServiceError(w, r, err, "")
			return
		}

		writeJSON(w, http.StatusOK, SaveChatResponse{Status: StatusSuccess, Message: "Chat saved successfully", ChatID: chat.ID})
	}
}

func writeChats(w http.ResponseWriter, r *http.Request, chats []models.Chat, err error) {
	if err != nil {
		writeServiceError(w, r, err, "")
		return
	}
	writeJSON(w, http.StatusOK, ChatsResponse{Status: StatusSuccess, Chats: nonNil(chats)})
}

// NewRecentChatsHandler returns the user's latest sessions.
// @Summary Recent chats
// @Tags chats
// @Produce json
// @Param userId query string true "User ID"
// @Success 200 {object} handlers.ChatsResponse
// @Router /get-chats [get]
func NewRecentChatsHandler(svc ChatArchive) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		chats, err := svc.Recent(r.Context(), r.URL.Query().Get("userId"))
		writeChats(w, r, chats, err)
	}
}

// NewUserChatsHandler returns the sessions of one user.
// @Summary Chats of a user
// @Tags chats
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {object} handlers.ChatsResponse
// @Router /get-user-chats/{userId} [get]
func NewUserChatsHandler(svc ChatArchive) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		chats, err := svc.ForUser(r.Context(), chi.URLParam(r, "userId"))
		writeChats(w, r, chats, err)
	}
}

// NewAllChatsHandler returns sessions across all users.
// @Summary All chats
// @Tags chats
// @Produce json
// @Success 200 {object} handlers.ChatsResponse
// @Router /get-all-chats [get]
func NewAllChatsHandler(svc ChatArchive) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		chats, err := svc.All(r.Context())
		writeChats(w, r, chats, err)
	}
}

// NewDeleteChatsHandler removes the chat history of a user.
// @Summary Delete chats
// @Tags chats
// @Accept json
// @Produce json
// @Param request body handlers.DeleteChatsRequest true "Owner"
// @Success 200 {object} handlers.DeleteChatsResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid user ID"
// @Router /delete-chats [delete]
func NewDeleteChatsHandler(svc ChatArchive) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req DeleteChatsRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		n, err := svc.DeleteAll(r.Context(), req.UserID)
		if err != nil {
			if errors.Is(err, services.ErrMissingID) || errors.Is(err, services.ErrInvalidID) {
				writeError(w, http.StatusBadRequest, "Invalid user ID")
				return
			}
			writeServiceError(w, r, err, "")
			return
		}

		writeJSON(w, http.StatusOK, DeleteChatsResponse{Status: StatusSuccess, Message: "Chat history deleted", DeletedCount: n})
	}
}
