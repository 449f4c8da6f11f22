package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/vibecare/internal/models"
)

//go:generate mockgen -source=users.go -destination=mock_users.go -package=handlers

// Profiler defines the account operations used by the user routes.
type Profiler interface {
	Get(ctx context.Context, id string) (*models.User, error)
	EditProfile(ctx context.Context, id, name, username, email string) (*models.User, error)
	LoginHistory(ctx context.Context, userID string) ([]models.LoginHistory, error)
	ListAll(ctx context.Context) ([]models.User, error)
	Delete(ctx context.Context, id string) error
	Deactivate(ctx context.Context, id string) error
}

// UserSummary is the public part of an account
// swagger:model UserSummary
type UserSummary struct {
	ID       string `json:"_id"`
	Name     string `json:"Name"`
	Username string `json:"Username"`
	Email    string `json:"Email"`
}

// EditProfileRequest changes the non-empty profile fields
// swagger:model EditProfileRequest
type EditProfileRequest struct {
	// required: true
	UserID   string `json:"userId"`
	Name     string `json:"Name"`
	Username string `json:"Username"`
	Email    string `json:"Email"`
}

// EditProfileResponse returns the updated account
// swagger:model EditProfileResponse
type EditProfileResponse struct {
	Status  string       `json:"status"`
	Message string       `json:"message"`
	User    *models.User `json:"user"`
}

// LoginHistoryItem is one formatted login attempt
// swagger:model LoginHistoryItem
type LoginHistoryItem struct {
	Date   string `json:"date"`
	Time   string `json:"time"`
	IP     string `json:"ip"`
	Device string `json:"device"`
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

// NewGetUserHandler returns the public profile of a user.
// @Summary Get user
// @Tags users
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {object} handlers.DataResponse{data=handlers.UserSummary}
// @Failure 400 {object} handlers.ErrorResponse "Invalid ID format"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /get-user/{userId} [get]
func NewGetUserHandler(svc Profiler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, err := svc.Get(r.Context(), chi.URLParam(r, "userId"))
		if err != nil {
			writeServiceError(w, r, err, "")
			return
		}

		writeJSON(w, http.StatusOK, DataResponse{
			Status: StatusSuccess,
			Data:   UserSummary{ID: user.ID, Name: user.Name, Username: user.Username, Email: user.Email},
		})
	}
}

// NewUserProfileHandler returns the full profile of a user.
// @Summary User profile
// @Tags users
// @Produce json
// @Param userId query string true "User ID"
// @Success 200 {object} models.User
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /user-profile [get]
func NewUserProfileHandler(svc Profiler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, err := svc.Get(r.Context(), r.URL.Query().Get("userId"))
		if err != nil {
			writeServiceError(w, r, err, "")
			return
		}
		writeJSON(w, http.StatusOK, user)
	}
}

// NewEditProfileHandler updates the non-empty profile fields.
// @Summary Edit profile
// @Tags users
// @Accept json
// @Produce json
// @Param request body handlers.EditProfileRequest true "Profile fields"
// @Success 200 {object} handlers.EditProfileResponse
// @Failure 400 {object} handlers.ErrorResponse "Email already in use"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /edit-profile [put]
func NewEditProfileHandler(svc Profiler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req EditProfileRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		user, err := svc.EditProfile(r.Context(), req.UserID, req.Name, req.Username, req.Email)
		if err != nil {
			writeServiceError(w, r, err, "")
			return
		}

		writeJSON(w, http.StatusOK, EditProfileResponse{
			Status:  StatusSuccess,
			Message: "Profile updated successfully",
			User:    user,
		})
	}
}

// NewLoginHistoryHandler lists a user's login attempts, newest first.
// @Summary Login history
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} handlers.DataResponse{data=[]handlers.LoginHistoryItem}
// @Failure 400 {object} handlers.ErrorResponse
// @Router /get-login-history/{id} [get]
func NewLoginHistoryHandler(svc Profiler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		history, err := svc.LoginHistory(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			writeServiceError(w, r, err, "Server error")
			return
		}

		items := make([]LoginHistoryItem, 0, len(history))
		for _, h := range history {
			device := h.Device
			if device == "" {
				device = models.DetectDevice(h.UserAgent)
			}
			items = append(items, LoginHistoryItem{Date: orNA(h.Date), Time: orNA(h.Time), IP: orNA(h.IP), Device: device})
		}

		writeJSON(w, http.StatusOK, DataResponse{Status: StatusSuccess, Data: items})
	}
}

// NewListUsersHandler lists every account.
// @Summary All users
// @Tags users
// @Produce json
// @Success 200 {object} handlers.DataResponse{data=[]models.User}
// @Router /get-all-users [get]
func NewListUsersHandler(svc Profiler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := svc.ListAll(r.Context())
		if err != nil {
			writeServiceError(w, r, err, "")
			return
		}
		writeJSON(w, http.StatusOK, DataResponse{Status: StatusSuccess, Data: nonNil(users)})
	}
}

// NewDeleteUserHandler hard-deletes an account.
// @Summary Delete user
// @Tags users
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {object} handlers.MessageResponse
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /delete-user/{userId} [delete]
func NewDeleteUserHandler(svc Profiler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "userId")); err != nil {
			writeServiceError(w, r, err, "")
			return
		}
		writeJSON(w, http.StatusOK, MessageResponse{Status: StatusSuccess, Message: "User deleted successfully"})
	}
}

// NewDeactivateUserHandler blocks further logins of an account.
// @Summary Deactivate user
// @Tags users
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {object} handlers.MessageResponse
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /deactivate-user/{userId} [patch]
func NewDeactivateUserHandler(svc Profiler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Deactivate(r.Context(), chi.URLParam(r, "userId")); err != nil {
			writeServiceError(w, r, err, "")
			return
		}
		writeJSON(w, http.StatusOK, MessageResponse{Status: StatusSuccess, Message: "User deactivated successfully"})
	}
}
