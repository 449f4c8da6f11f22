package handlers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/vibecare/internal/logger"
	"github.com/sbilibin2017/vibecare/internal/models"
	"github.com/sbilibin2017/vibecare/internal/pagination"
	"github.com/sbilibin2017/vibecare/internal/render"
	"github.com/sbilibin2017/vibecare/internal/services"
)

//go:generate mockgen -source=admin.go -destination=mock_admin.go -package=handlers

// AnalyticsProvider builds the overview snapshot.
type AnalyticsProvider interface {
	Analytics(ctx context.Context) (*models.Analytics, error)
}

// UserDirectory defines the account operations of the admin console.
type UserDirectory interface {
	List(ctx context.Context, p pagination.Params) (pagination.Page[models.User], error)
	ListLogins(ctx context.Context, p pagination.Params) (pagination.Page[models.LoginHistory], error)
	Detail(ctx context.Context, id string, p pagination.Params) (*services.UserDetail, error)
	AdminEdit(ctx context.Context, id, name, username, email, status string) (*models.User, error)
}

// FeedbackModerator defines the ticket operations of the admin console.
type FeedbackModerator interface {
	List(ctx context.Context, p pagination.Params) (pagination.Page[models.FeedbackView], error)
	Get(ctx context.Context, id string) (*models.FeedbackView, error)
	RespondByID(ctx context.Context, id, response string) (*models.Feedback, error)
	Delete(ctx context.Context, id string) error
}

// StoryModerator defines the story operations of the admin console.
type StoryModerator interface {
	List(ctx context.Context, p pagination.Params) (pagination.Page[models.StoryView], error)
	Get(ctx context.Context, id string) (*models.StoryView, error)
	SetStatus(ctx context.Context, id, status string) (*models.SuccessStory, error)
	Delete(ctx context.Context, id string) error
}

// RowsResponse carries rendered table rows for infinite scroll
// swagger:model RowsResponse
type RowsResponse struct {
	Status  string   `json:"status"`
	Data    []string `json:"data"`
	HasMore bool     `json:"hasMore"`
}

var (
	userColumns       = []string{"Name", "Username", "Email", "Status", "Joined"}
	loginColumns      = []string{"Email", "When", "IP", "Device", "Result"}
	feedbackColumns   = []string{"Ticket", "User", "Rating", "Improvement", "Status", "Created"}
	storyColumns      = []string{"Title", "Author", "Status", "Created"}
	expressionColumns = []string{"Captured", "Emotion", "Confidence", "Faces"}

	userStatuses  = []string{models.UserStatusActive, models.UserStatusDeactivated}
	storyStatuses = []string{models.StoryStatusPending, models.StoryStatusPublish, models.StoryStatusRejected}
)

type pageFetcher[T any] func(ctx context.Context, r *http.Request, p pagination.Params) (pagination.Page[T], error)

// adminError renders the status and message a service error maps to.
func adminError(rnd *render.Renderer, w http.ResponseWriter, r *http.Request, err error) {
	status, message := classify(err)
	if status == http.StatusInternalServerError {
		logger.FromContext(r.Context()).Errorw("admin request failed", "path", r.URL.Path, "err", err)
	}
	rnd.Error(w, status, message)
}

// listPage renders the first page of a table; later pages come from dataURL.
func listPage[T any](rnd *render.Renderer, title, row string, columns []string, dataURL func(*http.Request) string, fetch pageFetcher[T]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := fetch(r.Context(), r, pagination.New(1, pagination.DefaultLimit, pagination.DefaultLimit))
		if err != nil {
			adminError(rnd, w, r, err)
			return
		}

		rows, err := render.Rows(rnd, row, page.Items)
		if err != nil {
			adminError(rnd, w, r, err)
			return
		}

		rnd.HTML(w, http.StatusOK, "list", render.ListPage{
			Title:   title,
			Columns: columns,
			Rows:    rows,
			HasMore: page.HasMore,
			DataURL: dataURL(r),
		})
	}
}

// rowsData returns one page of rendered rows as JSON.
func rowsData[T any](rnd *render.Renderer, row string, defaultLimit int, fetch pageFetcher[T]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := fetch(r.Context(), r, pagination.Parse(r.URL.Query(), defaultLimit))
		if err != nil {
			writeServiceError(w, r, err, "")
			return
		}

		rows, err := render.Rows(rnd, row, page.Items)
		if err != nil {
			writeServiceError(w, r, err, "")
			return
		}

		data := make([]string, len(rows))
		for i, html := range rows {
			data[i] = string(html)
		}
		writeJSON(w, http.StatusOK, RowsResponse{Status: StatusSuccess, Data: data, HasMore: page.HasMore})
	}
}

func staticURL(url string) func(*http.Request) string {
	return func(*http.Request) string { return url }
}

func usersFetcher(svc UserDirectory) pageFetcher[models.User] {
	return func(ctx context.Context, _ *http.Request, p pagination.Params) (pagination.Page[models.User], error) {
		return svc.List(ctx, p)
	}
}

func loginsFetcher(svc UserDirectory) pageFetcher[models.LoginHistory] {
	return func(ctx context.Context, _ *http.Request, p pagination.Params) (pagination.Page[models.LoginHistory], error) {
		return svc.ListLogins(ctx, p)
	}
}

func feedbackFetcher(svc FeedbackModerator) pageFetcher[models.FeedbackView] {
	return func(ctx context.Context, _ *http.Request, p pagination.Params) (pagination.Page[models.FeedbackView], error) {
		return svc.List(ctx, p)
	}
}

func storiesFetcher(svc StoryModerator) pageFetcher[models.StoryView] {
	return func(ctx context.Context, _ *http.Request, p pagination.Params) (pagination.Page[models.StoryView], error) {
		return svc.List(ctx, p)
	}
}

// NewAdminOverviewHandler renders the landing page.
func NewAdminOverviewHandler(svc AnalyticsProvider, rnd *render.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a, err := svc.Analytics(r.Context())
		if err != nil {
			adminError(rnd, w, r, err)
			return
		}
		rnd.HTML(w, http.StatusOK, "overview", render.OverviewPage{Analytics: a})
	}
}

// NewAdminAnalyticsHandler returns the overview snapshot.
// @Summary Analytics snapshot
// @Tags admin
// @Produce json
// @Success 200 {object} handlers.DataResponse
// @Router /admin/analytics [get]
func NewAdminAnalyticsHandler(svc AnalyticsProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a, err := svc.Analytics(r.Context())
		if err != nil {
			writeServiceError(w, r, err, "")
			return
		}
		writeJSON(w, http.StatusOK, DataResponse{Status: StatusSuccess, Data: a})
	}
}

// NewAdminUsersPageHandler renders the account list.
func NewAdminUsersPageHandler(svc UserDirectory, rnd *render.Renderer) http.HandlerFunc {
	return listPage(rnd, "Users", render.UserRow, userColumns, staticURL("/admin/users/data"), usersFetcher(svc))
}

// NewAdminUsersDataHandler returns a page of account rows.
// @Summary Account rows
// @Tags admin
// @Produce json
// @Param page query int false "Page"
// @Param limit query int false "Limit"
// @Success 200 {object} handlers.RowsResponse
// @Router /admin/users/data [get]
func NewAdminUsersDataHandler(svc UserDirectory, rnd *render.Renderer) http.HandlerFunc {
	return rowsData(rnd, render.UserRow, pagination.DefaultLimit, usersFetcher(svc))
}

// NewAdminLoginsPageHandler renders the login history.
func NewAdminLoginsPageHandler(svc UserDirectory, rnd *render.Renderer) http.HandlerFunc {
	return listPage(rnd, "Login history", render.LoginRow, loginColumns, staticURL("/admin/login-history/data"), loginsFetcher(svc))
}

// NewAdminLoginsDataHandler returns a page of login rows.
// @Summary Login rows
// @Tags admin
// @Produce json
// @Param page query int false "Page"
// @Param limit query int false "Limit"
// @Success 200 {object} handlers.RowsResponse
// @Router /admin/login-history/data [get]
func NewAdminLoginsDataHandler(svc UserDirectory, rnd *render.Renderer) http.HandlerFunc {
	return rowsData(rnd, render.LoginRow, pagination.DefaultLimit, loginsFetcher(svc))
}

// NewAdminUserDetailHandler renders one account with its counts and first detections.
func NewAdminUserDetailHandler(svc UserDirectory, rnd *render.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		p := pagination.New(1, pagination.DefaultHistoryLimit, pagination.DefaultHistoryLimit)

		d, err := svc.Detail(r.Context(), id, p)
		if err != nil {
			adminError(rnd, w, r, err)
			return
		}

		rows, err := render.Rows(rnd, render.ExpressionRow, d.Expressions.Items)
		if err != nil {
			adminError(rnd, w, r, err)
			return
		}

		rnd.HTML(w, http.StatusOK, "user_detail", render.UserDetailPage{
			User:            d.User,
			LoginCount:      d.LoginCount,
			ExpressionCount: d.ExpressionCount,
			Statuses:        userStatuses,
			Expressions: render.ListPage{
				Columns: expressionColumns,
				Rows:    rows,
				HasMore: d.Expressions.HasMore,
				DataURL: fmt.Sprintf("/admin/users/%s/expressions/data", id),
			},
		})
	}
}

// NewAdminExpressionsDataHandler returns a page of detection rows of one account.
// @Summary Detection rows
// @Tags admin
// @Produce json
// @Param id path string true "User ID"
// @Param page query int false "Page"
// @Param limit query int false "Limit"
// @Success 200 {object} handlers.RowsResponse
// @Router /admin/users/{id}/expressions/data [get]
func NewAdminExpressionsDataHandler(svc ExpressionKeeper, rnd *render.Renderer) http.HandlerFunc {
	return rowsData(rnd, render.ExpressionRow, pagination.DefaultHistoryLimit,
		func(ctx context.Context, r *http.Request, p pagination.Params) (pagination.Page[models.FaceExpression], error) {
			return svc.History(ctx, chi.URLParam(r, "id"), p)
		})
}

// NewAdminEditUserHandler applies the edit form and returns to the detail page.
func NewAdminEditUserHandler(svc UserDirectory, rnd *render.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			rnd.Error(w, http.StatusBadRequest, "Invalid form")
			return
		}

		id := chi.URLParam(r, "id")
		_, err := svc.AdminEdit(r.Context(), id,
			r.PostForm.Get("Name"), r.PostForm.Get("Username"), r.PostForm.Get("Email"), r.PostForm.Get("status"))
		if err != nil {
			adminError(rnd, w, r, err)
			return
		}

		http.Redirect(w, r, "/admin/users/"+id, http.StatusSeeOther)
	}
}

// NewAdminFeedbackPageHandler renders the ticket list.
func NewAdminFeedbackPageHandler(svc FeedbackModerator, rnd *render.Renderer) http.HandlerFunc {
	return listPage(rnd, "Feedback", render.FeedbackRow, feedbackColumns, staticURL("/admin/feedback/data"), feedbackFetcher(svc))
}

// NewAdminFeedbackDataHandler returns a page of ticket rows.
// @Summary Ticket rows
// @Tags admin
// @Produce json
// @Param page query int false "Page"
// @Param limit query int false "Limit"
// @Success 200 {object} handlers.RowsResponse
// @Router /admin/feedback/data [get]
func NewAdminFeedbackDataHandler(svc FeedbackModerator, rnd *render.Renderer) http.HandlerFunc {
	return rowsData(rnd, render.FeedbackRow, pagination.DefaultLimit, feedbackFetcher(svc))
}

// NewAdminFeedbackViewHandler renders one ticket.
func NewAdminFeedbackViewHandler(svc FeedbackModerator, rnd *render.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fb, err := svc.Get(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			adminError(rnd, w, r, err)
			return
		}
		rnd.HTML(w, http.StatusOK, "feedback_detail", render.FeedbackDetailPage{Feedback: fb})
	}
}

// isJSON reports whether the request body is JSON rather than a form post.
func isJSON(r *http.Request) bool {
	mt, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return mt == "application/json"
}

// NewAdminFeedbackRespondHandler closes a ticket. Form posts are redirected back
// to the ticket, JSON requests get the closed ticket.
// @Summary Respond to ticket
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Feedback ID"
// @Param request body handlers.FeedbackResponseRequest false "Response"
// @Success 200 {object} handlers.DataResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Router /admin/feedback/{id}/respond [post]
func NewAdminFeedbackRespondHandler(svc FeedbackModerator, rnd *render.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		if isJSON(r) {
			var req FeedbackResponseRequest
			if err := decodeJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
				writeError(w, http.StatusBadRequest, "invalid request body")
				return
			}
			fb, err := svc.RespondByID(r.Context(), id, req.Response)
			if err != nil {
				writeServiceError(w, r, err, "")
				return
			}
			writeJSON(w, http.StatusOK, DataResponse{Status: StatusSuccess, Data: fb})
			return
		}

		if err := r.ParseForm(); err != nil {
			rnd.Error(w, http.StatusBadRequest, "Invalid form")
			return
		}
		if _, err := svc.RespondByID(r.Context(), id, r.PostForm.Get("response")); err != nil {
			adminError(rnd, w, r, err)
			return
		}
		http.Redirect(w, r, "/admin/feedback/"+id+"/view", http.StatusSeeOther)
	}
}

// NewAdminFeedbackDeleteHandler deletes a ticket.
// @Summary Delete ticket
// @Tags admin
// @Produce json
// @Param id path string true "Feedback ID"
// @Success 200 {object} handlers.MessageResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Router /admin/feedback/{id} [delete]
func NewAdminFeedbackDeleteHandler(svc FeedbackModerator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
			writeServiceError(w, r, err, "")
			return
		}
		writeJSON(w, http.StatusOK, MessageResponse{Status: StatusSuccess, Message: "Feedback deleted successfully"})
	}
}

// NewAdminStoriesPageHandler renders the story list.
func NewAdminStoriesPageHandler(svc StoryModerator, rnd *render.Renderer) http.HandlerFunc {
	return listPage(rnd, "Success stories", render.StoryRow, storyColumns, staticURL("/admin/stories/data"), storiesFetcher(svc))
}

// NewAdminStoriesDataHandler returns a page of story rows.
// @Summary Story rows
// @Tags admin
// @Produce json
// @Param page query int false "Page"
// @Param limit query int false "Limit"
// @Success 200 {object} handlers.RowsResponse
// @Router /admin/stories/data [get]
func NewAdminStoriesDataHandler(svc StoryModerator, rnd *render.Renderer) http.HandlerFunc {
	return rowsData(rnd, render.StoryRow, pagination.DefaultLimit, storiesFetcher(svc))
}

// NewAdminStoryViewHandler renders one story with the moderation form.
func NewAdminStoryViewHandler(svc StoryModerator, rnd *render.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, err := svc.Get(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			adminError(rnd, w, r, err)
			return
		}
		rnd.HTML(w, http.StatusOK, "story_detail", render.StoryDetailPage{Story: s, Statuses: storyStatuses})
	}
}

// NewAdminStoryStatusHandler moves a story to another moderation status.
func NewAdminStoryStatusHandler(svc StoryModerator, rnd *render.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			rnd.Error(w, http.StatusBadRequest, "Invalid form")
			return
		}

		id := chi.URLParam(r, "id")
		if _, err := svc.SetStatus(r.Context(), id, r.PostForm.Get("status")); err != nil {
			adminError(rnd, w, r, err)
			return
		}
		http.Redirect(w, r, "/admin/stories/"+id+"/view", http.StatusSeeOther)
	}
}

// NewAdminStoryDeleteHandler deletes a story.
// @Summary Delete story
// @Tags admin
// @Produce json
// @Param id path string true "Story ID"
// @Success 200 {object} handlers.MessageResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Router /admin/stories/{id} [delete]
func NewAdminStoryDeleteHandler(svc StoryModerator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
			writeServiceError(w, r, err, "")
			return
		}
		writeJSON(w, http.StatusOK, MessageResponse{Status: StatusSuccess, Message: "Story deleted successfully"})
	}
}
