package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/sbilibin2017/vibecare/internal/middlewares"
	"github.com/sbilibin2017/vibecare/internal/render"
	httpSwagger "github.com/swaggo/http-swagger"
)

// UserManager serves both the public user routes and the admin console.
type UserManager interface {
	Profiler
	UserDirectory
}

// FeedbackManager serves both the public feedback routes and the admin console.
type FeedbackManager interface {
	FeedbackDesk
	FeedbackModerator
}

// StoryManager serves both the public story routes and the admin console.
type StoryManager interface {
	StoryBoard
	StoryModerator
}

// RouterDeps holds everything the HTTP routes dispatch to.
type RouterDeps struct {
	Auth        Authenticator
	Users       UserManager
	Preferences PreferenceKeeper
	Predictor   Predictor
	Expressions ExpressionKeeper
	Feedback    FeedbackManager
	Stories     StoryManager
	Diary       Diary
	Caretakers  CaretakerRegistry
	Assessments Assessor
	Chats       ChatArchive
	Analytics   AnalyticsProvider
	Media       MediaLibrary
	Renderer    *render.Renderer

	// Tokener guards the user-data routes when AuthRequired is set.
	Tokener      middlewares.Tokener
	AuthRequired bool

	// AdminUser enables basic auth on /admin when not empty.
	AdminUser     string
	AdminPassword string

	// Tx wraps account mutations in a transaction. Nil disables it.
	Tx func(http.Handler) http.Handler

	SwaggerURL string
}

func passThrough(next http.Handler) http.Handler { return next }

// NewRouter builds the chi router with the public API, the admin console and the docs.
func NewRouter(d RouterDeps) http.Handler {
	tx := d.Tx
	if tx == nil {
		tx = passThrough
	}

	r := chi.NewRouter()
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)

	r.Get("/", NewRootHandler())

	r.Post("/register", NewRegisterHandler(d.Auth))
	r.Post("/login-user", NewLoginHandler(d.Auth))
	r.Post("/send-otp", NewSendOTPHandler(d.Auth))
	r.Post("/send-reset-otp", NewSendResetOTPHandler(d.Auth))
	r.Post("/verify-otp", NewVerifyOTPHandler(d.Auth))
	r.Post("/forgot-password", NewForgotPasswordHandler(d.Auth))
	r.Post("/verifyOtp", NewVerifyResetOTPHandler(d.Auth))
	r.Post("/reset-password", NewResetPasswordHandler(d.Auth))
	r.Post("/predict", NewPredictHandler(d.Predictor))

	r.Get("/random-images", NewRandomImagesHandler(d.Media))
	r.Get("/image-details/{id}", NewImageDetailsHandler(d.Media))
	r.Get("/searchEmoji", NewSearchEmojiHandler(d.Media))

	r.Group(func(r chi.Router) {
		if d.AuthRequired {
			r.Use(middlewares.AuthMiddleware(d.Tokener))
		}

		r.Get("/get-user/{userId}", NewGetUserHandler(d.Users))
		r.Get("/user-profile", NewUserProfileHandler(d.Users))
		r.With(tx).Put("/edit-profile", NewEditProfileHandler(d.Users))
		r.Get("/get-login-history/{id}", NewLoginHistoryHandler(d.Users))
		r.Get("/get-all-users", NewListUsersHandler(d.Users))
		r.With(tx).Delete("/delete-user/{userId}", NewDeleteUserHandler(d.Users))
		r.With(tx).Patch("/deactivate-user/{userId}", NewDeactivateUserHandler(d.Users))

		r.Post("/save-preferences", NewSavePreferencesHandler(d.Preferences))
		r.Get("/get-user-preferences", NewGetPreferencesHandler(d.Preferences))

		r.Post("/save-face-expression-result", NewSaveFaceHandler(d.Expressions))
		r.Get("/face-expression-history/{userId}", NewFaceHistoryHandler(d.Expressions))

		r.Post("/submit-feedback", NewSubmitFeedbackHandler(d.Feedback))
		r.Get("/tickets", NewOpenTicketsHandler(d.Feedback))
		r.Post("/respond/{ticketNumber}", NewRespondTicketHandler(d.Feedback))
		r.Get("/feedbacks", NewListFeedbackHandler(d.Feedback))
		r.Delete("/feedbacks/{id}", NewDeleteFeedbackHandler(d.Feedback))
		r.Put("/feedbacks/{id}/respond", NewFeedbackRespondHandler(d.Feedback))
		r.Put("/feedbacks/{id}/response", NewFeedbackResponseHandler(d.Feedback))
		r.Get("/feedback-status/{userId}", NewFeedbackStatusHandler(d.Feedback))

		r.Get("/success-stories", NewListStoriesHandler(d.Stories))
		r.Post("/success-stories", NewCreateStoryHandler(d.Stories))
		r.Delete("/success-stories/{id}", NewDeleteStoryHandler(d.Stories))

		r.Post("/diary", NewCreateDiaryHandler(d.Diary))
		r.Get("/diary", NewListDiaryHandler(d.Diary))
		r.Delete("/diary/{id}", NewDeleteDiaryHandler(d.Diary))

		r.Post("/add-caretaker", NewAddCaretakerHandler(d.Caretakers))
		r.Delete("/delete-caretaker/{id}", NewDeleteCaretakerHandler(d.Caretakers))
		r.Get("/get-caretakers", NewListCaretakersHandler(d.Caretakers))
		r.Post("/verify-caretaker", NewVerifyCaretakerHandler(d.Caretakers))
		r.Get("/get-user-by-caretaker", NewLinkedUserHandler(d.Caretakers))

		r.Post("/depression-result", NewSaveDepressionHandler(d.Assessments))
		r.Get("/get-latest-result", NewLatestDepressionHandler(d.Assessments))
		r.Post("/anxiety-result", NewSaveAnxietyHandler(d.Assessments))
		r.Get("/get-latest-anxiety-result", NewLatestAnxietyHandler(d.Assessments))
		r.Post("/stress-result", NewSaveStressHandler(d.Assessments))
		r.Get("/stress-result/latest/{userId}", NewLatestStressHandler(d.Assessments))
		r.Get("/mental-health-summary/{userId}", NewMentalHealthSummaryHandler(d.Assessments))
		r.Get("/mental-health-history/{userId}", NewMentalHealthHistoryHandler(d.Assessments))

		r.Post("/save-chat", NewSaveChatHandler(d.Chats))
		r.Get("/get-chats", NewRecentChatsHandler(d.Chats))
		r.Delete("/delete-chats", NewDeleteChatsHandler(d.Chats))
		r.Get("/get-all-chats", NewAllChatsHandler(d.Chats))
		r.Get("/get-user-chats/{userId}", NewUserChatsHandler(d.Chats))
	})

	r.Route("/admin", func(r chi.Router) {
		if d.AdminUser != "" {
			r.Use(chimiddleware.BasicAuth("vibecare admin", map[string]string{d.AdminUser: d.AdminPassword}))
		}

		r.Get("/", NewAdminOverviewHandler(d.Analytics, d.Renderer))
		r.Get("/analytics", NewAdminAnalyticsHandler(d.Analytics))

		r.Get("/users", NewAdminUsersPageHandler(d.Users, d.Renderer))
		r.Get("/users/data", NewAdminUsersDataHandler(d.Users, d.Renderer))
		r.Get("/users/{id}", NewAdminUserDetailHandler(d.Users, d.Renderer))
		r.Get("/users/{id}/expressions/data", NewAdminExpressionsDataHandler(d.Expressions, d.Renderer))
		r.With(tx).Post("/users/{id}/edit", NewAdminEditUserHandler(d.Users, d.Renderer))

		r.Get("/login-history", NewAdminLoginsPageHandler(d.Users, d.Renderer))
		r.Get("/login-history/data", NewAdminLoginsDataHandler(d.Users, d.Renderer))

		r.Get("/feedback", NewAdminFeedbackPageHandler(d.Feedback, d.Renderer))
		r.Get("/feedback/data", NewAdminFeedbackDataHandler(d.Feedback, d.Renderer))
		r.Get("/feedback/{id}/view", NewAdminFeedbackViewHandler(d.Feedback, d.Renderer))
		r.Post("/feedback/{id}/respond", NewAdminFeedbackRespondHandler(d.Feedback, d.Renderer))
		r.Delete("/feedback/{id}", NewAdminFeedbackDeleteHandler(d.Feedback))

		r.Get("/stories", NewAdminStoriesPageHandler(d.Stories, d.Renderer))
		r.Get("/stories/data", NewAdminStoriesDataHandler(d.Stories, d.Renderer))
		r.Get("/stories/{id}/view", NewAdminStoryViewHandler(d.Stories, d.Renderer))
		r.Post("/stories/{id}/status", NewAdminStoryStatusHandler(d.Stories, d.Renderer))
		r.Delete("/stories/{id}", NewAdminStoryDeleteHandler(d.Stories))
	})

	swaggerURL := d.SwaggerURL
	if swaggerURL == "" {
		swaggerURL = "/swagger/doc.json"
	}
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(swaggerURL)))

	return r
}
