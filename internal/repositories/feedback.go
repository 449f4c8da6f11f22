package repositories

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/vibecare/internal/models"
	"github.com/sbilibin2017/vibecare/internal/pagination"
)

const feedbackColumns = "id, user_id, rating, selected_improvement, feedback, ticket_number, admin_response, status, responded, created_at, updated_at"

// feedbackViewColumns projects a ticket with its author.
const feedbackViewColumns = "f.id, f.user_id, f.rating, f.selected_improvement, f.feedback, f.ticket_number, " +
	"f.admin_response, f.status, f.responded, f.created_at, f.updated_at, " +
	"COALESCE(u.email, '') AS user_email, COALESCE(u.name, '') AS user_name"

// FeedbackRepository stores feedback tickets.
type FeedbackRepository struct {
	db *sqlx.DB
}

func NewFeedbackRepository(db *sqlx.DB) *FeedbackRepository {
	return &FeedbackRepository{db: db}
}

func (r *FeedbackRepository) Create(ctx context.Context, f *models.Feedback) error {
	b := psql.Insert("feedback").
		Columns("id", "user_id", "rating", "selected_improvement", "feedback", "ticket_number", "status").
		Values(uuid.NewString(), f.UserID, f.Rating, f.SelectedImprovement, f.Feedback, f.TicketNumber, models.FeedbackStatusOpen).
		Suffix("RETURNING " + feedbackColumns)

	created, err := getOne[models.Feedback](ctx, r.db, b)
	if err != nil {
		return err
	}
	*f = *created
	return nil
}

func (r *FeedbackRepository) viewSelect() sq.SelectBuilder {
	return psql.Select(feedbackViewColumns).
		From("feedback f").
		LeftJoin("users u ON u.id = f.user_id")
}

func (r *FeedbackRepository) GetByID(ctx context.Context, id string) (*models.FeedbackView, error) {
	return getOne[models.FeedbackView](ctx, r.db, r.viewSelect().Where(sq.Eq{"f.id": id}))
}

func (r *FeedbackRepository) GetByTicket(ctx context.Context, ticketNumber string) (*models.FeedbackView, error) {
	return getOne[models.FeedbackView](ctx, r.db, r.viewSelect().Where(sq.Eq{"f.ticket_number": ticketNumber}))
}

// LatestByUser returns the newest ticket of the user.
func (r *FeedbackRepository) LatestByUser(ctx context.Context, userID string) (*models.Feedback, error) {
	b := psql.Select(feedbackColumns).
		From("feedback").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "id DESC").
		Limit(1)
	return getOne[models.Feedback](ctx, r.db, b)
}

// ListOpen returns unanswered tickets, newest first.
func (r *FeedbackRepository) ListOpen(ctx context.Context) ([]models.Feedback, error) {
	b := psql.Select(feedbackColumns).
		From("feedback").
		Where(sq.Eq{"status": models.FeedbackStatusOpen}).
		OrderBy("created_at DESC", "id DESC")
	return selectAll[models.Feedback](ctx, r.db, b)
}

// ListAll returns every ticket, newest first.
func (r *FeedbackRepository) ListAll(ctx context.Context) ([]models.Feedback, error) {
	b := psql.Select(feedbackColumns).From("feedback").OrderBy("created_at DESC", "id DESC")
	return selectAll[models.Feedback](ctx, r.db, b)
}

// List returns one page of tickets, unresponded first.
func (r *FeedbackRepository) List(ctx context.Context, p pagination.Params) (pagination.Page[models.FeedbackView], error) {
	b := r.viewSelect().OrderBy("f.responded ASC", "f.created_at DESC", "f.id DESC")
	page, err := pagination.Fetch[models.FeedbackView](ctx, r.db, b, p)
	return page, mapError(err)
}

// RespondByID closes a ticket that has not been answered yet. It returns
// ErrNotFound when no open unanswered ticket has that id.
func (r *FeedbackRepository) RespondByID(ctx context.Context, id, response string) (*models.Feedback, error) {
	return r.respond(ctx, sq.Eq{"id": id}, response)
}

// RespondByTicket is RespondByID keyed by ticket number.
func (r *FeedbackRepository) RespondByTicket(ctx context.Context, ticketNumber, response string) (*models.Feedback, error) {
	return r.respond(ctx, sq.Eq{"ticket_number": ticketNumber}, response)
}

func (r *FeedbackRepository) respond(ctx context.Context, where sq.Eq, response string) (*models.Feedback, error) {
	b := psql.Update("feedback").
		Set("admin_response", response).
		Set("status", models.FeedbackStatusClosed).
		Set("responded", true).
		Set("updated_at", sq.Expr("NOW()")).
		Where(where).
		Where(sq.Eq{"responded": false}).
		Suffix("RETURNING " + feedbackColumns)
	return getOne[models.Feedback](ctx, r.db, b)
}

func (r *FeedbackRepository) Delete(ctx context.Context, id string) error {
	return execOne(ctx, r.db, psql.Delete("feedback").Where(sq.Eq{"id": id}))
}
