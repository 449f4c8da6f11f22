package repositories

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/vibecare/internal/models"
	"github.com/sbilibin2017/vibecare/internal/pagination"
)

const storyColumns = "id, user_id, title, subtitle, story, status, created_at, updated_at"

const storyViewColumns = "s.id, s.user_id, s.title, s.subtitle, s.story, s.status, s.created_at, s.updated_at, " +
	"COALESCE(u.email, '') AS author_email, COALESCE(u.name, '') AS author_name"

// StoryRepository stores success stories.
type StoryRepository struct {
	db *sqlx.DB
}

func NewStoryRepository(db *sqlx.DB) *StoryRepository {
	return &StoryRepository{db: db}
}

func (r *StoryRepository) Create(ctx context.Context, s *models.SuccessStory) error {
	if s.Status == "" {
		s.Status = models.StoryStatusPending
	}
	b := psql.Insert("success_stories").
		Columns("id", "user_id", "title", "subtitle", "story", "status").
		Values(uuid.NewString(), s.UserID, s.Title, s.Subtitle, s.Story, s.Status).
		Suffix("RETURNING " + storyColumns)

	created, err := getOne[models.SuccessStory](ctx, r.db, b)
	if err != nil {
		return err
	}
	*s = *created
	return nil
}

func (r *StoryRepository) viewSelect() sq.SelectBuilder {
	return psql.Select(storyViewColumns).
		From("success_stories s").
		LeftJoin("users u ON u.id = s.user_id")
}

func (r *StoryRepository) GetByID(ctx context.Context, id string) (*models.StoryView, error) {
	return getOne[models.StoryView](ctx, r.db, r.viewSelect().Where(sq.Eq{"s.id": id}))
}

// ListByStatus returns stories with the given status, newest first.
func (r *StoryRepository) ListByStatus(ctx context.Context, status string) ([]models.SuccessStory, error) {
	b := psql.Select(storyColumns).
		From("success_stories").
		Where(sq.Eq{"status": status}).
		OrderBy("created_at DESC", "id DESC")
	return selectAll[models.SuccessStory](ctx, r.db, b)
}

// List returns one page of stories of any status, newest first.
func (r *StoryRepository) List(ctx context.Context, p pagination.Params) (pagination.Page[models.StoryView], error) {
	b := r.viewSelect().OrderBy("s.created_at DESC", "s.id DESC")
	page, err := pagination.Fetch[models.StoryView](ctx, r.db, b, p)
	return page, mapError(err)
}

func (r *StoryRepository) SetStatus(ctx context.Context, id, status string) (*models.SuccessStory, error) {
	b := psql.Update("success_stories").
		Set("status", status).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + storyColumns)
	return getOne[models.SuccessStory](ctx, r.db, b)
}

func (r *StoryRepository) Delete(ctx context.Context, id string) error {
	return execOne(ctx, r.db, psql.Delete("success_stories").Where(sq.Eq{"id": id}))
}
