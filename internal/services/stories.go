package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sbilibin2017/vibecare/internal/logger"
	"github.com/sbilibin2017/vibecare/internal/models"
	"github.com/sbilibin2017/vibecare/internal/pagination"
	"github.com/sbilibin2017/vibecare/internal/repositories"
)

//go:generate mockgen -source=stories.go -destination=mock_stories.go -package=services

// StoryStore defines the success story operations.
type StoryStore interface {
	Create(ctx context.Context, s *models.SuccessStory) error
	GetByID(ctx context.Context, id string) (*models.StoryView, error)
	ListByStatus(ctx context.Context, status string) ([]models.SuccessStory, error)
	List(ctx context.Context, p pagination.Params) (pagination.Page[models.StoryView], error)
	SetStatus(ctx context.Context, id, status string) (*models.SuccessStory, error)
	Delete(ctx context.Context, id string) error
}

// StoryService handles success story submission and moderation.
type StoryService struct {
	store  StoryStore
	mailer Mailer
	events EventPublisher
}

// NewStoryService creates a new StoryService instance.
func NewStoryService(store StoryStore, mailer Mailer, events EventPublisher) *StoryService {
	return &StoryService{store: store, mailer: mailer, events: events}
}

// Create stores a pending story. Every field is required.
func (svc *StoryService) Create(ctx context.Context, s *models.SuccessStory) error {
	s.Title, s.Subtitle, s.Story = strings.TrimSpace(s.Title), strings.TrimSpace(s.Subtitle), strings.TrimSpace(s.Story)
	if s.UserID == "" || s.Title == "" || s.Subtitle == "" || s.Story == "" {
		return ErrMissingFields
	}
	if err := validateID(s.UserID); err != nil {
		return err
	}

	if err := svc.store.Create(ctx, s); err != nil {
		logger.FromContext(ctx).Errorw("failed to save story", "user_id", s.UserID, "err", err)
		return err
	}
	return nil
}

// Published returns the stories visible to app users.
func (svc *StoryService) Published(ctx context.Context) ([]models.SuccessStory, error) {
	return svc.store.ListByStatus(ctx, models.StoryStatusPublish)
}

// List returns one page of stories, newest first.
func (svc *StoryService) List(ctx context.Context, p pagination.Params) (pagination.Page[models.StoryView], error) {
	return svc.store.List(ctx, p)
}

// Get returns a story with its author.
func (svc *StoryService) Get(ctx context.Context, id string) (*models.StoryView, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}

	story, err := svc.store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrStoryNotFound
		}
		return nil, err
	}
	return story, nil
}

// SetStatus moderates a story. Publishing or rejecting e-mails the author once.
func (svc *StoryService) SetStatus(ctx context.Context, id, status string) (*models.SuccessStory, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}
	if !models.ValidStoryStatus(status) {
		return nil, ErrInvalidStatus
	}

	story, err := svc.store.SetStatus(ctx, id, status)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrStoryNotFound
		}
		logger.FromContext(ctx).Errorw("failed to update story status", "story_id", id, "err", err)
		return nil, err
	}

	svc.events.Publish(ctx, models.Event{
		Type:    models.EventStoryStatusChanged,
		UserID:  story.UserID,
		Payload: map[string]any{"story_id": story.ID, "status": status},
	})

	if status != models.StoryStatusPending {
		svc.notify(ctx, story)
	}
	return story, nil
}

func (svc *StoryService) notify(ctx context.Context, story *models.SuccessStory) {
	log := logger.FromContext(ctx)

	view, err := svc.store.GetByID(ctx, story.ID)
	if err != nil || view.AuthorEmail == "" {
		log.Warnw("story author has no e-mail", "story_id", story.ID, "err", err)
		return
	}

	var subject, body string
	if story.Status == models.StoryStatusPublish {
		subject = "Your success story has been published"
		body = fmt.Sprintf("Hello %s,\n\nYour story \"%s\" is now live in VibeCare. Thank you for sharing it.\n\nVibeCare Team",
			view.AuthorName, story.Title)
	} else {
		subject = "Update on your success story"
		body = fmt.Sprintf("Hello %s,\n\nYour story \"%s\" was not approved for publishing.\n\nVibeCare Team",
			view.AuthorName, story.Title)
	}

	if err := svc.mailer.Send(ctx, view.AuthorEmail, subject, body); err != nil {
		log.Errorw("failed to send story status e-mail", "story_id", story.ID, "err", err)
	}
}

// Delete removes a story.
func (svc *StoryService) Delete(ctx context.Context, id string) error {
	if err := validateID(id); err != nil {
		return err
	}

	if err := svc.store.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrStoryNotFound
		}
		return err
	}
	return nil
}
