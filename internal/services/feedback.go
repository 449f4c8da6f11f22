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

//go:generate mockgen -source=feedback.go -destination=mock_feedback.go -package=services

// FeedbackStore defines the ticket operations.
type FeedbackStore interface {
	Create(ctx context.Context, f *models.Feedback) error
	GetByID(ctx context.Context, id string) (*models.FeedbackView, error)
	GetByTicket(ctx context.Context, ticketNumber string) (*models.FeedbackView, error)
	LatestByUser(ctx context.Context, userID string) (*models.Feedback, error)
	ListOpen(ctx context.Context) ([]models.Feedback, error)
	ListAll(ctx context.Context) ([]models.Feedback, error)
	List(ctx context.Context, p pagination.Params) (pagination.Page[models.FeedbackView], error)
	RespondByID(ctx context.Context, id, response string) (*models.Feedback, error)
	RespondByTicket(ctx context.Context, ticketNumber, response string) (*models.Feedback, error)
	Delete(ctx context.Context, id string) error
}

// FeedbackService handles feedback tickets and their one-time admin response.
type FeedbackService struct {
	store  FeedbackStore
	mailer Mailer
	events EventPublisher
}

// NewFeedbackService creates a new FeedbackService instance.
func NewFeedbackService(store FeedbackStore, mailer Mailer, events EventPublisher) *FeedbackService {
	return &FeedbackService{store: store, mailer: mailer, events: events}
}

// Submit stores a new open ticket. Ticket numbers are unique.
func (svc *FeedbackService) Submit(ctx context.Context, f *models.Feedback) error {
	f.TicketNumber = strings.TrimSpace(f.TicketNumber)
	if f.UserID == "" || f.TicketNumber == "" {
		return ErrMissingFields
	}
	if err := validateID(f.UserID); err != nil {
		return err
	}

	if err := svc.store.Create(ctx, f); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return ErrTicketExists
		}
		logger.FromContext(ctx).Errorw("failed to save feedback", "ticket", f.TicketNumber, "err", err)
		return err
	}
	return nil
}

// Open returns tickets still waiting for a response.
func (svc *FeedbackService) Open(ctx context.Context) ([]models.Feedback, error) {
	return svc.store.ListOpen(ctx)
}

// All returns every ticket, newest first.
func (svc *FeedbackService) All(ctx context.Context) ([]models.Feedback, error) {
	return svc.store.ListAll(ctx)
}

// List returns one page of tickets, unresponded first.
func (svc *FeedbackService) List(ctx context.Context, p pagination.Params) (pagination.Page[models.FeedbackView], error) {
	return svc.store.List(ctx, p)
}

// Get returns a ticket with its author.
func (svc *FeedbackService) Get(ctx context.Context, id string) (*models.FeedbackView, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}

	fb, err := svc.store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrFeedbackNotFound
		}
		return nil, err
	}
	return fb, nil
}

// Latest returns the newest ticket of a user.
func (svc *FeedbackService) Latest(ctx context.Context, userID string) (*models.Feedback, error) {
	if err := validateID(userID); err != nil {
		return nil, err
	}

	fb, err := svc.store.LatestByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrNoFeedback
		}
		return nil, err
	}
	return fb, nil
}

// RespondByTicket closes a ticket with a required response.
func (svc *FeedbackService) RespondByTicket(ctx context.Context, ticketNumber, response string) (*models.Feedback, error) {
	response = strings.TrimSpace(response)
	if response == "" {
		return nil, ErrResponseRequired
	}

	fb, err := svc.store.RespondByTicket(ctx, ticketNumber, response)
	if err != nil {
		return nil, svc.respondError(ctx, err, func() (*models.FeedbackView, error) {
			return svc.store.GetByTicket(ctx, ticketNumber)
		})
	}

	svc.notify(ctx, fb)
	return fb, nil
}

// RespondByID closes a ticket. The response text may be empty.
func (svc *FeedbackService) RespondByID(ctx context.Context, id, response string) (*models.Feedback, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}

	fb, err := svc.store.RespondByID(ctx, id, strings.TrimSpace(response))
	if err != nil {
		return nil, svc.respondError(ctx, err, func() (*models.FeedbackView, error) {
			return svc.store.GetByID(ctx, id)
		})
	}

	svc.notify(ctx, fb)
	return fb, nil
}

// respondError tells a missing ticket apart from one that was already answered.
func (svc *FeedbackService) respondError(ctx context.Context, err error, lookup func() (*models.FeedbackView, error)) error {
	if !errors.Is(err, repositories.ErrNotFound) {
		logger.FromContext(ctx).Errorw("failed to respond to feedback", "err", err)
		return err
	}

	_, lookupErr := lookup()
	switch {
	case errors.Is(lookupErr, repositories.ErrNotFound):
		return ErrFeedbackNotFound
	case lookupErr != nil:
		return lookupErr
	default:
		return ErrAlreadyResponded
	}
}

// notify sends the response e-mail and event. Failures are only logged.
func (svc *FeedbackService) notify(ctx context.Context, fb *models.Feedback) {
	log := logger.FromContext(ctx)

	svc.events.Publish(ctx, models.Event{
		Type:    models.EventFeedbackResponded,
		UserID:  fb.UserID,
		Payload: map[string]any{"ticket_number": fb.TicketNumber},
	})

	view, err := svc.store.GetByID(ctx, fb.ID)
	if err != nil || view.UserEmail == "" {
		log.Warnw("feedback author has no e-mail", "feedback_id", fb.ID, "err", err)
		return
	}

	subject := fmt.Sprintf("Response to your feedback (Ticket %s)", fb.TicketNumber)
	body := fmt.Sprintf("Hello %s,\n\nThank you for your feedback. Our team has responded to ticket %s:\n\n%s\n\nVibeCare Team",
		view.UserName, fb.TicketNumber, fb.AdminResponse)
	if err := svc.mailer.Send(ctx, view.UserEmail, subject, body); err != nil {
		log.Errorw("failed to send feedback response e-mail", "feedback_id", fb.ID, "err", err)
	}
}

// Delete removes a ticket.
func (svc *FeedbackService) Delete(ctx context.Context, id string) error {
	if err := validateID(id); err != nil {
		return err
	}

	if err := svc.store.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrFeedbackNotFound
		}
		return err
	}
	return nil
}
