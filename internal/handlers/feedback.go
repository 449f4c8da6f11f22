package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/vibecare/internal/models"
)

//go:generate mockgen -source=feedback.go -destination=mock_feedback.go -package=handlers

// FeedbackDesk defines the ticket operations of the public feedback routes.
type FeedbackDesk interface {
	Submit(ctx context.Context, f *models.Feedback) error
	Open(ctx context.Context) ([]models.Feedback, error)
	All(ctx context.Context) ([]models.Feedback, error)
	Latest(ctx context.Context, userID string) (*models.Feedback, error)
	RespondByTicket(ctx context.Context, ticketNumber, response string) (*models.Feedback, error)
	RespondByID(ctx context.Context, id, response string) (*models.Feedback, error)
	Delete(ctx context.Context, id string) error
}

// SubmitFeedbackRequest opens a ticket
// swagger:model SubmitFeedbackRequest
type SubmitFeedbackRequest struct {
	// required: true
	UserID              string `json:"userId"`
	Rating              *int   `json:"rating"`
	SelectedImprovement string `json:"selectedImprovement"`
	Feedback            string `json:"feedback"`
	// required: true
	TicketNumber string `json:"ticketNumber"`
}

// SubmitFeedbackResponse confirms a new ticket
// swagger:model SubmitFeedbackResponse
type SubmitFeedbackResponse struct {
	Message      string `json:"message"`
	TicketNumber string `json:"ticketNumber"`
}

// TicketResponseRequest answers a ticket by number
// swagger:model TicketResponseRequest
type TicketResponseRequest struct {
	// required: true
	AdminResponse string `json:"adminResponse"`
}

// TicketResponse returns a closed ticket
// swagger:model TicketResponse
type TicketResponse struct {
	Message string           `json:"message"`
	Ticket  *models.Feedback `json:"ticket"`
}

// FeedbackResponseRequest answers a ticket by id
// swagger:model FeedbackResponseRequest
type FeedbackResponseRequest struct {
	Response string `json:"response"`
}

// FeedbackResult wraps one ticket
// swagger:model FeedbackResult
type FeedbackResult struct {
	Status   string           `json:"status"`
	Message  string           `json:"message,omitempty"`
	Feedback *models.Feedback `json:"feedback"`
}

// NewSubmitFeedbackHandler opens a feedback ticket.
// @Summary Submit feedback
// @Tags feedback
// @Accept json
// @Produce json
// @Param request body handlers.SubmitFeedbackRequest true "Feedback"
// @Success 201 {object} handlers.SubmitFeedbackResponse
// @Failure 400 {object} handlers.ErrorResponse "User ID and Ticket Number are required"
// @Router /submit-feedback [post]
func NewSubmitFeedbackHandler(svc FeedbackDesk) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SubmitFeedbackRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if req.UserID == "" || req.TicketNumber == "" {
			writeError(w, http.StatusBadRequest, "User ID and Ticket Number are required")
			return
		}

		f := &models.Feedback{
			UserID:              req.UserID,
			Rating:              req.Rating,
			SelectedImprovement: req.SelectedImprovement,
			Feedback:            req.Feedback,
			TicketNumber:        req.TicketNumber,
		}
		if err := svc.Submit(r.Context(), f); err != nil {
			writeServiceError(w, r, err, "")
			return
		}

		writeJSON(w, http.StatusCreated, SubmitFeedbackResponse{
			Message:      "Feedback submitted successfully",
			TicketNumber: f.TicketNumber,
		})
	}
}

// NewOpenTicketsHandler lists tickets waiting for a response.
// @Summary Open tickets
// @Tags feedback
// @Produce json
// @Success 200 {array} models.Feedback
// @Router /tickets [get]
func NewOpenTicketsHandler(svc FeedbackDesk) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tickets, err := svc.Open(r.Context())
		if err != nil {
			writeServiceError(w, r, err, "")
			return
		}
		writeJSON(w, http.StatusOK, nonNil(tickets))
	}
}

// NewRespondTicketHandler closes a ticket by its number.
// @Summary Respond to ticket
// @Tags feedback
// @Accept json
// @Produce json
// @Param ticketNumber path string true "Ticket number"
// @Param request body handlers.TicketResponseRequest true "Response"
// @Success 200 {object} handlers.TicketResponse
// @Failure 400 {object} handlers.ErrorResponse "Response is required"
// @Failure 404 {object} handlers.ErrorResponse "Ticket not found"
// @Router /respond/{ticketNumber} [post]
func NewRespondTicketHandler(svc FeedbackDesk) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req TicketResponseRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		ticket, err := svc.RespondByTicket(r.Context(), chi.URLParam(r, "ticketNumber"), req.AdminResponse)
		if err != nil {
			writeServiceError(w, r, err, "")
			return
		}

		writeJSON(w, http.StatusOK, TicketResponse{Message: "Response saved successfully", Ticket: ticket})
	}
}

// NewListFeedbackHandler lists every ticket, newest first.
// @Summary All feedback
// @Tags feedback
// @Produce json
// @Success 200 {array} models.Feedback
// @Router /feedbacks [get]
func NewListFeedbackHandler(svc FeedbackDesk) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		all, err := svc.All(r.Context())
		if err != nil {
			writeServiceError(w, r, err, "")
			return
		}
		writeJSON(w, http.StatusOK, nonNil(all))
	}
}

// NewDeleteFeedbackHandler deletes a ticket.
// @Summary Delete feedback
// @Tags feedback
// @Produce json
// @Param id path string true "Feedback ID"
// @Success 200 {object} handlers.MessageResponse
// @Failure 404 {object} handlers.ErrorResponse "Ticket not found"
// @Router /feedbacks/{id} [delete]
func NewDeleteFeedbackHandler(svc FeedbackDesk) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
			writeServiceError(w, r, err, "")
			return
		}
		writeJSON(w, http.StatusOK, MessageResponse{Status: StatusSuccess, Message: "Feedback deleted successfully"})
	}
}

// NewFeedbackResponseHandler closes a ticket by id and wraps the result.
// @Summary Submit feedback response
// @Tags feedback
// @Accept json
// @Produce json
// @Param id path string true "Feedback ID"
// @Param request body handlers.FeedbackResponseRequest false "Response"
// @Success 200 {object} handlers.FeedbackResult
// @Failure 400 {object} handlers.ErrorResponse "Feedback already responded"
// @Failure 404 {object} handlers.ErrorResponse "Ticket not found"
// @Router /feedbacks/{id}/response [put]
func NewFeedbackResponseHandler(svc FeedbackDesk) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fb, ok := respondByID(svc, w, r)
		if !ok {
			return
		}
		writeJSON(w, http.StatusOK, FeedbackResult{Status: StatusSuccess, Message: "Response submitted successfully", Feedback: fb})
	}
}

// NewFeedbackRespondHandler closes a ticket by id and returns it.
// @Summary Mark feedback responded
// @Tags feedback
// @Accept json
// @Produce json
// @Param id path string true "Feedback ID"
// @Param request body handlers.FeedbackResponseRequest false "Response"
// @Success 200 {object} models.Feedback
// @Failure 400 {object} handlers.ErrorResponse "Feedback already responded"
// @Failure 404 {object} handlers.ErrorResponse "Ticket not found"
// @Router /feedbacks/{id}/respond [put]
func NewFeedbackRespondHandler(svc FeedbackDesk) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fb, ok := respondByID(svc, w, r)
		if !ok {
			return
		}
		writeJSON(w, http.StatusOK, fb)
	}
}

// respondByID reads an optional response body. An empty body is allowed.
func respondByID(svc FeedbackDesk, w http.ResponseWriter, r *http.Request) (*models.Feedback, bool) {
	var req FeedbackResponseRequest
	if err := decodeJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return nil, false
	}

	fb, err := svc.RespondByID(r.Context(), chi.URLParam(r, "id"), req.Response)
	if err != nil {
		writeServiceError(w, r, err, "")
		return nil, false
	}
	return fb, true
}

// NewFeedbackStatusHandler returns the newest ticket of a user.
// @Summary Feedback status
// @Tags feedback
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {object} handlers.FeedbackResult
// @Failure 404 {object} handlers.ErrorResponse "No feedback found for this user"
// @Router /feedback-status/{userId} [get]
func NewFeedbackStatusHandler(svc FeedbackDesk) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fb, err := svc.Latest(r.Context(), chi.URLParam(r, "userId"))
		if err != nil {
			writeServiceError(w, r, err, "")
			return
		}
		writeJSON(w, http.StatusOK, FeedbackResult{Status: StatusSuccess, Feedback: fb})
	}
}
