package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/vibecare/internal/models"
	"github.com/sbilibin2017/vibecare/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestSubmitFeedbackHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockFeedbackDesk(ctrl)
	rating := 4

	tests := []struct {
		name         string
		inputBody    any
		mockSetup    func()
		expectedCode int
		expectedBody string
	}{
		{
			name:      "created",
			inputBody: SubmitFeedbackRequest{UserID: testUserID, Rating: &rating, Feedback: "nice", TicketNumber: "T-1"},
			mockSetup: func() {
				mockSvc.EXPECT().Submit(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, f *models.Feedback) error {
					assert.Equal(t, 4, *f.Rating)
					assert.Equal(t, "nice", f.Feedback)
					return nil
				})
			},
			expectedCode: http.StatusCreated,
			expectedBody: `{"message":"Feedback submitted successfully","ticketNumber":"T-1"}`,
		},
		{
			name:         "missing ticket",
			inputBody:    SubmitFeedbackRequest{UserID: testUserID},
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"status":"error","message":"User ID and Ticket Number are required"}`,
		},
		{
			name:      "duplicate ticket",
			inputBody: SubmitFeedbackRequest{UserID: testUserID, TicketNumber: "T-1"},
			mockSetup: func() {
				mockSvc.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(services.ErrTicketExists)
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"status":"error","message":"Ticket number already exists"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			w := serve(NewSubmitFeedbackHandler(mockSvc), newJSONRequest(http.MethodPost, "/submit-feedback", tt.inputBody))

			assert.Equal(t, tt.expectedCode, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}

func TestFeedbackListHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockFeedbackDesk(ctrl)

	t.Run("open tickets empty", func(t *testing.T) {
		mockSvc.EXPECT().Open(gomock.Any()).Return(nil, nil)

		w := serve(NewOpenTicketsHandler(mockSvc), newJSONRequest(http.MethodGet, "/tickets", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
	})

	t.Run("all", func(t *testing.T) {
		mockSvc.EXPECT().All(gomock.Any()).Return([]models.Feedback{{ID: "f1"}, {ID: "f2"}}, nil)

		w := serve(NewListFeedbackHandler(mockSvc), newJSONRequest(http.MethodGet, "/feedbacks", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Len(t, decodeResponse[[]models.Feedback](t, w), 2)
	})

	t.Run("status without feedback", func(t *testing.T) {
		mockSvc.EXPECT().Latest(gomock.Any(), testUserID).Return(nil, services.ErrNoFeedback)

		req := withURLParam(newJSONRequest(http.MethodGet, "/feedback-status/"+testUserID, nil), "userId", testUserID)
		w := serve(NewFeedbackStatusHandler(mockSvc), req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "No feedback found for this user", decodeResponse[ErrorResponse](t, w).Message)
	})
}

func TestRespondHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockFeedbackDesk(ctrl)
	closed := &models.Feedback{ID: "f1", TicketNumber: "T-1", Status: models.FeedbackStatusClosed, Responded: true}

	t.Run("by ticket", func(t *testing.T) {
		mockSvc.EXPECT().RespondByTicket(gomock.Any(), "T-1", "thanks").Return(closed, nil)

		req := withURLParam(newJSONRequest(http.MethodPost, "/respond/T-1", TicketResponseRequest{AdminResponse: "thanks"}), "ticketNumber", "T-1")
		w := serve(NewRespondTicketHandler(mockSvc), req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Response saved successfully", decodeResponse[TicketResponse](t, w).Message)
	})

	t.Run("by ticket without text", func(t *testing.T) {
		mockSvc.EXPECT().RespondByTicket(gomock.Any(), "T-1", "").Return(nil, services.ErrResponseRequired)

		req := withURLParam(newJSONRequest(http.MethodPost, "/respond/T-1", TicketResponseRequest{}), "ticketNumber", "T-1")
		w := serve(NewRespondTicketHandler(mockSvc), req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("by id with empty body", func(t *testing.T) {
		mockSvc.EXPECT().RespondByID(gomock.Any(), "f1", "").Return(closed, nil)

		req := withURLParam(newJSONRequest(http.MethodPut, "/feedbacks/f1/respond", nil), "id", "f1")
		w := serve(NewFeedbackRespondHandler(mockSvc), req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, decodeResponse[models.Feedback](t, w).Responded)
	})

	t.Run("by id already responded", func(t *testing.T) {
		mockSvc.EXPECT().RespondByID(gomock.Any(), "f1", "again").Return(nil, services.ErrAlreadyResponded)

		req := withURLParam(newJSONRequest(http.MethodPut, "/feedbacks/f1/response", FeedbackResponseRequest{Response: "again"}), "id", "f1")
		w := serve(NewFeedbackResponseHandler(mockSvc), req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Feedback already responded", decodeResponse[ErrorResponse](t, w).Message)
	})

	t.Run("delete missing", func(t *testing.T) {
		mockSvc.EXPECT().Delete(gomock.Any(), "f9").Return(services.ErrFeedbackNotFound)

		req := withURLParam(newJSONRequest(http.MethodDelete, "/feedbacks/f9", nil), "id", "f9")
		w := serve(NewDeleteFeedbackHandler(mockSvc), req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
