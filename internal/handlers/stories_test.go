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

func TestStoryHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockStoryBoard(ctrl)

	t.Run("published", func(t *testing.T) {
		mockSvc.EXPECT().Published(gomock.Any()).Return([]models.SuccessStory{{ID: "s1", Status: models.StoryStatusPublish}}, nil)

		w := serve(NewListStoriesHandler(mockSvc), newJSONRequest(http.MethodGet, "/success-stories", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Len(t, decodeResponse[[]models.SuccessStory](t, w), 1)
	})

	t.Run("create pending", func(t *testing.T) {
		mockSvc.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, s *models.SuccessStory) error {
			s.ID, s.Status = "s2", models.StoryStatusPending
			return nil
		})

		body := CreateStoryRequest{UserID: testUserID, Title: "T", Subtitle: "S", Story: "body"}
		w := serve(NewCreateStoryHandler(mockSvc), newJSONRequest(http.MethodPost, "/success-stories", body))

		assert.Equal(t, http.StatusCreated, w.Code)
		resp := decodeResponse[CreateStoryResponse](t, w)
		assert.Equal(t, "Story added successfully", resp.Message)
		assert.Equal(t, models.StoryStatusPending, resp.Story.Status)
	})

	t.Run("create incomplete", func(t *testing.T) {
		mockSvc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(services.ErrMissingFields)

		w := serve(NewCreateStoryHandler(mockSvc), newJSONRequest(http.MethodPost, "/success-stories", CreateStoryRequest{UserID: testUserID}))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "All fields are required", decodeResponse[ErrorResponse](t, w).Message)
	})

	t.Run("delete", func(t *testing.T) {
		mockSvc.EXPECT().Delete(gomock.Any(), "s1").Return(nil)

		req := withURLParam(newJSONRequest(http.MethodDelete, "/success-stories/s1", nil), "id", "s1")
		w := serve(NewDeleteStoryHandler(mockSvc), req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Story deleted successfully", decodeResponse[MessageResponse](t, w).Message)
	})
}
