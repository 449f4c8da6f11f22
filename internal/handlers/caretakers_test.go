package handlers

import (
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/vibecare/internal/models"
	"github.com/sbilibin2017/vibecare/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestCaretakerHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockCaretakerRegistry(ctrl)

	t.Run("add", func(t *testing.T) {
		mockSvc.EXPECT().Add(gomock.Any(), testUserID, "Mom", "4321").Return(&models.Caretaker{ID: "c1"}, nil)

		body := AddCaretakerRequest{UserID: testUserID, CaretakerName: "Mom", CaretakerOTP: "4321"}
		w := serve(NewAddCaretakerHandler(mockSvc), newJSONRequest(http.MethodPost, "/add-caretaker", body))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Caretaker added successfully", decodeResponse[MessageResponse](t, w).Message)
	})

	t.Run("add duplicate name", func(t *testing.T) {
		mockSvc.EXPECT().Add(gomock.Any(), testUserID, "Mom", "4321").Return(nil, services.ErrCaretakerExists)

		body := AddCaretakerRequest{UserID: testUserID, CaretakerName: "Mom", CaretakerOTP: "4321"}
		w := serve(NewAddCaretakerHandler(mockSvc), newJSONRequest(http.MethodPost, "/add-caretaker", body))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("list", func(t *testing.T) {
		mockSvc.EXPECT().List(gomock.Any(), testUserID).Return(nil, nil)

		w := serve(NewListCaretakersHandler(mockSvc), newJSONRequest(http.MethodGet, "/get-caretakers?userId="+testUserID, nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"status":"success","caretakers":[]}`, w.Body.String())
	})

	t.Run("verify", func(t *testing.T) {
		mockSvc.EXPECT().Verify(gomock.Any(), "Mom", "4321").Return(&models.Caretaker{ID: "c1", UserID: testUserID}, nil)

		w := serve(NewVerifyCaretakerHandler(mockSvc), newJSONRequest(http.MethodPost, "/verify-caretaker", VerifyCaretakerRequest{Name: "Mom", OTP: "4321"}))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, VerifyCaretakerResponse{Status: StatusSuccess, CaretakerID: "c1", UserID: testUserID}, decodeResponse[VerifyCaretakerResponse](t, w))
	})

	t.Run("verify wrong code", func(t *testing.T) {
		mockSvc.EXPECT().Verify(gomock.Any(), "Mom", "0000").Return(nil, services.ErrCaretakerCredentials)

		w := serve(NewVerifyCaretakerHandler(mockSvc), newJSONRequest(http.MethodPost, "/verify-caretaker", VerifyCaretakerRequest{Name: "Mom", OTP: "0000"}))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Invalid credentials", decodeResponse[ErrorResponse](t, w).Message)
	})

	t.Run("linked user", func(t *testing.T) {
		mockSvc.EXPECT().LinkedUser(gomock.Any(), "c1").Return(
			&models.Caretaker{ID: "c1"},
			&models.User{ID: testUserID, Name: "Jane", Username: "jane", Email: "jane@example.com"}, nil)

		w := serve(NewLinkedUserHandler(mockSvc), newJSONRequest(http.MethodGet, "/get-user-by-caretaker?caretakerId=c1", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"status":"success","caretakerId":"c1","user":{"id":"`+testUserID+`","name":"Jane","username":"jane"}}`, w.Body.String())
	})

	t.Run("delete missing", func(t *testing.T) {
		mockSvc.EXPECT().Delete(gomock.Any(), "c9").Return(services.ErrCaretakerNotFound)

		req := withURLParam(newJSONRequest(http.MethodDelete, "/delete-caretaker/c9", nil), "id", "c9")
		w := serve(NewDeleteCaretakerHandler(mockSvc), req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
