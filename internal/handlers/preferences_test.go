package handlers

import (
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/vibecare/internal/models"
	"github.com/sbilibin2017/vibecare/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestPreferencesHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockPreferenceKeeper(ctrl)

	t.Run("save", func(t *testing.T) {
		mockSvc.EXPECT().
			Save(gomock.Any(), models.UserPreferences{UserID: testUserID, Gender: "female", AgeGroup: "18-24"}).
			Return(&models.UserPreferences{UserID: testUserID, Gender: "female", AgeGroup: "18-24"}, nil)

		body := SavePreferencesRequest{UserID: testUserID, PreferencesBody: PreferencesBody{Gender: "female", AgeGroup: "18-24"}}
		w := serve(NewSavePreferencesHandler(mockSvc), newJSONRequest(http.MethodPost, "/save-preferences", body))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Preferences saved successfully", decodeResponse[MessageResponse](t, w).Message)
	})

	t.Run("save without user", func(t *testing.T) {
		mockSvc.EXPECT().Save(gomock.Any(), models.UserPreferences{}).Return(nil, services.ErrMissingID)

		w := serve(NewSavePreferencesHandler(mockSvc), newJSONRequest(http.MethodPost, "/save-preferences", SavePreferencesRequest{}))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("get defaults", func(t *testing.T) {
		mockSvc.EXPECT().Get(gomock.Any(), testUserID).Return(&models.UserPreferences{UserID: testUserID}, nil)

		w := serve(NewGetPreferencesHandler(mockSvc), newJSONRequest(http.MethodGet, "/get-user-preferences?userId="+testUserID, nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"status":"success","preferences":{"ageGroup":"","gender":"","relationshipStatus":"","livingSituation":""}}`, w.Body.String())
	})
}
