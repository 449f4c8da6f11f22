package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/vibecare/internal/models"
)

//go:generate mockgen -source=preferences.go -destination=mock_preferences.go -package=handlers

// PreferenceKeeper reads and saves onboarding answers.
type PreferenceKeeper interface {
	Get(ctx context.Context, userID string) (*models.UserPreferences, error)
	Save(ctx context.Context, incoming models.UserPreferences) (*models.UserPreferences, error)
}

// PreferencesBody holds the onboarding answers
// swagger:model PreferencesBody
type PreferencesBody struct {
	AgeGroup           string `json:"ageGroup"`
	Gender             string `json:"gender"`
	RelationshipStatus string `json:"relationshipStatus"`
	LivingSituation    string `json:"livingSituation"`
}

// SavePreferencesRequest saves onboarding answers
// swagger:model SavePreferencesRequest
type SavePreferencesRequest struct {
	// required: true
	UserID string `json:"userId"`
	PreferencesBody
}

// PreferencesResponse returns the stored answers
// swagger:model PreferencesResponse
type PreferencesResponse struct {
	Status      string          `json:"status"`
	Preferences PreferencesBody `json:"preferences"`
}

// NewSavePreferencesHandler merges non-empty answers onto the stored ones.
// @Summary Save preferences
// @Tags preferences
// @Accept json
// @Produce json
// @Param request body handlers.SavePreferencesRequest true "Preferences"
// @Success 200 {object} handlers.MessageResponse
// @Failure 400 {object} handlers.ErrorResponse
// @Router /save-preferences [post]
func NewSavePreferencesHandler(svc PreferenceKeeper) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SavePreferencesRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		_, err := svc.Save(r.Context(), models.UserPreferences{
			UserID:             req.UserID,
			Gender:             req.Gender,
			AgeGroup:           req.AgeGroup,
			RelationshipStatus: req.RelationshipStatus,
			LivingSituation:    req.LivingSituation,
		})
		if err != nil {
			writeServiceError(w, r, err, "")
			return
		}

		writeJSON(w, http.StatusOK, MessageResponse{Status: StatusSuccess, Message: "Preferences saved successfully"})
	}
}

// NewGetPreferencesHandler returns the answers, empty when none were saved.
// @Summary Get preferences
// @Tags preferences
// @Produce json
// @Param userId query string true "User ID"
// @Success 200 {object} handlers.PreferencesResponse
// @Failure 400 {object} handlers.ErrorResponse
// @Router /get-user-preferences [get]
func NewGetPreferencesHandler(svc PreferenceKeeper) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		prefs, err := svc.Get(r.Context(), r.URL.Query().Get("userId"))
		if err != nil {
			writeServiceError(w, r, err, "")
			return
		}

		writeJSON(w, http.StatusOK, PreferencesResponse{
			Status: StatusSuccess,
			Preferences: PreferencesBody{
				AgeGroup:           prefs.AgeGroup,
				Gender:             prefs.Gender,
				RelationshipStatus: prefs.RelationshipStatus,
				LivingSituation:    prefs.LivingSituation,
			},
		})
	}
}
