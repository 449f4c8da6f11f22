package models

import "time"

// UserPreferences holds onboarding answers of a user
type UserPreferences struct {
	UserID             string    `json:"userId" db:"user_id"`
	Gender             string    `json:"gender" db:"gender"`
	AgeGroup           string    `json:"ageGroup" db:"age_group"`
	RelationshipStatus string    `json:"relationshipStatus" db:"relationship_status"`
	LivingSituation    string    `json:"livingSituation" db:"living_situation"`
	UpdatedAt          time.Time `json:"-" db:"updated_at"`
}
