package models

import "time"

// Caretaker represents a person allowed to follow a user
type Caretaker struct {
	ID            string    `json:"_id" db:"id"`                       // Primary key
	UserID        string    `json:"userId" db:"user_id"`               // Followed user
	CaretakerName string    `json:"caretakerName" db:"caretaker_name"` // Unique per user, case-insensitive
	CodeHash      string    `json:"-" db:"caretaker_otp_hash"`         // bcrypt hash of the access code
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`         // Creation timestamp
	UpdatedAt     time.Time `json:"updatedAt" db:"updated_at"`         // Last update timestamp
}
