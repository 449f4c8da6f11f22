package models

import "time"

// User account statuses
const (
	UserStatusActive      = "Active"
	UserStatusDeactivated = "Deactivated"
)

// User represents a row of the users table
type User struct {
	ID                   string     `json:"_id" db:"id"`                   // Primary key
	Name                 string     `json:"Name" db:"name"`                // Display name
	Username             string     `json:"Username" db:"username"`        // Public handle
	Email                string     `json:"Email" db:"email"`              // Unique e-mail
	PasswordHash         string     `json:"-" db:"password_hash"`          // bcrypt hash of the password
	OTPHash              *string    `json:"-" db:"otp_hash"`               // bcrypt hash of the pending reset OTP
	ResetTokenExpiration *time.Time `json:"-" db:"reset_token_expiration"` // Expiry of the pending reset OTP
	Status               string     `json:"status" db:"status"`            // Active or Deactivated
	CreatedAt            time.Time  `json:"createdAt" db:"created_at"`     // Creation timestamp
	UpdatedAt            time.Time  `json:"updatedAt" db:"updated_at"`     // Last update timestamp
}

// UserUpdate carries the profile fields to change. Nil fields are left untouched.
type UserUpdate struct {
	Name     *string
	Username *string
	Email    *string
	Status   *string
}

// IsEmpty reports whether the update changes nothing.
func (u UserUpdate) IsEmpty() bool {
	return u.Name == nil && u.Username == nil && u.Email == nil && u.Status == nil
}

// ValidUserStatus reports whether s is a known account status.
func ValidUserStatus(s string) bool {
	return s == UserStatusActive || s == UserStatusDeactivated
}
