package models

import (
	"strings"
	"time"
)

// Device classes derived from the user agent
const (
	DeviceMobile     = "Mobile"
	DeviceAndroidApp = "Android App"
	DeviceDesktop    = "Desktop"
)

// LoginHistory represents one login attempt
type LoginHistory struct {
	ID        string    `json:"_id" db:"id"`               // Primary key
	UserID    string    `json:"userId" db:"user_id"`       // Account the attempt was made against
	Email     string    `json:"email" db:"email"`          // E-mail used for the attempt
	IP        string    `json:"ip" db:"ip"`                // Client address
	Device    string    `json:"device" db:"device"`        // Device class parsed from the user agent
	UserAgent string    `json:"userAgent" db:"user_agent"` // Raw user agent
	Date      string    `json:"date" db:"date"`            // YYYY-MM-DD
	Time      string    `json:"time" db:"time"`            // HH:MM:SS
	Success   bool      `json:"success" db:"success"`      // Whether the password matched
	CreatedAt time.Time `json:"createdAt" db:"created_at"` // Creation timestamp
}

// DetectDevice classifies a user agent string.
func DetectDevice(userAgent string) string {
	ua := strings.ToLower(userAgent)
	switch {
	case strings.Contains(ua, "mobile"), strings.Contains(ua, "android"), strings.Contains(ua, "iphone"):
		return DeviceMobile
	case strings.Contains(ua, "okhttp"):
		return DeviceAndroidApp
	default:
		return DeviceDesktop
	}
}
