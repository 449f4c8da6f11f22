package models

import "time"

// DiaryEntry represents a private note
type DiaryEntry struct {
	ID        string    `json:"_id" db:"id"`
	UserID    string    `json:"userId" db:"user_id"`
	Note      string    `json:"note" db:"note"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
