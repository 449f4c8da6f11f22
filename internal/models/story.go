package models

import "time"

// Success story moderation statuses
const (
	StoryStatusPending  = "pending"
	StoryStatusPublish  = "publish"
	StoryStatusRejected = "rejected"
)

// SuccessStory represents a user-submitted story
type SuccessStory struct {
	ID        string    `json:"_id" db:"id"`               // Primary key
	UserID    string    `json:"userId" db:"user_id"`       // Author
	Title     string    `json:"title" db:"title"`          // Headline
	Subtitle  string    `json:"subtitle" db:"subtitle"`    // Short summary
	Story     string    `json:"story" db:"story"`          // Body text
	Status    string    `json:"status" db:"status"`        // pending, publish or rejected
	CreatedAt time.Time `json:"createdAt" db:"created_at"` // Creation timestamp
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"` // Last update timestamp
}

// StoryView is a story joined with its author
type StoryView struct {
	SuccessStory
	AuthorEmail string `json:"authorEmail" db:"author_email"`
	AuthorName  string `json:"authorName" db:"author_name"`
}

// ValidStoryStatus reports whether s is a known moderation status.
func ValidStoryStatus(s string) bool {
	switch s {
	case StoryStatusPending, StoryStatusPublish, StoryStatusRejected:
		return true
	}
	return false
}
