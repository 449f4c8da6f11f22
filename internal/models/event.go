package models

// Domain event types
const (
	EventUserRegistered     = "user.registered"
	EventUserLogin          = "user.login"
	EventStoryStatusChanged = "story.status_changed"
	EventFeedbackResponded  = "feedback.responded"
)

// Event is a domain event published for downstream consumers.
type Event struct {
	ID        string         `json:"id"`        // ID is a unique identifier for the event.
	Type      string         `json:"type"`      // Type names what happened, e.g. "user.login".
	UserID    string         `json:"user_id"`   // UserID is the account the event relates to.
	Timestamp int64          `json:"timestamp"` // Timestamp is the Unix time (in seconds) of the event.
	Payload   map[string]any `json:"payload"`   // Payload carries event specific attributes.
}
