package models

import (
	"database/sql/driver"
	"time"
)

// Chat message senders
const (
	SenderUser = "user"
	SenderBot  = "bot"
)

// ChatMessage is one line of a chat session
type ChatMessage struct {
	Text      string    `json:"text"`
	Sender    string    `json:"sender"`
	Timestamp time.Time `json:"timestamp"`
}

// ChatMessages is the ordered message list stored in a JSONB column
type ChatMessages []ChatMessage

// Value implements driver.Valuer.
func (m ChatMessages) Value() (driver.Value, error) {
	if m == nil {
		m = ChatMessages{}
	}
	return jsonValue([]ChatMessage(m))
}

// Scan implements sql.Scanner.
func (m *ChatMessages) Scan(src any) error {
	if src == nil {
		*m = ChatMessages{}
		return nil
	}
	return scanJSON(src, (*[]ChatMessage)(m))
}

// Chat represents a saved chat session
type Chat struct {
	ID        string       `json:"_id" db:"id"`               // Primary key
	UserID    string       `json:"userId" db:"user_id"`       // Owner
	Messages  ChatMessages `json:"messages" db:"messages"`    // Ordered messages
	CreatedAt time.Time    `json:"createdAt" db:"created_at"` // Creation timestamp
	UpdatedAt time.Time    `json:"updatedAt" db:"updated_at"` // Last update timestamp
}
