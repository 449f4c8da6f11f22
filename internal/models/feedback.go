package models

import "time"

// Feedback ticket statuses
const (
	FeedbackStatusOpen   = "Open"
	FeedbackStatusClosed = "Closed"
)

// Feedback represents a feedback ticket
type Feedback struct {
	ID                  string    `json:"_id" db:"id"`                                   // Primary key
	UserID              string    `json:"userId" db:"user_id"`                           // Author
	Rating              *int      `json:"rating" db:"rating"`                            // Optional 1..5 rating
	SelectedImprovement string    `json:"selectedImprovement" db:"selected_improvement"` // Improvement category
	Feedback            string    `json:"feedback" db:"feedback"`                        // Free text
	TicketNumber        string    `json:"ticketNumber" db:"ticket_number"`               // Unique ticket id
	AdminResponse       string    `json:"adminResponse" db:"admin_response"`             // Reply from the admin
	Status              string    `json:"status" db:"status"`                            // Open or Closed
	Responded           bool      `json:"responded" db:"responded"`                      // Set once an admin replied
	CreatedAt           time.Time `json:"createdAt" db:"created_at"`                     // Creation timestamp
	UpdatedAt           time.Time `json:"updatedAt" db:"updated_at"`                     // Last update timestamp
}

// FeedbackView is a feedback ticket joined with its author
type FeedbackView struct {
	Feedback
	UserEmail string `json:"userEmail" db:"user_email"`
	UserName  string `json:"userName" db:"user_name"`
}
