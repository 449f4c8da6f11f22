package models

import "time"

// Image is a calming picture offered by the home screen
type Image struct {
	ID          string    `json:"_id" db:"id"`                  // Primary key
	Title       string    `json:"title" db:"title"`             // Display title
	URL         string    `json:"url" db:"url"`                 // Public image location
	Description string    `json:"description" db:"description"` // Longer caption for the detail view
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`    // Creation timestamp
}

// EmojiMatch locates one emoji inside the catalogue
type EmojiMatch struct {
	Category    string  `json:"category" db:"category"`
	Subcategory string  `json:"subcategory" db:"subcategory"`
	EmojiData   RawJSON `json:"emojiData" db:"emoji_data" swaggertype:"object"`
}
