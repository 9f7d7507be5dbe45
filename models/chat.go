package models

import "time"

// DefaultChatTitle is the sentinel title given to a freshly created chat.
// The title generator only replaces titles that still carry this value.
const DefaultChatTitle = "New Chat"

type Chat struct {
	ID        string    `json:"id"`
	UserID    int       `json:"userId"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"createdAt"`
}
