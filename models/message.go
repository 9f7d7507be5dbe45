package models

import "time"

type Message struct {
	ID            int       `json:"id"`
	ChatID        string    `json:"chatId"`
	Content       string    `json:"content"`
	IsUserMessage bool      `json:"isUserMessage"`
	CreatedAt     time.Time `json:"createdAt"`
}
