package dto

import "chat-relay/models"

type CreateChatRequestDTO struct {
	Title string `json:"title" example:"New Chat"`
}

type UpdateChatRequestDTO struct {
	Title string `json:"title" binding:"required" example:"FL Studio basics"`
}

type CreateChatResponseDTO struct {
	Chat           models.Chat    `json:"chat"`
	WelcomeMessage models.Message `json:"welcomeMessage"`
}
