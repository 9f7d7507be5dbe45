package dto

import "chat-relay/models"

type SendMessageRequestDTO struct {
	ChatID      string              `json:"chatId" binding:"required" example:"6f9619ff-8b86-4d01-b42d-00cf4fc964ff"`
	Content     string              `json:"content" binding:"required" example:"Tell me about #FL Studio"`
	ModelName   string              `json:"modelName" example:"Qwen3 0.6b"`
	APISettings *models.APISettings `json:"apiSettings"`
}

type SendMessageResponseDTO struct {
	UserMessage       models.Message `json:"userMessage"`
	AIResponseMessage models.Message `json:"aiResponseMessage"`
}

type UpdateMessageRequestDTO struct {
	Content string `json:"content" binding:"required"`
}
