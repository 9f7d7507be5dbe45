package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"chat-relay/cmd/api/dto"
	"chat-relay/cmd/api/services"
	"chat-relay/repositories"
)

// ListChatsHandler godoc
// @Summary      List chats
// @Description  List all chats of the user ordered by creation time
// @Tags         chats
// @Produce      json
// @Success      200  {array}  models.Chat
// @Router       /chats [get]
func ListChatsHandler(svc *services.ChatService) gin.HandlerFunc {
	return func(c *gin.Context) {
		chats, err := svc.List(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, dto.ErrorResponseDTO{Error: err.Error()})
			return
		}
		c.JSON(http.StatusOK, chats)
	}
}

// GetChatHandler godoc
// @Summary      Get chat by id
// @Tags         chats
// @Param        id   path   string  true  "Chat ID"
// @Produce      json
// @Success      200  {object}  models.Chat
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /chats/{id} [get]
func GetChatHandler(svc *services.ChatService) gin.HandlerFunc {
	return func(c *gin.Context) {
		chat, err := svc.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			c.JSON(http.StatusNotFound, dto.ErrorResponseDTO{Error: "chat not found"})
			return
		}
		c.JSON(http.StatusOK, chat)
	}
}

// CreateChatHandler godoc
// @Summary      Create chat
// @Description  Creates a chat and seeds it with one assistant welcome message
// @Tags         chats
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CreateChatRequestDTO  true  "chat"
// @Success      201   {object}  dto.CreateChatResponseDTO
// @Failure      400   {object}  dto.ErrorResponseDTO
// @Router       /chats [post]
func CreateChatHandler(svc *services.ChatService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.CreateChatRequestDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "invalid request body: " + err.Error()})
			return
		}

		chat, seed, err := svc.Create(c.Request.Context(), req.Title)
		if err != nil {
			c.JSON(http.StatusInternalServerError, dto.ErrorResponseDTO{Error: err.Error()})
			return
		}
		c.JSON(http.StatusCreated, dto.CreateChatResponseDTO{Chat: *chat, WelcomeMessage: *seed})
	}
}

// UpdateChatHandler godoc
// @Summary      Rename chat
// @Tags         chats
// @Accept       json
// @Produce      json
// @Param        id    path      string                    true  "Chat ID"
// @Param        body  body      dto.UpdateChatRequestDTO  true  "patch"
// @Success      200   {object}  models.Chat
// @Failure      400   {object}  dto.ErrorResponseDTO
// @Failure      404   {object}  dto.ErrorResponseDTO
// @Router       /chats/{id} [patch]
func UpdateChatHandler(svc *services.ChatService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.UpdateChatRequestDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "invalid request body: " + err.Error()})
			return
		}

		chat, err := svc.Rename(c.Request.Context(), c.Param("id"), req.Title)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				c.JSON(http.StatusNotFound, dto.ErrorResponseDTO{Error: "chat not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, dto.ErrorResponseDTO{Error: err.Error()})
			return
		}
		c.JSON(http.StatusOK, chat)
	}
}

// DeleteChatHandler godoc
// @Summary      Delete chat
// @Description  Deletes the chat and cascades deletion to its messages
// @Tags         chats
// @Param        id   path   string  true  "Chat ID"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /chats/{id} [delete]
func DeleteChatHandler(svc *services.ChatService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
			c.JSON(http.StatusNotFound, dto.ErrorResponseDTO{Error: "chat not found"})
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// ListMessagesHandler godoc
// @Summary      List messages of a chat
// @Tags         chats
// @Param        id   path   string  true  "Chat ID"
// @Produce      json
// @Success      200  {array}  models.Message
// @Router       /chats/{id}/messages [get]
func ListMessagesHandler(svc *services.ChatService) gin.HandlerFunc {
	return func(c *gin.Context) {
		messages, err := svc.Messages(c.Request.Context(), c.Param("id"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, dto.ErrorResponseDTO{Error: err.Error()})
			return
		}
		c.JSON(http.StatusOK, messages)
	}
}
