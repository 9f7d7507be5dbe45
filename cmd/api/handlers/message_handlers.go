package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"chat-relay/cmd/api/dto"
	"chat-relay/cmd/api/services"
	"chat-relay/repositories"
)

// SendMessageHandler godoc
// @Summary      Send a message
// @Description  Persists the user message, forwards the turn to the model provider and persists the assistant response. Provider failures still return 201 with a natural-language assistant message.
// @Tags         messages
// @Accept       json
// @Produce      json
// @Param        body  body      dto.SendMessageRequestDTO  true  "message"
// @Success      201   {object}  dto.SendMessageResponseDTO
// @Failure      400   {object}  dto.ErrorResponseDTO
// @Failure      404   {object}  dto.ErrorResponseDTO
// @Router       /messages [post]
func SendMessageHandler(svc *services.MessageService, settingsSvc *services.SettingsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.SendMessageRequestDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "invalid request body: " + err.Error()})
			return
		}

		settings := settingsSvc.Resolve(req.APISettings)

		result, err := svc.Send(c.Request.Context(), services.SendInput{
			ChatID:    req.ChatID,
			Content:   req.Content,
			ModelName: req.ModelName,
			Settings:  settings,
		})
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				c.JSON(http.StatusNotFound, dto.ErrorResponseDTO{Error: "chat not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, dto.ErrorResponseDTO{Error: err.Error()})
			return
		}

		c.JSON(http.StatusCreated, dto.SendMessageResponseDTO{
			UserMessage:       result.UserMessage,
			AIResponseMessage: result.AIResponseMessage,
		})
	}
}

// UpdateMessageHandler godoc
// @Summary      Edit a message
// @Tags         messages
// @Accept       json
// @Produce      json
// @Param        id    path      int                          true  "Message ID"
// @Param        body  body      dto.UpdateMessageRequestDTO  true  "patch"
// @Success      200   {object}  models.Message
// @Failure      400   {object}  dto.ErrorResponseDTO
// @Failure      404   {object}  dto.ErrorResponseDTO
// @Router       /messages/{id} [patch]
func UpdateMessageHandler(svc *services.MessageService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "invalid message id"})
			return
		}

		var req dto.UpdateMessageRequestDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "invalid request body: " + err.Error()})
			return
		}

		msg, err := svc.Edit(c.Request.Context(), id, req.Content)
		if err != nil {
			c.JSON(http.StatusNotFound, dto.ErrorResponseDTO{Error: "message not found"})
			return
		}
		c.JSON(http.StatusOK, msg)
	}
}

// DeleteMessageHandler godoc
// @Summary      Delete a message
// @Description  Deletes a message. Removing the last message of a chat also deletes the chat.
// @Tags         messages
// @Param        id   path   int  true  "Message ID"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /messages/{id} [delete]
func DeleteMessageHandler(svc *services.MessageService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "invalid message id"})
			return
		}
		if err := svc.Delete(c.Request.Context(), id); err != nil {
			c.JSON(http.StatusNotFound, dto.ErrorResponseDTO{Error: "message not found"})
			return
		}
		c.Status(http.StatusNoContent)
	}
}
