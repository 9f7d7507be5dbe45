package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"chat-relay/cmd/api/dto"
	"chat-relay/cmd/api/services"
	"chat-relay/models"
)

// ImproveTextHandler godoc
// @Summary      Improve text
// @Description  Runs the text through the model with an improvement prompt
// @Tags         text
// @Accept       json
// @Produce      json
// @Param        body  body      dto.ImproveTextRequestDTO  true  "text"
// @Success      200   {object}  dto.ImproveTextResponseDTO
// @Failure      400   {object}  dto.ErrorResponseDTO
// @Failure      502   {object}  dto.ErrorResponseDTO
// @Router       /improve-text [post]
func ImproveTextHandler(svc *services.TextService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.ImproveTextRequestDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "invalid request body: " + err.Error()})
			return
		}

		settings := models.APISettings{Temperature: req.Temperature}
		improved, err := svc.ImproveText(c.Request.Context(), req.Text, req.ModelName, settings)
		if err != nil {
			c.JSON(http.StatusBadGateway, dto.ErrorResponseDTO{Error: "text improvement failed"})
			return
		}
		c.JSON(http.StatusOK, dto.ImproveTextResponseDTO{ImprovedText: improved})
	}
}

// ExtractKeywordsHandler godoc
// @Summary      Extract keywords
// @Description  Extracts search keywords from the text. Hashtags take priority over model extraction.
// @Tags         text
// @Accept       json
// @Produce      json
// @Param        body  body      dto.ExtractKeywordsRequestDTO  true  "text"
// @Success      200   {object}  dto.ExtractKeywordsResponseDTO
// @Failure      400   {object}  dto.ErrorResponseDTO
// @Router       /extract-keywords [post]
func ExtractKeywordsHandler(svc *services.TextService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.ExtractKeywordsRequestDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "invalid request body: " + err.Error()})
			return
		}

		keywords := svc.ExtractKeywords(c.Request.Context(), req.Text, req.ModelName, models.APISettings{})
		if keywords == nil {
			keywords = []string{}
		}
		c.JSON(http.StatusOK, dto.ExtractKeywordsResponseDTO{Keywords: keywords})
	}
}
