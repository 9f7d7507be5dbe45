package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"chat-relay/cmd/api/clients/llmclient"
	"chat-relay/cmd/api/dto"
)

// HealthHandler godoc
// @Summary      Service health
// @Description  Probes the local model server and reports connectivity, latency and recommendations
// @Tags         health
// @Produce      json
// @Success      200  {object}  dto.HealthResponseDTO
// @Router       /health [get]
func HealthHandler(llm *llmclient.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := llm.CheckLocal(c.Request.Context(), c.Query("apiUrl"))

		out := dto.HealthResponseDTO{
			LMStudio: dto.LMStudioStatusDTO{
				IsConnected: status.IsConnected,
				LastChecked: status.LastChecked,
			},
			Recommendations: []string{},
			Timestamp:       time.Now(),
		}
		if status.IsConnected {
			latency := status.LatencyMs
			out.LMStudio.LatencyMs = &latency
			if latency > 2000 {
				out.Recommendations = append(out.Recommendations, "The local model server is responding slowly; consider loading a smaller model.")
			}
		} else {
			if status.Err != nil {
				out.LMStudio.Error = status.Err.Error()
			}
			out.Recommendations = append(out.Recommendations,
				"Start LM Studio (or a compatible server) and load a model.",
				"Verify the API URL in your settings points at the running server.",
			)
		}

		c.JSON(http.StatusOK, out)
	}
}
