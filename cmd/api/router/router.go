package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"chat-relay/cmd/api/clients/llmclient"
	"chat-relay/cmd/api/handlers"
	"chat-relay/cmd/api/middleware"
	"chat-relay/cmd/api/services"
	_ "chat-relay/docs"
)

// Deps 는 라우터가 핸들러에 주입하는 의존성 묶음이다.
// 저장소/캐시/클라이언트는 main 에서 한 번 구성되어 내려온다.
type Deps struct {
	Chats    *services.ChatService
	Messages *services.MessageService
	Text     *services.TextService
	Settings *services.SettingsService
	LLM      *llmclient.Client
}

func New(deps Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestTrace())
	r.Use(middleware.RequestLoggingMiddleware())

	// Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")
	{
		api.GET("/health", handlers.HealthHandler(deps.LLM))

		api.GET("/chats", handlers.ListChatsHandler(deps.Chats))
		api.POST("/chats", handlers.CreateChatHandler(deps.Chats))
		api.GET("/chats/:id", handlers.GetChatHandler(deps.Chats))
		api.PATCH("/chats/:id", handlers.UpdateChatHandler(deps.Chats))
		api.DELETE("/chats/:id", handlers.DeleteChatHandler(deps.Chats))
		api.GET("/chats/:id/messages", handlers.ListMessagesHandler(deps.Chats))

		api.POST("/messages", handlers.SendMessageHandler(deps.Messages, deps.Settings))
		api.PATCH("/messages/:id", handlers.UpdateMessageHandler(deps.Messages))
		api.DELETE("/messages/:id", handlers.DeleteMessageHandler(deps.Messages))

		api.POST("/improve-text", handlers.ImproveTextHandler(deps.Text))
		api.POST("/extract-keywords", handlers.ExtractKeywordsHandler(deps.Text))
	}

	return r
}
