package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/rs/cors"

	"chat-relay/cache"
	"chat-relay/cmd/api/clients/llmclient"
	"chat-relay/cmd/api/clients/wikiclient"
	"chat-relay/cmd/api/router"
	"chat-relay/cmd/api/services"
	"chat-relay/cmd/internal/logger"
	"chat-relay/config"
	_ "chat-relay/docs" // swag will generate this package
	"chat-relay/repositories"
)

// @title           chat-relay API
// @version         1.0
// @description     Chat gateway proxying conversations to OpenAI-compatible model providers
// @BasePath        /api
func main() {
	config.InitApp()
	cfg := config.GetConfig()
	logger.Init(cfg.Logging.Level)

	store := repositories.NewStore()
	chatRepo := repositories.NewChatRepository(store)
	messageRepo := repositories.NewMessageRepository(store)

	// 페이로드 종류별로 크기/TTL 정책이 다른 캐시 인스턴스를 사용한다.
	responseCache := cache.New(cfg.Cache.Responses.MaxSize, cfg.Cache.Responses.TTL(), cfg.Cache.Responses.TTL()/2)
	metaCache := cache.New(cfg.Cache.ChatMeta.MaxSize, cfg.Cache.ChatMeta.TTL(), cfg.Cache.ChatMeta.TTL()/2)
	settingsCache := cache.New(cfg.Cache.Settings.MaxSize, cfg.Cache.Settings.TTL(), cfg.Cache.Settings.TTL()/2)
	defer responseCache.Stop()
	defer metaCache.Stop()
	defer settingsCache.Stop()

	llmClient := llmclient.New(cfg)
	wikiClient := wikiclient.New(cfg.Wikipedia)

	textSvc := services.NewTextService(llmClient)
	settingsSvc := services.NewSettingsService(settingsCache)
	augmentSvc := services.NewAugmentService(textSvc, wikiClient, cfg.Wikipedia.ResultLimit)
	chatSvc := services.NewChatService(chatRepo, messageRepo, metaCache)
	titleSvc := services.NewTitleService(textSvc, chatSvc)
	messageSvc := services.NewMessageService(chatRepo, messageRepo, llmClient, responseCache, augmentSvc, titleSvc)

	r := router.New(router.Deps{
		Chats:    chatSvc,
		Messages: messageSvc,
		Text:     textSvc,
		Settings: settingsSvc,
		LLM:      llmClient,
	})

	// 브라우저 클라이언트가 다른 오리진에서 접근하므로 CORS 를 허용한다.
	corsHandler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete},
		AllowedHeaders: []string{"Content-Type", "X-Request-Id"},
	}).Handler(r)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	logger.InfoWithFields("starting api server", logger.Fields{"addr": addr})
	if err := http.ListenAndServe(addr, corsHandler); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
