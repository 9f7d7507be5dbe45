package services

import (
	"context"
	"fmt"
	"strings"

	"chat-relay/cache"
	"chat-relay/cmd/api/clients/llmclient"
	"chat-relay/cmd/internal/logger"
	"chat-relay/models"
	"chat-relay/repositories"
)

// MessageService drives one chat turn: persist the user message, resolve the
// provider, consult the response cache, call the model with retry, strip
// thinking spans, persist the assistant message and kick off title
// generation when applicable.
type MessageService struct {
	chats     *repositories.ChatRepository
	messages  *repositories.MessageRepository
	llm       *llmclient.Client
	respCache *cache.Cache
	augment   *AugmentService
	titles    *TitleService
}

func NewMessageService(
	chats *repositories.ChatRepository,
	messages *repositories.MessageRepository,
	llm *llmclient.Client,
	respCache *cache.Cache,
	augment *AugmentService,
	titles *TitleService,
) *MessageService {
	return &MessageService{
		chats:     chats,
		messages:  messages,
		llm:       llm,
		respCache: respCache,
		augment:   augment,
		titles:    titles,
	}
}

type SendInput struct {
	ChatID    string
	Content   string
	ModelName string
	Settings  models.APISettings
}

type SendResult struct {
	UserMessage       models.Message
	AIResponseMessage models.Message

	// FromCache reports whether the assistant content came from the
	// response cache.
	FromCache bool

	// TitleJob is non-nil when this turn started background title
	// generation.
	TitleJob *TitleJob
}

// Send processes one turn. Provider failures do not fail the call: the error
// is converted into a natural-language assistant message so the client always
// receives a complete turn.
func (s *MessageService) Send(ctx context.Context, in SendInput) (*SendResult, error) {
	chat, err := s.chats.GetChat(ctx, in.ChatID)
	if err != nil {
		return nil, err
	}

	history, err := s.messages.GetMessages(ctx, in.ChatID)
	if err != nil {
		return nil, err
	}

	userMsg, err := s.messages.CreateMessage(ctx, in.ChatID, in.Content, true)
	if err != nil {
		return nil, err
	}

	model := llmclient.LookupFor(in.ModelName, in.Settings)
	webSearch := in.Settings.WebSearch && model.SupportsWeb

	conversation := buildConversation(history, in.Content)
	cacheKey := cache.Key(conversationText(conversation), model.DisplayName, fmt.Sprintf("%t", webSearch))

	aiContent, fromCache := s.cachedResponse(cacheKey)
	if !fromCache {
		messages := conversation
		if webSearch {
			if wikiContext := s.augment.BuildContext(ctx, in.Content, in.ModelName, in.Settings); wikiContext != "" {
				messages = prependSystem(conversation, webContextPreamble+"\n\n"+wikiContext)
			}
		}

		raw, callErr := s.llm.ChatCompletion(ctx, in.ModelName, messages, in.Settings)
		if callErr != nil {
			logger.ErrorWithFields("provider call failed", logger.Fields{
				"chat_id": in.ChatID,
				"model":   model.DisplayName,
				"kind":    string(llmclient.Classify(callErr)),
				"error":   callErr.Error(),
			})
			aiContent = failureMessage(callErr)
		} else {
			aiContent = llmclient.StripThinking(raw)
			if aiContent == "" {
				aiContent = "I received an empty response from the model. Please try again."
			} else {
				s.respCache.Set(cacheKey, aiContent)
			}
		}
	}

	aiMsg, err := s.messages.CreateMessage(ctx, in.ChatID, aiContent, false)
	if err != nil {
		return nil, err
	}

	result := &SendResult{
		UserMessage:       *userMsg,
		AIResponseMessage: *aiMsg,
		FromCache:         fromCache,
	}

	if chat.Title == models.DefaultChatTitle && in.Settings.AutoTitleEnabled() && isFirstUserMessage(history) {
		result.TitleJob = s.titles.Generate(chat.ID, in.Content, in.ModelName, in.Settings)
	}

	return result, nil
}

func (s *MessageService) Edit(ctx context.Context, id int, content string) (*models.Message, error) {
	return s.messages.UpdateMessage(ctx, id, content)
}

func (s *MessageService) Delete(ctx context.Context, id int) error {
	return s.messages.DeleteMessage(ctx, id)
}

const webContextPreamble = `Use the following Wikipedia search results to ground your answer. Cite sources with their bracketed numbers where relevant.`

func (s *MessageService) cachedResponse(key string) (string, bool) {
	if s.respCache == nil {
		return "", false
	}
	v, ok := s.respCache.Get(key)
	if !ok {
		return "", false
	}
	content, ok := v.(string)
	return content, ok
}

// buildConversation converts stored history plus the new user message into
// provider message turns.
func buildConversation(history []models.Message, newContent string) []llmclient.ChatMessage {
	out := make([]llmclient.ChatMessage, 0, len(history)+1)
	for _, m := range history {
		role := "assistant"
		if m.IsUserMessage {
			role = "user"
		}
		out = append(out, llmclient.ChatMessage{Role: role, Content: m.Content})
	}
	out = append(out, llmclient.ChatMessage{Role: "user", Content: newContent})
	return out
}

func conversationText(messages []llmclient.ChatMessage) string {
	var b strings.Builder
	for _, m := range messages {
		b.WriteString(m.Role)
		b.WriteString(": ")
		b.WriteString(m.Content)
		b.WriteString("\n")
	}
	return b.String()
}

func prependSystem(messages []llmclient.ChatMessage, content string) []llmclient.ChatMessage {
	out := make([]llmclient.ChatMessage, 0, len(messages)+1)
	out = append(out, llmclient.ChatMessage{Role: "system", Content: content})
	return append(out, messages...)
}

// isFirstUserMessage reports whether the history before this turn contains no
// user message yet (the welcome seed is an assistant message).
func isFirstUserMessage(history []models.Message) bool {
	for _, m := range history {
		if m.IsUserMessage {
			return false
		}
	}
	return true
}

// failureMessage 는 프로바이더 오류를 사용자에게 보여줄 자연어 메시지로 바꾼다.
// 채팅 UI 는 업스트림 실패 시에도 HTTP 에러가 아니라 어시스턴트 메시지를 받는다.
func failureMessage(err error) string {
	switch llmclient.Classify(err) {
	case llmclient.KindNetwork:
		return "I couldn't reach the model server. Please check that your model server is running (or your network connection) and try again."
	case llmclient.KindTimeout:
		return "The model took too long to respond. You can try again, or switch to a smaller model."
	case llmclient.KindServer:
		return "The model server reported an internal error. Please try again in a moment."
	case llmclient.KindAuth:
		return "The provider rejected the request as unauthorized. Please check your API key in the settings."
	case llmclient.KindValidation:
		return "The provider rejected the request. Please check the selected model and settings."
	default:
		return "Something went wrong while generating a response. Please try again."
	}
}
