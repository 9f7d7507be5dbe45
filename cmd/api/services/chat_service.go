package services

import (
	"context"

	"chat-relay/cache"
	"chat-relay/models"
	"chat-relay/repositories"
)

// welcomeMessage seeds every new chat with one assistant message, keeping the
// "a chat has at least one message" invariant from creation onward.
const welcomeMessage = "Hello! How can I help you today?"

// defaultUserID 는 인증 표면이 없는 단일 사용자 배포의 고정 사용자 id 이다.
const defaultUserID = 1

type ChatService struct {
	chats     *repositories.ChatRepository
	messages  *repositories.MessageRepository
	metaCache *cache.Cache
}

func NewChatService(chats *repositories.ChatRepository, messages *repositories.MessageRepository, metaCache *cache.Cache) *ChatService {
	return &ChatService{chats: chats, messages: messages, metaCache: metaCache}
}

func (s *ChatService) List(ctx context.Context) ([]models.Chat, error) {
	return s.chats.GetChats(ctx, defaultUserID)
}

func (s *ChatService) Get(ctx context.Context, id string) (*models.Chat, error) {
	if s.metaCache != nil {
		if v, ok := s.metaCache.Get(id); ok {
			chat := v.(models.Chat)
			return &chat, nil
		}
	}
	chat, err := s.chats.GetChat(ctx, id)
	if err != nil {
		return nil, err
	}
	if s.metaCache != nil {
		s.metaCache.Set(chat.ID, *chat)
	}
	return chat, nil
}

// Create stores a new chat and seeds the assistant welcome message. When
// seeding fails the chat is rolled back so no zero-message chat survives.
func (s *ChatService) Create(ctx context.Context, title string) (*models.Chat, *models.Message, error) {
	chat, err := s.chats.CreateChat(ctx, defaultUserID, title)
	if err != nil {
		return nil, nil, err
	}
	seed, err := s.messages.CreateMessage(ctx, chat.ID, welcomeMessage, false)
	if err != nil {
		s.chats.DeleteChat(ctx, chat.ID)
		return nil, nil, err
	}
	return chat, seed, nil
}

func (s *ChatService) Rename(ctx context.Context, id, title string) (*models.Chat, error) {
	chat, err := s.chats.UpdateChat(ctx, id, repositories.ChatPatch{Title: &title})
	if err != nil {
		return nil, err
	}
	if s.metaCache != nil {
		s.metaCache.Set(chat.ID, *chat)
	}
	return chat, nil
}

func (s *ChatService) Delete(ctx context.Context, id string) error {
	if err := s.chats.DeleteChat(ctx, id); err != nil {
		return err
	}
	if s.metaCache != nil {
		s.metaCache.Delete(id)
	}
	return nil
}

func (s *ChatService) Messages(ctx context.Context, chatID string) ([]models.Message, error) {
	return s.messages.GetMessages(ctx, chatID)
}
