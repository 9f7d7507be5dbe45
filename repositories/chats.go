package repositories

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"chat-relay/models"
)

type ChatRepository struct {
	store *Store
}

func NewChatRepository(store *Store) *ChatRepository {
	return &ChatRepository{store: store}
}

// ChatPatch carries the mutable chat fields for UpdateChat.
type ChatPatch struct {
	Title *string
}

// GetChats returns all chats of a user ordered by creation time.
func (r *ChatRepository) GetChats(ctx context.Context, userID int) ([]models.Chat, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	out := make([]models.Chat, 0, len(r.store.chats))
	for _, c := range r.store.chats {
		if c.UserID == userID {
			out = append(out, *c)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (r *ChatRepository) GetChat(ctx context.Context, id string) (*models.Chat, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	c, ok := r.store.chats[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *c
	return &copied, nil
}

// CreateChat assigns a UUID and stores the chat.
func (r *ChatRepository) CreateChat(ctx context.Context, userID int, title string) (*models.Chat, error) {
	if title == "" {
		title = models.DefaultChatTitle
	}
	chat := &models.Chat{
		ID:        uuid.New().String(),
		UserID:    userID,
		Title:     title,
		CreatedAt: time.Now(),
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.chats[chat.ID] = chat

	copied := *chat
	return &copied, nil
}

func (r *ChatRepository) UpdateChat(ctx context.Context, id string, patch ChatPatch) (*models.Chat, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	c, ok := r.store.chats[id]
	if !ok {
		return nil, ErrNotFound
	}
	if patch.Title != nil {
		c.Title = *patch.Title
	}
	copied := *c
	return &copied, nil
}

// DeleteChat removes the chat and cascades deletion to its messages.
func (r *ChatRepository) DeleteChat(ctx context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.chats[id]; !ok {
		return ErrNotFound
	}
	delete(r.store.chats, id)
	for msgID, m := range r.store.messages {
		if m.ChatID == id {
			delete(r.store.messages, msgID)
		}
	}
	return nil
}
