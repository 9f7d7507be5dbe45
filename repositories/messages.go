package repositories

import (
	"context"
	"sort"
	"time"

	"chat-relay/models"
)

type MessageRepository struct {
	store *Store
}

func NewMessageRepository(store *Store) *MessageRepository {
	return &MessageRepository{store: store}
}

// GetMessages returns all messages of a chat ordered by id.
// A missing chat yields an empty list, not an error.
func (r *MessageRepository) GetMessages(ctx context.Context, chatID string) ([]models.Message, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	out := make([]models.Message, 0)
	for _, m := range r.store.messages {
		if m.ChatID == chatID {
			out = append(out, *m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *MessageRepository) GetMessage(ctx context.Context, id int) (*models.Message, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	m, ok := r.store.messages[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *m
	return &copied, nil
}

// CreateMessage assigns the next monotonic id and stores the message.
// The chat must exist.
func (r *MessageRepository) CreateMessage(ctx context.Context, chatID, content string, isUserMessage bool) (*models.Message, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.chats[chatID]; !ok {
		return nil, ErrNotFound
	}

	msg := &models.Message{
		ID:            r.store.nextMessageID,
		ChatID:        chatID,
		Content:       content,
		IsUserMessage: isUserMessage,
		CreatedAt:     time.Now(),
	}
	r.store.nextMessageID++
	r.store.messages[msg.ID] = msg

	copied := *msg
	return &copied, nil
}

func (r *MessageRepository) UpdateMessage(ctx context.Context, id int, content string) (*models.Message, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	m, ok := r.store.messages[id]
	if !ok {
		return nil, ErrNotFound
	}
	m.Content = content
	copied := *m
	return &copied, nil
}

// DeleteMessage removes a message. Deleting the last message of a chat also
// deletes the chat: a chat with zero messages is invalid, and the invariant is
// enforced here rather than by client-side cleanup.
func (r *MessageRepository) DeleteMessage(ctx context.Context, id int) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	m, ok := r.store.messages[id]
	if !ok {
		return ErrNotFound
	}
	chatID := m.ChatID
	delete(r.store.messages, id)

	for _, rest := range r.store.messages {
		if rest.ChatID == chatID {
			return nil
		}
	}
	delete(r.store.chats, chatID)
	return nil
}
