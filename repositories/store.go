package repositories

import (
	"errors"
	"sync"

	"chat-relay/models"
)

// ErrNotFound is returned when a chat or message does not exist.
var ErrNotFound = errors.New("not found")

// Store holds all chat and message state for a single-instance deployment.
// It is constructed once at application start and injected into the
// repositories instead of living as a package-level singleton, so tests can
// use isolated instances.
//
// 단일 인스턴스 가정이지만 gin 은 요청을 고루틴으로 처리하므로
// 맵 접근은 뮤텍스로 보호한다.
type Store struct {
	mu            sync.Mutex
	chats         map[string]*models.Chat
	messages      map[int]*models.Message
	nextMessageID int
}

func NewStore() *Store {
	return &Store{
		chats:         make(map[string]*models.Chat),
		messages:      make(map[int]*models.Message),
		nextMessageID: 1,
	}
}
