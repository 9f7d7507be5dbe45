package services

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"chat-relay/cache"
	"chat-relay/cmd/api/clients/llmclient"
	"chat-relay/cmd/api/clients/wikiclient"
	"chat-relay/config"
	"chat-relay/models"
	"chat-relay/repositories"
)

type messageStack struct {
	chats    *ChatService
	messages *MessageService
	titles   *TitleService
}

func newMessageStack(t *testing.T, wikiURL string) *messageStack {
	t.Helper()
	store := repositories.NewStore()
	chatRepo := repositories.NewChatRepository(store)
	msgRepo := repositories.NewMessageRepository(store)

	llm := llmclient.New(testLLMConfig())
	text := NewTextService(llm)
	wiki := wikiclient.New(config.WikipediaConfig{BaseURL: wikiURL, SearchDelayMillis: 1})
	augment := NewAugmentService(text, wiki, 4)

	chats := NewChatService(chatRepo, msgRepo, nil)
	titles := NewTitleService(text, chats)
	titles.startDelay = time.Millisecond

	respCache := cache.New(10, time.Minute, 0)
	t.Cleanup(respCache.Stop)

	return &messageStack{
		chats:    chats,
		messages: NewMessageService(chatRepo, msgRepo, llm, respCache, augment, titles),
		titles:   titles,
	}
}

func boolPtr(b bool) *bool { return &b }

func TestSendPersistsFullTurn(t *testing.T) {
	srv := completionServer(t, "<think>let me think</think>Jazz uses extended chords.", nil)
	defer srv.Close()

	stack := newMessageStack(t, srv.URL)
	ctx := context.Background()
	chat, _, err := stack.chats.Create(ctx, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	res, err := stack.messages.Send(ctx, SendInput{
		ChatID:   chat.ID,
		Content:  "what makes jazz sound like jazz?",
		Settings: models.APISettings{APIURL: srv.URL, AutoTitle: boolPtr(false)},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.UserMessage.Content != "what makes jazz sound like jazz?" || !res.UserMessage.IsUserMessage {
		t.Fatalf("unexpected user message: %+v", res.UserMessage)
	}
	if res.AIResponseMessage.Content != "Jazz uses extended chords." {
		t.Fatalf("expected thinking stripped from response, got %q", res.AIResponseMessage.Content)
	}
	if res.AIResponseMessage.IsUserMessage {
		t.Fatalf("assistant message flagged as user message")
	}
	if res.FromCache {
		t.Fatalf("first turn must not be a cache hit")
	}
	if res.TitleJob != nil {
		t.Fatalf("title generation disabled but job started")
	}

	list, _ := stack.chats.Messages(ctx, chat.ID)
	if len(list) != 3 {
		t.Fatalf("expected welcome + user + assistant, got %d messages", len(list))
	}
}

func TestSendServesIdenticalConversationsFromCache(t *testing.T) {
	var calls int32
	srv := completionServer(t, "Cached answer.", &calls)
	defer srv.Close()

	stack := newMessageStack(t, srv.URL)
	ctx := context.Background()
	settings := models.APISettings{APIURL: srv.URL, AutoTitle: boolPtr(false)}

	first, _, _ := stack.chats.Create(ctx, "")
	second, _, _ := stack.chats.Create(ctx, "")

	resA, err := stack.messages.Send(ctx, SendInput{ChatID: first.ID, Content: "same question", Settings: settings})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	resB, err := stack.messages.Send(ctx, SendInput{ChatID: second.ID, Content: "same question", Settings: settings})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resA.FromCache {
		t.Fatalf("first conversation must miss the cache")
	}
	if !resB.FromCache {
		t.Fatalf("identical conversation must hit the cache")
	}
	if resB.AIResponseMessage.Content != resA.AIResponseMessage.Content {
		t.Fatalf("cache hit changed the response content")
	}
	if got := atomic.LoadInt32(&calls); got != 1 {
		t.Fatalf("expected a single provider call, got %d", got)
	}
}

func TestSendConvertsProviderFailureIntoMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	stack := newMessageStack(t, srv.URL)
	ctx := context.Background()
	chat, _, _ := stack.chats.Create(ctx, "")

	res, err := stack.messages.Send(ctx, SendInput{
		ChatID:   chat.ID,
		Content:  "hello?",
		Settings: models.APISettings{APIURL: srv.URL, AutoTitle: boolPtr(false)},
	})
	if err != nil {
		t.Fatalf("provider failure must not fail the turn: %v", err)
	}
	if !strings.Contains(res.AIResponseMessage.Content, "internal error") {
		t.Fatalf("expected server-failure message, got %q", res.AIResponseMessage.Content)
	}

	// 실패 메시지도 일반 어시스턴트 메시지로 저장된다.
	list, _ := stack.chats.Messages(ctx, chat.ID)
	if len(list) != 3 || list[2].Content != res.AIResponseMessage.Content {
		t.Fatalf("failure message not persisted: %+v", list)
	}
}

func TestSendStartsTitleJobOnFirstUserMessage(t *testing.T) {
	srv := completionServer(t, "music theory", nil)
	defer srv.Close()

	stack := newMessageStack(t, srv.URL)
	ctx := context.Background()
	chat, _, _ := stack.chats.Create(ctx, "")

	res, err := stack.messages.Send(ctx, SendInput{
		ChatID:   chat.ID,
		Content:  "teach me music theory",
		Settings: models.APISettings{APIURL: srv.URL},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.TitleJob == nil {
		t.Fatalf("expected a title job for the first user message")
	}
	select {
	case <-res.TitleJob.Done():
	case <-time.After(5 * time.Second):
		t.Fatalf("title job did not finish")
	}

	updated, _ := stack.chats.Get(ctx, chat.ID)
	if updated.Title != "Music Theory" {
		t.Fatalf("expected generated title, got %q", updated.Title)
	}

	// 두 번째 사용자 메시지부터는 제목 작업을 시작하지 않는다.
	res2, _ := stack.messages.Send(ctx, SendInput{
		ChatID:   chat.ID,
		Content:  "and what about harmony?",
		Settings: models.APISettings{APIURL: srv.URL},
	})
	if res2.TitleJob != nil {
		t.Fatalf("unexpected title job on a follow-up message")
	}
}

func TestSendUnknownChat(t *testing.T) {
	srv := completionServer(t, "hi", nil)
	defer srv.Close()

	stack := newMessageStack(t, srv.URL)
	_, err := stack.messages.Send(context.Background(), SendInput{
		ChatID:   "missing",
		Content:  "hello",
		Settings: models.APISettings{APIURL: srv.URL},
	})
	if !errors.Is(err, repositories.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSendWithWebSearchPrependsContext(t *testing.T) {
	wikiSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"pages": []map[string]any{
				{"id": 1, "key": "Jazz", "title": "Jazz", "description": "Music genre"},
			},
		})
	}))
	defer wikiSrv.Close()

	var sawSystem atomic.Bool
	llmSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Messages []llmclient.ChatMessage `json:"messages"`
		}
		json.NewDecoder(r.Body).Decode(&body)
		if len(body.Messages) > 0 && body.Messages[0].Role == "system" &&
			strings.Contains(body.Messages[0].Content, "Wikipedia search results") {
			sawSystem.Store(true)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]string{"content": "Jazz grew out of blues and ragtime."}},
			},
		})
	}))
	defer llmSrv.Close()

	stack := newMessageStack(t, wikiSrv.URL)
	ctx := context.Background()
	chat, _, _ := stack.chats.Create(ctx, "")

	res, err := stack.messages.Send(ctx, SendInput{
		ChatID:  chat.ID,
		Content: "tell me about #Jazz",
		Settings: models.APISettings{
			APIURL:    llmSrv.URL,
			WebSearch: true,
			AutoTitle: boolPtr(false),
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !sawSystem.Load() {
		t.Fatalf("expected a system message carrying Wikipedia context")
	}
	if res.AIResponseMessage.Content != "Jazz grew out of blues and ragtime." {
		t.Fatalf("unexpected response: %q", res.AIResponseMessage.Content)
	}
}
