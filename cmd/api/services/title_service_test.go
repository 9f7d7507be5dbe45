package services

import (
	"context"
	"testing"
	"time"

	"chat-relay/cache"
	"chat-relay/cmd/api/clients/llmclient"
	"chat-relay/models"
	"chat-relay/repositories"
)

func newTitleEnv(t *testing.T) (*TitleService, *ChatService, *repositories.ChatRepository) {
	t.Helper()
	store := repositories.NewStore()
	chatRepo := repositories.NewChatRepository(store)
	msgRepo := repositories.NewMessageRepository(store)

	metaCache := cache.New(10, time.Minute, 0)
	t.Cleanup(metaCache.Stop)

	chats := NewChatService(chatRepo, msgRepo, metaCache)
	text := NewTextService(llmclient.New(testLLMConfig()))

	svc := NewTitleService(text, chats)
	svc.startDelay = time.Millisecond
	return svc, chats, chatRepo
}

func TestSanitizeTitle(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"capitalizes words", "jazz improvisation basics", "Jazz Improvisation Basics"},
		{"trims surrounding quotes", `"Music Theory"`, "Music Theory"},
		{"truncates long titles", "a very long conversation title that keeps going", "A Very Long Conversation Title..."},
		{"empty", "   ", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeTitle(tt.title); got != tt.want {
				t.Fatalf("SanitizeTitle(%q) = %q, want %q", tt.title, got, tt.want)
			}
		})
	}
}

func TestFallbackTitle(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    string
	}{
		{"first significant words", "how do I learn jazz piano", "how learn jazz"},
		{"short words skipped", "is it ok to go", models.DefaultChatTitle},
		{"punctuation trimmed", "Hello, world! Anyone there?", "Hello world Anyone"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FallbackTitle(tt.message); got != tt.want {
				t.Fatalf("FallbackTitle(%q) = %q, want %q", tt.message, got, tt.want)
			}
		})
	}
}

func TestGenerateUpdatesChatTitle(t *testing.T) {
	srv := completionServer(t, "jazz theory basics", nil)
	defer srv.Close()

	svc, chats, chatRepo := newTitleEnv(t)
	chat, err := chatRepo.CreateChat(context.Background(), 1, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	job := svc.Generate(chat.ID, "teach me jazz theory", "", models.APISettings{APIURL: srv.URL})
	select {
	case <-job.Done():
	case <-time.After(5 * time.Second):
		t.Fatalf("title job did not finish")
	}
	if job.Err != nil {
		t.Fatalf("unexpected job error: %v", job.Err)
	}
	if job.Title != "Jazz Theory Basics" {
		t.Fatalf("unexpected title %q", job.Title)
	}

	updated, _ := chats.Get(context.Background(), chat.ID)
	if updated.Title != "Jazz Theory Basics" {
		t.Fatalf("chat title not persisted, got %q", updated.Title)
	}
}

func TestGenerateRefreshesCachedChatMetadata(t *testing.T) {
	srv := completionServer(t, "jazz theory basics", nil)
	defer srv.Close()

	svc, chats, chatRepo := newTitleEnv(t)
	ctx := context.Background()
	chat, _ := chatRepo.CreateChat(ctx, 1, "")

	// 제목 작업 전에 조회해 메타 캐시에 기본 제목이 올라간 상태를 만든다.
	cached, err := chats.Get(ctx, chat.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cached.Title != models.DefaultChatTitle {
		t.Fatalf("expected default title before the job, got %q", cached.Title)
	}

	job := svc.Generate(chat.ID, "teach me jazz theory", "", models.APISettings{APIURL: srv.URL})
	select {
	case <-job.Done():
	case <-time.After(5 * time.Second):
		t.Fatalf("title job did not finish")
	}

	// 캐시를 거치는 조회도 새 제목을 돌려줘야 한다.
	after, err := chats.Get(ctx, chat.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if after.Title != "Jazz Theory Basics" {
		t.Fatalf("cached chat still carries stale title %q", after.Title)
	}

	repoChat, _ := chatRepo.GetChat(ctx, chat.ID)
	if repoChat.Title != after.Title {
		t.Fatalf("cache and repository disagree: %q vs %q", after.Title, repoChat.Title)
	}
}

func TestGenerateFallsBackOnModelFailure(t *testing.T) {
	svc, chats, chatRepo := newTitleEnv(t)
	chat, _ := chatRepo.CreateChat(context.Background(), 1, "")

	// 닫힌 포트: 모델 호출은 실패하고 폴백 제목이 적용되어야 한다.
	job := svc.Generate(chat.ID, "explain modal interchange chords", "", models.APISettings{APIURL: "http://127.0.0.1:1/v1/chat/completions"})
	select {
	case <-job.Done():
	case <-time.After(10 * time.Second):
		t.Fatalf("title job did not finish")
	}

	// 폴백 제목이 커밋되었으므로 작업은 성공으로 끝난다.
	if job.Err != nil {
		t.Fatalf("committed fallback title must not report an error, got %v", job.Err)
	}
	if job.Title != "Explain Modal Interchange" {
		t.Fatalf("unexpected job title %q", job.Title)
	}

	updated, _ := chats.Get(context.Background(), chat.ID)
	if updated.Title != "Explain Modal Interchange" {
		t.Fatalf("expected sanitized fallback title, got %q", updated.Title)
	}
}

func TestGenerateDeduplicatesPerChat(t *testing.T) {
	srv := completionServer(t, "some title", nil)
	defer srv.Close()

	svc, _, chatRepo := newTitleEnv(t)
	svc.startDelay = 50 * time.Millisecond

	chat, _ := chatRepo.CreateChat(context.Background(), 1, "")

	first := svc.Generate(chat.ID, "hello", "", models.APISettings{APIURL: srv.URL})
	second := svc.Generate(chat.ID, "hello again", "", models.APISettings{APIURL: srv.URL})
	if first != second {
		t.Fatalf("expected the in-flight job to be reused")
	}
	<-first.Done()
}
