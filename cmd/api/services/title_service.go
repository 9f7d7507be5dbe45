package services

import (
	"context"
	"strings"
	"sync"
	"time"
	"unicode"

	"chat-relay/cmd/internal/logger"
	"chat-relay/models"
)

const titlePrompt = `Produce a short title (3 words maximum) for a conversation that starts with the following message. Respond with ONLY the title, no quotes, no punctuation at the end.`

const maxTitleLength = 30

// TitleJob 은 제목 생성 백그라운드 작업 1건의 핸들이다.
// 분리된 타이머 대신 명시적인 완료 신호를 제공해 테스트가 결정적으로
// 기다릴 수 있게 한다.
type TitleJob struct {
	ChatID string
	done   chan struct{}

	// Title is the committed chat title. Err is set only when no title could
	// be committed; a model failure recovered by the fallback title is not an
	// error from the caller's perspective.
	Title string
	Err   error
}

// Done is closed when the job has finished (success or fallback applied).
func (j *TitleJob) Done() <-chan struct{} { return j.done }

// TitleService generates chat titles in the background off the first user
// message of a chat whose title is still the default sentinel.
type TitleService struct {
	text  *TextService
	chats *ChatService

	// startDelay 는 메시지 커밋이 끝난 뒤 제목 생성이 시작되도록 하는
	// 짧은 지연이다.
	startDelay time.Duration

	mu       sync.Mutex
	inFlight map[string]*TitleJob
}

func NewTitleService(text *TextService, chats *ChatService) *TitleService {
	return &TitleService{
		text:       text,
		chats:      chats,
		startDelay: 100 * time.Millisecond,
		inFlight:   make(map[string]*TitleJob),
	}
}

// Generate starts a background title job for the chat. A chat never gets two
// concurrent jobs; the existing job handle is returned instead.
func (s *TitleService) Generate(chatID, firstMessage, modelName string, settings models.APISettings) *TitleJob {
	s.mu.Lock()
	if job, ok := s.inFlight[chatID]; ok {
		s.mu.Unlock()
		return job
	}
	job := &TitleJob{ChatID: chatID, done: make(chan struct{})}
	s.inFlight[chatID] = job
	s.mu.Unlock()

	go s.run(job, firstMessage, modelName, settings)
	return job
}

func (s *TitleService) run(job *TitleJob, firstMessage, modelName string, settings models.APISettings) {
	defer func() {
		s.mu.Lock()
		delete(s.inFlight, job.ChatID)
		s.mu.Unlock()
		close(job.done)
	}()

	time.Sleep(s.startDelay)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	prompt := titlePrompt + "\n\n" + firstMessage
	title, err := s.text.ImproveText(ctx, prompt, modelName, settings)
	if err != nil || strings.TrimSpace(title) == "" {
		if err != nil {
			logger.WarnWithFields("title generation call failed, using fallback", logger.Fields{
				"chat_id": job.ChatID,
				"error":   err.Error(),
			})
		}
		title = FallbackTitle(firstMessage)
	}
	title = SanitizeTitle(title)
	if title == "" {
		title = models.DefaultChatTitle
	}

	// Rename 을 경유해 메타 캐시도 함께 갱신한다. 리포지토리에 직접 쓰면
	// GET /api/chats/:id 가 TTL 동안 이전 제목을 돌려준다.
	chat, updateErr := s.chats.Rename(ctx, job.ChatID, title)
	if updateErr != nil {
		job.Err = updateErr
		return
	}
	job.Title = chat.Title
}

// SanitizeTitle capitalizes each word and truncates to 30 characters with an
// ellipsis.
func SanitizeTitle(title string) string {
	title = strings.TrimSpace(strings.Trim(strings.TrimSpace(title), `"'`))
	if title == "" {
		return ""
	}

	words := strings.Fields(title)
	for i, w := range words {
		runes := []rune(w)
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	title = strings.Join(words, " ")

	runes := []rune(title)
	if len(runes) > maxTitleLength {
		title = strings.TrimSpace(string(runes[:maxTitleLength])) + "..."
	}
	return title
}

// FallbackTitle extracts the first one to three significant words (length
// greater than two) from the raw message.
func FallbackTitle(message string) string {
	var words []string
	for _, w := range strings.Fields(message) {
		w = strings.Trim(w, `.,!?;:"'()`)
		if len(w) > 2 {
			words = append(words, w)
		}
		if len(words) >= 3 {
			break
		}
	}
	if len(words) == 0 {
		return models.DefaultChatTitle
	}
	return strings.Join(words, " ")
}
