package llmclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"chat-relay/cmd/api/httpclient"
	"chat-relay/config"
	"chat-relay/models"
)

// ChatMessage is one turn in an OpenAI-compatible conversation.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []ChatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
	Stream      bool          `json:"stream"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

const (
	defaultTemperature = 0.7
	defaultMaxTokens   = 2048
)

// Client calls OpenAI-compatible chat-completions endpoints across the three
// supported providers, with per-model timeouts and backoff retry.
type Client struct {
	httpClient  *http.Client
	providers   config.ProvidersConfig
	retrier     *Retrier
	baseTimeout time.Duration
}

func New(cfg config.AppConfig) *Client {
	return &Client{
		// 전역 Timeout 은 끄고 호출별 컨텍스트 타임아웃으로 제어한다.
		httpClient:  httpclient.New(httpclient.Config{Timeout: -1}),
		providers:   cfg.Providers,
		retrier:     NewRetrier(cfg.Retry.MaxRetries, cfg.Retry.InitialDelay()),
		baseTimeout: time.Duration(cfg.Providers.RequestTimeoutSeconds) * time.Second,
	}
}

// ChatCompletion sends the conversation to the provider resolved for
// modelName and returns the raw assistant content. Thinking spans are not
// stripped here; callers decide when display cleanup applies.
func (c *Client) ChatCompletion(ctx context.Context, modelName string, messages []ChatMessage, settings models.APISettings) (string, error) {
	model := LookupFor(modelName, settings)
	endpoint := ResolveEndpoint(model, settings, c.providers)

	payload := chatCompletionRequest{
		Model:       model.APIName,
		Messages:    messages,
		Temperature: settings.TemperatureOr(defaultTemperature),
		MaxTokens:   settings.MaxTokensOr(defaultMaxTokens),
		Stream:      false,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	timeout := RequestTimeout(model.APIName, c.baseTimeout)

	var content string
	op := func() error {
		// 타임아웃은 시도 단위로 적용한다. 타임아웃도 재시도 대상 오류이므로
		// 전체 재시도 시퀀스를 하나의 데드라인으로 묶지 않는다.
		attemptCtx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()

		// 소비된 바디 재사용을 피하기 위해 시도마다 요청을 새로 만든다.
		req, reqErr := http.NewRequestWithContext(attemptCtx, http.MethodPost, endpoint.URL, bytes.NewReader(body))
		if reqErr != nil {
			return &CallError{Kind: KindValidation, Err: reqErr}
		}
		for k, v := range endpoint.Headers {
			req.Header.Set(k, v)
		}

		resp, doErr := c.httpClient.Do(req)
		if doErr != nil {
			return transportError(doErr)
		}
		defer resp.Body.Close()

		const maxBodySize = 5 * 1024 * 1024
		respBody, readErr := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
		if readErr != nil {
			return transportError(readErr)
		}
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return statusError(resp.StatusCode, snippet(respBody, 512))
		}

		var out chatCompletionResponse
		if jsonErr := json.Unmarshal(respBody, &out); jsonErr != nil {
			return &CallError{Kind: KindUnknown, Err: fmt.Errorf("decode chat completion: %w", jsonErr)}
		}
		if len(out.Choices) == 0 {
			return &CallError{Kind: KindUnknown, Err: fmt.Errorf("empty choices in chat completion")}
		}
		content = out.Choices[0].Message.Content
		return nil
	}

	if err := c.retrier.Do(ctx, op); err != nil {
		return "", err
	}
	return content, nil
}

// LocalStatus 는 /api/health 가 보고하는 로컬 모델 서버 상태이다.
type LocalStatus struct {
	IsConnected bool
	LatencyMs   int64
	LastChecked time.Time
	Err         error
}

// CheckLocal probes the local provider's /models endpoint and measures
// round-trip latency. apiURL overrides the configured local URL.
func (c *Client) CheckLocal(ctx context.Context, apiURL string) LocalStatus {
	target := apiURL
	if target == "" {
		target = c.providers.LocalURL
	}
	target = strings.TrimSuffix(strings.TrimRight(target, "/"), "/chat/completions") + "/models"

	status := LocalStatus{LastChecked: time.Now()}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		status.Err = err
		return status
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		status.Err = err
		return status
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, io.LimitReader(resp.Body, 64*1024))

	status.LatencyMs = time.Since(start).Milliseconds()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		status.Err = statusError(resp.StatusCode, "")
		return status
	}
	status.IsConnected = true
	return status
}

func snippet(b []byte, n int) string {
	if len(b) > n {
		b = b[:n]
	}
	return string(b)
}
