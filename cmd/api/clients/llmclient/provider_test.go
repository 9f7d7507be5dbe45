package llmclient

import (
	"strings"
	"testing"
	"time"

	"chat-relay/config"
	"chat-relay/models"
)

var testProviders = config.ProvidersConfig{
	LocalURL:          "http://127.0.0.1:1234/v1/chat/completions",
	OpenRouterBaseURL: "https://openrouter.ai/api/v1",
	DeepseekBaseURL:   "https://api.deepseek.com",
	OpenRouterReferer: "https://chat-relay.local",
	OpenRouterTitle:   "chat-relay",
}

func TestResolveEndpointForAllRegisteredModels(t *testing.T) {
	settings := models.APISettings{
		OpenRouterAPIKey: "or-key",
		DeepseekAPIKey:   "ds-key",
	}

	for _, m := range Registry() {
		endpoint := ResolveEndpoint(m, settings, testProviders)

		if !strings.Contains(endpoint.URL, "/chat/completions") {
			t.Fatalf("model %q: expected URL containing /chat/completions, got %q", m.DisplayName, endpoint.URL)
		}
		if endpoint.Headers["Content-Type"] != "application/json" {
			t.Fatalf("model %q: missing Content-Type header", m.DisplayName)
		}
		if m.Provider == models.ProviderOpenRouter || m.Provider == models.ProviderDeepseek {
			if _, ok := endpoint.Headers["Authorization"]; !ok {
				t.Fatalf("model %q: expected Authorization header with key present", m.DisplayName)
			}
		}
	}
}

func TestResolveEndpointMissingKeyStaysUnauthenticated(t *testing.T) {
	m := Lookup("DeepSeek R1 (free)")
	endpoint := ResolveEndpoint(m, models.APISettings{}, testProviders)

	if _, ok := endpoint.Headers["Authorization"]; ok {
		t.Fatalf("expected no Authorization header without a key")
	}
	if endpoint.URL != "https://openrouter.ai/api/v1/chat/completions" {
		t.Fatalf("unexpected URL %q", endpoint.URL)
	}
}

func TestResolveEndpointLocalOverride(t *testing.T) {
	m := Lookup("Qwen3 0.6b")
	endpoint := ResolveEndpoint(m, models.APISettings{APIURL: "http://10.0.0.5:1234/v1/chat/completions"}, testProviders)

	if endpoint.URL != "http://10.0.0.5:1234/v1/chat/completions" {
		t.Fatalf("expected settings override to win, got %q", endpoint.URL)
	}
	if _, ok := endpoint.Headers["Authorization"]; ok {
		t.Fatalf("local provider must not carry auth headers")
	}
}

func TestLookupForPrefersSettingsDefaultModel(t *testing.T) {
	m := LookupFor("", models.APISettings{DefaultModel: "Deepseek Chat"})
	if m.Provider != models.ProviderDeepseek || m.APIName != "deepseek-chat" {
		t.Fatalf("expected configured default model, got %+v", m)
	}

	// 설정에도 기본 모델이 없으면 내장 기본값을 쓴다.
	m = LookupFor("", models.APISettings{})
	if m.DisplayName != DefaultModelName {
		t.Fatalf("expected built-in default, got %q", m.DisplayName)
	}

	// 명시된 이름은 설정보다 우선한다.
	m = LookupFor("Qwen3 4b", models.APISettings{DefaultModel: "Deepseek Chat"})
	if m.DisplayName != "Qwen3 4b" {
		t.Fatalf("expected explicit name to win, got %q", m.DisplayName)
	}
}

func TestLookupUnknownModelFallsBackToLocal(t *testing.T) {
	m := Lookup("my-local-model")
	if m.Provider != models.ProviderLocal {
		t.Fatalf("expected local provider fallback, got %q", m.Provider)
	}
	if m.APIName != "my-local-model" {
		t.Fatalf("expected verbatim api name, got %q", m.APIName)
	}
}

func TestRequestTimeoutDoublesForLargeModels(t *testing.T) {
	base := 30 * time.Second

	testCases := []struct {
		apiName string
		want    time.Duration
	}{
		{"qwen3-0.6b", base},
		{"qwen3-4b", base},
		{"gemma-3-12b-it", 2 * base},
		{"meta-llama/llama-3.3-70b-instruct:free", 2 * base},
		{"qwen3-30b-a3b", 2 * base},
	}

	for _, tc := range testCases {
		if got := RequestTimeout(tc.apiName, base); got != tc.want {
			t.Fatalf("RequestTimeout(%q) = %s, want %s", tc.apiName, got, tc.want)
		}
	}
}
