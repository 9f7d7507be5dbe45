package llmclient

import (
	"strings"
	"time"

	"chat-relay/config"
	"chat-relay/models"
)

// Endpoint is the resolved outbound target for one model call.
type Endpoint struct {
	URL     string
	Headers map[string]string
}

// ResolveEndpoint 는 모델의 프로바이더에 따라 호출 URL 과 헤더를 구성한다.
// 키가 없는 경우에도 에러를 내지 않는다. 요청은 인증 없이 나가고
// 다운스트림에서 실패한다. (의도된 단순화이며 보안 경계가 아니다)
func ResolveEndpoint(model models.ModelConfig, settings models.APISettings, providers config.ProvidersConfig) Endpoint {
	headers := map[string]string{
		"Content-Type": "application/json",
	}

	switch model.Provider {
	case models.ProviderOpenRouter:
		base := settings.OpenRouterBaseURL
		if base == "" {
			base = providers.OpenRouterBaseURL
		}
		if settings.OpenRouterAPIKey != "" {
			headers["Authorization"] = "Bearer " + settings.OpenRouterAPIKey
			if providers.OpenRouterReferer != "" {
				headers["HTTP-Referer"] = providers.OpenRouterReferer
			}
			if providers.OpenRouterTitle != "" {
				headers["X-Title"] = providers.OpenRouterTitle
			}
		}
		return Endpoint{URL: strings.TrimRight(base, "/") + "/chat/completions", Headers: headers}

	case models.ProviderDeepseek:
		base := settings.DeepseekBaseURL
		if base == "" {
			base = providers.DeepseekBaseURL
		}
		if settings.DeepseekAPIKey != "" {
			headers["Authorization"] = "Bearer " + settings.DeepseekAPIKey
		}
		return Endpoint{URL: strings.TrimRight(base, "/") + "/chat/completions", Headers: headers}

	default: // local
		u := settings.APIURL
		if u == "" {
			u = providers.LocalURL
		}
		return Endpoint{URL: u, Headers: headers}
	}
}

// largeModelMarkers 는 모델 API 이름에서 큰 파라미터 수를 나타내는 토큰들이다.
// 이 토큰이 보이면 타임아웃을 2배로 잡는다.
var largeModelMarkers = []string{"12b", "14b", "27b", "30b", "32b", "70b", "72b", "235b"}

// RequestTimeout returns the per-call timeout for a model, doubling the base
// duration for models whose name carries a large parameter-count marker.
func RequestTimeout(apiName string, base time.Duration) time.Duration {
	lower := strings.ToLower(apiName)
	for _, marker := range largeModelMarkers {
		if strings.Contains(lower, marker) {
			return base * 2
		}
	}
	return base
}
