package services

import (
	"encoding/json"

	"chat-relay/cache"
	"chat-relay/models"
)

// SettingsService 는 요청에 실려 온 설정을 사용 가능한 형태로 보정한다.
// 검증 에러를 내지 않고 말이 안 되는 값만 미지정으로 되돌린다.
// 브라우저 클라이언트는 매 요청 동일한 설정 객체를 다시 보내므로 보정 결과를
// 페이로드 해시 기준으로 캐싱한다.
type SettingsService struct {
	cache *cache.Cache
}

func NewSettingsService(c *cache.Cache) *SettingsService {
	return &SettingsService{cache: c}
}

// Resolve coerces raw settings. A nil payload resolves to the zero settings
// (all defaults apply downstream).
func (s *SettingsService) Resolve(raw *models.APISettings) models.APISettings {
	if raw == nil {
		return models.APISettings{}
	}

	var key string
	if s.cache != nil {
		if b, err := json.Marshal(raw); err == nil {
			key = cache.Key("settings", string(b))
			if v, ok := s.cache.Get(key); ok {
				if settings, ok := v.(models.APISettings); ok {
					return settings
				}
			}
		}
	}

	out := *raw
	if out.Temperature != nil && (*out.Temperature < 0 || *out.Temperature > 2) {
		out.Temperature = nil
	}
	if out.MaxTokens != nil && *out.MaxTokens <= 0 {
		out.MaxTokens = nil
	}
	if out.AnimationSpeed < 0 {
		out.AnimationSpeed = 0
	}

	if s.cache != nil && key != "" {
		s.cache.Set(key, out)
	}
	return out
}
