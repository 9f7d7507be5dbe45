package models

// APISettings 는 클라이언트가 요청마다 실어 보내는 사용자 설정이다.
// 브라우저 로컬 스토리지에 저장되며 서버는 타입 강제 이상의 검증을 하지 않는다.
// 포인터 필드는 "미지정"과 제로값을 구분하기 위한 것이다.
type APISettings struct {
	Temperature *float64 `json:"temperature,omitempty"`
	MaxTokens   *int     `json:"maxTokens,omitempty"`
	Stream      bool     `json:"stream,omitempty"`
	WebSearch   bool     `json:"webSearchEnabled,omitempty"`
	AutoTitle   *bool    `json:"autoTitleEnabled,omitempty"`

	// AnimationSpeed 는 클라이언트 전용 표시 설정이지만 설정 객체를 통째로
	// 주고받기 때문에 필드 자체는 보존한다.
	AnimationSpeed int `json:"animationSpeed,omitempty"`

	// APIURL 은 local 프로바이더의 chat/completions 전체 URL 오버라이드이다.
	APIURL string `json:"apiUrl,omitempty"`

	OpenRouterAPIKey  string `json:"openRouterApiKey,omitempty"`
	OpenRouterBaseURL string `json:"openRouterBaseUrl,omitempty"`
	DeepseekAPIKey    string `json:"deepseekApiKey,omitempty"`
	DeepseekBaseURL   string `json:"deepseekBaseUrl,omitempty"`

	DefaultModel string `json:"defaultModel,omitempty"`
}

// TemperatureOr 는 temperature 가 지정되지 않았을 때 기본값을 돌려준다.
func (s APISettings) TemperatureOr(def float64) float64 {
	if s.Temperature == nil {
		return def
	}
	return *s.Temperature
}

// MaxTokensOr 는 maxTokens 가 지정되지 않았을 때 기본값을 돌려준다.
func (s APISettings) MaxTokensOr(def int) int {
	if s.MaxTokens == nil {
		return def
	}
	return *s.MaxTokens
}

// AutoTitleEnabled 는 자동 제목 생성 여부를 돌려준다. 기본값은 켜짐이다.
func (s APISettings) AutoTitleEnabled() bool {
	if s.AutoTitle == nil {
		return true
	}
	return *s.AutoTitle
}
