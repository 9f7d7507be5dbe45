package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const ENV_FILE = ".env"
const CONFIG_FILE = "config.yaml"

type AppConfig struct {
	Logging   LoggingConfig   `yaml:"logging"`
	Server    ServerConfig    `yaml:"server"`
	Providers ProvidersConfig `yaml:"providers"`
	Retry     RetryConfig     `yaml:"retry"`
	Cache     CacheConfig     `yaml:"cache"`
	Wikipedia WikipediaConfig `yaml:"wikipedia"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type ServerConfig struct {
	Port int `yaml:"port"`
}

// ProvidersConfig 는 모델 공급자별 기본 엔드포인트 설정이다.
// 사용자 설정(APISettings)이 비어 있을 때만 이 값이 사용된다.
type ProvidersConfig struct {
	// LocalURL 은 로컬 모델 서버(LM Studio 등)의 chat/completions 전체 URL 이다.
	LocalURL string `yaml:"local_url"`

	OpenRouterBaseURL string `yaml:"openrouter_base_url"`
	DeepseekBaseURL   string `yaml:"deepseek_base_url"`

	// OpenRouter 가 권장하는 HTTP-Referer / X-Title 식별 헤더 값.
	OpenRouterReferer string `yaml:"openrouter_referer"`
	OpenRouterTitle   string `yaml:"openrouter_title"`

	// RequestTimeoutSeconds 는 모델 호출 1회에 대한 기본 타임아웃이다.
	// 파라미터 수가 큰 모델(12b 이상)은 이 값의 2배를 사용한다.
	RequestTimeoutSeconds int `yaml:"request_timeout_seconds"`
}

// RetryConfig 는 모델 호출 재시도 정책이다.
type RetryConfig struct {
	MaxRetries         int `yaml:"max_retries"`
	InitialDelayMillis int `yaml:"initial_delay_millis"`
}

type CacheConfig struct {
	Responses CachePolicy `yaml:"responses"`
	ChatMeta  CachePolicy `yaml:"chat_meta"`
	Settings  CachePolicy `yaml:"settings"`
}

type CachePolicy struct {
	MaxSize    int `yaml:"max_size"`
	TTLMinutes int `yaml:"ttl_minutes"`
}

// WikipediaConfig 는 컨텍스트 증강에 사용하는 위키피디아 검색 설정이다.
type WikipediaConfig struct {
	// BaseURL 은 위키피디아 REST API 베이스이다. 비어 있으면 영문 위키피디아를 사용한다.
	BaseURL string `yaml:"base_url"`

	// SearchDelayMillis 는 키워드당 검색 사이의 지연이다. (외부 레이트 리밋 회피)
	SearchDelayMillis int `yaml:"search_delay_millis"`

	// ResultLimit 은 전체 검색 결과 상한이다.
	ResultLimit int `yaml:"result_limit"`
}

func (r RetryConfig) InitialDelay() time.Duration {
	return time.Duration(r.InitialDelayMillis) * time.Millisecond
}

func (w WikipediaConfig) SearchDelay() time.Duration {
	return time.Duration(w.SearchDelayMillis) * time.Millisecond
}

func (p CachePolicy) TTL() time.Duration {
	return time.Duration(p.TTLMinutes) * time.Minute
}

var config *AppConfig

func InitApp() {
	// load environment variables
	godotenv.Load(filepath.Join(GetBasePath(), ENV_FILE))

	// load configuration file
	data, err := os.ReadFile(filepath.Join(GetBasePath(), CONFIG_FILE))
	if err != nil {
		panic(err)
	}

	var c AppConfig
	err = yaml.Unmarshal(data, &c)
	if err != nil {
		panic(err)
	}
	applyDefaults(&c)
	config = &c
}

func GetConfig() AppConfig {
	if config == nil {
		InitApp()
	}

	return *config
}

func applyDefaults(c *AppConfig) {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Providers.LocalURL == "" {
		c.Providers.LocalURL = "http://127.0.0.1:1234/v1/chat/completions"
	}
	if c.Providers.OpenRouterBaseURL == "" {
		c.Providers.OpenRouterBaseURL = "https://openrouter.ai/api/v1"
	}
	if c.Providers.DeepseekBaseURL == "" {
		c.Providers.DeepseekBaseURL = "https://api.deepseek.com"
	}
	if c.Providers.RequestTimeoutSeconds == 0 {
		c.Providers.RequestTimeoutSeconds = 60
	}
	if c.Retry.MaxRetries == 0 {
		c.Retry.MaxRetries = 3
	}
	if c.Retry.InitialDelayMillis == 0 {
		c.Retry.InitialDelayMillis = 1000
	}
	if c.Cache.Responses.MaxSize == 0 {
		c.Cache.Responses = CachePolicy{MaxSize: 100, TTLMinutes: 30}
	}
	if c.Cache.ChatMeta.MaxSize == 0 {
		c.Cache.ChatMeta = CachePolicy{MaxSize: 500, TTLMinutes: 10}
	}
	if c.Cache.Settings.MaxSize == 0 {
		c.Cache.Settings = CachePolicy{MaxSize: 50, TTLMinutes: 60}
	}
	if c.Wikipedia.BaseURL == "" {
		c.Wikipedia.BaseURL = "https://en.wikipedia.org/w/rest.php/v1"
	}
	if c.Wikipedia.SearchDelayMillis == 0 {
		c.Wikipedia.SearchDelayMillis = 500
	}
	if c.Wikipedia.ResultLimit == 0 {
		c.Wikipedia.ResultLimit = 6
	}
}

func GetBasePath() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	dir := cwd
	for {
		cfgPath := filepath.Join(dir, CONFIG_FILE)
		if info, err := os.Stat(cfgPath); err == nil && !info.IsDir() {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}
