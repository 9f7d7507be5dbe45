package models

// Provider identifies which upstream backend serves a model.
type Provider string

const (
	ProviderLocal      Provider = "local"
	ProviderOpenRouter Provider = "openrouter"
	ProviderDeepseek   Provider = "deepseek"
)

// ModelConfig is a static registry entry mapping a display name to the
// technical API name and provider of a model, with capability flags.
type ModelConfig struct {
	DisplayName    string   `json:"displayName"`
	APIName        string   `json:"apiName"`
	Provider       Provider `json:"provider"`
	SupportsImages bool     `json:"supportsImages"`
	SupportsWeb    bool     `json:"supportsWeb"`
}
