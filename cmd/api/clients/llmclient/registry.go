package llmclient

import "chat-relay/models"

// DefaultModelName is used when a request carries no model name.
const DefaultModelName = "Qwen3 0.6b"

// registry maps model display names to provider configuration.
// Static and immutable; lookups on unknown names fall back to a local entry
// using the given name verbatim so locally loaded models keep working.
var registry = []models.ModelConfig{
	{DisplayName: "Qwen3 0.6b", APIName: "qwen3-0.6b", Provider: models.ProviderLocal, SupportsWeb: true},
	{DisplayName: "Qwen3 4b", APIName: "qwen3-4b", Provider: models.ProviderLocal, SupportsWeb: true},
	{DisplayName: "Qwen3 8b", APIName: "qwen3-8b", Provider: models.ProviderLocal, SupportsWeb: true},
	{DisplayName: "Qwen3 30b a3b", APIName: "qwen3-30b-a3b", Provider: models.ProviderLocal, SupportsWeb: true},
	{DisplayName: "Gemma 3 4b", APIName: "gemma-3-4b-it", Provider: models.ProviderLocal, SupportsImages: true, SupportsWeb: true},
	{DisplayName: "Gemma 3 12b", APIName: "gemma-3-12b-it", Provider: models.ProviderLocal, SupportsImages: true, SupportsWeb: true},

	{DisplayName: "DeepSeek R1 (free)", APIName: "deepseek/deepseek-r1:free", Provider: models.ProviderOpenRouter, SupportsWeb: true},
	{DisplayName: "Llama 3.3 70b (free)", APIName: "meta-llama/llama-3.3-70b-instruct:free", Provider: models.ProviderOpenRouter, SupportsWeb: true},
	{DisplayName: "Gemini 2.0 Flash (free)", APIName: "google/gemini-2.0-flash-exp:free", Provider: models.ProviderOpenRouter, SupportsImages: true, SupportsWeb: true},

	{DisplayName: "Deepseek Chat", APIName: "deepseek-chat", Provider: models.ProviderDeepseek, SupportsWeb: true},
	{DisplayName: "Deepseek Reasoner", APIName: "deepseek-reasoner", Provider: models.ProviderDeepseek, SupportsWeb: true},
}

// Lookup resolves a display name to its registry entry.
func Lookup(displayName string) models.ModelConfig {
	if displayName == "" {
		displayName = DefaultModelName
	}
	for _, m := range registry {
		if m.DisplayName == displayName {
			return m
		}
	}
	return models.ModelConfig{
		DisplayName: displayName,
		APIName:     displayName,
		Provider:    models.ProviderLocal,
		SupportsWeb: true,
	}
}

// LookupFor resolves the effective model for one request. An empty name falls
// back to the user's configured default model before the built-in default.
func LookupFor(displayName string, settings models.APISettings) models.ModelConfig {
	if displayName == "" {
		displayName = settings.DefaultModel
	}
	return Lookup(displayName)
}

// Registry returns a copy of all known models.
func Registry() []models.ModelConfig {
	out := make([]models.ModelConfig, len(registry))
	copy(out, registry)
	return out
}
