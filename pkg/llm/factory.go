package llm

import (
	"context"
	"fmt"
	"strings"
)

const (
	ProviderGemini    = "gemini"
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
	ProviderEino      = "eino"
)

type Config struct {
	Provider string
	Model    string
	BaseURL  string
}

// ProviderKeyEnv is the provider specific variable consulted when the
// generic API_KEY is unset.
func ProviderKeyEnv(provider string) string {
	switch normalizeProvider(provider) {
	case ProviderOpenAI:
		return "OPENAI_API_KEY"
	case ProviderAnthropic:
		return "ANTHROPIC_API_KEY"
	case ProviderEino:
		return "LLM_API_KEY"
	default:
		return "GEMINI_API_KEY"
	}
}

// NewGenerator builds the generator for cfg.Provider using apiKey.
func NewGenerator(ctx context.Context, cfg Config, apiKey string) (Generator, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, &ConfigurationError{Reason: "API key is not set"}
	}

	switch normalizeProvider(cfg.Provider) {
	case ProviderGemini:
		return NewGeminiClient(ctx, apiKey, cfg.Model, cfg.BaseURL)
	case ProviderOpenAI:
		return NewOpenAIClient(apiKey, cfg.Model, cfg.BaseURL), nil
	case ProviderAnthropic:
		return NewAnthropicClient(apiKey, cfg.Model, cfg.BaseURL), nil
	case ProviderEino:
		return NewEinoClient(ctx, apiKey, cfg.Model, cfg.BaseURL)
	default:
		return nil, &ConfigurationError{Reason: fmt.Sprintf("unknown provider %q", cfg.Provider)}
	}
}

func normalizeProvider(p string) string {
	p = strings.ToLower(strings.TrimSpace(p))
	if p == "" {
		return ProviderGemini
	}
	return p
}
