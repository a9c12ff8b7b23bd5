package llm

import (
	"fmt"
	"strings"

	"github.com/sabrebluedobie/Quickspin-API/pkg/config"
)

type Config struct {
	Provider    string
	Model       string
	APIKey      string
	APIURL      string
	Temperature float64
	MaxTokens   int
	// JSONMode asks the backend for structured output where the API
	// supports it (OpenAI-compatible endpoints only).
	JSONMode bool
}

func LoadConfig() Config {
	return Config{
		Provider:    config.GetEnv("LLM_PROVIDER", "openai"),
		Model:       config.GetEnv("LLM_MODEL", "gpt-4o-mini"),
		APIKey:      config.GetEnv("LLM_API_KEY", config.GetEnv("OPENAI_API_KEY", "")),
		APIURL:      config.GetEnv("LLM_API_URL", ""),
		Temperature: config.GetEnvFloat("LLM_TEMPERATURE", 0.8),
		MaxTokens:   config.GetEnvInt("LLM_MAX_TOKENS", 800),
		JSONMode:    config.GetEnvBool("LLM_JSON_MODE", true),
	}
}

func NewProvider(cfg Config) (Provider, error) {
	switch strings.ToLower(cfg.Provider) {
	case "openai":
		return NewOpenAIProvider(cfg), nil
	case "anthropic":
		return NewAnthropicProvider(cfg), nil
	case "ollama":
		return NewOllamaProvider(cfg), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider %q", cfg.Provider)
	}
}
