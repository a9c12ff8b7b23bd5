package config

import (
	"time"

	"github.com/sabrebluedobie/Quickspin-API/pkg/config"
	"github.com/sabrebluedobie/Quickspin-API/pkg/llm"
)

// Default origins allowed to call the API cross-origin.
var defaultAllowedOrigins = []string{
	"https://bluedobiedev.com",
	"https://www.bluedobiedev.com",
	"https://sabrebluedobie.github.io",
}

// Config stores environment configuration for QuickSpin.
type Config struct {
	Port              string
	AllowedOrigins    []string
	ContactURL        string
	VariantCount      int
	GenerationTimeout time.Duration
	LLM               llm.Config
}

// LoadConfig loads the QuickSpin configuration from environment variables.
func LoadConfig() Config {
	return Config{
		Port:              config.GetEnv("PORT", "18040"),
		AllowedOrigins:    config.GetEnvList("CORS_ALLOWED_ORIGINS", defaultAllowedOrigins),
		ContactURL:        config.GetEnv("CONTACT_URL", "https://bluedobiedev.com/contact"),
		VariantCount:      config.GetEnvInt("QUICKSPIN_VARIANTS", 3),
		GenerationTimeout: parseDuration(config.GetEnv("QUICKSPIN_GENERATION_TIMEOUT", "30s"), 30*time.Second),
		LLM:               llm.LoadConfig(),
	}
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return fallback
	}
	return d
}
