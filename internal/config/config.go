// README: Config loader with env defaults for HTTP, Maps, and AI settings.
package config

import (
	"fmt"
	"os"
	"strconv"
)

const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

type Config struct {
	HTTP struct {
		Addr string
	}
	Maps struct {
		APIKey string
		// MaxPlaces bounds how many search results a plan considers.
		// It also determines which pair of places route lookup sees.
		MaxPlaces int
	}
	AI struct {
		Provider  string
		Model     string
		OpenAIKey string
		GeminiKey string
	}
}

func Load() (Config, error) {
	var cfg Config
	cfg.HTTP.Addr = envOrDefault("TRIPWISE_HTTP_ADDR", ":8080")
	cfg.Maps.MaxPlaces = envOrDefaultInt("TRIPWISE_MAX_PLACES", 5)
	cfg.AI.Provider = envOrDefault("TRIPWISE_AI_PROVIDER", ProviderOpenAI)

	cfg.Maps.APIKey = os.Getenv("GOOGLE_MAPS_API_KEY")
	if cfg.Maps.APIKey == "" {
		return cfg, fmt.Errorf("environment variable GOOGLE_MAPS_API_KEY is required")
	}

	switch cfg.AI.Provider {
	case ProviderOpenAI:
		cfg.AI.Model = envOrDefault("TRIPWISE_AI_MODEL", "gpt-4o-mini")
		cfg.AI.OpenAIKey = os.Getenv("OPENAI_API_KEY")
		if cfg.AI.OpenAIKey == "" {
			return cfg, fmt.Errorf("environment variable OPENAI_API_KEY is required")
		}
	case ProviderGemini:
		cfg.AI.Model = envOrDefault("TRIPWISE_AI_MODEL", "gemini-2.0-flash")
		cfg.AI.GeminiKey = os.Getenv("GEMINI_API_KEY")
		if cfg.AI.GeminiKey == "" {
			return cfg, fmt.Errorf("environment variable GEMINI_API_KEY is required")
		}
	default:
		return cfg, fmt.Errorf("unknown TRIPWISE_AI_PROVIDER %q (want %q or %q)", cfg.AI.Provider, ProviderOpenAI, ProviderGemini)
	}

	if cfg.Maps.MaxPlaces < 1 {
		return cfg, fmt.Errorf("TRIPWISE_MAX_PLACES must be at least 1")
	}

	return cfg, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envOrDefaultInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
