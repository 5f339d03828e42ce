package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Port   string `env:"PORT" envDefault:"5000"`
	APIKey string `env:"LEGALUNA_API_KEY" envDefault:"default-api-key-for-development"`

	Client ClientConfig
	LLM    LLMConfig

	DatabaseURL       string `env:"DATABASE_URL"`
	RedisURL          string `env:"REDIS_URL"`
	DocsDir           string `env:"DOCS_DIR" envDefault:"legal_docs"`
	LibreTranslateURL string `env:"LIBRETRANSLATE_URL"`
	LibreTranslateKey string `env:"LIBRETRANSLATE_API_KEY"`

	CacheSize int           `env:"CACHE_SIZE" envDefault:"512"`
	CacheTTL  time.Duration `env:"CACHE_TTL" envDefault:"1h"`

	RateLimitRPS   float64 `env:"RATE_LIMIT_RPS" envDefault:"5"`
	RateLimitBurst int     `env:"RATE_LIMIT_BURST" envDefault:"10"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`
}

// ClientConfig configures the chat client.
type ClientConfig struct {
	Endpoint string `env:"LEGALUNA_ENDPOINT" envDefault:"http://localhost:5000/api/chat"`
	PageURL  string `env:"LEGALUNA_PAGE_URL"`
	Language string `env:"LEGALUNA_LANG" envDefault:"en"`
	APIKey   string `env:"LEGALUNA_API_KEY" envDefault:"default-api-key-for-development"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// LLMConfig lists the chat model providers in the order they are tried.
type LLMConfig struct {
	Providers []string `env:"LLM_PROVIDERS" envSeparator:"," envDefault:"openrouter"`

	OpenRouterAPIKey   string `env:"OPENROUTER_API_KEY"`
	OpenRouterBase     string `env:"OPENROUTER_BASE_URL" envDefault:"https://openrouter.ai/api/v1"`
	OpenRouterModel    string `env:"OPENROUTER_MODEL" envDefault:"meta-llama/llama-3.1-8b-instruct"`
	OpenRouterAppTitle string `env:"OPENROUTER_APP_TITLE" envDefault:"LegaLuna"`
	OpenRouterReferer  string `env:"OPENROUTER_REFERER"`

	GeminiAPIKey string `env:"GEMINI_API_KEY"`
	GeminiModel  string `env:"GEMINI_MODEL" envDefault:"gemini-2.5-flash"`
}

// Load reads environment variables, optionally from a .env file if present.
func Load() (Config, error) {
	// Try to load .env if it exists; ignore error if file not found
	_ = godotenv.Load()

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	providers := cfg.LLM.Providers[:0]
	for _, p := range cfg.LLM.Providers {
		if p = strings.ToLower(strings.TrimSpace(p)); p != "" {
			providers = append(providers, p)
		}
	}
	cfg.LLM.Providers = providers
	if cfg.CacheSize < 0 {
		return Config{}, fmt.Errorf("CACHE_SIZE must not be negative, got %d", cfg.CacheSize)
	}
	return cfg, nil
}

// LoadClient reads only the chat client settings. Server variables are not
// parsed, so a bad DATABASE_URL or CACHE_SIZE cannot break the CLI.
func LoadClient() (ClientConfig, error) {
	_ = godotenv.Load()

	cfg, err := env.ParseAs[ClientConfig]()
	if err != nil {
		return ClientConfig{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
