package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/redis/go-redis/v9"
)

type Config struct {
	Env           string `env:"ENV" envDefault:"development"`
	Port          string `env:"PORT" envDefault:"18080"`
	BindAddress   string `env:"BIND_ADDRESS" envDefault:"0.0.0.0"`
	AllowedOrigin string `env:"ALLOWED_ORIGINS" envDefault:"*"`

	RedisHost string `env:"REDIS_HOST" envDefault:"localhost"`
	RedisPort string `env:"REDIS_PORT" envDefault:"6379"`

	// ChatProvider selects the reply gateway: "gemini" or "mock".
	ChatProvider   string        `env:"CHAT_PROVIDER" envDefault:"mock"`
	GeminiAPIKey   string        `env:"GEMINI_API_KEY"`
	GeminiModel    string        `env:"GEMINI_MODEL" envDefault:"gemini-2.5-flash"`
	GatewayTimeout time.Duration `env:"GATEWAY_TIMEOUT" envDefault:"20s"`

	// Idle lifetimes for redis-backed state. Refreshed on every touch.
	SessionTTL time.Duration `env:"SESSION_TTL" envDefault:"30m"`
	AttemptTTL time.Duration `env:"ATTEMPT_TTL" envDefault:"2h"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	if cfg.ChatProvider == "gemini" && cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("CHAT_PROVIDER=gemini requires GEMINI_API_KEY")
	}
	return cfg, nil
}

func InitRedis(cfg *Config) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", cfg.RedisHost, cfg.RedisPort),
	})
}
