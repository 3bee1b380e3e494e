package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

const (
	StoreMemory = "memory"
	StoreRedis  = "redis"
	StoreSQLite = "sqlite"
)

type Config struct {
	Addr           string        `env:"GPA_ADDR" envDefault:":8080"`
	Store          string        `env:"GPA_STORE" envDefault:"memory"`
	RedisAddr      string        `env:"GPA_REDIS_ADDR" envDefault:"localhost:6379"`
	SQLitePath     string        `env:"GPA_SQLITE_PATH" envDefault:"gpa.db"`
	CacheTTL       time.Duration `env:"GPA_CACHE_TTL" envDefault:"1h"`
	CacheEntries   int           `env:"GPA_CACHE_ENTRIES" envDefault:"1024"`
	RateLimit      int           `env:"GPA_RATE_LIMIT" envDefault:"60"`
	RateWindow     time.Duration `env:"GPA_RATE_WINDOW" envDefault:"1m"`
	LogDevelopment bool          `env:"GPA_LOG_DEVELOPMENT" envDefault:"false"`

	OpenAIKey   string `env:"OPENAI_API_KEY"`
	OpenAIURL   string `env:"GPA_OPENAI_URL"`
	OpenAIModel string `env:"GPA_OPENAI_MODEL"`
}

// Load reads the configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.Store {
	case StoreMemory, StoreRedis, StoreSQLite:
	default:
		return fmt.Errorf("GPA_STORE must be one of memory, redis, sqlite; got %q", c.Store)
	}
	if c.RateLimit <= 0 {
		return fmt.Errorf("GPA_RATE_LIMIT must be positive")
	}
	if c.RateWindow <= 0 {
		return fmt.Errorf("GPA_RATE_WINDOW must be positive")
	}
	return nil
}
