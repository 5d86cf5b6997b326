// README: Config loader with env defaults for HTTP, search, cache, and AI settings.
package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

type SearchConfig struct {
	APIKey   string
	Endpoint string
	CacheTTL time.Duration
}

type Config struct {
	HTTP struct {
		Addr string
	}
	Redis struct {
		Addr string
	}
	Search SearchConfig
	AI     struct {
		GeminiKey string
	}
}

func Load() (Config, error) {
	// Missing .env is fine; real env vars win either way.
	_ = godotenv.Load()

	var cfg Config
	cfg.HTTP.Addr = envOrDefault("WANDER_HTTP_ADDR", ":8080")
	// Empty addr disables the search-result cache.
	cfg.Redis.Addr = os.Getenv("WANDER_REDIS_ADDR")
	cfg.Search.APIKey = envOrError("SERPER_API_KEY")
	cfg.Search.Endpoint = envOrDefault("WANDER_SEARCH_ENDPOINT", "https://google.serper.dev/search")
	cfg.Search.CacheTTL = envOrDefaultDuration("WANDER_SEARCH_CACHE_TTL", time.Hour)
	cfg.AI.GeminiKey = envOrError("GEMINI_API_KEY")
	return cfg, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envOrError(key string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	panic("environment variable " + key + " is required")
}

func envOrDefaultDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
