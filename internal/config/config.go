// Package config loads the pokedex CLI configuration from an optional .env
// file and the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/Sternrassler/pokedex-client/pkg/client"
)

// Environment variable names.
const (
	EnvBaseURL   = "POKEAPI_BASE_URL"
	EnvUserAgent = "POKEDEX_USER_AGENT"
	EnvLogLevel  = "POKEDEX_LOG_LEVEL"
	EnvLogPretty = "POKEDEX_LOG_PRETTY"
	EnvRedisAddr = "POKEDEX_REDIS_ADDR"
	EnvTimeout   = "POKEDEX_TIMEOUT"
)

// Config is the resolved CLI configuration.
type Config struct {
	// BaseURL is the PokeAPI root
	BaseURL   string
	UserAgent string

	// Timeout per request; zero disables it
	Timeout time.Duration

	LogLevel  string
	LogPretty bool

	// RedisAddr enables the response cache when set
	RedisAddr string
}

// Load reads files (default ".env") if present, then the environment.
// Variables already set in the environment win over file values.
func Load(files ...string) (*Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return nil, fmt.Errorf("load %s: %w", f, err)
		}
	}

	defaults := client.DefaultConfig()

	timeout, err := envDuration(EnvTimeout, 0)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		BaseURL:   envOr(EnvBaseURL, defaults.BaseURL),
		UserAgent: envOr(EnvUserAgent, defaults.UserAgent),
		Timeout:   timeout,
		LogLevel:  envOr(EnvLogLevel, "warn"),
		LogPretty: envBool(EnvLogPretty, true),
		RedisAddr: envOr(EnvRedisAddr, ""),
	}
	return cfg, nil
}

// ClientConfig converts to a client configuration without cache.
func (c *Config) ClientConfig() client.Config {
	return client.Config{
		BaseURL:   c.BaseURL,
		UserAgent: c.UserAgent,
		Timeout:   c.Timeout,
	}
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

// envDuration accepts Go durations ("15s") or plain seconds ("15").
func envDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback, nil
	}
	if secs, err := strconv.Atoi(v); err == nil {
		return time.Duration(secs) * time.Second, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid duration %q", key, v)
	}
	return d, nil
}
