// Package config collects process settings from .env and the environment.
package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"nashra/pkg/llm"
)

type Config struct {
	Addr        string
	DatabaseURL string
	RedisURL    string
	FrontendURL string

	LLM        llm.Config
	LLMTimeout time.Duration
	LLMRPM     int
	LLMBurst   int

	CacheSize       int
	PrefsTTL        time.Duration
	PublicationName string
	LogLevel        slog.Level
}

// Load reads .env if present, then the environment. Invalid numbers and
// durations fall back to their defaults with a warning.
func Load() Config {
	_ = godotenv.Load()
	return FromEnv(os.Getenv)
}

func FromEnv(getenv func(string) string) Config {
	e := env{getenv: getenv}

	return Config{
		Addr:        e.str("ADDR", ":8080"),
		DatabaseURL: e.str("DATABASE_URL", ""),
		RedisURL:    e.str("REDIS_URL", ""),
		FrontendURL: e.str("FRONTEND_URL", ""),
		LLM: llm.Config{
			Provider: e.str("LLM_PROVIDER", llm.ProviderGemini),
			Model:    e.str("LLM_MODEL", ""),
			BaseURL:  e.str("LLM_BASE_URL", ""),
		},
		LLMTimeout:      e.duration("LLM_TIMEOUT", 30*time.Second),
		LLMRPM:          e.integer("LLM_RPM", 60),
		LLMBurst:        e.integer("LLM_BURST", 5),
		CacheSize:       e.integer("CACHE_SIZE", 256),
		PrefsTTL:        e.duration("PREFS_TTL", 720*time.Hour),
		PublicationName: e.str("PUBLICATION_NAME", "Entrepreneur NASHRA"),
		LogLevel:        e.level("LOG_LEVEL", slog.LevelInfo),
	}
}

// Credentials reads API_KEY first, then the provider specific variable.
// The lookup happens on every call.
func (c Config) Credentials() llm.Credentials {
	return llm.EnvCredentials{"API_KEY", llm.ProviderKeyEnv(c.LLM.Provider)}
}

// AllowedOrigins is the CORS allow list.
func (c Config) AllowedOrigins() []string {
	origins := []string{"http://localhost:3000"}
	if c.FrontendURL != "" {
		origins = append(origins, c.FrontendURL)
	}
	return origins
}

type env struct {
	getenv func(string) string
}

func (e env) str(key, def string) string {
	if v := strings.TrimSpace(e.getenv(key)); v != "" {
		return v
	}
	return def
}

func (e env) integer(key string, def int) int {
	raw := strings.TrimSpace(e.getenv(key))
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		slog.Warn("Invalid integer setting, using default", "key", key, "value", raw, "default", def)
		return def
	}
	return v
}

func (e env) duration(key string, def time.Duration) time.Duration {
	raw := strings.TrimSpace(e.getenv(key))
	if raw == "" {
		return def
	}
	v, err := time.ParseDuration(raw)
	if err != nil || v <= 0 {
		slog.Warn("Invalid duration setting, using default", "key", key, "value", raw, "default", def)
		return def
	}
	return v
}

func (e env) level(key string, def slog.Level) slog.Level {
	raw := strings.TrimSpace(e.getenv(key))
	if raw == "" {
		return def
	}
	var l slog.Level
	if err := l.UnmarshalText([]byte(raw)); err != nil {
		slog.Warn("Invalid log level, using default", "key", key, "value", raw)
		return def
	}
	return l
}
