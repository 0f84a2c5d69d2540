package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"nashra/pkg/llm"
)

func lookup(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestDefaults(t *testing.T) {
	c := FromEnv(lookup(nil))

	assert.Equal(t, ":8080", c.Addr)
	assert.Equal(t, llm.ProviderGemini, c.LLM.Provider)
	assert.Equal(t, 30*time.Second, c.LLMTimeout)
	assert.Equal(t, 60, c.LLMRPM)
	assert.Equal(t, 5, c.LLMBurst)
	assert.Equal(t, 256, c.CacheSize)
	assert.Equal(t, 720*time.Hour, c.PrefsTTL)
	assert.Equal(t, slog.LevelInfo, c.LogLevel)
	assert.Equal(t, []string{"http://localhost:3000"}, c.AllowedOrigins())
}

func TestOverrides(t *testing.T) {
	c := FromEnv(lookup(map[string]string{
		"ADDR":         ":9090",
		"LLM_PROVIDER": "openai",
		"LLM_MODEL":    "gpt-4o-mini",
		"LLM_TIMEOUT":  "5s",
		"CACHE_SIZE":   "16",
		"FRONTEND_URL": "https://nashra.example",
		"LOG_LEVEL":    "debug",
	}))

	assert.Equal(t, ":9090", c.Addr)
	assert.Equal(t, "openai", c.LLM.Provider)
	assert.Equal(t, "gpt-4o-mini", c.LLM.Model)
	assert.Equal(t, 5*time.Second, c.LLMTimeout)
	assert.Equal(t, 16, c.CacheSize)
	assert.Equal(t, slog.LevelDebug, c.LogLevel)
	assert.Contains(t, c.AllowedOrigins(), "https://nashra.example")
}

func TestInvalidValuesFallBack(t *testing.T) {
	c := FromEnv(lookup(map[string]string{
		"LLM_TIMEOUT": "soon",
		"LLM_RPM":     "many",
		"PREFS_TTL":   "-1h",
		"LOG_LEVEL":   "loud",
	}))

	assert.Equal(t, 30*time.Second, c.LLMTimeout)
	assert.Equal(t, 60, c.LLMRPM)
	assert.Equal(t, 720*time.Hour, c.PrefsTTL)
	assert.Equal(t, slog.LevelInfo, c.LogLevel)
}

func TestCredentialsPreferGenericKey(t *testing.T) {
	c := FromEnv(lookup(nil))

	t.Setenv("API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "gemini-key")
	assert.Equal(t, "gemini-key", c.Credentials().APIKey())

	t.Setenv("API_KEY", "generic")
	assert.Equal(t, "generic", c.Credentials().APIKey())
}
