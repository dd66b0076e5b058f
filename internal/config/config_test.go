package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	for _, k := range []string{"PORT", "API_BASE_URL", "API_TIMEOUT", "SESSION_SECRET", "SESSION_MAX_AGE", "COOKIE_SECURE", "CORS_ORIGINS", "LOG", "LOGLEVEL", "ENV"} {
		t.Setenv(k, "")
	}

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, DefaultAPIBaseURL, cfg.APIBaseURL)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "prod", cfg.Env)
	assert.Empty(t, cfg.CORSOrigins, "без CORS_ORIGINS чужие origin не допускаются")
	assert.False(t, cfg.CookieSecure)

	timeout, err := cfg.Timeout()
	require.NoError(t, err)
	assert.Equal(t, 15*time.Second, timeout)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("API_BASE_URL", "http://localhost:5000/")
	t.Setenv("COOKIE_SECURE", "true")
	t.Setenv("CORS_ORIGINS", "http://a.test, http://b.test")
	t.Setenv("LOGLEVEL", "DEBUG")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:5000", cfg.APIBaseURL, "хвостовой слэш должен обрезаться")
	assert.True(t, cfg.CookieSecure)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSOrigins)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadConfig_BadCookieSecure(t *testing.T) {
	t.Setenv("COOKIE_SECURE", "maybe")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	t.Run("bad base url is fatal", func(t *testing.T) {
		cfg := &Config{APIBaseURL: "not a url", APITimeout: "1s", SessionMaxAge: "1h"}
		_, err := cfg.Validate()
		assert.Error(t, err)
	})

	t.Run("bad timeout is fatal", func(t *testing.T) {
		cfg := &Config{APIBaseURL: "http://x.test", APITimeout: "soon", SessionMaxAge: "1h"}
		_, err := cfg.Validate()
		assert.Error(t, err)
	})

	t.Run("empty secret is a warning", func(t *testing.T) {
		cfg := &Config{APIBaseURL: "http://x.test", APITimeout: "1s", SessionMaxAge: "1h", Port: "8080", Env: "dev"}
		warnings, err := cfg.Validate()
		require.NoError(t, err)
		assert.Contains(t, warnings, "SESSION_SECRET is empty, using insecure dev secret")
		assert.NotEmpty(t, cfg.Secret())
	})
}
