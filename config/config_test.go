package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "3000")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("API_URL", "")
	t.Setenv("NEXT_PUBLIC_API_URL", "")
	t.Setenv("ALLOWED_MEET_STATUSES", "pending,active")
	t.Setenv("PROTECTED_PREFIXES", "/meet,/interview")
	t.Setenv("APP_ENV", "development")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 24*time.Hour, cfg.JWT.SessionTTL)
	assert.Empty(t, cfg.JWT.Secret, "missing secret must not fail Load")
	assert.Equal(t, []string{"/meet", "/interview"}, cfg.App.ProtectedPrefixes)
	assert.Equal(t, []string{"pending", "active"}, cfg.Interview.AllowedStatuses)
	assert.False(t, cfg.App.IsProduction())
}

func TestLoad_APIURLFallback(t *testing.T) {
	t.Setenv("PORT", "3000")
	t.Setenv("NEXT_PUBLIC_API_URL", "https://backend.example.com/")
	t.Setenv("API_URL", "placeholder")
	require.NoError(t, os.Unsetenv("API_URL"))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "https://backend.example.com", cfg.API.BaseURL)
}

func TestLoad_TrimsTrailingSlash(t *testing.T) {
	t.Setenv("PORT", "3000")
	t.Setenv("API_URL", "https://backend.example.com/")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "https://backend.example.com", cfg.API.BaseURL)
}

func TestLoad_InvalidNumbers(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{name: "port", key: "PORT", val: "abc"},
		{name: "api timeout", key: "API_TIMEOUT", val: "soon"},
		{name: "rate limit", key: "LOGIN_RATE_LIMIT", val: "many"},
		{name: "rate window", key: "LOGIN_RATE_WINDOW", val: "later"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("PORT", "3000")
			t.Setenv(tt.key, tt.val)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestAppConfig_IsProduction(t *testing.T) {
	assert.True(t, (&AppConfig{Env: "production"}).IsProduction())
	assert.True(t, (&AppConfig{Env: "Production"}).IsProduction())
	assert.False(t, (&AppConfig{Env: "staging"}).IsProduction())
}

func TestEmailConfig_Enabled(t *testing.T) {
	assert.False(t, (&EmailConfig{}).EmailEnabled())
	assert.False(t, (&EmailConfig{ResendAPIKey: "re_x", FromEmail: "a@b.com"}).EmailEnabled())
	assert.True(t, (&EmailConfig{ResendAPIKey: "re_x", FromEmail: "a@b.com", NotifyEmail: "r@b.com"}).EmailEnabled())
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, splitList(" a, ,b ,"))
	assert.Nil(t, splitList(""))
}
