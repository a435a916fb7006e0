package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigDefaults(t *testing.T) {
	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "INFO", cfg.LogLevel)
	assert.Equal(t, "7815981315", cfg.AdminPhone)
	assert.Equal(t, "0 8 * * 1", cfg.SummaryCron)
	assert.False(t, cfg.MailEnabled())
}

func TestNewConfigFromEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("PORT", "9090")
	t.Setenv("ADMIN_PHONE", "9999999999")

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "9999999999", cfg.AdminPhone)
}

func TestMailEnabled(t *testing.T) {
	t.Setenv("SMTP_HOST", "smtp.example.com")
	t.Setenv("SENDER_EMAIL", "noreply@example.com")
	t.Setenv("REPORT_EMAIL", "admin@example.com")

	cfg, err := NewConfig()
	require.NoError(t, err)
	assert.True(t, cfg.MailEnabled())
}
