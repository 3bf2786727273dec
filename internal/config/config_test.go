package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("TELEGRAM_API_TOKEN", "token")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "token", cfg.TelegramAPIToken)
	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, BankSourceJSON, cfg.Bank.Source)
	assert.Equal(t, "assets/data/questions.json", cfg.Bank.JSONPath)
	assert.Equal(t, 6*time.Hour, cfg.Storage.IdleTTL)
	assert.Equal(t, 10*time.Second, cfg.Audio.SendTimeout)
	assert.Equal(t, 5, cfg.Game.DefaultDuration)
	assert.False(t, cfg.Audio.Enabled)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("TELEGRAM_API_TOKEN", "token")
	t.Setenv("APP_ENV", "production")
	t.Setenv("AUDIO_ENABLED", "true")
	t.Setenv("TELEGRAM_TIMER_REFRESH", "5")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Env)
	assert.True(t, cfg.Audio.Enabled)
	assert.Equal(t, 5, cfg.Telegram.TimerRefresh)
}

func TestLoad_MissingToken(t *testing.T) {
	t.Setenv("TELEGRAM_API_TOKEN", "")

	_, err := Load()
	require.ErrorIs(t, err, ErrMissingEnvironmentVariables)
}

func TestLoad_PostgresRequiresURL(t *testing.T) {
	t.Setenv("TELEGRAM_API_TOKEN", "token")
	t.Setenv("BANK_SOURCE", BankSourcePostgres)
	t.Setenv("DATABASE_URL", "")

	_, err := Load()
	require.ErrorIs(t, err, ErrMissingEnvironmentVariables)
}

func TestLoad_InvalidSource(t *testing.T) {
	t.Setenv("TELEGRAM_API_TOKEN", "token")
	t.Setenv("BANK_SOURCE", "redis")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Bank.Source")
}

func TestDB_DSN(t *testing.T) {
	_, err := DB{}.DSN()
	require.ErrorIs(t, err, ErrMissingEnvironmentVariables)

	dsn, err := DB{URL: "postgres://x"}.DSN()
	require.NoError(t, err)
	assert.Equal(t, "postgres://x", dsn)
}
