package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/aliskhannn/flashcard-quiz-bot/internal/config"
)

func TestNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		cfg       config.Config
		wantDebug bool
	}{
		{name: "production", cfg: config.Config{Env: "production"}, wantDebug: false},
		{
			name:      "production with telegram debug",
			cfg:       config.Config{Env: "production", Telegram: config.Telegram{Debug: true}},
			wantDebug: true,
		},
		{name: "local", cfg: config.Config{Env: "local"}, wantDebug: true},
		{name: "dev", cfg: config.Config{Env: "dev"}, wantDebug: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			lg, err := New(&tt.cfg)
			require.NoError(t, err)
			assert.Equal(t, tt.wantDebug, lg.Core().Enabled(zapcore.DebugLevel))
			assert.True(t, lg.Core().Enabled(zapcore.InfoLevel))
		})
	}
}
