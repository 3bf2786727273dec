package telegram

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	mock_bot "github.com/aliskhannn/flashcard-quiz-bot/internal/delivery/telegram/mock"
)

func observedHandler(t *testing.T) (*Handler, *mock_bot.MockBot, *observer.ObservedLogs) {
	t.Helper()

	h, bot, _ := newTestHandler(t)
	core, logs := observer.New(zapcore.DebugLevel)
	h.logger = zap.New(core)
	return h, bot, logs
}

func TestWithErrorHandling_LogsActionAndScreen(t *testing.T) {
	t.Parallel()

	h, bot, logs := observedHandler(t)

	err := h.withErrorHandling("flip", func(context.Context, int64) error {
		return errors.New("edit failed")
	})(context.Background(), testChatID)
	require.NoError(t, err)

	entries := logs.FilterMessage("action failed").All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.ErrorLevel, entries[0].Level)

	fields := entries[0].ContextMap()
	assert.Equal(t, "flip", fields["action"])
	assert.Equal(t, "menu", fields["screen"])
	assert.Equal(t, testChatID, fields["chat_id"])
	assert.Equal(t, "edit failed", fields["error"])
	assert.Equal(t, msgInternalError, textOf(t, lastSent(t, bot)))
}

func TestWithErrorHandling_MalformedCallbackIsWarning(t *testing.T) {
	t.Parallel()

	h, _, logs := observedHandler(t)
	h.handleUpdate(context.Background(), callbackUpdate(5, "ans:maybe"))

	entries := logs.FilterMessage("callback rejected").All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
	assert.Equal(t, "ans", entries[0].ContextMap()["action"])
	assert.Zero(t, logs.FilterMessage("action failed").Len())
}

func TestWithErrorHandling_PassesSuccess(t *testing.T) {
	t.Parallel()

	h, bot, logs := observedHandler(t)
	err := h.withErrorHandling("/help", func(context.Context, int64) error {
		return nil
	})(context.Background(), testChatID)

	require.NoError(t, err)
	assert.Zero(t, logs.FilterLevelExact(zapcore.ErrorLevel).Len())
	assert.Empty(t, bot.Sent())
}
