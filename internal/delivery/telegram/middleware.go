package telegram

import (
	"context"
	"errors"

	"go.uber.org/zap"
)

// HandlerFunc handles one command or callback for a chat.
type HandlerFunc func(ctx context.Context, chatID int64) error

// withErrorHandling logs a failed handler with the action that triggered it
// and the screen the chat was on, then tells the user something went wrong.
// Malformed callback data is the client's fault and is logged as a warning.
func (h *Handler) withErrorHandling(action string, fn HandlerFunc) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		err := fn(ctx, chatID)
		if err == nil {
			return nil
		}

		fields := []zap.Field{
			zap.Int64("chat_id", chatID),
			zap.String("action", action),
			zap.Stringer("screen", h.session(chatID).Snapshot().Screen),
			zap.Error(err),
		}
		if errors.Is(err, errMalformedCallback) {
			h.logger.Warn("callback rejected", fields...)
		} else {
			h.logger.Error("action failed", fields...)
		}

		h.sendError(chatID, msgInternalError)
		return nil
	}
}
