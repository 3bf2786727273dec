package telegram

import (
	"context"
)

// startHandler greets the user and opens a fresh menu message.
func (h *Handler) startHandler() HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		h.send(newPlainMessage(chatID, msgWelcome))
		return h.menuHandler()(ctx, chatID)
	}
}

// menuHandler returns to the menu and draws it in a new message at the
// bottom of the chat.
func (h *Handler) menuHandler() HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		h.view(chatID).detach()

		sess := h.session(chatID)
		if !sess.GoHome() {
			h.redraw(ctx, chatID, sess)
		}
		return nil
	}
}

func (h *Handler) helpHandler() HandlerFunc {
	return func(_ context.Context, chatID int64) error {
		h.send(newPlainMessage(chatID, msgHelp))
		return nil
	}
}
