package telegram

import (
	"context"
	"strings"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/aliskhannn/flashcard-quiz-bot/internal/service"
)

// chatView tracks the live message of a chat that is edited in place.
type chatView struct {
	mu          sync.Mutex
	messageID   int
	lastVersion uint64
	rendered    bool
}

// attach makes messageID the live message.
func (v *chatView) attach(messageID int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if messageID != 0 {
		v.messageID = messageID
	}
}

// detach forces the next render into a new message.
func (v *chatView) detach() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.messageID = 0
}

func (h *Handler) view(chatID int64) *chatView {
	h.mu.Lock()
	defer h.mu.Unlock()

	v, ok := h.views[chatID]
	if !ok {
		v = &chatView{}
		h.views[chatID] = v
	}
	return v
}

func (h *Handler) forget(chatID int64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.views, chatID)
}

// observer redraws the chat after every session change. Countdown ticks
// are throttled.
func (h *Handler) observer(chatID int64) service.Observer {
	return func(snap service.Snapshot, ev service.Event) {
		if ev == service.EventTick && !h.shouldDrawTick(snap.TimeLeft) {
			return
		}
		h.render(context.Background(), chatID, snap)
	}
}

func (h *Handler) shouldDrawTick(timeLeft int) bool {
	return timeLeft <= urgentSeconds || timeLeft%h.opts.TimerRefresh == 0
}

func (h *Handler) redraw(ctx context.Context, chatID int64, sess *service.Session) {
	h.render(ctx, chatID, sess.Snapshot())
}

// render draws snap into the live message, or into a new message when there
// is none or it can no longer be edited. Snapshots older than the last drawn
// one are dropped.
func (h *Handler) render(ctx context.Context, chatID int64, snap service.Snapshot) {
	v := h.view(chatID)
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.rendered && snap.Version < v.lastVersion {
		h.logger.Debug("stale snapshot dropped",
			zap.Int64("chat_id", chatID),
			zap.Uint64("version", snap.Version),
			zap.Uint64("last_version", v.lastVersion),
		)
		return
	}

	scr := renderScreen(snap, h.bank.ListCategories(ctx), h.bank.Count)

	if v.messageID != 0 {
		edit := tgbotapi.NewEditMessageTextAndMarkup(chatID, v.messageID, scr.Text, scr.Keyboard)
		edit.ParseMode = tgbotapi.ModeMarkdownV2

		_, err := h.bot.Send(edit)
		if err == nil || isNotModified(err) {
			v.lastVersion, v.rendered = snap.Version, true
			return
		}
		h.logger.Warn("failed to edit message, sending a new one",
			zap.Int64("chat_id", chatID),
			zap.Int("message_id", v.messageID),
			zap.Error(err),
		)
	}

	msg := newMessage(chatID, scr.Text)
	msg.ReplyMarkup = scr.Keyboard

	sent, err := h.bot.Send(msg)
	if err != nil {
		h.logger.Error("failed to send screen",
			zap.Int64("chat_id", chatID),
			zap.String("screen", snap.Screen.String()),
			zap.Error(err),
		)
		return
	}
	v.messageID = sent.MessageID
	v.lastVersion, v.rendered = snap.Version, true
}

func isNotModified(err error) bool {
	return strings.Contains(err.Error(), "message is not modified")
}
