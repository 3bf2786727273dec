package telegram

import (
	"context"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/aliskhannn/flashcard-quiz-bot/internal/service"
)

const (
	defaultTimerRefresh  = 10
	defaultUpdateTimeout = 60
	urgentSeconds        = 15 // every second is redrawn from here down
)

// Options tunes the handler.
type Options struct {
	TimerRefresh  int // seconds between countdown redraws
	UpdateTimeout int // long polling timeout in seconds

	// SessionOptions returns extra options for the session of a new chat.
	SessionOptions func(chatID int64) []service.Option
}

type Handler struct {
	bot    Bot
	logger *zap.Logger
	bank   Bank
	store  SessionStore
	opts   Options

	mu    sync.Mutex
	views map[int64]*chatView
}

func NewHandler(bot Bot, logger *zap.Logger, bank Bank, opts Options) *Handler {
	if opts.TimerRefresh < 1 {
		opts.TimerRefresh = defaultTimerRefresh
	}
	if opts.UpdateTimeout <= 0 {
		opts.UpdateTimeout = defaultUpdateTimeout
	}

	return &Handler{
		bot:    bot,
		logger: logger,
		bank:   bank,
		opts:   opts,
		views:  make(map[int64]*chatView),
	}
}

// SetStore sets the session store (called after the store is created with
// NewSession as its factory).
func (h *Handler) SetStore(store SessionStore) {
	h.store = store
	store.OnEvict(h.forget)
}

// NewSession creates the session of a chat and subscribes its view to it.
func (h *Handler) NewSession(chatID int64) *service.Session {
	opts := []service.Option{
		service.WithLogger(h.logger.With(zap.Int64("chat_id", chatID))),
	}
	if h.opts.SessionOptions != nil {
		opts = append(opts, h.opts.SessionOptions(chatID)...)
	}
	opts = append(opts, service.WithObserver(h.observer(chatID)))

	return service.NewSession(h.bank, opts...)
}

func (h *Handler) Run(ctx context.Context) error {
	h.logger.Info("telegram handler started")
	defer h.logger.Info("telegram handler stopped")

	u := tgbotapi.NewUpdate(0)
	u.Timeout = h.opts.UpdateTimeout

	updates := h.bot.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			h.handleUpdate(ctx, update)
		}
	}
}

func (h *Handler) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	if update.CallbackQuery != nil {
		h.logger.Debug("callback received",
			zap.Int64("user_id", update.CallbackQuery.From.ID),
			zap.String("data", update.CallbackQuery.Data),
		)
		h.handleCallback(ctx, update.CallbackQuery)
		return
	}

	if update.Message == nil {
		h.logger.Debug("update without message and callback")
		return
	}

	h.logger.Debug("update received",
		zap.Int64("chat_id", update.Message.Chat.ID),
		zap.String("text", update.Message.Text),
	)

	chatID := update.Message.Chat.ID

	if update.Message.IsCommand() {
		switch update.Message.Command() {
		case "start":
			_ = h.withErrorHandling("/start", h.startHandler())(ctx, chatID)
		case "menu":
			_ = h.withErrorHandling("/menu", h.menuHandler())(ctx, chatID)
		case "help":
			_ = h.withErrorHandling("/help", h.helpHandler())(ctx, chatID)
		default:
			h.send(newPlainMessage(chatID, msgUnknownCommand))
		}
		return
	}

	_ = h.withErrorHandling("text", h.menuHandler())(ctx, chatID)
}

func (h *Handler) session(chatID int64) *service.Session {
	return h.store.GetOrCreate(chatID)
}

func (h *Handler) sendError(chatID int64, text string) {
	h.send(newPlainMessage(chatID, text))
}

func (h *Handler) send(c tgbotapi.Chattable) {
	if _, err := h.bot.Send(c); err != nil {
		h.logger.Error("failed to send telegram message",
			zap.Error(err),
		)
	}
}
