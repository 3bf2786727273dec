package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/flashcard-quiz-bot/internal/domain/entities"
	"github.com/aliskhannn/flashcard-quiz-bot/internal/service"
	"github.com/aliskhannn/flashcard-quiz-bot/internal/worker"
)

// Sender delivers a single Telegram request.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// Bot is the part of *tgbotapi.BotAPI used by the handler.
type Bot interface {
	Sender
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
}

// Bank lists categories for the menu and serves questions to sessions.
type Bank interface {
	service.QuestionBank
	ListCategories(ctx context.Context) []entities.Category
	Count(categoryID string) int
}

// JobSubmitter queues background work without blocking.
type JobSubmitter interface {
	Submit(fn worker.Job) error
}

// SessionStore holds one session per chat.
type SessionStore interface {
	GetOrCreate(chatID int64) *service.Session
	OnEvict(fn func(chatID int64))
}
