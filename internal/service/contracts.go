package service

import (
	"context"
	"time"

	"github.com/aliskhannn/flashcard-quiz-bot/internal/domain/entities"
)

// QuestionBank is the read-only source of categories and questions.
type QuestionBank interface {
	GetCategory(ctx context.Context, categoryID string) (entities.Category, bool)
	GetQuestions(ctx context.Context, categoryID string) []entities.Question
}

// Ticker delivers the one-second countdown ticks.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// TickerFunc creates a Ticker firing every d.
type TickerFunc func(d time.Duration) Ticker

// Observer is notified after every state change with the resulting snapshot.
// Changes made by a caller are reported on the caller's goroutine before
// the method returns. Scheduled ticks are reported from a separate goroutine
// and may be coalesced, so an observer must tolerate concurrent calls and
// use Snapshot.Version to discard stale ones.
type Observer func(snap Snapshot, ev Event)

type realTicker struct {
	t *time.Ticker
}

func (r realTicker) C() <-chan time.Time { return r.t.C }
func (r realTicker) Stop()               { r.t.Stop() }

// NewRealTicker is the default TickerFunc backed by time.Ticker.
func NewRealTicker(d time.Duration) Ticker {
	return realTicker{t: time.NewTicker(d)}
}
