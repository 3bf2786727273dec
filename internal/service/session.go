package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/aliskhannn/flashcard-quiz-bot/internal/domain/entities"
	"github.com/aliskhannn/flashcard-quiz-bot/internal/tone"
	"github.com/aliskhannn/flashcard-quiz-bot/pkg/validator"
)

var ErrInvalidSettings = errors.New("invalid game settings")

const (
	screenMenu     = entities.ScreenMenu
	screenSettings = entities.ScreenSettings
	screenPlaying  = entities.ScreenPlaying
	screenFinished = entities.ScreenFinished
)

// Session owns the state of one user's game and exposes its transitions.
// Every method is atomic with respect to the others, including the
// countdown ticks delivered from the timer goroutine.
type Session struct {
	mu sync.Mutex

	bank      QuestionBank
	player    tone.Player
	logger    *zap.Logger
	newTicker TickerFunc
	rnd       *rand.Rand
	now       func() time.Time
	observer  Observer

	screen       entities.Screen
	categoryID   string
	category     entities.Category
	settings     entities.GameSettings
	queue        []entities.Question
	totalInitial int
	score        int
	isFlipped    bool
	timeLeft     int
	roundID      string

	version    uint64
	lastActive time.Time
	timer      *timerHandle
	timerGen   uint64
	notifier   *notifier
	closed     bool
}

// Option configures a Session.
type Option func(*Session)

// WithPlayer sets the tone player used for audio cues.
func WithPlayer(p tone.Player) Option {
	return func(s *Session) { s.player = p }
}

// WithLogger sets the session logger.
func WithLogger(l *zap.Logger) Option {
	return func(s *Session) { s.logger = l }
}

// WithTicker replaces the countdown ticker source.
func WithTicker(f TickerFunc) Option {
	return func(s *Session) { s.newTicker = f }
}

// WithRand sets the shuffle source. The source must not be shared with
// other sessions.
func WithRand(r *rand.Rand) Option {
	return func(s *Session) { s.rnd = r }
}

// WithClock sets the clock used for idle tracking.
func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

// WithDefaultDuration sets the initial timer duration in minutes.
func WithDefaultDuration(minutes int) Option {
	return func(s *Session) {
		if minutes >= 1 {
			s.settings.InputDuration = minutes
		}
	}
}

// WithObserver registers the change observer.
func WithObserver(o Observer) Option {
	return func(s *Session) { s.observer = o }
}

// NewSession creates a session on the menu screen with default settings.
func NewSession(bank QuestionBank, opts ...Option) *Session {
	s := &Session{
		bank:      bank,
		player:    tone.Nop{},
		logger:    zap.NewNop(),
		newTicker: NewRealTicker,
		now:       time.Now,
		screen:    screenMenu,
		settings:  entities.NewGameSettings(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.lastActive = s.now()
	return s
}

// apply runs fn under the lock, reconciles the timer, then plays cues and
// notifies the observer outside the lock.
func (s *Session) apply(fn func() (Event, []tone.Cue, bool)) bool {
	return s.update(false, fn)
}

// update is apply with a choice of delivery. With async set the observer
// is reached through the notifier, so a slow observer cannot hold up the
// caller.
func (s *Session) update(async bool, fn func() (Event, []tone.Cue, bool)) bool {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return false
	}

	ev, cues, changed := fn()
	var (
		snap Snapshot
		obs  Observer
	)
	if changed {
		s.version++
		s.lastActive = s.now()
		s.syncTimerLocked()
		snap = s.snapshotLocked()
		obs = s.observer
	}
	if changed && async && obs != nil {
		if s.notifier == nil {
			s.notifier = newNotifier()
		}
		s.notifier.post(notification{snap: snap, ev: ev, obs: obs})
		obs = nil
	}
	s.mu.Unlock()

	for _, c := range cues {
		tone.PlayCue(s.player, c)
	}
	if changed && obs != nil {
		obs(snap, ev)
	}
	return changed
}

// SelectCategory picks a category on the menu and opens its settings.
// Unknown categories are ignored.
func (s *Session) SelectCategory(categoryID string) bool {
	return s.apply(func() (Event, []tone.Cue, bool) {
		if s.screen != screenMenu {
			return 0, nil, false
		}
		if !s.selectLocked(categoryID) {
			return 0, nil, false
		}
		return EventScreen, nil, true
	})
}

func (s *Session) selectLocked(categoryID string) bool {
	cat, ok := s.bank.GetCategory(context.Background(), categoryID)
	if !ok {
		s.logger.Warn("unknown category selected", zap.String("category", categoryID))
		return false
	}

	s.categoryID = categoryID
	s.category = cat
	s.screen = screenSettings
	return true
}

// UpdateSettings merges patch into the settings. It only applies on the
// settings screen; an invalid result leaves the settings untouched.
func (s *Session) UpdateSettings(patch entities.SettingsPatch) (bool, error) {
	var err error
	changed := s.apply(func() (Event, []tone.Cue, bool) {
		if s.screen != screenSettings {
			return 0, nil, false
		}

		next := patch.Apply(s.settings)
		if vErr := validator.ValidateStruct(next); vErr != nil {
			err = fmt.Errorf("%w: %v", ErrInvalidSettings, vErr)
			return 0, nil, false
		}
		if next == s.settings {
			return 0, nil, false
		}

		s.settings = next
		return EventSettings, nil, true
	})
	return changed, err
}

// ConfirmStart builds a fresh shuffled queue and starts the round.
func (s *Session) ConfirmStart() bool {
	return s.apply(func() (Event, []tone.Cue, bool) {
		if s.screen != screenSettings || s.categoryID == "" {
			return 0, nil, false
		}

		questions := s.bank.GetQuestions(context.Background(), s.categoryID)
		if len(questions) == 0 {
			s.logger.Warn("category has no questions", zap.String("category", s.categoryID))
			return 0, nil, false
		}

		s.queue = BuildQueue(questions, s.settings.NumQuestions, s.rnd)
		s.totalInitial = len(s.queue)
		s.score = 0
		s.isFlipped = false
		if s.settings.UseTimer {
			s.timeLeft = s.settings.TimerSeconds()
		}
		s.roundID = uuid.NewString()
		s.screen = screenPlaying

		s.logger.Info("round started",
			zapRound(s.roundID),
			zap.String("category", s.categoryID),
			zap.Int("questions", s.totalInitial),
			zap.Bool("timer", s.settings.UseTimer),
			zap.Int("time_left", s.timeLeft),
		)
		return EventScreen, nil, true
	})
}

// Flip reveals the answer of the current card.
func (s *Session) Flip() bool {
	return s.apply(func() (Event, []tone.Cue, bool) {
		if s.screen != screenPlaying || s.isFlipped || len(s.queue) == 0 {
			return 0, nil, false
		}
		s.isFlipped = true
		return EventCard, nil, true
	})
}

// Skip moves the current card to the back of the queue.
// It is disabled when only one card remains.
func (s *Session) Skip() bool {
	return s.apply(func() (Event, []tone.Cue, bool) {
		if s.screen != screenPlaying || len(s.queue) <= 1 {
			return 0, nil, false
		}
		s.queue = rotate(s.queue)
		s.isFlipped = false
		return EventCard, []tone.Cue{tone.CueSkip}, true
	})
}

// Answer records the self-graded result of the current card and removes it.
// The round finishes when the queue is empty.
func (s *Session) Answer(correct bool) bool {
	return s.apply(func() (Event, []tone.Cue, bool) {
		if s.screen != screenPlaying || len(s.queue) == 0 {
			return 0, nil, false
		}

		cue := tone.CueIncorrect
		if correct {
			s.score++
			cue = tone.CueCorrect
		}

		s.queue = s.queue[1:]
		s.isFlipped = false

		if len(s.queue) == 0 {
			s.screen = screenFinished
			s.logger.Info("round finished",
				zapRound(s.roundID),
				zapScore(s.score, s.totalInitial),
			)
			return EventScreen, []tone.Cue{cue}, true
		}
		return EventCard, []tone.Cue{cue}, true
	})
}

// GoHome returns to the menu from any screen and resets the round settings.
func (s *Session) GoHome() bool {
	return s.apply(func() (Event, []tone.Cue, bool) {
		s.screen = screenMenu
		s.categoryID = ""
		s.category = entities.Category{}
		s.settings = s.settings.ResetForMenu()
		s.isFlipped = false
		return EventScreen, nil, true
	})
}

// Retry reopens the settings of the category that was just played.
func (s *Session) Retry() bool {
	return s.apply(func() (Event, []tone.Cue, bool) {
		if s.screen != screenFinished || s.categoryID == "" {
			return 0, nil, false
		}
		if !s.selectLocked(s.categoryID) {
			return 0, nil, false
		}
		return EventScreen, nil, true
	})
}

// Snapshot returns a copy of the current state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Session) snapshotLocked() Snapshot {
	queue := make([]entities.Question, len(s.queue))
	copy(queue, s.queue)

	return Snapshot{
		Version:      s.version,
		RoundID:      s.roundID,
		Screen:       s.screen,
		CategoryID:   s.categoryID,
		Category:     s.category,
		Settings:     s.settings,
		Queue:        queue,
		TotalInitial: s.totalInitial,
		Score:        s.score,
		IsFlipped:    s.isFlipped,
		TimeLeft:     s.timeLeft,
	}
}

// LastActive returns the time of the last state change.
func (s *Session) LastActive() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastActive
}

// Close releases the countdown. A closed session ignores all operations.
// A pending scheduled notification is still delivered.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	if s.timer != nil {
		s.stopTimerLocked()
	}
	if s.notifier != nil {
		s.notifier.close()
		s.notifier = nil
	}
	s.closed = true
}

func zapRound(id string) zap.Field {
	return zap.String("round_id", id)
}

func zapScore(score, total int) zap.Field {
	return zap.String("score", fmt.Sprintf("%d/%d", score, total))
}
