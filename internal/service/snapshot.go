package service

import (
	"github.com/aliskhannn/flashcard-quiz-bot/internal/domain/entities"
)

// Event tells observers what kind of change produced a snapshot.
type Event int

const (
	EventScreen   Event = iota + 1 // the visible screen changed
	EventSettings                  // settings changed on the settings screen
	EventCard                      // the current card was flipped or replaced
	EventTick                      // the countdown advanced by one second
)

func (e Event) String() string {
	switch e {
	case EventScreen:
		return "screen"
	case EventSettings:
		return "settings"
	case EventCard:
		return "card"
	case EventTick:
		return "tick"
	default:
		return "unknown"
	}
}

// Snapshot is a read-only copy of the session state handed to views.
type Snapshot struct {
	Version      uint64 // increases with every change; lets views drop stale renders
	RoundID      string
	Screen       entities.Screen
	CategoryID   string
	Category     entities.Category
	Settings     entities.GameSettings
	Queue        []entities.Question
	TotalInitial int
	Score        int
	IsFlipped    bool
	TimeLeft     int
}

// Current returns the card at the front of the queue.
func (s Snapshot) Current() (entities.Question, bool) {
	if len(s.Queue) == 0 {
		return entities.Question{}, false
	}
	return s.Queue[0], true
}

// CanSkip reports whether the skip control is enabled.
func (s Snapshot) CanSkip() bool {
	return s.Screen == entities.ScreenPlaying && len(s.Queue) > 1
}

// TimedOut reports whether the round ended because the countdown ran out.
func (s Snapshot) TimedOut() bool {
	return s.Settings.UseTimer && s.TimeLeft == 0
}

// Progress returns the round progress for the playing screen.
func (s Snapshot) Progress() entities.Progress {
	return entities.NewProgress(len(s.Queue), s.TotalInitial)
}

// Result returns the score summary for the finished screen.
func (s Snapshot) Result() entities.Result {
	return entities.NewResult(s.Score, s.TotalInitial, s.TimedOut())
}
