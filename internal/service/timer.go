package service

import (
	"fmt"
	"time"

	"github.com/aliskhannn/flashcard-quiz-bot/internal/tone"
)

const (
	tickInterval   = time.Second
	warningSeconds = 16 // warning tones play while 1 < prev <= warningSeconds
)

type timerHandle struct {
	gen    uint64
	ticker Ticker
	stop   chan struct{}
}

// timerActiveLocked is the predicate the countdown is keyed to.
func (s *Session) timerActiveLocked() bool {
	return s.screen == screenPlaying && s.settings.UseTimer && s.timeLeft > 0
}

// syncTimerLocked starts or stops the countdown at predicate edges.
func (s *Session) syncTimerLocked() {
	active := s.timerActiveLocked()
	switch {
	case active && s.timer == nil:
		s.startTimerLocked()
	case !active && s.timer != nil:
		s.stopTimerLocked()
	}
}

func (s *Session) startTimerLocked() {
	s.timerGen++
	h := &timerHandle{
		gen:    s.timerGen,
		ticker: s.newTicker(tickInterval),
		stop:   make(chan struct{}),
	}
	s.timer = h

	go func() {
		for {
			select {
			case <-h.stop:
				return
			case <-h.ticker.C():
				s.tick(h.gen)
			}
		}
	}()

	s.logger.Debug("timer started")
}

func (s *Session) stopTimerLocked() {
	close(s.timer.stop)
	s.timer.ticker.Stop()
	s.timer = nil

	s.logger.Debug("timer stopped")
}

// TimerRunning reports whether a countdown is currently scheduled.
func (s *Session) TimerRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.timer != nil
}

// Tick advances the countdown by one second. It is a no-op unless the
// session is playing with the timer enabled and time left.
func (s *Session) Tick() bool {
	return s.apply(func() (Event, []tone.Cue, bool) {
		return s.tickLocked()
	})
}

// tick is the scheduled entry point; ticks from a stopped timer are dropped.
// The observer runs off the timer goroutine so rendering never delays the
// next tick.
func (s *Session) tick(gen uint64) {
	s.update(true, func() (Event, []tone.Cue, bool) {
		if s.timer == nil || s.timer.gen != gen {
			return 0, nil, false
		}
		return s.tickLocked()
	})
}

func (s *Session) tickLocked() (Event, []tone.Cue, bool) {
	if !s.timerActiveLocked() {
		return 0, nil, false
	}

	var cues []tone.Cue
	prev := s.timeLeft
	if prev <= warningSeconds && prev > 1 {
		cues = append(cues, tone.CueWarning)
	}

	if prev <= 1 {
		s.timeLeft = 0
		s.screen = screenFinished
		s.logger.Info("round timed out",
			zapRound(s.roundID),
			zapScore(s.score, s.totalInitial),
		)
		return EventScreen, append(cues, tone.CueTimeUp), true
	}

	s.timeLeft = prev - 1
	return EventTick, cues, true
}

// FormatTime renders seconds as M:SS.
func FormatTime(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}
