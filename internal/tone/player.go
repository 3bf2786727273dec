package tone

import (
	"time"

	"go.uber.org/zap"
)

// Player produces an audible cue. Implementations must never block the
// caller for long and must swallow their own failures.
type Player interface {
	Play(freqHz float64, wave Waveform, dur time.Duration)
}

// Cue is a named tone used by the game.
type Cue struct {
	Name     string
	FreqHz   float64
	Wave     Waveform
	Duration time.Duration
}

var (
	CueSkip      = Cue{Name: "skip", FreqHz: 300, Wave: Sine, Duration: 100 * time.Millisecond}
	CueCorrect   = Cue{Name: "correct", FreqHz: 600, Wave: Sine, Duration: 200 * time.Millisecond}
	CueIncorrect = Cue{Name: "incorrect", FreqHz: 200, Wave: Sawtooth, Duration: 300 * time.Millisecond}
	CueWarning   = Cue{Name: "warning", FreqHz: 880, Wave: Sine, Duration: 100 * time.Millisecond}
	CueTimeUp    = Cue{Name: "time_up", FreqHz: 440, Wave: Triangle, Duration: time.Second}
)

// PlayCue plays c on p. A nil player is silent.
func PlayCue(p Player, c Cue) {
	if p == nil {
		return
	}
	p.Play(c.FreqHz, c.Wave, c.Duration)
}

// Nop discards every tone.
type Nop struct{}

func (Nop) Play(float64, Waveform, time.Duration) {}

// LogPlayer records tones in the debug log instead of producing sound.
type LogPlayer struct {
	logger *zap.Logger
}

func NewLogPlayer(logger *zap.Logger) *LogPlayer {
	return &LogPlayer{logger: logger}
}

func (p *LogPlayer) Play(freqHz float64, wave Waveform, dur time.Duration) {
	p.logger.Debug("tone",
		zap.Float64("freq_hz", freqHz),
		zap.String("wave", string(wave)),
		zap.Duration("duration", dur),
	)
}
