// Package tone renders and plays the short audio cues of a game round.
package tone

import (
	"math"
	"strings"
)

// Waveform is the oscillator shape of a tone.
type Waveform string

const (
	Sine     Waveform = "sine"
	Triangle Waveform = "triangle"
	Sawtooth Waveform = "sawtooth"
	Square   Waveform = "square"
)

// ParseWaveform maps a name to a Waveform. Unknown names fall back to Sine.
func ParseWaveform(s string) Waveform {
	switch w := Waveform(strings.ToLower(strings.TrimSpace(s))); w {
	case Sine, Triangle, Sawtooth, Square:
		return w
	default:
		return Sine
	}
}

// sample returns the oscillator value in [-1, 1] for phase in [0, 1).
func (w Waveform) sample(phase float64) float64 {
	switch w {
	case Square:
		if phase < 0.5 {
			return 1
		}
		return -1
	case Sawtooth:
		return 2*phase - 1
	case Triangle:
		return 1 - 4*math.Abs(phase-0.5)
	default:
		return math.Sin(2 * math.Pi * phase)
	}
}
