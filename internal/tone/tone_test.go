package tone

import (
	"encoding/binary"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestParseWaveform(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want Waveform
	}{
		{"sine", Sine},
		{"Triangle", Triangle},
		{" sawtooth ", Sawtooth},
		{"square", Square},
		{"noise", Sine},
		{"", Sine},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseWaveform(tt.in), tt.in)
	}
}

func TestWaveform_SampleRange(t *testing.T) {
	t.Parallel()

	for _, w := range []Waveform{Sine, Triangle, Sawtooth, Square} {
		for i := 0; i < 100; i++ {
			v := w.sample(float64(i) / 100)
			assert.GreaterOrEqual(t, v, -1.0, w)
			assert.LessOrEqual(t, v, 1.0, w)
		}
	}

	assert.Equal(t, 1.0, Square.sample(0.25))
	assert.Equal(t, -1.0, Square.sample(0.75))
	assert.Equal(t, -1.0, Sawtooth.sample(0))
	assert.Equal(t, 1.0, Triangle.sample(0.5))
}

func TestSynth_SamplesEnvelope(t *testing.T) {
	t.Parallel()

	s := NewSynth(8000)
	samples, err := s.Samples(440, Square, 500*time.Millisecond)
	require.NoError(t, err)
	require.Len(t, samples, 4000)

	// Square wave at full scale times a gain of 0.1 on the first sample.
	assert.InDelta(t, 0.1*math.MaxInt16, float64(samples[0]), 1)

	// The envelope decays, so the tail is much quieter than the head.
	last := math.Abs(float64(samples[len(samples)-1]))
	assert.Less(t, last, 10.0)
}

func TestSynth_InvalidParameters(t *testing.T) {
	t.Parallel()

	s := NewSynth(0)
	assert.Equal(t, 8000, s.SampleRate)

	_, err := s.Render(0, Sine, time.Second)
	assert.ErrorIs(t, err, ErrInvalidTone)

	_, err = s.Render(440, Sine, 0)
	assert.ErrorIs(t, err, ErrInvalidTone)

	_, err = s.Render(440, Sine, time.Nanosecond)
	assert.ErrorIs(t, err, ErrInvalidTone)
}

func TestSynth_RenderWAVHeader(t *testing.T) {
	t.Parallel()

	s := NewSynth(8000)
	data, err := s.Render(CueSkip.FreqHz, CueSkip.Wave, CueSkip.Duration)
	require.NoError(t, err)

	samples := 800
	require.Len(t, data, 44+samples*2)

	assert.Equal(t, "RIFF", string(data[0:4]))
	assert.Equal(t, "WAVE", string(data[8:12]))
	assert.Equal(t, "fmt ", string(data[12:16]))
	assert.Equal(t, "data", string(data[36:40]))

	assert.Equal(t, uint32(36+samples*2), binary.LittleEndian.Uint32(data[4:8]))
	assert.Equal(t, uint16(1), binary.LittleEndian.Uint16(data[20:22]))
	assert.Equal(t, uint16(1), binary.LittleEndian.Uint16(data[22:24]))
	assert.Equal(t, uint32(8000), binary.LittleEndian.Uint32(data[24:28]))
	assert.Equal(t, uint16(16), binary.LittleEndian.Uint16(data[34:36]))
	assert.Equal(t, uint32(samples*2), binary.LittleEndian.Uint32(data[40:44]))
}

type recordingPlayer struct {
	played []Cue
}

func (p *recordingPlayer) Play(freqHz float64, wave Waveform, dur time.Duration) {
	p.played = append(p.played, Cue{FreqHz: freqHz, Wave: wave, Duration: dur})
}

func TestPlayCue(t *testing.T) {
	t.Parallel()

	PlayCue(nil, CueSkip)

	p := &recordingPlayer{}
	PlayCue(p, CueTimeUp)
	require.Len(t, p.played, 1)
	assert.Equal(t, 440.0, p.played[0].FreqHz)
	assert.Equal(t, Triangle, p.played[0].Wave)
	assert.Equal(t, time.Second, p.played[0].Duration)

	Nop{}.Play(1, Sine, time.Second)
	NewLogPlayer(zap.NewNop()).Play(1, Sine, time.Second)
}
