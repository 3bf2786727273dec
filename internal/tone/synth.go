package tone

import (
	"bytes"
	"encoding/binary"
	"errors"
	"math"
	"time"
)

const (
	envelopeStart = 0.1
	envelopeEnd   = 0.00001
	bitsPerSample = 16
	numChannels   = 1
)

var ErrInvalidTone = errors.New("invalid tone parameters")

// Synth renders tones into 16-bit mono PCM WAV data.
type Synth struct {
	SampleRate int
}

// NewSynth creates a Synth. Non-positive sample rates default to 8 kHz.
func NewSynth(sampleRate int) *Synth {
	if sampleRate <= 0 {
		sampleRate = 8000
	}
	return &Synth{SampleRate: sampleRate}
}

// Samples renders the raw PCM samples of a tone. The gain starts at 0.1 and
// decays exponentially towards 0.00001 at the end of the tone.
func (s *Synth) Samples(freqHz float64, wave Waveform, dur time.Duration) ([]int16, error) {
	if freqHz <= 0 || dur <= 0 || math.IsNaN(freqHz) || math.IsInf(freqHz, 0) {
		return nil, ErrInvalidTone
	}

	n := int(dur.Seconds() * float64(s.SampleRate))
	if n == 0 {
		return nil, ErrInvalidTone
	}

	out := make([]int16, n)
	ratio := envelopeEnd / envelopeStart
	for i := range out {
		t := float64(i) / float64(s.SampleRate)
		phase := math.Mod(t*freqHz, 1)
		gain := envelopeStart * math.Pow(ratio, float64(i)/float64(n))
		out[i] = int16(math.Round(wave.sample(phase) * gain * math.MaxInt16))
	}

	return out, nil
}

// Render renders a tone as a complete WAV file.
func (s *Synth) Render(freqHz float64, wave Waveform, dur time.Duration) ([]byte, error) {
	samples, err := s.Samples(freqHz, wave, dur)
	if err != nil {
		return nil, err
	}
	return encodeWAV(samples, s.SampleRate), nil
}

func encodeWAV(samples []int16, sampleRate int) []byte {
	dataSize := len(samples) * bitsPerSample / 8
	blockAlign := numChannels * bitsPerSample / 8

	var buf bytes.Buffer
	buf.Grow(44 + dataSize)

	buf.WriteString("RIFF")
	_ = binary.Write(&buf, binary.LittleEndian, uint32(36+dataSize))
	buf.WriteString("WAVE")

	buf.WriteString("fmt ")
	_ = binary.Write(&buf, binary.LittleEndian, uint32(16)) // PCM chunk size
	_ = binary.Write(&buf, binary.LittleEndian, uint16(1))  // PCM format
	_ = binary.Write(&buf, binary.LittleEndian, uint16(numChannels))
	_ = binary.Write(&buf, binary.LittleEndian, uint32(sampleRate))
	_ = binary.Write(&buf, binary.LittleEndian, uint32(sampleRate*blockAlign))
	_ = binary.Write(&buf, binary.LittleEndian, uint16(blockAlign))
	_ = binary.Write(&buf, binary.LittleEndian, uint16(bitsPerSample))

	buf.WriteString("data")
	_ = binary.Write(&buf, binary.LittleEndian, uint32(dataSize))
	_ = binary.Write(&buf, binary.LittleEndian, samples)

	return buf.Bytes()
}
