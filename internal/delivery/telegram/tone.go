package telegram

import (
	"fmt"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/aliskhannn/flashcard-quiz-bot/internal/tone"
)

// TonePlayer renders tones to WAV and sends them to one chat as audio.
// Delivery runs on the worker pool; failures are logged and dropped.
type TonePlayer struct {
	bot    Sender
	chatID int64
	synth  *tone.Synth
	pool   JobSubmitter
	logger *zap.Logger
}

func NewTonePlayer(bot Sender, chatID int64, synth *tone.Synth, pool JobSubmitter, logger *zap.Logger) *TonePlayer {
	return &TonePlayer{
		bot:    bot,
		chatID: chatID,
		synth:  synth,
		pool:   pool,
		logger: logger,
	}
}

func (p *TonePlayer) Play(freqHz float64, wave tone.Waveform, dur time.Duration) {
	fields := []zap.Field{
		zap.Int64("chat_id", p.chatID),
		zap.Float64("freq_hz", freqHz),
		zap.String("wave", string(wave)),
		zap.Duration("duration", dur),
	}

	data, err := p.synth.Render(freqHz, wave, dur)
	if err != nil {
		p.logger.Warn("failed to render tone", append(fields, zap.Error(err))...)
		return
	}

	file := tgbotapi.FileBytes{
		Name:  fmt.Sprintf("%s-%.0fhz.wav", wave, freqHz),
		Bytes: data,
	}

	err = p.pool.Submit(func() {
		audio := tgbotapi.NewAudio(p.chatID, file)
		audio.Title = fmt.Sprintf("%.0f Hz", freqHz)
		audio.Duration = max(1, int(dur.Round(time.Second).Seconds()))
		audio.DisableNotification = true

		if _, err := p.bot.Send(audio); err != nil {
			p.logger.Warn("failed to send tone", append(fields, zap.Error(err))...)
		}
	})
	if err != nil {
		p.logger.Warn("tone dropped", append(fields, zap.Error(err))...)
	}
}
