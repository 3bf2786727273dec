package telegram

import (
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/flashcard-quiz-bot/internal/domain/entities"
	"github.com/aliskhannn/flashcard-quiz-bot/internal/service"
)

func buttons(kb tgbotapi.InlineKeyboardMarkup) map[string]string {
	out := make(map[string]string)
	for _, row := range kb.InlineKeyboard {
		for _, b := range row {
			if b.CallbackData != nil {
				out[*b.CallbackData] = b.Text
			}
		}
	}
	return out
}

func playingSnapshot(queue int, flipped bool) service.Snapshot {
	qs := make([]entities.Question, queue)
	for i := range qs {
		qs[i] = entities.Question{Q: "Apa rukun Islam pertama?", A: "Syahadat."}
	}
	return service.Snapshot{
		Screen:       entities.ScreenPlaying,
		CategoryID:   "a",
		Category:     entities.Category{ID: "a", Name: "Rukun", Icon: "🕌"},
		Settings:     entities.NewGameSettings(),
		Queue:        qs,
		TotalInitial: 5,
		IsFlipped:    flipped,
	}
}

func TestCallbackData(t *testing.T) {
	t.Parallel()

	tests := []struct {
		got  string
		want string
	}{
		{got: buildCategoryCallback("quran"), want: "cat:quran"},
		{got: buildQuestionsCallback(15), want: "set:q:15"},
		{got: buildTimerCallback(true), want: "set:timer:on"},
		{got: buildTimerCallback(false), want: "set:timer:off"},
		{got: buildDurationCallback(3), want: "set:dur:3"},
		{got: buildAnswerCallback(true), want: "ans:1"},
		{got: buildAnswerCallback(false), want: "ans:0"},
		{got: callbackData{Action: actionStart}.encode(), want: "start"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.got)
	}

	cd := decodeCallback("set:dur:10")
	assert.Equal(t, actionSettings, cd.Action)
	assert.Equal(t, []string{settingsDuration, "10"}, cd.Params)
	assert.Equal(t, "10", cd.param(1))
	assert.Empty(t, cd.param(5))

	cd = decodeCallback("flip")
	assert.Equal(t, actionFlip, cd.Action)
	assert.Empty(t, cd.Params)
}

func TestRenderMenu(t *testing.T) {
	t.Parallel()

	cats := []entities.Category{{ID: "a", Name: "Alpha", Icon: "🕌"}, {ID: "b", Name: "Beta"}}
	scr := renderScreen(service.Snapshot{Screen: entities.ScreenMenu}, cats, func(id string) int { return len(id) + 1 })

	assert.Contains(t, scr.Text, bold(titleMenu))
	assert.Equal(t, map[string]string{"cat:a": "🕌 Alpha (2)", "cat:b": "Beta (2)"}, buttons(scr.Keyboard))
}

func TestRenderSettings(t *testing.T) {
	t.Parallel()

	snap := service.Snapshot{
		Screen:     entities.ScreenSettings,
		CategoryID: "a",
		Category:   entities.Category{ID: "a", Name: "Alpha"},
		Settings:   entities.NewGameSettings(),
	}

	scr := renderSettings(snap, func(string) int { return 8 })
	b := buttons(scr.Keyboard)
	assert.Equal(t, "• 10 •", b["set:q:10"])
	assert.Equal(t, "5", b["set:q:5"])
	assert.Equal(t, btnTimerOff, b["set:timer:on"])
	assert.NotContains(t, b, "set:dur:5", "durations are hidden while the timer is off")
	assert.Contains(t, b, actionStart)
	assert.Contains(t, scr.Text, italic(labelAvailable+": 8"))

	snap.Settings.UseTimer = true
	snap.Settings.InputDuration = 3
	scr = renderSettings(snap, nil)
	b = buttons(scr.Keyboard)
	assert.Equal(t, btnTimerOn, b["set:timer:off"])
	assert.Equal(t, "• 3 •", b["set:dur:3"])
	assert.Len(t, scr.Keyboard.InlineKeyboard, 7)
	assert.Contains(t, scr.Text, md(labelDuration+":"))
}

func TestRenderPlaying(t *testing.T) {
	t.Parallel()

	t.Run("before flip", func(t *testing.T) {
		t.Parallel()

		scr := renderPlaying(playingSnapshot(3, false))
		assert.Contains(t, scr.Text, md("Tersisa: 3 Soal"))
		assert.Contains(t, scr.Text, bold("Apa rukun Islam pertama?"))
		assert.NotContains(t, scr.Text, bold("Syahadat."))
		assert.NotContains(t, scr.Text, "⏱")
		assert.Contains(t, scr.Text, md(buildProgressBar(40, progressBarLength)))

		b := buttons(scr.Keyboard)
		assert.Equal(t, btnSkip, b[actionSkip])
		assert.Equal(t, btnReveal, b[actionFlip])
	})

	t.Run("single card disables skip", func(t *testing.T) {
		t.Parallel()

		b := buttons(renderPlaying(playingSnapshot(1, false)).Keyboard)
		assert.NotContains(t, b, actionSkip)
		assert.Equal(t, "🚫 "+btnSkip, b[actionNoop])
	})

	t.Run("after flip", func(t *testing.T) {
		t.Parallel()

		scr := renderPlaying(playingSnapshot(2, true))
		assert.Contains(t, scr.Text, bold("Syahadat."))

		b := buttons(scr.Keyboard)
		assert.Equal(t, btnCorrect, b["ans:1"])
		assert.Equal(t, btnWrong, b["ans:0"])
		assert.NotContains(t, b, actionFlip)
	})

	t.Run("with timer", func(t *testing.T) {
		t.Parallel()

		snap := playingSnapshot(5, false)
		snap.Settings.UseTimer = true
		snap.TimeLeft = 75
		assert.Contains(t, renderPlaying(snap).Text, "⏱ 1:15")
	})
}

func TestRenderFinished(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		score     int
		total     int
		useTimer  bool
		timeLeft  int
		wantTitle string
		wantText  string
	}{
		{name: "perfect", score: 5, total: 5, wantTitle: titleFinished, wantText: remarkText[entities.RemarkPerfect]},
		{name: "great", score: 8, total: 10, useTimer: true, timeLeft: 12, wantTitle: titleFinished, wantText: remarkText[entities.RemarkGreat]},
		{name: "timed out", score: 2, total: 3, useTimer: true, timeLeft: 0, wantTitle: titleTimeUp, wantText: "67%"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			snap := service.Snapshot{
				Screen:       entities.ScreenFinished,
				Category:     entities.Category{Name: "Rukun"},
				Settings:     entities.GameSettings{UseTimer: tt.useTimer, InputDuration: 1, NumQuestions: 10},
				TotalInitial: tt.total,
				Score:        tt.score,
				TimeLeft:     tt.timeLeft,
			}

			scr := renderScreen(snap, nil, nil)
			assert.Contains(t, scr.Text, bold(tt.wantTitle))
			assert.Contains(t, scr.Text, md(tt.wantText))

			b := buttons(scr.Keyboard)
			require.Len(t, b, 2)
			assert.Equal(t, btnRetry, b[actionRetry])
			assert.Equal(t, btnHome, b[actionHome])
		})
	}
}

func TestBuildProgressBar(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "[░░░░]", buildProgressBar(0, 4))
	assert.Equal(t, "[██░░]", buildProgressBar(50, 4))
	assert.Equal(t, "[████]", buildProgressBar(150, 4))
	assert.Equal(t, "[░░░░]", buildProgressBar(-3, 4))
}
