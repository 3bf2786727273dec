package telegram

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/flashcard-quiz-bot/internal/domain/entities"
	"github.com/aliskhannn/flashcard-quiz-bot/internal/service"
)

const progressBarLength = 12

// screen is a rendered view: MarkdownV2 text plus its keyboard.
type screen struct {
	Text     string
	Keyboard tgbotapi.InlineKeyboardMarkup
}

// renderScreen renders the view matching the snapshot's screen.
func renderScreen(snap service.Snapshot, categories []entities.Category, count categoryCounter) screen {
	switch snap.Screen {
	case entities.ScreenSettings:
		return renderSettings(snap, count)
	case entities.ScreenPlaying:
		return renderPlaying(snap)
	case entities.ScreenFinished:
		return renderFinished(snap)
	default:
		return renderMenu(categories, count)
	}
}

func renderMenu(categories []entities.Category, count categoryCounter) screen {
	text := fmt.Sprintf("%s\n\n%s", bold(titleMenu), md(subtitleMenu))
	return screen{Text: text, Keyboard: buildMenuKeyboard(categories, count)}
}

func renderSettings(snap service.Snapshot, count categoryCounter) screen {
	var b strings.Builder
	b.WriteString(bold(titleSettings) + "\n")
	b.WriteString(md(snap.Category.Label()) + "\n\n")

	fmt.Fprintf(&b, "%s %s\n", md(labelQuestions+":"), bold(fmt.Sprint(snap.Settings.NumQuestions)))
	if count != nil {
		fmt.Fprintf(&b, "%s\n", italic(fmt.Sprintf("%s: %d", labelAvailable, count(snap.CategoryID))))
	}
	fmt.Fprintf(&b, "%s %s\n", md(labelTimer+":"), bold(formatBool(snap.Settings.UseTimer)))
	if snap.Settings.UseTimer {
		fmt.Fprintf(&b, "%s %s\n", md(labelDuration+":"), bold(fmt.Sprint(snap.Settings.InputDuration)))
	}

	return screen{Text: b.String(), Keyboard: buildSettingsKeyboard(snap.Settings)}
}

func renderPlaying(snap service.Snapshot) screen {
	progress := snap.Progress()

	var b strings.Builder
	b.WriteString(bold(snap.Category.Label()) + "\n")
	status := fmt.Sprintf(labelRemaining, progress.Remaining)
	if snap.Settings.UseTimer {
		status += " · ⏱ " + service.FormatTime(snap.TimeLeft)
	}
	b.WriteString(md(status) + "\n")
	b.WriteString(md(buildProgressBar(progress.BarPct, progressBarLength)) + "\n\n")

	if q, ok := snap.Current(); ok {
		b.WriteString(italic(labelQuestion) + "\n")
		b.WriteString(bold(q.Q) + "\n\n")
		if snap.IsFlipped {
			b.WriteString(italic(labelAnswer) + "\n")
			b.WriteString(bold(q.A))
		} else {
			b.WriteString(md(labelTapToReveal))
		}
	}

	return screen{Text: b.String(), Keyboard: buildPlayingKeyboard(snap)}
}

func renderFinished(snap service.Snapshot) screen {
	res := snap.Result()

	title := titleFinished
	if res.TimedOut {
		title = titleTimeUp
	}

	text := fmt.Sprintf(
		"%s\n%s\n\n%s\n%s\n%s\n\n%s",
		bold(title),
		md(snap.Category.Name),
		md(labelScore),
		bold(fmt.Sprintf("%d / %d", res.Score, res.Total)),
		md(fmt.Sprintf("%s %d%%", buildProgressBar(res.Percentage, progressBarLength), res.Percentage)),
		md(remarkText[res.Remark]),
	)

	return screen{Text: text, Keyboard: buildResultKeyboard()}
}
