package telegram

import (
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/flashcard-quiz-bot/internal/domain/entities"
	"github.com/aliskhannn/flashcard-quiz-bot/internal/service"
)

var (
	questionChoices = []int{5, 10, 15, 20, 30, 50}
	durationChoices = []int{1, 2, 3, 5, 10, 15}
)

const choicesPerRow = 3

// categoryCounter reports how many questions a category holds.
type categoryCounter func(categoryID string) int

// buildMenuKeyboard builds one button per category.
func buildMenuKeyboard(categories []entities.Category, count categoryCounter) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(categories))
	for _, c := range categories {
		label := c.Label()
		if count != nil {
			label += " (" + strconv.Itoa(count(c.ID)) + ")"
		}
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(label, buildCategoryCallback(c.ID)),
		))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// buildChoiceRows lays out numeric choices, marking the selected one.
func buildChoiceRows(choices []int, selected int, data func(int) string) [][]tgbotapi.InlineKeyboardButton {
	var (
		rows [][]tgbotapi.InlineKeyboardButton
		row  []tgbotapi.InlineKeyboardButton
	)
	for _, v := range choices {
		label := strconv.Itoa(v)
		if v == selected {
			label = "• " + label + " •"
		}
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(label, data(v)))
		if len(row) == choicesPerRow {
			rows = append(rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}
	return rows
}

// buildSettingsKeyboard builds the settings screen keyboard.
func buildSettingsKeyboard(settings entities.GameSettings) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	rows = append(rows, buildChoiceRows(questionChoices, settings.NumQuestions, buildQuestionsCallback)...)

	if settings.UseTimer {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(btnTimerOn, buildTimerCallback(false)),
		))
		rows = append(rows, buildChoiceRows(durationChoices, settings.InputDuration, buildDurationCallback)...)
	} else {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(btnTimerOff, buildTimerCallback(true)),
		))
	}

	rows = append(rows,
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData(btnStart, actionStart)),
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData(btnBack, actionHome)),
	)
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// buildPlayingKeyboard builds the card controls. Skip is shown as a
// disabled button when only one card remains.
func buildPlayingKeyboard(snap service.Snapshot) tgbotapi.InlineKeyboardMarkup {
	var controls []tgbotapi.InlineKeyboardButton
	if !snap.IsFlipped {
		skipData := actionSkip
		skipLabel := btnSkip
		if !snap.CanSkip() {
			skipData = actionNoop
			skipLabel = "🚫 " + btnSkip
		}
		controls = tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(skipLabel, skipData),
			tgbotapi.NewInlineKeyboardButtonData(btnReveal, actionFlip),
		)
	} else {
		controls = tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(btnWrong, buildAnswerCallback(false)),
			tgbotapi.NewInlineKeyboardButtonData(btnCorrect, buildAnswerCallback(true)),
		)
	}

	return tgbotapi.NewInlineKeyboardMarkup(
		controls,
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData(btnBack, actionHome)),
	)
}

// buildResultKeyboard builds keyboard for the result screen.
func buildResultKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData(btnRetry, actionRetry)),
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData(btnHome, actionHome)),
	)
}
