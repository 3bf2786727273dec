package telegram

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/aliskhannn/flashcard-quiz-bot/internal/domain/entities"
	"github.com/aliskhannn/flashcard-quiz-bot/internal/service"
)

var errMalformedCallback = errors.New("malformed callback data")

func (h *Handler) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	var notice string

	// Remove the user's "clock".
	defer func() {
		if _, err := h.bot.Request(tgbotapi.NewCallback(cb.ID, notice)); err != nil {
			h.logger.Warn("callback answer error", zap.Error(err))
		}
	}()

	if cb.Message == nil || cb.Message.Chat == nil {
		return
	}
	chatID := cb.Message.Chat.ID
	h.view(chatID).attach(cb.Message.MessageID)

	data := decodeCallback(cb.Data)
	_ = h.withErrorHandling(data.Action, func(ctx context.Context, chatID int64) error {
		sess := h.session(chatID)

		changed, n, err := h.dispatch(sess, data)
		notice = n
		if err != nil {
			return err
		}
		if !changed {
			h.redraw(ctx, chatID, sess)
		}
		return nil
	})(ctx, chatID)
}

// dispatch invokes the session operation named by data. It returns whether
// the session changed and an optional notice for the callback answer.
func (h *Handler) dispatch(sess *service.Session, data callbackData) (bool, string, error) {
	switch data.Action {
	case actionCategory:
		return sess.SelectCategory(data.param(0)), "", nil

	case actionSettings:
		patch, err := parseSettingsPatch(data)
		if err != nil {
			return false, "", err
		}
		changed, err := sess.UpdateSettings(patch)
		if errors.Is(err, service.ErrInvalidSettings) {
			return false, msgInvalidValue, nil
		}
		return changed, "", err

	case actionStart:
		return sess.ConfirmStart(), "", nil

	case actionFlip:
		return sess.Flip(), "", nil

	case actionSkip:
		return sess.Skip(), "", nil

	case actionAnswer:
		switch data.param(0) {
		case "1":
			return sess.Answer(true), "", nil
		case "0":
			return sess.Answer(false), "", nil
		}
		return false, "", fmt.Errorf("%w: %q", errMalformedCallback, data.Raw)

	case actionHome:
		return sess.GoHome(), "", nil

	case actionRetry:
		return sess.Retry(), "", nil

	case actionNoop:
		return true, "", nil

	default:
		return false, "", fmt.Errorf("%w: %q", errMalformedCallback, data.Raw)
	}
}

func parseSettingsPatch(data callbackData) (entities.SettingsPatch, error) {
	var patch entities.SettingsPatch

	switch data.param(0) {
	case settingsQuestions, settingsDuration:
		n, err := strconv.Atoi(data.param(1))
		if err != nil {
			return patch, fmt.Errorf("%w: %q: %v", errMalformedCallback, data.Raw, err)
		}
		if data.param(0) == settingsQuestions {
			patch.NumQuestions = &n
		} else {
			patch.InputDuration = &n
		}

	case settingsTimer:
		var on bool
		switch data.param(1) {
		case timerOn:
			on = true
		case timerOff:
		default:
			return patch, fmt.Errorf("%w: %q", errMalformedCallback, data.Raw)
		}
		patch.UseTimer = &on

	default:
		return patch, fmt.Errorf("%w: %q", errMalformedCallback, data.Raw)
	}

	return patch, nil
}
