package telegram

import (
	"strconv"
	"strings"
)

// Callback action constants.
const (
	actionCategory = "cat"
	actionSettings = "set"
	actionStart    = "start"
	actionFlip     = "flip"
	actionSkip     = "skip"
	actionAnswer   = "ans"
	actionHome     = "home"
	actionRetry    = "retry"
	actionNoop     = "noop"
)

// Settings sub-actions.
const (
	settingsQuestions = "q"
	settingsTimer     = "timer"
	settingsDuration  = "dur"
)

const (
	timerOn  = "on"
	timerOff = "off"
)

// callbackData represents structured callback data.
type callbackData struct {
	Action string
	Params []string
	Raw    string
}

// encode creates callback string.
func (cd callbackData) encode() string {
	if len(cd.Params) == 0 {
		return cd.Action
	}
	return cd.Action + ":" + strings.Join(cd.Params, ":")
}

// param returns the i-th parameter or an empty string.
func (cd callbackData) param(i int) string {
	if i < 0 || i >= len(cd.Params) {
		return ""
	}
	return cd.Params[i]
}

// decodeCallback parses callback data string.
func decodeCallback(data string) callbackData {
	parts := strings.Split(data, ":")
	return callbackData{
		Action: parts[0],
		Params: parts[1:],
		Raw:    data,
	}
}

func buildCategoryCallback(categoryID string) string {
	return callbackData{Action: actionCategory, Params: []string{categoryID}}.encode()
}

func buildQuestionsCallback(n int) string {
	return callbackData{Action: actionSettings, Params: []string{settingsQuestions, strconv.Itoa(n)}}.encode()
}

func buildTimerCallback(on bool) string {
	v := timerOff
	if on {
		v = timerOn
	}
	return callbackData{Action: actionSettings, Params: []string{settingsTimer, v}}.encode()
}

func buildDurationCallback(minutes int) string {
	return callbackData{Action: actionSettings, Params: []string{settingsDuration, strconv.Itoa(minutes)}}.encode()
}

func buildAnswerCallback(correct bool) string {
	v := "0"
	if correct {
		v = "1"
	}
	return callbackData{Action: actionAnswer, Params: []string{v}}.encode()
}
