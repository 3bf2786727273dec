package entities

const (
	DefaultNumQuestions  = 10
	DefaultInputDuration = 5
)

// GameSettings holds the per-session configuration chosen on the settings screen.
type GameSettings struct {
	UseTimer      bool `validate:"-"`     // whether the countdown timer is enabled
	InputDuration int  `validate:"min=1"` // timer duration in minutes
	NumQuestions  int  `validate:"min=1"` // maximum number of questions in a round
}

// NewGameSettings creates settings with default values.
func NewGameSettings() GameSettings {
	return GameSettings{
		UseTimer:      false,
		InputDuration: DefaultInputDuration,
		NumQuestions:  DefaultNumQuestions,
	}
}

// SettingsPatch is a partial update of GameSettings. Nil fields are left unchanged.
type SettingsPatch struct {
	UseTimer      *bool
	InputDuration *int
	NumQuestions  *int
}

// Apply returns a copy of s with the non-nil fields of p merged in.
func (p SettingsPatch) Apply(s GameSettings) GameSettings {
	if p.UseTimer != nil {
		s.UseTimer = *p.UseTimer
	}
	if p.InputDuration != nil {
		s.InputDuration = *p.InputDuration
	}
	if p.NumQuestions != nil {
		s.NumQuestions = *p.NumQuestions
	}
	return s
}

// ResetForMenu restores the defaults applied when returning to the menu.
// InputDuration is kept.
func (s GameSettings) ResetForMenu() GameSettings {
	s.UseTimer = false
	s.NumQuestions = DefaultNumQuestions
	return s
}

// TimerSeconds returns the countdown length in seconds.
func (s GameSettings) TimerSeconds() int {
	return s.InputDuration * 60
}
