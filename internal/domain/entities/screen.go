package entities

// Screen identifies the view currently shown to the user.
type Screen string

const (
	ScreenMenu     Screen = "menu"
	ScreenSettings Screen = "settings"
	ScreenPlaying  Screen = "playing"
	ScreenFinished Screen = "finished"
)

func (s Screen) String() string {
	return string(s)
}
