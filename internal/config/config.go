package config

import "github.com/rs/zerolog"

// LogLevel is the global zerolog level. Set it to zerolog.DebugLevel to trace
// every disk flight.
const LogLevel = zerolog.InfoLevel

const (
	WindowWidth   = 800
	WindowHeight  = 600
	WindowCaption = "The Tower of Hanoi: a mathematical puzzle"
	FPS           = 60

	// Base size for all shapes, pixels
	MinSize = 20

	// Fade transition alpha step per frame (out of 255)
	FadeStep = 10

	TowersCount = 3

	// Disk flight speed, pixels per frame
	MoveSpeed = 10

	// Blink effect
	BlinkSpeed     = 0.05 // radians per frame
	BrightnessHigh = 2.0  // must be greater than 1
	BrightnessLow  = 0.5  // border shade, in (0, 1)
	BorderWidth    = 4

	// Fonts
	BasicFontSize   = 24
	ButtonFontSize  = 18
	VictoryFontSize = 32

	// Victory banner spring
	SpringFrequency = 6.0
	SpringDamping   = 0.35
)

// Disk colors from the narrowest disk to the widest one.
var DiskColors = [...]string{
	"#f44336",
	"#9c27b0",
	"#3f51b5",
	"#03a9f4",
	"#009688",
	"#8bc34a",
	"#ffeb3b",
	"#ff9800",
}

// DisksCount is fixed by the palette.
const DisksCount = len(DiskColors)

const (
	ColorBackground = "#ffffff"
	ColorRod        = "#795548"
	ColorText       = "#1a237e"
	ColorButton     = "#1a237e"
	ColorButtonText = "#ffffff"
	ColorVictory    = "#e65100"
)

const (
	ButtonHelp  = "Help F1"
	ButtonSolve = "Solve F2"
	ButtonReset = "Reset F3"
	ButtonQuit  = "Quit F4"

	VictoryText   = "PUZZLE SOLVED!"
	CounterPrefix = "Steps: "
	TimerPrefix   = "Time: "
)

var HelpLines = []string{
	"THE TOWER OF HANOI",
	"a mathematical game",
	"",
	"The objective is to move the entire stack to the last rod.",
	"Only one disk may be moved at a time.",
	"No disk may be placed on top of a disk that is smaller than it.",
	"",
	"Select source or target tower by mouse click.",
	"Also you can use numeric keyboard buttons for quick selecting.",
	"F1 - help screen | F2 - automatic solution | F3 - reset puzzle",
	"F4 - quit | F11 - fullscreen | ESC - cancel selection | M - mute",
	"",
	"Press any key to continue...",
}

// Sound
const (
	SampleRate   = 44100
	SoundVolume  = -1.0 // effects.Volume exponent, base 2
	ClickTone    = 880.0
	LandTone     = 440.0
	VictoryTone  = 660.0
	ToneDuration = 0.12 // seconds
)
