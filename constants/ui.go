package constants

// UI Layout Constants
const (
	// StatusBarHeight is the number of rows reserved at the bottom of the screen
	StatusBarHeight = 1

	// ModeIndicatorWidth is the consistent width for all mode indicators
	ModeIndicatorWidth = 7

	// Mode indicator text (all padded to ModeIndicatorWidth)
	ModeTextRun   = "  RUN  "
	ModeTextPause = " PAUSE "

	// HelpHint is shown on the right of the status bar
	HelpHint = "? help"

	// MutedMarker is shown in the status bar while audio is muted
	MutedMarker = "[muted]"
)

// HelpLines lists the controls shown by the help overlay
var HelpLines = []string{
	"Click and drag to create a bubble",
	"Rotate while dragging to scale its duration",
	"Click a bubble to pause or resume it",
	"Shift + click (or right click) a bubble to delete it",
	"Alt + drag (or middle drag) a bubble to move it",
	"Space: pause or resume all bubbles",
	"Enter: save current bubbles",
	"m: mute, q: quit",
}

// HelpFooter closes the help overlay text
const HelpFooter = "Esc or ? to close this help"
