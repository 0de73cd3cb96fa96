package core

// Color is the foreground color of a screen cell.
// The platform layer maps each value to an ANSI 256-color style.
type Color uint8

// Colors used by the field, HUD and overlays.
const (
	ColorDefault Color = iota
	ColorYellow
	ColorMagenta
	ColorCyan
	ColorOrange
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightWhite
)
