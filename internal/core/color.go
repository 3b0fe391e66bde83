package core

// Color is the foreground colour of a screen cell.
// The platform layer maps these onto ANSI codes.
type Color uint8

// Palette used by the invasion renderer.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightCyan
	ColorGray
)
