package core

// Color represents a foreground color for a screen cell.
// The platform layer maps each value to an ANSI 256-color code.
type Color uint8

// Palette used by the board renderer. Piece colors follow the guideline
// scheme; ghost and garbage cells are gray.
const (
	ColorDefault Color = iota
	ColorCyan
	ColorBlue
	ColorOrange
	ColorYellow
	ColorGreen
	ColorMagenta
	ColorRed
	ColorGray
	ColorDim
	ColorBrightWhite
)
