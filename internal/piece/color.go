// Package piece provides the tetromino catalogue consumed by the board engine:
// piece colors, orientations, poses, SRS shapes and kick tables.
package piece

import (
	"strings"

	"github.com/vovakirdan/tetra/internal/core"
)

// Color identifies a piece kind. Board cells store the same codes, so a
// locked mino keeps the color of the piece it came from.
type Color uint8

const (
	None Color = iota
	I
	J
	L
	O
	S
	T
	Z
	Garbage
)

// Colors lists the seven tetromino kinds in canonical order.
var Colors = []Color{I, J, L, O, S, T, Z}

var colorChars = [...]rune{'.', 'I', 'J', 'L', 'O', 'S', 'T', 'Z', 'G'}

// Char returns the single-letter name of the color ('.' for None).
func (c Color) Char() rune {
	if int(c) < len(colorChars) {
		return colorChars[c]
	}
	return '?'
}

// String returns the color letter.
func (c Color) String() string {
	return string(c.Char())
}

// IsPiece reports whether c is one of the seven tetrominoes.
func (c Color) IsPiece() bool {
	return c >= I && c <= Z
}

// ScreenColor returns the display color used by renderers.
func (c Color) ScreenColor() core.Color {
	switch c {
	case I:
		return core.ColorCyan
	case J:
		return core.ColorBlue
	case L:
		return core.ColorOrange
	case O:
		return core.ColorYellow
	case S:
		return core.ColorGreen
	case T:
		return core.ColorMagenta
	case Z:
		return core.ColorRed
	case Garbage:
		return core.ColorGray
	default:
		return core.ColorDefault
	}
}

// ParseColor parses a color letter (case-insensitive). '#' and 'X' are
// accepted as garbage, '.', '_' and ' ' as empty.
func ParseColor(s string) (Color, bool) {
	if len(s) != 1 {
		return None, false
	}
	switch ch := strings.ToUpper(s)[0]; ch {
	case '.', '_', ' ':
		return None, true
	case '#', 'X', 'G':
		return Garbage, true
	default:
		for i, r := range colorChars {
			if r == rune(ch) {
				return Color(i), true
			}
		}
	}
	return None, false
}

// ParseQueue parses a string of piece letters such as "TISZ".
func ParseQueue(s string) ([]Color, bool) {
	out := make([]Color, 0, len(s))
	for _, r := range s {
		c, ok := ParseColor(string(r))
		if !ok || !c.IsPiece() {
			return nil, false
		}
		out = append(out, c)
	}
	return out, true
}
