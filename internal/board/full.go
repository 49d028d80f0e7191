package board

import (
	"strings"

	"github.com/vovakirdan/tetra/internal/core"
	"github.com/vovakirdan/tetra/internal/piece"
)

// Full is a 10x24 board that keeps the raw color of every cell.
// Row 23 is the floor. Cells outside the field read as garbage.
type Full struct {
	cells [FullHeight][Width]uint8
}

// NewFull returns an empty full board.
func NewFull() *Full {
	return &Full{}
}

// FullFromArray builds a board from a 240-cell row-major array, row 0 first.
func FullFromArray(arr [ArrayCells]uint8) *Full {
	f := NewFull()
	for i, v := range arr {
		f.cells[i/Width][i%Width] = v
	}
	return f
}

// Clone returns an independent copy.
func (f *Full) Clone() *Full {
	c := *f
	return &c
}

func (f *Full) Width() int  { return Width }
func (f *Full) Height() int { return FullHeight }

// Tile returns the raw cell value, or the garbage code outside the field.
func (f *Full) Tile(x, y int) uint8 {
	if !InBounds(core.V(x, y)) {
		return uint8(piece.Garbage)
	}
	return f.cells[y][x]
}

// Occupied reports whether the cell is nonzero.
func (f *Full) Occupied(x, y int) bool {
	return f.Tile(x, y) != 0
}

// SetTile stores v. Writes outside the field are dropped.
func (f *Full) SetTile(x, y int, v uint8) {
	if InBounds(core.V(x, y)) {
		f.cells[y][x] = v
	}
}

// ClearTile empties the cell.
func (f *Full) ClearTile(x, y int) {
	f.SetTile(x, y, 0)
}

func (f *Full) In4HBounds(pos core.Vec2) bool { return In4HBounds(pos) }
func (f *Full) In6HBounds(pos core.Vec2) bool { return In6HBounds(pos) }
func (f *Full) InBounds(pos core.Vec2) bool   { return InBounds(pos) }

func (f *Full) dropDepth() int { return FullHeight }
func (f *Full) dropSpan() int  { return fullDropSpan }

func (f *Full) Collides(p piece.Piece) bool {
	return collides(f, f.Occupied, p)
}

func (f *Full) CanPlace(p piece.Piece) bool {
	return canPlace(f, p)
}

func (f *Full) Rotate(p *piece.Piece, delta int) bool {
	return rotate(f, p, delta, piece.SRS)
}

func (f *Full) RotateWith(p *piece.Piece, delta int, kicks piece.KickSource) bool {
	return rotate(f, p, delta, kicks)
}

func (f *Full) DAS(p *piece.Piece, dir piece.Direction) {
	das(f, p, dir)
}

func (f *Full) ApplyGravity(p *piece.Piece) {
	applyGravity(f, p)
}

// Array exports all 240 cells, row 0 first.
func (f *Full) Array() [ArrayCells]uint8 {
	var arr [ArrayCells]uint8
	for y := range f.cells {
		copy(arr[y*Width:], f.cells[y][:])
	}
	return arr
}

// ToPacked keeps the bottom six rows. Everything above is discarded.
func (f *Full) ToPacked() Packed {
	var b Packed
	offset := FullHeight - PackedHeight
	for y := 0; y < PackedHeight; y++ {
		for x := 0; x < Width; x++ {
			b.SetTile(x, y, f.cells[y+offset][x])
		}
	}
	return b
}

// String renders the field top row first using piece letters.
func (f *Full) String() string {
	var sb strings.Builder
	sb.Grow((Width + 1) * FullHeight)
	for y := 0; y < FullHeight; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < Width; x++ {
			sb.WriteRune(piece.Color(f.cells[y][x]).Char())
		}
	}
	return sb.String()
}

// ColorAt returns the piece color stored in the cell.
func (f *Full) ColorAt(x, y int) piece.Color {
	return piece.Color(f.Tile(x, y))
}
