package board

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tetra/internal/core"
	"github.com/vovakirdan/tetra/internal/piece"
)

// Packed is a 10x6 shallow board stored in one word.
//
//	bits [0,4)   color tag (owned by the caller, not used for collision)
//	bits [4,64)  occupancy, bit 4 + x + y*10
//
// Only the six-row window is representable. Reads outside it report an
// occupied cell and writes outside it are dropped. Packed is a value type:
// copy it to branch a search, no locking is involved.
type Packed uint64

const (
	tagBits = 4
	tagMask = Packed(1<<tagBits - 1)

	// MaxDropDepth is the deepest legal pose Y on a packed board. Anything
	// deeper collides regardless of its minos.
	MaxDropDepth = PackedHeight
)

// NewPacked returns an empty packed board.
func NewPacked() Packed {
	return 0
}

// PackedFromArray builds a board from a 240-cell row-major array. Only the
// first 60 cells fit the window; nonzero means occupied.
func PackedFromArray(arr [ArrayCells]uint8) Packed {
	var b Packed
	for i := 0; i < PackedCells; i++ {
		if arr[i] != 0 {
			b |= 1 << (tagBits + i)
		}
	}
	return b
}

// PackedFrom4H builds a board from a 40-cell array covering window rows 0..3.
func PackedFrom4H(arr [ShallowCells]uint8) Packed {
	var tiles [ArrayCells]uint8
	copy(tiles[:], arr[:])
	return PackedFromArray(tiles)
}

// PackedFromCells builds a board from a loosely sized cell slice of 40, 60 or
// 240 entries.
func PackedFromCells(cells []uint8) (Packed, error) {
	switch len(cells) {
	case ShallowCells, PackedCells, ArrayCells:
	default:
		return 0, fmt.Errorf("%w: %d", ErrCellCount, len(cells))
	}

	var b Packed
	for i := 0; i < len(cells) && i < PackedCells; i++ {
		if err := b.SetCell(i, cells[i]); err != nil {
			return 0, err
		}
	}
	return b, nil
}

// cellIndex maps a coordinate to its window index.
func cellIndex(x, y int) (int, bool) {
	if !In6HBounds(core.V(x, y)) {
		return 0, false
	}
	return x + y*Width, true
}

// SetCell writes the cell at a flat window index. Unlike SetTile, an index
// outside the window is an error rather than a no-op, so a bad conversion is
// never aliased onto another bit.
func (b *Packed) SetCell(index int, v uint8) error {
	if index < 0 || index >= PackedCells {
		return fmt.Errorf("%w: %d", ErrIndexRange, index)
	}
	b.setBit(index, v != 0)
	return nil
}

func (b *Packed) setBit(index int, on bool) {
	bit := Packed(1) << (tagBits + index)
	if on {
		*b |= bit
	} else {
		*b &^= bit
	}
}

// Width returns the number of columns.
func (b Packed) Width() int { return Width }

// Height returns the number of stored rows.
func (b Packed) Height() int { return PackedHeight }

// Tile returns 1 for an occupied cell, 0 for an empty one, and 1 for any
// coordinate outside the window.
func (b Packed) Tile(x, y int) uint8 {
	i, ok := cellIndex(x, y)
	if !ok {
		return 1
	}
	return uint8(b >> (tagBits + i) & 1)
}

// Occupied reports whether the cell reads as filled.
func (b Packed) Occupied(x, y int) bool {
	return b.Tile(x, y) != 0
}

// SetTile marks the cell occupied for nonzero v and empty for zero.
func (b *Packed) SetTile(x, y int, v uint8) {
	if i, ok := cellIndex(x, y); ok {
		b.setBit(i, v != 0)
	}
}

// ClearTile empties the cell.
func (b *Packed) ClearTile(x, y int) {
	b.SetTile(x, y, 0)
}

// ColorTag returns the 4-bit side channel.
func (b Packed) ColorTag() piece.Color {
	return piece.Color(b & tagMask)
}

// SetColorTag stores c in the side channel without touching occupancy.
func (b *Packed) SetColorTag(c piece.Color) {
	*b = *b&^tagMask | Packed(c)&tagMask
}

// Cells returns the occupancy bitmap without the color tag.
func (b Packed) Cells() uint64 {
	return uint64(b >> tagBits)
}

// FilledCount returns the number of occupied cells in the window.
func (b Packed) FilledCount() int {
	n := 0
	for bits := b.Cells(); bits != 0; bits &= bits - 1 {
		n++
	}
	return n
}

func (b Packed) In4HBounds(pos core.Vec2) bool { return In4HBounds(pos) }
func (b Packed) In6HBounds(pos core.Vec2) bool { return In6HBounds(pos) }
func (b Packed) InBounds(pos core.Vec2) bool   { return InBounds(pos) }

func (b Packed) dropDepth() int { return MaxDropDepth }
func (b Packed) dropSpan() int  { return packedDropSpan }

// Collides reports whether the pose is below the guard depth or overlaps any
// occupied or out-of-window cell.
func (b Packed) Collides(p piece.Piece) bool {
	return collides(b, b.Occupied, p)
}

// CanPlace reports whether p is legal and resting on something.
func (b Packed) CanPlace(p piece.Piece) bool {
	return canPlace(b, p)
}

// Rotate turns p by delta quarter turns using SRS kicks.
func (b Packed) Rotate(p *piece.Piece, delta int) bool {
	return rotate(b, p, delta, piece.SRS)
}

// RotateWith turns p using the supplied kick tables.
func (b Packed) RotateWith(p *piece.Piece, delta int, kicks piece.KickSource) bool {
	return rotate(b, p, delta, kicks)
}

// DAS slides p as far as it goes toward dir. North is a no-op.
func (b Packed) DAS(p *piece.Piece, dir piece.Direction) {
	das(b, p, dir)
}

// ApplyGravity moves p down one row unless that collides.
func (b Packed) ApplyGravity(p *piece.Piece) {
	applyGravity(b, p)
}

// Array exports the window as the first 60 cells of a 240-cell array. Rows
// past the window were never stored and come back empty.
func (b Packed) Array() [ArrayCells]uint8 {
	var arr [ArrayCells]uint8
	for i := 0; i < PackedCells; i++ {
		arr[i] = uint8(b >> (tagBits + i) & 1)
	}
	return arr
}

// ToFull places the window on the bottom six rows of a full board.
// Occupied cells become garbage.
func (b Packed) ToFull() *Full {
	f := NewFull()
	offset := FullHeight - PackedHeight
	for y := 0; y < PackedHeight; y++ {
		for x := 0; x < Width; x++ {
			if b.Occupied(x, y) {
				f.SetTile(x, y+offset, uint8(piece.Garbage))
			}
		}
	}
	return f
}

// String renders the window top row first, '#' filled and '.' empty.
func (b Packed) String() string {
	var sb strings.Builder
	sb.Grow((Width + 1) * PackedHeight)
	for y := 0; y < PackedHeight; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < Width; x++ {
			if b.Occupied(x, y) {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}
