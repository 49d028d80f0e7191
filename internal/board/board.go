// Package board implements the collision, rotation and movement engine.
//
// A Board answers three questions about a pose: does it collide, what legal
// pose results from a rotation request (with SRS kicks), and where does it end
// after a directional slide or one gravity step. Boards never hold piece state;
// callers pass a pose in and get a boolean or an updated pose back.
//
// Coordinates are screen-style: X grows right, Y grows down. Every read
// outside the stored area reports an occupied cell, so walls and the floor
// need no special-casing in callers.
package board

import (
	"errors"

	"github.com/vovakirdan/tetra/internal/core"
	"github.com/vovakirdan/tetra/internal/piece"
)

// Board geometry.
const (
	Width        = 10
	PackedHeight = 6
	FullHeight   = 24
	ShallowRows  = 4

	PackedCells  = Width * PackedHeight // 60
	ArrayCells   = Width * FullHeight   // 240
	ShallowCells = Width * ShallowRows  // 40
)

// Slide ceilings, board span plus one.
const (
	dasHorizontalSteps = Width + 1 // 11
	packedDropSpan     = 23
	fullDropSpan       = FullHeight + 1
)

var (
	// ErrIndexRange is returned when a flat cell index falls outside the
	// representable window.
	ErrIndexRange = errors.New("board: cell index out of range")

	// ErrCellCount is returned when a flat cell array has an unsupported length.
	ErrCellCount = errors.New("board: unsupported cell count")
)

// Board is the capability contract shared by every board representation.
// Solvers and the sandbox depend only on this interface.
type Board interface {
	Width() int
	Height() int

	// Tile returns the raw cell value; out-of-bounds cells are never 0.
	Tile(x, y int) uint8
	Occupied(x, y int) bool
	// SetTile and ClearTile silently ignore out-of-bounds coordinates.
	SetTile(x, y int, v uint8)
	ClearTile(x, y int)

	In4HBounds(pos core.Vec2) bool
	In6HBounds(pos core.Vec2) bool
	InBounds(pos core.Vec2) bool

	Collides(p piece.Piece) bool
	CanPlace(p piece.Piece) bool
	Rotate(p *piece.Piece, delta int) bool
	RotateWith(p *piece.Piece, delta int, kicks piece.KickSource) bool
	DAS(p *piece.Piece, dir piece.Direction)
	ApplyGravity(p *piece.Piece)

	// Array exports the board as a 240-cell row-major array.
	Array() [ArrayCells]uint8
	String() string
}

var (
	_ Board = (*Packed)(nil)
	_ Board = (*Full)(nil)
)

// In4HBounds reports whether pos lies in the top four rows of the window.
func In4HBounds(pos core.Vec2) bool {
	return pos.X >= 0 && pos.X < Width && pos.Y >= 0 && pos.Y < ShallowRows
}

// In6HBounds reports whether pos lies in the packed 10x6 window.
func In6HBounds(pos core.Vec2) bool {
	return pos.X >= 0 && pos.X < Width && pos.Y >= 0 && pos.Y < PackedHeight
}

// InBounds reports whether pos lies in the full 10x24 field.
func InBounds(pos core.Vec2) bool {
	return pos.X >= 0 && pos.X < Width && pos.Y >= 0 && pos.Y < FullHeight
}
