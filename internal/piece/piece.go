package piece

import (
	"fmt"

	"github.com/vovakirdan/tetra/internal/core"
)

// Piece is a pose: color identity, orientation and rotation-center position
// in board coordinates. It is a plain value; copies never alias.
type Piece struct {
	Color    Color
	Rotation Direction
	Position core.Vec2
}

// New creates a pose.
func New(c Color, rot Direction, pos core.Vec2) Piece {
	return Piece{Color: c, Rotation: rot, Position: pos}
}

// Minos returns the board-space coordinates of the four occupied cells.
func (p Piece) Minos() [4]core.Vec2 {
	minos := Offsets(p.Color, p.Rotation)
	for i := range minos {
		minos[i] = minos[i].Add(p.Position)
	}
	return minos
}

// Moved returns a copy translated by v.
func (p Piece) Moved(v core.Vec2) Piece {
	p.Position = p.Position.Add(v)
	return p
}

// Rotated returns a copy turned by delta clockwise quarter turns, without kicks.
func (p Piece) Rotated(delta int) Piece {
	p.Rotation = p.Rotation.Add(delta)
	return p
}

// String formats the pose as "T@N(4,1)".
func (p Piece) String() string {
	return fmt.Sprintf("%s@%s%s", p.Color, p.Rotation, p.Position)
}
