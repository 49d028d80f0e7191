// Package field combines a board with an active piece and a piece queue.
// It is the game-loop side of the engine: spawning, player moves, locking
// and line clears. All collision questions are delegated to the board.
package field

import (
	"github.com/vovakirdan/tetra/internal/board"
	"github.com/vovakirdan/tetra/internal/core"
	"github.com/vovakirdan/tetra/internal/piece"
)

// Field is a board plus the piece currently under player control.
type Field struct {
	Board  board.Board
	Active *piece.Piece // nil between lock and spawn, or after top-out
	Spawn  core.Vec2

	bag       *Bag
	pieces    int
	lines     int
	toppedOut bool
}

// New creates a field over b. Pieces spawn north-facing at spawn.
func New(b board.Board, spawn core.Vec2, seed int64) *Field {
	return &Field{
		Board: b,
		Spawn: spawn,
		bag:   NewBag(seed),
	}
}

// Pieces returns the number of locked pieces.
func (f *Field) Pieces() int { return f.pieces }

// Lines returns the number of cleared rows.
func (f *Field) Lines() int { return f.lines }

// ToppedOut reports whether a spawn or lock failed.
func (f *Field) ToppedOut() bool { return f.toppedOut }

// Preview returns the next n queued pieces.
func (f *Field) Preview(n int) []piece.Color {
	return f.bag.Peek(n)
}

// SpawnPiece places a new active piece of color c. It returns false and marks
// the field topped out when the spawn pose collides.
func (f *Field) SpawnPiece(c piece.Color) bool {
	p := piece.New(c, piece.North, f.Spawn)
	if f.Board.Collides(p) {
		f.Active = nil
		f.toppedOut = true
		return false
	}
	f.Active = &p
	return true
}

// SpawnNext spawns the next piece from the bag.
func (f *Field) SpawnNext() bool {
	return f.SpawnPiece(f.bag.Next())
}

// Shift moves the active piece one column. It reports whether it moved.
func (f *Field) Shift(dx int) bool {
	if f.Active == nil {
		return false
	}
	moved := f.Active.Moved(core.V(dx, 0))
	if f.Board.Collides(moved) {
		return false
	}
	*f.Active = moved
	return true
}

// DAS slides the active piece toward dir.
func (f *Field) DAS(dir piece.Direction) {
	if f.Active != nil {
		f.Board.DAS(f.Active, dir)
	}
}

// Rotate turns the active piece with kicks.
func (f *Field) Rotate(delta int) bool {
	if f.Active == nil {
		return false
	}
	return f.Board.Rotate(f.Active, delta)
}

// SoftDrop applies one gravity step. It reports whether the piece moved.
func (f *Field) SoftDrop() bool {
	if f.Active == nil {
		return false
	}
	before := f.Active.Position
	f.Board.ApplyGravity(f.Active)
	return f.Active.Position != before
}

// SonicDrop lets the piece fall row by row until it rests. Unlike a south
// DAS it never passes through an overhang.
func (f *Field) SonicDrop() {
	if f.Active == nil {
		return
	}
	dropToRest(f.Board, f.Active)
}

// Grounded reports whether the active piece could lock now.
func (f *Field) Grounded() bool {
	return f.Active != nil && f.Board.CanPlace(*f.Active)
}

// Ghost returns where the active piece would land.
func (f *Field) Ghost() (piece.Piece, bool) {
	if f.Active == nil {
		return piece.Piece{}, false
	}
	g := *f.Active
	dropToRest(f.Board, &g)
	return g, true
}

// HardDrop drops and locks the active piece, then spawns the next one.
// It returns the number of rows cleared.
func (f *Field) HardDrop() int {
	if f.Active == nil {
		return 0
	}
	f.SonicDrop()
	return f.Lock()
}

// Lock writes the active piece into the board, clears full rows and spawns
// the next piece. Minos that fall outside the board top the field out.
func (f *Field) Lock() int {
	if f.Active == nil {
		return 0
	}
	p := *f.Active
	f.Active = nil

	for _, m := range p.Minos() {
		if m.X < 0 || m.X >= f.Board.Width() || m.Y < 0 || m.Y >= f.Board.Height() {
			f.toppedOut = true
			continue
		}
		f.Board.SetTile(m.X, m.Y, uint8(p.Color))
	}
	f.pieces++

	cleared := ClearLines(f.Board)
	f.lines += cleared

	if !f.toppedOut {
		f.SpawnNext()
	}
	return cleared
}

// dropToRest applies gravity until the pose stops moving. The loop is
// bounded by the board height.
func dropToRest(b board.Board, p *piece.Piece) {
	for i := 0; i <= b.Height(); i++ {
		before := p.Position
		b.ApplyGravity(p)
		if p.Position == before {
			return
		}
	}
}

// ClearLines removes every full row of b, shifting the rows above it down.
// It returns the number of rows removed.
func ClearLines(b board.Board) int {
	cleared := 0
	for y := b.Height() - 1; y >= 0; {
		if !rowFull(b, y) {
			y--
			continue
		}
		for row := y; row > 0; row-- {
			for x := 0; x < b.Width(); x++ {
				b.SetTile(x, row, b.Tile(x, row-1))
			}
		}
		for x := 0; x < b.Width(); x++ {
			b.ClearTile(x, 0)
		}
		cleared++
	}
	return cleared
}

func rowFull(b board.Board, y int) bool {
	for x := 0; x < b.Width(); x++ {
		if !b.Occupied(x, y) {
			return false
		}
	}
	return true
}
