package board

import (
	"github.com/vovakirdan/tetra/internal/core"
	"github.com/vovakirdan/tetra/internal/piece"
)

// collider is what the movement algorithms need from a representation.
type collider interface {
	Collides(p piece.Piece) bool
	// dropDepth is the deepest Y a pose may have and still be legal.
	dropDepth() int
	// dropSpan bounds the upward scan of a south slide.
	dropSpan() int
}

// collides applies the depth guard and then tests every mino.
func collides(c collider, occupied func(x, y int) bool, p piece.Piece) bool {
	if p.Position.Y > c.dropDepth() {
		return true
	}
	for _, m := range p.Minos() {
		if occupied(m.X, m.Y) {
			return true
		}
	}
	return false
}

func canPlace(c collider, p piece.Piece) bool {
	if c.Collides(p) {
		return false
	}
	return c.Collides(p.Moved(core.Down))
}

// rotate tries each kick candidate in table order and commits the first one
// that does not collide. On failure p is left untouched.
func rotate(c collider, p *piece.Piece, delta int, kicks piece.KickSource) bool {
	turn := ((delta % 4) + 4) % 4
	from := p.Rotation
	to := from.Add(turn)

	var shifts [5]core.Vec2
	n := 0
	if turn == 2 {
		table := kicks.Kicks180(*p)
		for i := range table[from] {
			shifts[n] = table[from][i].Sub(table[to][i])
			n++
		}
	} else {
		table := kicks.Kicks(*p)
		for i := range table[from] {
			shifts[n] = table[from][i].Sub(table[to][i])
			n++
		}
	}

	for _, shift := range shifts[:n] {
		test := *p
		test.Rotation = to
		test.Position = p.Position.Add(shift)
		if !c.Collides(test) {
			*p = test
			return true
		}
	}
	return false
}

// das slides p toward dir. East and West bump one column at a time and undo
// the colliding step. South jumps to the guard depth and scans upward for the
// first row that fits, so the pose lands in the lowest free row of its
// column even below an overhang. If no row fits, p is restored.
func das(c collider, p *piece.Piece, dir piece.Direction) {
	switch dir {
	case piece.East, piece.West:
		step := core.Right
		if dir == piece.West {
			step = core.Left
		}
		for i := 0; i < dasHorizontalSteps; i++ {
			p.Position = p.Position.Add(step)
			if c.Collides(*p) {
				p.Position = p.Position.Sub(step)
				return
			}
		}
	case piece.South:
		start := p.Position
		p.Position.Y = c.dropDepth()
		for i := 0; i < c.dropSpan(); i++ {
			if !c.Collides(*p) {
				return
			}
			p.Position = p.Position.Add(core.Up)
		}
		p.Position = start
	}
}

func applyGravity(c collider, p *piece.Piece) {
	p.Position = p.Position.Add(core.Down)
	if c.Collides(*p) {
		p.Position = p.Position.Sub(core.Down)
	}
}
