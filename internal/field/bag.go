package field

import (
	"math/rand"

	"github.com/vovakirdan/tetra/internal/piece"
)

// Bag is a seeded 7-bag randomizer: every group of seven draws contains each
// tetromino exactly once.
type Bag struct {
	rng     *rand.Rand
	pending []piece.Color
}

// NewBag creates a bag with a deterministic seed.
func NewBag(seed int64) *Bag {
	return &Bag{rng: rand.New(rand.NewSource(seed))}
}

func (b *Bag) refill() {
	next := make([]piece.Color, len(piece.Colors))
	copy(next, piece.Colors)
	b.rng.Shuffle(len(next), func(i, j int) {
		next[i], next[j] = next[j], next[i]
	})
	b.pending = append(b.pending, next...)
}

// Next draws the next piece.
func (b *Bag) Next() piece.Color {
	if len(b.pending) == 0 {
		b.refill()
	}
	c := b.pending[0]
	b.pending = b.pending[1:]
	return c
}

// Peek returns the next n pieces without drawing them.
func (b *Bag) Peek(n int) []piece.Color {
	for len(b.pending) < n {
		b.refill()
	}
	out := make([]piece.Color, n)
	copy(out, b.pending[:n])
	return out
}
