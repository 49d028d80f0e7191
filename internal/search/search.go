// Package search enumerates the resting placements a piece can reach on a
// board using the engine's own moves.
package search

import (
	"context"
	"slices"

	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/tetra/internal/board"
	"github.com/vovakirdan/tetra/internal/core"
	"github.com/vovakirdan/tetra/internal/piece"
)

// move is one player input applied to a pose in place.
type move func(b board.Board, p *piece.Piece)

var moves = []move{
	func(b board.Board, p *piece.Piece) { shift(b, p, -1) },
	func(b board.Board, p *piece.Piece) { shift(b, p, 1) },
	func(b board.Board, p *piece.Piece) { b.DAS(p, piece.West) },
	func(b board.Board, p *piece.Piece) { b.DAS(p, piece.East) },
	func(b board.Board, p *piece.Piece) { b.Rotate(p, 1) },
	func(b board.Board, p *piece.Piece) { b.Rotate(p, -1) },
	func(b board.Board, p *piece.Piece) { b.Rotate(p, 2) },
	func(b board.Board, p *piece.Piece) { b.ApplyGravity(p) },
}

func shift(b board.Board, p *piece.Piece, dx int) {
	moved := p.Moved(core.V(dx, 0))
	if !b.Collides(moved) {
		*p = moved
	}
}

// Find returns every distinct pose reachable from start that could lock.
// Poses covering the same cells are reported once. Results are ordered by
// landing cells, bottom row first. A start pose that collides yields nothing.
func Find(b board.Board, start piece.Piece) []piece.Piece {
	if b.Collides(start) {
		return nil
	}

	seen := map[piece.Piece]bool{start: true}
	queue := []piece.Piece{start}
	var placements []piece.Piece

	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]

		if b.CanPlace(p) {
			placements = append(placements, p)
		}
		for _, m := range moves {
			next := p
			m(b, &next)
			if !seen[next] {
				seen[next] = true
				queue = append(queue, next)
			}
		}
	}

	placements = lo.UniqBy(placements, Footprint)
	slices.SortFunc(placements, compareFootprints)
	return placements
}

// Result is the placement list for one piece color.
type Result struct {
	Color      piece.Color
	Placements []piece.Piece
}

// FindAll searches every color in parallel, starting each from spawn facing
// north. The board is only read. Results keep the order of colors.
func FindAll(ctx context.Context, b board.Board, spawn core.Vec2, colors []piece.Color) ([]Result, error) {
	results := make([]Result, len(colors))
	g, ctx := errgroup.WithContext(ctx)

	for i, c := range colors {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = Result{
				Color:      c,
				Placements: Find(b, piece.New(c, piece.North, spawn)),
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Footprint returns the occupied cells of p in a canonical order.
func Footprint(p piece.Piece) [4]core.Vec2 {
	minos := p.Minos()
	slices.SortFunc(minos[:], compareCells)
	return minos
}

// Count returns the total number of placements across results.
func Count(results []Result) int {
	return lo.SumBy(results, func(r Result) int { return len(r.Placements) })
}

func compareCells(a, b core.Vec2) int {
	if a.Y != b.Y {
		return b.Y - a.Y
	}
	return a.X - b.X
}

func compareFootprints(a, b piece.Piece) int {
	fa, fb := Footprint(a), Footprint(b)
	for i := range fa {
		if c := compareCells(fa[i], fb[i]); c != 0 {
			return c
		}
	}
	return 0
}
