package field

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tetra/internal/core"
	"github.com/vovakirdan/tetra/internal/piece"
)

// visibleRows is how many rows of a tall board are drawn. Shallow boards are
// always drawn whole.
const visibleRows = 20

// colorer is implemented by boards that remember which piece filled a cell.
type colorer interface {
	ColorAt(x, y int) piece.Color
}

// cellKind is what one rendered cell shows.
type cellKind int

const (
	cellEmpty cellKind = iota
	cellGhost
	cellStack
	cellActive
)

type cell struct {
	kind  cellKind
	color piece.Color
}

// firstVisibleRow returns the topmost drawn row.
func (f *Field) firstVisibleRow() int {
	return core.Max(0, f.Board.Height()-visibleRows)
}

// cells builds the overlay of stack, ghost and active piece.
func (f *Field) cells() [][]cell {
	h, w := f.Board.Height(), f.Board.Width()
	grid := make([][]cell, h)
	cb, hasColors := f.Board.(colorer)
	for y := range grid {
		grid[y] = make([]cell, w)
		for x := range grid[y] {
			if !f.Board.Occupied(x, y) {
				continue
			}
			c := piece.Garbage
			if hasColors {
				c = cb.ColorAt(x, y)
			}
			grid[y][x] = cell{kind: cellStack, color: c}
		}
	}

	put := func(p piece.Piece, kind cellKind) {
		for _, m := range p.Minos() {
			if m.Y >= 0 && m.Y < h && m.X >= 0 && m.X < w && grid[m.Y][m.X].kind < kind {
				grid[m.Y][m.X] = cell{kind: kind, color: p.Color}
			}
		}
	}
	if ghost, ok := f.Ghost(); ok {
		put(ghost, cellGhost)
	}
	if f.Active != nil {
		put(*f.Active, cellActive)
	}
	return grid
}

// String renders the field as text: '.' empty, piece letters for the stack,
// lowercase letters for the active piece and ':' for its landing spot.
func (f *Field) String() string {
	grid := f.cells()
	var sb strings.Builder
	for y := f.firstVisibleRow(); y < len(grid); y++ {
		for _, c := range grid[y] {
			switch c.kind {
			case cellEmpty:
				sb.WriteByte('.')
			case cellGhost:
				sb.WriteByte(':')
			case cellStack:
				sb.WriteRune(c.color.Char())
			case cellActive:
				sb.WriteString(strings.ToLower(c.color.String()))
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Draw renders the field into dst with its top-left box corner at (x, y).
// Each board cell is two characters wide.
func (f *Field) Draw(dst *core.Screen, x, y int) core.Rect {
	grid := f.cells()
	top := f.firstVisibleRow()
	rows := len(grid) - top
	box := core.NewRect(x, y, f.Board.Width()*2+2, rows+2)
	dst.DrawBox(box)

	for row := 0; row < rows; row++ {
		for col, c := range grid[top+row] {
			sx, sy := x+1+col*2, y+1+row
			switch c.kind {
			case cellEmpty:
				dst.SetColored(sx, sy, ' ', core.ColorDim)
				dst.SetColored(sx+1, sy, '.', core.ColorDim)
			case cellGhost:
				dst.SetColored(sx, sy, '░', core.ColorGray)
				dst.SetColored(sx+1, sy, '░', core.ColorGray)
			default:
				dst.SetColored(sx, sy, '█', c.color.ScreenColor())
				dst.SetColored(sx+1, sy, '█', c.color.ScreenColor())
			}
		}
	}
	return box
}

// DrawSidebar renders the queue preview and counters to the right of box.
func (f *Field) DrawSidebar(dst *core.Screen, box core.Rect, preview int) {
	x := box.Right() + 2
	y := box.Y
	dst.DrawText(x, y, "NEXT")
	for i, c := range f.Preview(preview) {
		dst.SetColored(x+i*2, y+1, c.Char(), c.ScreenColor())
	}
	dst.DrawText(x, y+3, fmt.Sprintf("Pieces %d", f.pieces))
	dst.DrawText(x, y+4, fmt.Sprintf("Lines  %d", f.lines))
	if f.Active != nil {
		dst.DrawText(x, y+6, f.Active.String())
	}
}
