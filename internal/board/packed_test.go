package board

import (
	"errors"
	"strings"
	"testing"

	"github.com/vovakirdan/tetra/internal/core"
	"github.com/vovakirdan/tetra/internal/piece"
)

// stackedS4H is the shallow field used by the S-kick scenario.
var stackedS4H = [ShallowCells]uint8{
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	8, 8, 8, 8, 8, 0, 0, 8, 8, 8,
	8, 8, 8, 8, 0, 0, 8, 8, 8, 8,
}

func TestPackedFrom4HRoundTrip(t *testing.T) {
	b := PackedFrom4H(stackedS4H)

	for y := 0; y < ShallowRows; y++ {
		for x := 0; x < Width; x++ {
			var want uint8
			if stackedS4H[y*Width+x] != 0 {
				want = 1
			}
			if got := b.Tile(x, y); got != want {
				t.Errorf("Tile(%d, %d) = %d, expected %d", x, y, got, want)
			}
		}
	}
	for y := ShallowRows; y < PackedHeight; y++ {
		for x := 0; x < Width; x++ {
			if b.Occupied(x, y) {
				t.Errorf("row %d should be empty, (%d, %d) is occupied", y, x, y)
			}
		}
	}
	if b.FilledCount() != 16 {
		t.Errorf("FilledCount() = %d, expected 16", b.FilledCount())
	}
}

func TestPackedWallInvariant(t *testing.T) {
	boards := map[string]Packed{
		"empty":   NewPacked(),
		"stacked": PackedFrom4H(stackedS4H),
		"full":    Packed(^uint64(0)),
	}

	for name, b := range boards {
		t.Run(name, func(t *testing.T) {
			for y := -3; y < 30; y++ {
				for x := -3; x < 13; x++ {
					if In6HBounds(core.V(x, y)) {
						continue
					}
					if b.Tile(x, y) != 1 {
						t.Errorf("Tile(%d, %d) = 0 outside the window", x, y)
					}
				}
			}
		})
	}
}

func TestPackedSetClearTile(t *testing.T) {
	b := NewPacked()

	b.SetTile(4, 2, 1)
	if !b.Occupied(4, 2) {
		t.Error("SetTile(4, 2) should occupy the cell")
	}
	if b.FilledCount() != 1 {
		t.Errorf("FilledCount() = %d, expected 1", b.FilledCount())
	}

	b.SetTile(4, 2, 7)
	if b.Tile(4, 2) != 1 {
		t.Errorf("nonzero writes read back as 1, got %d", b.Tile(4, 2))
	}

	b.ClearTile(4, 2)
	if b.Occupied(4, 2) {
		t.Error("ClearTile(4, 2) should empty the cell")
	}

	// Writes outside the window are no-ops.
	before := b
	b.SetTile(-1, 0, 1)
	b.SetTile(10, 0, 1)
	b.SetTile(0, 6, 1)
	b.SetTile(0, -1, 1)
	if b != before {
		t.Errorf("out-of-window writes changed the board: %x -> %x", uint64(before), uint64(b))
	}
}

func TestPackedCopyIsIndependent(t *testing.T) {
	a := NewPacked()
	b := a
	b.SetTile(0, 5, 1)

	if a.Occupied(0, 5) {
		t.Error("mutating a copy changed the original")
	}
}

func TestPackedColorTag(t *testing.T) {
	b := PackedFrom4H(stackedS4H)
	cells := b.Cells()

	b.SetColorTag(piece.T)
	if b.ColorTag() != piece.T {
		t.Errorf("ColorTag() = %v, expected T", b.ColorTag())
	}
	if b.Cells() != cells {
		t.Error("SetColorTag changed occupancy")
	}

	b.SetTile(9, 5, 1)
	if b.ColorTag() != piece.T {
		t.Error("SetTile changed the color tag")
	}

	b.SetColorTag(piece.Garbage)
	if b.ColorTag() != piece.Garbage {
		t.Errorf("ColorTag() = %v, expected G", b.ColorTag())
	}

	b.SetColorTag(piece.Color(0x11))
	if b.ColorTag() != piece.I {
		t.Errorf("tag should keep only 4 bits, got %d", b.ColorTag())
	}
}

func TestPackedArrayIsLossy(t *testing.T) {
	var arr [ArrayCells]uint8
	arr[0] = 3
	arr[59] = 8
	arr[60] = 8  // row 6
	arr[239] = 1 // row 23

	b := PackedFromArray(arr)
	out := b.Array()

	if out[0] != 1 || out[59] != 1 {
		t.Errorf("window cells lost: out[0]=%d out[59]=%d", out[0], out[59])
	}
	for i := PackedCells; i < ArrayCells; i++ {
		if out[i] != 0 {
			t.Fatalf("cell %d beyond the window reported %d, expected 0", i, out[i])
		}
	}
}

func TestPackedFromCells(t *testing.T) {
	tests := []struct {
		name    string
		cells   []uint8
		wantErr error
		filled  int
	}{
		{"four rows", stackedS4H[:], nil, 16},
		{"six rows", make([]uint8, PackedCells), nil, 0},
		{"full array", make([]uint8, ArrayCells), nil, 0},
		{"odd length", make([]uint8, 7), ErrCellCount, 0},
		{"empty", nil, ErrCellCount, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b, err := PackedFromCells(tc.cells)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("error = %v, expected %v", err, tc.wantErr)
			}
			if err == nil && b.FilledCount() != tc.filled {
				t.Errorf("FilledCount() = %d, expected %d", b.FilledCount(), tc.filled)
			}
		})
	}
}

func TestPackedSetCellRejectsOutOfRange(t *testing.T) {
	var b Packed
	for _, idx := range []int{-1, PackedCells, 64, 1 << 20} {
		if err := b.SetCell(idx, 1); !errors.Is(err, ErrIndexRange) {
			t.Errorf("SetCell(%d) error = %v, expected ErrIndexRange", idx, err)
		}
	}
	if b != 0 {
		t.Errorf("rejected writes changed the board: %x", uint64(b))
	}
	if err := b.SetCell(PackedCells-1, 1); err != nil {
		t.Errorf("SetCell(59) error = %v", err)
	}
	if !b.Occupied(9, 5) {
		t.Error("SetCell(59) should occupy (9, 5)")
	}
}

func TestPackedString(t *testing.T) {
	b := NewPacked()
	b.SetTile(0, 5, 1)
	b.SetTile(9, 0, 1)

	lines := strings.Split(b.String(), "\n")
	if len(lines) != PackedHeight {
		t.Fatalf("String() has %d lines, expected %d", len(lines), PackedHeight)
	}
	if lines[0] != ".........#" {
		t.Errorf("top row = %q", lines[0])
	}
	if lines[5] != "#........." {
		t.Errorf("bottom row = %q", lines[5])
	}
}

func TestPackedToFullAndBack(t *testing.T) {
	b := PackedFrom4H(stackedS4H)
	b.SetTile(0, 5, 1)

	f := b.ToFull()
	if f.Tile(0, 23) != uint8(piece.Garbage) {
		t.Errorf("full (0, 23) = %d, expected garbage", f.Tile(0, 23))
	}
	if f.Occupied(0, 17) {
		t.Error("rows above the window should stay empty")
	}
	if back := f.ToPacked(); back != b {
		t.Errorf("ToFull().ToPacked() = %x, expected %x", uint64(back), uint64(b))
	}
}

func TestBoundsPredicates(t *testing.T) {
	tests := []struct {
		pos              core.Vec2
		in4, in6, inFull bool
	}{
		{core.V(0, 0), true, true, true},
		{core.V(9, 3), true, true, true},
		{core.V(9, 4), false, true, true},
		{core.V(9, 5), false, true, true},
		{core.V(0, 6), false, false, true},
		{core.V(0, 23), false, false, true},
		{core.V(0, 24), false, false, false},
		{core.V(-1, 0), false, false, false},
		{core.V(10, 0), false, false, false},
	}

	var b Packed
	for _, tc := range tests {
		if got := b.In4HBounds(tc.pos); got != tc.in4 {
			t.Errorf("In4HBounds(%v) = %v, expected %v", tc.pos, got, tc.in4)
		}
		if got := b.In6HBounds(tc.pos); got != tc.in6 {
			t.Errorf("In6HBounds(%v) = %v, expected %v", tc.pos, got, tc.in6)
		}
		if got := b.InBounds(tc.pos); got != tc.inFull {
			t.Errorf("InBounds(%v) = %v, expected %v", tc.pos, got, tc.inFull)
		}
	}
}
