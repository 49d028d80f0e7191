package field

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tetra/internal/board"
	"github.com/vovakirdan/tetra/internal/core"
	"github.com/vovakirdan/tetra/internal/piece"
)

var packedSpawn = core.V(4, 1)

func TestBagDealsEverySevenPieces(t *testing.T) {
	bag := NewBag(42)

	for round := 0; round < 3; round++ {
		seen := make(map[piece.Color]int)
		for i := 0; i < 7; i++ {
			seen[bag.Next()]++
		}
		for _, c := range piece.Colors {
			if seen[c] != 1 {
				t.Errorf("round %d: %v dealt %d times", round, c, seen[c])
			}
		}
	}
}

func TestBagPeekMatchesNext(t *testing.T) {
	bag := NewBag(7)
	peeked := bag.Peek(10)
	for i, want := range peeked {
		if got := bag.Next(); got != want {
			t.Errorf("draw %d = %v, Peek said %v", i, got, want)
		}
	}
}

func TestBagIsDeterministic(t *testing.T) {
	a, b := NewBag(99), NewBag(99)
	for i := 0; i < 21; i++ {
		if x, y := a.Next(), b.Next(); x != y {
			t.Fatalf("draw %d differs: %v vs %v", i, x, y)
		}
	}
}

func TestSpawnAndTopOut(t *testing.T) {
	b := board.NewPacked()
	f := New(&b, packedSpawn, 1)

	if !f.SpawnPiece(piece.T) {
		t.Fatal("spawn on an empty board failed")
	}
	if f.Active == nil || f.Active.Position != packedSpawn {
		t.Fatalf("active = %v", f.Active)
	}

	blocked := board.NewPacked()
	blocked.SetTile(4, 1, 1)
	g := New(&blocked, packedSpawn, 1)
	if g.SpawnPiece(piece.T) {
		t.Error("spawn into a block should fail")
	}
	if !g.ToppedOut() || g.Active != nil {
		t.Errorf("ToppedOut() = %v, Active = %v", g.ToppedOut(), g.Active)
	}
}

func TestShift(t *testing.T) {
	b := board.NewPacked()
	f := New(&b, packedSpawn, 1)
	f.SpawnPiece(piece.I)

	moves := 0
	for f.Shift(1) {
		moves++
	}
	if moves != 3 || f.Active.Position != core.V(7, 1) {
		t.Errorf("shifted %d times to %v, expected 3 to (7,1)", moves, f.Active.Position)
	}

	f.DAS(piece.West)
	if f.Active.Position != core.V(1, 1) {
		t.Errorf("DAS west = %v, expected (1,1)", f.Active.Position)
	}
}

func TestHardDropClearsLine(t *testing.T) {
	b := board.NewPacked()
	for x := 0; x < board.Width; x++ {
		if x < 3 || x > 6 {
			b.SetTile(x, 5, 1)
		}
	}
	b.SetTile(0, 4, 1)

	f := New(&b, packedSpawn, 1)
	f.SpawnPiece(piece.I)

	if cleared := f.HardDrop(); cleared != 1 {
		t.Errorf("HardDrop() cleared %d rows, expected 1", cleared)
	}
	if f.Lines() != 1 || f.Pieces() != 1 {
		t.Errorf("Lines() = %d, Pieces() = %d", f.Lines(), f.Pieces())
	}
	if !b.Occupied(0, 5) || b.FilledCount() != 1 {
		t.Errorf("after clear the leftover block should sit at (0,5):\n%s", b.String())
	}
	if f.Active == nil || f.ToppedOut() {
		t.Error("next piece should have spawned")
	}
}

func TestSonicDropStopsOnOverhang(t *testing.T) {
	b := board.NewPacked()
	b.SetTile(3, 2, 1)
	b.SetTile(4, 2, 1)
	b.SetTile(5, 2, 1)

	f := New(&b, packedSpawn, 1)
	f.SpawnPiece(piece.I)
	f.SonicDrop()
	if f.Active.Position != core.V(4, 1) {
		t.Errorf("SonicDrop = %v, expected to rest on the roof at (4,1)", f.Active.Position)
	}
	if !f.Grounded() {
		t.Error("piece on the roof should be grounded")
	}

	f.DAS(piece.South)
	if f.Active.Position != core.V(4, 5) {
		t.Errorf("DAS south = %v, expected (4,5) under the roof", f.Active.Position)
	}
}

func TestLockAboveBoardTopsOut(t *testing.T) {
	b := board.NewPacked()
	f := New(&b, packedSpawn, 1)
	p := piece.New(piece.T, piece.North, core.V(4, 0))
	f.Active = &p

	f.Lock()
	if !f.ToppedOut() {
		t.Error("locking a mino above the window should top out")
	}
	if f.Active != nil {
		t.Error("no piece should spawn after top-out")
	}
}

func TestClearLinesOnFullBoard(t *testing.T) {
	b := board.NewFull()
	for x := 0; x < board.Width; x++ {
		b.SetTile(x, 23, uint8(piece.Garbage))
		b.SetTile(x, 21, uint8(piece.Garbage))
	}
	b.SetTile(2, 22, uint8(piece.J))
	b.SetTile(5, 20, uint8(piece.L))

	if n := ClearLines(b); n != 2 {
		t.Fatalf("ClearLines() = %d, expected 2", n)
	}
	if b.ColorAt(2, 23) != piece.J {
		t.Errorf("(2,23) = %v, expected J", b.ColorAt(2, 23))
	}
	if b.ColorAt(5, 22) != piece.L {
		t.Errorf("(5,22) = %v, expected L", b.ColorAt(5, 22))
	}
	if b.Occupied(5, 20) {
		t.Error("(5,20) should have moved down")
	}
}

func TestFieldString(t *testing.T) {
	b := board.NewPacked()
	b.SetTile(0, 5, 1)
	f := New(&b, packedSpawn, 1)
	f.SpawnPiece(piece.T)

	expected := strings.Join([]string{
		"....t.....",
		"...ttt....",
		"..........",
		"..........",
		"....:.....",
		"G..:::....",
	}, "\n") + "\n"

	if got := f.String(); got != expected {
		t.Errorf("String() =\n%s\nexpected\n%s", got, expected)
	}
}

func TestDrawUsesTwoColumnsPerCell(t *testing.T) {
	b := board.NewFull()
	f := New(b, core.V(4, 3), 1)
	f.SpawnPiece(piece.O)

	screen := core.NewScreen(40, 24)
	box := f.Draw(screen, 0, 0)
	if box.W != 22 || box.H != 22 {
		t.Errorf("box = %dx%d, expected 22x22", box.W, box.H)
	}
	// Bottom visible row holds the ghost of the O at columns 4 and 5.
	if screen.Get(1+4*2, 20) != '░' || screen.Get(1+5*2+1, 20) != '░' {
		t.Errorf("ghost row = %q", screen.Row(20))
	}
}
