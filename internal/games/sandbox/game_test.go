package sandbox

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tetra/internal/config"
	"github.com/vovakirdan/tetra/internal/core"
	"github.com/vovakirdan/tetra/internal/fixtures"
	"github.com/vovakirdan/tetra/internal/piece"
	"github.com/vovakirdan/tetra/internal/registry"
)

func testConfig() config.SandboxConfig {
	cfg := config.DefaultSandboxConfig()
	cfg.Timing.GravityTicks = 1000
	cfg.Timing.LockDelay = 1000
	cfg.Difficulty.Enabled = false
	return cfg
}

func setup(t *testing.T, cfg config.SandboxConfig, f *fixtures.Fixture) {
	t.Helper()
	SetConfig(cfg)
	SetFixture(f)
	t.Cleanup(func() {
		SetConfig(config.DefaultSandboxConfig())
		SetFixture(nil)
	})
}

func frame(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.Seed = 12345
	return cfg
}

func TestModesRegistered(t *testing.T) {
	for _, id := range []string{IDPerfectClear, IDStack} {
		m, err := registry.Create(id)
		if err != nil {
			t.Fatalf("Create(%q) error: %v", id, err)
		}
		if m.ID() != id {
			t.Errorf("ID() = %q, expected %q", m.ID(), id)
		}
	}
	if ModeIDFor(config.KindFull) != IDStack || ModeIDFor(config.KindPacked) != IDPerfectClear {
		t.Error("ModeIDFor returned the wrong mode")
	}
}

func TestResetSpawnsPiece(t *testing.T) {
	setup(t, testConfig(), nil)

	tests := []struct {
		game  *Game
		spawn core.Vec2
	}{
		{NewPerfectClear(), core.V(4, 1)},
		{NewStack(), core.V(4, 3)},
	}
	for _, tt := range tests {
		t.Run(tt.game.ID(), func(t *testing.T) {
			tt.game.Reset(runtimeConfig())
			active := tt.game.Field().Active
			if active == nil || active.Position != tt.spawn {
				t.Errorf("active = %v, expected spawn at %v", active, tt.spawn)
			}
		})
	}
}

func TestHardDropLocks(t *testing.T) {
	setup(t, testConfig(), nil)
	g := NewStack()
	g.Reset(runtimeConfig())

	res := g.Step(frame(core.ActionHardDrop))
	if res.State.Pieces != 1 {
		t.Errorf("Pieces = %d, expected 1", res.State.Pieces)
	}
	if g.Field().Active == nil {
		t.Error("next piece should have spawned")
	}
}

func TestGravity(t *testing.T) {
	cfg := testConfig()
	cfg.Timing.GravityTicks = 3
	setup(t, cfg, nil)

	g := NewStack()
	g.Reset(runtimeConfig())
	start := g.Field().Active.Position

	for i := 0; i < 3; i++ {
		g.Step(core.NewInputFrame())
	}
	if got := g.Field().Active.Position; got != start.Add(core.Down) {
		t.Errorf("after 3 ticks piece at %v, expected %v", got, start.Add(core.Down))
	}
}

func TestLockDelay(t *testing.T) {
	cfg := testConfig()
	cfg.Timing.LockDelay = 2
	setup(t, cfg, nil)

	g := NewStack()
	g.Reset(runtimeConfig())

	g.Step(frame(core.ActionSonicDrop))
	g.Step(core.NewInputFrame())
	if g.State().Pieces != 0 {
		t.Fatal("piece locked before the delay ran out")
	}
	g.Step(core.NewInputFrame())
	if g.State().Pieces != 1 {
		t.Errorf("Pieces = %d after the delay, expected 1", g.State().Pieces)
	}
}

func TestPause(t *testing.T) {
	setup(t, testConfig(), nil)
	g := NewPerfectClear()
	g.Reset(runtimeConfig())
	start := *g.Field().Active

	if !g.Step(frame(core.ActionPause)).State.Paused {
		t.Fatal("pause did not take effect")
	}
	g.Step(frame(core.ActionDASLeft))
	if *g.Field().Active != start {
		t.Error("paused mode should ignore moves")
	}
	if g.Step(frame(core.ActionPause)).State.Paused {
		t.Error("second pause should resume")
	}
}

func TestActionsApplyInOrder(t *testing.T) {
	setup(t, testConfig(), nil)
	g := NewStack()
	g.Reset(runtimeConfig())
	g.Field().Active = &piece.Piece{Color: piece.T, Rotation: piece.North, Position: core.V(4, 3)}

	g.Step(frame(core.ActionRotateCW, core.ActionDASRight))
	p := g.Field().Active
	if p.Rotation != piece.East || p.Position != core.V(8, 3) {
		t.Errorf("piece = %v, expected T@E(8,3)", p)
	}

	g.Step(frame(core.ActionLeft, core.ActionRotate180))
	if p.Rotation != piece.West || p.Position.X != 7 {
		t.Errorf("piece = %v, expected west-facing at column 7", p)
	}
}

func TestFixturePerfectClear(t *testing.T) {
	f, err := fixtures.ParseYAML([]byte(`
id: single-pc
kind: packed
rows:
  - "###....###"
piece: {color: I, rotation: N, x: 4, y: 1}
`))
	if err != nil {
		t.Fatal(err)
	}
	setup(t, testConfig(), &f)

	g := NewPerfectClear()
	g.Reset(runtimeConfig())
	if g.Field().Active.Color != piece.I {
		t.Fatalf("fixture piece not used: %v", g.Field().Active)
	}

	res := g.Step(frame(core.ActionHardDrop))
	if res.State.Lines != 1 || g.PerfectClears() != 1 {
		t.Errorf("Lines = %d, PerfectClears = %d; expected 1 and 1", res.State.Lines, g.PerfectClears())
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Single PC") {
		t.Errorf("status line missing:\n%s", screen.String())
	}
}

func TestFixtureOfOtherKindIgnored(t *testing.T) {
	f, err := fixtures.ParseYAML([]byte("kind: full\nrows: [\"GGGGGGGGG.\"]\n"))
	if err != nil {
		t.Fatal(err)
	}
	setup(t, testConfig(), &f)

	g := NewPerfectClear()
	g.Reset(runtimeConfig())
	if g.Field().Board.Height() != 6 || g.Field().Board.Occupied(0, 5) {
		t.Error("packed mode should ignore a full-board fixture")
	}
}

func TestTopOut(t *testing.T) {
	f, err := fixtures.ParseYAML([]byte(`
kind: packed
rows:
  - "....#....."
  - "...###...."
  - "....#....."
  - "....#....."
  - "....#....."
  - "....#....."
`))
	if err != nil {
		t.Fatal(err)
	}
	setup(t, testConfig(), &f)

	g := NewPerfectClear()
	g.Reset(runtimeConfig())
	if !g.State().GameOver {
		t.Fatal("blocked spawn should top out")
	}
	if res := g.Step(frame(core.ActionHardDrop)); res.State.Pieces != 0 {
		t.Error("topped-out mode should not step")
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "TOP OUT") {
		t.Error("top-out message missing")
	}
}
