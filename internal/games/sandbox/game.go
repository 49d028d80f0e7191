// Package sandbox implements the playable modes built on the board engine:
// a shallow perfect-clear trainer on the packed board and a regular stacking
// field on the full board.
package sandbox

import (
	"fmt"

	"github.com/vovakirdan/tetra/internal/board"
	"github.com/vovakirdan/tetra/internal/config"
	"github.com/vovakirdan/tetra/internal/core"
	"github.com/vovakirdan/tetra/internal/field"
	"github.com/vovakirdan/tetra/internal/fixtures"
	"github.com/vovakirdan/tetra/internal/piece"
	"github.com/vovakirdan/tetra/internal/registry"
)

// Mode IDs.
const (
	IDPerfectClear = "pc"
	IDStack        = "stack"
)

// sidebarWidth is the space reserved right of the board for the queue.
const sidebarWidth = 16

// Package-level settings applied on the next Reset.
var (
	sandboxConfig = config.DefaultSandboxConfig()
	startFixture  *fixtures.Fixture
)

// SetConfig replaces the sandbox configuration.
func SetConfig(cfg config.SandboxConfig) {
	sandboxConfig = cfg
}

// SetFixture makes new sessions start from f. Pass nil to start empty.
// A fixture only applies to the mode with a matching board kind.
func SetFixture(f *fixtures.Fixture) {
	startFixture = f
}

// Game is one sandbox session.
type Game struct {
	kind string
	cfg  config.SandboxConfig

	field      *field.Field
	difficulty *config.DifficultyManager

	ticks         int
	gravityTimer  int
	lockTimer     int
	perfectClears int
	lastClear     int
	clearTicks    int
	paused        bool
}

// NewPerfectClear creates the packed-board mode.
func NewPerfectClear() *Game {
	return &Game{kind: config.KindPacked}
}

// NewStack creates the full-board mode.
func NewStack() *Game {
	return &Game{kind: config.KindFull}
}

// ModeIDFor returns the mode that plays boards of the given kind.
func ModeIDFor(kind string) string {
	if kind == config.KindFull {
		return IDStack
	}
	return IDPerfectClear
}

func init() {
	registry.Register(IDPerfectClear, func() registry.Mode {
		return NewPerfectClear()
	})
	registry.Register(IDStack, func() registry.Mode {
		return NewStack()
	})
}

// ID returns the mode identifier.
func (g *Game) ID() string {
	return ModeIDFor(g.kind)
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.kind == config.KindFull {
		return "Stack (10x24)"
	}
	return "Perfect Clear (10x6)"
}

// Field exposes the running field.
func (g *Game) Field() *field.Field {
	return g.field
}

// PerfectClears returns how many locks left the board empty.
func (g *Game) PerfectClears() int {
	return g.perfectClears
}

// Reset starts a new session.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.cfg = sandboxConfig
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)
	g.ticks = 0
	g.gravityTimer = 0
	g.lockTimer = 0
	g.perfectClears = 0
	g.lastClear = 0
	g.clearTicks = 0
	g.paused = false

	sp := g.cfg.SpawnFor(g.kind)
	spawn := core.V(sp.X, sp.Y)

	var b board.Board
	var active *piece.Piece
	if f := startFixture; f != nil && f.Kind == g.kind {
		b = f.Board()
		if p, ok := f.Piece(); ok {
			active = &p
		}
	} else if g.kind == config.KindFull {
		b = board.NewFull()
	} else {
		packed := board.NewPacked()
		b = &packed
	}

	g.field = field.New(b, spawn, rc.Seed)
	if active != nil && !b.Collides(*active) {
		g.field.Active = active
		return
	}
	g.field.SpawnNext()
}

// Step advances the session by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.field.ToppedOut() {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.ticks++
	if g.clearTicks > 0 {
		g.clearTicks--
	}

	for _, a := range in.Actions {
		g.apply(a)
		if g.field.Active == nil {
			break
		}
	}

	g.gravityTimer++
	interval := g.difficulty.GravityTicks(g.cfg.Timing.GravityTicks, g.field.Lines(), g.ticks)
	if g.gravityTimer >= interval {
		g.gravityTimer = 0
		g.field.SoftDrop()
	}

	if g.field.Grounded() {
		g.lockTimer++
		if g.lockTimer > g.cfg.Timing.LockDelay {
			g.lock()
		}
	} else {
		g.lockTimer = 0
	}

	return core.StepResult{State: g.State()}
}

// apply performs one input action on the active piece.
func (g *Game) apply(a core.Action) {
	f := g.field
	switch a {
	case core.ActionLeft:
		f.Shift(-1)
	case core.ActionRight:
		f.Shift(1)
	case core.ActionDASLeft:
		f.DAS(piece.West)
	case core.ActionDASRight:
		f.DAS(piece.East)
	case core.ActionSoftDrop:
		if f.SoftDrop() {
			g.gravityTimer = 0
		}
	case core.ActionSonicDrop:
		f.SonicDrop()
	case core.ActionHardDrop:
		f.SonicDrop()
		g.lock()
	case core.ActionRotateCW:
		f.Rotate(1)
	case core.ActionRotateCCW:
		f.Rotate(-1)
	case core.ActionRotate180:
		f.Rotate(2)
	}
}

// lock locks the active piece and tracks clears.
func (g *Game) lock() {
	cleared := g.field.Lock()
	g.lockTimer = 0
	g.gravityTimer = 0
	if cleared == 0 {
		return
	}
	g.lastClear = cleared
	g.clearTicks = 60
	if boardEmpty(g.field.Board) {
		g.perfectClears++
	}
}

func boardEmpty(b board.Board) bool {
	for y := 0; y < b.Height(); y++ {
		for x := 0; x < b.Width(); x++ {
			if b.Occupied(x, y) {
				return false
			}
		}
	}
	return true
}

// Render draws the board, queue and status to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	boardW := board.Width*2 + 2
	boardH := g.field.Board.Height() + 2
	if g.field.Board.Height() > 20 {
		boardH = 22
	}
	x := core.Max(0, (dst.Width()-boardW-sidebarWidth)/2)
	y := core.Max(1, (dst.Height()-boardH)/2)

	dst.DrawText(x, y-1, g.Title())
	box := g.field.Draw(dst, x, y)
	g.field.DrawSidebar(dst, box, g.cfg.Queue.Preview)

	sx := box.Right() + 2
	if g.kind == config.KindPacked {
		dst.DrawText(sx, box.Y+5, fmt.Sprintf("PCs    %d", g.perfectClears))
	}
	if g.clearTicks > 0 {
		dst.SetColored(sx, box.Y+8, '*', core.ColorBrightWhite)
		dst.DrawText(sx+2, box.Y+8, clearName(g.lastClear, g.perfectClears > 0 && boardEmpty(g.field.Board)))
	}

	if g.paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
	if g.field.ToppedOut() {
		drawCenteredMessage(dst, "TOP OUT", fmt.Sprintf("Pieces: %d  |  Press R to restart", g.field.Pieces()))
	}
}

// clearName names a line clear for the status line.
func clearName(lines int, perfect bool) string {
	names := map[int]string{1: "Single", 2: "Double", 3: "Triple", 4: "Quad"}
	name, ok := names[lines]
	if !ok {
		name = fmt.Sprintf("%d lines", lines)
	}
	if perfect {
		name += " PC"
	}
	return name
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	cy := dst.Height() / 2
	boxW := core.Max(len(title), len(subtitle)) + 6
	boxX := (dst.Width() - boxW) / 2
	box := core.NewRect(boxX, cy-2, boxW, 5)

	for yy := box.Y; yy < box.Bottom(); yy++ {
		for xx := box.X; xx < box.Right(); xx++ {
			dst.Set(xx, yy, ' ')
		}
	}
	dst.DrawBox(box)
	dst.DrawTextCentered(cy-1, title)
	dst.DrawTextCentered(cy+1, subtitle)
}

// State returns the current counters and flags.
func (g *Game) State() core.ModeState {
	if g.field == nil {
		return core.ModeState{}
	}
	return core.ModeState{
		Pieces:   g.field.Pieces(),
		Lines:    g.field.Lines(),
		GameOver: g.field.ToppedOut(),
		Paused:   g.paused,
	}
}
