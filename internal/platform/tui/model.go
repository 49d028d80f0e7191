package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tetra/internal/core"
	"github.com/vovakirdan/tetra/internal/registry"
)

// helpHeight is the number of rows kept free below the mode for key help.
const helpHeight = 1

// Model is the Bubble Tea model for running a sandbox mode.
type Model struct {
	mode       registry.Mode
	screen     *core.Screen
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	modeState  core.ModeState
	keys       KeyMap
	help       help.Model
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given mode.
func NewModel(mode registry.Mode, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		mode:       mode,
		screen:     core.NewScreen(cfg.ScreenW, core.Max(1, cfg.ScreenH-helpHeight)),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keys:       DefaultKeyMap(),
		help:       h,
	}
}

// Init initializes the model and starts the mode.
func (m Model) Init() tea.Cmd {
	m.mode.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+s":
		m.saveScreenshot()
		return m, nil
	case "?":
		m.help.ShowAll = !m.help.ShowAll
		m.screen.Resize(m.config.ScreenW, core.Max(1, m.config.ScreenH-m.helpRows()))
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize processes window resize events. The session keeps running;
// the mode re-centers itself on the next render.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, core.Max(1, msg.Height-m.helpRows()))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) && m.modeState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.mode.Reset(m.config)
		m.modeState = m.mode.State()
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.mode.Step(m.inputFrame)
	m.modeState = result.State
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// helpRows returns how many rows the help view needs.
func (m Model) helpRows() int {
	if !m.help.ShowAll {
		return helpHeight
	}
	rows := 0
	for _, col := range m.keys.FullHelp() {
		rows = core.Max(rows, len(col))
	}
	return rows
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.mode.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".tetra", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.mode.ID(), timestamp))

	//nolint:errcheck // Best-effort save, the session continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// State returns the last observed mode state.
func (m Model) State() core.ModeState {
	return m.modeState
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.mode.Render(m.screen)
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program with the given mode and returns the
// final mode state.
func Run(mode registry.Mode, cfg core.RuntimeConfig) (core.ModeState, error) {
	p := tea.NewProgram(
		NewModel(mode, cfg),
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return core.ModeState{}, err
	}
	if m, ok := final.(Model); ok {
		return m.State(), nil
	}
	return mode.State(), nil
}
