package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tetra/internal/core"
	"github.com/vovakirdan/tetra/internal/field"
	"github.com/vovakirdan/tetra/internal/fixtures"
)

// minWidthForPreview is the terminal width below which the board preview
// is hidden.
const minWidthForPreview = 70

// BrowserKeyMap defines keybindings for the fixture browser.
type BrowserKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// ShortHelp returns keybindings for the short help view.
func (k BrowserKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Back, k.Quit}
}

// FullHelp returns keybindings for the full help view.
func (k BrowserKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultBrowserKeyMap returns the default browser keybindings.
func DefaultBrowserKeyMap() BrowserKeyMap {
	return BrowserKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "previous"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "next"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "play"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// BrowserModel lists fixtures in a table with a preview of the selected one.
type BrowserModel struct {
	fixtures  []fixtures.Fixture
	table     table.Model
	help      help.Model
	keys      BrowserKeyMap
	width     int
	height    int
	selected  *fixtures.Fixture
	quitting  bool
	goingBack bool
}

// NewBrowserModel creates a new fixture browser.
func NewBrowserModel(list []fixtures.Fixture, width, height int) BrowserModel {
	h := help.New()
	h.Width = width

	m := BrowserModel{
		fixtures: list,
		keys:     DefaultBrowserKeyMap(),
		help:     h,
		width:    width,
		height:   height,
	}
	m.table = m.createTable()
	return m
}

// createTable builds the fixture table.
func (m *BrowserModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "ID", Width: 18},
		{Title: "Kind", Width: 6},
		{Title: "Piece", Width: 10},
		{Title: "Name", Width: 24},
	}

	rows := make([]table.Row, len(m.fixtures))
	for i, f := range m.fixtures {
		active := "-"
		if p, ok := f.Piece(); ok {
			active = p.String()
		}
		rows[i] = table.Row{f.ID, f.Kind, active, f.Name}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(max(3, m.height-6)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}

// Init initializes the browser.
func (m BrowserModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the browser.
func (m BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Select):
			if i := m.table.Cursor(); i >= 0 && i < len(m.fixtures) {
				f := m.fixtures[i]
				m.selected = &f
				return m, tea.Quit
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		cursor := m.table.Cursor()
		m.table = m.createTable()
		m.table.SetCursor(cursor)
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the browser.
func (m BrowserModel) View() string {
	if m.quitting || m.goingBack || m.selected != nil {
		return ""
	}

	var b strings.Builder
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	b.WriteString(titleStyle.Render(centerText(fmt.Sprintf("FIXTURES (%d)", len(m.fixtures)), m.width)))
	b.WriteString("\n\n")

	panel := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	if len(m.fixtures) == 0 {
		empty := lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true).Padding(2, 4)
		b.WriteString(panel.Render(empty.Render("No fixtures found.")))
	} else {
		tableView := panel.Render(m.table.View())
		if m.width >= minWidthForPreview {
			b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tableView, "  ", panel.Render(m.preview())))
		} else {
			b.WriteString(tableView)
		}
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// preview renders the selected fixture board as text.
func (m BrowserModel) preview() string {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.fixtures) {
		return ""
	}
	f := m.fixtures[i]
	fld := field.New(f.Board(), core.Vec2{}, 0)
	if p, ok := f.Piece(); ok {
		fld.Active = &p
	}
	return strings.TrimRight(fld.String(), "\n")
}

// Selected returns the chosen fixture, or nil.
func (m BrowserModel) Selected() *fixtures.Fixture {
	return m.selected
}

// RunBrowser shows the fixture browser. It returns the chosen fixture, or
// nil with goBack set when the user backed out.
func RunBrowser(list []fixtures.Fixture, width, height int) (selected *fixtures.Fixture, goBack bool, err error) {
	p := tea.NewProgram(NewBrowserModel(list, width, height), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return nil, false, err
	}
	m, ok := finalModel.(BrowserModel)
	if !ok {
		return nil, false, nil
	}
	return m.selected, m.goingBack, nil
}
