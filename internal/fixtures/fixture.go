// Package fixtures loads board positions from YAML files. A fixture names a
// board kind, its rows drawn as text and optionally an active piece, so that
// kick and DAS situations can be kept as data.
package fixtures

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tetra/internal/board"
	"github.com/vovakirdan/tetra/internal/core"
	"github.com/vovakirdan/tetra/internal/piece"
)

var (
	ErrUnknownKind = errors.New("unknown board kind")
	ErrRowWidth    = errors.New("row width must be 10")
	ErrTooManyRows = errors.New("too many rows for board")
	ErrBadCell     = errors.New("invalid cell character")
	ErrBadPiece    = errors.New("invalid piece")
)

// Board kinds.
const (
	KindPacked = "packed"
	KindFull   = "full"
)

// YAMLFixture is the on-disk shape of a fixture file.
type YAMLFixture struct {
	ID       string     `yaml:"id"`
	Name     string     `yaml:"name,omitempty"`
	Kind     string     `yaml:"kind"`
	ColorTag string     `yaml:"color_tag,omitempty"`
	Rows     []string   `yaml:"rows"`
	Piece    *YAMLPiece `yaml:"piece,omitempty"`
}

// YAMLPiece is an active piece pose.
type YAMLPiece struct {
	Color    string `yaml:"color"`
	Rotation string `yaml:"rotation"`
	X        int    `yaml:"x"`
	Y        int    `yaml:"y"`
}

// Fixture is a validated board position.
type Fixture struct {
	ID       string
	Name     string
	Kind     string
	ColorTag piece.Color
	Cells    [][]piece.Color // one row per board row, top first
	Active   *piece.Piece
	FilePath string
}

// ParseYAML parses and validates a fixture file. Rows are listed top to
// bottom; when fewer rows than the board height are given they sit on the
// floor and the rows above are empty.
func ParseYAML(data []byte) (Fixture, error) {
	var yf YAMLFixture
	if err := yaml.Unmarshal(data, &yf); err != nil {
		return Fixture{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	return yf.Fixture()
}

// Fixture validates the raw file contents.
func (yf YAMLFixture) Fixture() (Fixture, error) {
	kind := strings.ToLower(yf.Kind)
	if kind == "" {
		kind = KindPacked
	}
	height, err := heightOf(kind)
	if err != nil {
		return Fixture{}, err
	}
	if len(yf.Rows) > height {
		return Fixture{}, fmt.Errorf("%w: %d rows for %s", ErrTooManyRows, len(yf.Rows), kind)
	}

	f := Fixture{
		ID:    yf.ID,
		Name:  yf.Name,
		Kind:  kind,
		Cells: make([][]piece.Color, height),
	}
	if f.Name == "" {
		f.Name = f.ID
	}
	if yf.ColorTag != "" {
		c, ok := piece.ParseColor(yf.ColorTag)
		if !ok {
			return Fixture{}, fmt.Errorf("%w: color_tag %q", ErrBadPiece, yf.ColorTag)
		}
		f.ColorTag = c
	}

	offset := height - len(yf.Rows)
	for y := range f.Cells {
		f.Cells[y] = make([]piece.Color, board.Width)
		if y < offset {
			continue
		}
		row := yf.Rows[y-offset]
		if len([]rune(row)) != board.Width {
			return Fixture{}, fmt.Errorf("%w: row %d is %q", ErrRowWidth, y, row)
		}
		for x, ch := range []rune(row) {
			c, ok := piece.ParseColor(string(ch))
			if !ok {
				return Fixture{}, fmt.Errorf("%w: %q at (%d,%d)", ErrBadCell, ch, x, y)
			}
			f.Cells[y][x] = c
		}
	}

	if yf.Piece != nil {
		p, err := yf.Piece.Piece()
		if err != nil {
			return Fixture{}, err
		}
		f.Active = &p
	}
	return f, nil
}

// Piece converts the YAML pose.
func (yp YAMLPiece) Piece() (piece.Piece, error) {
	c, ok := piece.ParseColor(yp.Color)
	if !ok || !c.IsPiece() {
		return piece.Piece{}, fmt.Errorf("%w: color %q", ErrBadPiece, yp.Color)
	}
	rot := piece.North
	if yp.Rotation != "" {
		r, ok := piece.ParseDirection(yp.Rotation)
		if !ok {
			return piece.Piece{}, fmt.Errorf("%w: rotation %q", ErrBadPiece, yp.Rotation)
		}
		rot = r
	}
	return piece.New(c, rot, core.V(yp.X, yp.Y)), nil
}

func heightOf(kind string) (int, error) {
	switch kind {
	case KindPacked:
		return board.PackedHeight, nil
	case KindFull:
		return board.FullHeight, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}

// Board builds a fresh board from the fixture.
func (f Fixture) Board() board.Board {
	var b board.Board
	if f.Kind == KindFull {
		b = board.NewFull()
	} else {
		p := board.NewPacked()
		p.SetColorTag(f.ColorTag)
		b = &p
	}
	for y, row := range f.Cells {
		for x, c := range row {
			if c != piece.None {
				b.SetTile(x, y, uint8(c))
			}
		}
	}
	return b
}

// Piece returns the fixture's active piece, if any.
func (f Fixture) Piece() (piece.Piece, bool) {
	if f.Active == nil {
		return piece.Piece{}, false
	}
	return *f.Active, true
}

// FromBoard captures b and an optional active piece as a fixture.
// Packed boards store occupancy only, so their cells come back as garbage.
func FromBoard(id string, b board.Board, active *piece.Piece) Fixture {
	f := Fixture{
		ID:    id,
		Name:  id,
		Kind:  KindPacked,
		Cells: make([][]piece.Color, b.Height()),
	}
	if b.Height() == board.FullHeight {
		f.Kind = KindFull
	}
	if p, ok := b.(*board.Packed); ok {
		f.ColorTag = p.ColorTag()
	}
	for y := range f.Cells {
		f.Cells[y] = make([]piece.Color, b.Width())
		for x := range f.Cells[y] {
			if !b.Occupied(x, y) {
				continue
			}
			c := piece.Color(b.Tile(x, y))
			if f.Kind == KindPacked || c > piece.Garbage {
				c = piece.Garbage
			}
			f.Cells[y][x] = c
		}
	}
	if active != nil {
		p := *active
		f.Active = &p
	}
	return f
}

// YAML returns the file form of the fixture. Empty rows above the stack are
// omitted.
func (f Fixture) YAML() YAMLFixture {
	yf := YAMLFixture{
		ID:   f.ID,
		Name: f.Name,
		Kind: f.Kind,
	}
	if f.Name == f.ID {
		yf.Name = ""
	}
	if f.ColorTag != piece.None {
		yf.ColorTag = f.ColorTag.String()
	}

	top := len(f.Cells)
	for y, row := range f.Cells {
		if rowUsed(row) {
			top = y
			break
		}
	}
	for _, row := range f.Cells[top:] {
		var sb strings.Builder
		for _, c := range row {
			sb.WriteRune(c.Char())
		}
		yf.Rows = append(yf.Rows, sb.String())
	}

	if f.Active != nil {
		yf.Piece = &YAMLPiece{
			Color:    f.Active.Color.String(),
			Rotation: f.Active.Rotation.String(),
			X:        f.Active.Position.X,
			Y:        f.Active.Position.Y,
		}
	}
	return yf
}

// Marshal encodes the fixture as YAML.
func (f Fixture) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(f.YAML())
	if err != nil {
		return nil, fmt.Errorf("yaml marshal: %w", err)
	}
	return data, nil
}

func rowUsed(row []piece.Color) bool {
	for _, c := range row {
		if c != piece.None {
			return true
		}
	}
	return false
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}
