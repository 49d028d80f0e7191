package fixtures

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"
)

// ErrNotFound is returned by LoadByID for an unknown fixture.
var ErrNotFound = errors.New("fixture not found")

// Loader handles loading fixtures from a directory.
type Loader struct {
	Root string
}

// NewLoader creates a new fixture loader.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll recursively scans and loads all fixture files.
// Invalid files are skipped. Returns fixtures sorted by ID.
func (l *Loader) LoadAll() ([]Fixture, error) {
	var fixtures []Fixture

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !slices.Contains(FormatExtensions(), strings.ToLower(filepath.Ext(path))) {
			return nil
		}

		f, err := l.LoadFile(path)
		if err != nil {
			return nil
		}
		fixtures = append(fixtures, f)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	sort.Slice(fixtures, func(i, j int) bool {
		return fixtures[i].ID < fixtures[j].ID
	})
	return fixtures, nil
}

// LoadFile loads a single fixture file. A fixture without an id takes the
// file name.
func (l *Loader) LoadFile(path string) (Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Fixture{}, fmt.Errorf("reading file %s: %w", path, err)
	}

	f, err := ParseYAML(data)
	if err != nil {
		return Fixture{}, fmt.Errorf("parsing file %s: %w", path, err)
	}
	if f.ID == "" {
		f.ID = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		if f.Name == "" {
			f.Name = f.ID
		}
	}
	f.FilePath = path
	return f, nil
}

// LoadByID loads a specific fixture by ID.
func (l *Loader) LoadByID(id string) (Fixture, error) {
	fixtures, err := l.LoadAll()
	if err != nil {
		return Fixture{}, err
	}
	for _, f := range fixtures {
		if f.ID == id {
			return f, nil
		}
	}
	return Fixture{}, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// Load resolves ref as a file path when it names an existing file and as a
// fixture ID under Root otherwise.
func (l *Loader) Load(ref string) (Fixture, error) {
	if info, err := os.Stat(ref); err == nil && !info.IsDir() {
		return l.LoadFile(ref)
	}
	return l.LoadByID(ref)
}
