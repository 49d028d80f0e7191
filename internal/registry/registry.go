// Package registry provides a global registry for sandbox mode factories.
// Modes register themselves in init() functions, allowing the platform
// to discover and instantiate them without hardcoded dependencies.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tetra/internal/core"
)

// ErrUnknownMode is returned by Create for an unregistered ID.
var ErrUnknownMode = errors.New("registry: unknown mode")

// Mode is the interface every playable mode implements.
// Modes contain pure logic with no Bubble Tea dependency.
// The platform handles input mapping, timing, and rendering.
type Mode interface {
	// ID returns a unique identifier used on the command line (e.g., "pc").
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes or restarts the mode.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into the provided screen buffer.
	Render(dst *core.Screen)

	// State returns the current counters and flags.
	State() core.ModeState
}

// ModeInfo contains metadata about a registered mode.
type ModeInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a mode.
type Factory func() Mode

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a mode factory to the registry.
// Panics if a mode with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: mode %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns information about all registered modes, sorted by ID.
func List() []ModeInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]ModeInfo, 0, len(factories))
	for id := range factories {
		result = append(result, ModeInfo{ID: id, Title: titles[id]})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Create instantiates a new mode by its ID.
func Create(id string) (Mode, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownMode, id)
	}
	return f(), nil
}

// Exists checks if a mode with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
