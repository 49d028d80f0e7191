// Package config provides YAML-based sandbox configuration loading and
// gravity progression for the tetra modes.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned by Validate for unusable settings.
var ErrInvalidConfig = errors.New("invalid config")

// Board kinds accepted by BoardConfig.Kind.
const (
	KindPacked = "packed"
	KindFull   = "full"
)

// SandboxConfig contains all configuration for the sandbox modes.
type SandboxConfig struct {
	Board      BoardConfig      `yaml:"board"`
	Timing     TimingConfig     `yaml:"timing"`
	Spawn      SpawnConfig      `yaml:"spawn"`
	Queue      QueueConfig      `yaml:"queue"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BoardConfig selects the starting board.
type BoardConfig struct {
	Kind    string `yaml:"kind"`    // "packed" or "full"
	Fixture string `yaml:"fixture"` // optional fixture file to start from
}

// TimingConfig defines tick-based timing.
type TimingConfig struct {
	GravityTicks int `yaml:"gravity_ticks"` // ticks between gravity steps
	LockDelay    int `yaml:"lock_delay"`    // ticks a grounded piece waits before locking
}

// Point is a board coordinate in YAML form.
type Point struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// SpawnConfig holds the spawn position for each board kind.
type SpawnConfig struct {
	Packed Point `yaml:"packed"`
	Full   Point `yaml:"full"`
}

// QueueConfig controls the piece preview.
type QueueConfig struct {
	Preview int `yaml:"preview"`
}

// DifficultyConfig defines how gravity speeds up during a session.
type DifficultyConfig struct {
	Enabled     bool              `yaml:"enabled"`
	Progression ProgressionConfig `yaml:"progression"`
	Scaling     ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines what drives the difficulty level.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "lines", "time", or "none"
	MaxAt int    `yaml:"max_at"` // lines/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"`  // gravity speed-up at max difficulty
	MinGravityTicks int     `yaml:"min_gravity_ticks"` // fastest allowed gravity interval
}

// SpawnFor returns the spawn point configured for a board kind.
func (c SandboxConfig) SpawnFor(kind string) Point {
	if kind == KindFull {
		return c.Spawn.Full
	}
	return c.Spawn.Packed
}

// Validate checks that the config can drive a session.
func (c SandboxConfig) Validate() error {
	switch c.Board.Kind {
	case KindPacked, KindFull:
	default:
		return fmt.Errorf("%w: board kind %q", ErrInvalidConfig, c.Board.Kind)
	}
	if c.Timing.GravityTicks <= 0 {
		return fmt.Errorf("%w: gravity_ticks must be positive, got %d", ErrInvalidConfig, c.Timing.GravityTicks)
	}
	if c.Timing.LockDelay < 0 {
		return fmt.Errorf("%w: lock_delay must not be negative, got %d", ErrInvalidConfig, c.Timing.LockDelay)
	}
	if c.Queue.Preview < 0 || c.Queue.Preview > 7 {
		return fmt.Errorf("%w: preview must be in 0..7, got %d", ErrInvalidConfig, c.Queue.Preview)
	}
	switch c.Difficulty.Progression.Type {
	case "", "lines", "time", "none":
	default:
		return fmt.Errorf("%w: progression type %q", ErrInvalidConfig, c.Difficulty.Progression.Type)
	}
	return nil
}
