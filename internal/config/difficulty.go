package config

import "math"

// DifficultyManager calculates the gravity interval from session progress.
type DifficultyManager struct {
	cfg DifficultyConfig
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{cfg: cfg}
}

// SetEnabled enables or disables difficulty progression.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0) based on cleared
// lines or elapsed ticks.
func (d *DifficultyManager) Level(lines int, ticks int) float64 {
	if !d.IsEnabled() {
		return 0
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case "lines":
		progress = float64(lines) / maxAt
	case "time":
		progress = float64(ticks) / maxAt
	default:
		return 0
	}
	return clampF(progress, 0.0, 1.0)
}

// GravityTicks returns the number of ticks between gravity steps. The base
// interval shrinks as the level rises, never below the configured minimum
// or one tick.
func (d *DifficultyManager) GravityTicks(base int, lines int, ticks int) int {
	level := d.Level(lines, ticks)
	speed := 1.0 + level*d.cfg.Scaling.SpeedMultiplier
	result := int(math.Round(float64(base) / speed))

	floor := max(d.cfg.Scaling.MinGravityTicks, 1)
	if result < floor {
		result = floor
	}
	return result
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
