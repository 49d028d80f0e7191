package config

import (
	_ "embed"
)

//go:embed defaults/sandbox.yaml
var defaultSandboxYAML []byte

// DefaultSandboxConfig returns the default sandbox configuration.
func DefaultSandboxConfig() SandboxConfig {
	return SandboxConfig{
		Board: BoardConfig{
			Kind: KindPacked,
		},
		Timing: TimingConfig{
			GravityTicks: 30,
			LockDelay:    30,
		},
		Spawn: SpawnConfig{
			Packed: Point{X: 4, Y: 1},
			Full:   Point{X: 4, Y: 3},
		},
		Queue: QueueConfig{
			Preview: 5,
		},
		Difficulty: DifficultyConfig{
			Enabled: true,
			Progression: ProgressionConfig{
				Type:  "lines",
				MaxAt: 40,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 4.0,
				MinGravityTicks: 2,
			},
		},
	}
}

// DefaultYAML returns the embedded default sandbox YAML.
func DefaultYAML() []byte {
	return defaultSandboxYAML
}
