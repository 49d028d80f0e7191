package core

// RuntimeConfig contains configuration passed to a sandbox mode at start.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for the piece bag
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// ModeState represents the current state of a running mode.
type ModeState struct {
	Pieces   int  // Pieces locked so far
	Lines    int  // Rows cleared so far
	GameOver bool // Whether the stack topped out
	Paused   bool // Whether the simulation is paused
}

// StepResult is returned by Mode.Step() after each simulation tick.
type StepResult struct {
	State ModeState
}
