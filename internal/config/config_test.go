package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	var cfg SandboxConfig
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultSandboxConfig()) {
		t.Errorf("embedded default = %+v\nhardcoded = %+v", cfg, DefaultSandboxConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*SandboxConfig)
		valid  bool
	}{
		{"default", func(*SandboxConfig) {}, true},
		{"full board", func(c *SandboxConfig) { c.Board.Kind = KindFull }, true},
		{"unknown kind", func(c *SandboxConfig) { c.Board.Kind = "hex" }, false},
		{"zero gravity", func(c *SandboxConfig) { c.Timing.GravityTicks = 0 }, false},
		{"negative lock delay", func(c *SandboxConfig) { c.Timing.LockDelay = -1 }, false},
		{"long preview", func(c *SandboxConfig) { c.Queue.Preview = 8 }, false},
		{"bad progression", func(c *SandboxConfig) { c.Difficulty.Progression.Type = "score" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultSandboxConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.valid && err != nil {
				t.Errorf("Validate() = %v, expected nil", err)
			}
			if !tt.valid && !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, expected ErrInvalidConfig", err)
			}
		})
	}
}

func TestSpawnFor(t *testing.T) {
	cfg := DefaultSandboxConfig()
	if got := cfg.SpawnFor(KindPacked); got != (Point{X: 4, Y: 1}) {
		t.Errorf("packed spawn = %+v", got)
	}
	if got := cfg.SpawnFor(KindFull); got != (Point{X: 4, Y: 3}) {
		t.Errorf("full spawn = %+v", got)
	}
}

func TestLoadSandboxCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("board:\n  kind: full\ntiming:\n  gravity_ticks: 10\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadSandbox(path)
	if err != nil {
		t.Fatalf("LoadSandbox() error: %v", err)
	}
	if cfg.Board.Kind != KindFull || cfg.Timing.GravityTicks != 10 {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.Timing.LockDelay != 30 || cfg.Queue.Preview != 5 {
		t.Errorf("unset keys should keep defaults: %+v", cfg)
	}
}

func TestLoadSandboxCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadSandbox(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom config should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("board: [\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadSandbox(bad); err == nil {
		t.Error("malformed custom config should fail")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("board:\n  kind: round\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadSandbox(invalid); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("LoadSandbox(invalid) = %v, expected ErrInvalidConfig", err)
	}
}

func TestLoadSandboxUserDirectory(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())

	dir := filepath.Join(home, ".tetra", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "sandbox.yaml"), []byte("queue:\n  preview: 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadSandbox("")
	if err != nil {
		t.Fatalf("LoadSandbox() error: %v", err)
	}
	if cfg.Queue.Preview != 2 {
		t.Errorf("preview = %d, expected the user file's 2", cfg.Queue.Preview)
	}
}

func TestLoadSandboxFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := LoadSandbox("")
	if err != nil {
		t.Fatalf("LoadSandbox() error: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultSandboxConfig()) {
		t.Errorf("fallback config = %+v", cfg)
	}
}

func TestDifficultyLevel(t *testing.T) {
	cfg := DefaultSandboxConfig().Difficulty
	dm := NewDifficultyManager(cfg)

	tests := []struct {
		lines    int
		expected float64
	}{
		{0, 0},
		{10, 0.25},
		{40, 1},
		{100, 1},
	}
	for _, tt := range tests {
		if got := dm.Level(tt.lines, 0); got != tt.expected {
			t.Errorf("Level(%d) = %v, expected %v", tt.lines, got, tt.expected)
		}
	}

	dm.SetEnabled(false)
	if dm.IsEnabled() || dm.Level(40, 0) != 0 {
		t.Error("disabled manager should stay at level 0")
	}
}

func TestDifficultyTimeProgression(t *testing.T) {
	dm := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "time", MaxAt: 100},
	})
	if got := dm.Level(99, 50); got != 0.5 {
		t.Errorf("Level() = %v, expected 0.5 from ticks", got)
	}
}

func TestGravityTicks(t *testing.T) {
	dm := NewDifficultyManager(DefaultSandboxConfig().Difficulty)

	tests := []struct {
		lines    int
		expected int
	}{
		{0, 30},
		{10, 15},
		{40, 6},
	}
	for _, tt := range tests {
		if got := dm.GravityTicks(30, tt.lines, 0); got != tt.expected {
			t.Errorf("GravityTicks(30, %d) = %d, expected %d", tt.lines, got, tt.expected)
		}
	}

	if got := dm.GravityTicks(3, 40, 0); got != 2 {
		t.Errorf("GravityTicks(3, 40) = %d, expected the minimum 2", got)
	}
}
