// tetra is a terminal sandbox for the packed-board tetromino engine.
//
// Usage:
//
//	tetra                     - Pick a mode interactively
//	tetra list                - List modes and fixtures
//	tetra play [mode]         - Play a mode, optionally from a fixture
//	tetra show <fixture>      - Print a fixture board
//	tetra place <fixture>     - Enumerate resting placements
//	tetra kick <fixture>      - Rotate or slide the fixture piece and report
//
// Global flags:
//
//	--fps <rate>       - Set tick rate (default: 60)
//	--seed <value>     - Set RNG seed for reproducible piece order
//	--config <path>    - Use a custom sandbox config YAML
//	--fixtures <dir>   - Directory searched for fixture files
//	--debug            - Verbose logging
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tetra/internal/config"
	"github.com/vovakirdan/tetra/internal/core"
	"github.com/vovakirdan/tetra/internal/fixtures"
	"github.com/vovakirdan/tetra/internal/games/sandbox"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagFixtures string
	flagDebug    bool

	logger *log.Logger
	loaded config.SandboxConfig
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tetra",
	Short: "tetra - SRS board sandbox in your terminal",
	Long: `tetra plays and inspects tetromino boards: a shallow 10x6 packed board
for perfect-clear practice and a regular 10x24 field.

Available commands:
  list     - Show modes and fixtures
  play     - Play a mode directly
  show     - Print a fixture board
  place    - Enumerate placements for a fixture
  kick     - Rotate or slide a fixture piece

Examples:
  tetra
  tetra play pc
  tetra play --fixture tki-residue
  tetra place tki-residue --all
  tetra kick t-kick --rotate ccw`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	RunE:              runMenu,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom sandbox config YAML")
	rootCmd.PersistentFlags().StringVar(&flagFixtures, "fixtures", "fixtures", "Directory containing fixture files")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(placeCmd)
	rootCmd.AddCommand(kickCmd)
}

// setup builds the logger and loads the sandbox config before any command.
func setup(_ *cobra.Command, _ []string) error {
	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "tetra",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}

	cfg, err := config.LoadSandbox(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	loaded = cfg
	sandbox.SetConfig(cfg)
	logger.Debug("config loaded",
		"path", flagConfig,
		"board", cfg.Board.Kind,
		"gravity_ticks", cfg.Timing.GravityTicks,
		"lock_delay", cfg.Timing.LockDelay,
	)
	return nil
}

// runtimeConfig sizes the runtime to the terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// loader returns the fixture loader for the --fixtures directory.
func loader() *fixtures.Loader {
	return fixtures.NewLoader(flagFixtures)
}
