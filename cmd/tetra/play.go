package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tetra/internal/core"
	"github.com/vovakirdan/tetra/internal/fixtures"
	"github.com/vovakirdan/tetra/internal/games/sandbox"
	"github.com/vovakirdan/tetra/internal/platform/tui"
	"github.com/vovakirdan/tetra/internal/registry"
)

var (
	flagFixture string
	flagPick    bool
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode",
	Long: `Start playing the given mode. Without a mode, the board kind from the
config (or from the fixture) decides.

Controls:
  Left/Right, h/l        - Shift one column
  Shift+Left/Right, H/L  - Slide to the wall
  Down/j                 - Soft drop
  Shift+Down/J           - Sonic drop
  Space                  - Hard drop
  Up/x, z, a             - Rotate CW, CCW, 180
  P/Esc                  - Pause
  R                      - Restart (after top out)
  ?                      - Toggle help
  Q/Ctrl+C               - Quit

Examples:
  tetra play pc
  tetra play stack --seed 42
  tetra play --fixture tki-residue
  tetra play --pick`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagFixture, "fixture", "", "Fixture ID or file to start from")
	playCmd.Flags().BoolVar(&flagPick, "pick", false, "Choose a fixture in the browser first")
}

func runPlay(_ *cobra.Command, args []string) error {
	cfg := runtimeConfig()

	var fixture *fixtures.Fixture
	switch {
	case flagPick:
		list, err := loader().LoadAll()
		if err != nil {
			return err
		}
		selected, _, err := tui.RunBrowser(list, cfg.ScreenW, cfg.ScreenH)
		if err != nil {
			return err
		}
		if selected == nil {
			return nil
		}
		fixture = selected
	case flagFixture != "":
		f, err := loader().Load(flagFixture)
		if err != nil {
			return err
		}
		fixture = &f
	case loaded.Board.Fixture != "":
		f, err := loader().Load(loaded.Board.Fixture)
		if err != nil {
			return fmt.Errorf("config fixture: %w", err)
		}
		fixture = &f
	}

	modeID := sandbox.ModeIDFor(loaded.Board.Kind)
	if fixture != nil {
		modeID = sandbox.ModeIDFor(fixture.Kind)
	}
	if len(args) == 1 {
		modeID = args[0]
	}

	return playMode(modeID, fixture, cfg)
}

// playMode runs one session and logs its outcome.
func playMode(modeID string, fixture *fixtures.Fixture, cfg core.RuntimeConfig) error {
	mode, err := registry.Create(modeID)
	if err != nil {
		if errors.Is(err, registry.ErrUnknownMode) {
			return fmt.Errorf("%w (run 'tetra list' to see available modes)", err)
		}
		return err
	}

	sandbox.SetFixture(fixture)
	defer sandbox.SetFixture(nil)
	if fixture != nil {
		logger.Debug("starting from fixture", "id", fixture.ID, "kind", fixture.Kind)
	}

	started := time.Now()
	state, err := tui.Run(mode, cfg)
	if err != nil {
		return fmt.Errorf("running %s: %w", modeID, err)
	}

	logger.Info("session ended",
		"mode", modeID,
		"pieces", state.Pieces,
		"lines", state.Lines,
		"topped_out", state.GameOver,
		"duration", time.Since(started).Round(time.Second),
	)
	return nil
}

// runMenu is the interactive loop behind the bare tetra command.
func runMenu(_ *cobra.Command, _ []string) error {
	cfg := runtimeConfig()

	for {
		result, err := tui.RunMenu(cfg)
		if err != nil {
			return err
		}
		cfg = result.Config

		if result.Quit {
			return nil
		}

		var fixture *fixtures.Fixture
		modeID := result.ModeID
		if result.WantsFixtures {
			list, err := loader().LoadAll()
			if err != nil {
				logger.Warn("could not read fixtures", "dir", flagFixtures, "error", err)
				continue
			}
			selected, goBack, err := tui.RunBrowser(list, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if selected == nil {
				if goBack {
					continue
				}
				return nil
			}
			fixture = selected
			modeID = sandbox.ModeIDFor(selected.Kind)
		}

		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}
		if err := playMode(modeID, fixture, cfg); err != nil {
			logger.Error("session failed", "mode", modeID, "error", err)
		}
	}
}
