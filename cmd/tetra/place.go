package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tetra/internal/board"
	"github.com/vovakirdan/tetra/internal/core"
	"github.com/vovakirdan/tetra/internal/field"
	"github.com/vovakirdan/tetra/internal/piece"
	"github.com/vovakirdan/tetra/internal/search"
)

var (
	flagPieces string
	flagAll    bool
	flagDraw   bool
)

var placeCmd = &cobra.Command{
	Use:   "place <fixture>",
	Short: "Enumerate resting placements",
	Long: `Lists every pose the piece can reach and lock in, using shifts, slides,
rotations with kicks and gravity. Poses covering the same cells are listed
once.

By default the fixture's own piece is searched from its current pose.
--pieces searches the given colors from the spawn point instead; --all
searches all seven.

Examples:
  tetra place t-kick
  tetra place tki-residue --pieces TSZ
  tetra place tki-residue --all --draw`,
	Args: cobra.ExactArgs(1),
	RunE: runPlace,
}

func init() {
	placeCmd.Flags().StringVar(&flagPieces, "pieces", "", "Piece letters to search from spawn (e.g. TIO)")
	placeCmd.Flags().BoolVar(&flagAll, "all", false, "Search all seven pieces from spawn")
	placeCmd.Flags().BoolVar(&flagDraw, "draw", false, "Draw every placement")
}

func runPlace(cmd *cobra.Command, args []string) error {
	f, err := loader().Load(args[0])
	if err != nil {
		return err
	}
	b := f.Board()

	var colors []piece.Color
	switch {
	case flagAll:
		colors = piece.Colors
	case flagPieces != "":
		parsed, ok := piece.ParseQueue(flagPieces)
		if !ok {
			return fmt.Errorf("invalid piece letters %q", flagPieces)
		}
		colors = lo.Uniq(parsed)
	}

	if len(colors) == 0 {
		p, ok := f.Piece()
		if !ok {
			return fmt.Errorf("fixture %s has no piece; use --pieces or --all", f.ID)
		}
		found := search.Find(b, p)
		printPlacements(b, p.Color, found)
		return nil
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	sp := loaded.SpawnFor(f.Kind)
	spawn := core.V(sp.X, sp.Y)
	logger.Debug("searching placements", "fixture", f.ID, "pieces", len(colors), "spawn", spawn)

	results, err := search.FindAll(ctx, b, spawn, colors)
	if err != nil {
		return fmt.Errorf("search: %w", err)
	}
	for _, r := range results {
		printPlacements(b, r.Color, r.Placements)
	}
	fmt.Printf("total: %d placements\n", search.Count(results))
	return nil
}

// printPlacements prints one block of results for a piece color.
func printPlacements(b board.Board, c piece.Color, found []piece.Piece) {
	fmt.Printf("%s: %d placements\n", c, len(found))
	for _, p := range found {
		fp := search.Footprint(p)
		cells := lo.Map(fp[:], func(v core.Vec2, _ int) string {
			return v.String()
		})
		fmt.Printf("  %-12s %s\n", p.String(), strings.Join(cells, " "))
		if flagDraw {
			drawPose(b, p)
		}
	}
	fmt.Println()
}

// drawPose prints the board with p in place, indented.
func drawPose(b board.Board, p piece.Piece) {
	fld := field.New(b, core.Vec2{}, 0)
	fld.Active = &p
	for _, line := range strings.Split(strings.TrimRight(fld.String(), "\n"), "\n") {
		fmt.Println("    " + line)
	}
}
