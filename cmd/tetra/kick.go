package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tetra/internal/piece"
)

var (
	flagRotate  string
	flagDAS     string
	flagGravity int
)

var kickCmd = &cobra.Command{
	Use:   "kick <fixture>",
	Short: "Rotate or slide the fixture piece and report",
	Long: `Applies a rotation (with kicks), then a slide, then gravity steps to the
fixture's piece and prints the board before and after.

A south slide searches from below and may pass under overhangs.

Examples:
  tetra kick t-kick --rotate ccw
  tetra kick t-kick --rotate 180 --das down
  tetra kick stack --das right --gravity 3`,
	Args: cobra.ExactArgs(1),
	RunE: runKick,
}

func init() {
	kickCmd.Flags().StringVar(&flagRotate, "rotate", "", "Rotation: cw, ccw, 180 or a signed quarter-turn count")
	kickCmd.Flags().StringVar(&flagDAS, "das", "", "Slide direction: left, right or down")
	kickCmd.Flags().IntVar(&flagGravity, "gravity", 0, "Gravity steps to apply last")
}

// parseRotation converts a rotation flag to a quarter-turn delta.
func parseRotation(s string) (int, error) {
	switch strings.ToLower(s) {
	case "cw", "right", "r":
		return 1, nil
	case "ccw", "left", "l":
		return -1, nil
	case "180", "half":
		return 2, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid rotation %q", s)
	}
	return n, nil
}

// parseSlide converts a slide flag to a direction.
func parseSlide(s string) (piece.Direction, error) {
	switch strings.ToLower(s) {
	case "left", "west", "w":
		return piece.West, nil
	case "right", "east", "e":
		return piece.East, nil
	case "down", "south", "s":
		return piece.South, nil
	}
	return piece.North, fmt.Errorf("invalid slide direction %q", s)
}

func runKick(_ *cobra.Command, args []string) error {
	f, err := loader().Load(args[0])
	if err != nil {
		return err
	}
	p, ok := f.Piece()
	if !ok {
		return fmt.Errorf("fixture %s has no piece", f.ID)
	}
	b := f.Board()
	if b.Collides(p) {
		return fmt.Errorf("fixture %s: piece %s overlaps the board", f.ID, p)
	}

	before := p
	printFixture(f, b, &before)
	fmt.Println()

	if flagRotate != "" {
		delta, err := parseRotation(flagRotate)
		if err != nil {
			return err
		}
		start := p
		if b.Rotate(&p, delta) {
			fmt.Printf("rotate %+d: %s -> %s (shift %s)\n", delta, start, p, p.Position.Sub(start.Position))
		} else {
			fmt.Printf("rotate %+d: every kick collides, %s unchanged\n", delta, p)
		}
		logger.Debug("rotation", "delta", delta, "from", start, "to", p)
	}

	if flagDAS != "" {
		dir, err := parseSlide(flagDAS)
		if err != nil {
			return err
		}
		start := p
		b.DAS(&p, dir)
		fmt.Printf("das %s: %s -> %s\n", dir, start, p)
	}

	for i := 0; i < flagGravity; i++ {
		b.ApplyGravity(&p)
	}
	if flagGravity > 0 {
		fmt.Printf("gravity x%d: %s\n", flagGravity, p)
	}

	fmt.Printf("can lock: %t\n\n", b.CanPlace(p))
	printFixture(f, b, &p)
	return nil
}
