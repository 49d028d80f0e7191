package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tetra/internal/board"
	"github.com/vovakirdan/tetra/internal/core"
	"github.com/vovakirdan/tetra/internal/field"
	"github.com/vovakirdan/tetra/internal/fixtures"
	"github.com/vovakirdan/tetra/internal/piece"
)

var flagYAML bool

var showCmd = &cobra.Command{
	Use:   "show <fixture>",
	Short: "Print a fixture board",
	Long: `Prints the fixture board with its active piece (lowercase) and the
piece's landing spot (':'). Packed boards also print their raw value.

Examples:
  tetra show tki-residue
  tetra show ./my-board.yaml --yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	showCmd.Flags().BoolVar(&flagYAML, "yaml", false, "Print the normalized fixture YAML instead")
}

func runShow(_ *cobra.Command, args []string) error {
	f, err := loader().Load(args[0])
	if err != nil {
		return err
	}

	if flagYAML {
		data, err := f.Marshal()
		if err != nil {
			return err
		}
		fmt.Print(string(data))
		return nil
	}

	printFixture(f, f.Board(), f.Active)
	return nil
}

// printFixture prints a header and the board with an optional piece.
func printFixture(f fixtures.Fixture, b board.Board, active *piece.Piece) {
	fmt.Printf("%s (%s, %dx%d)\n", f.Name, f.Kind, b.Width(), b.Height())
	if packed, ok := b.(*board.Packed); ok {
		fmt.Printf("packed: %#016x  tag: %s  filled: %d\n", uint64(*packed), packed.ColorTag(), packed.FilledCount())
	}
	fmt.Println()

	fld := field.New(b, core.Vec2{}, 0)
	if active != nil {
		p := *active
		fld.Active = &p
		fmt.Printf("piece: %s\n", p)
	}
	fmt.Print(fld.String())
}
