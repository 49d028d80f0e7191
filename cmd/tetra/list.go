package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tetra/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List modes and fixtures",
	Long:  `Shows the registered modes and the fixtures found in the --fixtures directory.`,
	RunE:  runList,
}

func runList(_ *cobra.Command, _ []string) error {
	modes := registry.List()

	fmt.Println("Modes:")
	fmt.Println()
	maxIDLen := 2 // "ID" header
	for _, m := range modes {
		maxIDLen = max(maxIDLen, len(m.ID))
	}
	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, m := range modes {
		fmt.Printf("  %-*s  %s\n", maxIDLen, m.ID, m.Title)
	}

	list, err := loader().LoadAll()
	if err != nil {
		logger.Warn("could not read fixtures", "dir", flagFixtures, "error", err)
		list = nil
	}

	fmt.Println()
	if len(list) == 0 {
		fmt.Printf("No fixtures in %s.\n", flagFixtures)
	} else {
		fmt.Println("Fixtures:")
		fmt.Println()
		maxIDLen = 2
		for _, f := range list {
			maxIDLen = max(maxIDLen, len(f.ID))
		}
		fmt.Printf("  %-*s  %-6s  %s\n", maxIDLen, "ID", "Kind", "Name")
		fmt.Printf("  %-*s  %-6s  %s\n", maxIDLen, "--", "----", "----")
		for _, f := range list {
			fmt.Printf("  %-*s  %-6s  %s\n", maxIDLen, f.ID, f.Kind, f.Name)
		}
	}

	fmt.Println()
	fmt.Println("Run 'tetra play <mode>' or 'tetra play --fixture <id>' to play.")
	return nil
}
