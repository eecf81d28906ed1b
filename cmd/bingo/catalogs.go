package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bingo/internal/registry"
)

var catalogsCmd = &cobra.Command{
	Use:     "catalogs",
	Aliases: []string{"list"},
	Short:   "List all available catalogs",
	Long:    `Shows the built-in catalogs and any loaded from catalog_dir.`,
	Run:     runCatalogs,
}

func runCatalogs(cmd *cobra.Command, args []string) {
	catalogs := registry.List()

	if len(catalogs) == 0 {
		fmt.Println("No catalogs available.")
		return
	}

	fmt.Println("Available catalogs:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, c := range catalogs {
		if len(c.ID) > maxIDLen {
			maxIDLen = len(c.ID)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %5s  %s\n", maxIDLen, "ID", "Items", "Title")
	fmt.Printf("  %-*s  %5s  %s\n", maxIDLen, "--", "-----", "-----")

	for _, c := range catalogs {
		fmt.Printf("  %-*s  %5d  %s\n", maxIDLen, c.ID, c.Size, c.Title)
	}

	fmt.Println()
	fmt.Println("Run 'bingo cards -g <id>' to generate cards.")
}
