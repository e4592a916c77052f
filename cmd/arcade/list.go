package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Long: `Shows every game registered in the arcade, and whether it takes a
YAML config (--config) and reports a state checksum (sim, recorded runs).`,
	Run: runList,
}

func runList(cmd *cobra.Command, args []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	fmt.Println("Available games:")
	fmt.Println()

	maxIDLen, maxTitleLen := 2, 5 // "ID", "Title" headers
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
		maxTitleLen = max(maxTitleLen, len(g.Title))
	}

	fmt.Printf("  %-*s  %-*s  %-6s  %s\n", maxIDLen, "ID", maxTitleLen, "Title", "Config", "Checksum")
	fmt.Printf("  %-*s  %-*s  %-6s  %s\n", maxIDLen, "--", maxTitleLen, "-----", "------", "--------")

	for _, info := range games {
		g, err := registry.Create(info.ID)
		if err != nil {
			continue
		}
		_, configurable := g.(registry.Configurable)
		_, checksum := g.(registry.Checksummer)
		fmt.Printf("  %-*s  %-*s  %-6s  %s\n", maxIDLen, info.ID, maxTitleLen, info.Title, yesNo(configurable), yesNo(checksum))
	}

	fmt.Println()
	fmt.Println("Run 'arcade play <id>' to play a game.")
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
