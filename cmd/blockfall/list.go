package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/registry"
	"github.com/vovakirdan/blockfall/internal/storage"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available modes",
	Long:  `Shows a list of all registered game modes.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()
	if len(games) == 0 {
		fmt.Println("No modes available.")
		return
	}

	idW := len("ID")
	for _, g := range games {
		idW = max(idW, len(g.ID))
	}

	counts := playCounts()
	row := func(id, title, played string) {
		fmt.Printf("  %-*s  %-18s  %s\n", idW, id, title, played)
	}

	fmt.Print("Available modes:\n\n")
	row("ID", "Title", "Played")
	row("--", "-----", "------")
	for _, g := range games {
		row(g.ID, g.Title, fmt.Sprint(counts[g.ID]))
	}
	fmt.Print("\nRun 'blockfall play <id>' to play.\n")
}

// playCounts returns games played per mode. It is empty when the database
// cannot be read.
func playCounts() map[string]int {
	counts := map[string]int{}
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return counts
	}
	defer store.Close()

	all, err := store.GetAllGamesStats()
	if err != nil {
		return counts
	}
	for id, st := range all {
		counts[id] = st.GamesCount
	}
	return counts
}
