package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/storage"
)

var flagMatchLimit int

var matchesCmd = &cobra.Command{
	Use:   "matches [match-id]",
	Short: "Show recent versus matches",
	Long: `Display the most recent versus matches, newest first, with the
overall win counts. Given a match ID, show that match in detail.

Examples:
  blockfall matches
  blockfall matches --limit 50
  blockfall matches 0b9f3c1e-...`,
	Args: cobra.MaximumNArgs(1),
	Run:  runMatches,
}

func init() {
	matchesCmd.Flags().IntVar(&flagMatchLimit, "limit", 20, "Number of matches to show")
}

func runMatches(_ *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if len(args) == 1 {
		showMatch(store, args[0])
		return
	}

	matches, err := store.RecentVersusMatches(flagMatchLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving matches: %v\n", err)
		return
	}

	fmt.Print("Versus Matches\n\n")
	if len(matches) == 0 {
		fmt.Print("No matches recorded yet.\n\n")
		fmt.Println("Play 'blockfall play versus' with a friend to record one!")
		return
	}

	row := func(id, winner, lines, sent, dur, date string) {
		fmt.Printf("  %-36s  %-6s  %-11s  %-11s  %-8s  %s\n", id, winner, lines, sent, dur, date)
	}
	row("ID", "Winner", "Lines P1-P2", "Sent P1-P2", "Duration", "Date")
	row("--", "------", "-----------", "----------", "--------", "----")
	for _, m := range matches {
		row(m.MatchID, winnerLabel(m),
			fmt.Sprintf("%d-%d", m.Lines1, m.Lines2),
			fmt.Sprintf("%d-%d", m.Attack1, m.Attack2),
			clock(m.Duration),
			m.CreatedAt.Format("2006-01-02 15:04"))
	}

	if p1, p2, draws, err := store.WinCounts(); err == nil {
		fmt.Printf("\nP1 wins: %d  P2 wins: %d  Draws: %d\n", p1, p2, draws)
	}
}

func showMatch(store *storage.Store, id string) {
	m, err := store.VersusMatchByID(id)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving match: %v\n", err)
		os.Exit(1)
	}
	if m == nil {
		fmt.Fprintf(os.Stderr, "Error: no match %q\n", id)
		os.Exit(1)
	}

	fmt.Printf("Match %s\n\n", m.MatchID)
	fmt.Printf("  Played:   %s\n", m.CreatedAt.Format("2006-01-02 15:04:05"))
	fmt.Printf("  Duration: %s\n", clock(m.Duration))
	fmt.Printf("  Result:   %s (%s)\n", winnerLabel(*m), m.EndReason)
	fmt.Printf("  P1:       %d lines, %d sent\n", m.Lines1, m.Attack1)
	fmt.Printf("  P2:       %d lines, %d sent\n", m.Lines2, m.Attack2)
}

func winnerLabel(m storage.VersusMatchResult) string {
	if m.Winner == "" {
		return "Draw"
	}
	return m.Winner
}

func clock(seconds int) string {
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}
