package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-match3/internal/registry"
	"github.com/vovakirdan/tui-match3/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores",
	Long: `Display the top high scores for the specified mode, or a summary of
every mode when no mode is given.

Examples:
  match3 scores
  match3 scores classic
  match3 scores moves --limit 20
  match3 scores mini --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all scores for the mode")
}

func runScores(cmd *cobra.Command, args []string) {
	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if len(args) == 0 {
		printSummary(store)
		return
	}

	gameID := args[0]
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'match3 list' to see available modes.")
		os.Exit(1)
	}

	if flagScoresClear {
		if err := store.ClearScores(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cleared scores for %s\n", gameID)
		return
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	title := game.Title()

	scores, err := store.TopScores(gameID, flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'match3 play %s' to set the first high score!\n", gameID)
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-8s  %-5s  %-5s  %s\n", "Rank", "Score", "Moves", "Chain", "Date")
	fmt.Printf("  %-4s  %-8s  %-5s  %-5s  %s\n", "----", "-----", "-----", "-----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-8d  %-5d  x%-4d  %s\n", i+1, entry.Score, entry.Moves, entry.BestChain, dateStr)
	}

	fmt.Println()
	if stats, err := store.ModeStatsFor(gameID); err == nil {
		fmt.Printf("Best: %d  Games: %d  Average: %.0f\n", stats.HighScore, stats.GamesCount, stats.AvgScore)
	}
}

// printSummary prints one line per registered mode.
func printSummary(store *storage.Store) {
	all, err := store.AllModeStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Score summary:")
	fmt.Println()
	fmt.Printf("  %-10s  %-6s  %-8s  %-8s  %s\n", "Mode", "Games", "Best", "Average", "Best chain")
	fmt.Printf("  %-10s  %-6s  %-8s  %-8s  %s\n", "----", "-----", "----", "-------", "----------")

	for _, g := range registry.List() {
		stats, ok := all[g.ID]
		if !ok {
			fmt.Printf("  %-10s  %-6d  %-8s  %-8s  %s\n", g.ID, 0, "-", "-", "-")
			continue
		}
		fmt.Printf("  %-10s  %-6d  %-8d  %-8.0f  x%d\n",
			g.ID, stats.GamesCount, stats.HighScore, stats.AvgScore, stats.BestChain)
	}
}
