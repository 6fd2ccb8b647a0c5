package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-match3/internal/games/match3"
	"github.com/vovakirdan/tui-match3/internal/registry"
)

var (
	flagSimMoves int
	flagSimMode  string
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Play a seeded board headlessly",
	Long: `Play a board without a terminal UI, always taking the first
available swap, then print a summary and the final board.

Use --log-level debug to see every engine event.

Examples:
  match3 sim --seed 42
  match3 sim --seed 42 --moves 100 --mode mini
  match3 sim --log-level debug --moves 3`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimMoves, "moves", 20, "Maximum number of swaps")
	simCmd.Flags().StringVar(&flagSimMode, "mode", string(match3.ModeClassic), "Mode whose rules are used")
}

func runSim(_ *cobra.Command, _ []string) {
	if !registry.Exists(flagSimMode) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", flagSimMode)
		os.Exit(1)
	}

	logger := newLogger("match3-sim")

	cfg, err := match3.LoadConfig(match3.Mode(flagSimMode), difficulty)
	if err != nil {
		logger.Warn("config not loaded, using defaults", "error", err)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	rep, err := match3.Simulate(cfg, seed, flagSimMoves, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Mode:       %s (%s)\n", flagSimMode, difficulty)
	fmt.Printf("Seed:       %d\n", seed)
	fmt.Printf("Moves:      %d\n", rep.Moves)
	fmt.Printf("Score:      %d\n", rep.Score)
	fmt.Printf("Best chain: x%d\n", rep.BestChain)
	fmt.Printf("Cleared:    %d tiles\n", rep.Cleared)
	fmt.Printf("Shuffles:   %d\n", rep.Shuffles)
	fmt.Printf("Colors:     %d\n", rep.Colors)
	fmt.Printf("Events:     %d\n", rep.Events)
	fmt.Printf("Ended:      %s\n", rep.EndReason)
	fmt.Println()
	fmt.Println(rep.Board)
}
