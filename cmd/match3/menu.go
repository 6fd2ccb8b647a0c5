package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-match3/internal/platform/tui"
	"github.com/vovakirdan/tui-match3/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start match3 with a mode picker menu",
	Long: `Start match3 in interactive menu mode.

Use arrow keys or j/k to pick a mode, left/right to change difficulty
and Enter to play. After a game ends, press B to return to the menu.

Controls:
  Up/Down/j/k     - Navigate menu
  Left/Right      - Change difficulty
  Enter/Space     - Select mode
  Tab             - High scores
  Q               - Quit

Examples:
  match3 menu
  match3 menu --fps 60
  match3 menu --db ./scores.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	}

	closeLog := setupGameLog()
	runErr := tui.RunSession(store, terminalConfig(), difficulty)
	closeLog()

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
}
