package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-match3/internal/core"
	"github.com/vovakirdan/tui-match3/internal/games/match3"
	"github.com/vovakirdan/tui-match3/internal/platform/tui"
	"github.com/vovakirdan/tui-match3/internal/registry"
	"github.com/vovakirdan/tui-match3/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode",
	Long: `Start playing the specified mode (classic if omitted).

Controls:
  Arrows/WASD  - Move cursor
  Enter/Space  - Select tile, select a neighbour to swap
  Mouse click  - Select tile under the pointer
  Esc          - Cancel selection
  H/?          - Show a hint
  P            - Pause
  R            - Restart (when paused or after game over)
  Ctrl+S       - Save text screenshot
  Ctrl+E       - Export board as PNG
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Fewer colors, more moves
  normal - Defaults from the config file
  hard   - More colors, fewer moves
  fixed  - No palette growth during play

Examples:
  match3 play
  match3 play mini
  match3 play moves --difficulty easy
  match3 play classic --config ./my-match3.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := string(match3.ModeClassic)
	if len(args) > 0 {
		gameID = args[0]
	}

	// Check if mode exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'match3 list' to see available modes.")
		os.Exit(1)
	}

	closeLog := setupGameLog()
	defer closeLog()

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(game, store, terminalConfig())

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// terminalConfig builds a runtime config from the current terminal size.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// setupGameLog points the game logger at ~/.match3/match3.log so log lines
// do not tear the alternate screen. Returns a cleanup function.
func setupGameLog() func() {
	home, err := os.UserHomeDir()
	if err != nil {
		return func() {}
	}
	dir := filepath.Join(home, ".match3")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return func() {}
	}
	f, err := os.OpenFile(filepath.Join(dir, "match3.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return func() {}
	}

	match3.SetLogger(log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "match3",
		Level:           logLevel,
	}))
	return func() {
		match3.SetLogger(nil)
		f.Close()
	}
}
