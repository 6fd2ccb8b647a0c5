// match3 is a terminal match-3 game built on a deterministic board engine.
//
// Usage:
//
//	match3 list              - List available modes
//	match3 play [mode]       - Play a mode (default: classic)
//	match3 menu              - Start menu to pick modes interactively
//	match3 serve             - Start SSH server for remote play
//	match3 scores [mode]     - Show high scores
//	match3 sim               - Play a board headlessly and print the result
//	match3 export            - Render a seeded board to PNG
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 30)
//	--seed <value>        - Set RNG seed for reproducible boards
//	--db <path>           - Set database path (default: ~/.match3/scores.db)
//	--config <path>       - Load a custom match3.yaml
//	--difficulty <preset> - easy, normal, hard or fixed
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-match3/internal/config"
	"github.com/vovakirdan/tui-match3/internal/games/match3"
	"github.com/vovakirdan/tui-match3/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string

	// Resolved in PersistentPreRunE
	difficulty = config.DifficultyNormal
	logLevel   = log.WarnLevel
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "match3",
	Short: "Match-3 - Swap tiles and clear rows in your terminal",
	Long: `Match-3 is a terminal tile-swapping game. Swap two neighbouring
tiles to line up three or more of the same color; cleared tiles fall and
new ones drop in from the top, sometimes setting off chains.

Available commands:
  list     - Show all available modes
  play     - Play a specific mode directly
  menu     - Interactive mode picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores
  sim      - Play a seeded board without a terminal UI
  export   - Save a seeded board as PNG

Examples:
  match3 list
  match3 play classic
  match3 play moves --difficulty hard
  match3 menu
  match3 serve --ssh :2222
  match3 sim --seed 42 --moves 20
  match3 export --seed 42 --out board.png`,
	SilenceUsage:      true,
	PersistentPreRunE: applyGlobalFlags,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom match3 config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(exportCmd)
}

// applyGlobalFlags validates global flags and hands them to the game package.
func applyGlobalFlags(_ *cobra.Command, _ []string) error {
	preset, ok := config.ParsePreset(flagDifficulty)
	if !ok {
		return fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
	}
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}

	difficulty = preset
	logLevel = level

	match3.SetConfigPath(flagConfig)
	match3.SetDefaultDifficulty(preset)
	return nil
}

// newLogger returns a stderr logger for commands without a full-screen UI.
func newLogger(prefix string) *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           logLevel,
	})
}
