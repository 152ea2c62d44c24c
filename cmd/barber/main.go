// barber is a terminal reaction game: cut the hair when the blade lines up.
//
// Usage:
//
//	barber list              - List game modes
//	barber play <mode>       - Play align or rush
//	barber menu              - Pick a mode interactively
//	barber scores <mode>     - Show the history of a mode
//	barber serve             - Start SSH server for remote play
//	barber sim <mode>        - Let a bot play headless
//	barber trace <file>      - Summarize a recorded sim trace
//	barber config            - Print or check a config file
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible runs
//	--db <path>          - Set database path (default: ~/.barber/scores.db)
//	--config <path>      - Load a YAML or TOML config
//	--difficulty <name>  - easy, normal or hard
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/new-barber/internal/core"
	"github.com/vovakirdan/new-barber/internal/games/barber"
	"github.com/vovakirdan/new-barber/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "barber",
	Short: "The New Barber - a reaction game for your terminal",
	Long: `The New Barber is a timing game played in the terminal.

Modes:
  align  - The blade swings along the track. Cut when it lines up with
           the marked hair. Each clean cut speeds the blade up.
  rush   - Hair falls from the top. Sweep the blade across before it
           reaches the floor.

Examples:
  barber play align
  barber play rush --difficulty hard
  barber menu
  barber serve --ssh :2222
  barber sim rush --ticks 36000 --trace rush.trace`,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.barber/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a YAML or TOML game config")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (terminal games log nowhere otherwise)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(traceCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig installs the game config shared by every command.
func loadConfig(cmd *cobra.Command, _ []string) error {
	if cmd == configCmd || cmd == traceCmd {
		return nil
	}
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}
	if _, err := barber.Configure(flagConfig, flagDifficulty); err != nil {
		return err
	}
	return nil
}

// newLogger builds the process logger writing to w.
func newLogger(w io.Writer) *log.Logger {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		level = log.InfoLevel
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "barber",
		Level:           level,
	})
}

// tuiLogger returns a logger that stays off the game screen. It writes to
// --log-file when set and discards everything otherwise.
func tuiLogger() (*log.Logger, func()) {
	if flagLogFile == "" {
		return newLogger(io.Discard), func() {}
	}
	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", err)
		return newLogger(io.Discard), func() {}
	}
	return newLogger(f), func() { f.Close() }
}

func runtimeConfig(width, height int) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the scores database. Games keep working without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}
