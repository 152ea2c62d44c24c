package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/new-barber/internal/platform/tui"
	"github.com/vovakirdan/new-barber/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play <mode>",
	Short: "Play a mode",
	Long: `Start playing align or rush.

Controls:
  Space/Enter  - Start, cut
  P            - Pause
  R            - Play again after game over
  Backspace    - Back to the start screen
  B/Esc        - Leave (when not mid-run)
  Ctrl+S       - Save a screenshot
  Q/Ctrl+C     - Quit

Examples:
  barber play align
  barber play rush --difficulty easy
  barber play align --config ./barber.toml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	mode := args[0]
	if !registry.Exists(mode) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", mode)
		fmt.Fprintln(os.Stderr, "Run 'barber list' to see available modes.")
		os.Exit(1)
	}

	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}

	game, err := registry.Create(mode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store := openStore()
	logger, closeLog := tuiLogger()

	runErr := tui.Run(game, store, logger, runtimeConfig(width, height))

	if store != nil {
		store.Close()
	}
	closeLog()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
