package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/new-barber/internal/sim"
)

var traceCmd = &cobra.Command{
	Use:   "trace <file>",
	Short: "Summarize a trace recorded by sim --trace",
	Long: `Decode a msgpack snapshot trace and print what happened in the run.

Examples:
  barber sim rush --trace rush.trace
  barber trace rush.trace`,
	Args: cobra.ExactArgs(1),
	RunE: runTrace,
}

func runTrace(_ *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	sum, err := sim.SummarizeTrace(f)
	if err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}

	end := "stopped"
	if sum.GameOver {
		end = "game over"
	}
	fmt.Printf("%s: %s run, %d snapshots (ticks %d-%d), %s\n",
		args[0], sum.Mode, sum.Snapshots, sum.FirstTick, sum.LastTick, end)
	fmt.Printf("  score %d  level %d  lives %d  best %d\n", sum.Score, sum.Level, sum.Lives, sum.HighScore)
	fmt.Printf("  scoring ticks %d", sum.Hits)
	if sum.Mode == "rush" {
		fmt.Printf("  most strands on screen %d", sum.MaxObjects)
	}
	fmt.Println()
	return nil
}
