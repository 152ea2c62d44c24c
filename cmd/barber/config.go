package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/new-barber/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config [file]",
	Short: "Print the default config or check a config file",
	Long: `Without arguments, print the default configuration as YAML. Save it to
~/.barber/configs/barber.yaml to change the defaults for every run.

With a file argument, load it (YAML, or TOML for .toml files), apply
--difficulty and report whether the result is valid.

Examples:
  barber config > ~/.barber/configs/barber.yaml
  barber config ./barber.toml --difficulty hard`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfig,
}

func runConfig(_ *cobra.Command, args []string) error {
	if len(args) == 0 {
		_, err := os.Stdout.Write(config.DefaultYAML())
		return err
	}

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}
	cfg, err := config.Load(args[0])
	if err != nil {
		return err
	}
	config.ApplyPreset(&cfg, preset)
	if err := cfg.Validate(); err != nil {
		return err
	}

	fmt.Printf("%s: ok\n", args[0])
	fmt.Printf("  lives %d, %d points per hit\n", cfg.MaxLives, cfg.PointsPerHit)
	fmt.Printf("  align: speed %g (+%g per level), tolerance %g, cut delay %d ticks\n",
		cfg.Align.BaseSpeed, cfg.Align.SpeedPerLevel, cfg.Align.Tolerance, cfg.Align.CuttingDelayTicks)
	fmt.Printf("  rush: sweep speed %g, spawn chance %g, hit radius %g\n",
		cfg.Rush.SweepSpeed, cfg.Rush.SpawnProbability, cfg.Rush.HitRadius)
	return nil
}
