package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/new-barber/internal/engine"
	"github.com/vovakirdan/new-barber/internal/games/barber"
	"github.com/vovakirdan/new-barber/internal/sim"
	"github.com/vovakirdan/new-barber/internal/storage"
)

var (
	flagSimTicks    int
	flagSimTrace    string
	flagSimMargin   float64
	flagSimSave     bool
	flagSimRealtime bool
)

var simCmd = &cobra.Command{
	Use:   "sim <mode>",
	Short: "Let a bot play a mode without a terminal",
	Long: `Run a mode headless with a bot on the trigger. Useful for tuning a
config file or recording a trace.

The trace is a stream of msgpack snapshots, one per tick. Read it back
with 'barber trace <file>'.

Examples:
  barber sim align --seed 7
  barber sim align --margin 1.5 --difficulty hard
  barber sim rush --ticks 36000 --trace rush.trace
  barber sim rush --realtime --save`,
	Args: cobra.ExactArgs(1),
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimTicks, "ticks", 36000, "Stop after this many ticks (0 = until game over)")
	simCmd.Flags().StringVar(&flagSimTrace, "trace", "", "Write a msgpack snapshot trace to this file")
	simCmd.Flags().Float64Var(&flagSimMargin, "margin", 0.8, "Align bot margin as a fraction of the tolerance")
	simCmd.Flags().BoolVar(&flagSimSave, "save", false, "Record the run and high score in the scores database")
	simCmd.Flags().BoolVar(&flagSimRealtime, "realtime", false, "Tick at --fps instead of as fast as possible")
}

func runSim(_ *cobra.Command, args []string) error {
	mode, err := engine.ParseMode(args[0])
	if err != nil {
		return err
	}
	logger := newLogger(os.Stderr)

	opts := engine.Options{Seed: flagSeed, Logger: logger}
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	var store *storage.Store
	if flagSimSave {
		if store = openStore(); store != nil {
			defer store.Close()
			opts.Store = store
		}
	}

	eng, err := engine.New(barber.ActiveConfig(), mode, opts)
	if err != nil {
		return err
	}

	simOpts := sim.Options{MaxTicks: flagSimTicks, Logger: logger}
	var trace *sim.TraceFile
	if flagSimTrace != "" {
		if trace, err = sim.CreateTrace(flagSimTrace); err != nil {
			return err
		}
		simOpts.Trace = trace.TraceWriter
	}

	var clock engine.Clock
	if flagSimRealtime {
		clock = engine.NewTickerClock(flagFPS)
	} else {
		clock = engine.NewFastClock(time.Now(), engine.TickInterval(flagFPS))
	}

	var bot sim.Bot = sim.BotFor(mode)
	if mode == engine.ModeAlign {
		bot = sim.AlignBot{Margin: flagSimMargin}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("simulating", "mode", mode, "seed", opts.Seed, "ticks", flagSimTicks)
	res, runErr := sim.Run(ctx, eng, clock, bot, simOpts)
	var traceErr error
	if trace != nil {
		traceErr = trace.Close()
	}
	if runErr != nil && ctx.Err() == nil {
		return errors.Join(runErr, traceErr)
	}

	logger.Info("run finished",
		"mode", res.Mode,
		"ticks", res.Ticks,
		"triggers", res.Triggers,
		"score", res.Score,
		"level", res.Level,
		"lives", res.Lives,
		"game_over", res.GameOver,
		"best", res.HighScore,
	)
	// The engine already saved the high score; the history is ours.
	if store != nil && res.Score > 0 {
		if _, err := store.SaveScore(res.Mode, res.Score, res.Level); err != nil {
			logger.Warn("could not save run", "error", err)
		}
	}
	if traceErr != nil {
		return traceErr
	}
	if trace != nil {
		logger.Info("trace written", "path", flagSimTrace, "snapshots", trace.Count())
	}
	return nil
}
