package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
	"github.com/vovakirdan/tui-breakout/internal/logging"
)

var flagDuration time.Duration

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run the simulation headless",
	Long: `Run the engine without a screen for a fixed time, then print the
final score, the bricks left and the achieved tick rate.

Examples:
  breakout sim
  breakout sim --duration 30s --fast
  breakout sim --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().DurationVar(&flagDuration, "duration", 5*time.Second, "How long to run")
}

// SimResult summarises a headless run.
type SimResult struct {
	Ticks   int64
	Elapsed time.Duration
	Score   int
	Bricks  int
	Healthy bool // Loop still running when the time was up
}

// TickRate returns ticks per second.
func (r SimResult) TickRate() float64 {
	if r.Elapsed <= 0 {
		return 0
	}
	return float64(r.Ticks) / r.Elapsed.Seconds()
}

func runSim(cmd *cobra.Command, args []string) error {
	if flagDuration <= 0 {
		return fmt.Errorf("duration must be positive, got %v", flagDuration)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger, err := logging.New(os.Stderr, flagLogLevel)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	game := breakout.NewModel(cfg, logger)
	res, err := simulate(ctx, game, flagDuration, flagFast)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "ticks:   %d in %v\n", res.Ticks, res.Elapsed.Round(time.Millisecond))
	fmt.Fprintf(out, "rate:    %.1f ticks/s\n", res.TickRate())
	fmt.Fprintf(out, "score:   %d\n", res.Score)
	fmt.Fprintf(out, "bricks:  %d left\n", res.Bricks)
	if !res.Healthy {
		fmt.Fprintln(out, "warning: tick loop stopped early, see log")
	}
	return nil
}

// simulate runs game for d (or until ctx ends) and counts observer notifications.
func simulate(ctx context.Context, game *breakout.Model, d time.Duration, fast bool) (SimResult, error) {
	arena := game.Config().Arena
	game.Initialize(arena.Width, arena.Height)
	game.SetFast(fast)

	var ticks atomic.Int64
	sub := game.Subscribe(func() { ticks.Add(1) })
	defer game.Unsubscribe(sub)

	start := time.Now()
	game.Start()

	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
	case <-ctx.Done():
	}

	healthy := game.Running()
	elapsed := time.Since(start)
	game.Stop()

	waitCtx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := game.Wait(waitCtx); err != nil {
		return SimResult{}, fmt.Errorf("tick loop did not stop: %w", err)
	}

	snap := game.Snapshot()
	return SimResult{
		Ticks:   ticks.Load(),
		Elapsed: elapsed,
		Score:   snap.Score,
		Bricks:  len(snap.Bricks),
		Healthy: healthy,
	}, nil
}
