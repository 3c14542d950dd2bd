package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
	"github.com/vovakirdan/tui-breakout/internal/logging"
	"github.com/vovakirdan/tui-breakout/internal/platform/tui"
)

var flagLogFile string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Breakout",
	Long: `Start a game in the terminal.

Controls:
  Left/Right - Move the bat
  F / N      - Fast / normal speed
  P          - Pause or resume
  R          - New game
  ?          - Toggle full help
  Ctrl+S     - Save a text screenshot
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Slower ticks, slower ball, longer bat steps
  normal - Configured values
  hard   - Faster ticks, faster ball, shorter bat steps

Logs are discarded unless --log-file is given, so they do not
disturb the screen.

Examples:
  breakout play
  breakout play --difficulty easy
  breakout play --log-file ./breakout.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := logging.Open(flagLogFile, flagLogLevel)
	if err != nil {
		return err
	}
	defer func() {
		//nolint:errcheck // Best-effort close on exit
		closeLog()
	}()

	runtime := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		runtime.ScreenW = w
		runtime.ScreenH = h
	}

	game := breakout.NewModel(cfg, logger)
	if err := tui.Run(game, tui.Options{Runtime: runtime, Fast: flagFast, Logger: logger}); err != nil {
		return fmt.Errorf("game error: %w", err)
	}

	snap := game.Snapshot()
	fmt.Fprintf(cmd.OutOrStdout(), "Final score: %d (%d bricks left)\n", snap.Score, len(snap.Bricks))
	return nil
}
