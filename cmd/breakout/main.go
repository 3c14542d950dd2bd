// breakout is a terminal Breakout game built around a concurrent simulation engine.
//
// Usage:
//
//	breakout play            - Play in the terminal
//	breakout sim             - Run the engine headless and report statistics
//	breakout config          - Print the effective configuration
//
// Global flags:
//
//	--config <path>        - Custom config YAML
//	--difficulty <preset>  - easy, normal or hard
//	--log-level <level>    - debug, info, warn or error
//	--fast                 - Start in fast mode
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/config"
)

var (
	// Global flags
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagFast       bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "breakout",
	Short: "Breakout - knock down the brick wall in your terminal",
	Long: `Breakout runs a ball, a bat and a wall of coloured bricks in a background
simulation loop and draws it in your terminal.

Available commands:
  play     - Play the game
  sim      - Run the simulation without a screen
  config   - Show the effective configuration

Examples:
  breakout play
  breakout play --difficulty hard --fast
  breakout sim --duration 10s
  breakout config --config ./my-breakout.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&flagFast, "fast", false, "Start in fast mode")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig resolves the config file and applies the difficulty preset.
func loadConfig() (config.BreakoutConfig, error) {
	preset, ok := config.ParseDifficulty(flagDifficulty)
	if !ok {
		return config.BreakoutConfig{}, fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", flagDifficulty)
	}

	cfg, err := config.LoadBreakout(flagConfig)
	if err != nil {
		return config.BreakoutConfig{}, err
	}
	if preset != "" {
		config.ApplyBreakoutPreset(&cfg, preset)
	}
	return cfg, nil
}
