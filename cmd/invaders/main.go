// invaders is a Space Invaders arcade game for the desktop and the terminal.
//
// Usage:
//
//	invaders                 - Play in a window
//	invaders play [game]     - Play a game (default: invaders)
//	invaders list            - List available games
//	invaders config          - Print the default tuning YAML
//
// Global flags:
//
//	--platform <name>   - window or tui (default: window)
//	--config <path>     - Tuning YAML (default: search, then embedded)
//	--log-level <lvl>   - debug, info, warn or error (default: info)
//	--log-file <path>   - Log destination (window default: stderr, tui: none)
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/invaders/internal/games/invaders"
)

// Exit codes
const (
	exitUsage        = 1
	exitPlatformInit = -1
)

var (
	// Global flags
	flagPlatform string
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(exitCode(err))
	}
}

// exitCode maps a command error to the process exit status.
func exitCode(err error) int {
	var initErr *platformInitError
	if errors.As(err, &initErr) {
		return exitPlatformInit
	}
	return exitUsage
}

var rootCmd = &cobra.Command{
	Use:   "invaders",
	Short: "Space Invaders - shoot down the grid before it lands",
	Long: `Space Invaders: move your ship, fire upwards and destroy every enemy
before any of them reaches the bottom of the screen.

Available commands:
  play     - Play a game (the default command)
  list     - Show all available games
  config   - Print the tuning YAML

Examples:
  invaders
  invaders --platform tui
  invaders play invaders --config ./my-invaders.yaml
  invaders config > ~/.invaders/configs/invaders.yaml`,
	Args:          cobra.NoArgs,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE:          runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagPlatform, "platform", platformWindow, "Platform to play on: window or tui")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom tuning YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(configCmd)
}
