package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/invaders/internal/config"
	"github.com/vovakirdan/invaders/internal/core"
	"github.com/vovakirdan/invaders/internal/games/invaders"
	"github.com/vovakirdan/invaders/internal/platform/tui"
	"github.com/vovakirdan/invaders/internal/platform/window"
	"github.com/vovakirdan/invaders/internal/registry"
)

// Platforms
const (
	platformWindow = "window"
	platformTUI    = "tui"
)

// platformInitError reports that the window or terminal could not be set up.
type platformInitError struct {
	platform string
	err      error
}

func (e *platformInitError) Error() string {
	return fmt.Sprintf("%s platform: %v", e.platform, e.err)
}

func (e *platformInitError) Unwrap() error {
	return e.err
}

// configurable is implemented by games tuned through the YAML config.
// Configure replaces the tuning and resets the match.
type configurable interface {
	Configure(cfg config.InvadersConfig)
}

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing the specified game (default: invaders).

Controls:
  Arrows/WASD  - Move
  Space        - Fire
  Q/Ctrl+C     - Quit (tui); close the window to quit (window)

Examples:
  invaders play
  invaders play invaders --platform tui
  invaders play --config ./my-invaders.yaml --log-level debug --log-file invaders.log`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) (err error) {
	gameID := invaders.GameID
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'invaders list' to see available games", gameID)
	}
	if flagPlatform != platformWindow && flagPlatform != platformTUI {
		return fmt.Errorf("unknown platform %q, expected %s or %s", flagPlatform, platformWindow, platformTUI)
	}

	logger, closeLog, err := newLogger(flagPlatform, flagLogLevel, flagLogFile)
	if err != nil {
		return err
	}
	defer func() {
		err = joinClose(err, closeLog)
	}()

	cfg, source, err := config.LoadInvaders(flagConfig)
	if err != nil {
		return err
	}
	logger.Debug("config loaded", "source", source)

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}
	if c, ok := game.(configurable); ok {
		c.Configure(cfg)
	}

	logger.Info("starting", "game", gameID, "platform", flagPlatform)

	switch flagPlatform {
	case platformTUI:
		err = runTerminal(game, cfg, logger)
	default:
		err = window.Run(game, logger)
	}
	if err != nil {
		logger.Error("platform init failed", "platform", flagPlatform, "err", err)
		return &platformInitError{platform: flagPlatform, err: err}
	}

	state := game.State()
	logger.Info("quit", "game", gameID, "score", state.Score, "game_over", state.GameOver)
	return nil
}

// runTerminal plays game on the controlling terminal.
func runTerminal(game registry.Game, cfg config.InvadersConfig, logger *log.Logger) error {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return errors.New("stdout is not a terminal")
	}

	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(fd); err == nil {
		width = w
		height = h
	}

	rc := core.RuntimeConfig{
		ScreenW:    width,
		ScreenH:    height,
		FrameDelay: game.FrameDelay(),
	}
	opts := tui.Options{
		HoldInitial: time.Duration(cfg.Terminal.HoldInitialMS) * time.Millisecond,
		HoldRepeat:  time.Duration(cfg.Terminal.HoldRepeatMS) * time.Millisecond,
	}

	return tui.Run(game, rc, opts, logger)
}
