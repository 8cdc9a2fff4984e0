// Package window runs a game in a desktop window using Ebitengine.
// The window is the playfield size; each frame the keyboard is sampled,
// the game stepped once and redrawn on a black background.
package window

import (
	"errors"
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/invaders/internal/core"
	"github.com/vovakirdan/invaders/internal/platform"
	"github.com/vovakirdan/invaders/internal/registry"
)

// ErrInit wraps failures to create the window or its renderer.
var ErrInit = errors.New("window: init failed")

// keyBindings maps game keys to the physical keys that hold them.
var keyBindings = map[core.Key][]ebiten.Key{
	core.KeyUp:    {ebiten.KeyArrowUp, ebiten.KeyW},
	core.KeyDown:  {ebiten.KeyArrowDown, ebiten.KeyS},
	core.KeyLeft:  {ebiten.KeyArrowLeft, ebiten.KeyA},
	core.KeyRight: {ebiten.KeyArrowRight, ebiten.KeyD},
	core.KeyFire:  {ebiten.KeySpace},
}

// Window adapts a registry.Game to ebiten.Game.
type Window struct {
	game   registry.Game
	clock  core.Clock
	canvas *Canvas
	logger *log.Logger
	state  core.GameState

	pressed func(ebiten.Key) bool
}

// New creates a window platform for game.
func New(game registry.Game, logger *log.Logger) *Window {
	return &Window{
		game:    game,
		clock:   core.NewSystemClock(),
		canvas:  NewCanvas(),
		logger:  logger,
		state:   game.State(),
		pressed: ebiten.IsKeyPressed,
	}
}

// Update samples the keyboard and advances the game by one frame.
func (w *Window) Update() error {
	now := w.clock.Ticks()
	in := core.InputFrame{Keys: w.sampleKeys(), Now: now}

	result := w.game.Step(in)
	w.state = result.State
	platform.LogStep(w.logger, w.game.ID(), result)
	return nil
}

// sampleKeys returns the set of game keys currently held.
func (w *Window) sampleKeys() core.KeySet {
	var s core.KeySet
	for _, k := range core.AllKeys {
		for _, phys := range keyBindings[k] {
			if w.pressed(phys) {
				s = s.With(k)
				break
			}
		}
	}
	return s
}

// Draw clears the screen and renders the game.
func (w *Window) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	w.canvas.Target(screen)
	w.game.Render(w.canvas)
}

// Layout keeps the logical screen at the playfield size.
func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	return w.game.Playfield()
}

// State returns the game state after the latest frame.
func (w *Window) State() core.GameState {
	return w.state
}

// Run opens the window and blocks until it is closed.
// Errors from creating the window are wrapped with ErrInit.
func Run(game registry.Game, logger *log.Logger) error {
	fw, fh := game.Playfield()
	tps := 1
	if d := game.FrameDelay().Milliseconds(); d > 0 {
		tps = int(1000 / d)
	}

	ebiten.SetWindowSize(fw, fh)
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetTPS(tps)

	logger.Debug("opening window", "width", fw, "height", fh, "tps", tps)

	if err := ebiten.RunGame(New(game, logger)); err != nil {
		return errors.Join(ErrInit, err)
	}
	return nil
}
