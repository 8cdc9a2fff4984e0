// Package invaders implements a Space Invaders-style game.
// The player ship moves on both axes and fires upwards at a grid of enemies
// descending at constant speed. The match ends when every enemy is destroyed
// or when any enemy reaches the bottom of the playfield.
package invaders

import (
	"time"

	"github.com/vovakirdan/invaders/internal/config"
	"github.com/vovakirdan/invaders/internal/core"
	"github.com/vovakirdan/invaders/internal/registry"
)

// GameID is the registry identifier of the game.
const GameID = "invaders"

// Game implements the Space Invaders game logic.
// All match state lives here and is only touched by the frame loop.
type Game struct {
	cfg config.InvadersConfig

	// Player ship, top-left corner
	playerX int
	playerY int

	// Entity arenas. Inactive entries are tombstones skipped by every pass.
	bullets     []Bullet
	deadBullets int // Tombstones in bullets since the last compaction
	enemies     []Enemy

	trigger trigger

	// Match state
	score             int
	gameOver          bool
	gameOverDisplayed bool // End-of-match readout already reported
	outcome           core.Outcome
	frame             uint64
}

// New creates a game with the default tuning.
func New() *Game {
	return NewWithConfig(config.DefaultInvadersConfig())
}

// NewWithConfig creates a game with the given tuning.
// The match is ready to play without a further Reset.
func NewWithConfig(cfg config.InvadersConfig) *Game {
	g := &Game{cfg: cfg}
	g.Reset()
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Space Invaders"
}

// Configure replaces the tuning and starts a fresh match.
func (g *Game) Configure(cfg config.InvadersConfig) {
	g.cfg = cfg
	g.Reset()
}

// Config returns the tuning in use.
func (g *Game) Config() config.InvadersConfig {
	return g.cfg
}

// Reset initializes the match: player at the bottom center, no bullets,
// a full enemy grid, zero score.
func (g *Game) Reset() {
	g.playerX = g.cfg.Playfield.Width/2 - g.cfg.Player.Width/2
	g.playerY = g.cfg.Playfield.Height - g.cfg.Player.BottomOffset

	g.bullets = make([]Bullet, 0, 16)
	g.deadBullets = 0
	g.enemies = spawnGrid(g.cfg.Enemy)
	g.trigger = newTrigger(g.cfg.Timing.ShootCooldownMS)

	g.score = 0
	g.gameOver = false
	g.gameOverDisplayed = false
	g.outcome = core.OutcomeNone
	g.frame = 0
}

// Playfield returns the logical canvas size.
func (g *Game) Playfield() (int, int) {
	return g.cfg.Playfield.Width, g.cfg.Playfield.Height
}

// FrameDelay returns the delay between frames.
func (g *Game) FrameDelay() time.Duration {
	return g.cfg.Timing.FrameDelay()
}

// Step advances the game by one frame.
// Order: movement, shooting, bullet motion, enemy motion, collisions,
// compaction, win/loss. Once the match is over input and physics are frozen.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

	g.frame++
	var events []core.Event

	g.movePlayer(in.Keys)

	if g.trigger.pull(in.Keys.Has(core.KeyFire), in.Now) {
		b := g.spawnBullet()
		events = append(events, core.Event{Kind: core.EventShot, X: b.X, Y: b.Y})
	}

	g.moveBullets()

	reachedBottom, bottomEvents := g.moveEnemies()
	events = append(events, bottomEvents...)

	events = append(events, g.resolveCollisions()...)

	g.compactBullets()

	switch {
	case reachedBottom:
		g.gameOver = true
		g.outcome = core.OutcomeLoss
	case g.ActiveEnemies() == 0:
		g.gameOver = true
		g.outcome = core.OutcomeWin
	}

	if g.gameOver && !g.gameOverDisplayed {
		g.gameOverDisplayed = true
		events = append(events, core.Event{Kind: core.EventMatchOver})
	}

	return core.StepResult{State: g.State(), Events: events}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Outcome:  g.outcome,
	}
}

// Register the game with the registry
func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}
