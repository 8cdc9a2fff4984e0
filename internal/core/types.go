package core

import "time"

// RuntimeConfig contains what a platform knows about its drawing surface and
// frame pacing.
type RuntimeConfig struct {
	ScreenW    int           // Surface width (terminal cells or window pixels)
	ScreenH    int           // Surface height
	FrameDelay time.Duration // Delay between two frames
}

// Outcome is how a match ended.
type Outcome int

const (
	OutcomeNone Outcome = iota // Match still running
	OutcomeWin                 // Every enemy destroyed
	OutcomeLoss                // An enemy reached the bottom
)

// String returns a lowercase name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeWin:
		return "win"
	case OutcomeLoss:
		return "loss"
	default:
		return "none"
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int     // Current score
	GameOver bool    // Whether the match has ended
	Outcome  Outcome // Set once GameOver is true
}

// EventKind identifies something that happened during a step.
type EventKind int

const (
	EventShot               EventKind = iota // A bullet was spawned
	EventEnemyDestroyed                      // A bullet hit an enemy
	EventEnemyReachedBottom                  // An enemy crossed the bottom boundary
	EventMatchOver                           // The match ended (reported once)
)

// String returns a short name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventShot:
		return "shot"
	case EventEnemyDestroyed:
		return "enemy_destroyed"
	case EventEnemyReachedBottom:
		return "enemy_reached_bottom"
	case EventMatchOver:
		return "match_over"
	default:
		return "unknown"
	}
}

// Event is a notable state transition reported by a step.
type Event struct {
	Kind EventKind
	X, Y int // Where it happened, in playfield units
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}

// Canvas is the drawing surface a platform hands to a game's render pass.
// Coordinates are playfield units; the platform maps them to its surface.
type Canvas interface {
	// FillRect fills r with a solid color.
	FillRect(r Rect, c Color)

	// DrawText draws text with its top-left corner at (x, y).
	DrawText(x, y int, text string, c Color)
}
