// Package platform holds what the terminal and window platforms share.
package platform

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/invaders/internal/core"
)

// LogStep reports the events of one step. Shots and kills are debug noise;
// the end of a match is logged once at info level.
func LogStep(logger *log.Logger, gameID string, res core.StepResult) {
	for _, e := range res.Events {
		switch e.Kind {
		case core.EventShot, core.EventEnemyDestroyed:
			logger.Debug(e.Kind.String(), "game", gameID, "x", e.X, "y", e.Y)
		case core.EventEnemyReachedBottom:
			logger.Debug(e.Kind.String(), "game", gameID, "x", e.X)
		case core.EventMatchOver:
			logger.Info("match over",
				"game", gameID,
				"outcome", res.State.Outcome,
				"score", res.State.Score,
			)
		}
	}
}
