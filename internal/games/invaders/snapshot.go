package invaders

import "github.com/vovakirdan/invaders/internal/core"

// Snapshot captures the observable game state for tests and debugging.
type Snapshot struct {
	Frame         uint64
	PlayerX       int
	PlayerY       int
	Bullets       int // Arena length, tombstones included
	ActiveBullets int
	ActiveEnemies int
	Score         int
	GameOver      bool
	Outcome       core.Outcome
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Frame:         g.frame,
		PlayerX:       g.playerX,
		PlayerY:       g.playerY,
		Bullets:       len(g.bullets),
		ActiveBullets: g.ActiveBullets(),
		ActiveEnemies: g.ActiveEnemies(),
		Score:         g.score,
		GameOver:      g.gameOver,
		Outcome:       g.outcome,
	}
}
