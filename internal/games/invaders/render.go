package invaders

import (
	"fmt"

	"github.com/vovakirdan/invaders/internal/core"
)

// Entity colors
var (
	PlayerColor = core.ColorGreen
	BulletColor = core.ColorYellow
	EnemyColor  = core.ColorRed
	ScoreColor  = core.ColorWhite
	TitleColor  = core.ColorRed
)

// Render draws the current game state.
// While playing: player, live bullets, live enemies and the score readout.
// Once the match is over only the end-of-match readout is drawn; it looks the
// same for a win and a loss.
func (g *Game) Render(dst core.Canvas) {
	if g.gameOver {
		g.drawGameOver(dst)
		return
	}

	dst.FillRect(g.playerRect(), PlayerColor)

	for _, b := range g.bullets {
		if b.Active {
			dst.FillRect(g.bulletRect(b), BulletColor)
		}
	}

	for _, e := range g.enemies {
		if e.Active {
			dst.FillRect(g.enemyRect(e), EnemyColor)
		}
	}

	dst.DrawText(10, 10, fmt.Sprintf("Score: %d", g.score), ScoreColor)
}

// drawGameOver draws the end-of-match readout around the playfield center.
func (g *Game) drawGameOver(dst core.Canvas) {
	w, h := g.Playfield()
	dst.DrawText(w/2-50, h/2-20, "Game Over", TitleColor)
	dst.DrawText(w/2-70, h/2+20, fmt.Sprintf("Final Score: %d", g.score), ScoreColor)
}
