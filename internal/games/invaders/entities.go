package invaders

import (
	"github.com/vovakirdan/invaders/internal/config"
	"github.com/vovakirdan/invaders/internal/core"
)

// Bullet is a player projectile. Inactive bullets stay in the arena until
// the next compaction.
type Bullet struct {
	X, Y   int
	Active bool
}

// Enemy is one cell of the invader grid. Inactive enemies are never removed.
type Enemy struct {
	X, Y   int
	Active bool
}

// spawnGrid lays out the enemy grid row by row.
// Enemy (row, col) sits at x = col*(w+gapX)+offsetX, y = row*(h+gapY)+offsetY
// and is stored at index row*cols+col.
func spawnGrid(cfg config.EnemyConfig) []Enemy {
	enemies := make([]Enemy, 0, cfg.Count())
	for row := 0; row < cfg.Rows; row++ {
		for col := 0; col < cfg.Cols; col++ {
			enemies = append(enemies, Enemy{
				X:      col*(cfg.Width+cfg.GapX) + cfg.OffsetX,
				Y:      row*(cfg.Height+cfg.GapY) + cfg.OffsetY,
				Active: true,
			})
		}
	}
	return enemies
}

// playerRect returns the player's collision rectangle.
func (g *Game) playerRect() core.Rect {
	return core.NewRect(g.playerX, g.playerY, g.cfg.Player.Width, g.cfg.Player.Height)
}

// bulletRect returns a bullet's collision rectangle.
func (g *Game) bulletRect(b Bullet) core.Rect {
	return core.NewRect(b.X, b.Y, g.cfg.Bullet.Width, g.cfg.Bullet.Height)
}

// enemyRect returns an enemy's collision rectangle.
func (g *Game) enemyRect(e Enemy) core.Rect {
	return core.NewRect(e.X, e.Y, g.cfg.Enemy.Width, g.cfg.Enemy.Height)
}

// spawnBullet appends a bullet centered horizontally on the player.
func (g *Game) spawnBullet() Bullet {
	b := Bullet{
		X:      g.playerX + g.cfg.Player.Width/2 - g.cfg.Bullet.Width/2,
		Y:      g.playerY,
		Active: true,
	}
	g.bullets = append(g.bullets, b)
	return b
}

// ActiveEnemies returns the number of enemies still alive.
func (g *Game) ActiveEnemies() int {
	n := 0
	for _, e := range g.enemies {
		if e.Active {
			n++
		}
	}
	return n
}

// ActiveBullets returns the number of bullets still in flight.
func (g *Game) ActiveBullets() int {
	return len(g.bullets) - g.deadBullets
}
