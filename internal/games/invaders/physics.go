package invaders

import "github.com/vovakirdan/invaders/internal/core"

// movePlayer applies one frame of directional input and clamps the ship to
// the playfield. Axes are independent; diagonals add both deltas.
func (g *Game) movePlayer(keys core.KeySet) {
	speed := g.cfg.Player.Speed

	if keys.Has(core.KeyUp) {
		g.playerY -= speed
	}
	if keys.Has(core.KeyDown) {
		g.playerY += speed
	}
	if keys.Has(core.KeyLeft) {
		g.playerX -= speed
	}
	if keys.Has(core.KeyRight) {
		g.playerX += speed
	}

	g.playerX = core.Clamp(g.playerX, 0, g.cfg.Playfield.Width-g.cfg.Player.Width)
	g.playerY = core.Clamp(g.playerY, 0, g.cfg.Playfield.Height-g.cfg.Player.Height)
}

// moveBullets moves every active bullet up and retires those above the top edge.
func (g *Game) moveBullets() {
	for i := range g.bullets {
		b := &g.bullets[i]
		if !b.Active {
			continue
		}
		b.Y -= g.cfg.Bullet.Speed
		if b.Y < 0 {
			g.killBullet(b)
		}
	}
}

// moveEnemies moves every active enemy down. Enemies past the loss line are
// retired and flag the frame as lost.
func (g *Game) moveEnemies() (reachedBottom bool, events []core.Event) {
	lossLine := g.cfg.Playfield.Height - g.cfg.Enemy.Height

	for i := range g.enemies {
		e := &g.enemies[i]
		if !e.Active {
			continue
		}
		e.Y += g.cfg.Enemy.Speed
		if e.Y > lossLine {
			e.Active = false
			reachedBottom = true
			events = append(events, core.Event{Kind: core.EventEnemyReachedBottom, X: e.X, Y: e.Y})
		}
	}
	return reachedBottom, events
}

// resolveCollisions tests every active bullet against every active enemy.
// The first overlap retires both and scores; the bullet stops scanning, so a
// bullet scores at most once.
func (g *Game) resolveCollisions() []core.Event {
	var events []core.Event

	for i := range g.bullets {
		b := &g.bullets[i]
		if !b.Active {
			continue
		}
		br := g.bulletRect(*b)

		for j := range g.enemies {
			e := &g.enemies[j]
			if !e.Active {
				continue
			}
			if !br.Intersects(g.enemyRect(*e)) {
				continue
			}

			g.killBullet(b)
			e.Active = false
			g.score += g.cfg.Scoring.PointsPerEnemy
			events = append(events, core.Event{Kind: core.EventEnemyDestroyed, X: e.X, Y: e.Y})
			break
		}
	}
	return events
}

// killBullet marks a bullet as a tombstone.
func (g *Game) killBullet(b *Bullet) {
	b.Active = false
	g.deadBullets++
}

// compactBullets drops tombstones once enough have accumulated, keeping the
// relative order of live bullets.
func (g *Game) compactBullets() {
	if g.deadBullets < g.cfg.Arena.CompactThreshold {
		return
	}

	live := g.bullets[:0]
	for _, b := range g.bullets {
		if b.Active {
			live = append(live, b)
		}
	}
	clear(g.bullets[len(live):])
	g.bullets = live
	g.deadBullets = 0
}
