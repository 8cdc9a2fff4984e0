package config

import (
	"errors"
	"fmt"
)

// Validate checks that every size and speed is usable and that the player
// and the enemy grid fit on the playfield. All problems are reported at once.
func (c InvadersConfig) Validate() error {
	var errs []error

	positive := func(name string, v int) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %d", name, v))
		}
	}
	nonNegative := func(name string, v int) {
		if v < 0 {
			errs = append(errs, fmt.Errorf("%s must not be negative, got %d", name, v))
		}
	}

	positive("playfield.width", c.Playfield.Width)
	positive("playfield.height", c.Playfield.Height)
	positive("timing.frame_delay_ms", c.Timing.FrameDelayMS)
	nonNegative("timing.shoot_cooldown_ms", c.Timing.ShootCooldownMS)
	positive("player.width", c.Player.Width)
	positive("player.height", c.Player.Height)
	positive("player.speed", c.Player.Speed)
	nonNegative("player.bottom_offset", c.Player.BottomOffset)
	positive("bullet.width", c.Bullet.Width)
	positive("bullet.height", c.Bullet.Height)
	positive("bullet.speed", c.Bullet.Speed)
	positive("enemy.width", c.Enemy.Width)
	positive("enemy.height", c.Enemy.Height)
	positive("enemy.speed", c.Enemy.Speed)
	positive("enemy.rows", c.Enemy.Rows)
	positive("enemy.cols", c.Enemy.Cols)
	nonNegative("enemy.gap_x", c.Enemy.GapX)
	nonNegative("enemy.gap_y", c.Enemy.GapY)
	nonNegative("enemy.offset_x", c.Enemy.OffsetX)
	nonNegative("enemy.offset_y", c.Enemy.OffsetY)
	nonNegative("scoring.points_per_enemy", c.Scoring.PointsPerEnemy)
	positive("arena.compact_threshold", c.Arena.CompactThreshold)
	positive("terminal.hold_initial_ms", c.Terminal.HoldInitialMS)
	positive("terminal.hold_repeat_ms", c.Terminal.HoldRepeatMS)

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	if c.Player.Width > c.Playfield.Width || c.Player.Height > c.Playfield.Height {
		errs = append(errs, fmt.Errorf("player %dx%d does not fit the %dx%d playfield",
			c.Player.Width, c.Player.Height, c.Playfield.Width, c.Playfield.Height))
	}
	if c.Player.BottomOffset < c.Player.Height || c.Player.BottomOffset > c.Playfield.Height {
		errs = append(errs, fmt.Errorf("player.bottom_offset %d must be within [%d, %d]",
			c.Player.BottomOffset, c.Player.Height, c.Playfield.Height))
	}

	gridW := c.Enemy.OffsetX + c.Enemy.Cols*c.Enemy.Width + (c.Enemy.Cols-1)*c.Enemy.GapX
	gridH := c.Enemy.OffsetY + c.Enemy.Rows*c.Enemy.Height + (c.Enemy.Rows-1)*c.Enemy.GapY
	if gridW > c.Playfield.Width {
		errs = append(errs, fmt.Errorf("enemy grid is %d wide, playfield is %d", gridW, c.Playfield.Width))
	}
	if gridH > c.Playfield.Height-c.Enemy.Height {
		errs = append(errs, fmt.Errorf("enemy grid bottom %d is already past the loss line %d",
			gridH, c.Playfield.Height-c.Enemy.Height))
	}

	return errors.Join(errs...)
}
