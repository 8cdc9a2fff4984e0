// Package config provides YAML-based tuning for the invaders game:
// playfield geometry, entity sizes and speeds, timing, and terminal input
// emulation.
package config

import "time"

// InvadersConfig contains all tunable parameters of the game.
type InvadersConfig struct {
	Playfield PlayfieldConfig `yaml:"playfield"`
	Timing    TimingConfig    `yaml:"timing"`
	Player    PlayerConfig    `yaml:"player"`
	Bullet    BulletConfig    `yaml:"bullet"`
	Enemy     EnemyConfig     `yaml:"enemy"`
	Scoring   ScoringConfig   `yaml:"scoring"`
	Arena     ArenaConfig     `yaml:"arena"`
	Terminal  TerminalConfig  `yaml:"terminal"`
}

// PlayfieldConfig is the size of the logical canvas.
type PlayfieldConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// TimingConfig defines frame pacing and the fire cooldown.
type TimingConfig struct {
	FrameDelayMS    int `yaml:"frame_delay_ms"`
	ShootCooldownMS int `yaml:"shoot_cooldown_ms"`
}

// FrameDelay returns the delay between frames as a duration.
func (t TimingConfig) FrameDelay() time.Duration {
	return time.Duration(t.FrameDelayMS) * time.Millisecond
}

// PlayerConfig defines the player ship.
type PlayerConfig struct {
	Width        int `yaml:"width"`
	Height       int `yaml:"height"`
	Speed        int `yaml:"speed"`         // Units per frame per held direction
	BottomOffset int `yaml:"bottom_offset"` // Spawn distance from the bottom edge
}

// BulletConfig defines player projectiles.
type BulletConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Speed  int `yaml:"speed"` // Units per frame, upwards
}

// EnemyConfig defines the enemy grid.
type EnemyConfig struct {
	Width   int `yaml:"width"`
	Height  int `yaml:"height"`
	Speed   int `yaml:"speed"` // Units per frame, downwards
	Rows    int `yaml:"rows"`
	Cols    int `yaml:"cols"`
	GapX    int `yaml:"gap_x"`
	GapY    int `yaml:"gap_y"`
	OffsetX int `yaml:"offset_x"`
	OffsetY int `yaml:"offset_y"`
}

// Count returns the number of enemies in the grid.
func (e EnemyConfig) Count() int {
	return e.Rows * e.Cols
}

// ScoringConfig defines score awards.
type ScoringConfig struct {
	PointsPerEnemy int `yaml:"points_per_enemy"`
}

// ArenaConfig controls bullet storage.
type ArenaConfig struct {
	// CompactThreshold is the number of dead bullets that triggers compaction.
	CompactThreshold int `yaml:"compact_threshold"`
}

// TerminalConfig tunes key-hold emulation for terminals, which report key
// presses and auto-repeats but never releases.
type TerminalConfig struct {
	HoldInitialMS int `yaml:"hold_initial_ms"` // Hold window after a first press
	HoldRepeatMS  int `yaml:"hold_repeat_ms"`  // Hold window after an auto-repeat
}
