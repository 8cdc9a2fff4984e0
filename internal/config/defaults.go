package config

import (
	_ "embed"
)

//go:embed defaults/invaders.yaml
var defaultInvadersYAML []byte

// DefaultInvadersConfig returns the built-in configuration.
// It mirrors defaults/invaders.yaml and is used when the embedded file
// cannot be parsed.
func DefaultInvadersConfig() InvadersConfig {
	return InvadersConfig{
		Playfield: PlayfieldConfig{
			Width:  800,
			Height: 600,
		},
		Timing: TimingConfig{
			FrameDelayMS:    30,
			ShootCooldownMS: 100,
		},
		Player: PlayerConfig{
			Width:        50,
			Height:       20,
			Speed:        5,
			BottomOffset: 50,
		},
		Bullet: BulletConfig{
			Width:  5,
			Height: 10,
			Speed:  10,
		},
		Enemy: EnemyConfig{
			Width:   40,
			Height:  20,
			Speed:   1,
			Rows:    5,
			Cols:    10,
			GapX:    10,
			GapY:    10,
			OffsetX: 50,
			OffsetY: 50,
		},
		Scoring: ScoringConfig{
			PointsPerEnemy: 10,
		},
		Arena: ArenaConfig{
			CompactThreshold: 32,
		},
		Terminal: TerminalConfig{
			HoldInitialMS: 500,
			HoldRepeatMS:  120,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultInvadersYAML
}
