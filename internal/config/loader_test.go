package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	if got, want := embeddedDefault(), DefaultInvadersConfig(); !reflect.DeepEqual(got, want) {
		t.Errorf("embedded YAML and DefaultInvadersConfig differ:\n got %+v\nwant %+v", got, want)
	}
}

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultInvadersConfig().Validate(); err != nil {
		t.Fatalf("default config should be valid: %v", err)
	}
	if n := DefaultInvadersConfig().Enemy.Count(); n != 50 {
		t.Errorf("default grid should hold 50 enemies, got %d", n)
	}
}

func TestLoadInvadersCustomPathPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := "timing:\n  shoot_cooldown_ms: 250\nenemy:\n  speed: 2\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, source, err := LoadInvaders(path)
	if err != nil {
		t.Fatalf("LoadInvaders() failed: %v", err)
	}
	if source != path {
		t.Errorf("source = %q, expected %q", source, path)
	}
	if cfg.Timing.ShootCooldownMS != 250 {
		t.Errorf("shoot_cooldown_ms = %d, expected 250", cfg.Timing.ShootCooldownMS)
	}
	if cfg.Enemy.Speed != 2 {
		t.Errorf("enemy.speed = %d, expected 2", cfg.Enemy.Speed)
	}
	// Untouched fields keep their defaults
	if cfg.Playfield.Width != 800 || cfg.Enemy.Rows != 5 || cfg.Timing.FrameDelayMS != 30 {
		t.Errorf("unset fields should keep defaults, got %+v", cfg)
	}
}

func TestLoadInvadersMissingCustomPath(t *testing.T) {
	_, _, err := LoadInvaders(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("expected error for missing custom config")
	}
}

func TestLoadInvadersBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("player: [unterminated"), 0o600); err != nil {
		t.Fatal(err)
	}

	_, _, err := LoadInvaders(path)
	if err == nil || !strings.Contains(err.Error(), "failed to parse") {
		t.Fatalf("expected parse error, got %v", err)
	}
}

func TestLoadInvadersSearchOrder(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	oldWD, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}
	if err := os.Chdir(work); err != nil {
		t.Fatalf("Chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(oldWD) })

	// Nothing on disk: embedded default
	cfg, source, err := LoadInvaders("")
	if err != nil {
		t.Fatalf("LoadInvaders() failed: %v", err)
	}
	if source != SourceEmbedded {
		t.Errorf("source = %q, expected %q", source, SourceEmbedded)
	}
	if !reflect.DeepEqual(cfg, DefaultInvadersConfig()) {
		t.Errorf("expected defaults, got %+v", cfg)
	}

	// Local configs directory
	local := filepath.Join(work, "configs", "invaders.yaml")
	writeFile(t, local, "player:\n  speed: 7\n")
	cfg, source, err = LoadInvaders("")
	if err != nil {
		t.Fatalf("LoadInvaders() failed: %v", err)
	}
	if source != filepath.Join("configs", "invaders.yaml") || cfg.Player.Speed != 7 {
		t.Errorf("expected local config, got source %q speed %d", source, cfg.Player.Speed)
	}

	// User directory wins over the local one
	user := filepath.Join(home, ".invaders", "configs", "invaders.yaml")
	writeFile(t, user, "player:\n  speed: 9\n")
	cfg, source, err = LoadInvaders("")
	if err != nil {
		t.Fatalf("LoadInvaders() failed: %v", err)
	}
	if source != user || cfg.Player.Speed != 9 {
		t.Errorf("expected user config, got source %q speed %d", source, cfg.Player.Speed)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*InvadersConfig)
		want   string
	}{
		{"zero bullet speed", func(c *InvadersConfig) { c.Bullet.Speed = 0 }, "bullet.speed"},
		{"negative cooldown", func(c *InvadersConfig) { c.Timing.ShootCooldownMS = -1 }, "timing.shoot_cooldown_ms"},
		{"grid too wide", func(c *InvadersConfig) { c.Enemy.Cols = 20 }, "enemy grid is"},
		{"grid too tall", func(c *InvadersConfig) { c.Enemy.Rows = 20 }, "loss line"},
		{"player too wide", func(c *InvadersConfig) { c.Player.Width = 900 }, "does not fit"},
		{"spawn below floor", func(c *InvadersConfig) { c.Player.BottomOffset = 5 }, "bottom_offset"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultInvadersConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %q should mention %q", err, tc.want)
			}
		})
	}
}

func TestValidateReportsEveryField(t *testing.T) {
	cfg := DefaultInvadersConfig()
	cfg.Player.Speed = 0
	cfg.Enemy.Speed = 0

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	for _, field := range []string{"player.speed", "enemy.speed"} {
		if !strings.Contains(err.Error(), field) {
			t.Errorf("error %q should mention %q", err, field)
		}
	}
}

func TestFrameDelay(t *testing.T) {
	if d := DefaultInvadersConfig().Timing.FrameDelay(); d.Milliseconds() != 30 {
		t.Errorf("FrameDelay() = %v, expected 30ms", d)
	}
}

func writeFile(t *testing.T, path, data string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}
}
