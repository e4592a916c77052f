package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultsParse(t *testing.T) {
	for _, id := range []string{"platformer", "runner", "shooter"} {
		if GetDefaultYAML(id) == nil {
			t.Errorf("no embedded default for %s", id)
		}
	}
	if GetDefaultYAML("pong") != nil {
		t.Error("unknown game should have no embedded default")
	}

	p, err := LoadPlatformer("")
	if err != nil {
		t.Fatalf("LoadPlatformer: %v", err)
	}
	if p.Player.Lives <= 0 || p.Physics.Gravity <= 0 {
		t.Errorf("platformer defaults look empty: %+v", p.Player)
	}
	if len(p.Level.Platforms) == 0 || len(p.Level.Coins) == 0 {
		t.Error("platformer level should have platforms and coins")
	}

	r, err := LoadRunner("")
	if err != nil {
		t.Fatalf("LoadRunner: %v", err)
	}
	if r.Physics.JumpImpulse <= 0 || r.Obstacles.MaxSpacing < r.Obstacles.MinSpacing {
		t.Errorf("runner defaults look wrong: %+v", r.Physics)
	}

	s, err := LoadShooter("")
	if err != nil {
		t.Fatalf("LoadShooter: %v", err)
	}
	if s.Player.FireCooldown <= 0 || s.Stars.Count <= 0 {
		t.Errorf("shooter defaults look wrong: %+v", s.Player)
	}
}

func TestPlatformerLandTolerance(t *testing.T) {
	// Landing must catch a body falling at max speed for one tick.
	for _, cfg := range []PlatformerConfig{DefaultPlatformerConfig(), mustLoadPlatformer(t)} {
		perTick := cfg.Physics.MaxFallSpeed / 60
		if cfg.Physics.LandTolerance < perTick {
			t.Errorf("land_tolerance %.2f < max fall per tick %.2f", cfg.Physics.LandTolerance, perTick)
		}
	}
}

func mustLoadPlatformer(t *testing.T) PlatformerConfig {
	t.Helper()
	cfg, err := LoadPlatformer("")
	if err != nil {
		t.Fatal(err)
	}
	return cfg
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "runner.yaml")
	data := []byte("physics:\n  gravity: 12.5\nplayer:\n  x: 3\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadRunner(path)
	if err != nil {
		t.Fatalf("LoadRunner: %v", err)
	}
	if cfg.Physics.Gravity != 12.5 {
		t.Errorf("Gravity = %v, expected 12.5", cfg.Physics.Gravity)
	}
	if cfg.Player.X != 3 {
		t.Errorf("Player.X = %d, expected 3", cfg.Player.X)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := LoadShooter(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing custom config should fail")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("player: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadPlatformer(path); err == nil {
		t.Error("malformed custom config should fail")
	}
}

func TestApplyPresets(t *testing.T) {
	cfg := DefaultPlatformerConfig()
	ApplyPlatformerPreset(&cfg, DifficultyFixed)
	if cfg.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}

	cfg = DefaultPlatformerConfig()
	ApplyPlatformerPreset(&cfg, DifficultyHard)
	if !cfg.Difficulty.Enabled || cfg.Difficulty.InitialLevel != 0.7 {
		t.Errorf("hard preset: enabled=%v level=%v", cfg.Difficulty.Enabled, cfg.Difficulty.InitialLevel)
	}
	if cfg.Player.Lives != 2 {
		t.Errorf("hard preset lives = %d, expected 2", cfg.Player.Lives)
	}

	sh := DefaultShooterConfig()
	ApplyShooterPreset(&sh, DifficultyEasy)
	if sh.Player.Lives != 5 {
		t.Errorf("easy shooter lives = %d, expected 5", sh.Player.Lives)
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in       string
		expected DifficultyPreset
	}{
		{"easy", DifficultyEasy},
		{"normal", DifficultyNormal},
		{"hard", DifficultyHard},
		{"fixed", DifficultyFixed},
		{"", ""},
		{"nightmare", ""},
	}
	for _, tc := range tests {
		if got := ParsePreset(tc.in); got != tc.expected {
			t.Errorf("ParsePreset(%q) = %q, expected %q", tc.in, got, tc.expected)
		}
	}
}

func TestDifficultyManager(t *testing.T) {
	cfg := DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "score", MaxAt: 100},
		Scaling:     ScalingConfig{SpeedMultiplier: 1.0, SpacingReduction: 20},
	}
	d := NewDifficultyManager(cfg)

	tests := []struct {
		score    int
		expected float64
	}{
		{0, 0},
		{50, 0.5},
		{100, 1},
		{500, 1},
	}
	for _, tc := range tests {
		if got := d.Level(tc.score, 0); got != tc.expected {
			t.Errorf("Level(%d) = %v, expected %v", tc.score, got, tc.expected)
		}
	}

	if got := d.Speed(10, 100, 0); got != 20 {
		t.Errorf("Speed at max = %v, expected 20", got)
	}
	if got := d.Interval(2, 100, 0); got != 1 {
		t.Errorf("Interval at max = %v, expected 1", got)
	}
	if got := d.Spacing(40, 100, 0); got != 20 {
		t.Errorf("Spacing at max = %v, expected 20", got)
	}
	if got := d.Spacing(20, 100, 0); got != 15 {
		t.Errorf("Spacing floor = %v, expected 15", got)
	}

	d.SetEnabled(false)
	d.SetInitialLevel(0.3)
	if got := d.Level(100, 0); got != 0.3 {
		t.Errorf("disabled Level = %v, expected initial 0.3", got)
	}
}

func TestDifficultyTimeProgression(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.5,
		Progression:  ProgressionConfig{Type: "time", MaxAt: 60},
	})
	if got := d.Level(0, 30); got != 0.75 {
		t.Errorf("Level at half time = %v, expected 0.75", got)
	}
}
