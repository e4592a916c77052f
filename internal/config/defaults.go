package config

import (
	"embed"
)

//go:embed defaults/*.yaml
var defaultsFS embed.FS

// DefaultPlatformerConfig returns the hardcoded platformer configuration.
// It is the last fallback when even the embedded YAML cannot be parsed.
func DefaultPlatformerConfig() PlatformerConfig {
	return PlatformerConfig{
		Physics: PlatformerPhysics{
			Gravity:       40,
			MaxFallSpeed:  40,
			LandTolerance: 1.0,
			CoyoteTime:    0.1,
		},
		Player: PlatformerPlayer{
			Width:           2,
			Height:          2,
			GravityScale:    1.5,
			Speed:           20,
			JumpForce:       24,
			BoostedSpeed:    30,
			BoostedJump:     30,
			Damping:         0.8,
			Lives:           3,
			Invulnerability: 1.0,
		},
		Scoring: PlatformerScoring{Coin: 10, Star: 50, PowerUp: 25},
		Enemies: PlatformerEnemies{Width: 2, Height: 1, Speed: 4},
		Level: LevelConfig{
			Width:  80,
			Height: 24,
			Spawn:  Point{X: 4, Y: 20},
			Platforms: []Box{
				{X: 0, Y: 22, W: 80, H: 2},
				{X: 20, Y: 19, W: 10, H: 1},
				{X: 36, Y: 16, W: 10, H: 1},
			},
			Coins:    []Point{{X: 24, Y: 17}, {X: 40, Y: 14}},
			Stars:    []Point{{X: 60, Y: 20}},
			PowerUps: []PowerUpSpot{{X: 12, Y: 20, Kind: "jump"}},
			Enemies:  []EnemySpot{{X: 50, Y: 21, Range: 6}},
		},
		Difficulty: DifficultyConfig{
			Enabled:     true,
			Progression: ProgressionConfig{Type: "time", MaxAt: 18000},
			Scaling:     ScalingConfig{SpeedMultiplier: 1.0},
		},
	}
}

// DefaultRunnerConfig returns the hardcoded runner configuration.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Physics: RunnerPhysics{
			Gravity:      90,
			JumpImpulse:  30,
			MaxFallSpeed: 60,
			BaseSpeed:    30,
		},
		Obstacles: RunnerObstacles{
			MinWidth:   1,
			MaxWidth:   3,
			MinHeight:  2,
			MaxHeight:  4,
			MinSpacing: 30,
			MaxSpacing: 50,
		},
		Player: RunnerPlayer{
			X:            8,
			Width:        3,
			Height:       3,
			GroundOffset: 2,
		},
		Difficulty: DifficultyConfig{
			Enabled: true,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 2000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:  1.0,
				SpacingReduction: 20,
			},
		},
	}
}

// DefaultShooterConfig returns the hardcoded shooter configuration.
func DefaultShooterConfig() ShooterConfig {
	return ShooterConfig{
		Player: ShooterPlayer{
			Width:           3,
			Height:          2,
			Speed:           30,
			FireCooldown:    0.2,
			Lives:           3,
			Invulnerability: 1.0,
		},
		Bullets: ShooterBullets{
			Width:       1,
			Height:      1,
			PlayerSpeed: 40,
			EnemySpeed:  24,
		},
		Enemies: ShooterEnemies{
			Width:           3,
			Height:          2,
			MinSpeed:        5,
			MaxSpeed:        15,
			MinFireCooldown: 1,
			MaxFireCooldown: 3,
			FirstSpawn:      2,
			MinSpawn:        0.5,
			MaxSpawn:        2,
			Points:          10,
		},
		Stars: ShooterStars{Count: 40, MinSpeed: 2, MaxSpeed: 10},
		Difficulty: DifficultyConfig{
			Enabled: true,
			Progression: ProgressionConfig{
				Type:  "time",
				MaxAt: 7200,
			},
			Scaling: ScalingConfig{SpeedMultiplier: 0.5},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game, or nil.
func GetDefaultYAML(gameID string) []byte {
	data, err := defaultsFS.ReadFile("defaults/" + gameID + ".yaml")
	if err != nil {
		return nil
	}
	return data
}
