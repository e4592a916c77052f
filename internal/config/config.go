// Package config provides YAML-based game configuration loading, file
// watching and difficulty management for the arcade platform.
//
// All physical quantities are in screen cells and seconds.
package config

// Point is a position in level cells.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Box is an axis-aligned rectangle in level cells, anchored at its top-left.
type Box struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

// PlatformerConfig contains all configuration for the platformer.
type PlatformerConfig struct {
	Physics    PlatformerPhysics `yaml:"physics"`
	Player     PlatformerPlayer  `yaml:"player"`
	Scoring    PlatformerScoring `yaml:"scoring"`
	Enemies    PlatformerEnemies `yaml:"enemies"`
	Level      LevelConfig       `yaml:"level"`
	Difficulty DifficultyConfig  `yaml:"difficulty"`
}

// PlatformerPhysics defines world and contact parameters.
type PlatformerPhysics struct {
	Gravity       float64 `yaml:"gravity"`        // cells/s², scaled per body
	MaxFallSpeed  float64 `yaml:"max_fall_speed"` // cells/s
	LandTolerance float64 `yaml:"land_tolerance"` // max depth below a platform top that still counts as landing
	CoyoteTime    float64 `yaml:"coyote_time"`    // seconds a jump is still allowed after leaving ground
}

// PlatformerPlayer defines the player body and movement.
type PlatformerPlayer struct {
	Width           float64 `yaml:"width"`
	Height          float64 `yaml:"height"`
	GravityScale    float64 `yaml:"gravity_scale"`
	Speed           float64 `yaml:"speed"`
	JumpForce       float64 `yaml:"jump_force"`
	BoostedSpeed    float64 `yaml:"boosted_speed"`
	BoostedJump     float64 `yaml:"boosted_jump"`
	Damping         float64 `yaml:"damping"` // horizontal velocity factor per 1/60 s without input
	Lives           int     `yaml:"lives"`
	Invulnerability float64 `yaml:"invulnerability"` // seconds after taking damage
}

// PlatformerScoring defines points per pickup.
type PlatformerScoring struct {
	Coin    int `yaml:"coin"`
	Star    int `yaml:"star"`
	PowerUp int `yaml:"power_up"`
}

// PlatformerEnemies defines patrolling enemy parameters.
type PlatformerEnemies struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"`
}

// LevelConfig describes a single level layout.
type LevelConfig struct {
	Width     float64       `yaml:"width"`
	Height    float64       `yaml:"height"`
	Spawn     Point         `yaml:"spawn"`
	Platforms []Box         `yaml:"platforms"`
	Coins     []Point       `yaml:"coins"`
	Stars     []Point       `yaml:"stars"`
	PowerUps  []PowerUpSpot `yaml:"power_ups"`
	Enemies   []EnemySpot   `yaml:"enemies"`
}

// PowerUpSpot places a power-up. Kind is "jump", "speed" or "life".
type PowerUpSpot struct {
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
	Kind string  `yaml:"kind"`
}

// EnemySpot places an enemy that patrols ±Range around X.
type EnemySpot struct {
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	Range float64 `yaml:"range"`
}

// RunnerConfig contains all configuration for the endless runner.
type RunnerConfig struct {
	Physics    RunnerPhysics    `yaml:"physics"`
	Obstacles  RunnerObstacles  `yaml:"obstacles"`
	Player     RunnerPlayer     `yaml:"player"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// RunnerPhysics defines physics parameters for the runner.
type RunnerPhysics struct {
	Gravity      float64 `yaml:"gravity"`
	JumpImpulse  float64 `yaml:"jump_impulse"` // upward speed, cells/s
	MaxFallSpeed float64 `yaml:"max_fall_speed"`
	BaseSpeed    float64 `yaml:"base_speed"` // obstacle speed, cells/s
}

// RunnerObstacles defines cactus parameters.
type RunnerObstacles struct {
	MinWidth   int `yaml:"min_width"`
	MaxWidth   int `yaml:"max_width"`
	MinHeight  int `yaml:"min_height"`
	MaxHeight  int `yaml:"max_height"`
	MinSpacing int `yaml:"min_spacing"`
	MaxSpacing int `yaml:"max_spacing"`
}

// RunnerPlayer defines player parameters for the runner.
type RunnerPlayer struct {
	X            int `yaml:"x"`
	Width        int `yaml:"width"`
	Height       int `yaml:"height"`
	GroundOffset int `yaml:"ground_offset"`
}

// ShooterConfig contains all configuration for the space shooter.
type ShooterConfig struct {
	Player     ShooterPlayer    `yaml:"player"`
	Bullets    ShooterBullets   `yaml:"bullets"`
	Enemies    ShooterEnemies   `yaml:"enemies"`
	Stars      ShooterStars     `yaml:"stars"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// ShooterPlayer defines the player ship.
type ShooterPlayer struct {
	Width           float64 `yaml:"width"`
	Height          float64 `yaml:"height"`
	Speed           float64 `yaml:"speed"`
	FireCooldown    float64 `yaml:"fire_cooldown"`
	Lives           int     `yaml:"lives"`
	Invulnerability float64 `yaml:"invulnerability"`
}

// ShooterBullets defines projectile parameters.
type ShooterBullets struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	PlayerSpeed float64 `yaml:"player_speed"`
	EnemySpeed  float64 `yaml:"enemy_speed"`
}

// ShooterEnemies defines enemy ships and spawning.
type ShooterEnemies struct {
	Width           float64 `yaml:"width"`
	Height          float64 `yaml:"height"`
	MinSpeed        float64 `yaml:"min_speed"`
	MaxSpeed        float64 `yaml:"max_speed"`
	MinFireCooldown float64 `yaml:"min_fire_cooldown"`
	MaxFireCooldown float64 `yaml:"max_fire_cooldown"`
	FirstSpawn      float64 `yaml:"first_spawn"`
	MinSpawn        float64 `yaml:"min_spawn"`
	MaxSpawn        float64 `yaml:"max_spawn"`
	Points          int     `yaml:"points"`
}

// ShooterStars defines the background star field.
type ShooterStars struct {
	Count    int     `yaml:"count"`
	MinSpeed float64 `yaml:"min_speed"`
	MaxSpeed float64 `yaml:"max_speed"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier  float64 `yaml:"speed_multiplier"`  // Multiplier added to speed at max difficulty
	SpacingReduction int     `yaml:"spacing_reduction"` // Spacing reduction at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI string to a preset. Unknown strings yield "" which
// means "use the config file as is".
func ParsePreset(s string) DifficultyPreset {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
