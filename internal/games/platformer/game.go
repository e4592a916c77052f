// Package platformer implements a side-scrolling platformer on top of the
// physics core: the world applies gravity and reports overlaps, and the
// game's contact callback decides landing, blocking, pickups and damage.
package platformer

import (
	"fmt"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/physics"
	"github.com/vovakirdan/tui-platformer/internal/registry"
	"github.com/vovakirdan/tui-platformer/internal/scene"
)

// fallMargin is how far below the level a player may drop before dying.
const fallMargin = 2

// Game implements the platformer logic.
type Game struct {
	runtime    core.RuntimeConfig
	cfg        config.PlatformerConfig
	configPath string
	preset     config.DifficultyPreset
	difficulty *config.DifficultyManager

	scene     *scene.Scene
	player    *Player
	pickups   map[physics.EntityID]*Pickup
	enemies   map[physics.EntityID]*Enemy
	remaining int // coins and stars left

	score    int
	ticks    int
	gameOver bool
	won      bool
	paused   bool
}

// New creates a new platformer instance. Reset must be called before Step.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string { return "platformer" }

// Title returns the display name for this game.
func (g *Game) Title() string { return "Platformer" }

// SetConfigPath sets a custom YAML config used by the next Reset.
func (g *Game) SetConfigPath(path string) { g.configPath = path }

// SetDifficulty sets the difficulty preset used by the next Reset.
func (g *Game) SetDifficulty(preset string) { g.preset = config.ParsePreset(preset) }

// Reset loads the config and builds the level.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	logger := runtime.Log()

	cfg, err := config.LoadPlatformer(g.configPath)
	if err != nil {
		logger.Warn("using default platformer config", "err", err)
		cfg = config.DefaultPlatformerConfig()
	}
	if g.preset != "" {
		config.ApplyPlatformerPreset(&cfg, g.preset)
	}
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	world := physics.NewWorld(physics.Vec(0, cfg.Physics.Gravity), physics.WithLogger(logger))
	g.scene = scene.New(g.ID(), world, logger)
	world.AddCollisionCallback(g.onContact)

	g.pickups = make(map[physics.EntityID]*Pickup)
	g.enemies = make(map[physics.EntityID]*Enemy)
	g.remaining = 0
	g.score = 0
	g.ticks = 0
	g.gameOver = false
	g.won = false
	g.paused = false

	g.player = newPlayer(&g.cfg)
	g.scene.MustSpawn(g.player)
	g.buildLevel()

	logger.Debug("level built",
		"entities", g.scene.Len(),
		"pickups", len(g.pickups),
		"enemies", len(g.enemies),
	)
}

func (g *Game) buildLevel() {
	lvl := g.cfg.Level
	for _, b := range lvl.Platforms {
		g.scene.MustSpawn(newPlatform(b))
	}

	addPickup := func(pk *Pickup) {
		g.pickups[g.scene.MustSpawn(pk)] = pk
		if pk.required() {
			g.remaining++
		}
	}
	for _, c := range lvl.Coins {
		addPickup(newPickup(c.X, c.Y, PickupCoin, g.cfg.Scoring.Coin))
	}
	for _, s := range lvl.Stars {
		addPickup(newPickup(s.X, s.Y, PickupStar, g.cfg.Scoring.Star))
	}
	for _, pu := range lvl.PowerUps {
		kind, ok := powerUpKind(pu.Kind)
		if !ok {
			g.scene.Logger().Warn("unknown power-up skipped", "kind", pu.Kind)
			continue
		}
		addPickup(newPickup(pu.X, pu.Y, kind, g.cfg.Scoring.PowerUp))
	}

	for _, spot := range lvl.Enemies {
		e := newEnemy(spot, g.cfg.Enemies)
		g.enemies[g.scene.MustSpawn(e)] = e
	}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

	if in.Pressed(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.player.in = in
	speed := g.difficulty.Speed(g.cfg.Enemies.Speed, g.score, g.ticks)
	for _, e := range g.enemies {
		e.speed = speed
	}

	contacts := g.scene.Update(g.runtime.Dt())
	g.ticks++

	if !g.gameOver && g.player.Pos.Y > g.cfg.Level.Height+fallMargin {
		g.hurt()
		g.player.respawn()
	}

	return core.StepResult{State: g.State(), Contacts: contacts}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Paused:   g.paused,
		Won:      g.won,
	}
}

// Checksum hashes the scene state.
func (g *Game) Checksum() uint64 {
	return g.scene.Checksum()
}

// Player returns the player entity.
func (g *Game) Player() *Player { return g.player }

// Remaining returns how many coins and stars are left.
func (g *Game) Remaining() int { return g.remaining }

func (g *Game) hud() string {
	s := fmt.Sprintf(" Score: %d  Lives: %d  Left: %d ", g.score, g.player.lives, g.remaining)
	if g.player.jumpForce > g.cfg.Player.JumpForce {
		s += "[J]"
	}
	if g.player.speed > g.cfg.Player.Speed {
		s += "[S]"
	}
	return s
}

func init() {
	registry.Register("platformer", func() registry.Game {
		return New()
	})
}
