// Package runner implements a Chrome Dino-style endless runner on the
// physics core. The world pulls the runner down, and the contact callback
// lands it on the ground or ends the run when it touches a cactus.
package runner

import (
	"fmt"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/physics"
	"github.com/vovakirdan/tui-platformer/internal/registry"
	"github.com/vovakirdan/tui-platformer/internal/scene"
)

// Visual characters for rendering
const (
	DinoBody   = '█'
	DinoHead   = '◆'
	DinoLeg1   = '╱'
	DinoLeg2   = '╲'
	CactusChar = '▓'
	GroundChar = '═'
)

const groundSkin = 1e-3

// Dino is the runner. It only moves vertically.
type Dino struct {
	scene.Base
	grounded bool
	jump     bool
	cfg      *config.RunnerConfig
}

// Update applies a pending jump and integrates the body.
func (d *Dino) Update(_ *scene.Scene, dt float64) {
	body := d.Body()
	if d.jump && d.grounded {
		body.Velocity.Y = -d.cfg.Physics.JumpImpulse
	}
	d.jump = false
	d.grounded = false

	if body.Velocity.Y > d.cfg.Physics.MaxFallSpeed {
		body.Velocity.Y = d.cfg.Physics.MaxFallSpeed
	}
	d.Integrate(dt)
}

// Ground is the floor strip.
type Ground struct {
	scene.Base
}

// Game implements the runner logic.
type Game struct {
	runtime    core.RuntimeConfig
	cfg        config.RunnerConfig
	configPath string
	preset     config.DifficultyPreset
	difficulty *config.DifficultyManager

	scene     *scene.Scene
	dino      *Dino
	obstacles *ObstacleManager
	groundY   float64

	score    int
	ticks    int
	legFrame int
	gameOver bool
	paused   bool
}

// New creates a new runner instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string { return "runner" }

// Title returns the display name for this game.
func (g *Game) Title() string { return "Endless Runner" }

// SetConfigPath sets a custom YAML config used by the next Reset.
func (g *Game) SetConfigPath(path string) { g.configPath = path }

// SetDifficulty sets the difficulty preset used by the next Reset.
func (g *Game) SetDifficulty(preset string) { g.preset = config.ParsePreset(preset) }

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	logger := runtime.Log()

	cfg, err := config.LoadRunner(g.configPath)
	if err != nil {
		logger.Warn("using default runner config", "err", err)
		cfg = config.DefaultRunnerConfig()
	}
	if g.preset != "" {
		config.ApplyRunnerPreset(&cfg, g.preset)
	}
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	world := physics.NewWorld(physics.Vec(0, cfg.Physics.Gravity), physics.WithLogger(logger))
	g.scene = scene.New(g.ID(), world, logger)
	world.AddCollisionCallback(g.onContact)

	g.groundY = float64(runtime.ScreenH - cfg.Player.GroundOffset)
	pc := cfg.Player
	g.dino = &Dino{
		Base: scene.NewBase(scene.KindActor,
			physics.Vec(float64(pc.X), g.groundY-float64(pc.Height)+groundSkin),
			physics.NewCollider(float64(pc.Width), float64(pc.Height)),
			physics.NewRigidBody(1, 1)),
		grounded: true,
		cfg:      &g.cfg,
	}
	g.scene.MustSpawn(g.dino)
	g.scene.MustSpawn(&Ground{Base: scene.NewBase(scene.KindSolid,
		physics.Vec(0, g.groundY),
		physics.NewCollider(float64(runtime.ScreenW), float64(cfg.Player.GroundOffset)), nil)})

	g.obstacles = NewObstacleManager(runtime.Seed, runtime.ScreenW, g.groundY, &g.cfg, g.difficulty)
	g.scene.OnDespawn(func(e scene.Entity) { g.obstacles.Forget(e.ID()) })

	g.score = 0
	g.ticks = 0
	g.legFrame = 0
	g.gameOver = false
	g.paused = false
}

func (g *Game) onContact(a, b *physics.Collider, _, _ physics.Vector2) {
	var other *physics.Collider
	switch g.dino.ID() {
	case a.Owner:
		other = b
	case b.Owner:
		other = a
	default:
		return
	}
	e, ok := g.scene.Entity(other.Owner)
	if !ok {
		return
	}

	switch e.Kind() {
	case scene.KindSolid:
		body := g.dino.Body()
		if body.Velocity.Y >= 0 {
			g.dino.Pos.Y = e.Position().Y - g.dino.Collider().Height + groundSkin
			body.Velocity.Y = 0
			g.dino.grounded = true
		}
	case scene.KindHazard:
		if !g.gameOver {
			g.gameOver = true
			g.scene.Logger().Debug("hit cactus", "score", g.score, "ticks", g.ticks)
		}
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

	g.ticks++
	g.legFrame = (g.legFrame + 1) % 10

	if in.Pressed(core.ActionJump) || in.Pressed(core.ActionUp) {
		g.dino.jump = true
	}

	dt := g.runtime.Dt()
	g.obstacles.Update(g.scene, g.score, g.ticks, dt)
	contacts := g.scene.Update(dt)

	g.score++

	return core.StepResult{State: g.State(), Contacts: contacts}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	gy := int(g.groundY)
	dst.DrawHLine(0, gy, dst.Width(), GroundChar)

	for _, e := range g.scene.Entities() {
		if c, ok := e.(*Cactus); ok {
			r := core.CellRect(c.Pos.X, c.Pos.Y, c.Collider().Width, c.Collider().Height)
			dst.FillRect(r, CactusChar, core.ColorGreen)
		}
	}

	g.drawDino(dst)

	dst.DrawText(2, 0, fmt.Sprintf(" Score: %d ", g.score))
	if g.difficulty.IsEnabled() {
		speed := g.difficulty.Speed(g.cfg.Physics.BaseSpeed, g.score, g.ticks)
		levelText := fmt.Sprintf(" Spd: %.0f ", speed)
		dst.DrawText(dst.Width()-len(levelText)-2, 0, levelText)
	}

	if g.paused {
		dst.DrawMessageBox("PAUSED", "Press P to resume")
	}
	if g.gameOver {
		dst.DrawMessageBox("GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", g.score))
	}
}

// drawDino renders the 3x3 sprite:
//
//	 ◆█
//	███
//	╱╲
func (g *Game) drawDino(dst *core.Screen) {
	x := int(g.dino.Pos.X)
	y := int(g.dino.Pos.Y + 0.5)

	dst.Set(x+1, y, DinoHead)
	dst.Set(x+2, y, DinoBody)
	for dx := 0; dx < 3; dx++ {
		dst.Set(x+dx, y+1, DinoBody)
	}

	switch {
	case !g.dino.grounded:
		dst.Set(x, y+2, DinoLeg1)
		dst.Set(x+1, y+2, DinoLeg2)
	case g.legFrame < 5:
		dst.Set(x, y+2, DinoLeg1)
		dst.Set(x+2, y+2, DinoLeg2)
	default:
		dst.Set(x+1, y+2, DinoLeg1)
		dst.Set(x+2, y+2, DinoLeg2)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// Checksum hashes the scene state.
func (g *Game) Checksum() uint64 {
	return g.scene.Checksum()
}

func init() {
	registry.Register("runner", func() registry.Game {
		return New()
	})
}
