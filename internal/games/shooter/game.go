// Package shooter implements a vertical space shooter. The physics world runs
// without gravity and only reports overlaps; bullet hits are resolved by a
// collision callback and ramming damage by a contact tracker, so a ship that
// stays inside an enemy is only hit once per contact.
package shooter

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/physics"
	"github.com/vovakirdan/tui-platformer/internal/registry"
	"github.com/vovakirdan/tui-platformer/internal/scene"
)

// Game implements the shooter logic.
type Game struct {
	runtime    core.RuntimeConfig
	cfg        config.ShooterConfig
	configPath string
	preset     config.DifficultyPreset
	difficulty *config.DifficultyManager

	scene   *scene.Scene
	tracker *physics.ContactTracker
	rng     *rand.Rand
	fieldW  float64
	fieldH  float64

	ship    *Ship
	bullets map[physics.EntityID]*Bullet
	enemies map[physics.EntityID]*Enemy
	spawnIn float64

	score    int
	kills    int
	ticks    int
	gameOver bool
	paused   bool
}

// New creates a new shooter instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string { return "shooter" }

// Title returns the display name for this game.
func (g *Game) Title() string { return "Space Shooter" }

// SetConfigPath sets a custom YAML config used by the next Reset.
func (g *Game) SetConfigPath(path string) { g.configPath = path }

// SetDifficulty sets the difficulty preset used by the next Reset.
func (g *Game) SetDifficulty(preset string) { g.preset = config.ParsePreset(preset) }

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	logger := runtime.Log()

	cfg, err := config.LoadShooter(g.configPath)
	if err != nil {
		logger.Warn("using default shooter config", "err", err)
		cfg = config.DefaultShooterConfig()
	}
	if g.preset != "" {
		config.ApplyShooterPreset(&cfg, g.preset)
	}
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)
	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.fieldW = float64(runtime.ScreenW)
	g.fieldH = float64(runtime.ScreenH)

	world := physics.NewWorld(physics.Vector2{}, physics.WithLogger(logger))
	g.scene = scene.New(g.ID(), world, logger)
	g.tracker = physics.NewContactTracker()
	world.AddCollisionCallback(g.onContact)
	world.AddCollisionCallback(g.tracker.Observe)
	g.scene.AfterStep(g.afterStep)
	g.scene.OnDespawn(g.forget)

	g.bullets = make(map[physics.EntityID]*Bullet)
	g.enemies = make(map[physics.EntityID]*Enemy)
	g.spawnIn = cfg.Enemies.FirstSpawn
	g.score = 0
	g.kills = 0
	g.ticks = 0
	g.gameOver = false
	g.paused = false

	// Stars first so they update, and draw, before everything else
	for i := 0; i < cfg.Stars.Count; i++ {
		g.scene.MustSpawn(&Star{
			Base: scene.NewBase(scene.KindNone,
				physics.Vec(float64(g.rng.Intn(core.Max(1, runtime.ScreenW))), 1+float64(g.rng.Intn(core.Max(1, runtime.ScreenH-1)))),
				nil, nil),
			speed: g.uniform(cfg.Stars.MinSpeed, cfg.Stars.MaxSpeed),
			rng:   g.rng,
			w:     g.fieldW,
			h:     g.fieldH,
		})
	}

	pc := cfg.Player
	g.ship = &Ship{
		Base: scene.NewBase(scene.KindActor,
			physics.Vec(g.fieldW/2-pc.Width/2, g.fieldH-pc.Height-1),
			physics.NewCollider(pc.Width, pc.Height),
			physics.NewRigidBody(1, 0)),
		g:      g,
		lives:  pc.Lives,
		invuln: scene.NewTimer(pc.Invulnerability),
	}
	g.scene.MustSpawn(g.ship)
}

// uniform returns a seeded random float in [lo, hi).
func (g *Game) uniform(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + g.rng.Float64()*(hi-lo)
}

func (g *Game) fire(sc *scene.Scene, pos physics.Vector2, vy float64, hostile bool) {
	bc := g.cfg.Bullets
	b := &Bullet{
		Base:    scene.NewBase(scene.KindProjectile, pos, physics.NewTrigger(bc.Width, bc.Height), physics.NewRigidBody(0, 0)),
		hostile: hostile,
		fieldH:  g.fieldH,
	}
	b.Body().Velocity = physics.Vec(0, vy)
	id, err := sc.Spawn(b)
	if err != nil {
		sc.Logger().Error("bullet spawn failed", "err", err)
		return
	}
	g.bullets[id] = b
}

func (g *Game) spawnEnemy() {
	ec := g.cfg.Enemies
	x := g.uniform(0, g.fieldW-ec.Width)
	speed := g.difficulty.Speed(g.uniform(ec.MinSpeed, ec.MaxSpeed), g.score, g.ticks)
	e := &Enemy{
		Base: scene.NewBase(scene.KindHazard, physics.Vec(x, 1-ec.Height),
			physics.NewCollider(ec.Width, ec.Height), physics.NewRigidBody(1, 0)),
		g:        g,
		cooldown: g.uniform(ec.MinFireCooldown, ec.MaxFireCooldown),
	}
	e.Body().Velocity = physics.Vec(0, speed*aspect)
	g.enemies[g.scene.MustSpawn(e)] = e
}

// onContact resolves bullet hits. Ramming is handled in afterStep.
func (g *Game) onContact(a, b *physics.Collider, _, _ physics.Vector2) {
	if !g.scene.Alive(a.Owner) || !g.scene.Alive(b.Owner) {
		return
	}
	ba, bb := g.bullets[a.Owner], g.bullets[b.Owner]
	switch {
	case ba != nil && bb != nil:
		return
	case ba != nil:
		g.bulletHit(ba, b.Owner)
	case bb != nil:
		g.bulletHit(bb, a.Owner)
	}
}

func (g *Game) bulletHit(bl *Bullet, target physics.EntityID) {
	if !bl.hostile {
		if _, ok := g.enemies[target]; ok {
			g.scene.Despawn(bl.ID())
			g.scene.Despawn(target)
			g.kills++
			g.score += g.cfg.Enemies.Points
		}
		return
	}
	if target == g.ship.ID() {
		g.scene.Despawn(bl.ID())
		g.hurt()
	}
}

// afterStep turns new ship/enemy contacts into damage.
func (g *Game) afterStep(sc *scene.Scene) {
	entered, _ := g.tracker.Commit()
	for _, ct := range entered {
		var other physics.EntityID
		switch g.ship.ID() {
		case ct.A.Owner:
			other = ct.B.Owner
		case ct.B.Owner:
			other = ct.A.Owner
		default:
			continue
		}
		if _, ok := g.enemies[other]; ok && sc.Alive(other) {
			g.hurt()
		}
	}
}

func (g *Game) forget(e scene.Entity) {
	delete(g.bullets, e.ID())
	delete(g.enemies, e.ID())
	if c := e.Collider(); c != nil {
		g.tracker.Forget(c)
	}
}

func (g *Game) hurt() {
	s := g.ship
	if s.invuln.Running() || g.gameOver {
		return
	}
	s.lives--
	s.invuln.Start()
	g.scene.Logger().Debug("ship hit", "lives", s.lives)
	if s.lives <= 0 {
		g.gameOver = true
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

	dt := g.runtime.Dt()
	g.ship.in = in

	g.spawnIn -= dt
	if g.spawnIn <= 0 {
		g.spawnEnemy()
		g.spawnIn = g.difficulty.Interval(g.uniform(g.cfg.Enemies.MinSpawn, g.cfg.Enemies.MaxSpawn), g.score, g.ticks)
	}

	contacts := g.scene.Update(dt)
	g.ticks++

	return core.StepResult{State: g.State(), Contacts: contacts}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	for _, e := range g.scene.Entities() {
		switch v := e.(type) {
		case *Star:
			dst.SetColored(int(v.Pos.X), int(v.Pos.Y), '.', core.ColorGray)
		case *Bullet:
			r := core.CellRect(v.Pos.X, v.Pos.Y, v.Collider().Width, v.Collider().Height)
			if v.hostile {
				dst.FillRect(r, '!', core.ColorMagenta)
			} else {
				dst.FillRect(r, '|', core.ColorBrightYellow)
			}
		case *Enemy:
			r := core.CellRect(v.Pos.X, v.Pos.Y, v.Collider().Width, v.Collider().Height)
			dst.FillRect(r, '▼', core.ColorRed)
		}
	}
	g.drawShip(dst)

	dst.DrawText(1, 0, fmt.Sprintf(" Score: %d  Lives: %d  Kills: %d ", g.score, g.ship.lives, g.kills))

	if g.paused {
		dst.DrawMessageBox("PAUSED", "Press P to resume")
	}
	if g.gameOver {
		dst.DrawMessageBox("GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", g.score))
	}
}

func (g *Game) drawShip(dst *core.Screen) {
	color := core.ColorBrightCyan
	if g.ship.invuln.Running() {
		color = core.ColorYellow
	}
	s := g.ship
	r := core.CellRect(s.Pos.X, s.Pos.Y, s.Collider().Width, s.Collider().Height)
	dst.FillRect(r, '█', color)
	dst.SetColored(r.X+r.W/2, r.Y, '▲', color)
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
	registry.Register("shooter", func() registry.Game {
		return New()
	})
}
