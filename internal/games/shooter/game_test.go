package shooter

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/physics"
	"github.com/vovakirdan/tui-platformer/internal/scene"
)

var runtimeCfg = core.RuntimeConfig{
	ScreenW:  80,
	ScreenH:  24,
	TickRate: 60,
	Seed:     7,
}

func newGame() *Game {
	g := New()
	g.Reset(runtimeCfg)
	return g
}

// placeEnemy adds a stationary enemy that never fires.
func placeEnemy(g *Game, pos physics.Vector2) *Enemy {
	ec := g.cfg.Enemies
	e := &Enemy{
		Base: scene.NewBase(scene.KindHazard, pos,
			physics.NewCollider(ec.Width, ec.Height), physics.NewRigidBody(1, 0)),
		g:        g,
		cooldown: 1000,
	}
	g.enemies[g.scene.MustSpawn(e)] = e
	return e
}

func idle(g *Game, ticks int) {
	for i := 0; i < ticks; i++ {
		g.Step(core.NewInputFrame())
	}
}

func TestGameDeterminism(t *testing.T) {
	inputs := make([]core.InputFrame, 600)
	for i := range inputs {
		inputs[i] = core.NewInputFrame()
		if (i/60)%2 == 0 {
			inputs[i].SetHeld(core.ActionLeft)
		} else {
			inputs[i].SetHeld(core.ActionRight)
		}
		if i%5 == 0 {
			inputs[i].Set(core.ActionJump)
		}
	}

	run := func() *Game {
		g := newGame()
		for _, in := range inputs {
			g.Step(in)
		}
		return g
	}

	g1, g2 := run(), run()
	if g1.State() != g2.State() {
		t.Errorf("Determinism failed: states differ. Run1=%+v, Run2=%+v", g1.State(), g2.State())
	}
	if g1.Checksum() != g2.Checksum() {
		t.Errorf("Determinism failed: checksums differ. Run1=%x, Run2=%x", g1.Checksum(), g2.Checksum())
	}
}

func TestBulletKillsEnemy(t *testing.T) {
	g := newGame()
	ship := g.ship
	e := placeEnemy(g, physics.Vec(ship.Pos.X, ship.Pos.Y-6))

	in := core.NewInputFrame()
	in.Set(core.ActionJump)
	g.Step(in)
	if len(g.bullets) != 1 {
		t.Fatalf("bullets = %d, expected 1", len(g.bullets))
	}

	idle(g, 30)

	if g.scene.Alive(e.ID()) {
		t.Error("enemy should be destroyed")
	}
	if g.kills != 1 || g.State().Score != g.cfg.Enemies.Points {
		t.Errorf("kills=%d score=%d", g.kills, g.State().Score)
	}
	if len(g.bullets) != 0 || len(g.enemies) != 0 {
		t.Errorf("bookkeeping not cleared: bullets=%d enemies=%d", len(g.bullets), len(g.enemies))
	}
}

func TestFireCooldown(t *testing.T) {
	g := newGame()
	for i := 0; i < 6; i++ {
		in := core.NewInputFrame()
		in.Set(core.ActionJump)
		g.Step(in)
	}
	// 0.2s cooldown at 60 ticks/s allows one shot in six ticks
	if len(g.bullets) != 1 {
		t.Errorf("bullets = %d, expected 1", len(g.bullets))
	}
}

func TestEnemyBulletHurts(t *testing.T) {
	g := newGame()
	ship := g.ship
	g.fire(g.scene, physics.Vec(ship.Pos.X+1, ship.Pos.Y-4), g.cfg.Bullets.EnemySpeed, true)

	idle(g, 30)

	if ship.lives != g.cfg.Player.Lives-1 {
		t.Errorf("lives = %d, expected %d", ship.lives, g.cfg.Player.Lives-1)
	}
	if !ship.invuln.Running() {
		t.Error("ship should be invulnerable after a hit")
	}
	if len(g.bullets) != 0 {
		t.Error("hostile bullet should be consumed")
	}
}

func TestRammingDamagesOnEntry(t *testing.T) {
	g := newGame()
	ship := g.ship
	e := placeEnemy(g, ship.Pos)

	g.Step(core.NewInputFrame())
	if ship.lives != 2 {
		t.Fatalf("lives after first contact = %d, expected 2", ship.lives)
	}

	ship.invuln.Reset()
	idle(g, 5)
	if ship.lives != 2 {
		t.Errorf("staying in contact should not hurt again, lives = %d", ship.lives)
	}

	e.Pos = physics.Vec(0, 5)
	g.Step(core.NewInputFrame())
	e.Pos = ship.Pos
	g.Step(core.NewInputFrame())
	if ship.lives != 1 {
		t.Errorf("new contact should hurt, lives = %d", ship.lives)
	}
}

func TestBulletsLeaveField(t *testing.T) {
	g := newGame()
	in := core.NewInputFrame()
	in.Set(core.ActionJump)
	g.Step(in)

	idle(g, 60)

	if len(g.bullets) != 0 {
		t.Errorf("bullets = %d, expected 0", len(g.bullets))
	}
	if n := g.scene.World().ColliderCount(); n != 1 {
		t.Errorf("colliders = %d, expected only the ship", n)
	}
}

func TestEnemiesSpawn(t *testing.T) {
	g := newGame()
	seen := 0
	for i := 0; i < 300 && seen == 0; i++ {
		g.Step(core.NewInputFrame())
		seen = len(g.enemies)
	}
	if seen == 0 {
		t.Error("enemies should spawn within five seconds")
	}
}

func TestShipClamped(t *testing.T) {
	g := newGame()
	for i := 0; i < 300; i++ {
		in := core.NewInputFrame()
		in.SetHeld(core.ActionLeft)
		in.SetHeld(core.ActionUp)
		g.Step(in)
		if g.State().GameOver {
			break
		}
	}
	if g.ship.Pos.X != 0 {
		t.Errorf("ship X = %v, expected 0", g.ship.Pos.X)
	}
	if g.ship.Pos.Y != 1 {
		t.Errorf("ship Y = %v, expected 1", g.ship.Pos.Y)
	}
}

func TestGameRender(t *testing.T) {
	g := newGame()
	g.Step(core.NewInputFrame())

	scr := core.NewScreen(80, 24)
	g.Render(scr)
	if !strings.Contains(scr.Row(0), "Score: 0") {
		t.Errorf("HUD missing: %q", scr.Row(0))
	}
	if !strings.Contains(scr.String(), "▲") {
		t.Error("ship should be drawn")
	}
}

func TestZeroSizedScreen(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{TickRate: 60, Seed: 3})
	if len(g.scene.Entities()) == 0 {
		t.Fatal("expected stars and ship to spawn")
	}
	// Stars wrap every tick on an empty field
	idle(g, 30)
}
