package shooter

import (
	"math/rand"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/physics"
	"github.com/vovakirdan/tui-platformer/internal/scene"
)

// aspect scales vertical speeds; terminal cells are about twice as tall as wide.
const aspect = 0.5

// Ship is the player.
type Ship struct {
	scene.Base
	g        *Game
	lives    int
	cooldown float64
	invuln   *scene.Timer
	in       core.InputFrame
}

// Update moves the ship inside the field and fires when ready.
func (s *Ship) Update(sc *scene.Scene, dt float64) {
	s.invuln.Update(dt)
	pc := s.g.cfg.Player

	body := s.Body()
	body.Velocity = physics.Vec(
		s.in.Axis(core.ActionLeft, core.ActionRight)*pc.Speed,
		s.in.Axis(core.ActionUp, core.ActionDown)*pc.Speed*aspect,
	)
	s.Integrate(dt)

	col := s.Collider()
	s.Pos.X = core.ClampF(s.Pos.X, 0, s.g.fieldW-col.Width)
	s.Pos.Y = core.ClampF(s.Pos.Y, 1, s.g.fieldH-col.Height)

	if s.cooldown > 0 {
		s.cooldown -= dt
	}
	if s.in.Has(core.ActionJump) && s.cooldown <= 0 {
		x := s.Pos.X + col.Width/2 - s.g.cfg.Bullets.Width/2
		s.g.fire(sc, physics.Vec(x, s.Pos.Y-s.g.cfg.Bullets.Height), -s.g.cfg.Bullets.PlayerSpeed, false)
		s.cooldown = pc.FireCooldown
	}
}

// Bullet is a projectile. Hostile bullets hurt the player; the others hurt
// enemies.
type Bullet struct {
	scene.Base
	hostile bool
	fieldH  float64
}

// Update moves the bullet and removes it once it leaves the field.
func (b *Bullet) Update(sc *scene.Scene, dt float64) {
	b.Integrate(dt)
	if b.Pos.Y > b.fieldH || b.Pos.Y+b.Collider().Height < 0 {
		sc.Despawn(b.ID())
	}
}

// Enemy flies down the screen and fires at random intervals.
type Enemy struct {
	scene.Base
	g        *Game
	cooldown float64
}

// Update moves the enemy, fires and removes it below the field.
func (e *Enemy) Update(sc *scene.Scene, dt float64) {
	e.Integrate(dt)
	if e.Pos.Y > e.g.fieldH {
		sc.Despawn(e.ID())
		return
	}

	e.cooldown -= dt
	if e.cooldown <= 0 {
		col := e.Collider()
		bc := e.g.cfg.Bullets
		x := e.Pos.X + col.Width/2 - bc.Width/2
		e.g.fire(sc, physics.Vec(x, e.Pos.Y+col.Height), bc.EnemySpeed, true)
		e.cooldown = e.g.uniform(e.g.cfg.Enemies.MinFireCooldown, e.g.cfg.Enemies.MaxFireCooldown)
	}
}

// Star is a background particle without a collider.
type Star struct {
	scene.Base
	speed float64
	rng   *rand.Rand
	w, h  float64
}

// Update scrolls the star and wraps it to the top at a new column.
func (s *Star) Update(_ *scene.Scene, dt float64) {
	s.Pos.Y += s.speed * dt
	if s.Pos.Y >= s.h {
		s.Pos.Y = 1
		s.Pos.X = float64(s.rng.Intn(core.Max(1, int(s.w))))
	}
}
