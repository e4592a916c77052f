package platformer

import (
	"math"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/physics"
	"github.com/vovakirdan/tui-platformer/internal/scene"
)

// groundSkin keeps a standing player overlapping its platform by a hair so
// the landing contact is reported every step.
const groundSkin = 1e-3

// Player is the controllable character.
type Player struct {
	scene.Base

	speed     float64
	jumpForce float64
	lives     int
	onGround  bool
	coyote    float64
	lastY     float64 // Pos.Y before the latest integration
	invuln    *scene.Timer

	in  core.InputFrame
	cfg *config.PlatformerConfig
}

func newPlayer(cfg *config.PlatformerConfig) *Player {
	pc := cfg.Player
	p := &Player{
		Base: scene.NewBase(scene.KindActor,
			physics.Vec(cfg.Level.Spawn.X, cfg.Level.Spawn.Y),
			physics.NewCollider(pc.Width, pc.Height),
			physics.NewRigidBody(1, pc.GravityScale)),
		speed:     pc.Speed,
		jumpForce: pc.JumpForce,
		lives:     pc.Lives,
		invuln:    scene.NewTimer(pc.Invulnerability),
		cfg:       cfg,
	}
	p.lastY = p.Pos.Y
	return p
}

// Update applies input and integrates the player. Gravity was already added
// to the body by the previous step.
func (p *Player) Update(_ *scene.Scene, dt float64) {
	p.invuln.Update(dt)

	body := p.Body()
	if axis := p.in.Axis(core.ActionLeft, core.ActionRight); axis != 0 {
		body.Velocity.X = axis * p.speed
	} else {
		body.Velocity.X *= math.Pow(p.cfg.Player.Damping, dt*60)
		if math.Abs(body.Velocity.X) < 0.05 {
			body.Velocity.X = 0
		}
	}

	if p.onGround {
		p.coyote = p.cfg.Physics.CoyoteTime
	} else if p.coyote > 0 {
		p.coyote -= dt
	}
	if (p.in.Pressed(core.ActionJump) || p.in.Pressed(core.ActionUp)) && p.coyote > 0 {
		body.Velocity.Y = -p.jumpForce
		p.coyote = 0
	}
	p.onGround = false

	if body.Velocity.Y > p.cfg.Physics.MaxFallSpeed {
		body.Velocity.Y = p.cfg.Physics.MaxFallSpeed
	}
	p.lastY = p.Pos.Y
	p.Integrate(dt)

	maxX := p.cfg.Level.Width - p.Collider().Width
	if p.Pos.X < 0 || p.Pos.X > maxX {
		p.Pos.X = core.ClampF(p.Pos.X, 0, maxX)
		body.Velocity.X = 0
	}
}

// Invulnerable reports whether damage is currently ignored.
func (p *Player) Invulnerable() bool { return p.invuln.Running() }

// OnGround reports whether the player stood on a solid during the last step.
func (p *Player) OnGround() bool { return p.onGround }

// Lives returns the remaining lives.
func (p *Player) Lives() int { return p.lives }

// respawn puts the player back at the level start at rest.
func (p *Player) respawn() {
	p.Pos = physics.Vec(p.cfg.Level.Spawn.X, p.cfg.Level.Spawn.Y)
	p.lastY = p.Pos.Y
	p.Body().Velocity = physics.Vector2{}
	p.onGround = false
	p.coyote = 0
}

// Platform is a static solid.
type Platform struct {
	scene.Base
}

func newPlatform(b config.Box) *Platform {
	return &Platform{Base: scene.NewBase(scene.KindSolid,
		physics.Vec(b.X, b.Y), physics.NewCollider(b.W, b.H), nil)}
}

// PickupKind distinguishes collectibles.
type PickupKind uint8

const (
	PickupCoin PickupKind = iota
	PickupStar
	PickupJump
	PickupSpeed
	PickupLife
)

func (k PickupKind) String() string {
	switch k {
	case PickupCoin:
		return "coin"
	case PickupStar:
		return "star"
	case PickupJump:
		return "jump"
	case PickupSpeed:
		return "speed"
	case PickupLife:
		return "life"
	default:
		return "unknown"
	}
}

// Pickup is a trigger that is consumed on contact with the player.
type Pickup struct {
	scene.Base
	What   PickupKind
	Points int
}

func newPickup(x, y float64, what PickupKind, points int) *Pickup {
	return &Pickup{
		Base:   scene.NewBase(scene.KindCollectible, physics.Vec(x, y), physics.NewTrigger(1, 1), nil),
		What:   what,
		Points: points,
	}
}

// required reports whether the pickup counts toward clearing the level.
func (p *Pickup) required() bool {
	return p.What == PickupCoin || p.What == PickupStar
}

func powerUpKind(s string) (PickupKind, bool) {
	switch s {
	case "jump":
		return PickupJump, true
	case "speed":
		return PickupSpeed, true
	case "life":
		return PickupLife, true
	default:
		return 0, false
	}
}

// Enemy patrols horizontally around its start and hurts the player.
type Enemy struct {
	scene.Base
	startX float64
	reach  float64
	dir    float64
	speed  float64
}

func newEnemy(spot config.EnemySpot, ec config.PlatformerEnemies) *Enemy {
	return &Enemy{
		Base: scene.NewBase(scene.KindHazard, physics.Vec(spot.X, spot.Y),
			physics.NewCollider(ec.Width, ec.Height), nil),
		startX: spot.X,
		reach:  spot.Range,
		dir:    1,
		speed:  ec.Speed,
	}
}

// Update moves the enemy and turns it around at the ends of its patrol.
func (e *Enemy) Update(_ *scene.Scene, dt float64) {
	e.Pos.X += e.dir * e.speed * dt
	switch {
	case e.Pos.X > e.startX+e.reach:
		e.Pos.X = e.startX + e.reach
		e.dir = -1
	case e.Pos.X < e.startX-e.reach:
		e.Pos.X = e.startX - e.reach
		e.dir = 1
	}
}
