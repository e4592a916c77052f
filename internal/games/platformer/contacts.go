package platformer

import (
	"github.com/vovakirdan/tui-platformer/internal/physics"
	"github.com/vovakirdan/tui-platformer/internal/scene"
)

// onContact is the game's only collision callback. The physics world reports
// overlaps; every consequence of touching something is decided here.
func (g *Game) onContact(a, b *physics.Collider, _, _ physics.Vector2) {
	var other *physics.Collider
	switch g.player.ID() {
	case a.Owner:
		other = b
	case b.Owner:
		other = a
	default:
		return // enemy over a coin and the like
	}
	if !g.scene.Alive(other.Owner) {
		return
	}
	e, ok := g.scene.Entity(other.Owner)
	if !ok {
		return
	}

	switch e.Kind() {
	case scene.KindSolid:
		g.resolveSolid(e)
	case scene.KindCollectible:
		g.collect(other.Owner)
	case scene.KindHazard:
		g.hurt()
	}
}

// resolveSolid lands the player on top of a solid or pushes it out sideways
// or downward. Live positions are used because earlier contacts in the same
// step may already have moved the player.
func (g *Game) resolveSolid(solid scene.Entity) {
	p := g.player
	pc, sc := p.Collider(), solid.Collider()
	if !physics.Overlaps(pc, p.Pos, sc, solid.Position()) {
		return
	}

	body := p.Body()
	top := solid.Position().Y
	depth := p.Pos.Y + pc.Height - top
	// A fall that started above the top lands at any depth
	cameFromAbove := p.lastY+pc.Height <= top+groundSkin
	if body.Velocity.Y >= 0 && (cameFromAbove || depth <= g.cfg.Physics.LandTolerance) {
		p.Pos.Y = top - pc.Height + groundSkin
		body.Velocity.Y = 0
		p.onGround = true
		return
	}

	mtv, ok := physics.MinimumTranslation(pc, p.Pos, sc, solid.Position())
	if !ok {
		return
	}
	p.Pos = p.Pos.Add(mtv)
	switch {
	case mtv.Y > 0 && body.Velocity.Y < 0: // head bump
		body.Velocity.Y = 0
	case mtv.Y < 0:
		body.Velocity.Y = 0
		p.onGround = true
	case mtv.X < 0 && body.Velocity.X > 0, mtv.X > 0 && body.Velocity.X < 0:
		body.Velocity.X = 0
	}
}

func (g *Game) collect(id physics.EntityID) {
	pk, ok := g.pickups[id]
	if !ok {
		return
	}
	g.scene.Despawn(id)
	delete(g.pickups, id)
	g.score += pk.Points

	p := g.player
	switch pk.What {
	case PickupJump:
		p.jumpForce = g.cfg.Player.BoostedJump
	case PickupSpeed:
		p.speed = g.cfg.Player.BoostedSpeed
	case PickupLife:
		p.lives++
	}
	g.scene.Logger().Debug("pickup", "what", pk.What, "points", pk.Points, "score", g.score)

	if pk.required() {
		g.remaining--
		if g.remaining == 0 {
			g.won = true
			g.gameOver = true
		}
	}
}

// hurt costs a life unless the player is invulnerable.
func (g *Game) hurt() bool {
	p := g.player
	if p.Invulnerable() || g.gameOver {
		return false
	}
	p.lives--
	p.invuln.Start()
	g.scene.Logger().Debug("player hurt", "lives", p.lives)
	if p.lives <= 0 {
		g.gameOver = true
	}
	return true
}
