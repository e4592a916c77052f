package platformer

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/physics"
)

// Visual characters for rendering
const (
	PlatformChar = '▓'
	PlayerChar   = '█'
	EnemyChar    = 'M'
	CoinChar     = 'o'
	StarChar     = '*'
	JumpChar     = 'J'
	SpeedChar    = 'S'
	LifeChar     = '+'
)

// camera maps level coordinates to screen cells. The view follows the
// player horizontally and keeps the level bottom on the last screen row.
type camera struct {
	x, y float64
}

func (g *Game) camera(dst *core.Screen) camera {
	w := float64(dst.Width())
	maxX := math.Max(0, g.cfg.Level.Width-w)
	cx := g.player.Pos.X + g.player.Collider().Width/2 - w/2
	return camera{
		x: core.ClampF(cx, 0, maxX),
		y: g.cfg.Level.Height - float64(dst.Height()),
	}
}

func (c camera) rect(pos physics.Vector2, col *physics.Collider) core.Rect {
	return core.CellRect(pos.X-c.x, pos.Y-c.y, col.Width, col.Height)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	cam := g.camera(dst)

	for _, e := range g.scene.Entities() {
		switch v := e.(type) {
		case *Platform:
			dst.FillRect(cam.rect(v.Pos, v.Collider()), PlatformChar, core.ColorGreen)
		case *Pickup:
			r := cam.rect(v.Pos, v.Collider())
			switch v.What {
			case PickupCoin:
				dst.SetColored(r.X, r.Y, CoinChar, core.ColorYellow)
			case PickupStar:
				dst.SetColored(r.X, r.Y, StarChar, core.ColorBrightYellow)
			case PickupJump:
				dst.SetColored(r.X, r.Y, JumpChar, core.ColorMagenta)
			case PickupSpeed:
				dst.SetColored(r.X, r.Y, SpeedChar, core.ColorCyan)
			case PickupLife:
				dst.SetColored(r.X, r.Y, LifeChar, core.ColorBrightRed)
			}
		case *Enemy:
			dst.FillRect(cam.rect(v.Pos, v.Collider()), EnemyChar, core.ColorRed)
		}
	}

	// Player last so it is drawn over pickups
	color := core.ColorBrightBlue
	if g.player.Invulnerable() {
		color = core.ColorYellow
	}
	pr := cam.rect(g.player.Pos, g.player.Collider())
	// Standing players overlap the ground by groundSkin; do not paint that row
	pr = core.NewRect(pr.X, pr.Y, pr.W, core.Max(1, int(math.Round(g.player.Collider().Height))))
	dst.FillRect(pr, PlayerChar, color)

	dst.DrawText(1, 0, g.hud())

	switch {
	case g.paused:
		dst.DrawMessageBox("PAUSED", "Press P to resume")
	case g.won:
		dst.DrawMessageBox("LEVEL CLEAR", scoreLine(g.score))
	case g.gameOver:
		dst.DrawMessageBox("GAME OVER", scoreLine(g.score))
	}
}

func scoreLine(score int) string {
	return fmt.Sprintf("Score: %d  |  Press R to restart", score)
}
