package runner

import (
	"math/rand"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/physics"
	"github.com/vovakirdan/tui-platformer/internal/scene"
)

// Cactus is a ground hazard scrolling toward the player.
type Cactus struct {
	scene.Base
	speed float64
}

func newCactus(x, groundY float64, w, h int) *Cactus {
	return &Cactus{Base: scene.NewBase(scene.KindHazard,
		physics.Vec(x, groundY-float64(h)),
		physics.NewCollider(float64(w), float64(h)), nil)}
}

// Update scrolls the cactus and removes it once it has left the screen.
func (c *Cactus) Update(s *scene.Scene, dt float64) {
	c.Pos.X -= c.speed * dt
	if c.Pos.X+c.Collider().Width <= 0 {
		s.Despawn(c.ID())
	}
}

// ObstacleManager spawns cacti into the scene at seeded random spacing.
type ObstacleManager struct {
	cacti      map[physics.EntityID]*Cactus
	rng        *rand.Rand
	screenW    float64
	groundY    float64
	nextSpawnX float64 // where the next cactus appears, scrolls with the cacti
	cfg        *config.RunnerConfig
	difficulty *config.DifficultyManager
}

// NewObstacleManager creates a new obstacle manager with the given RNG seed.
func NewObstacleManager(seed int64, screenW int, groundY float64, cfg *config.RunnerConfig, diff *config.DifficultyManager) *ObstacleManager {
	om := &ObstacleManager{
		cacti:      make(map[physics.EntityID]*Cactus),
		screenW:    float64(screenW),
		groundY:    groundY,
		cfg:        cfg,
		difficulty: diff,
	}
	om.Reset(seed)
	return om
}

// Reset forgets all cacti and reseeds the RNG. The first cactus spawns
// off-screen.
func (om *ObstacleManager) Reset(seed int64) {
	clear(om.cacti)
	om.rng = rand.New(rand.NewSource(seed))
	om.nextSpawnX = om.screenW + float64(om.cfg.Obstacles.MinSpacing)
}

// Forget drops a despawned cactus.
func (om *ObstacleManager) Forget(id physics.EntityID) {
	delete(om.cacti, id)
}

// Update sets the scroll speed and spawns new cacti as needed. It runs
// before the scene update so new cacti take part in this tick's step.
func (om *ObstacleManager) Update(s *scene.Scene, score, ticks int, dt float64) {
	speed := om.difficulty.Speed(om.cfg.Physics.BaseSpeed, score, ticks)
	for _, c := range om.cacti {
		c.speed = speed
	}

	om.nextSpawnX -= speed * dt
	if om.nextSpawnX <= om.screenW {
		om.spawn(s, speed, score, ticks)
	}
}

func (om *ObstacleManager) spawn(s *scene.Scene, speed float64, score, ticks int) {
	oc := om.cfg.Obstacles

	width := oc.MinWidth
	if oc.MaxWidth > oc.MinWidth {
		width = oc.MinWidth + om.rng.Intn(oc.MaxWidth-oc.MinWidth+1)
	}
	height := oc.MinHeight
	if oc.MaxHeight > oc.MinHeight {
		height = oc.MinHeight + om.rng.Intn(oc.MaxHeight-oc.MinHeight+1)
	}

	c := newCactus(om.nextSpawnX, om.groundY, width, height)
	c.speed = speed
	id, err := s.Spawn(c)
	if err != nil {
		s.Logger().Error("cactus spawn failed", "err", err)
		return
	}
	om.cacti[id] = c

	spacing := om.difficulty.Spacing(oc.MaxSpacing, score, ticks)
	if spacing < oc.MinSpacing {
		spacing = oc.MinSpacing
	}
	gap := oc.MinSpacing
	if spacing > oc.MinSpacing {
		gap = oc.MinSpacing + om.rng.Intn(spacing-oc.MinSpacing+1)
	}
	om.nextSpawnX += float64(width + gap)
}

// Count returns the number of live cacti.
func (om *ObstacleManager) Count() int {
	return len(om.cacti)
}
