package physics

// RigidBody holds per-entity velocity and gravity response.
//
// Mass is informational only; there is no impulse solver. Velocity is written
// by the world's gravity phase and by game logic. Position integration is the
// owning entity's job.
type RigidBody struct {
	Velocity     Vector2
	Mass         float64
	GravityScale float64
	Owner        EntityID
}

// NewRigidBody creates a body at rest. Mass is not validated.
func NewRigidBody(mass, gravityScale float64) *RigidBody {
	return &RigidBody{
		Mass:         mass,
		GravityScale: gravityScale,
	}
}
