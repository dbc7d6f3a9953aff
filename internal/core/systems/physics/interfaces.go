package physics

import "github.com/zeusync/tilephys/pkg/vector"

// Collidable is anything that takes part in overlap detection. The engine only
// notifies; each implementation decides how to react to a contact.
type Collidable interface {
	Hitbox() *Hitbox
	// IsSolid is advisory. Non-solid entities are still detected and notified.
	IsSolid() bool
	CollideWithStatic(other Static)
	CollideWithDynamic(other Dynamic)
}

// Static is an immovable participant. The engine never moves it.
type Static interface {
	Collidable
}

// Dynamic is a movable participant. Position and Velocity return live
// references owned by the entity.
type Dynamic interface {
	Collidable
	Position() *vector.Vec2
	Velocity() *vector.Vec2
	IsOnGround() bool
}

// GravityController is implemented by dynamics whose vertical motion is driven
// by their own controller (the player). The gravity engine leaves them alone
// when OwnsGravity reports true.
type GravityController interface {
	OwnsGravity() bool
}

// Groundable is implemented by dynamics that track whether they rest on a solid.
type Groundable interface {
	SetOnGround(bool)
}

// Level is the ordered set of entities stepped by an engine each frame.
type Level interface {
	Dynamics() []Dynamic
	Statics() []Static
}

// Engine advances a level by one frame and exposes the AABB primitives.
type Engine interface {
	UpdateObject(dt float64, obj Dynamic)
	UpdateLevel(dt float64, level Level)
	ProcessAllCollisions(level Level)
	DetectCollision(a, b Collidable) bool
	Overlap(a, b Collidable) float64
}
