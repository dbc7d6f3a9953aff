package models

import (
	"github.com/google/uuid"

	"github.com/zeusync/tilephys/internal/core/systems/physics"
)

type EntityID = uuid.UUID

// Entity is the lifecycle surface shared by every simulated object. Destroyed
// entities stay in their level until the level prunes them.
type Entity interface {
	ID() EntityID
	IsDestroyed() bool
	Destroy()
}

// Damageable is implemented by entities with health.
type Damageable interface {
	Health() int
	Damage(amount int)
}

// Facing is the horizontal orientation of a movable entity.
type Facing int8

const (
	FacingRight Facing = 1
	FacingLeft  Facing = -1
)

func (f Facing) String() string {
	if f == FacingLeft {
		return "left"
	}
	return "right"
}

// pushOut resolves mover out of solid and marks it grounded when it landed on top.
func pushOut(mover physics.Dynamic, solid physics.Collidable) physics.Push {
	push := physics.Resolve(mover, solid)
	if push == physics.PushUp {
		if g, ok := mover.(physics.Groundable); ok {
			g.SetOnGround(true)
		}
	}
	return push
}
