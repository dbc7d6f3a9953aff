package models

import (
	"github.com/zeusync/tilephys/internal/core/systems/physics"
	"github.com/zeusync/tilephys/pkg/vector"
)

// Crate is a solid, falling box that other dynamics cannot walk through.
type Crate struct {
	*Movable
}

func NewCrate(start vector.Vec2, opts ...MovableOption) *Crate {
	opts = append([]MovableOption{WithSolid(true)}, opts...)
	return &Crate{Movable: NewMovable(start, 1, opts...)}
}

// Wall is a solid static block.
type Wall struct {
	*Immovable
}

func NewWall(x, y, width, height float64) *Wall {
	return &Wall{Immovable: NewImmovable(vector.New(x, y), width, height, true)}
}

// Hazard is a non-solid static that hurts anything with health on every frame
// of contact. Dynamics pass through it.
type Hazard struct {
	*Immovable
	damage int
}

func NewHazard(x, y, width, height float64, damage int) *Hazard {
	return &Hazard{Immovable: NewImmovable(vector.New(x, y), width, height, false), damage: damage}
}

func (h *Hazard) DamageAmount() int { return h.damage }

func (h *Hazard) CollideWithDynamic(other physics.Dynamic) {
	if d, ok := other.(Damageable); ok {
		d.Damage(h.damage)
	}
}
