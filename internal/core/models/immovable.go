package models

import (
	"github.com/google/uuid"

	"github.com/zeusync/tilephys/internal/core/systems/physics"
	"github.com/zeusync/tilephys/pkg/vector"
)

var (
	_ physics.Static = (*Immovable)(nil)
	_ Entity         = (*Immovable)(nil)
)

// Immovable is the base static entity. The engine never moves it, but it can
// be destroyed (a breakable wall) and pruned by its level.
type Immovable struct {
	id        EntityID
	position  vector.Vec2
	hitbox    *physics.Hitbox
	solid     bool
	destroyed bool
}

func NewImmovable(position vector.Vec2, width, height float64, solid bool) *Immovable {
	s := &Immovable{id: uuid.New(), position: position, solid: solid}
	s.hitbox = physics.NewHitbox(&s.position, vector.Zero(), width, height)
	return s
}

func (s *Immovable) ID() EntityID            { return s.id }
func (s *Immovable) Hitbox() *physics.Hitbox { return s.hitbox }
func (s *Immovable) IsSolid() bool           { return s.solid }
func (s *Immovable) Location() vector.Vec2   { return s.position }
func (s *Immovable) IsDestroyed() bool       { return s.destroyed }
func (s *Immovable) Destroy()                { s.destroyed = true }

func (s *Immovable) CollideWithStatic(physics.Static) {}

// CollideWithDynamic pushes other out of s when s is solid.
func (s *Immovable) CollideWithDynamic(other physics.Dynamic) {
	if s.solid {
		pushOut(other, s)
	}
}
