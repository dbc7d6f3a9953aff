package models

import (
	"github.com/google/uuid"

	"github.com/zeusync/tilephys/internal/core/systems/physics"
	"github.com/zeusync/tilephys/pkg/vector"
)

var (
	_ physics.Dynamic    = (*Movable)(nil)
	_ physics.Groundable = (*Movable)(nil)
	_ Entity             = (*Movable)(nil)
	_ Damageable         = (*Movable)(nil)
)

// Movable is the base dynamic entity. Its hitbox is anchored to its own
// position, so moving the entity moves the box.
type Movable struct {
	id        EntityID
	start     vector.Vec2
	position  vector.Vec2
	velocity  vector.Vec2
	facing    Facing
	health    int
	maxHealth int
	grounded  bool
	destroyed bool
	solid     bool
	hitbox    *physics.Hitbox
}

type MovableOption func(*Movable)

// WithHitbox replaces the default 1x1 hitbox.
func WithHitbox(offset vector.Vec2, width, height float64) MovableOption {
	return func(m *Movable) {
		m.hitbox.SetOffset(offset.X, offset.Y)
		m.hitbox.SetDimensions(width, height)
	}
}

// WithSolid makes the entity push other dynamics out of itself.
func WithSolid(solid bool) MovableOption {
	return func(m *Movable) { m.solid = solid }
}

func WithVelocity(v vector.Vec2) MovableOption {
	return func(m *Movable) { m.velocity = v }
}

func NewMovable(start vector.Vec2, maxHealth int, opts ...MovableOption) *Movable {
	m := &Movable{
		id:        uuid.New(),
		start:     start,
		position:  start,
		facing:    FacingRight,
		health:    maxHealth,
		maxHealth: maxHealth,
	}
	m.hitbox = physics.NewHitbox(&m.position, vector.Zero(), 1, 1)
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *Movable) ID() EntityID              { return m.id }
func (m *Movable) Hitbox() *physics.Hitbox   { return m.hitbox }
func (m *Movable) IsSolid() bool             { return m.solid }
func (m *Movable) SetSolid(solid bool)       { m.solid = solid }
func (m *Movable) Position() *vector.Vec2    { return &m.position }
func (m *Movable) Velocity() *vector.Vec2    { return &m.velocity }
func (m *Movable) Start() vector.Vec2        { return m.start }
func (m *Movable) IsOnGround() bool          { return m.grounded }
func (m *Movable) SetOnGround(grounded bool) { m.grounded = grounded }
func (m *Movable) Facing() Facing            { return m.facing }
func (m *Movable) Face(f Facing)             { m.facing = f }
func (m *Movable) Health() int               { return m.health }
func (m *Movable) MaxHealth() int            { return m.maxHealth }
func (m *Movable) IsDestroyed() bool         { return m.destroyed }

// UpdateFacing turns the entity toward its horizontal velocity. A zero
// horizontal velocity keeps the current facing.
func (m *Movable) UpdateFacing() {
	switch {
	case m.velocity.X > 0:
		m.facing = FacingRight
	case m.velocity.X < 0:
		m.facing = FacingLeft
	}
}

// Damage lowers health and destroys the entity once it reaches zero.
func (m *Movable) Damage(amount int) {
	if m.destroyed {
		return
	}
	m.health -= amount
	if m.health <= 0 {
		m.health = 0
		m.Destroy()
	}
}

// Heal raises health up to the maximum. Destroyed entities must be revived first.
func (m *Movable) Heal(amount int) {
	if m.destroyed {
		return
	}
	m.health = min(m.health+amount, m.maxHealth)
}

func (m *Movable) Destroy() { m.destroyed = true }

// Revive clears the destroyed flag and restores full health in place.
func (m *Movable) Revive() {
	m.destroyed = false
	m.health = m.maxHealth
}

// Reset returns the entity to its start location at rest with full health.
func (m *Movable) Reset() {
	m.position = m.start
	m.velocity = vector.Zero()
	m.facing = FacingRight
	m.grounded = false
	m.Revive()
}

func (m *Movable) CollideWithStatic(physics.Static) {}

// CollideWithDynamic pushes other out of m when m is solid.
func (m *Movable) CollideWithDynamic(other physics.Dynamic) {
	if m.solid {
		pushOut(other, m)
	}
}
