package models

import (
	"github.com/zeusync/tilephys/internal/core/systems/physics"
	"github.com/zeusync/tilephys/pkg/vector"
)

const (
	PlayerMaxHealth = 3
	playerInset     = 0.1
	playerSize      = 0.8
)

var _ physics.GravityController = (*Player)(nil)

// Player is the user-controlled dynamic. Its vertical motion belongs to the
// player controller, so the gravity engine leaves it alone.
type Player struct {
	*Movable
}

// NewPlayer creates a player occupying a tile at start with a hitbox inset by
// 0.1 on every side.
func NewPlayer(start vector.Vec2, opts ...MovableOption) *Player {
	opts = append([]MovableOption{
		WithHitbox(vector.New(playerInset, playerInset), playerSize, playerSize),
	}, opts...)
	return &Player{Movable: NewMovable(start, PlayerMaxHealth, opts...)}
}

func (p *Player) OwnsGravity() bool { return true }
