package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeusync/tilephys/internal/core/systems/physics"
	"github.com/zeusync/tilephys/pkg/vector"
)

type scene struct {
	dynamics []physics.Dynamic
	statics  []physics.Static
}

func (s *scene) Dynamics() []physics.Dynamic { return s.dynamics }
func (s *scene) Statics() []physics.Static   { return s.statics }

func near(t *testing.T, want, got vector.Vec2) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, 1e-9, "x of %v", got)
	assert.InDelta(t, want.Y, got.Y, 1e-9, "y of %v", got)
}

func TestMovableLifecycle(t *testing.T) {
	m := NewMovable(vector.New(2, 3), 5, WithVelocity(vector.New(1, -1)))
	assert.NotEqual(t, EntityID{}, m.ID())
	assert.Equal(t, 5, m.Health())

	m.Damage(2)
	assert.Equal(t, 3, m.Health())
	m.Heal(10)
	assert.Equal(t, 5, m.MaxHealth())
	assert.Equal(t, 5, m.Health())

	m.Damage(7)
	assert.True(t, m.IsDestroyed())
	assert.Zero(t, m.Health())
	m.Heal(1)
	assert.Zero(t, m.Health(), "destroyed entities do not heal")

	m.Revive()
	assert.False(t, m.IsDestroyed())
	assert.Equal(t, 5, m.Health())

	m.Position().Set(10, 10)
	m.SetOnGround(true)
	m.Face(FacingLeft)
	m.Destroy()
	m.Reset()
	assert.Equal(t, vector.New(2, 3), *m.Position())
	assert.Equal(t, vector.Zero(), *m.Velocity())
	assert.False(t, m.IsOnGround())
	assert.False(t, m.IsDestroyed())
	assert.Equal(t, FacingRight, m.Facing())
	assert.Equal(t, vector.New(2, 3), m.Start())
}

func TestUpdateFacing(t *testing.T) {
	m := NewMovable(vector.Zero(), 1)
	m.Velocity().SetX(-2)
	m.UpdateFacing()
	assert.Equal(t, FacingLeft, m.Facing())

	m.Velocity().SetX(0)
	m.UpdateFacing()
	assert.Equal(t, FacingLeft, m.Facing())
	assert.Equal(t, "left", m.Facing().String())
}

func TestHitboxTracksPosition(t *testing.T) {
	p := NewPlayer(vector.New(1, 1))
	near(t, vector.New(1.1, 1.1), p.Hitbox().Location())

	p.Position().Add(vector.New(2, 0))
	near(t, vector.New(3.1, 1.1), p.Hitbox().Location())
	assert.Equal(t, 0.8, p.Hitbox().Width())
}

func TestWallPushesPlayerOutHorizontally(t *testing.T) {
	p := NewPlayer(vector.New(0.5, 0))
	wall := NewWall(1, 0, 1, 1)

	wall.CollideWithDynamic(p)

	near(t, vector.New(0.1, 0), *p.Position())
	assert.False(t, p.IsOnGround())
}

func TestWallZeroesOnlyResolvedVelocity(t *testing.T) {
	p := NewPlayer(vector.New(4.5, 1.2), WithVelocity(vector.New(1.5, -2.5)))
	wall := NewWall(5, 2, 1, 1)

	engine := physics.NewGravity(25)
	engine.ProcessAllCollisions(&scene{dynamics: []physics.Dynamic{p}, statics: []physics.Static{wall}})

	near(t, vector.New(4.5, 1.1), *p.Position())
	assert.Equal(t, vector.New(1.5, 0), *p.Velocity())
	assert.True(t, p.IsOnGround(), "landing on top marks the player grounded")
}

func TestCornerApproachResolvesToEitherAxis(t *testing.T) {
	p := NewPlayer(vector.New(0.6, 0.6), WithVelocity(vector.New(1, 1)))
	wall := NewWall(1, 1, 1, 1)

	wall.CollideWithDynamic(p)

	pos := *p.Position()
	horizontal := vector.Distance(pos, vector.New(0.1, 0.6)) < 1e-9
	vertical := vector.Distance(pos, vector.New(0.6, 0.1)) < 1e-9
	require.True(t, horizontal || vertical, "unexpected resolution %v", pos)
	if horizontal {
		assert.Equal(t, vector.New(0, 1), *p.Velocity())
	} else {
		assert.Equal(t, vector.New(1, 0), *p.Velocity())
	}
}

func TestCrateLandsAndPlayerIgnoresGravity(t *testing.T) {
	crate := NewCrate(vector.New(0, 0))
	player := NewPlayer(vector.New(5, 0))
	floor := NewWall(-10, 1.5, 20, 1)
	s := &scene{
		dynamics: []physics.Dynamic{crate, player},
		statics:  []physics.Static{floor},
	}

	engine := physics.NewGravity(4)
	engine.UpdateLevel(0.25, s) // crate: v = 1, y = 0.25, still above the floor

	assert.False(t, crate.IsOnGround())
	engine.UpdateLevel(0.25, s) // v = 2, y = 0.75: sinks 0.25 and is pushed back up

	near(t, vector.New(0, 0.5), *crate.Position())
	assert.Zero(t, crate.Velocity().Y)
	assert.True(t, crate.IsOnGround())
	assert.Equal(t, vector.New(5, 0), *player.Position())
}

func TestCrateIsSolidForOtherDynamics(t *testing.T) {
	crate := NewCrate(vector.New(1, 0))
	player := NewPlayer(vector.New(0.5, 0))

	engine := physics.NewBasic()
	engine.ProcessAllCollisions(&scene{dynamics: []physics.Dynamic{crate, player}})

	near(t, vector.New(0.1, 0), *player.Position())
	assert.Equal(t, vector.New(1, 0), *crate.Position())
}

func TestHazardHurtsWithoutBlocking(t *testing.T) {
	player := NewPlayer(vector.New(0, 0), WithVelocity(vector.New(1, 0)))
	spikes := NewHazard(0.5, 0, 1, 1, 1)
	s := &scene{dynamics: []physics.Dynamic{player}, statics: []physics.Static{spikes}}

	engine := physics.NewBasic()
	engine.ProcessAllCollisions(s)

	assert.False(t, spikes.IsSolid())
	assert.Equal(t, PlayerMaxHealth-1, player.Health())
	assert.Equal(t, vector.Zero(), *player.Position())
	assert.Equal(t, vector.New(1, 0), *player.Velocity())

	for i := 0; i < PlayerMaxHealth; i++ {
		engine.ProcessAllCollisions(s)
	}
	assert.True(t, player.IsDestroyed())
	assert.Zero(t, player.Health())
}

func TestImmovableLifecycle(t *testing.T) {
	w := NewWall(1, 2, 3, 4)
	assert.True(t, w.IsSolid())
	assert.Equal(t, vector.New(1, 2), w.Location())
	assert.False(t, w.IsDestroyed())
	w.Destroy()
	assert.True(t, w.IsDestroyed())
	assert.Equal(t, 1, NewHazard(0, 0, 1, 1, 1).DamageAmount())
}
