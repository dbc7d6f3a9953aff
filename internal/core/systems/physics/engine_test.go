package physics

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeusync/tilephys/internal/core/events/bus"
	"github.com/zeusync/tilephys/pkg/vector"
)

func TestNewSelectsStrategy(t *testing.T) {
	e, err := New(KindBasic, 10)
	require.NoError(t, err)
	assert.IsType(t, &Basic{}, e)

	e, err = New(KindGravity, 10)
	require.NoError(t, err)
	require.IsType(t, &Gravity{}, e)
	assert.Equal(t, 10.0, e.(*Gravity).Gravity())

	_, err = New("verlet", 10)
	assert.ErrorIs(t, err, ErrUnknownEngine)
}

func TestBasicUpdateObjectIsEuler(t *testing.T) {
	e := NewBasic()
	b := newBody("b", 1, 2, 1, 1)
	b.vel = vector.New(2, -4)

	e.UpdateObject(0.5, b)
	assert.Equal(t, vector.New(2, 0), b.pos)
	assert.Equal(t, vector.New(2, -4), b.vel)

	e.UpdateObject(0, b)
	assert.Equal(t, vector.New(2, 0), b.pos)
}

func TestBasicDispatchesBothDirections(t *testing.T) {
	e := NewBasic()
	a := newBody("a", 0, 0, 1, 1)
	b := newBody("b", 0.5, 0, 1, 1)
	far := newBody("far", 10, 10, 1, 1)
	wall := newBlock("wall", 0.5, 0.5, 1, 1)
	wall.solid = false

	w := &world{dynamics: []Dynamic{a, b, far}, statics: []Static{wall}}
	e.ProcessAllCollisions(w)

	assert.Equal(t, []Dynamic{b}, a.dynHits)
	assert.Equal(t, []Dynamic{a}, b.dynHits)
	assert.Empty(t, far.dynHits)

	// non-solid statics are still detected and notified
	assert.Equal(t, []Dynamic{a, b}, wall.hits)
	assert.Equal(t, []Static{wall}, a.staticHits)
	assert.Equal(t, []Static{wall}, b.staticHits)
	assert.Empty(t, far.staticHits)
}

func TestBasicStaticDispatchOrder(t *testing.T) {
	var trace []string
	e := NewBasic()
	d := newBody("dynamic", 0, 0, 1, 1)
	d.trace = &trace
	s := newBlock("static", 0.5, 0, 1, 1)
	s.solid = false
	s.trace = &trace
	e.ProcessAllCollisions(&world{dynamics: []Dynamic{d}, statics: []Static{s}})

	assert.Equal(t, []string{"static", "dynamic"}, trace)
	assert.Len(t, d.staticHits, 1)
}

func TestBasicUpdateLevelIntegratesThenResolves(t *testing.T) {
	e := NewBasic()
	d := newBody("d", 0, 0, 1, 1)
	d.vel = vector.New(0, 1)
	floor := newBlock("floor", 0, 1, 4, 1)

	e.UpdateLevel(0.5, &world{dynamics: []Dynamic{d}, statics: []Static{floor}})

	assert.InDelta(t, 0.0, d.pos.Y, 1e-12)
	assert.Zero(t, d.vel.Y)
	assert.Equal(t, uint64(1), e.Frame())
}

func TestContactEventsArePublished(t *testing.T) {
	events := bus.New()
	var got []Contact
	_, err := events.Subscribe(EventContact, func(ev bus.Event) error {
		got = append(got, ev.Data.(Contact))
		return errors.New("ignored by the engine")
	})
	require.NoError(t, err)

	e := NewGravity(0, WithEventBus(events))
	d := newBody("d", 0, 0.5, 1, 1)
	floor := newBlock("floor", 0, 1, 1, 1)

	require.NotPanics(t, func() {
		e.UpdateLevel(0, &world{dynamics: []Dynamic{d}, statics: []Static{floor}})
	})

	require.Len(t, got, 1)
	assert.Equal(t, ContactStatic, got[0].Kind)
	assert.Same(t, d, got[0].A)
	assert.Same(t, floor, got[0].B)
	assert.InDelta(t, 0.5, got[0].Overlap, 1e-12)
	assert.Equal(t, "static", got[0].Kind.String())
}
