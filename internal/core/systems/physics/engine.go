package physics

import (
	"errors"
	"fmt"

	"github.com/zeusync/tilephys/internal/core/events/bus"
	"github.com/zeusync/tilephys/internal/core/observability/log"
	"github.com/zeusync/tilephys/pkg/vector"
)

// Engine kinds accepted by New.
const (
	KindBasic   = "basic"
	KindGravity = "gravity"
)

// EventContact is published once per dispatched pair when an event bus is attached.
const EventContact = "physics.contact"

var ErrUnknownEngine = errors.New("unknown physics engine")

// ContactKind tells which pair of capability methods a contact dispatched.
type ContactKind uint8

const (
	ContactDynamic ContactKind = iota
	ContactStatic
)

func (k ContactKind) String() string {
	if k == ContactStatic {
		return "static"
	}
	return "dynamic"
}

// Contact is the payload of EventContact. A is always the dynamic side.
type Contact struct {
	Kind    ContactKind
	A       Dynamic
	B       Collidable
	Overlap float64
}

type Option func(*options)

type options struct {
	logger log.Log
	events bus.EventBus
}

// WithLogger logs every dispatched contact at debug level.
func WithLogger(l log.Log) Option {
	return func(o *options) { o.logger = l }
}

// WithEventBus publishes a Contact event for every dispatched pair.
func WithEventBus(b bus.EventBus) Option {
	return func(o *options) { o.events = b }
}

// New returns the engine strategy named by kind. gravity is ignored by the
// basic engine.
func New(kind string, gravity float64, opts ...Option) (Engine, error) {
	switch kind {
	case KindBasic:
		return NewBasic(opts...), nil
	case KindGravity:
		return NewGravity(gravity, opts...), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownEngine, kind)
	}
}

// Basic integrates velocities with explicit Euler steps and notifies every
// overlapping pair. It implements no collision response of its own.
type Basic struct {
	opts  options
	frame uint64
}

var _ Engine = (*Basic)(nil)

func NewBasic(opts ...Option) *Basic {
	o := options{logger: log.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	return &Basic{opts: o}
}

// UpdateObject moves obj by velocity * dt.
func (e *Basic) UpdateObject(dt float64, obj Dynamic) {
	obj.Position().Add(vector.Scale(*obj.Velocity(), dt))
}

func (e *Basic) UpdateLevel(dt float64, level Level) {
	for _, d := range level.Dynamics() {
		e.UpdateObject(dt, d)
	}
	e.ProcessAllCollisions(level)
	e.frame++
}

// ProcessAllCollisions dispatches every overlapping dynamic pair, then every
// overlapping dynamic/static pair, in level order.
func (e *Basic) ProcessAllCollisions(level Level) {
	dynamics := level.Dynamics()
	for i := 0; i < len(dynamics); i++ {
		for j := i + 1; j < len(dynamics); j++ {
			if DetectCollision(dynamics[i], dynamics[j]) {
				e.dispatchDynamic(dynamics[i], dynamics[j])
			}
		}
	}
	for _, d := range dynamics {
		for _, s := range level.Statics() {
			if DetectCollision(d, s) {
				e.dispatchStatic(d, s)
			}
		}
	}
}

func (e *Basic) DetectCollision(a, b Collidable) bool { return DetectCollision(a, b) }

func (e *Basic) Overlap(a, b Collidable) float64 { return Overlap(a, b) }

// Frame returns the number of completed UpdateLevel calls.
func (e *Basic) Frame() uint64 { return e.frame }

func (e *Basic) dispatchDynamic(a, b Dynamic) {
	overlap := Overlap(a, b)
	a.CollideWithDynamic(b)
	b.CollideWithDynamic(a)
	e.announce(Contact{Kind: ContactDynamic, A: a, B: b, Overlap: overlap})
}

func (e *Basic) dispatchStatic(d Dynamic, s Static) {
	overlap := Overlap(d, s)
	s.CollideWithDynamic(d)
	d.CollideWithStatic(s)
	e.announce(Contact{Kind: ContactStatic, A: d, B: s, Overlap: overlap})
}

func (e *Basic) announce(c Contact) {
	e.opts.logger.Debug("contact",
		log.Uint64("frame", e.frame),
		log.Stringer("kind", c.Kind),
		log.Float64("overlap", c.Overlap),
		log.Vec("position", *c.A.Position()),
	)
	if e.opts.events == nil {
		return
	}
	if err := e.opts.events.Publish(bus.NewEvent(EventContact, "physics", e.frame, c)); err != nil {
		e.opts.logger.Warn("contact handler failed", log.Uint64("frame", e.frame), log.Error(err))
	}
}
