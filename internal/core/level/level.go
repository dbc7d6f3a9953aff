package level

import (
	"math"
	"slices"

	"github.com/zeusync/tilephys/internal/core/events/bus"
	"github.com/zeusync/tilephys/internal/core/models"
	"github.com/zeusync/tilephys/internal/core/observability/log"
	"github.com/zeusync/tilephys/internal/core/systems/physics"
)

// EventDestroyed is published for every entity pruned after a step.
const EventDestroyed = "entity.destroyed"

// DefaultMaxStep bounds a single frame's dt.
const DefaultMaxStep = 1.0 / 20

var _ physics.Level = (*Level)(nil)

// Level owns the ordered entity collections of one stage and drives its
// physics engine frame by frame. It is not safe for concurrent use.
type Level struct {
	name     string
	engine   physics.Engine
	dynamics []physics.Dynamic
	statics  []physics.Static
	maxStep  float64
	frame    uint64
	logger   log.Log
	events   bus.EventBus
}

type Option func(*Level)

func WithName(name string) Option {
	return func(l *Level) { l.name = name }
}

// WithMaxStep sets the upper bound applied to dt in Step.
func WithMaxStep(step float64) Option {
	return func(l *Level) { l.maxStep = step }
}

func WithLogger(logger log.Log) Option {
	return func(l *Level) { l.logger = logger }
}

// WithEventBus publishes EventDestroyed for pruned entities.
func WithEventBus(events bus.EventBus) Option {
	return func(l *Level) { l.events = events }
}

func New(engine physics.Engine, opts ...Option) *Level {
	l := &Level{
		name:    "level",
		engine:  engine,
		maxStep: DefaultMaxStep,
		logger:  log.NewNop(),
	}
	for _, opt := range opts {
		opt(l)
	}
	l.logger = l.logger.With(log.String("level", l.name))
	return l
}

func (l *Level) Name() string                { return l.name }
func (l *Level) Engine() physics.Engine      { return l.engine }
func (l *Level) Frame() uint64               { return l.frame }
func (l *Level) Dynamics() []physics.Dynamic { return l.dynamics }
func (l *Level) Statics() []physics.Static   { return l.statics }
func (l *Level) Len() int                    { return len(l.dynamics) + len(l.statics) }

// AddDynamic appends movable entities. Order is kept and decides tie-breaks.
func (l *Level) AddDynamic(ds ...physics.Dynamic) {
	l.dynamics = append(l.dynamics, ds...)
}

func (l *Level) AddStatic(ss ...physics.Static) {
	l.statics = append(l.statics, ss...)
}

// Step advances the level by dt seconds, clamped to [0, max step]: grounded
// flags are cleared, the engine integrates and dispatches collisions, then
// destroyed entities are pruned. It returns the number of pruned entities.
func (l *Level) Step(dt float64) int {
	dt = l.clamp(dt)
	for _, d := range l.dynamics {
		if g, ok := d.(physics.Groundable); ok {
			g.SetOnGround(false)
		}
	}

	l.engine.UpdateLevel(dt, l)

	pruned := 0
	l.dynamics = slices.DeleteFunc(l.dynamics, func(d physics.Dynamic) bool {
		return l.prune(d, &pruned)
	})
	l.statics = slices.DeleteFunc(l.statics, func(s physics.Static) bool {
		return l.prune(s, &pruned)
	})
	l.frame++
	return pruned
}

func (l *Level) clamp(dt float64) float64 {
	if math.IsNaN(dt) || dt < 0 {
		return 0
	}
	return math.Min(dt, l.maxStep)
}

func (l *Level) prune(c physics.Collidable, count *int) bool {
	e, ok := c.(models.Entity)
	if !ok || !e.IsDestroyed() {
		return false
	}
	*count++
	l.logger.Debug("entity destroyed", log.Stringer("id", e.ID()), log.Uint64("frame", l.frame))
	if l.events != nil {
		if err := l.events.Publish(bus.NewEvent(EventDestroyed, l.name, l.frame, e)); err != nil {
			l.logger.Warn("destroyed handler failed", log.Error(err))
		}
	}
	return true
}
