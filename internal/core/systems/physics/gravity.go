package physics

import (
	"cmp"
	"slices"
)

// Gravity is the Basic engine plus downward acceleration and a deterministic
// per-entity resolution order. Resolving one contact can move an entity far
// enough to clear or worsen another, so contacts are ordered and re-detected
// before each dispatch:
//   - statics: deepest penetration first, so a later small correction cannot
//     push the entity through a wall;
//   - dynamics with a higher index: shallowest first, so a large correction
//     cannot hide the contact that was actually touching.
//
// Equal overlaps keep level order.
type Gravity struct {
	*Basic
	gravity float64
}

var _ Engine = (*Gravity)(nil)

func NewGravity(gravity float64, opts ...Option) *Gravity {
	return &Gravity{Basic: NewBasic(opts...), gravity: gravity}
}

func (e *Gravity) Gravity() float64 { return e.gravity }

// UpdateObject accelerates airborne entities before integrating, so velocity
// is updated ahead of position (semi-implicit Euler). Grounded entities and
// gravity controllers are integrated unchanged.
func (e *Gravity) UpdateObject(dt float64, obj Dynamic) {
	if !obj.IsOnGround() && !ownsGravity(obj) {
		obj.Velocity().Y += e.gravity * dt
	}
	e.Basic.UpdateObject(dt, obj)
}

func (e *Gravity) UpdateLevel(dt float64, level Level) {
	for _, d := range level.Dynamics() {
		e.UpdateObject(dt, d)
	}
	e.ProcessAllCollisions(level)
	e.frame++
}

func (e *Gravity) ProcessAllCollisions(level Level) {
	dynamics := level.Dynamics()
	statics := level.Statics()
	for i, d := range dynamics {
		hits := candidates(d, statics)
		slices.SortStableFunc(hits, func(a, b candidate[Static]) int {
			return cmp.Compare(b.overlap, a.overlap)
		})
		for _, h := range hits {
			if DetectCollision(d, h.other) {
				e.dispatchStatic(d, h.other)
			}
		}

		near := candidates(d, dynamics[i+1:])
		slices.SortStableFunc(near, func(a, b candidate[Dynamic]) int {
			return cmp.Compare(a.overlap, b.overlap)
		})
		for _, h := range near {
			if DetectCollision(d, h.other) {
				e.dispatchDynamic(d, h.other)
			}
		}
	}
}

type candidate[T Collidable] struct {
	other   T
	overlap float64
}

func candidates[T Collidable](d Dynamic, others []T) []candidate[T] {
	var out []candidate[T]
	for _, o := range others {
		if overlap := Overlap(d, o); overlap > 0 {
			out = append(out, candidate[T]{other: o, overlap: overlap})
		}
	}
	return out
}

func ownsGravity(obj Dynamic) bool {
	gc, ok := obj.(GravityController)
	return ok && gc.OwnsGravity()
}
