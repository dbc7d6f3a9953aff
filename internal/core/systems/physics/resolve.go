package physics

import "math"

const maxSettleSteps = 64

// Push is the direction a resolution moved the mover.
type Push uint8

const (
	PushNone Push = iota
	PushLeft
	PushRight
	// PushUp means the mover now rests on top of the solid.
	PushUp
	PushDown
)

func (p Push) String() string {
	switch p {
	case PushLeft:
		return "left"
	case PushRight:
		return "right"
	case PushUp:
		return "up"
	case PushDown:
		return "down"
	default:
		return "none"
	}
}

// Horizontal reports whether p moved the mover along the X axis.
func (p Push) Horizontal() bool { return p == PushLeft || p == PushRight }

// Resolve pushes mover out of solid along the axis of least penetration,
// leaving the boxes edge-adjacent on that axis, and zeroes the mover's
// velocity on that axis only. The other axis is untouched.
//
// Ties prefer X over Y, and left/up over right/down, so two coincident boxes
// end with the mover exactly one width to the left of the solid. Nothing
// happens when the pair does not collide.
func Resolve(mover Dynamic, solid Collidable) Push {
	if !DetectCollision(mover, solid) {
		return PushNone
	}
	ml, mt, mr, mb := mover.Hitbox().Bounds()
	sl, st, sr, sb := solid.Hitbox().Bounds()

	left, right := mr-sl, sr-ml
	up, down := mb-st, sb-mt

	pos, vel := mover.Position(), mover.Velocity()
	box := mover.Hitbox()
	if math.Min(left, right) <= math.Min(up, down) {
		vel.X = 0
		if left <= right {
			pos.X -= left
			settle(&pos.X, math.Inf(-1), func() bool { _, _, r, _ := box.Bounds(); return r <= sl })
			return PushLeft
		}
		pos.X += right
		settle(&pos.X, math.Inf(1), func() bool { l, _, _, _ := box.Bounds(); return l >= sr })
		return PushRight
	}

	vel.Y = 0
	if up <= down {
		pos.Y -= up
		settle(&pos.Y, math.Inf(-1), func() bool { _, _, _, b := box.Bounds(); return b <= st })
		return PushUp
	}
	pos.Y += down
	settle(&pos.Y, math.Inf(1), func() bool { _, t, _, _ := box.Bounds(); return t >= sb })
	return PushDown
}

// settle nudges coord toward dir one ulp at a time until clear holds, absorbing
// the rounding left by base + offset + size.
func settle(coord *float64, dir float64, clear func() bool) {
	for i := 0; i < maxSettleSteps && !clear(); i++ {
		*coord = math.Nextafter(*coord, dir)
	}
}
