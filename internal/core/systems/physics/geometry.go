package physics

import "math"

// DetectCollision reports whether the hitboxes of a and b overlap. Edges that
// merely touch do not count, and a box with zero area never collides.
func DetectCollision(a, b Collidable) bool {
	return intersects(a.Hitbox(), b.Hitbox())
}

// Overlap returns the minimum penetration depth between a and b, or 0 when
// they do not collide. Only the magnitude is reported; the axis and direction
// are left to Resolve.
func Overlap(a, b Collidable) float64 {
	ha, hb := a.Hitbox(), b.Hitbox()
	if !intersects(ha, hb) {
		return 0
	}
	x, y := separation(ha, hb)
	return math.Min(x, y)
}

// Distance returns the distance between the centers of two hitboxes.
func Distance(a, b Collidable) float64 {
	ca, cb := a.Hitbox().Center(), b.Hitbox().Center()
	return math.Hypot(cb.X-ca.X, cb.Y-ca.Y)
}

func intersects(a, b *Hitbox) bool {
	if a.width <= 0 || a.height <= 0 || b.width <= 0 || b.height <= 0 {
		return false
	}
	al, at, ar, ab := a.Bounds()
	bl, bt, br, bb := b.Bounds()
	if ar <= bl || br <= al {
		return false
	}
	if ab <= bt || bb <= at {
		return false
	}
	return true
}

// separation returns the per-axis penetration of two intersecting boxes.
func separation(a, b *Hitbox) (x, y float64) {
	al, at, ar, ab := a.Bounds()
	bl, bt, br, bb := b.Bounds()
	x = math.Min(ar-bl, br-al)
	y = math.Min(ab-bt, bb-at)
	return x, y
}
