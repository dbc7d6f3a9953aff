package physics

import "github.com/zeusync/tilephys/pkg/vector"

// Hitbox is an axis-aligned rectangle anchored to a base position it does not
// own. The base is usually the owning entity's live position, so the box
// follows the entity without any synchronization.
type Hitbox struct {
	base   *vector.Vec2
	offset vector.Vec2
	width  float64
	height float64
}

// NewHitbox anchors a width x height box at base + offset. Dimensions must not
// be negative.
func NewHitbox(base *vector.Vec2, offset vector.Vec2, width, height float64) *Hitbox {
	return &Hitbox{base: base, offset: offset, width: width, height: height}
}

// Location returns the top-left corner, recomputed from the base on every call.
func (h *Hitbox) Location() vector.Vec2 {
	if h.base == nil {
		return h.offset
	}
	return vector.Add(*h.base, h.offset)
}

func (h *Hitbox) Offset() vector.Vec2 { return h.offset }

func (h *Hitbox) SetOffset(x, y float64) {
	h.offset.Set(x, y)
}

// Dimensions returns width and height.
func (h *Hitbox) Dimensions() (float64, float64) { return h.width, h.height }

func (h *Hitbox) SetDimensions(width, height float64) {
	h.width, h.height = width, height
}

func (h *Hitbox) Width() float64 { return h.width }

func (h *Hitbox) Height() float64 { return h.height }

func (h *Hitbox) Area() float64 { return h.width * h.height }

// Bounds returns the left, top, right and bottom edges.
func (h *Hitbox) Bounds() (left, top, right, bottom float64) {
	loc := h.Location()
	return loc.X, loc.Y, loc.X + h.width, loc.Y + h.height
}

// Center returns the midpoint of the box.
func (h *Hitbox) Center() vector.Vec2 {
	loc := h.Location()
	return vector.New(loc.X+h.width/2, loc.Y+h.height/2)
}
