package vector

import "math"

// Pure operations. None of them modify their arguments.

func Add(a, b Vec2) Vec2 { return Vec2{a.X + b.X, a.Y + b.Y} }

func Sub(a, b Vec2) Vec2 { return Vec2{a.X - b.X, a.Y - b.Y} }

func Mul(a, b Vec2) Vec2 { return Vec2{a.X * b.X, a.Y * b.Y} }

func Div(a, b Vec2) Vec2 { return Vec2{a.X / b.X, a.Y / b.Y} }

func AddScalar(v Vec2, s float64) Vec2 { return Vec2{v.X + s, v.Y + s} }

func SubScalar(v Vec2, s float64) Vec2 { return Vec2{v.X - s, v.Y - s} }

func Scale(v Vec2, s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

func DivScalar(v Vec2, s float64) Vec2 { return Vec2{v.X / s, v.Y / s} }

// Normalized returns v scaled to unit length, or v itself if its magnitude is zero.
func Normalized(v Vec2) Vec2 {
	out := v
	out.Normalize()
	return out
}

// Rotated returns v rotated by deg degrees, clockwise-positive.
func Rotated(v Vec2, deg float64) Vec2 {
	out := v
	out.RotateBy(deg)
	return out
}

// RotatedTo returns a vector with v's magnitude pointing at deg degrees.
func RotatedTo(v Vec2, deg float64) Vec2 {
	out := v
	out.RotateTo(deg)
	return out
}

func Floor(v Vec2) Vec2 { return Vec2{math.Floor(v.X), math.Floor(v.Y)} }

func Ceil(v Vec2) Vec2 { return Vec2{math.Ceil(v.X), math.Ceil(v.Y)} }

func Round(v Vec2) Vec2 { return Vec2{math.Round(v.X), math.Round(v.Y)} }

// Dot returns the dot product of a and b.
func Dot(a, b Vec2) float64 { return a.X*b.X + a.Y*b.Y }

// Cross returns the z component of the 3D cross product of a and b.
func Cross(a, b Vec2) float64 { return a.X*b.Y - a.Y*b.X }

// AngleBetween returns the signed angle in degrees that rotates a onto b,
// in (-180, 180]. Positive values are clockwise on screen.
func AngleBetween(a, b Vec2) float64 {
	return math.Atan2(Cross(a, b), Dot(a, b)) * 180 / math.Pi
}

// UnsignedAngleBetween returns the angle between a and b in degrees, in [0, 180].
func UnsignedAngleBetween(a, b Vec2) float64 {
	return math.Abs(AngleBetween(a, b))
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Vec2) float64 { return math.Hypot(b.X-a.X, b.Y-a.Y) }

// ManhattanDistance returns |dx| + |dy| between a and b.
func ManhattanDistance(a, b Vec2) float64 {
	return math.Abs(b.X-a.X) + math.Abs(b.Y-a.Y)
}
