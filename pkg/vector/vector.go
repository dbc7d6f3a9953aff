package vector

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/cespare/xxhash/v2"
)

// Epsilon is the tolerance used by Equal and the quantization step used by Hash.
const Epsilon = 1e-9

// Vec2 is a mutable 2D vector. Pointer methods modify the receiver in place and
// return it for chaining; the package level functions of the same name are pure
// and return a new value.
//
// The Y axis points down, so positive rotation angles turn clockwise on screen.
type Vec2 struct {
	X, Y float64
}

// New returns a vector with the given components.
func New(x, y float64) Vec2 { return Vec2{X: x, Y: y} }

// Zero returns the zero vector.
func Zero() Vec2 { return Vec2{} }

func (v *Vec2) Set(x, y float64) *Vec2 {
	v.X, v.Y = x, y
	return v
}

func (v *Vec2) SetX(x float64) *Vec2 {
	v.X = x
	return v
}

func (v *Vec2) SetY(y float64) *Vec2 {
	v.Y = y
	return v
}

// Add adds o component-wise.
func (v *Vec2) Add(o Vec2) *Vec2 {
	v.X += o.X
	v.Y += o.Y
	return v
}

// Sub subtracts o component-wise.
func (v *Vec2) Sub(o Vec2) *Vec2 {
	v.X -= o.X
	v.Y -= o.Y
	return v
}

// Mul multiplies by o component-wise.
func (v *Vec2) Mul(o Vec2) *Vec2 {
	v.X *= o.X
	v.Y *= o.Y
	return v
}

// Div divides by o component-wise. Zero components yield IEEE infinities or NaN.
func (v *Vec2) Div(o Vec2) *Vec2 {
	v.X /= o.X
	v.Y /= o.Y
	return v
}

func (v *Vec2) AddScalar(s float64) *Vec2 {
	v.X += s
	v.Y += s
	return v
}

func (v *Vec2) SubScalar(s float64) *Vec2 {
	v.X -= s
	v.Y -= s
	return v
}

// Scale multiplies both components by s.
func (v *Vec2) Scale(s float64) *Vec2 {
	v.X *= s
	v.Y *= s
	return v
}

func (v *Vec2) DivScalar(s float64) *Vec2 {
	v.X /= s
	v.Y /= s
	return v
}

// Normalize scales v to unit length. A zero vector is left untouched.
func (v *Vec2) Normalize() *Vec2 {
	m := v.Magnitude()
	if m == 0 {
		return v
	}
	return v.DivScalar(m)
}

// RotateBy rotates v by deg degrees, clockwise-positive.
func (v *Vec2) RotateBy(deg float64) *Vec2 {
	sin, cos := math.Sincos(deg * math.Pi / 180)
	v.X, v.Y = v.X*cos-v.Y*sin, v.X*sin+v.Y*cos
	return v
}

// RotateTo points v at the absolute angle deg while keeping its magnitude.
func (v *Vec2) RotateTo(deg float64) *Vec2 {
	m := v.Magnitude()
	sin, cos := math.Sincos(deg * math.Pi / 180)
	v.X, v.Y = m*cos, m*sin
	return v
}

func (v *Vec2) Floor() *Vec2 {
	v.X, v.Y = math.Floor(v.X), math.Floor(v.Y)
	return v
}

func (v *Vec2) Ceil() *Vec2 {
	v.X, v.Y = math.Ceil(v.X), math.Ceil(v.Y)
	return v
}

func (v *Vec2) Round() *Vec2 {
	v.X, v.Y = math.Round(v.X), math.Round(v.Y)
	return v
}

// Magnitude returns the Euclidean length of v.
func (v Vec2) Magnitude() float64 { return math.Hypot(v.X, v.Y) }

// Angle returns the direction of v in degrees, in [0, 360).
func (v Vec2) Angle() float64 {
	deg := math.Atan2(v.Y, v.X) * 180 / math.Pi
	if deg < 0 {
		deg += 360
	}
	if deg >= 360 {
		deg -= 360
	}
	return deg
}

// Equal reports whether both components differ by less than Epsilon.
func (v Vec2) Equal(o Vec2) bool {
	return math.Abs(v.X-o.X) < Epsilon && math.Abs(v.Y-o.Y) < Epsilon
}

// IsZero reports whether v equals the zero vector within Epsilon.
func (v Vec2) IsZero() bool { return v.Equal(Vec2{}) }

// Hash returns a hash of v quantized to Epsilon, so vectors that snap to the
// same grid point hash identically. Negative zero hashes like positive zero.
func (v Vec2) Hash() uint64 {
	var buf [16]byte
	binary.LittleEndian.PutUint64(buf[:8], math.Float64bits(quantize(v.X)))
	binary.LittleEndian.PutUint64(buf[8:], math.Float64bits(quantize(v.Y)))
	return xxhash.Sum64(buf[:])
}

func (v Vec2) String() string {
	return fmt.Sprintf("(%g, %g)", v.X, v.Y)
}

func quantize(f float64) float64 {
	q := math.Round(f / Epsilon)
	if q == 0 {
		return 0
	}
	return q
}
