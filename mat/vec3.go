package mat

import (
	"math"
)

// Vec3 is a 3D vector of three packed float32 components.
type Vec3 struct {
	X, Y, Z float32
}

var (
	unitX = Vec3{1, 0, 0}
	unitY = Vec3{0, 1, 0}
	unitZ = Vec3{0, 0, 1}
)

// UnitX returns the standard basis vector (1, 0, 0).
func UnitX() Vec3 { return unitX }

// UnitY returns the standard basis vector (0, 1, 0).
func UnitY() Vec3 { return unitY }

// UnitZ returns the standard basis vector (0, 0, 1).
func UnitZ() Vec3 { return unitZ }

func NewVec3(x, y, z float32) Vec3 {
	return Vec3{x, y, z}
}

func Vec3FromArray(a [3]float32) Vec3 {
	return Vec3{a[0], a[1], a[2]}
}

// Array returns the components in memory order.
func (v Vec3) Array() [3]float32 {
	return [3]float32{v.X, v.Y, v.Z}
}

// At returns the i-th component. It panics if i is not 0, 1 or 2.
func (v Vec3) At(i int) float32 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	}
	panic("mat: Vec3 index out of range")
}

// Set sets the i-th component. It panics if i is not 0, 1 or 2.
func (v *Vec3) Set(i int, f float32) {
	switch i {
	case 0:
		v.X = f
	case 1:
		v.Y = f
	case 2:
		v.Z = f
	default:
		panic("mat: Vec3 index out of range")
	}
}

func (v Vec3) Dot(a Vec3) float32 {
	return v.X*a.X + v.Y*a.Y + v.Z*a.Z
}

func (v Vec3) Add(a Vec3) Vec3 {
	return Vec3{v.X + a.X, v.Y + a.Y, v.Z + a.Z}
}

func (v Vec3) Sub(a Vec3) Vec3 {
	return Vec3{v.X - a.X, v.Y - a.Y, v.Z - a.Z}
}

func (v Vec3) Mul(a float32) Vec3 {
	return Vec3{v.X * a, v.Y * a, v.Z * a}
}

func (v Vec3) NormSq() float32 {
	return v.Dot(v)
}

func (v Vec3) Norm() float32 {
	return float32(math.Sqrt(float64(v.NormSq())))
}

// Normalized returns v scaled to unit length.
// The zero vector yields NaN components.
func (v Vec3) Normalized() Vec3 {
	return v.Mul(1.0 / v.Norm())
}

// Normalize scales v to unit length in place.
// The zero vector yields NaN components.
func (v *Vec3) Normalize() {
	*v = v.Normalized()
}

// Angle returns the enclosed angle between v and a in radians.
//
// The cosine ratio is not clamped: if rounding pushes it outside [-1, 1],
// or either vector has zero length, the result is NaN.
func (v Vec3) Angle(a Vec3) float32 {
	return float32(math.Acos(float64(v.Dot(a) / (v.Norm() * a.Norm()))))
}

func (v Vec3) Equal(a Vec3) bool {
	return v == a
}
