package mat

import (
	pcmat "github.com/seqsense/pcgol/mat"
	"github.com/seqsense/pcgol/pc"
)

// ToPC converts v to the point cloud vector type.
func ToPC(v Vec3) pcmat.Vec3 {
	return pcmat.Vec3{v.X, v.Y, v.Z}
}

// FromPC converts a point cloud vector.
func FromPC(v pcmat.Vec3) Vec3 {
	return Vec3{v[0], v[1], v[2]}
}

// Affine returns the 4x4 affine transform with m as linear part and t as
// translation.
func (m Mat3) Affine(t Vec3) pcmat.Mat4 {
	var out pcmat.Mat4
	for c := 0; c < 3; c++ {
		for r := 0; r < 3; r++ {
			out[4*c+r] = m.At(r, c)
		}
	}
	out[4*3+0] = t.X
	out[4*3+1] = t.Y
	out[4*3+2] = t.Z
	out[4*3+3] = 1
	return out
}

// Mat3FromAffine extracts the linear part of an affine transform.
func Mat3FromAffine(a pcmat.Mat4) Mat3 {
	var m Mat3
	for c := 0; c < 3; c++ {
		for r := 0; r < 3; r++ {
			m.Set(r, c, a[4*c+r])
		}
	}
	return m
}

// RotatedVec3RandomAccessor applies Rot to every vector of the underlying
// accessor on access.
type RotatedVec3RandomAccessor struct {
	pc.Vec3RandomAccessor
	Rot Mat3
}

func (a *RotatedVec3RandomAccessor) Vec3At(i int) pcmat.Vec3 {
	return ToPC(a.Rot.MulVec3(FromPC(a.Vec3RandomAccessor.Vec3At(i))))
}
