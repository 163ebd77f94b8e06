package mat

import (
	"encoding/binary"
	"errors"
	"math"
)

// Sizes of the packed representations in bytes.
const (
	Vec3Size = 3 * 4
	Mat3Size = 3 * Vec3Size
)

var ErrShortBuffer = errors.New("mat: short buffer")

// AppendBytes appends the packed bit patterns of the components to b.
func (v Vec3) AppendBytes(b []byte, order binary.ByteOrder) []byte {
	var buf [Vec3Size]byte
	for i, f := range v.Array() {
		order.PutUint32(buf[4*i:], math.Float32bits(f))
	}
	return append(b, buf[:]...)
}

// AppendBytes appends the packed column-major bit patterns of m to b.
func (m Mat3) AppendBytes(b []byte, order binary.ByteOrder) []byte {
	b = m.V1.AppendBytes(b, order)
	b = m.V2.AppendBytes(b, order)
	return m.V3.AppendBytes(b, order)
}

// ReadVec3 decodes a packed vector from the head of b.
func ReadVec3(b []byte, order binary.ByteOrder) (Vec3, error) {
	if len(b) < Vec3Size {
		return Vec3{}, ErrShortBuffer
	}
	var a [3]float32
	for i := range a {
		a[i] = math.Float32frombits(order.Uint32(b[4*i:]))
	}
	return Vec3FromArray(a), nil
}

// ReadMat3 decodes a packed column-major matrix from the head of b.
func ReadMat3(b []byte, order binary.ByteOrder) (Mat3, error) {
	if len(b) < Mat3Size {
		return Mat3{}, ErrShortBuffer
	}
	var m Mat3
	for c := 0; c < 3; c++ {
		v, err := ReadVec3(b[c*Vec3Size:], order)
		if err != nil {
			return Mat3{}, err
		}
		m.SetCol(c, v)
	}
	return m, nil
}
