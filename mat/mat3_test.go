package mat

import (
	"testing"

	gmat "gonum.org/v1/gonum/mat"
)

// sample is non-symmetric so that row/column mix-ups show up.
//
//	| 1  4  7 |
//	| 2  5  8 |
//	| 3  6 10 |
var sample = NewMat3(
	NewVec3(1, 2, 3),
	NewVec3(4, 5, 6),
	NewVec3(7, 8, 10),
)

func dense(m Mat3) *gmat.Dense {
	d := gmat.NewDense(3, 3, nil)
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			d.Set(r, c, float64(m.At(r, c)))
		}
	}
	return d
}

func nearMat3(a, b Mat3, tol float32) bool {
	ea, eb := a.Elems(), b.Elems()
	for i := range ea {
		d := ea[i] - eb[i]
		if d < -tol || tol < d {
			return false
		}
	}
	return true
}

func TestMat3Layout(t *testing.T) {
	m := Mat3FromElems([9]float32{0, 1, 2, 3, 4, 5, 6, 7, 8})
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			if expected := float32(3*c + r); m.At(r, c) != expected {
				t.Errorf("m(%d, %d) expected to be %0.1f, got %0.1f", r, c, expected, m.At(r, c))
			}
		}
	}
	if m.Elems() != [9]float32{0, 1, 2, 3, 4, 5, 6, 7, 8} {
		t.Errorf("Elems must return column-major order, got: %v", m.Elems())
	}
	if expected := NewVec3(3, 4, 5); !m.Col(1).Equal(expected) {
		t.Errorf("Expected column 1: %v, got: %v", expected, m.Col(1))
	}
	if expected := NewVec3(1, 4, 7); !m.Row(1).Equal(expected) {
		t.Errorf("Expected row 1: %v, got: %v", expected, m.Row(1))
	}

	m.Set(2, 0, -1)
	if m.V1.Z != -1 {
		t.Errorf("Set(2, 0) must write V1.Z, got: %v", m.V1)
	}
	m.SetCol(2, UnitY())
	if !m.V3.Equal(UnitY()) {
		t.Errorf("SetCol(2) must write V3, got: %v", m.V3)
	}
}

func TestMat3Mul(t *testing.T) {
	b := NewMat3(
		NewVec3(0, 1, 0),
		NewVec3(-1, 0, 2),
		NewVec3(0.5, 0, 1),
	)
	expected := NewMat3(
		NewVec3(4, 5, 6),
		NewVec3(13, 14, 17),
		NewVec3(7.5, 9, 11.5),
	)
	if r := sample.Mul(b); !r.Equal(expected) {
		t.Errorf("Expected:\n%sgot:\n%s", expected, r)
	}

	var ref gmat.Dense
	ref.Mul(dense(sample), dense(b))
	r := sample.Mul(b)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			diff := float64(r.At(i, j)) - ref.At(i, j)
			if diff < -1e-4 || 1e-4 < diff {
				t.Errorf("m(%d, %d) expected to be %0.3f, got %0.3f", i, j, ref.At(i, j), r.At(i, j))
			}
		}
	}

	if r := Identity().Mul(sample); !r.Equal(sample) {
		t.Errorf("I*A must be A, got:\n%s", r)
	}
	if r := sample.Mul(Identity()); !r.Equal(sample) {
		t.Errorf("A*I must be A, got:\n%s", r)
	}
}

func TestMat3MulAssociative(t *testing.T) {
	a := sample
	b := NewMat3(NewVec3(0.1, -0.2, 0.3), NewVec3(1, 1, 0), NewVec3(0, -1, 2))
	c := NewMat3(NewVec3(2, 0, 0), NewVec3(0.5, 3, -1), NewVec3(1, 1, 1))

	l := a.Mul(b).Mul(c)
	r := a.Mul(b.Mul(c))
	if !nearMat3(l, r, 1e-4) {
		t.Errorf("(AB)C expected to equal A(BC), got:\n%s\n%s", l, r)
	}
}

func TestMat3MulVec3(t *testing.T) {
	v := NewVec3(1, -1, 2)
	expected := NewVec3(11, 13, 17)
	if r := sample.MulVec3(v); !r.Equal(expected) {
		t.Errorf("Expected: %v, got: %v", expected, r)
	}

	var ref gmat.VecDense
	ref.MulVec(dense(sample), gmat.NewVecDense(3, []float64{1, -1, 2}))
	r := sample.MulVec3(v)
	for i := 0; i < 3; i++ {
		if float64(r.At(i)) != ref.AtVec(i) {
			t.Errorf("v(%d) expected to be %0.3f, got %0.3f", i, ref.AtVec(i), r.At(i))
		}
	}

	if r := Identity().MulVec3(v); !r.Equal(v) {
		t.Errorf("I*v must be v, got: %v", r)
	}
}

func TestMat3Transpose(t *testing.T) {
	m := sample
	m.Transpose()
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			if m.At(r, c) != sample.At(c, r) {
				t.Errorf("m(%d, %d) expected to be %0.1f, got %0.1f", r, c, sample.At(c, r), m.At(r, c))
			}
		}
	}
	if !m.Equal(sample.Transposed()) {
		t.Errorf("Transpose and Transposed must agree, got:\n%s\n%s", m, sample.Transposed())
	}
	m.Transpose()
	if !m.Equal(sample) {
		t.Errorf("Transposing twice must restore the matrix, got:\n%s", m)
	}
}

func TestMat3Det(t *testing.T) {
	testCases := map[string]struct {
		m        Mat3
		expected float32
	}{
		"Identity": {Identity(), 1},
		"Sample":   {sample, -3},
		"Scale":    {NewMat3(UnitX().Mul(2), UnitY().Mul(3), UnitZ().Mul(-0.5)), -3},
		"SameColumns": {
			NewMat3(NewVec3(1, 2, 3), NewVec3(1, 2, 3), NewVec3(0, 4, 1)), 0,
		},
		"SwappedBasis": {NewMat3(UnitY(), UnitX(), UnitZ()), -1},
	}
	for name, tt := range testCases {
		tt := tt
		t.Run(name, func(t *testing.T) {
			d := tt.m.Det()
			if !near(d, tt.expected) {
				t.Errorf("Expected det: %f, got: %f", tt.expected, d)
			}
			ref := gmat.Det(dense(tt.m))
			if diff := float64(d) - ref; diff < -1e-4 || 1e-4 < diff {
				t.Errorf("Expected det to match reference %f, got: %f", ref, d)
			}
			if dt := tt.m.Transposed().Det(); !near(dt, d) {
				t.Errorf("det(A^T) expected to be %f, got: %f", d, dt)
			}
		})
	}
}
