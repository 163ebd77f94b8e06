package mat

// Mat3 is a 3x3 matrix whose three vectors are its columns.
//
// The nine components are packed in column-major order:
// element (r, c) is the (3*c + r)-th float32 of the value.
type Mat3 struct {
	V1, V2, V3 Vec3
}

func NewMat3(c1, c2, c3 Vec3) Mat3 {
	return Mat3{c1, c2, c3}
}

func Identity() Mat3 {
	return Mat3{unitX, unitY, unitZ}
}

// Mat3FromElems builds a matrix from nine column-major components.
func Mat3FromElems(e [9]float32) Mat3 {
	return Mat3{
		Vec3{e[0], e[1], e[2]},
		Vec3{e[3], e[4], e[5]},
		Vec3{e[6], e[7], e[8]},
	}
}

// Elems returns the nine components in column-major (memory) order.
func (m Mat3) Elems() [9]float32 {
	return [9]float32{
		m.V1.X, m.V1.Y, m.V1.Z,
		m.V2.X, m.V2.Y, m.V2.Z,
		m.V3.X, m.V3.Y, m.V3.Z,
	}
}

func (m *Mat3) col(c int) *Vec3 {
	switch c {
	case 0:
		return &m.V1
	case 1:
		return &m.V2
	case 2:
		return &m.V3
	}
	panic("mat: Mat3 column out of range")
}

// Col returns the c-th column.
func (m Mat3) Col(c int) Vec3 {
	return *m.col(c)
}

func (m *Mat3) SetCol(c int, v Vec3) {
	*m.col(c) = v
}

// Row gathers the r-th component of every column.
func (m Mat3) Row(r int) Vec3 {
	return Vec3{m.V1.At(r), m.V2.At(r), m.V3.At(r)}
}

func (m Mat3) At(r, c int) float32 {
	return m.col(c).At(r)
}

func (m *Mat3) Set(r, c int, f float32) {
	m.col(c).Set(r, f)
}

// atIndex and setIndex address the flattened column-major view.
func (m *Mat3) atIndex(i int) float32 {
	return m.col(i / 3).At(i % 3)
}

func (m *Mat3) setIndex(i int, f float32) {
	m.col(i/3).Set(i%3, f)
}

// Mul returns the product m * a.
func (m Mat3) Mul(a Mat3) Mat3 {
	var out Mat3
	for r := 0; r < 3; r++ {
		row := m.Row(r)
		for c := 0; c < 3; c++ {
			out.Set(r, c, row.Dot(a.Col(c)))
		}
	}
	return out
}

// MulVec3 returns the product m * v.
func (m Mat3) MulVec3(v Vec3) Vec3 {
	var out Vec3
	for r := 0; r < 3; r++ {
		out.Set(r, v.Dot(m.Row(r)))
	}
	return out
}

// transposePairs lists the flattened indices swapped by Transpose.
var transposePairs = [3][2]int{
	{1, 3}, // (1,0) <-> (0,1)
	{2, 6}, // (2,0) <-> (0,2)
	{5, 7}, // (2,1) <-> (1,2)
}

// Transpose transposes m in place.
func (m *Mat3) Transpose() {
	for _, p := range transposePairs {
		a, b := m.atIndex(p[0]), m.atIndex(p[1])
		m.setIndex(p[0], b)
		m.setIndex(p[1], a)
	}
}

func (m Mat3) Transposed() Mat3 {
	m.Transpose()
	return m
}

// Det returns the determinant by the rule of Sarrus.
func (m Mat3) Det() float32 {
	var sum float32
	for c := 0; c < 3; c++ {
		sum += m.At(0, c) * m.At(1, (c+1)%3) * m.At(2, (c+2)%3)
	}
	for c := 0; c < 3; c++ {
		sum -= m.At(0, c) * m.At(1, (c+2)%3) * m.At(2, (c+1)%3)
	}
	return sum
}

func (m Mat3) Equal(a Mat3) bool {
	return m == a
}
