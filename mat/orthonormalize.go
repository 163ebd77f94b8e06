package mat

// Orthonormalize transforms the columns of m into an orthonormal basis in
// place by the classical Gram-Schmidt process.
//
// The columns must be linearly independent. Otherwise an intermediate vector
// has zero length and the affected columns become NaN; checking this is the
// caller's responsibility.
func (m *Mat3) Orthonormalize() {
	m.V1.Normalize()

	m.V2 = m.V2.Add(m.V1.Mul(-m.V1.Dot(m.V2)))
	m.V2.Normalize()

	p2 := m.V2.Mul(-m.V2.Dot(m.V3))
	p1 := m.V1.Mul(-m.V1.Dot(m.V3))
	m.V3 = m.V3.Add(p1).Add(p2)
	m.V3.Normalize()
}

// Orthonormalized returns an orthonormalized copy of m.
func (m Mat3) Orthonormalized() Mat3 {
	m.Orthonormalize()
	return m
}
