package obb

// Matrix3 is a 3x3 orthonormal rotation matrix stored as three rows. Row0
// is the axis of largest covariance when the matrix comes out of Fit; the
// builder relies on that ordering to pick its split axis.
type Matrix3 struct {
	Row0, Row1, Row2 Vector3
}

// Col returns column i (0, 1, or 2) of m.
func (m Matrix3) Col(i int) Vector3 {
	switch i {
	case 0:
		return Vector3{m.Row0.X, m.Row1.X, m.Row2.X}
	case 1:
		return Vector3{m.Row0.Y, m.Row1.Y, m.Row2.Y}
	default:
		return Vector3{m.Row0.Z, m.Row1.Z, m.Row2.Z}
	}
}

// Transpose returns the transpose of m.
func (m Matrix3) Transpose() Matrix3 {
	return Matrix3{
		Row0: m.Col(0),
		Row1: m.Col(1),
		Row2: m.Col(2),
	}
}

// MulVector3 rotates v by m, treating m's rows as the axes v is expressed
// against.
func (m Matrix3) MulVector3(v Vector3) Vector3 {
	return Vector3{m.Row0.Dot(v), m.Row1.Dot(v), m.Row2.Dot(v)}
}

// Axis returns axis i (0, 1, or 2) of the frame m describes, expressed in
// world coordinates. Row0/Row1/Row2 already are those axes: Fit builds m so
// that rotating world coordinates into the box's local frame and reading
// off its axes are the same rows, which keeps the builder's split-axis
// projection a plain dot product instead of a transpose-then-row lookup.
func (m Matrix3) Axis(i int) Vector3 {
	switch i {
	case 0:
		return m.Row0
	case 1:
		return m.Row1
	default:
		return m.Row2
	}
}
