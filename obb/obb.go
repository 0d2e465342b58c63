package obb

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// OBB is an oriented bounding box: a center, an orthonormal rotation frame,
// and half-extents along that frame's axes.
type OBB struct {
	Center      Vector3
	Rotation    Matrix3
	HalfExtents Vector3
}

// Fit computes the covariance-aligned OBB enclosing points, inflated by
// radius along every axis. Rotation.Row0 is guaranteed to be the axis of
// largest variance in points, which the tree builder relies on to choose
// its split axis without a second pass over the data.
//
// Fit panics if points is empty; an empty point cloud is a programmer
// error the way it is in the source this is grounded on (see spec.md §7).
func Fit(points []Vector3, radius float32) OBB {
	if len(points) == 0 {
		panic("obb: Fit called with no points")
	}

	mean := Vector3{}
	for _, p := range points {
		mean = mean.Add(p)
	}
	mean = mean.MulScalar(1 / float32(len(points)))

	cov := mat.NewSymDense(3, nil)
	for _, p := range points {
		d := p.Sub(mean)
		dx, dy, dz := float64(d.X), float64(d.Y), float64(d.Z)
		cov.SetSym(0, 0, cov.At(0, 0)+dx*dx)
		cov.SetSym(0, 1, cov.At(0, 1)+dx*dy)
		cov.SetSym(0, 2, cov.At(0, 2)+dx*dz)
		cov.SetSym(1, 1, cov.At(1, 1)+dy*dy)
		cov.SetSym(1, 2, cov.At(1, 2)+dy*dz)
		cov.SetSym(2, 2, cov.At(2, 2)+dz*dz)
	}

	var eig mat.EigenSym
	rotation := identity()
	if eig.Factorize(cov, true) {
		var vecs mat.Dense
		eig.VectorsTo(&vecs)
		vals := eig.Values(nil)
		rotation = axesFromEigen(&vecs, vals)
	}
	// If the factorization fails (degenerate, e.g. all points coincident),
	// fall back to the world frame; the degeneracy guard in the builder
	// still produces a valid (if imbalanced) split.

	lo := Vector3{math.MaxFloat32, math.MaxFloat32, math.MaxFloat32}
	hi := Vector3{-math.MaxFloat32, -math.MaxFloat32, -math.MaxFloat32}
	for _, p := range points {
		// rotation's rows are the fitted axes, so MulVector3 projects the
		// mean-relative point straight into the box's local frame.
		local := rotation.MulVector3(p.Sub(mean))
		lo.SetMin(local)
		hi.SetMax(local)
	}

	localCenter := lo.Add(hi).MulScalar(0.5)
	halfExtents := hi.Sub(lo).MulScalar(0.5).Add(Vec3(radius, radius, radius))

	// localCenter is expressed in the box's local frame; Transpose turns
	// rotation's rows back into world-frame basis vectors so MulVector3
	// can carry the offset back out to world space, the same local-to-world
	// step Corners() uses to place its own offsets.
	center := mean.Add(rotation.Transpose().MulVector3(localCenter))

	return OBB{
		Center:      center,
		Rotation:    rotation,
		HalfExtents: halfExtents,
	}
}

// axesFromEigen builds a right-handed orthonormal frame from gonum's
// EigenSym output, with Row0 holding the eigenvector of the largest
// eigenvalue. gonum orders eigenvalues ascending; the source's covariance
// fit expects descending, so the columns are read back to front.
func axesFromEigen(vecs *mat.Dense, vals []float64) Matrix3 {
	order := [3]int{2, 1, 0} // descending by eigenvalue
	var rows [3]Vector3
	for slot, col := range order {
		// gonum's eigenvectors are unit length up to floating-point
		// rounding; Normalized re-tightens that before the handedness
		// check below, which assumes an orthonormal frame.
		rows[slot] = Vector3{
			float32(vecs.At(0, col)),
			float32(vecs.At(1, col)),
			float32(vecs.At(2, col)),
		}.Normalized()
	}
	m := Matrix3{Row0: rows[0], Row1: rows[1], Row2: rows[2]}
	// Guard against a left-handed frame: gonum makes no handedness
	// guarantee, and a reflected frame would still be orthonormal but
	// would flip corner winding in Corners().
	if m.Row0.Cross(m.Row1).Dot(m.Row2) < 0 {
		m.Row2 = m.Row2.MulScalar(-1)
	}
	return m
}

func identity() Matrix3 {
	return Matrix3{
		Row0: Vector3{1, 0, 0},
		Row1: Vector3{0, 1, 0},
		Row2: Vector3{0, 0, 1},
	}
}

// Corners returns the eight world-space corners of o.
func (o OBB) Corners() [8]Vector3 {
	var signs = [8][3]float32{
		{-1, -1, -1}, {-1, -1, 1}, {-1, 1, -1}, {-1, 1, 1},
		{1, -1, -1}, {1, -1, 1}, {1, 1, -1}, {1, 1, 1},
	}

	// Rotation's rows are the box's local axes; transposing turns them
	// into a local-to-world basis so each signed local offset can be
	// carried out to world space with a single MulVector3.
	toWorld := o.Rotation.Transpose()

	var corners [8]Vector3
	for i, s := range signs {
		localOffset := Vector3{
			s[0] * o.HalfExtents.X,
			s[1] * o.HalfExtents.Y,
			s[2] * o.HalfExtents.Z,
		}
		corners[i] = o.Center.Add(toWorld.MulVector3(localOffset))
	}
	return corners
}
