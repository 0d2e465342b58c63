package obb

// axisEpsilon discards near-parallel edge-cross-product axes, the same
// tolerance the pack's other SAT implementations use to avoid dividing
// spurious near-zero axes into the test.
const axisEpsilon = 1e-6

// Overlap is a conservative pairwise intersection test between two OBBs,
// implemented as a full separating-axis test over the 15 candidate axes (3
// face normals from a, 3 from b, and the 9 pairwise cross products of their
// edges).
func Overlap(a, b OBB) bool {
	t := b.Center.Sub(a.Center)

	for i := 0; i < 3; i++ {
		if !overlapOnAxis(a, b, a.Rotation.Axis(i), t) {
			return false
		}
	}
	for i := 0; i < 3; i++ {
		if !overlapOnAxis(a, b, b.Rotation.Axis(i), t) {
			return false
		}
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			axis := a.Rotation.Axis(i).Cross(b.Rotation.Axis(j))
			if axis.Length() > axisEpsilon {
				if !overlapOnAxis(a, b, axis, t) {
					return false
				}
			}
		}
	}
	return true
}

// overlapOnAxis reports whether a and b's projections onto axis overlap,
// given t, the vector from a's center to b's center. axis need not be
// normalized: both projections and the center distance scale by the same
// factor, so the comparison is unaffected.
func overlapOnAxis(a, b OBB, axis, t Vector3) bool {
	aProj := abs32(a.HalfExtents.X*a.Rotation.Axis(0).Dot(axis)) +
		abs32(a.HalfExtents.Y*a.Rotation.Axis(1).Dot(axis)) +
		abs32(a.HalfExtents.Z*a.Rotation.Axis(2).Dot(axis))

	bProj := abs32(b.HalfExtents.X*b.Rotation.Axis(0).Dot(axis)) +
		abs32(b.HalfExtents.Y*b.Rotation.Axis(1).Dot(axis)) +
		abs32(b.HalfExtents.Z*b.Rotation.Axis(2).Dot(axis))

	dist := abs32(t.Dot(axis))
	return dist <= aProj+bProj
}

func abs32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
