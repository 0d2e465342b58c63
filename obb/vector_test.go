package obb

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVectorAddSubDotCross(t *testing.T) {
	a := Vec3(1, 2, 3)
	b := Vec3(4, -5, 6)

	require.Equal(t, Vec3(5, -3, 9), a.Add(b))
	require.Equal(t, Vec3(-3, 7, -3), a.Sub(b))
	require.InDelta(t, float64(1*4+2*-5+3*6), float64(a.Dot(b)), 1e-6)

	x, y := Vec3(1, 0, 0), Vec3(0, 1, 0)
	require.Equal(t, Vec3(0, 0, 1), x.Cross(y))
}

func TestVectorLength(t *testing.T) {
	require.InDelta(t, 5, Vec3(3, 4, 0).Length(), 1e-6)
	require.InDelta(t, 0, Vec3(0, 0, 0).Length(), 1e-6)
}

func TestVectorNormalizedIsUnitLength(t *testing.T) {
	n := Vec3(3, 4, 0).Normalized()
	require.InDelta(t, 1, n.Length(), 1e-6)
	require.InDelta(t, 0.6, n.X, 1e-6)
	require.InDelta(t, 0.8, n.Y, 1e-6)
}

func TestVectorNormalizedZeroVectorIsUnchanged(t *testing.T) {
	require.Equal(t, Vec3(0, 0, 0), Vec3(0, 0, 0).Normalized())
}

func TestVectorSetMinSetMax(t *testing.T) {
	lo := Vec3(1, 5, -2)
	lo.SetMin(Vec3(-1, 6, -3))
	require.Equal(t, Vec3(-1, 5, -3), lo)

	hi := Vec3(1, 5, -2)
	hi.SetMax(Vec3(-1, 6, -3))
	require.Equal(t, Vec3(1, 6, -2), hi)
}
