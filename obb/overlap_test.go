package obb

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func axisAlignedBox(center Vector3, halfExtent float32) OBB {
	return OBB{
		Center:      center,
		Rotation:    identity(),
		HalfExtents: Vec3(halfExtent, halfExtent, halfExtent),
	}
}

func TestOverlapIdenticalBoxes(t *testing.T) {
	a := axisAlignedBox(Vec3(0, 0, 0), 1)
	require.True(t, Overlap(a, a))
}

func TestOverlapSeparated(t *testing.T) {
	a := axisAlignedBox(Vec3(-10, 0, 0), 0.5)
	b := axisAlignedBox(Vec3(10, 0, 0), 0.5)
	require.False(t, Overlap(a, b))
}

func TestOverlapTouchingAtBoundary(t *testing.T) {
	a := axisAlignedBox(Vec3(0, 0, 0), 0.5)
	b := axisAlignedBox(Vec3(1, 0, 0), 0.5)
	require.True(t, Overlap(a, b))
}

func TestOverlapRotatedBoxes(t *testing.T) {
	a := axisAlignedBox(Vec3(0, 0, 0), 1)

	// b is rotated 45 degrees around Z, corner-first towards a; its
	// projected half-extent on X/Y grows to extent*sqrt(2), so despite the
	// centers being father apart than either box's raw half-extent, they
	// still overlap.
	s := float32(0.70710678)
	b := OBB{
		Center: Vec3(1.9, 0, 0),
		Rotation: Matrix3{
			Row0: Vec3(s, s, 0),
			Row1: Vec3(-s, s, 0),
			Row2: Vec3(0, 0, 1),
		},
		HalfExtents: Vec3(1, 1, 1),
	}
	require.True(t, Overlap(a, b))
}

func TestOverlapParallelRodsSeparated(t *testing.T) {
	a := OBB{
		Center:      Vec3(0, 0, 0),
		Rotation:    identity(),
		HalfExtents: Vec3(0.1, 5, 0.1),
	}
	b := OBB{
		Center:      Vec3(0, 0, 0.3),
		Rotation:    Matrix3{Row0: Vec3(0, 0, 1), Row1: Vec3(0, 1, 0), Row2: Vec3(-1, 0, 0)},
		HalfExtents: Vec3(0.1, 5, 0.1),
	}
	require.False(t, Overlap(a, b))
}
