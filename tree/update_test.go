package tree

import (
	"testing"

	"github.com/aukilabs/obbtree/obb"
	"github.com/stretchr/testify/require"
)

func TestUpdateOverwritesLeafOBB(t *testing.T) {
	tr := buildLine(t, 1, 4, 5)

	newOBB := obb.OBB{
		Center:      obb.Vec3(99, 99, 99),
		Rotation:    identityFor(t),
		HalfExtents: obb.Vec3(1, 1, 1),
	}
	require.NoError(t, tr.Update(2, newOBB))

	idx, err := tr.LeafForParticle(2)
	require.NoError(t, err)
	require.Equal(t, newOBB, tr.NodeOBB(idx))
}

func TestUpdateDoesNotChangeOtherNodes(t *testing.T) {
	tr := buildLine(t, 1, 6, 5)

	before := make([]Node, tr.NumNodes())
	for i := range before {
		before[i] = tr.Node(NodeIndex(i))
	}

	idx, err := tr.LeafForParticle(3)
	require.NoError(t, err)
	newOBB := obb.OBB{Center: obb.Vec3(-1, -1, -1), Rotation: identityFor(t), HalfExtents: obb.Vec3(0.5, 0.5, 0.5)}
	require.NoError(t, tr.Update(3, newOBB))

	for i := range before {
		if NodeIndex(i) == idx {
			continue
		}
		require.Equal(t, before[i], tr.Node(NodeIndex(i)), "node %d changed", i)
	}
}

func TestUpdateUnknownParticleReturnsError(t *testing.T) {
	tr := buildLine(t, 1, 4, 5)
	err := tr.Update(999, obb.OBB{})
	require.Error(t, err)
}

func TestHeightOfSingleParticleTreeIsOne(t *testing.T) {
	tr := New(4)
	center := obb.Vec3(0, 0, 0)
	require.NoError(t, tr.BuildFromVertices(
		[]obb.OBB{cubeOBB(center, 0.5)},
		[][]obb.Vector3{cubeCloud(center, 0.5)},
		0,
	))
	require.Equal(t, 1, tr.Height(0))
}

func TestHeightIncreasesWithDepth(t *testing.T) {
	tr := buildLine(t, 1, 8, 5)

	maxHeight := 0
	for p := uint32(0); p < 8; p++ {
		h := tr.Height(p)
		require.GreaterOrEqual(t, h, 1)
		if h > maxHeight {
			maxHeight = h
		}
	}
	require.Greater(t, maxHeight, 1)
}

func TestHeightOfUnknownParticleIsZero(t *testing.T) {
	tr := buildLine(t, 1, 4, 5)
	require.Equal(t, 0, tr.Height(999))
}
