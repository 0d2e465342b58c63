package tree

import (
	"testing"

	"github.com/aukilabs/obbtree/obb"
	"github.com/stretchr/testify/require"
)

func TestSkipLeavesAreZero(t *testing.T) {
	tr := New(1)
	n := 5
	clouds := make([][]obb.Vector3, n)
	obbs := make([]obb.OBB, n)
	for i := 0; i < n; i++ {
		center := obb.Vec3(float32(i)*4, 0, 0)
		clouds[i] = cubeCloud(center, 0.5)
		obbs[i] = cubeOBB(center, 0.5)
	}
	require.NoError(t, tr.BuildFromVertices(obbs, clouds, 0))

	for i := 0; i < tr.NumNodes(); i++ {
		node := tr.Node(NodeIndex(i))
		if node.IsLeaf() {
			require.EqualValues(t, 0, node.Skip)
		}
	}
}

func TestSkipInternalNodeEqualsChildSubtreeSizes(t *testing.T) {
	tr := New(1)
	n := 8
	clouds := make([][]obb.Vector3, n)
	obbs := make([]obb.OBB, n)
	for i := 0; i < n; i++ {
		center := obb.Vec3(float32(i)*4, 0, 0)
		clouds[i] = cubeCloud(center, 0.5)
		obbs[i] = cubeOBB(center, 0.5)
	}
	require.NoError(t, tr.BuildFromVertices(obbs, clouds, 0))

	for i := 0; i < tr.NumNodes(); i++ {
		node := tr.Node(NodeIndex(i))
		if !node.IsLeaf() {
			left := tr.Node(node.Left)
			right := tr.Node(node.Right)
			require.EqualValues(t, (left.Skip+1)+(right.Skip+1), node.Skip)
		}
	}
}

func TestSkipRootSubtreeSpansEveryNode(t *testing.T) {
	tr := New(1)
	n := 7
	clouds := make([][]obb.Vector3, n)
	obbs := make([]obb.OBB, n)
	for i := 0; i < n; i++ {
		center := obb.Vec3(float32(i)*4, 0, 0)
		clouds[i] = cubeCloud(center, 0.5)
		obbs[i] = cubeOBB(center, 0.5)
	}
	require.NoError(t, tr.BuildFromVertices(obbs, clouds, 0))

	root := tr.Node(tr.Root())
	require.EqualValues(t, tr.NumNodes(), root.Skip+1)
}

func TestSkipJumpsPastWholeSubtree(t *testing.T) {
	tr := New(1)
	n := 6
	clouds := make([][]obb.Vector3, n)
	obbs := make([]obb.OBB, n)
	for i := 0; i < n; i++ {
		center := obb.Vec3(float32(i)*4, 0, 0)
		clouds[i] = cubeCloud(center, 0.5)
		obbs[i] = cubeOBB(center, 0.5)
	}
	require.NoError(t, tr.BuildFromVertices(obbs, clouds, 0))

	root := tr.Node(tr.Root())
	next := root.Left + 1 + NodeIndex(tr.Node(root.Left).Skip)
	require.Equal(t, root.Right, next)
}
