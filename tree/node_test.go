package tree

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNodeIsLeaf(t *testing.T) {
	leaf := Node{Left: Invalid, Right: Invalid, Particles: []uint32{0, 1}}
	require.True(t, leaf.IsLeaf())

	internal := Node{Left: 1, Right: 2}
	require.False(t, internal.IsLeaf())
}
