package tree

import "github.com/aukilabs/obbtree/obb"

// NodeIndex addresses a slot in a Tree's arena. It replaces the pointer
// links a naive tree would use: arena growth invalidates pointers, but an
// index into the (possibly reallocated) backing slice stays valid for the
// lifetime of one build.
type NodeIndex int32

// Invalid is the sentinel NodeIndex meaning "no such node" — an empty
// parent link at the root, an empty child link at a leaf, or an
// unplaced particle in a Tree's mapping.
const Invalid NodeIndex = -1

// Node is one slot in a Tree's arena: either an internal node (Left,
// Right both valid, Particles empty) or a leaf (Left == Invalid,
// Particles holds up to the tree's leaf capacity of particle indices).
//
// The fixed-size fields are ordered before the variable-length Particles
// slice to keep per-node padding minimal; true 32-byte alignment of the
// backing array, as the source arena guarantees via posix_memalign, isn't
// something Go's allocator exposes (see DESIGN.md).
type Node struct {
	OBB    obb.OBB
	Left   NodeIndex
	Right  NodeIndex
	Parent NodeIndex
	Skip   int32

	Particles []uint32
}

// IsLeaf reports whether n has no children.
func (n Node) IsLeaf() bool {
	return n.Left == Invalid
}
