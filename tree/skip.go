package tree

// computeSkip walks the subtree rooted at idx in post-order and fills in
// every node's Skip field: the number of arena slots occupied by the
// node's subtree, excluding the node itself. A leaf's Skip is 0. For an
// internal node, Skip is the combined size of both children's subtrees
// (each counted including the child itself).
//
// Combined with the builder's pre-order index layout (a node's left
// subtree occupies the slots immediately after it, its right subtree
// the slots after that), Skip is what lets query walk the arena as a
// flat array instead of an explicit stack: culling a subtree at index i
// means jumping to i + 1 + skip, past the node itself and everything
// beneath it.
//
// computeSkip returns the size of idx's own subtree including idx,
// which is what a parent call needs to add into its own Skip.
func computeSkip(a *arena, idx NodeIndex) int32 {
	n := a.get(idx)
	if n.IsLeaf() {
		n.Skip = 0
		a.set(idx, n)
		return 1
	}

	left := computeSkip(a, n.Left)
	right := computeSkip(a, n.Right)

	n.Skip = left + right
	a.set(idx, n)
	return n.Skip + 1
}
