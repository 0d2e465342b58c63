package tree

import "github.com/aukilabs/obbtree/obb"

// QueryStats reports how much work a Query call did, mainly for
// benchmarking and for tuning leaf capacity: a low Hits-to-NodesTested
// ratio means the tree is culling well, a high one means the query
// shape is close to the whole point cloud.
type QueryStats struct {
	NodesTested int
	Hits        int
}

// Query reports every particle whose leaf OBB overlaps q, using q's own
// overlap test at every node. Hit order is deterministic: pre-order over
// leaves, in each leaf's stored particle order.
//
// The walk is stackless: the builder lays nodes out in pre-order, so a
// node's left subtree always occupies the arena slots immediately after
// it and its right subtree the slots after that. Descending into an
// internal node is just moving to the next slot; culling a node means
// jumping past it and its whole subtree via its Skip field. No explicit
// traversal stack is allocated.
func (t *Tree) Query(q obb.OBB) ([]uint32, QueryStats) {
	var hits []uint32
	stats := t.QueryFunc(q, func(particle uint32) {
		hits = append(hits, particle)
	})
	return hits, stats
}

// QueryFunc is Query without the intermediate hits slice: visit is
// called once per matching particle as the walk finds it.
func (t *Tree) QueryFunc(q obb.OBB, visit func(particle uint32)) QueryStats {
	var stats QueryStats
	if t.root == Invalid {
		return stats
	}

	numNodes := t.arena.numNodes()
	for cur := t.root; int(cur) < numNodes; {
		node := t.arena.get(cur)
		stats.NodesTested++

		if !obb.Overlap(q, node.OBB) {
			cur += 1 + NodeIndex(node.Skip)
			continue
		}

		if node.IsLeaf() {
			for _, p := range node.Particles {
				visit(p)
				stats.Hits++
			}
		}
		cur++
	}

	instrumentQuery(stats)
	return stats
}
