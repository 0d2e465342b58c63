// Package tree builds and queries hierarchical bounding-volume trees over
// oriented bounding boxes, for broad-phase overlap culling of large point
// clouds and particle sets.
package tree

import (
	"time"

	"github.com/aukilabs/go-tooling/pkg/logs"
	"github.com/aukilabs/obbtree/obb"
)

// Tree is a hierarchical OBB tree over a fixed set of particles, each
// identified by its index into the items passed to BuildFromOBBs or
// BuildFromVertices. A Tree is not safe for concurrent build and
// Query/Update calls; concurrent
// Query calls against a Tree that isn't being mutated are safe, since
// they only read the arena.
type Tree struct {
	leafCapacity int

	arena arena
	root  NodeIndex

	// mapping[particle] is the leaf holding particle, or Invalid if
	// particle wasn't part of the most recent build.
	mapping []NodeIndex
}

// New returns an empty Tree that packs up to leafCapacity particles into
// each leaf. leafCapacity must be at least 1.
func New(leafCapacity int) *Tree {
	if leafCapacity < 1 {
		panic("obbtree: leafCapacity must be at least 1")
	}
	return &Tree{
		leafCapacity: leafCapacity,
		root:         Invalid,
	}
}

// BuildFromOBBs builds a tree over items, one particle per OBB, using
// each OBB's eight corners as its point cloud and zero inflation radius.
// Each item also stands in as its own particle OBB for BuildFromVertices'
// obbs parameter, since a corner cloud is symmetric about its OBB's
// center anyway.
func (t *Tree) BuildFromOBBs(items []obb.OBB) error {
	clouds := make([][]obb.Vector3, len(items))
	for i, o := range items {
		corners := o.Corners()
		clouds[i] = corners[:]
	}
	return t.BuildFromVertices(items, clouds, 0)
}

// BuildFromVertices builds a tree over clouds, one particle per point
// cloud, inflating every fitted OBB along each axis by radius. obbs
// supplies a per-particle OBB used only to steer the partition sweep's
// left/right sign test; it's a separate argument rather than something
// derived from clouds because the two need not agree for an arbitrary,
// possibly asymmetric vertex list. obbs and clouds must be the same
// length. Neither is retained or mutated; the tree keeps no reference
// to them once BuildFromVertices returns.
//
// BuildFromVertices replaces any tree previously held by t. It is not incremental:
// every call discards the existing arena and starts over.
func (t *Tree) BuildFromVertices(obbs []obb.OBB, clouds [][]obb.Vector3, radius float32) error {
	start := time.Now()
	err := t.build(obbs, clouds, radius)
	instrumentBuildLatency(start)
	if err != nil {
		instrumentBuildError(err)
		logs.Warn(err)
		return err
	}
	instrumentBuildNodeCount(t.arena.numNodes())
	logs.WithTag("num_particles", len(clouds)).
		WithTag("num_nodes", t.arena.numNodes()).
		WithTag("build_time_ms", time.Since(start).Milliseconds()).
		Debug("obbtree: build complete")
	return nil
}

func (t *Tree) build(obbs []obb.OBB, clouds [][]obb.Vector3, radius float32) error {
	t.arena = arena{}
	t.root = Invalid
	t.mapping = nil

	n := len(clouds)
	if n == 0 {
		return nil
	}
	if len(obbs) != n {
		panic("obbtree: BuildFromVertices called with mismatched obbs and clouds lengths")
	}
	for _, c := range clouds {
		if len(c) == 0 {
			panic("obbtree: BuildFromVertices called with a zero-length vertex list for a particle")
		}
	}

	permutedObbs := make([]obb.OBB, n)
	copy(permutedObbs, obbs)
	permutedClouds := make([][]obb.Vector3, n)
	copy(permutedClouds, clouds)
	idx := make([]uint32, n)
	for i := range idx {
		idx[i] = uint32(i)
	}
	t.mapping = make([]NodeIndex, n)
	for i := range t.mapping {
		t.mapping[i] = Invalid
	}

	root, err := t.buildNode(permutedObbs, permutedClouds, idx, radius, 0, n, Invalid)
	if err != nil {
		return err
	}
	t.root = root
	computeSkip(&t.arena, t.root)
	return nil
}

// NumNodes returns the number of nodes in the arena, leaves and
// internal nodes combined.
func (t *Tree) NumNodes() int {
	return t.arena.numNodes()
}

// Root returns the index of the tree's root node, or Invalid if the
// tree hasn't been built or was built from zero items.
func (t *Tree) Root() NodeIndex {
	return t.root
}

// Node returns a copy of the node at idx. idx must be in range
// [0, NumNodes()); an out-of-range idx panics, since it names a slot
// that was never allocated rather than a runtime condition a caller
// could hit through ordinary use.
func (t *Tree) Node(idx NodeIndex) Node {
	if idx < 0 || int(idx) >= t.arena.numNodes() {
		panic("obbtree: Node called with an out-of-range node index")
	}
	return t.arena.get(idx)
}

// NodeOBB returns the bounding box of the node at idx.
func (t *Tree) NodeOBB(idx NodeIndex) obb.OBB {
	return t.Node(idx).OBB
}

// NodeSkip returns the number of arena slots in idx's subtree,
// excluding idx itself. It's 0 for a leaf.
func (t *Tree) NodeSkip(idx NodeIndex) int32 {
	return t.Node(idx).Skip
}

// NodeLeft returns the arena index of idx's left child, or Invalid if
// idx is a leaf.
func (t *Tree) NodeLeft(idx NodeIndex) NodeIndex {
	return t.Node(idx).Left
}

// NodeNumParticles returns the number of particles stored at idx. It's
// 0 for an internal node.
func (t *Tree) NodeNumParticles(idx NodeIndex) int {
	return len(t.Node(idx).Particles)
}

// NodeParticle returns the j-th particle stored at leaf idx. j must be
// in range [0, NodeNumParticles(idx)).
func (t *Tree) NodeParticle(idx NodeIndex, j int) uint32 {
	return t.Node(idx).Particles[j]
}

// IsLeaf reports whether the node at idx has no children.
func (t *Tree) IsLeaf(idx NodeIndex) bool {
	return t.Node(idx).IsLeaf()
}
