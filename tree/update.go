package tree

import "github.com/aukilabs/obbtree/obb"

// LeafForParticle returns the arena index of the leaf holding particle.
// It's the reverse index the builder populates during a build, giving O(1)
// particle-to-leaf lookup instead of a full-arena scan.
func (t *Tree) LeafForParticle(particle uint32) (NodeIndex, error) {
	if int(particle) >= len(t.mapping) {
		return Invalid, newUnknownParticleError(particle)
	}
	idx := t.mapping[particle]
	if idx == Invalid {
		return Invalid, newUnknownParticleError(particle)
	}
	return idx, nil
}

// Update overwrites particle's leaf OBB in place. It does not refit or
// propagate the change to ancestors: the tree stays conservative only if
// newOBB is contained in the leaf's previous OBB. Callers doing bulk
// updates across many particles should rebuild once every update for a
// step is applied rather than pay for repeated ancestor refits.
//
// Update fails with UnknownParticle if particle was never placed by the
// most recent build or is out of range.
func (t *Tree) Update(particle uint32, newOBB obb.OBB) error {
	idx, err := t.LeafForParticle(particle)
	if err != nil {
		return err
	}
	n := t.arena.get(idx)
	n.OBB = newOBB
	t.arena.set(idx, n)
	return nil
}

// Height returns particle's depth: the number of nodes on the path from
// its leaf up to and including the root, with the leaf itself counted as
// 1. An unmapped particle — never placed by the most recent build, or
// out of range — returns 0 rather than an error, matching update's
// counterpart accessor contract of failing loudly only on mutation.
func (t *Tree) Height(particle uint32) int {
	idx, err := t.LeafForParticle(particle)
	if err != nil {
		return 0
	}

	height := 1
	for {
		n := t.arena.get(idx)
		if n.Parent == Invalid {
			return height
		}
		idx = n.Parent
		height++
	}
}
