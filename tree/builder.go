package tree

import "github.com/aukilabs/obbtree/obb"

// buildNode fits an OBB over clouds[start:start+length], then either
// closes a leaf (length <= leafCapacity) or partitions the range along
// the fitted OBB's dominant axis and recurses.
//
// obbs, clouds and idx are permuted in place, in lockstep: buildNode
// only ever swaps elements within [start, start+length), so a completed
// subtree's items stay contiguous in the arrays for the rest of the
// build. The node's own arena slot is allocated before recursing into
// its children, and its Left/Right/OBB fields are written only after
// both children have returned — a stale Node value read before either
// recursive call would not reflect a subsequent arena grow.
func (t *Tree) buildNode(obbs []obb.OBB, clouds [][]obb.Vector3, idx []uint32, radius float32, start, length int, parent NodeIndex) (NodeIndex, error) {
	fitted := obb.Fit(mergeClouds(clouds[start : start+length]), radius)

	if length <= t.leafCapacity {
		myIdx, err := t.arena.allocate()
		if err != nil {
			return Invalid, err
		}
		particles := make([]uint32, length)
		copy(particles, idx[start:start+length])
		t.arena.set(myIdx, Node{
			OBB:    fitted,
			Left:   Invalid,
			Right:  Invalid,
			Parent: parent,

			Particles: particles,
		})
		for _, p := range particles {
			t.mapping[p] = myIdx
		}
		return myIdx, nil
	}

	myIdx, err := t.arena.allocate()
	if err != nil {
		return Invalid, err
	}

	leftLength := partition(obbs, clouds, idx, start, length, fitted)

	leftIdx, err := t.buildNode(obbs, clouds, idx, radius, start, leftLength, myIdx)
	if err != nil {
		return Invalid, err
	}
	rightIdx, err := t.buildNode(obbs, clouds, idx, radius, start+leftLength, length-leftLength, myIdx)
	if err != nil {
		return Invalid, err
	}

	t.arena.set(myIdx, Node{
		OBB:    fitted,
		Left:   leftIdx,
		Right:  rightIdx,
		Parent: parent,
	})
	return myIdx, nil
}

// partition splits obbs/clouds/idx[start:start+length], all three
// swapped in lockstep, into a left run and a right run by which side of
// fitted's dominant axis each item's own OBB center falls on, and
// returns the left run's length.
//
// Two items are split 1/1 without evaluating the axis: with only two
// centers, floating-point round-off in the covariance fit can put both
// on the same side, and the split is unambiguous anyway.
//
// A degenerate fit — every center landing on one side — is forced to a
// 1/(length-1) split rather than left as a length-0 partition, which
// would recurse forever.
func partition(obbs []obb.OBB, clouds [][]obb.Vector3, idx []uint32, start, length int, fitted obb.OBB) int {
	if length == 2 {
		return 1
	}

	axis := fitted.Rotation.Row0
	startRight := start
	for i := start; i < start+length; i++ {
		if obbs[i].Center.Sub(fitted.Center).Dot(axis) < 0 {
			obbs[i], obbs[startRight] = obbs[startRight], obbs[i]
			clouds[i], clouds[startRight] = clouds[startRight], clouds[i]
			idx[i], idx[startRight] = idx[startRight], idx[i]
			startRight++
		}
	}

	leftLength := startRight - start
	if leftLength == 0 {
		leftLength = 1
	} else if leftLength == length {
		leftLength = length - 1
	}
	return leftLength
}

func mergeClouds(clouds [][]obb.Vector3) []obb.Vector3 {
	total := 0
	for _, c := range clouds {
		total += len(c)
	}
	merged := make([]obb.Vector3, 0, total)
	for _, c := range clouds {
		merged = append(merged, c...)
	}
	return merged
}
