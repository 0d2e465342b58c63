package tree

import "math"

// seedCapacity is the arena's initial allocation once the first node is
// requested; growth doubles from there. The source arena seeds at the
// same size for the same reason: most trees settle within a couple of
// doublings, so starting smaller than that just adds an extra grow on
// nearly every build.
const seedCapacity = 16

// maxNodeCapacity bounds arena growth to what a NodeIndex (int32) can
// address. Go's make/append would panic on true out-of-memory rather
// than return an error, so this is the practical replacement for the
// source's allocator-failure path: the arena refuses to grow past the
// index space before the runtime ever gets a chance to panic.
const maxNodeCapacity = math.MaxInt32

// arena is a contiguous, append-only store of Nodes. Indices into it are
// stable for the lifetime of a build: growth reallocates the backing
// slice and copies existing nodes into it, but never their indices.
type arena struct {
	nodes []Node
	len   int
}

func (a *arena) numNodes() int {
	return a.len
}

func (a *arena) get(idx NodeIndex) Node {
	return a.nodes[idx]
}

func (a *arena) set(idx NodeIndex, n Node) {
	a.nodes[idx] = n
}

// allocate reserves the next free node slot, growing the backing array
// first if it's full. Callers must not hold a Node value across a call
// to allocate: a grow reallocates the backing slice, so anything read
// before the call may not reflect the slot after it. Always re-read via
// get/set using the index instead.
func (a *arena) allocate() (NodeIndex, error) {
	if a.len == len(a.nodes) {
		newCapacity := seedCapacity
		if len(a.nodes) > 0 {
			newCapacity = len(a.nodes) * 2
		}
		if newCapacity > maxNodeCapacity {
			return Invalid, newAllocationError(newCapacity)
		}
		grown := make([]Node, newCapacity)
		copy(grown, a.nodes[:a.len])
		a.nodes = grown
	}

	idx := NodeIndex(a.len)
	a.nodes[idx] = Node{Left: Invalid, Right: Invalid, Parent: Invalid}
	a.len++
	return idx, nil
}
