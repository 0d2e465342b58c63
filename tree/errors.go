package tree

import "github.com/aukilabs/go-tooling/pkg/errors"

// Error type tags, mirrored on every error this package returns so
// callers can branch with errors.Is/errors.Type instead of string
// matching.
const (
	ErrTypeAllocationFailed = "obbtree.allocation_failed"
	ErrTypeUnknownParticle  = "obbtree.unknown_particle"
)

// newAllocationError reports that the arena could not grow further
// without overflowing a NodeIndex. The source this package is grounded
// on treats this as a fatal allocator failure (posix_memalign returning
// NULL); Go's allocator panics instead of failing gracefully, so this
// package pre-checks against the int32 index space and returns an error
// before that panic could happen.
func newAllocationError(requestedCapacity int) error {
	return errors.Newf("obbtree: arena cannot grow to %d nodes without overflowing a 32-bit node index", requestedCapacity).
		WithType(ErrTypeAllocationFailed).
		WithTag("requested_capacity", requestedCapacity)
}

// newUnknownParticleError reports a lookup for a particle index that was
// never placed in a leaf, either because it's out of range or because
// the tree hasn't been built yet.
func newUnknownParticleError(particle uint32) error {
	return errors.Newf("obbtree: particle %d is not present in this tree", particle).
		WithType(ErrTypeUnknownParticle).
		WithTag("particle", particle)
}
