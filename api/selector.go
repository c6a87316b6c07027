// File: api/selector.go
// Author: momentics <momentics@gmail.com>
//
// Contracts for picking simultaneous mutable element views out of
// contiguous storage.

package api

// MutPicker is any contiguous container able to hand out exclusive
// per-element views of its storage.
//
// PickMut returns one pointer per requested position, in request
// order, or a structured error (IndicesOverlapError, IndexBoundError)
// when the positions are not pairwise distinct and in range. While the
// returned views are in use, the caller must not touch the container
// through any other path.
type MutPicker[T any] interface {
	// PickMut returns exclusive views of the elements at the given
	// positions. Positions must be pairwise distinct and in range.
	PickMut(indices ...int) ([]*T, error)

	// PickAllMut returns one view per element, in storage order.
	// Distinctness and bounds hold by construction; never fails.
	PickAllMut() []*T

	// PickAllMutVec is PickAllMut collecting into a grown vector.
	PickAllMutVec() []*T
}

// ObjectPool provides generic pooling of transiently allocated objects.
type ObjectPool[T any] interface {
	// Get returns an available instance from the pool.
	Get() T

	// Put returns an instance for reuse.
	Put(obj T)
}

// Result wraps any payload or error.
type Result[T any] struct {
	Value T
	Err   error
}
