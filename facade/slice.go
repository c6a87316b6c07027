// File: facade/slice.go
// Author: momentics <momentics@gmail.com>
//
// Method-style veneer over core/elems. Wrap any slice in Slice to get
// the picking operations as methods instead of package-level calls.

package facade

import (
	"github.com/momentics/mut-elems/api"
	"github.com/momentics/mut-elems/core/elems"
)

// Slice adapts an ordinary Go slice to the api.MutPicker contract.
// The conversion is free; Slice shares the wrapped storage.
type Slice[T any] []T

var _ api.MutPicker[int] = Slice[int](nil)

// PickMut returns exclusive views of the elements at the given
// positions. See elems.PickMut for the validation contract.
func (s Slice[T]) PickMut(indices ...int) ([]*T, error) {
	return elems.PickMut([]T(s), indices)
}

// PickAllMut returns one view per element, in storage order.
func (s Slice[T]) PickAllMut() []*T {
	return elems.PickAllMut([]T(s))
}

// PickAllMutVec is PickAllMut collecting into a grown vector.
func (s Slice[T]) PickAllMutVec() []*T {
	return elems.PickAllMutVec([]T(s))
}
