// Package elems
// Author: momentics <momentics@gmail.com>
//
// Simultaneous mutable access to multiple elements of a slice. This is
// a generalization of splitting a slice into two disjoint mutable
// halves to an arbitrary, unordered set of individual positions.
//
// PickMut validates the requested positions (pairwise distinct, all in
// range) and only then materializes one element pointer per position.
// The validation is the whole point: it is what makes it sound for the
// caller to treat the returned pointers as N non-overlapping exclusive
// views of the same underlying storage.
//
//	a := []byte{1, 2, 3, 4}
//	es, _ := elems.PickMut(a, []int{1, 3})
//	*es[0] = 5
//	*es[1] = 7
//	// a is now [1 5 3 7]
package elems
