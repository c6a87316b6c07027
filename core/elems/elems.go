// File: core/elems/elems.go
// Author: momentics <momentics@gmail.com>
//
// Element picking: validate positions, then hand out per-element views.

package elems

// PickMut returns one exclusive element pointer per entry of indices,
// in indices order, into target's storage.
//
// All indices must be pairwise distinct: two pointers to the same
// element would alias, and the caller is promised non-overlapping
// exclusive views. The call either yields exactly len(indices)
// pointers or fails with api.IndicesOverlapError or
// api.IndexBoundError; it never partially succeeds and never panics.
// An empty index list always succeeds, whatever the target length.
//
// While the returned views are live, target must not be accessed,
// resized, or picked again through any other path.
func PickMut[T any](target []T, indices []int) ([]*T, error) {
	if err := validate(indices, len(target)); err != nil {
		return nil, err
	}

	// Positions are proven distinct and in range; construction is
	// purely mechanical from here.
	out := make([]*T, len(indices))
	for i, ix := range indices {
		out[i] = &target[ix]
	}
	return out, nil
}

// PickAllMut returns one exclusive view per element of target, in
// storage order. Each position is visited exactly once, so
// distinctness and bounds hold by construction and no validation
// runs. Never fails, including for an empty target.
func PickAllMut[T any](target []T) []*T {
	out := make([]*T, len(target))
	for i := range target {
		out[i] = &target[i]
	}
	return out
}

// PickAllMutVec is PickAllMut collecting into a grown vector sized by
// the target's current length. Never fails.
func PickAllMutVec[T any](target []T) []*T {
	out := make([]*T, 0, len(target))
	for i := range target {
		out = append(out, &target[i])
	}
	return out
}
