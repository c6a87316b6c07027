// File: core/elems/validate.go
// Author: momentics <momentics@gmail.com>
//
// Index validation: distinctness first, then bounds. Short-circuits at
// the first failure, so at most one check ever reports per call.

package elems

import (
	"github.com/momentics/mut-elems/api"
	"github.com/momentics/mut-elems/pool"
)

// Scratch tables for the distinctness scan. A table lives only within
// a single call and is cleared before going back to the pool, so
// pooling is invisible to callers.
var scratch api.ObjectPool[map[int]int] = pool.NewShardedPool(func() map[int]int {
	return make(map[int]int)
})

func validate(indices []int, length int) error {
	if err := checkDistinct(indices); err != nil {
		return err
	}
	return checkBounds(indices, length)
}

// checkDistinct reports the first repeated value in indices. Small N
// is special-cased: zero or one entry cannot repeat, and a pair is a
// single comparison. Only N > 2 pays for a scratch table.
func checkDistinct(indices []int) error {
	switch len(indices) {
	case 0, 1:
		return nil
	case 2:
		if indices[0] == indices[1] {
			return api.IndicesOverlapError{First: 0, Second: 1, Index: indices[0]}
		}
		return nil
	}

	seen := scratch.Get()
	defer func() {
		clear(seen)
		scratch.Put(seen)
	}()

	// Left-to-right scan recording the first list position of each
	// value. On a hit, First is the earliest occurrence and Second is
	// the earliest position repeating it; later conflicts are never
	// inspected.
	for i, ix := range indices {
		if j, ok := seen[ix]; ok {
			return api.IndicesOverlapError{First: j, Second: i, Index: ix}
		}
		seen[ix] = i
	}
	return nil
}

// checkBounds reports the first entry that does not address target
// storage of the given length. Negative values fail the same way.
func checkBounds(indices []int, length int) error {
	for i, ix := range indices {
		if ix < 0 || ix >= length {
			return api.IndexBoundError{Position: i, Index: ix, Length: length}
		}
	}
	return nil
}
