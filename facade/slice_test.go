// Copyright 2025 momentics@gmail.com
// Licensed under the Apache License, Version 2.0.

package facade

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momentics/mut-elems/api"
	"github.com/momentics/mut-elems/core/elems"
)

func TestSlicePickMut(t *testing.T) {
	s := Slice[int]{1, 2, 3, 4}

	es, err := s.PickMut(1, 3)
	require.NoError(t, err)
	*es[0] = 5
	*es[1] = 7
	assert.Equal(t, Slice[int]{1, 5, 3, 7}, s)
}

func TestSlicePickMutErrors(t *testing.T) {
	s := Slice[int]{1, 2, 3, 4}

	_, err := s.PickMut(1, 2, 1)
	assert.Equal(t, api.IndicesOverlapError{First: 0, Second: 2, Index: 1}, err)

	_, err = s.PickMut(4)
	assert.Equal(t, api.IndexBoundError{Position: 0, Index: 4, Length: 4}, err)
}

func TestSliceDelegation(t *testing.T) {
	raw := []int{1, 2, 3, 4}
	s := Slice[int](raw)

	// The wrapper shares storage with the wrapped slice and produces
	// the same views as the package-level calls.
	assert.Equal(t, elems.PickAllMut(raw), s.PickAllMut())
	assert.Equal(t, elems.PickAllMutVec(raw), s.PickAllMutVec())

	all := s.PickAllMut()
	require.Len(t, all, 4)
	*all[1] = 5
	*all[3] = 7
	assert.Equal(t, []int{1, 5, 3, 7}, raw)
}

func TestSliceEmpty(t *testing.T) {
	var s Slice[string]

	es, err := s.PickMut()
	require.NoError(t, err)
	assert.Empty(t, es)
	assert.Empty(t, s.PickAllMut())
	assert.Empty(t, s.PickAllMutVec())
}
