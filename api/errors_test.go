// Copyright 2025 momentics@gmail.com
// Licensed under the Apache License, Version 2.0.

package api

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "overlap wording",
			err:  IndicesOverlapError{First: 0, Second: 2, Index: 1},
			want: "indices 0 and 2 are both 1",
		},
		{
			name: "bound wording",
			err:  IndexBoundError{Position: 0, Index: 4, Length: 4},
			want: "index 0 is 4, but target length is 4",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestErrorEquality(t *testing.T) {
	// Value types: exact failure content is assertable with ==.
	a := IndicesOverlapError{First: 0, Second: 2, Index: 1}
	b := IndicesOverlapError{First: 0, Second: 2, Index: 1}
	assert.True(t, a == b)
	assert.NotEqual(t, a, IndicesOverlapError{First: 1, Second: 2, Index: 1})

	c := IndexBoundError{Position: 0, Index: 4, Length: 4}
	assert.True(t, c == IndexBoundError{Position: 0, Index: 4, Length: 4})
}

func TestErrorAsAndCodes(t *testing.T) {
	var err error = IndicesOverlapError{First: 1, Second: 3, Index: 7}

	var overlap IndicesOverlapError
	assert.True(t, errors.As(err, &overlap))
	assert.Equal(t, 1, overlap.First)
	assert.Equal(t, 3, overlap.Second)
	assert.Equal(t, 7, overlap.Index)
	assert.Equal(t, ErrCodeIndicesOverlap, overlap.Code())

	var bound IndexBoundError
	assert.False(t, errors.As(err, &bound))

	err = IndexBoundError{Position: 2, Index: 9, Length: 5}
	assert.True(t, errors.As(err, &bound))
	assert.Equal(t, ErrCodeIndexBound, bound.Code())
}
