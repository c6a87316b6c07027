// File: api/errors.go
// Author: momentics <momentics@gmail.com>
//
// Structured error values for element selection failures.
//
// Both error types are plain comparable structs so callers and tests
// can assert on exact failure content with == or errors.As instead of
// matching message substrings.

package api

import "fmt"

// ErrorCode classifies selection failures.
type ErrorCode int

const (
	ErrCodeOK ErrorCode = iota
	ErrCodeIndicesOverlap
	ErrCodeIndexBound
)

// IndicesOverlapError reports a repeated value in the index list: the
// entries at list positions First and Second (First < Second) are both
// Index. Handing out two exclusive views of the same element would
// alias, so the call is rejected before any handle is built.
type IndicesOverlapError struct {
	First  int // list position of the earliest occurrence
	Second int // list position of the first entry repeating it
	Index  int // the repeated index value
}

func (e IndicesOverlapError) Error() string {
	return fmt.Sprintf("indices %d and %d are both %d", e.First, e.Second, e.Index)
}

// Code returns the classification code for this error.
func (e IndicesOverlapError) Code() ErrorCode { return ErrCodeIndicesOverlap }

// IndexBoundError reports that the index list entry at Position holds
// Index, which does not address any element of a target of Length
// elements. Negative values are reported through this same error.
type IndexBoundError struct {
	Position int // list position of the offending entry
	Index    int // the out-of-range value
	Length   int // target length at call time
}

func (e IndexBoundError) Error() string {
	return fmt.Sprintf("index %d is %d, but target length is %d", e.Position, e.Index, e.Length)
}

// Code returns the classification code for this error.
func (e IndexBoundError) Code() ErrorCode { return ErrCodeIndexBound }
