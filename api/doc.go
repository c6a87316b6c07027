// Package api
// Author: momentics <momentics@gmail.com>
//
// Public contracts for the mut-elems library: structured selection
// errors, the element-picking interface, and the generic pooling seam
// used by the validator's scratch tables.
//
// Everything in this package is a pure value or interface; no file
// here allocates, performs IO, or retains state between calls.
package api
