package problem

import "errors"

// ErrInvalidInput indicates a malformed instance: negative vertex count,
// wrong-arity edge tuples, or an edge referencing a vertex out of range.
var ErrInvalidInput = errors.New("problem: invalid input")
