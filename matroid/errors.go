package matroid

import "errors"

// ErrInvalidInput indicates a construction-time argument violated a
// documented precondition: a negative size, a vertex index outside
// [0, vertexCount), or an edge list with a mismatched arity.
var ErrInvalidInput = errors.New("matroid: invalid input")

// errInvalidOperation backs the panics raised when a caller violates a
// runtime precondition of TryAdd/Remove (double-add, remove-of-absent,
// or a functional-graph walk that exceeds the vertex count). These are
// programming errors in the caller — typically the aggregate or search
// packages — not data errors, so they are never returned as values.
var errInvalidOperation = errors.New("matroid: invalid operation")
