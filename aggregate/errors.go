package aggregate

import "errors"

// ErrInvalidInput indicates the aggregator was constructed with a negative
// ground-set size or with zero oracles.
var ErrInvalidInput = errors.New("aggregate: invalid input")

// errInvalidOperation backs the panic raised when Remove is called on an
// element that is not currently a member of the intersection, or when a
// rollback TryAdd unexpectedly fails during local search (see
// Aggregator.MustReadd) — both are programming errors, not data errors.
var errInvalidOperation = errors.New("aggregate: invalid operation")
