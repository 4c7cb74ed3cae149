package search

import "errors"

// ErrUnsupportedArity indicates ComputeRatio (and therefore Run) was asked
// for an approximation-ratio certificate at an arity k ∉ {2, 3}. Unlike the
// panics in matroid/aggregate, this is reachable from ordinary caller input
// (a problem builder that wires up some other k), so it is returned rather
// than panicked.
var ErrUnsupportedArity = errors.New("search: approximation ratio not supported for k outside {2, 3}")
