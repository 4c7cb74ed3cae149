// Package matroid provides stateful, rollback-capable incremental oracles
// for the three matroid families used by k-matroid intersection: partition
// matroids (matching-style "at most one element per vertex" constraints),
// in/out-degree matroids (a partition matroid keyed by edge head or tail),
// and the functional-graph acyclicity matroid used to keep a set of
// directed edges a disjoint union of simple paths.
//
// An Oracle never answers "is this whole set independent"; it only ever
// answers "can I add this one element right now, given everything I've
// already accepted". That is the entire API:
//
//	type Oracle interface {
//	    TryAdd(element int) bool
//	    Remove(element int)
//	}
//
// TryAdd either mutates the oracle's internal state and returns true, or
// leaves state byte-identical and returns false. Remove always succeeds and
// always mutates. There is deliberately no exported constructor that lets
// you swap in a fourth kind at runtime — the three concrete oracles below
// are the closed set this package supports; a caller composing more exotic
// matroids should add a new file here, not reach for an interface{} plugin
// registry.
//
// Every constructor validates its inputs eagerly and returns ErrInvalidInput
// on bad vertex indices or negative sizes; every TryAdd/Remove call trusts
// its caller to respect the element-in-range and not-already-present /
// already-present preconditions documented on each method, and panics via
// errInvalidOperation if a precondition is violated — this mirrors a
// programming bug, not a data error, so it is never returned as a value.
package matroid
