// Package problem wires concrete matroid oracles into an aggregate.Aggregator
// for the three problem families this system solves: bipartite matching
// (k=2), d-dimensional matching (k=d), and directed Hamiltonian path
// (k=3, degree oracles composed with a functional-graph acyclicity oracle).
//
// Each builder validates its instance and returns a ready-to-run aggregator,
// so callers can hand it straight to search.Baseline or search.Run. The
// builders don't return the edge list themselves — callers already have it,
// since they're the ones who passed it in — but should keep it on hand
// alongside the aggregator for validate or for re-deriving a human-readable
// solution.
package problem
