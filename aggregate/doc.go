// Package aggregate composes k matroid.Oracle instances over a shared
// ground set into a single k-matroid intersection problem, and defines the
// ApproximationSolution record that every algorithm in this module emits.
//
// Aggregator owns its oracles exclusively and is the only thing higher-level
// algorithms (baseline greedy, local search, Kuhn matching) ever touch —
// they never reach past it to an individual oracle. That keeps the search
// packages generic over problem family: a bipartite matching Aggregator and
// a Hamiltonian-path Aggregator look identical from search's point of view.
package aggregate
