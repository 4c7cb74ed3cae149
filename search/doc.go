// Package search implements the two algorithms that operate generically
// over any aggregate.Aggregator regardless of problem family: the 1/k-
// approximate baseline greedy sweep, and the (t,t+1)-exchange local-search
// engine that iteratively deepens toward a t-locally-optimal solution,
// certifying an approximation ratio at every plateau via the closed-form
// formulas in ratio.go.
//
// Both algorithms assume they are handed a freshly Reset aggregator and run
// to completion (or to a deadline) in a single call; neither resets on your
// behalf, so callers wanting to run baseline, Kuhn, and local search back to
// back on the same instance must Reset the aggregator between runs
// themselves.
package search
