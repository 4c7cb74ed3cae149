package search

import "github.com/gomatroid/kmatroid/aggregate"

// Baseline runs the classical greedy 1/k-approximation for k-matroid
// intersection: sweep the ground set in ascending index order, keep
// whatever the aggregator accepts.
//
// agg must be freshly Reset; Baseline does not reset it first, matching the
// contract that all algorithms in this module run from a caller-reset
// aggregator (baseline, Kuhn, and local search are each run from a reset
// aggregator per instance, never chained implicitly).
func Baseline(agg *aggregate.Aggregator) aggregate.ApproximationSolution {
	selection := make([]int, 0, agg.GroundSetSize())
	for e := 0; e < agg.GroundSetSize(); e++ {
		if agg.TryAdd(e) {
			selection = append(selection, e)
		}
	}

	return aggregate.NewApproximationSolution(1.0/float64(agg.Arity()), selection)
}
