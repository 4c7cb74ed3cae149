package problem

import (
	"github.com/gomatroid/kmatroid/aggregate"
	"github.com/gomatroid/kmatroid/matroid"
)

// DDimensionalMatching builds a k=d matching instance: each element is a
// d-tuple of vertices, one per partition, and independence requires at most
// one selected tuple per vertex within each of the d partitions. Every
// partition has n vertices; every edge must have exactly d coordinates.
func DDimensionalMatching(n, d int, edges [][]int) (*aggregate.Aggregator, error) {
	if n < 0 || d < 1 {
		return nil, ErrInvalidInput
	}
	coordinates := make([][]int, d)
	for c := range coordinates {
		coordinates[c] = make([]int, len(edges))
	}
	for i, e := range edges {
		if len(e) != d {
			return nil, ErrInvalidInput
		}
		for c, v := range e {
			if v < 0 || v >= n {
				return nil, ErrInvalidInput
			}
			coordinates[c][i] = v
		}
	}

	oracles := make([]matroid.Oracle, d)
	for c := range oracles {
		oracle, err := matroid.NewPartitionOracle(n, coordinates[c])
		if err != nil {
			return nil, err
		}
		oracles[c] = oracle
	}

	return aggregate.New(len(edges), oracles...)
}
