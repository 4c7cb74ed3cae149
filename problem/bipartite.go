package problem

import (
	"github.com/gomatroid/kmatroid/aggregate"
	"github.com/gomatroid/kmatroid/matroid"
)

// Bipartite builds a k=2 matching instance: each element of the ground set
// is an edge (left, right), and independence requires at most one selected
// edge per left vertex and at most one per right vertex. Both partitions
// have n vertices.
func Bipartite(n int, edges [][2]int) (*aggregate.Aggregator, error) {
	if n < 0 {
		return nil, ErrInvalidInput
	}
	left := make([]int, len(edges))
	right := make([]int, len(edges))
	for i, e := range edges {
		if e[0] < 0 || e[0] >= n || e[1] < 0 || e[1] >= n {
			return nil, ErrInvalidInput
		}
		left[i], right[i] = e[0], e[1]
	}

	leftOracle, err := matroid.NewPartitionOracle(n, left)
	if err != nil {
		return nil, err
	}
	rightOracle, err := matroid.NewPartitionOracle(n, right)
	if err != nil {
		return nil, err
	}

	return aggregate.New(len(edges), leftOracle, rightOracle)
}
