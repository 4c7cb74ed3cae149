package problem

import (
	"github.com/gomatroid/kmatroid/aggregate"
	"github.com/gomatroid/kmatroid/matroid"
)

// Hamiltonian builds a k=3 directed-Hamiltonian-path instance: each element
// is a directed edge (from, to) on n vertices, and independence composes an
// out-degree oracle (keyed by from), an in-degree oracle (keyed by to), and
// an acyclicity oracle over the same edge list. All three are required —
// the degree oracles alone would permit cycles, and the acyclicity oracle
// alone would permit a vertex with two incoming edges (and panics, rather
// than rejecting, on a second outgoing edge).
func Hamiltonian(n int, edges [][2]int) (*aggregate.Aggregator, error) {
	if n < 0 {
		return nil, ErrInvalidInput
	}
	from := make([]int, len(edges))
	to := make([]int, len(edges))
	for i, e := range edges {
		if e[0] < 0 || e[0] >= n || e[1] < 0 || e[1] >= n {
			return nil, ErrInvalidInput
		}
		from[i], to[i] = e[0], e[1]
	}

	outDegree, err := matroid.NewDegreeOracle(n, from)
	if err != nil {
		return nil, err
	}
	inDegree, err := matroid.NewDegreeOracle(n, to)
	if err != nil {
		return nil, err
	}
	acyclic, err := matroid.NewAcyclicOracle(n, from, to)
	if err != nil {
		return nil, err
	}

	return aggregate.New(len(edges), outDegree, inDegree, acyclic)
}
