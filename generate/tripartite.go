package generate

import "math/rand"

// Tripartite3D generates a random 3-uniform tripartite hypergraph: n
// vertices in each of 3 partitions, including hyperedge (i,j,k) independently
// with probability p. Hyperedges are emitted in ascending (i,j,k) order.
func Tripartite3D(n int, p float64, rng *rand.Rand) [][3]int {
	edges := make([][3]int, 0, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			for k := 0; k < n; k++ {
				if rng.Float64() < p {
					edges = append(edges, [3]int{i, j, k})
				}
			}
		}
	}

	return edges
}
