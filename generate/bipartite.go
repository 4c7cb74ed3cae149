package generate

import "math/rand"

// ErdosRenyiBipartite generates a random bipartite graph with n vertices on
// each side, including edge (i,j) independently with probability p. Edges
// are emitted in ascending (i,j) order.
func ErdosRenyiBipartite(n int, p float64, rng *rand.Rand) [][2]int {
	edges := make([][2]int, 0, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if rng.Float64() < p {
				edges = append(edges, [2]int{i, j})
			}
		}
	}

	return edges
}

// CompleteBipartite generates K_{n,n}, in ascending (i,j) order.
func CompleteBipartite(n int) [][2]int {
	edges := make([][2]int, 0, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			edges = append(edges, [2]int{i, j})
		}
	}

	return edges
}
