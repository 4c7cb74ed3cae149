package generate

import "math/rand"

// RandomDirected generates a random directed graph on n vertices with a
// planted Hamiltonian path of at least minPlantedPathLen edges, unioned with
// independent Erdős–Rényi directed edges (i,j), i != j, at probability p.
//
// The planted path is a chain over a random permutation prefix of the vertex
// set: rng.Perm(n) picks the vertex order, and the first
// min(minPlantedPathLen+1, n) of them are connected in a chain. If
// minPlantedPathLen+1 exceeds n, the path covers every vertex instead (the
// longest path an n-vertex graph can contain).
//
// The planted edges are emitted first, in chain order, followed by the
// random edges in ascending (i,j) order, skipping any edge already planted.
func RandomDirected(n int, p float64, minPlantedPathLen int, rng *rand.Rand) [][2]int {
	if n == 0 {
		return nil
	}

	pathLen := minPlantedPathLen + 1
	if pathLen > n {
		pathLen = n
	}
	if pathLen < 1 {
		pathLen = 1
	}

	order := rng.Perm(n)
	planted := make(map[[2]int]bool, pathLen-1)
	edges := make([][2]int, 0, pathLen-1)
	for i := 0; i+1 < pathLen; i++ {
		edge := [2]int{order[i], order[i+1]}
		planted[edge] = true
		edges = append(edges, edge)
	}

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			edge := [2]int{i, j}
			if planted[edge] {
				continue
			}
			if rng.Float64() < p {
				edges = append(edges, edge)
			}
		}
	}

	return edges
}
