package generate_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gomatroid/kmatroid/generate"
)

func TestCompleteBipartite(t *testing.T) {
	edges := generate.CompleteBipartite(3)
	require.Len(t, edges, 9)
	require.Equal(t, [2]int{0, 0}, edges[0])
	require.Equal(t, [2]int{2, 2}, edges[8])
}

func TestErdosRenyiBipartite_Deterministic(t *testing.T) {
	edges1 := generate.ErdosRenyiBipartite(10, 0.5, rand.New(rand.NewSource(42)))
	edges2 := generate.ErdosRenyiBipartite(10, 0.5, rand.New(rand.NewSource(42)))
	require.Equal(t, edges1, edges2)
}

func TestErdosRenyiBipartite_ProbabilityBounds(t *testing.T) {
	edges := generate.ErdosRenyiBipartite(5, 0, rand.New(rand.NewSource(1)))
	require.Empty(t, edges)

	edges = generate.ErdosRenyiBipartite(5, 1, rand.New(rand.NewSource(1)))
	require.Len(t, edges, 25)
}

func TestTripartite3D_Deterministic(t *testing.T) {
	edges1 := generate.Tripartite3D(4, 0.3, rand.New(rand.NewSource(7)))
	edges2 := generate.Tripartite3D(4, 0.3, rand.New(rand.NewSource(7)))
	require.Equal(t, edges1, edges2)
}

func TestRandomDirected_PlantsPathOfRequestedLength(t *testing.T) {
	edges := generate.RandomDirected(10, 0, 4, rand.New(rand.NewSource(3)))
	// p=0 means only the planted path survives.
	require.Len(t, edges, 4)

	visited := make(map[int]bool)
	from := make(map[int]int)
	for _, e := range edges {
		from[e[0]] = e[1]
		visited[e[0]] = true
	}
	// walk the chain from its start and confirm it has exactly 4 hops.
	start := edges[0][0]
	cur := start
	hops := 0
	for {
		next, ok := from[cur]
		if !ok {
			break
		}
		hops++
		cur = next
	}
	require.Equal(t, 4, hops)
}

func TestRandomDirected_PathLongerThanVertexCount(t *testing.T) {
	edges := generate.RandomDirected(3, 0, 10, rand.New(rand.NewSource(1)))
	require.Len(t, edges, 2) // capped at n-1 edges
}

func TestRandomDirected_EmptyGraph(t *testing.T) {
	edges := generate.RandomDirected(0, 0.5, 2, rand.New(rand.NewSource(1)))
	require.Empty(t, edges)
}
