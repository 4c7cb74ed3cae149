package matching_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gomatroid/kmatroid/matching"
)

func TestRun_TwoByTwoBipartiteGraph(t *testing.T) {
	solution, err := matching.Run(2, [][2]int{{0, 0}, {0, 1}, {1, 0}, {1, 1}})
	require.NoError(t, err)
	require.Equal(t, 1.0, solution.Ratio())
	require.Equal(t, 2, solution.Size())
}

func TestRun_DisjointEdgesFormPerfectMatching(t *testing.T) {
	solution, err := matching.Run(2, [][2]int{{0, 1}, {1, 0}})
	require.NoError(t, err)
	require.Equal(t, 1.0, solution.Ratio())
	require.Equal(t, 2, solution.Size())
}

func TestRun_CompleteBipartite5x5(t *testing.T) {
	edges := make([][2]int, 0, 25)
	for i := 0; i < 5; i++ {
		for j := 0; j < 5; j++ {
			edges = append(edges, [2]int{i, j})
		}
	}

	solution, err := matching.Run(5, edges)
	require.NoError(t, err)
	require.Equal(t, 1.0, solution.Ratio())
	require.Equal(t, 5, solution.Size())
}

func TestRun_EmptyGraph(t *testing.T) {
	solution, err := matching.Run(0, nil)
	require.NoError(t, err)
	require.Equal(t, 0, solution.Size())
	require.Equal(t, []int{}, solution.Selection())
}

func TestRun_SharedLeftVertexMatchesOnce(t *testing.T) {
	// both edges compete for the same left vertex 0.
	solution, err := matching.Run(2, [][2]int{{0, 0}, {0, 1}})
	require.NoError(t, err)
	require.Equal(t, 1, solution.Size())
}

func TestRun_InvalidInput(t *testing.T) {
	_, err := matching.Run(-1, nil)
	require.ErrorIs(t, err, matching.ErrInvalidInput)

	_, err = matching.Run(1, [][2]int{{0, 1}})
	require.ErrorIs(t, err, matching.ErrInvalidInput)
}

func TestRun_SelectionIsValidMatching(t *testing.T) {
	edges := [][2]int{{0, 0}, {0, 1}, {1, 0}, {1, 1}, {2, 2}}
	solution, err := matching.Run(3, edges)
	require.NoError(t, err)

	usedLeft := make(map[int]bool)
	usedRight := make(map[int]bool)
	for _, idx := range solution.Selection() {
		e := edges[idx]
		require.False(t, usedLeft[e[0]])
		require.False(t, usedRight[e[1]])
		usedLeft[e[0]] = true
		usedRight[e[1]] = true
	}
	require.Equal(t, 3, solution.Size())
}
