package search_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gomatroid/kmatroid/aggregate"
	"github.com/gomatroid/kmatroid/matroid"
	"github.com/gomatroid/kmatroid/search"
)

// bipartiteAggregator builds a 2-partition-oracle aggregator over the given
// edge list, one oracle per side.
func bipartiteAggregator(t *testing.T, n int, edges [][2]int) *aggregate.Aggregator {
	t.Helper()
	left := make([]int, len(edges))
	right := make([]int, len(edges))
	for i, e := range edges {
		left[i], right[i] = e[0], e[1]
	}
	oLeft, err := matroid.NewPartitionOracle(n, left)
	require.NoError(t, err)
	oRight, err := matroid.NewPartitionOracle(n, right)
	require.NoError(t, err)
	agg, err := aggregate.New(len(edges), oLeft, oRight)
	require.NoError(t, err)

	return agg
}

func TestRun_EmptyGroundSet(t *testing.T) {
	agg := bipartiteAggregator(t, 0, nil)

	solutions, err := search.Run(context.Background(), agg, search.Options{})
	require.NoError(t, err)
	require.Len(t, solutions, 1)
	require.Equal(t, 1.0, solutions[0].Ratio())
	require.Equal(t, []int{}, solutions[0].Selection())
}

func TestRun_FindsPerfectMatching(t *testing.T) {
	// Triangle-free bipartite graph with a perfect matching of size 3.
	// edges: 0:(0,0) 1:(0,1) 2:(1,0) 3:(1,1) 4:(2,2)
	agg := bipartiteAggregator(t, 3, [][2]int{{0, 0}, {0, 1}, {1, 0}, {1, 1}, {2, 2}})

	solutions, err := search.Run(context.Background(), agg, search.Options{})
	require.NoError(t, err)
	require.NotEmpty(t, solutions)

	final := solutions[len(solutions)-1]
	require.Equal(t, 3, final.Size())
	require.Equal(t, 1.0, final.Ratio())
	require.Equal(t, 3, agg.Size())
}

func TestRun_SelectionSizeNondecreasing(t *testing.T) {
	agg := bipartiteAggregator(t, 3, [][2]int{{0, 0}, {0, 1}, {1, 0}, {1, 1}, {2, 2}})

	solutions, err := search.Run(context.Background(), agg, search.Options{})
	require.NoError(t, err)

	for i := 1; i < len(solutions); i++ {
		require.GreaterOrEqual(t, solutions[i].Size(), solutions[i-1].Size())
	}
}

func TestRun_DeadlineAlreadyExpired(t *testing.T) {
	agg := bipartiteAggregator(t, 3, [][2]int{{0, 0}, {0, 1}, {1, 0}, {1, 1}, {2, 2}})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	solutions, err := search.Run(ctx, agg, search.Options{})
	require.NoError(t, err)
	require.Len(t, solutions, 1)
	require.Equal(t, 0.0, solutions[0].Ratio())
}

func TestRun_Deterministic(t *testing.T) {
	edges := [][2]int{{0, 0}, {0, 1}, {1, 0}, {1, 1}, {2, 2}}

	agg1 := bipartiteAggregator(t, 3, edges)
	solutions1, err := search.Run(context.Background(), agg1, search.Options{})
	require.NoError(t, err)

	agg2 := bipartiteAggregator(t, 3, edges)
	solutions2, err := search.Run(context.Background(), agg2, search.Options{})
	require.NoError(t, err)

	require.Equal(t, len(solutions1), len(solutions2))
	for i := range solutions1 {
		require.Equal(t, solutions1[i].Selection(), solutions2[i].Selection())
		require.Equal(t, solutions1[i].Ratio(), solutions2[i].Ratio())
	}
}

func TestRun_UnsupportedArity(t *testing.T) {
	oA, err := matroid.NewPartitionOracle(1, []int{0})
	require.NoError(t, err)
	oB, err := matroid.NewPartitionOracle(1, []int{0})
	require.NoError(t, err)
	oC, err := matroid.NewPartitionOracle(1, []int{0})
	require.NoError(t, err)
	oD, err := matroid.NewPartitionOracle(1, []int{0})
	require.NoError(t, err)
	agg, err := aggregate.New(1, oA, oB, oC, oD)
	require.NoError(t, err)

	_, err = search.Run(context.Background(), agg, search.Options{})
	require.ErrorIs(t, err, search.ErrUnsupportedArity)
}
