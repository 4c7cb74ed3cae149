package aggregate_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gomatroid/kmatroid/aggregate"
	"github.com/gomatroid/kmatroid/matroid"
)

// bipartiteAggregator builds a 2-partition-oracle aggregator over the given
// edge list, mirroring problem.Bipartite without importing it (keeps this
// test package focused on the aggregator's own contract).
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

func TestAggregator_TryAddRollsBackOnPartialFailure(t *testing.T) {
	// edges: 0:(0,0) 1:(1,0) 2:(1,1). Edge 1 is accepted by the left oracle
	// (vertex 1 free) and then rejected by the right oracle (vertex 0 taken
	// by edge 0), so the left oracle's acceptance must be rolled back.
	agg := bipartiteAggregator(t, 2, [][2]int{{0, 0}, {1, 0}, {1, 1}})

	require.True(t, agg.TryAdd(0))
	require.False(t, agg.TryAdd(1)) // right vertex 0 already used by edge 0
	require.False(t, agg.Member(1))
	require.Equal(t, 1, agg.Size())

	// The rejected TryAdd must not have disturbed edge 0's membership or
	// left any oracle able to reject a legitimately independent edge.
	require.True(t, agg.Member(0))
	require.True(t, agg.TryAdd(2)) // left vertex 1 was released by the rollback
}

func TestAggregator_RemoveThenReset(t *testing.T) {
	agg := bipartiteAggregator(t, 2, [][2]int{{0, 0}, {1, 1}})

	require.True(t, agg.TryAdd(0))
	require.True(t, agg.TryAdd(1))
	require.Equal(t, 2, agg.Size())

	agg.Remove(0)
	require.False(t, agg.Member(0))
	require.Equal(t, 1, agg.Size())

	agg.Reset()
	require.Equal(t, 0, agg.Size())
	require.Equal(t, []int{}, agg.Selection())

	// Reset is idempotent.
	agg.Reset()
	require.Equal(t, 0, agg.Size())
}

func TestAggregator_TryAddRemoveRoundTrip(t *testing.T) {
	agg := bipartiteAggregator(t, 2, [][2]int{{0, 0}})
	require.True(t, agg.TryAdd(0))
	agg.Remove(0)
	require.False(t, agg.Member(0))
	require.True(t, agg.TryAdd(0))
}

func TestAggregator_InvalidConstruction(t *testing.T) {
	_, err := aggregate.New(-1)
	require.ErrorIs(t, err, aggregate.ErrInvalidInput)

	_, err = aggregate.New(5)
	require.ErrorIs(t, err, aggregate.ErrInvalidInput)
}

func TestAggregator_RemoveAbsentPanics(t *testing.T) {
	agg := bipartiteAggregator(t, 2, [][2]int{{0, 0}})
	require.Panics(t, func() { agg.Remove(0) })
}
