package matching

import (
	"sort"

	"github.com/gomatroid/kmatroid/aggregate"
)

// Run computes a maximum matching in the bipartite graph with n vertices on
// each side and the given edges (left, right), via repeated
// augmenting-path search (Kuhn's algorithm). It always returns ratio 1.0 —
// unlike the generic local search, this is an exact algorithm, not an
// approximation.
//
// edges must reference vertices in [0, n) on both sides, and n must be
// nonnegative; violating either returns ErrInvalidInput.
func Run(n int, edges [][2]int) (aggregate.ApproximationSolution, error) {
	if n < 0 {
		return aggregate.ApproximationSolution{}, ErrInvalidInput
	}
	adjacency := make([][]edgeRef, n)
	for i, e := range edges {
		if e[0] < 0 || e[0] >= n || e[1] < 0 || e[1] >= n {
			return aggregate.ApproximationSolution{}, ErrInvalidInput
		}
		adjacency[e[0]] = append(adjacency[e[0]], edgeRef{rightVertex: e[1], edgeIndex: i})
	}

	matchVertex := make([]int, n) // right vertex -> matched left vertex, -1 if none
	matchEdge := make([]int, n)   // right vertex -> edge index of the match
	for i := range matchVertex {
		matchVertex[i] = -1
		matchEdge[i] = -1
	}
	isMatched := make([]bool, n) // left vertex already matched
	visited := make([]bool, n)   // left vertex visited this augmenting pass

	var augment func(left int) bool
	augment = func(left int) bool {
		if visited[left] {
			return false
		}
		visited[left] = true
		for _, ref := range adjacency[left] {
			if matchVertex[ref.rightVertex] == -1 || augment(matchVertex[ref.rightVertex]) {
				matchVertex[ref.rightVertex] = left
				matchEdge[ref.rightVertex] = ref.edgeIndex
				isMatched[left] = true
				return true
			}
		}
		return false
	}

	for {
		anyAugmented := false
		for i := range visited {
			visited[i] = false
		}
		for left := 0; left < n; left++ {
			if !visited[left] && !isMatched[left] && augment(left) {
				anyAugmented = true
			}
		}
		if !anyAugmented {
			break
		}
	}

	selection := make([]int, 0, n)
	for right := 0; right < n; right++ {
		if matchVertex[right] != -1 {
			selection = append(selection, matchEdge[right])
		}
	}
	sort.Ints(selection)

	return aggregate.NewApproximationSolution(1.0, selection), nil
}

type edgeRef struct {
	rightVertex int
	edgeIndex   int
}
