package validate

// BipartiteMatching confirms selection indexes a valid matching in the
// bipartite graph with n vertices on each side and the given edges: every
// edge in bounds, no duplicate or out-of-range selection index, and no
// vertex claimed by more than one selected edge on either side.
func BipartiteMatching(n int, edges [][2]int, selection []int) error {
	for _, e := range edges {
		if e[0] < 0 || e[0] >= n || e[1] < 0 || e[1] >= n {
			return ErrOutOfBounds
		}
	}
	if err := checkSelectionSet(len(edges), selection); err != nil {
		return err
	}

	usedLeft := make([]bool, n)
	usedRight := make([]bool, n)
	for _, idx := range selection {
		e := edges[idx]
		if usedLeft[e[0]] || usedRight[e[1]] {
			return ErrVertexReused
		}
		usedLeft[e[0]] = true
		usedRight[e[1]] = true
	}

	return nil
}
