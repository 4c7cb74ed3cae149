package validate

// ThreeDMatching confirms selection indexes a valid 3-dimensional matching:
// every hyperedge has exactly 3 in-bounds coordinates, no duplicate or
// out-of-range selection index, and no vertex claimed by more than one
// selected hyperedge within its own partition.
func ThreeDMatching(n int, edges [][3]int, selection []int) error {
	for _, e := range edges {
		for _, v := range e {
			if v < 0 || v >= n {
				return ErrOutOfBounds
			}
		}
	}
	if err := checkSelectionSet(len(edges), selection); err != nil {
		return err
	}

	usedVertices := [3][]bool{make([]bool, n), make([]bool, n), make([]bool, n)}
	for _, idx := range selection {
		e := edges[idx]
		for p := 0; p < 3; p++ {
			if usedVertices[p][e[p]] {
				return ErrVertexReused
			}
			usedVertices[p][e[p]] = true
		}
	}

	return nil
}
