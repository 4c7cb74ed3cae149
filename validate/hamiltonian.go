package validate

// HamiltonianPath confirms selection indexes a valid set of vertex-disjoint
// simple directed paths: every edge in bounds, no duplicate or out-of-range
// selection index, at most one incoming and one outgoing selected edge per
// vertex, and no cycle among the selected edges.
func HamiltonianPath(n int, edges [][2]int, selection []int) error {
	for _, e := range edges {
		if e[0] < 0 || e[0] >= n || e[1] < 0 || e[1] >= n {
			return ErrOutOfBounds
		}
	}
	if err := checkSelectionSet(len(edges), selection); err != nil {
		return err
	}
	if len(selection) == 0 {
		return nil
	}

	incoming := make([]int, n)
	outgoing := make([]int, n)
	for v := range incoming {
		incoming[v] = -1
		outgoing[v] = -1
	}

	for _, idx := range selection {
		e := edges[idx]
		if incoming[e[1]] != -1 {
			return ErrVertexReused
		}
		incoming[e[1]] = idx
		if outgoing[e[0]] != -1 {
			return ErrVertexReused
		}
		outgoing[e[0]] = idx
	}

	visited := make([]int, n)
	iteration := 1
	for v := 0; v < n; v++ {
		if visited[v] != 0 {
			continue
		}
		cur := v
		for outgoing[cur] != -1 {
			cur = edges[outgoing[cur]][1]
			if visited[cur] != 0 {
				if visited[cur] == iteration {
					return ErrCycleDetected
				}
				break
			}
			visited[cur] = iteration
		}
		iteration++
	}

	return nil
}
