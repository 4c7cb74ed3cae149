package matroid

// AcyclicOracle keeps a set of directed edges a disjoint union of simple
// paths: no vertex is the tail of more than one selected edge (enforced
// here, redundantly with an out-degree companion oracle in practice) and no
// selected edge closes a cycle.
//
// State: next[v] is the vertex reached by the single selected edge out of v,
// or -1 if v currently has no outgoing selected edge.
//
// TryAdd keeps next a functional graph (out-degree ≤ 1 per vertex) and never
// accepts an edge that would close a cycle, so following next from any
// vertex ends at a vertex with no outgoing edge within vertexCount steps.
// Without an in-degree companion oracle, two selected edges may share a
// head (a branching, still acyclic); without an out-degree companion, a
// second edge out of the same tail panics instead of being rejected. The
// walk's step counter panics only if next has been corrupted; a correctly
// composed Hamiltonian-path problem never triggers either panic.
type AcyclicOracle struct {
	edgeFrom    []int // element -> tail vertex
	edgeTo      []int // element -> head vertex
	next        []int // vertex -> vertex reached by its selected outgoing edge, or -1
	vertexCount int
}

// NewAcyclicOracle builds an acyclicity oracle over the given directed edge
// list (from[e], to[e]) on vertexCount vertices.
//
// Returns ErrInvalidInput if vertexCount < 0, the two slices have mismatched
// lengths, or any endpoint falls outside [0, vertexCount).
func NewAcyclicOracle(vertexCount int, from, to []int) (*AcyclicOracle, error) {
	if vertexCount < 0 || len(from) != len(to) {
		return nil, ErrInvalidInput
	}
	for i := range from {
		if from[i] < 0 || from[i] >= vertexCount || to[i] < 0 || to[i] >= vertexCount {
			return nil, ErrInvalidInput
		}
	}
	next := make([]int, vertexCount)
	for v := range next {
		next[v] = -1
	}

	return &AcyclicOracle{
		edgeFrom:    from,
		edgeTo:      to,
		next:        next,
		vertexCount: vertexCount,
	}, nil
}

// TryAdd accepts candidate edge (a,b) = (edgeFrom[e], edgeTo[e]) iff
// following next from b never leads back to a. On acceptance, next[a] is set
// to b.
//
// e must map to a tail vertex with no outgoing selected edge yet; a caller
// that violates this (double-selecting a tail) is a programming error and
// panics — in a correctly composed Hamiltonian-path problem the out-degree
// companion oracle rejects that case first, so TryAdd never observes it.
func (o *AcyclicOracle) TryAdd(e int) bool {
	a, b := o.edgeFrom[e], o.edgeTo[e]
	if o.next[a] != -1 {
		panic(errInvalidOperation)
	}

	cur := b
	for steps := 0; o.next[cur] != -1; steps++ {
		if steps > o.vertexCount {
			panic(errInvalidOperation)
		}
		cur = o.next[cur]
	}
	if cur == a {
		return false // accepting (a,b) would close a cycle
	}

	o.next[a] = b

	return true
}

// Remove deletes the selected edge out of edgeFrom[e]. e must currently be
// selected as next[edgeFrom[e]] == edgeTo[e]; violating that is a
// programming error and panics.
func (o *AcyclicOracle) Remove(e int) {
	a, b := o.edgeFrom[e], o.edgeTo[e]
	if o.next[a] != b {
		panic(errInvalidOperation)
	}
	o.next[a] = -1
}
