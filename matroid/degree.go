package matroid

// NewDegreeOracle builds an in-degree or out-degree oracle for the
// Hamiltonian-path problem family. Structurally this is a partition matroid
// where the "partition" is by head vertex (in-degree ≤ 1) or tail vertex
// (out-degree ≤ 1) — mechanically identical to PartitionOracle, so it is
// implemented as a thin, semantically-named constructor over it rather than
// a duplicate type.
//
// elementEndpoint[e] should be edges[e].To for an in-degree oracle, or
// edges[e].From for an out-degree oracle; the caller (problem.Hamiltonian)
// decides which.
func NewDegreeOracle(vertexCount int, elementEndpoint []int) (*PartitionOracle, error) {
	return NewPartitionOracle(vertexCount, elementEndpoint)
}
