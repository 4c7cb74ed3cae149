package validate

import "errors"

var (
	// ErrOutOfBounds indicates an edge or selection index falls outside the
	// instance's declared bounds.
	ErrOutOfBounds = errors.New("validate: index out of bounds")
	// ErrDuplicate indicates the selection lists the same edge index twice.
	ErrDuplicate = errors.New("validate: duplicate element in selection")
	// ErrVertexReused indicates two selected edges claim the same vertex in
	// the same partition (matching families) or the same in/out endpoint
	// (Hamiltonian path).
	ErrVertexReused = errors.New("validate: vertex reused by more than one selected edge")
	// ErrCycleDetected indicates the selected edges of a Hamiltonian-path
	// instance close a cycle instead of forming a simple path.
	ErrCycleDetected = errors.New("validate: cycle detected in selection")
	// ErrWrongArity indicates a 3-D matching edge does not have exactly 3
	// coordinates.
	ErrWrongArity = errors.New("validate: edge does not have the expected arity")
)
