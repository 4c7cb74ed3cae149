package aggregate

// ApproximationSolution is an immutable snapshot emitted by an algorithm: a
// provable approximation ratio paired with the selection that attains it.
// Selection is materialized in ascending element-index order at the moment
// of emission and is never aliased with engine-internal state, so it
// outlives the engine that produced it.
type ApproximationSolution struct {
	ratio     float64
	selection []int
}

// NewApproximationSolution builds a solution record. selection is copied
// defensively and sorted ascending is assumed of the caller (all producers
// in this module already build selections in ascending order).
func NewApproximationSolution(ratio float64, selection []int) ApproximationSolution {
	cp := make([]int, len(selection))
	copy(cp, selection)

	return ApproximationSolution{ratio: ratio, selection: cp}
}

// Ratio returns the solution's provable approximation ratio, in [0, 1]. It
// is 0 only for a local-search result cut off by its deadline before any
// depth completed.
func (s ApproximationSolution) Ratio() float64 { return s.ratio }

// Selection returns a defensive copy of the selected element indices, in
// ascending order.
func (s ApproximationSolution) Selection() []int {
	cp := make([]int, len(s.selection))
	copy(cp, s.selection)

	return cp
}

// Size returns len(Selection()) without allocating a copy.
func (s ApproximationSolution) Size() int { return len(s.selection) }
