package aggregate

import "github.com/gomatroid/kmatroid/matroid"

// Aggregator composes k matroid oracles over a common ground set
// [0, GroundSetSize()) and tracks their intersection S* in member.
//
// Invariants (hold between any two public calls):
//  1. Each oracle's internal selected set is independent in its matroid.
//  2. member[e] iff every oracle currently reports e selected.
//  3. After a rejected TryAdd, state is byte-identical to the pre-call state.
type Aggregator struct {
	oracles       []matroid.Oracle
	groundSetSize int
	member        []bool
}

// New composes the given oracles, in the order supplied, over a ground set
// of size groundSetSize. TryAdd always consults oracles in this same order
// and, on a rejection, removes e from the oracles that had already
// accepted it, in that same order.
//
// Returns ErrInvalidInput if groundSetSize < 0 or no oracles are given.
func New(groundSetSize int, oracles ...matroid.Oracle) (*Aggregator, error) {
	if groundSetSize < 0 || len(oracles) == 0 {
		return nil, ErrInvalidInput
	}

	return &Aggregator{
		oracles:       oracles,
		groundSetSize: groundSetSize,
		member:        make([]bool, groundSetSize),
	}, nil
}

// GroundSetSize returns N, the size of the shared ground set.
func (a *Aggregator) GroundSetSize() int { return a.groundSetSize }

// Arity returns k, the number of composed oracles.
func (a *Aggregator) Arity() int { return len(a.oracles) }

// Member reports whether element e is currently in the common intersection.
func (a *Aggregator) Member(e int) bool { return a.member[e] }

// TryAdd attempts to add e to every oracle, in order. On the first
// rejection, already-accepted oracles are rolled back via Remove and TryAdd
// returns false with no observable state change. On full acceptance,
// member[e] is set and TryAdd returns true.
//
// e must not already be a member; violating that is a programming error in
// the caller (baseline/search never call TryAdd on a current member).
func (a *Aggregator) TryAdd(e int) bool {
	accepted := 0
	for _, o := range a.oracles {
		if !o.TryAdd(e) {
			for i := 0; i < accepted; i++ {
				a.oracles[i].Remove(e)
			}

			return false
		}
		accepted++
	}
	a.member[e] = true

	return true
}

// Remove deletes e from every oracle and clears its membership. e must
// currently be a member; violating that is a programming error and panics.
func (a *Aggregator) Remove(e int) {
	if !a.member[e] {
		panic(errInvalidOperation)
	}
	for _, o := range a.oracles {
		o.Remove(e)
	}
	a.member[e] = false
}

// MustReadd re-adds an element that the caller has already proven must
// succeed (used by local search to undo a speculative removal). If the
// underlying TryAdd unexpectedly fails, that is an internal invariant
// violation — not a data error — and MustReadd panics rather than
// propagating a bool the caller has no sane way to handle.
func (a *Aggregator) MustReadd(e int) {
	if !a.TryAdd(e) {
		panic(errInvalidOperation)
	}
}

// Reset removes every currently-selected element, in ascending index order,
// restoring every oracle to the empty-set state.
func (a *Aggregator) Reset() {
	for e := 0; e < a.groundSetSize; e++ {
		if a.member[e] {
			a.Remove(e)
		}
	}
}

// Size returns |S*|, the current size of the common intersection.
func (a *Aggregator) Size() int {
	n := 0
	for _, m := range a.member {
		if m {
			n++
		}
	}

	return n
}

// Selection materializes the current common intersection in ascending
// element-index order.
func (a *Aggregator) Selection() []int {
	out := make([]int, 0, a.groundSetSize)
	for e := 0; e < a.groundSetSize; e++ {
		if a.member[e] {
			out = append(out, e)
		}
	}

	return out
}
