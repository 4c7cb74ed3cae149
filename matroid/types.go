package matroid

// Oracle is a stateful, rollback-capable incremental independence check for
// one matroid over a shared, dense integer ground set [0, N).
//
// Contract:
//   - TryAdd(e): e must not already be selected. Returns true and mutates
//     state (S ← S ∪ {e}) iff accepting e keeps S independent; otherwise
//     returns false and leaves state byte-identical to the pre-call state.
//   - Remove(e): e must currently be selected. Always succeeds; S ← S \ {e}.
//
// Implementations never allocate inside TryAdd/Remove; every backing slice
// is sized once at construction.
type Oracle interface {
	// TryAdd attempts to add element e to the oracle's selected set.
	TryAdd(e int) bool

	// Remove deletes element e from the oracle's selected set.
	Remove(e int)
}
