package search

import (
	"context"
	"fmt"

	"github.com/gomatroid/kmatroid/aggregate"
)

// Run performs (t,t+1)-exchange local search: starting from an empty
// selection, it repeatedly looks for a way to remove t elements and add
// back t+1, deepening t only once no such exchange exists at the current
// depth. Every plateau — reached either by exhausting exchanges at depth t
// or by ctx expiring — is emitted as an ApproximationSolution, so the
// returned slice is a trace of certified-ratio solutions in nondecreasing
// selection size, not just a single final answer.
//
// agg must be freshly Reset; Run mutates it in place and leaves it holding
// the final selection when it returns (the last element of the returned
// slice always matches agg.Selection() at return time).
//
// Run returns an error only if agg.Arity() is outside the arities
// ComputeRatio supports ({2, 3}); ctx expiring is not an error; it is
// reported by returning early with fewer plateaus than an unbounded run
// would have produced.
func Run(ctx context.Context, agg *aggregate.Aggregator, opts Options) ([]aggregate.ApproximationSolution, error) {
	ctx = contextOrBackground(ctx)
	opts = opts.normalize()

	k := agg.Arity()
	if _, err := ComputeRatio(0, k); err != nil {
		return nil, err
	}

	n := agg.GroundSetSize()
	solutionMask := make([]bool, n)
	justRemoved := make([]bool, n)

	var solutions []aggregate.ApproximationSolution

	callCount := 0
	deadlineHit := false
	checkDeadline := func() bool {
		if deadlineHit {
			return true
		}
		// Probe on the first entry and on every deadlineCheckInterval-th
		// entry after it, so a context that is already done stops the
		// search before any exchange is tried.
		callCount++
		if (callCount-1)%deadlineCheckInterval != 0 {
			return false
		}
		if ctx.Err() != nil {
			deadlineHit = true
			if opts.Verbose {
				fmt.Fprintf(opts.Log, "search: deadline reached after %d recursion entries\n", callCount)
			}
		}
		return deadlineHit
	}

	// addElements tries to bring addQuantity more elements into the
	// selection, scanning candidates from idx upward. Elements already in
	// the selection and elements frozen by justRemoved (taken out by the
	// enclosing removeAndAdd in this exchange attempt) are skipped, so the
	// search never re-adds what it just gave up.
	var addElements func(idx, addQuantity int) bool
	addElements = func(idx, addQuantity int) bool {
		if checkDeadline() {
			return false
		}
		if addQuantity == 0 {
			return true
		}
		if idx == n {
			return false
		}
		if justRemoved[idx] || solutionMask[idx] {
			return addElements(idx+1, addQuantity)
		}
		if agg.TryAdd(idx) {
			solutionMask[idx] = true
			if addElements(idx+1, addQuantity-1) {
				return true
			}
			agg.Remove(idx)
			solutionMask[idx] = false
		}
		return addElements(idx+1, addQuantity)
	}

	// removeAndAdd tries every way of removing removeQuantity elements
	// currently in the selection (scanning from idx upward) followed by
	// addElements bringing in addQuantity replacements. On failure it
	// restores exactly what it removed via MustReadd before backtracking —
	// the aggregator's independence structure guarantees that re-add
	// succeeds, since nothing else changed state in between.
	var removeAndAdd func(idx, removeQuantity, addQuantity int) bool
	removeAndAdd = func(idx, removeQuantity, addQuantity int) bool {
		if checkDeadline() {
			return false
		}
		if removeQuantity == 0 {
			return addElements(0, addQuantity)
		}
		if idx == n {
			return false
		}
		if solutionMask[idx] {
			agg.Remove(idx)
			solutionMask[idx] = false
			justRemoved[idx] = true
			if removeAndAdd(idx+1, removeQuantity-1, addQuantity) {
				return true
			}
			justRemoved[idx] = false
			agg.MustReadd(idx)
			solutionMask[idx] = true
		}
		return removeAndAdd(idx+1, removeQuantity, addQuantity)
	}

	solutionSize := 0
	for t := 0; ; t++ {
		if checkDeadline() {
			solutions = append(solutions, trailingSolution(agg, t, k))
			return solutions, nil
		}

		for {
			if deadlineHit {
				break
			}
			success := false
			for i := range justRemoved {
				justRemoved[i] = false
			}
			for i := 0; i <= t; i++ {
				if deadlineHit {
					break
				}
				if removeAndAdd(0, i, i+1) {
					solutionSize++
					success = true
					break
				}
			}
			if t == solutionSize {
				break
			}
			if !success || deadlineHit {
				break
			}
		}

		if deadlineHit {
			solutions = append(solutions, trailingSolution(agg, t, k))
			return solutions, nil
		}

		ratio, err := ComputeRatio(t, k)
		if err != nil {
			return nil, err
		}
		if t == solutionSize {
			ratio = 1.0
		}
		if opts.Verbose {
			fmt.Fprintf(opts.Log, "search: plateau t=%d size=%d ratio=%.4f\n", t, solutionSize, ratio)
		}
		solutions = append(solutions, aggregate.NewApproximationSolution(ratio, agg.Selection()))

		if t == solutionSize {
			return solutions, nil
		}
	}
}

// trailingSolution builds the ApproximationSolution emitted when the
// deadline fires mid-depth-t: the certified ratio regresses to whatever was
// proven at the last completed depth, t-1 (or 0 if the deadline hit before
// depth 0 ever completed — a selection with no certified exchange bound at
// all still gets reported, just with ratio 0).
func trailingSolution(agg *aggregate.Aggregator, t, k int) aggregate.ApproximationSolution {
	if t == 0 {
		return aggregate.NewApproximationSolution(0, agg.Selection())
	}
	ratio, err := ComputeRatio(t-1, k)
	if err != nil {
		ratio = 0
	}
	return aggregate.NewApproximationSolution(ratio, agg.Selection())
}
