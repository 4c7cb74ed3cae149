package search

import "math"

// exchangeExponent is the literal constant from the k=3 local-search
// approximation bound. The source material carries it with the comment
// "formula to be confirmed" — it derives from a known theoretical bound for
// 3-matroid local search; treat it as a literal, not a tunable, and flag any
// change to it as a paper-level open question, not an engineering one.
const exchangeExponent = -0.3562

// ComputeRatio returns the provable approximation ratio for a t-locally-
// optimal solution (no (t,t+1)-exchange exists) at arity k.
//
// For k=3, t=0 returns 1/k, sidestepping the k=3 formula's singularity at
// t=0 by construction — this is intentional, not a guard clause papering
// over a bug (see spec Open Questions). For k=2 the formula itself gives
// 1/k at t=0. Any other k returns ErrUnsupportedArity, for every t.
//
// Callers that have independently established |S*| == t (the search has
// enumerated up to the solution size, so no larger feasible solution can
// exist) should use ratio 1.0 instead of calling ComputeRatio — that case is
// not a property of t and k alone, so it lives in the caller (Run), not here.
func ComputeRatio(t, k int) (float64, error) {
	switch k {
	case 2:
		return float64(t+1) / float64(t+2), nil
	case 3:
		if t == 0 {
			return 1.0 / float64(k), nil
		}
		return 2.0 / (3 + 2*math.Pow(float64(t), exchangeExponent)), nil
	default:
		return 0, ErrUnsupportedArity
	}
}
