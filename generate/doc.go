// Package generate produces random and structured problem instances for the
// three families this system solves. Every function that takes a *rand.Rand
// is deterministic given a fixed seed: edges are emitted in a fixed
// outer-loop-first order and randomness is drawn from the supplied source in
// that same order, so re-running with the same seed reproduces byte-identical
// edge lists.
package generate
