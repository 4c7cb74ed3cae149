// Package kmatroid computes approximate maximum-cardinality k-matroid
// intersections for three common combinatorial problems: bipartite matching
// (k=2), 3-dimensional matching (k=3), and directed Hamiltonian path (k=3,
// modeled as in-degree matroid ∩ out-degree matroid ∩ acyclicity matroid).
//
// Given an instance, the engine produces a monotonically improving sequence
// of feasible solutions together with a provable approximation ratio for
// each, up to a caller-specified wall-clock budget.
//
// The module is organized as:
//
//	matroid/  — stateful, rollback-capable independence oracles (partition,
//	            degree, functional-graph acyclicity)
//	aggregate/ — composes k oracles behind one ordered try/rollback interface
//	search/   — the 1/k baseline greedy sweep and the (t,t+1)-exchange local
//	            search that certifies an approximation ratio at every plateau
//	matching/ — Kuhn's augmenting-path algorithm, the exact k=2 special case
//	problem/  — builders that wire concrete oracles into an aggregator for
//	            each of the three problem families
//	generate/ — random and structured instance generators
//	validate/ — solution validators independent of the engine
//	cmd/kmatroid/ — a reference CLI harness over all of the above
package kmatroid
