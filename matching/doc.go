// Package matching implements Kuhn's augmenting-path algorithm for exact
// maximum bipartite matching — the k=2 special case where local search's
// generic exchange machinery is unnecessary and a direct combinatorial
// algorithm both runs faster and always certifies ratio 1.0.
package matching
