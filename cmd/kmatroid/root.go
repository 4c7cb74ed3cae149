package main

import "github.com/spf13/cobra"

// rootCmd is the kmatroid CLI: a thin reference harness over the
// problem/generate/search/matching/validate packages, used to exercise the
// library end to end and print a JSON result. It carries no flags of its
// own — every subcommand takes positional arguments, matching the engine's
// own preference for explicit constructor parameters over configuration.
var rootCmd = &cobra.Command{
	Use:   "kmatroid",
	Short: "Approximate k-matroid intersection solver",
	Long: "kmatroid builds bipartite matching, 3-dimensional matching, and directed\n" +
		"Hamiltonian path instances, solves them with the baseline greedy sweep,\n" +
		"(t,t+1)-exchange local search, and (for bipartite) Kuhn's augmenting-path\n" +
		"matcher, and prints a validated JSON result.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddCommand(bipartiteCmd)
	rootCmd.AddCommand(threeDMatchingCmd)
	rootCmd.AddCommand(hamiltonianCmd)
}
