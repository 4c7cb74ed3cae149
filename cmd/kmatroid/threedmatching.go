package main

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/gomatroid/kmatroid/generate"
	"github.com/gomatroid/kmatroid/problem"
	"github.com/gomatroid/kmatroid/search"
	"github.com/gomatroid/kmatroid/validate"
)

var threeDMatchingCmd = &cobra.Command{
	Use:   "3dmatching <n> <p> [seed] [timeLimitSec]",
	Short: "Solve a random 3-dimensional matching instance",
	Args:  cobra.RangeArgs(2, 4),
	RunE:  runThreeDMatching,
}

type threeDGraph struct {
	N     int      `json:"n"`
	Edges [][3]int `json:"edges"`
}

func runThreeDMatching(_ *cobra.Command, args []string) error {
	logger := newLogger()

	n, err := parseInt("n", args[0])
	if err != nil {
		return err
	}
	p, err := parseFloat("p", args[1])
	if err != nil {
		return err
	}
	seed, err := intArgOrDefault(args, 2, "seed", defaultSeed)
	if err != nil {
		return err
	}
	timeLimitSec, err := intArgOrDefault(args, 3, "timeLimitSec", defaultTimeLimitSecs)
	if err != nil {
		return err
	}

	edges := generate.Tripartite3D(n, p, rand.New(rand.NewSource(int64(seed))))
	logger.Info().Int("n", n).Float64("p", p).Int("edges", len(edges)).Msg("generated 3-dimensional matching instance")

	results := make([]algorithmResult, 0, 2)

	agg, err := problem.DDimensionalMatching(n, 3, toIntSlices(edges))
	if err != nil {
		return fmt.Errorf("kmatroid: %w", err)
	}

	baseline := search.Baseline(agg)
	if err := validate.ThreeDMatching(n, edges, baseline.Selection()); err != nil {
		return fmt.Errorf("kmatroid: baseline produced an infeasible solution: %w", err)
	}
	logger.Info().Str("algorithm", "baseline").Int("size", baseline.Size()).Msg("solved")
	results = append(results, algorithmResult{Algorithm: "baseline", ApproxRatio: baseline.Ratio(), Solution: baseline.Selection()})
	agg.Reset()

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(timeLimitSec)*time.Second)
	defer cancel()
	solutions, err := search.Run(ctx, agg, search.Options{Verbose: true, Log: engineLogWriter{logger}})
	if err != nil {
		return fmt.Errorf("kmatroid: %w", err)
	}
	final := solutions[len(solutions)-1]
	if err := validate.ThreeDMatching(n, edges, final.Selection()); err != nil {
		return fmt.Errorf("kmatroid: local search produced an infeasible solution: %w", err)
	}
	logger.Info().Str("algorithm", "localsearch").Int("size", final.Size()).Float64("ratio", final.Ratio()).Msg("solved")
	results = append(results, algorithmResult{Algorithm: "localsearch", ApproxRatio: final.Ratio(), Solution: final.Selection()})

	out := runOutput{
		ProblemName: "3dmatching",
		Graph:       threeDGraph{N: n, Edges: edges},
		Solutions:   results,
	}

	enc := json.NewEncoder(os.Stdout)
	return enc.Encode(out)
}

// toIntSlices adapts the fixed-arity [3]int hyperedges generate.Tripartite3D
// produces to the variable-arity [][]int problem.DDimensionalMatching
// accepts, since the latter is generic over d.
func toIntSlices(edges [][3]int) [][]int {
	out := make([][]int, len(edges))
	for i, e := range edges {
		out[i] = []int{e[0], e[1], e[2]}
	}

	return out
}
