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

const defaultMinPlantedPathLen = 0

var hamiltonianCmd = &cobra.Command{
	Use:   "hamiltonian <n> <p> [minPlantedPathLen] [seed] [timeLimitSec]",
	Short: "Solve a random directed Hamiltonian path instance",
	Args:  cobra.RangeArgs(2, 5),
	RunE:  runHamiltonian,
}

type hamiltonianGraph struct {
	N     int      `json:"n"`
	Edges [][2]int `json:"edges"`
}

func runHamiltonian(_ *cobra.Command, args []string) error {
	logger := newLogger()

	n, err := parseInt("n", args[0])
	if err != nil {
		return err
	}
	p, err := parseFloat("p", args[1])
	if err != nil {
		return err
	}
	minPlantedPathLen, err := intArgOrDefault(args, 2, "minPlantedPathLen", defaultMinPlantedPathLen)
	if err != nil {
		return err
	}
	seed, err := intArgOrDefault(args, 3, "seed", defaultSeed)
	if err != nil {
		return err
	}
	timeLimitSec, err := intArgOrDefault(args, 4, "timeLimitSec", defaultTimeLimitSecs)
	if err != nil {
		return err
	}

	edges := generate.RandomDirected(n, p, minPlantedPathLen, rand.New(rand.NewSource(int64(seed))))
	logger.Info().Int("n", n).Float64("p", p).Int("minPlantedPathLen", minPlantedPathLen).Int("edges", len(edges)).Msg("generated Hamiltonian-path instance")

	results := make([]algorithmResult, 0, 2)

	agg, err := problem.Hamiltonian(n, edges)
	if err != nil {
		return fmt.Errorf("kmatroid: %w", err)
	}

	baseline := search.Baseline(agg)
	if err := validate.HamiltonianPath(n, edges, baseline.Selection()); err != nil {
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
	if err := validate.HamiltonianPath(n, edges, final.Selection()); err != nil {
		return fmt.Errorf("kmatroid: local search produced an infeasible solution: %w", err)
	}
	logger.Info().Str("algorithm", "localsearch").Int("size", final.Size()).Float64("ratio", final.Ratio()).Msg("solved")
	results = append(results, algorithmResult{Algorithm: "localsearch", ApproxRatio: final.Ratio(), Solution: final.Selection()})

	out := runOutput{
		ProblemName: "hamiltonian",
		Graph:       hamiltonianGraph{N: n, Edges: edges},
		Solutions:   results,
	}

	enc := json.NewEncoder(os.Stdout)
	return enc.Encode(out)
}
