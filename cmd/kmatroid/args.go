package main

import (
	"fmt"
	"strconv"
)

const (
	defaultSeed          = 42
	defaultTimeLimitSecs = 10
)

// parseInt and parseFloat give the positional-argument subcommands a
// consistent "bad argument" error shape instead of each hand-rolling
// strconv error wrapping.
func parseInt(name, raw string) (int, error) {
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("kmatroid: invalid %s %q: %w", name, raw, err)
	}

	return v, nil
}

func parseFloat(name, raw string) (float64, error) {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("kmatroid: invalid %s %q: %w", name, raw, err)
	}

	return v, nil
}

func intArgOrDefault(args []string, idx int, name string, def int) (int, error) {
	if idx >= len(args) {
		return def, nil
	}

	return parseInt(name, args[idx])
}
