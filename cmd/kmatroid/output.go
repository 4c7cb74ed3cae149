package main

// algorithmResult is one entry of the JSON output's "solutions" array: the
// algorithm that produced it, its certified approximation ratio, and the
// selected element indices.
type algorithmResult struct {
	Algorithm   string  `json:"algorithm"`
	ApproxRatio float64 `json:"approxRatio"`
	Solution    []int   `json:"solution"`
}

// runOutput is the single JSON object printed to stdout on success.
type runOutput struct {
	ProblemName string            `json:"problem_name"`
	Graph       interface{}       `json:"graph"`
	Solutions   []algorithmResult `json:"solutions"`
}
