// Package batch runs the inverse solver over ranges of inputs and
// aggregates statistics about the heuristic's behavior.
//
// The tooling here only consumes [inverse.Outcome] values; it never
// reaches into the state of an individual search.
package batch

import (
	"sort"

	"github.com/CodyTVWeber/inversemod/inverse"
)

// Record is the per-pair result of a sweep.
type Record struct {
	Base    uint64
	Modulus uint64

	OK            bool
	Method        inverse.Method
	Reason        inverse.Reason
	Inverse       uint64
	Steps         int
	ExploredNodes int
}

// Runner sweeps (base, modulus) pairs with a fixed solver and mode.
type Runner struct {
	solver *inverse.Solver
	mode   inverse.Mode
}

// NewRunner creates a new Runner.
func NewRunner(solver *inverse.Solver, mode inverse.Mode) *Runner {
	return &Runner{
		solver: solver,
		mode:   mode,
	}
}

// Solve runs a single pair and records the outcome.
func (r *Runner) Solve(base, modulus uint64) Record {
	out := r.solver.Solve(base, modulus, r.mode)
	return Record{
		Base:    base,
		Modulus: modulus,

		OK:            out.OK,
		Method:        out.Method,
		Reason:        out.Reason,
		Inverse:       out.Inverse,
		Steps:         len(out.Multipliers),
		ExploredNodes: out.ExploredNodes,
	}
}

// Sweep runs every pair with 1 <= base < modulus for each modulus in
// [minModulus, maxModulus], including non-coprime pairs.
func (r *Runner) Sweep(minModulus, maxModulus uint64) []Record {
	var records []Record
	for m := minModulus; m <= maxModulus; m++ {
		for b := uint64(1); b < m; b++ {
			records = append(records, r.Solve(b, m))
		}
	}
	return records
}

// Sample runs n pairs drawn from the sampler.
func (r *Runner) Sample(sampler *PairSampler, n int, maxModulus uint64) []Record {
	records := make([]Record, 0, n)
	for i := 0; i < n; i++ {
		base, modulus := sampler.SampleCoprimePair(maxModulus)
		records = append(records, r.Solve(base, modulus))
	}
	return records
}

// Summary aggregates sweep records.
type Summary struct {
	Total      int
	Coprime    int
	NotCoprime int

	HeuristicSuccesses int
	FallbackSuccesses  int
	Exhausted          int

	MeanSteps float64
	MaxSteps  int
}

// HeuristicRate returns the share of coprime pairs solved by the
// heuristic alone.
func (s Summary) HeuristicRate() float64 {
	if s.Coprime == 0 {
		return 0
	}
	return float64(s.HeuristicSuccesses) / float64(s.Coprime)
}

// Summarize aggregates records into a Summary.
// Step statistics cover heuristic successes only.
func Summarize(records []Record) Summary {
	var s Summary
	var stepSum int

	s.Total = len(records)
	for _, r := range records {
		if r.Reason == inverse.ReasonNotCoprime {
			s.NotCoprime++
			continue
		}
		s.Coprime++

		switch {
		case r.OK && r.Method == inverse.MethodHeuristic:
			s.HeuristicSuccesses++
			stepSum += r.Steps
			if r.Steps > s.MaxSteps {
				s.MaxSteps = r.Steps
			}
		case r.OK:
			s.FallbackSuccesses++
		default:
			s.Exhausted++
		}
	}

	if s.HeuristicSuccesses > 0 {
		s.MeanSteps = float64(stepSum) / float64(s.HeuristicSuccesses)
	}

	return s
}

// ModulusStats aggregates records sharing one modulus.
type ModulusStats struct {
	Modulus uint64

	Coprime            int
	HeuristicSuccesses int
	MeanSteps          float64
	MaxSteps           int
}

// HeuristicRate returns the share of coprime bases solved by the
// heuristic alone for this modulus.
func (s ModulusStats) HeuristicRate() float64 {
	if s.Coprime == 0 {
		return 0
	}
	return float64(s.HeuristicSuccesses) / float64(s.Coprime)
}

// GroupByModulus aggregates records per modulus, in ascending order.
func GroupByModulus(records []Record) []ModulusStats {
	byModulus := make(map[uint64]*ModulusStats)
	stepSums := make(map[uint64]int)
	var order []uint64

	for _, r := range records {
		st, ok := byModulus[r.Modulus]
		if !ok {
			st = &ModulusStats{Modulus: r.Modulus}
			byModulus[r.Modulus] = st
			order = append(order, r.Modulus)
		}

		if r.Reason == inverse.ReasonNotCoprime {
			continue
		}
		st.Coprime++
		if r.OK && r.Method == inverse.MethodHeuristic {
			st.HeuristicSuccesses++
			stepSums[r.Modulus] += r.Steps
			if r.Steps > st.MaxSteps {
				st.MaxSteps = r.Steps
			}
		}
	}

	stats := make([]ModulusStats, 0, len(order))
	for _, m := range order {
		st := byModulus[m]
		if st.HeuristicSuccesses > 0 {
			st.MeanSteps = float64(stepSums[m]) / float64(st.HeuristicSuccesses)
		}
		stats = append(stats, *st)
	}

	sort.Slice(stats, func(i, j int) bool { return stats[i].Modulus < stats[j].Modulus })

	return stats
}
