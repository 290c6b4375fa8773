package inverse

import (
	"github.com/bits-and-blooms/bitset"
)

// visitedBound is the largest modulus for which the search keeps a
// per-remainder visited set. Above it the strict-decrease invariant and
// the node budget alone bound the search.
const visitedBound = 1 << 22

// searchState holds the multiplier and remainder sequences of one
// in-flight search, together with its termination budgets.
// It is owned by a single solve call and never shared.
type searchState struct {
	modulus uint64

	multipliers []uint64
	remainders  []uint64

	// visited marks remainders that have appeared on any explored path.
	// A remainder deterministically replays its downstream path, so a
	// revisit after a truncation is a known dead end.
	// Nil when the modulus exceeds visitedBound.
	visited *bitset.BitSet

	nodesLeft      int
	backtracksLeft int
}

// newSearchState creates a searchState seeded with seed = base mod modulus.
func newSearchState(seed, modulus uint64, params Parameters) *searchState {
	st := &searchState{
		modulus: modulus,

		multipliers: make([]uint64, 0, params.MaxIterations()),
		remainders:  make([]uint64, 0, params.MaxIterations()+1),

		nodesLeft:      params.MaxNodes(),
		backtracksLeft: params.MaxBacktracks(),
	}
	if modulus <= visitedBound {
		st.visited = bitset.New(uint(modulus))
	}

	st.remainders = append(st.remainders, seed)
	st.mark(seed)

	return st
}

// remainder returns the current remainder.
func (st *searchState) remainder() uint64 {
	return st.remainders[len(st.remainders)-1]
}

// push appends a forward step.
func (st *searchState) push(k, r uint64) {
	st.multipliers = append(st.multipliers, k)
	st.remainders = append(st.remainders, r)
	st.mark(r)
}

// truncate discards multipliers[idx:] and the remainders they produced.
// Visited marks on the discarded remainders are kept, since replaying
// them would fail the same way.
func (st *searchState) truncate(idx int) {
	st.multipliers = st.multipliers[:idx]
	st.remainders = st.remainders[:idx+1]
}

// seen reports whether r appeared on any explored path.
func (st *searchState) seen(r uint64) bool {
	return st.visited != nil && st.visited.Test(uint(r))
}

func (st *searchState) mark(r uint64) {
	if st.visited != nil {
		st.visited.Set(uint(r))
	}
}

// spendNode consumes one unit of the node budget.
// Returns false when the budget is exhausted.
func (st *searchState) spendNode() bool {
	if st.nodesLeft <= 0 {
		return false
	}
	st.nodesLeft--
	return true
}

// spendBacktrack consumes one unit of the shared backtrack budget.
func (st *searchState) spendBacktrack() bool {
	if st.backtracksLeft <= 0 {
		return false
	}
	st.backtracksLeft--
	return true
}

// earliestOddMultiplier returns the index of the first odd multiplier,
// or -1 if none exists.
func (st *searchState) earliestOddMultiplier() int {
	for i, k := range st.multipliers {
		if k%2 == 1 {
			return i
		}
	}
	return -1
}
