package inverse

// controller drives the engine forward and recovers from dead ends,
// bounded by the node and backtrack budgets held in the search state.
type controller struct {
	params Parameters
	eng    engine
}

// accepts reports whether next is a valid forward step from remainder r:
// non-zero, strictly decreasing, and not a known-failing remainder.
func (c controller) accepts(st *searchState, r, next uint64) bool {
	return next != 0 && next < r && !st.seen(next)
}

// run searches for a multiplier sequence ending in remainder 1.
// Returns false when the budgets are exhausted first; the state then
// holds the last explored path.
func (c controller) run(st *searchState) bool {
	if st.remainder() == 1 {
		return true
	}

	// forced carries the multiplier imposed by a parity backtrack,
	// replacing the baseline rule for exactly one step.
	var forced uint64

	for len(st.multipliers) < c.params.MaxIterations() {
		r := st.remainder()
		k := forced
		forced = 0
		if k == 0 {
			k = c.eng.nextMultiplier(r)
		}

		if !st.spendNode() {
			return false
		}
		next := c.eng.step(r, k)
		if next == 1 {
			st.push(k, next)
			return true
		}
		if c.accepts(st, r, next) {
			st.push(k, next)
			continue
		}

		// Dead end: zero, non-decreasing, or known-failing remainder.
		// First recovery: substitute the failing multiplier with the
		// first window offset that strictly decreases the remainder.
		if c.params.LocalOffsetRetry() {
			if !st.spendBacktrack() {
				return false
			}
			recovered := false
			for off := uint64(1); off <= uint64(c.params.OffsetWindow()); off++ {
				if !st.spendNode() {
					return false
				}
				alt := c.eng.step(r, k+off)
				if alt == 1 {
					st.push(k+off, alt)
					return true
				}
				if c.accepts(st, r, alt) {
					st.push(k+off, alt)
					recovered = true
					break
				}
			}
			if recovered {
				continue
			}
		}

		// Second recovery: under an even modulus the baseline rule can
		// strip every odd factor from the remainder and strand it on
		// even values that only reach 0. Reintroduce an odd factor by
		// bumping the earliest odd multiplier by 2 and replaying the
		// sequence from that index.
		if !c.params.ParityBacktrack() || c.eng.modulus%2 != 0 {
			return false
		}
		idx := st.earliestOddMultiplier()
		if idx < 0 {
			return false
		}
		if !st.spendBacktrack() {
			return false
		}
		forced = st.multipliers[idx] + 2
		st.truncate(idx)
	}

	return false
}
