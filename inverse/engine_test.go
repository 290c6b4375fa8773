package inverse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextMultiplier(t *testing.T) {
	corrected := engine{modulus: 12}
	assert.Equal(t, uint64(3), corrected.nextMultiplier(5))
	assert.Equal(t, uint64(5), corrected.nextMultiplier(3))
	// Corrected rule ignores the divides-evenly case.
	assert.Equal(t, uint64(4), corrected.nextMultiplier(4))

	naive := engine{modulus: 12, naive: true}
	assert.Equal(t, uint64(3), naive.nextMultiplier(5))
	assert.Equal(t, uint64(3), naive.nextMultiplier(4))
	// The naive divides-evenly branch steps straight to zero.
	assert.Equal(t, uint64(0), naive.step(4, naive.nextMultiplier(4)))
}

// The corrected rule keeps r*k in (modulus, modulus+r], so each step
// lands in (0, r] and reaches exactly r only when r divides the modulus.
func TestCorrectedStepNeverZero(t *testing.T) {
	for m := uint64(2); m <= 100; m++ {
		e := engine{modulus: m}
		for r := uint64(1); r < m; r++ {
			next := e.step(r, e.nextMultiplier(r))
			assert.NotZero(t, next)
			assert.LessOrEqual(t, next, r)
			if m%r != 0 {
				assert.Less(t, next, r)
			}
		}
	}
}

func TestSearchStateTruncate(t *testing.T) {
	params := DefaultParametersLiteral.Compile()
	st := newSearchState(5, 12, params)

	st.push(3, 3)
	st.push(5, 2)
	assert.Equal(t, []uint64{3, 5}, st.multipliers)
	assert.Equal(t, []uint64{5, 3, 2}, st.remainders)

	st.truncate(0)
	assert.Empty(t, st.multipliers)
	assert.Equal(t, []uint64{5}, st.remainders)

	// Discarded remainders stay marked as known dead ends.
	assert.True(t, st.seen(3))
	assert.True(t, st.seen(2))
}

func TestSearchStateBudgets(t *testing.T) {
	literal := DefaultParametersLiteral
	literal.MaxNodes = 2
	literal.MaxBacktracks = 1
	st := newSearchState(5, 12, literal.Compile())

	assert.True(t, st.spendNode())
	assert.True(t, st.spendNode())
	assert.False(t, st.spendNode())

	assert.True(t, st.spendBacktrack())
	assert.False(t, st.spendBacktrack())
}

func TestEarliestOddMultiplier(t *testing.T) {
	params := DefaultParametersLiteral.Compile()
	st := newSearchState(11, 12, params)

	assert.Equal(t, -1, st.earliestOddMultiplier())

	st.push(2, 10)
	st.push(3, 6)
	st.push(5, 2)
	assert.Equal(t, 1, st.earliestOddMultiplier())
}
