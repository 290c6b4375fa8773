package inverse_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/CodyTVWeber/inversemod/inverse"
)

func TestDefaultParametersCompile(t *testing.T) {
	assert.NotPanics(t, func() {
		inverse.DefaultParametersLiteral.Compile()
	})

	params := inverse.DefaultParametersLiteral.Compile()
	assert.Equal(t, inverse.DefaultParametersLiteral.MaxIterations, params.MaxIterations())
	assert.Equal(t, inverse.DefaultParametersLiteral.OffsetWindow, params.OffsetWindow())
	assert.Equal(t, inverse.DefaultParametersLiteral.MaxBacktracks, params.MaxBacktracks())
	assert.Equal(t, inverse.DefaultParametersLiteral.MaxNodes, params.MaxNodes())
	assert.False(t, params.NaiveBaseline())
	assert.True(t, params.LocalOffsetRetry())
	assert.True(t, params.ParityBacktrack())
}

func TestParametersCompilePanics(t *testing.T) {
	invalid := []inverse.ParametersLiteral{
		{MaxIterations: 0, MaxNodes: 100},
		{MaxIterations: 100, MaxNodes: 0},
		{MaxIterations: 100, MaxNodes: 100, MaxBacktracks: -1},
		{MaxIterations: 100, MaxNodes: 100, LocalOffsetRetry: true, OffsetWindow: 0},
		{MaxIterations: 100, MaxNodes: 100, OffsetWindow: -3},
	}

	for _, literal := range invalid {
		assert.Panics(t, func() { literal.Compile() }, "%+v", literal)
	}
}
