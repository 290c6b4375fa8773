package inverse_test

import (
	"reflect"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/CodyTVWeber/inversemod/inverse"
	"github.com/CodyTVWeber/inversemod/num"
)

func TestSolveProperties(t *testing.T) {
	params := gopter.DefaultTestParameters()
	params.MinSuccessfulTests = 300
	properties := gopter.NewProperties(params)

	solver := inverse.NewSolver(inverse.DefaultParametersLiteral.Compile())

	properties.Property("guaranteed mode is total and valid for coprime inputs", prop.ForAll(
		func(base, modulus uint64) bool {
			out := solver.Solve(base, modulus, inverse.ModeGuaranteed)
			if base%modulus == 0 || num.Gcd(base, modulus) != 1 {
				return !out.OK && out.Reason == inverse.ReasonNotCoprime && out.Gcd == num.Gcd(base, modulus)
			}
			return out.OK && out.Inverse < modulus && num.MulMod(out.Inverse, base, modulus) == 1
		},
		gen.UInt64Range(1, 20000),
		gen.UInt64Range(2, 20000),
	))

	properties.Property("traces stay parallel and bounded", prop.ForAll(
		func(base, modulus uint64) bool {
			out := solver.Solve(base, modulus, inverse.ModeHeuristicOnly)
			if out.Reason == inverse.ReasonNotCoprime {
				return len(out.Multipliers) == 0 && len(out.Remainders) == 0
			}
			if len(out.Remainders) != len(out.Multipliers)+1 {
				return false
			}
			for _, r := range out.Remainders {
				if r >= modulus {
					return false
				}
			}
			return true
		},
		gen.UInt64Range(1, 20000),
		gen.UInt64Range(2, 20000),
	))

	properties.Property("solves are deterministic", prop.ForAll(
		func(base, modulus uint64) bool {
			first := solver.Solve(base, modulus, inverse.ModeHeuristicOnly)
			second := solver.Solve(base, modulus, inverse.ModeHeuristicOnly)
			return reflect.DeepEqual(first, second)
		},
		gen.UInt64Range(1, 20000),
		gen.UInt64Range(2, 20000),
	))

	properties.TestingRun(t)
}
