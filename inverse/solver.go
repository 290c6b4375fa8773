package inverse

import (
	"github.com/CodyTVWeber/inversemod/num"
)

// Solver computes modular inverses using the multiplier-remainder search.
// A Solver is read-only and safe for concurrent use: every Solve call
// owns a fresh search state.
type Solver struct {
	params Parameters
}

// NewSolver creates a new Solver.
func NewSolver(params Parameters) *Solver {
	return &Solver{
		params: params,
	}
}

// Parameters returns the parameters of the Solver.
func (s *Solver) Parameters() Parameters {
	return s.params
}

// Solve computes an inverse z with (z * base) mod modulus == 1.
//
// Inputs must be positive. Non-coprime inputs are reported as
// [ReasonNotCoprime] with the gcd attached, without running the search.
// In [ModeHeuristicOnly], search exhaustion is a normal outcome with
// [ReasonSearchExhausted]; in [ModeGuaranteed] the extended Euclidean
// fallback supplies the answer instead.
func (s *Solver) Solve(base, modulus uint64, mode Mode) Outcome {
	if base == 0 || modulus == 0 {
		return Outcome{
			Reason:  ReasonInvalidInput,
			Base:    base,
			Modulus: modulus,
		}
	}

	seed := base % modulus
	if seed == 0 {
		return Outcome{
			Reason:  ReasonNotCoprime,
			Gcd:     num.Gcd(base, modulus),
			Base:    base,
			Modulus: modulus,
		}
	}
	if g := num.Gcd(base, modulus); g != 1 {
		return Outcome{
			Reason:  ReasonNotCoprime,
			Gcd:     g,
			Base:    base,
			Modulus: modulus,
		}
	}

	st := newSearchState(seed, modulus, s.params)
	ctrl := controller{
		params: s.params,
		eng:    engine{modulus: modulus, naive: s.params.NaiveBaseline()},
	}

	if ctrl.run(st) {
		if inv, ok := assemble(seed, modulus, st.multipliers); ok {
			return Outcome{
				OK:      true,
				Inverse: inv,
				Method:  MethodHeuristic,
				Base:    base,
				Modulus: modulus,

				Multipliers:   st.multipliers,
				Remainders:    st.remainders,
				ExploredNodes: s.params.MaxNodes() - st.nodesLeft,
			}
		}
		return s.fallback(base, modulus, mode, st, ReasonInternalInconsistency)
	}

	return s.fallback(base, modulus, mode, st, ReasonSearchExhausted)
}

// fallback finishes a solve whose heuristic search failed with the given
// reason. In guaranteed mode it computes the inverse with the extended
// Euclidean algorithm, keeping the reason attached as a diagnostic.
func (s *Solver) fallback(base, modulus uint64, mode Mode, st *searchState, reason Reason) Outcome {
	explored := s.params.MaxNodes() - st.nodesLeft

	if mode == ModeGuaranteed {
		if inv, ok := num.ModInverse(base, modulus); ok {
			r := reason
			if r == ReasonSearchExhausted {
				// Exhaustion is expected of the heuristic; only an
				// inconsistent trace is worth surfacing on success.
				r = ReasonNone
			}
			return Outcome{
				OK:      true,
				Inverse: inv,
				Method:  MethodExtendedEuclid,
				Reason:  r,
				Base:    base,
				Modulus: modulus,

				Multipliers:   st.multipliers,
				Remainders:    st.remainders,
				ExploredNodes: explored,
			}
		}
	}

	return Outcome{
		Reason:  reason,
		Base:    base,
		Modulus: modulus,

		Multipliers:   st.multipliers,
		Remainders:    st.remainders,
		ExploredNodes: explored,
	}
}

// Solve computes an inverse using [DefaultParametersLiteral].
func Solve(base, modulus uint64, mode Mode) Outcome {
	return NewSolver(DefaultParametersLiteral.Compile()).Solve(base, modulus, mode)
}
