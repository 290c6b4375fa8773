package inverse

// Mode selects the fallback policy of [Solver.Solve].
type Mode int

const (
	// ModeHeuristicOnly returns the heuristic result as-is.
	// Search exhaustion is reported to the caller.
	ModeHeuristicOnly Mode = iota
	// ModeGuaranteed falls back to the extended Euclidean algorithm
	// when the heuristic search is exhausted.
	// It always succeeds for coprime inputs.
	ModeGuaranteed
)

// String returns the string representation of the Mode.
func (m Mode) String() string {
	switch m {
	case ModeHeuristicOnly:
		return "heuristic-only"
	case ModeGuaranteed:
		return "guaranteed"
	}
	return "unknown"
}

// Method identifies which procedure produced an inverse.
type Method int

const (
	// MethodNone is the zero value, set on failed outcomes.
	MethodNone Method = iota
	// MethodHeuristic marks an inverse assembled from a multiplier sequence.
	MethodHeuristic
	// MethodExtendedEuclid marks an inverse computed by the
	// extended Euclidean fallback.
	MethodExtendedEuclid
)

// String returns the string representation of the Method.
func (m Method) String() string {
	switch m {
	case MethodHeuristic:
		return "heuristic"
	case MethodExtendedEuclid:
		return "extendedEuclid"
	}
	return "none"
}

// Reason classifies why a solve failed, or why the fallback ran.
type Reason int

const (
	// ReasonNone is the zero value, set on clean successes.
	ReasonNone Reason = iota
	// ReasonInvalidInput marks a zero base or modulus.
	ReasonInvalidInput
	// ReasonNotCoprime marks inputs with gcd(base, modulus) != 1.
	ReasonNotCoprime
	// ReasonSearchExhausted marks a coprime input for which the
	// bounded search found no multiplier sequence.
	ReasonSearchExhausted
	// ReasonInternalInconsistency marks an accepted multiplier sequence
	// that failed the (inverse * base) mod modulus == 1 post-condition.
	// This indicates a bug in the engine or assembler, not bad input.
	ReasonInternalInconsistency
)

// String returns the string representation of the Reason.
func (r Reason) String() string {
	switch r {
	case ReasonInvalidInput:
		return "invalidInput"
	case ReasonNotCoprime:
		return "notCoprime"
	case ReasonSearchExhausted:
		return "searchExhausted"
	case ReasonInternalInconsistency:
		return "internalInconsistency"
	}
	return "none"
}

// Outcome is the result of a single solve.
//
// For any outcome carrying a trace, len(Remainders) == len(Multipliers) + 1:
// Remainders[0] is the seed base mod modulus, and Remainders[i+1] is
// produced by Multipliers[i].
type Outcome struct {
	// OK reports whether an inverse was found and validated.
	OK bool
	// Inverse satisfies (Inverse * Base) mod Modulus == 1 when OK.
	Inverse uint64
	// Method is the procedure that produced the inverse.
	Method Method
	// Reason is the failure classification.
	// It may be set together with OK when the heuristic trace failed
	// validation and the extended Euclidean fallback supplied the answer.
	Reason Reason
	// Gcd is gcd(Base, Modulus), attached when Reason is ReasonNotCoprime.
	Gcd uint64

	// Base and Modulus echo the inputs.
	Base    uint64
	Modulus uint64

	// Multipliers and Remainders are the search trace.
	// On failed searches they hold the last explored path.
	Multipliers []uint64
	Remainders  []uint64
	// ExploredNodes counts multiplier candidates evaluated by the search.
	ExploredNodes int
}
