// Package inverse implements a modular inverse search based on
// iterative remainder reduction with bounded backtracking.
//
// For a base x and modulus y, the search picks a sequence of multipliers
// k[1..n] driving the remainder sequence r[i] = r[i-1] * k[i] mod y down to 1.
// The inverse is then the product of the multipliers modulo y.
// The search is a heuristic and may exhaust its budgets without finding
// a sequence; [ModeGuaranteed] falls back to the extended Euclidean
// algorithm so that every coprime input still gets a validated answer.
package inverse

// ParametersLiteral is a structure for search parameters.
type ParametersLiteral struct {
	// MaxIterations is the maximum length of the multiplier sequence.
	MaxIterations int
	// OffsetWindow is the number of offsets k+1 ... k+W tried
	// in place of a failing multiplier k.
	OffsetWindow int
	// MaxBacktracks is the shared cap on recovery attempts,
	// counting both offset retries and parity backtracks.
	MaxBacktracks int
	// MaxNodes is the cap on explored multiplier candidates.
	MaxNodes int

	// NaiveBaseline selects the original multiplier rule, which uses
	// k = modulus / r when r divides the modulus evenly.
	// That rule drives the remainder to exactly 0 in the divides-evenly
	// case and is kept only for demonstrating the known dead end.
	// The corrected rule uses k = modulus/r + 1 uniformly.
	NaiveBaseline bool
	// LocalOffsetRetry enables substituting a failing multiplier with
	// the first offset in the window that strictly decreases the remainder.
	LocalOffsetRetry bool
	// ParityBacktrack enables the earliest-odd-multiplier backtrack
	// under an even modulus.
	ParityBacktrack bool
}

// DefaultParametersLiteral is the recommended parameter set.
// It is guaranteed to be compiled without panics.
var DefaultParametersLiteral = ParametersLiteral{
	MaxIterations: 128,
	OffsetWindow:  4,
	MaxBacktracks: 5,
	MaxNodes:      2000,

	LocalOffsetRetry: true,
	ParityBacktrack:  true,
}

// Compile transforms ParametersLiteral to read-only Parameters.
// If there is any invalid parameter in the literal, it panics.
func (p ParametersLiteral) Compile() Parameters {
	switch {
	case p.MaxIterations <= 0:
		panic("MaxIterations must be positive")
	case p.MaxNodes <= 0:
		panic("MaxNodes must be positive")
	case p.MaxBacktracks < 0:
		panic("MaxBacktracks must be non-negative")
	case p.LocalOffsetRetry && p.OffsetWindow <= 0:
		panic("OffsetWindow must be positive when LocalOffsetRetry is set")
	case p.OffsetWindow < 0:
		panic("OffsetWindow must be non-negative")
	}

	return Parameters{
		maxIterations: p.MaxIterations,
		offsetWindow:  p.OffsetWindow,
		maxBacktracks: p.MaxBacktracks,
		maxNodes:      p.MaxNodes,

		naiveBaseline:    p.NaiveBaseline,
		localOffsetRetry: p.LocalOffsetRetry,
		parityBacktrack:  p.ParityBacktrack,
	}
}

// Parameters is a read-only structure for search parameters.
type Parameters struct {
	maxIterations int
	offsetWindow  int
	maxBacktracks int
	maxNodes      int

	naiveBaseline    bool
	localOffsetRetry bool
	parityBacktrack  bool
}

// MaxIterations returns the maximum length of the multiplier sequence.
func (p Parameters) MaxIterations() int {
	return p.maxIterations
}

// OffsetWindow returns the offset retry window size.
func (p Parameters) OffsetWindow() int {
	return p.offsetWindow
}

// MaxBacktracks returns the shared cap on recovery attempts.
func (p Parameters) MaxBacktracks() int {
	return p.maxBacktracks
}

// MaxNodes returns the cap on explored multiplier candidates.
func (p Parameters) MaxNodes() int {
	return p.maxNodes
}

// NaiveBaseline returns whether the original multiplier rule is used.
func (p Parameters) NaiveBaseline() bool {
	return p.naiveBaseline
}

// LocalOffsetRetry returns whether offset retries are enabled.
func (p Parameters) LocalOffsetRetry() bool {
	return p.localOffsetRetry
}

// ParityBacktrack returns whether the earliest-odd-multiplier
// backtrack is enabled.
func (p Parameters) ParityBacktrack() bool {
	return p.parityBacktrack
}
