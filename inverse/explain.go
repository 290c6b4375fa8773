package inverse

import (
	"fmt"
	"strings"
)

// Steps returns a human-readable narration of the solve.
// It is a pure formatting function over the trace carried by the Outcome.
func (o Outcome) Steps() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Calculating the inverse of %d mod %d ...\n", o.Base, o.Modulus)

	switch o.Reason {
	case ReasonInvalidInput:
		sb.WriteString("Error: x and y must be positive integers.\n")
		return sb.String()
	case ReasonNotCoprime:
		fmt.Fprintf(&sb, "gcd(%d, %d) = %d, so no inverse exists.\n", o.Base, o.Modulus, o.Gcd)
		return sb.String()
	}

	for i, k := range o.Multipliers {
		fmt.Fprintf(&sb, "Step %d: (%d * %d) mod %d = %d\n",
			i+1, o.Remainders[i], k, o.Modulus, o.Remainders[i+1])
	}

	if !o.OK {
		fmt.Fprintf(&sb, "Search exhausted after exploring %d candidates; no multiplier sequence found.\n",
			o.ExploredNodes)
		return sb.String()
	}

	if o.Method == MethodExtendedEuclid {
		fmt.Fprintf(&sb, "The multiplier search did not reach 1; falling back to the extended Euclidean algorithm.\n")
	} else {
		fmt.Fprintf(&sb, "(k[1] * k[2] * ... * k[n]) mod %d = %d\n", o.Modulus, o.Inverse)
	}

	sb.WriteString("\nFinal values:\n")
	fmt.Fprintf(&sb, "x = %d\n", o.Base)
	fmt.Fprintf(&sb, "y = %d\n", o.Modulus)
	fmt.Fprintf(&sb, "k[] = %v\n", o.Multipliers)
	fmt.Fprintf(&sb, "r[] = %v\n", o.Remainders)
	fmt.Fprintf(&sb, "z = %d\n", o.Inverse)

	fmt.Fprintf(&sb, "\nValidation: ((%d * %d) mod %d) == 1 is %v\n",
		o.Inverse, o.Base, o.Modulus, o.OK)

	return sb.String()
}

// Explain solves base mod modulus in guaranteed mode and narrates the steps.
func Explain(base, modulus uint64) string {
	return Solve(base, modulus, ModeGuaranteed).Steps()
}

// Explanation returns a description of the multiplier-remainder algorithm.
func Explanation() string {
	return `The inverse of x mod y is the z satisfying (z * x) mod y == 1.

Instead of the extended Euclidean algorithm, this solver searches for a
sequence of multipliers k[1..n] that drives a remainder sequence down to 1:

1.  r[0] = x mod y
2.  r[i] = (r[i-1] * k[i]) mod y, with k[i] = y/r[i-1] + 1 and r[i] < r[i-1]
...
n.  r[n] = 1

(k[1] * k[2] * ... * k[n]) mod y = z

Validation step:
(z * x) mod y == 1

The search is a bounded heuristic. When a step reaches 0 or stops
decreasing, the solver retries nearby multipliers and backtracks to the
earliest odd multiplier under an even modulus; when its budgets run out,
guaranteed mode falls back to the extended Euclidean algorithm.`
}
