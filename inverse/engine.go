package inverse

import (
	"github.com/CodyTVWeber/inversemod/num"
)

// engine proposes per-step multipliers for the remainder reduction.
type engine struct {
	modulus uint64
	naive   bool
}

// nextMultiplier returns the baseline multiplier for remainder r.
//
// The corrected rule is k = modulus/r + 1 uniformly, which keeps
// modulus < r*k and so guarantees a non-zero quotient step.
// The naive rule uses k = modulus / r when r divides the modulus evenly,
// which drives the remainder to exactly 0.
func (e engine) nextMultiplier(r uint64) uint64 {
	if e.naive && e.modulus%r == 0 {
		return e.modulus / r
	}
	return e.modulus/r + 1
}

// step returns r * k mod modulus.
func (e engine) step(r, k uint64) uint64 {
	return num.MulMod(r, k, e.modulus)
}
