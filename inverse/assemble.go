package inverse

import (
	"math/big"

	"github.com/CodyTVWeber/inversemod/num"
)

// assemble reduces an accepted multiplier sequence to the inverse value.
// The product is taken with arbitrary-precision arithmetic, reduced
// modulo the modulus at each step.
// Returns false when the result fails the (inverse * seed) mod modulus == 1
// post-condition; that is an internal-consistency bug, not an input problem.
func assemble(seed, modulus uint64, multipliers []uint64) (uint64, bool) {
	mod := big.NewInt(0).SetUint64(modulus)
	prod := big.NewInt(1)
	for _, k := range multipliers {
		prod.Mul(prod, big.NewInt(0).SetUint64(k))
		prod.Mod(prod, mod)
	}

	inv := prod.Uint64()
	if num.MulMod(inv, seed, modulus) != 1 {
		return 0, false
	}

	return inv, true
}
