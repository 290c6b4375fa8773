// Package num implements various utility functions regarding numeric types.
package num

import (
	"math/big"
	"math/bits"
)

// Gcd returns the non-negative greatest common divisor of a and b.
// Gcd(0, 0) = 0.
func Gcd(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// ExtendedGcd returns Bezout coefficients coefA, coefB and g
// such that coefA*a + coefB*b = g.
func ExtendedGcd(a, b uint64) (coefA, coefB *big.Int, g uint64) {
	coefA, coefB = big.NewInt(0), big.NewInt(0)
	d := big.NewInt(0).GCD(coefA, coefB, big.NewInt(0).SetUint64(a), big.NewInt(0).SetUint64(b))
	return coefA, coefB, d.Uint64()
}

// ModInverse returns the modular inverse of x modulo m.
// Output is always in [0, m).
// Returns false if x and m are not coprime, or if m is zero.
func ModInverse(x, m uint64) (uint64, bool) {
	if m == 0 {
		return 0, false
	}

	inv := big.NewInt(0).ModInverse(big.NewInt(0).SetUint64(x), big.NewInt(0).SetUint64(m))
	if inv == nil {
		return 0, false
	}

	return inv.Uint64(), true
}

// MulMod returns a * b mod m without overflowing uint64.
// Panics if m is zero.
func MulMod(a, b, m uint64) uint64 {
	a %= m
	b %= m
	hi, lo := bits.Mul64(a, b)
	_, rem := bits.Div64(hi, lo, m)
	return rem
}
