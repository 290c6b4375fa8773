package num_test

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/CodyTVWeber/inversemod/num"
)

func TestGcd(t *testing.T) {
	assert.Equal(t, uint64(0), num.Gcd(0, 0))
	assert.Equal(t, uint64(5), num.Gcd(5, 0))
	assert.Equal(t, uint64(5), num.Gcd(0, 5))
	assert.Equal(t, uint64(1), num.Gcd(3, 7))
	assert.Equal(t, uint64(2), num.Gcd(4, 6))
	assert.Equal(t, uint64(12), num.Gcd(36, 48))
	assert.Equal(t, uint64(1), num.Gcd(math.MaxUint64, math.MaxUint64-1))
}

func TestExtendedGcd(t *testing.T) {
	pairs := [][2]uint64{
		{3, 7}, {4, 6}, {5, 12}, {31, 37}, {240, 46}, {1, 1}, {17, 0},
	}

	for _, p := range pairs {
		coefA, coefB, g := num.ExtendedGcd(p[0], p[1])
		assert.Equal(t, num.Gcd(p[0], p[1]), g)

		lhs := big.NewInt(0).Mul(coefA, big.NewInt(0).SetUint64(p[0]))
		lhs.Add(lhs, big.NewInt(0).Mul(coefB, big.NewInt(0).SetUint64(p[1])))
		assert.Equal(t, 0, lhs.Cmp(big.NewInt(0).SetUint64(g)), "Bezout identity for %v", p)
	}
}

func TestModInverse(t *testing.T) {
	for m := uint64(2); m < 200; m++ {
		for x := uint64(1); x < m; x++ {
			inv, ok := num.ModInverse(x, m)
			if num.Gcd(x, m) != 1 {
				assert.False(t, ok)
				continue
			}
			assert.True(t, ok)
			assert.Less(t, inv, m)
			assert.Equal(t, uint64(1), num.MulMod(inv, x, m))
		}
	}

	_, ok := num.ModInverse(3, 0)
	assert.False(t, ok)
}

func TestMulMod(t *testing.T) {
	cases := [][3]uint64{
		{3, 5, 7},
		{math.MaxUint64 - 1, math.MaxUint64 - 2, math.MaxUint64},
		{1 << 63, (1 << 63) - 1, (1 << 62) + 11},
		{12345678901234567, 98765432109876543, 1000000007},
	}

	for _, c := range cases {
		want := big.NewInt(0).Mul(big.NewInt(0).SetUint64(c[0]%c[2]), big.NewInt(0).SetUint64(c[1]%c[2]))
		want.Mod(want, big.NewInt(0).SetUint64(c[2]))
		assert.Equal(t, want.Uint64(), num.MulMod(c[0], c[1], c[2]), "MulMod(%d, %d, %d)", c[0], c[1], c[2])
	}
}
