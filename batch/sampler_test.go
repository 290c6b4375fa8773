package batch_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CodyTVWeber/inversemod/batch"
	"github.com/CodyTVWeber/inversemod/inverse"
	"github.com/CodyTVWeber/inversemod/num"
)

func TestPairSamplerBounds(t *testing.T) {
	sampler := batch.NewPairSamplerWithSeed([]byte("inversemod-test"))

	for i := 0; i < 1000; i++ {
		base, modulus := sampler.SampleCoprimePair(1 << 16)
		assert.GreaterOrEqual(t, modulus, uint64(2))
		assert.LessOrEqual(t, modulus, uint64(1<<16))
		assert.GreaterOrEqual(t, base, uint64(1))
		assert.Less(t, base, modulus)
		assert.Equal(t, uint64(1), num.Gcd(base, modulus))
	}
}

func TestPairSamplerDeterminism(t *testing.T) {
	first := batch.NewPairSamplerWithSeed([]byte("seed"))
	second := batch.NewPairSamplerWithSeed([]byte("seed"))

	for i := 0; i < 100; i++ {
		b1, m1 := first.SampleCoprimePair(1000)
		b2, m2 := second.SampleCoprimePair(1000)
		assert.Equal(t, b1, b2)
		assert.Equal(t, m1, m2)
	}
}

func TestPairSamplerSampleN(t *testing.T) {
	sampler := batch.NewPairSamplerWithSeed([]byte("seed"))
	for i := 0; i < 1000; i++ {
		assert.Less(t, sampler.SampleN(17), uint64(17))
	}

	assert.Panics(t, func() { sampler.SampleCoprimePair(1) })
}

func TestRunnerSample(t *testing.T) {
	runner := newRunner(inverse.ModeGuaranteed)
	sampler := batch.NewPairSamplerWithSeed([]byte("seed"))

	records := runner.Sample(sampler, 50, 500)
	require.Len(t, records, 50)
	for _, r := range records {
		// Sampled pairs are coprime, so guaranteed mode always answers.
		assert.True(t, r.OK)
		assert.Equal(t, uint64(1), num.MulMod(r.Inverse, r.Base, r.Modulus))
	}
}
