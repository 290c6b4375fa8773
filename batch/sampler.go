package batch

import (
	"crypto/rand"
	"math"

	"golang.org/x/crypto/blake2b"

	"github.com/CodyTVWeber/inversemod/num"
)

// bufSize is the default buffer size of PairSampler.
const bufSize = 8192

// PairSampler samples (base, modulus) pairs from uniform distribution.
// This uses blake2b as a underlying prng, so sampling is deterministic
// per seed.
type PairSampler struct {
	prng blake2b.XOF

	buf [bufSize]byte
	ptr int
}

// NewPairSampler creates a new PairSampler.
//
// Panics when read from crypto/rand or blake2b initialization fails.
func NewPairSampler() *PairSampler {
	seed := make([]byte, 16)
	if _, err := rand.Read(seed); err != nil {
		panic(err)
	}
	return NewPairSamplerWithSeed(seed)
}

// NewPairSamplerWithSeed creates a new PairSampler, with user supplied seed.
//
// Panics when blake2b initialization fails.
func NewPairSamplerWithSeed(seed []byte) *PairSampler {
	prng, err := blake2b.NewXOF(blake2b.OutputLengthUnknown, nil)
	if err != nil {
		panic(err)
	}
	if _, err = prng.Write(seed); err != nil {
		panic(err)
	}

	return &PairSampler{
		prng: prng,

		buf: [bufSize]byte{},
		ptr: bufSize,
	}
}

// Sample uniformly samples a random uint64.
func (s *PairSampler) Sample() uint64 {
	if s.ptr == bufSize {
		if _, err := s.prng.Read(s.buf[:]); err != nil {
			panic(err)
		}
		s.ptr = 0
	}

	var res uint64
	res |= uint64(s.buf[s.ptr+0])
	res |= uint64(s.buf[s.ptr+1]) << 8
	res |= uint64(s.buf[s.ptr+2]) << 16
	res |= uint64(s.buf[s.ptr+3]) << 24
	res |= uint64(s.buf[s.ptr+4]) << 32
	res |= uint64(s.buf[s.ptr+5]) << 40
	res |= uint64(s.buf[s.ptr+6]) << 48
	res |= uint64(s.buf[s.ptr+7]) << 56
	s.ptr += 8

	return res
}

// SampleN uniformly samples a random integer in [0, N).
func (s *PairSampler) SampleN(N uint64) uint64 {
	bound := math.MaxUint64 - (math.MaxUint64 % N)
	for {
		res := s.Sample()
		if res < bound {
			return res % N
		}
	}
}

// SampleCoprimePair samples a coprime pair with
// 1 <= base < modulus <= maxModulus, by rejection.
//
// Panics if maxModulus < 2.
func (s *PairSampler) SampleCoprimePair(maxModulus uint64) (base, modulus uint64) {
	if maxModulus < 2 {
		panic("maxModulus must be at least 2")
	}

	for {
		modulus = 2 + s.SampleN(maxModulus-1)
		base = 1 + s.SampleN(modulus-1)
		if num.Gcd(base, modulus) == 1 {
			return base, modulus
		}
	}
}
