// Package randutil centralises random number generation: deterministic
// seeding of math/rand/v2 generators and unbiased bounded sampling for
// the deck shuffle.
package randutil

import rand "math/rand/v2"

const goldenRatio64 = 0x9e3779b97f4a7c15

// New returns a *rand.Rand seeded deterministically from the provided
// int64. The helper centralises how the two 64-bit seeds required by
// rand/v2 are derived so that all call sites get reproducible sequences.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// UniformN returns an unbiased random integer in [0, n) drawn from r.
// Naive modulo reduction over-represents the low residues whenever 2^64
// is not a multiple of n; draws falling in the skewed remainder range
// are rejected and resampled. Since n is tiny relative to the source
// range, the rejection probability is negligible.
func UniformN(r *rand.Rand, n uint64) uint64 {
	if n == 0 {
		panic("randutil: UniformN called with n == 0")
	}

	// -n % n computes 2^64 mod n without overflow. Any contiguous
	// window of values whose length is a multiple of n has uniform
	// residues, so dropping the first 2^64 mod n values suffices.
	threshold := -n % n
	for {
		v := r.Uint64()
		if v >= threshold {
			return v % n
		}
	}
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
