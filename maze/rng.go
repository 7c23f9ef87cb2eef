// Package maze - deterministic random streams.
//
// A Generator owns one *rand.Rand. Sequential operations (line carving,
// corridor carving) draw from it directly; parallel passes draw one parent
// value per pass and give every row its own stream derived from it, so the
// outcome is the same for any worker count.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Row streams are created per row
//     and never shared.
package maze

import "math/rand"

// defaultSeed is used when the caller passes seed==0.
const defaultSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand; seed==0 ⇒ defaultSeed.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}
	return rand.New(rand.NewSource(seed))
}

// deriveSeed mixes a parent seed and a stream identifier with a
// SplitMix64-style finalizer.
//
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// rowRNG returns the stream for one row of a pass.
func rowRNG(parent int64, row int) *rand.Rand {
	return rand.New(rand.NewSource(deriveSeed(parent, uint64(row))))
}

// evenIn draws a uniformly random even integer from [lo,hi) after bumping
// lo to even. ok is false when none exists.
func evenIn(r *rand.Rand, lo, hi int) (int, bool) {
	if lo%2 != 0 {
		lo++
	}
	return stepIn(r, lo, hi)
}

// oddIn draws a uniformly random odd integer from [lo,hi) after bumping lo
// to odd. ok is false when none exists.
func oddIn(r *rand.Rand, lo, hi int) (int, bool) {
	if lo%2 == 0 {
		lo++
	}
	return stepIn(r, lo, hi)
}

// stepIn draws from lo, lo+2, lo+4, ... < hi.
func stepIn(r *rand.Rand, lo, hi int) (int, bool) {
	if lo >= hi {
		return 0, false
	}
	n := (hi - lo + 1) / 2
	return lo + 2*r.Intn(n), true
}
