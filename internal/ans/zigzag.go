// Package ans implements the 64-bit, byte-renormalizing, interleaved
// multi-stream rANS entropy coder of spec.md §4.5: one independent stream
// per context bucket, frequency tables reseeded from a Laplace distribution
// on both sides instead of being transmitted.
package ans

// AlphabetSize is the symbol-table size each bucket's frequency table
// covers; the design assumes residuals fit in [-512, 511] (spec.md §4.5).
const AlphabetSize = 1024

// NumBuckets is the number of independent rANS contexts per channel.
const NumBuckets = 10

// Pack zig-zag interleaves a signed residual into the unsigned alphabet:
// pack(k) = 2k if k>=0, else -2k-1.
func Pack(k int32) uint32 {
	if k >= 0 {
		return uint32(2 * k)
	}
	return uint32(-2*k - 1)
}

// Unpack is the inverse of Pack.
func Unpack(s uint32) int32 {
	if s%2 == 0 {
		return int32(s / 2)
	}
	return -int32((s + 1) / 2)
}
