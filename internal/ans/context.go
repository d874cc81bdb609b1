package ans

import (
	"math"
	"math/bits"
)

// representativeWidth is the Laplace scale used to seed each bucket's
// frequency table, one per bucket index (spec.md §4.5's "W_bucket is the
// representative width for this bucket's index"). The spec ties bucket
// selection to predicted width thresholds (<3,<5,<6,<8,<12,<16,<20,<25,<30,
// else — internal/predict's bucketFor) but never names the representative
// scalar itself; these are the bucket-interval midpoints, with the open
// top bucket given a generous tail width.
var representativeWidth = [NumBuckets]float64{
	1.5, 4, 5.5, 7, 10, 14, 18, 22.5, 27.5, 40,
}

// Context is one bucket's rANS frequency model: a normalized frequency
// table and its cumulative-frequency table, sized to a power-of-two total
// (2^MaxFreqBits) so division-free renormalization is possible.
type Context struct {
	observed    [AlphabetSize]uint32
	Freqs       [AlphabetSize]uint32
	CDF         [AlphabetSize + 1]uint32
	MaxFreqBits uint32
}

// BumpFreq records one more observation of symbol s during encoding. Only
// the running total feeds Finalize (to pick max_freq_bits) — the frequency
// table itself is reseeded entirely from Laplace(0, W), never from observed
// counts, since the decoder has no observations of its own to match against.
func (c *Context) BumpFreq(s uint32) {
	c.observed[s]++
}

// Finalize computes max_freq_bits from the total observation count, then
// rebuilds Freqs/CDF entirely from Laplace(0, representativeWidth[bucket])
// seeding plus normalization to 2^max_freq_bits, per spec.md §4.5 steps 2-4.
// It is safe to call with MaxFreqBits already known (decoder side): pass it
// in via FinalizeWithBits instead.
func (c *Context) Finalize(bucket int) {
	var total uint64
	for _, f := range c.observed {
		total += uint64(f)
	}
	bitsLen := uint32(0)
	if total > 0 {
		bitsLen = uint32(bits.Len64(total)) - 1
	}
	if bitsLen < 8 {
		bitsLen = 8
	}
	c.FinalizeWithBits(bucket, bitsLen)
}

// FinalizeWithBits rebuilds Freqs/CDF for a known max_freq_bits — the path
// the decoder uses, since max_freq_bits is read from the EHD segment rather
// than recomputed from an observation count it never had.
func (c *Context) FinalizeWithBits(bucket int, maxFreqBits uint32) {
	c.MaxFreqBits = maxFreqBits
	target := uint64(1) << maxFreqBits
	w := representativeWidth[bucket]

	// raw is seeded purely from Laplace(0, w) — the decoder has no observed
	// counts to consult (no histogram is transmitted), so bumping a cell here
	// because the encoder happened to observe it would desync Freqs/CDF the
	// moment an observed symbol's Laplace weight rounds to 0.
	raw := make([]uint64, AlphabetSize)
	var rawSum uint64
	for s := 0; s < AlphabetSize; s++ {
		v := Unpack(uint32(s))
		mag := math.Abs(float64(v))
		l := uint64(math.Floor(math.Exp(-mag/w) / (2 * w) * float64(target)))
		raw[s] = l
		rawSum += l
	}

	freqs := make([]uint64, AlphabetSize)
	if rawSum == 0 {
		freqs[0] = target
	} else {
		var scaledSum uint64
		for s, f := range raw {
			nf := f * target / rawSum
			if nf == 0 && f > 0 {
				nf = 1
			}
			freqs[s] = nf
			scaledSum += nf
		}
		reconcile(freqs, scaledSum, target)
	}

	for i := range c.Freqs {
		c.Freqs[i] = uint32(freqs[i])
	}
	var cum uint32
	for i := 0; i < AlphabetSize; i++ {
		c.CDF[i] = cum
		cum += c.Freqs[i]
	}
	c.CDF[AlphabetSize] = cum
}

// reconcile nudges freqs (in place) until it sums to exactly target,
// stealing or granting one unit at a time from/to the currently largest
// cell. Ties go to the lowest index (spec.md §4.5's tie-break rule).
func reconcile(freqs []uint64, sum, target uint64) {
	for sum != target {
		j := largest(freqs, sum > target)
		if sum < target {
			freqs[j]++
			sum++
		} else {
			freqs[j]--
			sum--
		}
	}
}

func largest(freqs []uint64, mustExceedOne bool) int {
	best := 0
	var bestFreq uint64
	for i, f := range freqs {
		if mustExceedOne && f <= 1 {
			continue
		}
		if f > bestFreq {
			bestFreq = f
			best = i
		}
	}
	return best
}

// symbolAt finds the symbol s such that CDF[s] <= cf < CDF[s+1], by binary
// search for the rightmost index whose cumulative frequency doesn't exceed
// cf. Finding the rightmost (not leftmost) match is required because
// zero-frequency symbols share a cumulative value with their neighbor —
// spec.md §4.5's "advance past all tied positions then back up by one".
func (c *Context) symbolAt(cf uint32) uint32 {
	lo, hi := 0, AlphabetSize-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if c.CDF[mid] <= cf {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return uint32(lo)
}
