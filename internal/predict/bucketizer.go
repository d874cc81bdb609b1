// Package predict exposes the predict(pos, level, channel) -> (bucket,
// predicted) contract of spec.md §4.4: the encoder writes coefficient minus
// predicted into the rANS stream for the returned bucket, and the decoder,
// walking the identical scan order, recomputes the same pair from causal
// neighbors before adding back the decoded residual.
package predict

import (
	"math"

	"github.com/twindragon/frif/internal/lattice"
	"github.com/twindragon/frif/internal/modeling"
)

// NumBuckets is the fixed rANS context count per channel (spec.md §4.4/§4.5).
const NumBuckets = 10

// Result is one predict() answer.
type Result struct {
	Bucket    int
	Predicted int32
}

// Predict computes the context bucket and predicted value for the
// coefficient at image position pos, tree level level (level >= 1), and
// channel, using the trained model. Levels 0 (tree positions 0 and 1) are
// not handled here — use LowFrequency for those.
func Predict(lat *lattice.Lattice, m *modeling.Model, pos lattice.Vec, level uint8, channel int) Result {
	n := modeling.Neighbors(lat, pos, level, channel)
	group := modeling.GroupFor(level, lat.Depth)

	q := m.Width[channel][group]
	grad := modeling.Gradients(n)
	var width float64
	for i := 0; i < 6; i++ {
		width += float64(q[i]) * grad[i]
	}

	p := m.Value[channel][group]
	var predicted float64
	for i := 0; i < 6; i++ {
		predicted += float64(p[i]) * float64(n[i])
	}

	return Result{Bucket: bucketFor(width), Predicted: int32(math.Floor(predicted))}
}

// bucketFor maps a predicted Laplacian width to one of the 10 fixed buckets
// (spec.md §4.4).
func bucketFor(w float64) int {
	switch {
	case w < 3:
		return 0
	case w < 5:
		return 1
	case w < 6:
		return 2
	case w < 8:
		return 3
	case w < 12:
		return 4
	case w < 16:
		return 5
	case w < 20:
		return 6
	case w < 25:
		return 7
	case w < 30:
		return 8
	default:
		return 9
	}
}

// LowFrequency computes the low-frequency-scan prediction for tree index idx
// (0, the cell's DC root, or 1, its top-level wavelet coefficient) of the
// cell centered at center. Bucket is fixed to 0 (spec.md §4.3, §5's
// "Low-frequency scans (positions 0 and 1) always precede level-scans").
//
// Prediction is fixed to 0 rather than an actual MED tap over neighboring
// cells' DC roots: PopulatedCentersSorted walks cells in Re-then-Im order,
// but the fractal neighbor offsets (nearbyVectors) have no fixed sign
// relationship to that order at every depth, so a "left"/"up" neighbor
// cell can easily still be unprocessed when the decoder reaches the
// current one — the decoder would then read back a not-yet-decoded
// placeholder where the encoder read the true value, desyncing the two
// sides' residuals. The reference implementation sidesteps the same
// hazard by hardcoding this prediction to 0 (get_lf_context_bucket);
// that's the resolution kept here.
func LowFrequency(lat *lattice.Lattice, center lattice.Vec, channel, idx int) Result {
	return Result{Bucket: 0, Predicted: 0}
}
