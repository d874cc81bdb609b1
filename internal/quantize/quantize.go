// Package quantize provides the quantization pipeline seam between the
// wavelet transform and prediction stages. The only implementation today is
// Identity — coef/1 is a no-op — but the stage exists so a future lossy
// knob has somewhere to plug in without reshaping the pipeline (spec.md §9).
package quantize

// Quantizer maps a wavelet coefficient to its quantized form and back.
type Quantizer interface {
	Quantize(coef int32) int32
	Dequantize(level int32) int32
}

// Identity is the lossless quantizer: both directions are no-ops.
type Identity struct{}

func (Identity) Quantize(coef int32) int32   { return coef }
func (Identity) Dequantize(level int32) int32 { return level }
