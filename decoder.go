package frif

import (
	"bytes"

	"github.com/twindragon/frif/internal/ans"
	"github.com/twindragon/frif/internal/container"
	"github.com/twindragon/frif/internal/lattice"
	"github.com/twindragon/frif/internal/modeling"
	"github.com/twindragon/frif/internal/pipeline"
	"github.com/twindragon/frif/internal/predict"
	"github.com/twindragon/frif/internal/quantize"
	"github.com/twindragon/frif/internal/wavelet"
)

// zeroSource is a PixelSource over an all-zero raster of fixed dimensions.
// The decoder runs the real wavelet analysis against it before any entropy
// decoding happens, purely to recover which cells are populated: presence
// is a function of pixel position being in-bounds, never of pixel value, so
// a zero-filled raster of the right size yields the identical populated/
// boundary pattern as the real image (the reference implementation's
// WaveletImage::from_metadata does the same thing with a zero-filled
// RasterImage before extract_coefficients runs).
type zeroSource struct{ width, height int32 }

func (z zeroSource) GetPixel(x, y int32, ch int) (int32, bool) {
	if x < 0 || y < 0 || x >= z.width || y >= z.height {
		return 0, false
	}
	return 0, true
}

// Decode reverses Encode: parse the container, prime the lattice's
// populated/boundary shape against a zero raster, then replay the identical
// scan order consuming rANS residuals instead of producing them.
func Decode(data []byte) (*DecodeResult, error) {
	r := bytes.NewReader(data)
	meta, err := container.ReadHeader(r)
	if err != nil {
		return nil, pipeline.Fail(pipeline.StageSerialized, err)
	}
	numChannels := meta.Colorspace.NumChannels()

	lat, err := lattice.Build(meta.Width, meta.Height)
	if err != nil {
		return nil, pipeline.Fail(pipeline.StageInverseWavelet, err)
	}
	wavelet.Analyze(lat, zeroSource{int32(meta.Width), int32(meta.Height)}, numChannels)
	if err := lat.Finalize(); err != nil {
		return nil, pipeline.Fail(pipeline.StageInverseWavelet, err)
	}

	for ch := 0; ch < numChannels; ch++ {
		payload, err := container.ReadChannel(r)
		if err != nil {
			return nil, pipeline.Fail(pipeline.StageSerialized, err)
		}
		if err := decodeChannel(lat, payload, ch); err != nil {
			return nil, pipeline.Fail(pipeline.StageEntropyDecoding, err)
		}
	}
	if err := container.ReadEOI(r); err != nil {
		return nil, pipeline.Fail(pipeline.StageSerialized, err)
	}

	q := quantize.Identity{}
	dequantizeLattice(lat, q, numChannels)

	out := newPlanarImage(meta.Width, meta.Height, numChannels)
	wavelet.Synthesize(lat, out, numChannels)
	applyInverseColorTransform(out, meta.Colorspace)

	return &DecodeResult{
		PixelData:  interleave(out),
		Width:      meta.Width,
		Height:     meta.Height,
		Components: numChannels,
	}, nil
}

// decodeChannel mirrors encodeChannel: same scan order, same predictors,
// but each step reads a residual off the rANS stream and writes the
// reconstructed coefficient back into the lattice instead of emitting one.
func decodeChannel(lat *lattice.Lattice, payload container.ChannelPayload, ch int) error {
	var model modeling.Model
	model.Value[ch] = payload.Value
	model.Width[ch] = payload.Width

	dec := ans.NewChannelDecoder(payload.Data, payload.MaxFreqBits)
	centers := lat.PopulatedCentersSorted()

	for _, center := range centers {
		cell := lat.Cells[center]
		for idx := 0; idx <= 1; idx++ {
			r := predict.LowFrequency(lat, center, ch, idx)
			residual := dec.Next(r.Bucket)
			cell.Coefficients[ch][idx] = lattice.Coef{V: r.Predicted + residual, Ok: true}
		}
	}

	for level := uint8(1); level < lat.Depth; level++ {
		for _, pos := range lat.SortedLayers[level] {
			if _, ok := lat.CoefficientAt(level, pos, ch); !ok {
				continue
			}
			r := predict.Predict(lat, &model, pos, level, ch)
			residual := dec.Next(r.Bucket)
			lat.SetCoefficient(level, pos, ch, r.Predicted+residual)
		}
	}
	return nil
}
