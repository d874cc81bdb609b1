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

// Encode compresses params.PixelData into a .frif byte stream, running the
// full stage pipeline of spec.md §4: channel transform, wavelet analysis,
// quantization, least-squares context modeling, and rANS entropy coding.
func Encode(params EncodeParams, opts EncodeOptions) ([]byte, error) {
	if err := opts.Validate(); err != nil {
		return nil, pipeline.Fail(pipeline.StageRaw, err)
	}
	if params.Width <= 0 || params.Height <= 0 {
		return nil, pipeline.Fail(pipeline.StageRaw, ErrInvalidParameter)
	}
	if params.Components != 1 && params.Components != 3 {
		return nil, pipeline.Fail(pipeline.StageRaw, ErrUnsupportedColor)
	}
	if len(params.PixelData) != params.Width*params.Height*params.Components {
		return nil, pipeline.Fail(pipeline.StageRaw, ErrInvalidParameter)
	}

	cs := container.ColorspaceRGB
	if params.Components == 1 {
		cs = container.ColorspaceLuma
	} else if opts.YCbCr {
		cs = container.ColorspaceYCbCr
	}

	raw := extractPlanar(params.PixelData, params.Width, params.Height, params.Components)
	if err := runChannelTransform(raw, cs); err != nil {
		return nil, pipeline.Fail(pipeline.StageChannelTransform, err)
	}

	lat, err := lattice.Build(params.Width, params.Height)
	if err != nil {
		return nil, pipeline.Fail(pipeline.StageWaveletTransform, err)
	}
	wavelet.Analyze(lat, raw, params.Components)
	if err := lat.Finalize(); err != nil {
		return nil, pipeline.Fail(pipeline.StageWaveletTransform, err)
	}

	q := quantize.Identity{}
	quantizeLattice(lat, q, params.Components)

	var buf bytes.Buffer
	meta := container.Metadata{Width: params.Width, Height: params.Height, Colorspace: cs, Variant: opts.Variant}
	if err := container.WriteHeader(&buf, meta); err != nil {
		return nil, pipeline.Fail(pipeline.StageSerialize, err)
	}

	for ch := 0; ch < params.Components; ch++ {
		payload, err := encodeChannel(lat, ch)
		if err != nil {
			return nil, pipeline.Fail(pipeline.StageEntropyEncoding, err)
		}
		if err := container.WriteChannel(&buf, payload); err != nil {
			return nil, pipeline.Fail(pipeline.StageSerialize, err)
		}
	}
	if err := container.WriteEOI(&buf); err != nil {
		return nil, pipeline.Fail(pipeline.StageSerialize, err)
	}
	return buf.Bytes(), nil
}

func runChannelTransform(p *planarImage, cs container.Colorspace) error {
	applyForwardColorTransform(p, cs)
	return nil
}

// encodeChannel trains the least-squares predictors for one channel and
// walks the fixed scan order — low-frequency positions 0 and 1 for every
// populated cell, then each level's SortedLayers, ascending — feeding
// coefficient-minus-predicted residuals into that channel's rANS contexts.
func encodeChannel(lat *lattice.Lattice, ch int) (container.ChannelPayload, error) {
	var model modeling.Model
	modeling.Train(&model, lat, ch)

	enc := ans.NewChannelEncoder()
	centers := lat.PopulatedCentersSorted()

	for _, center := range centers {
		cell := lat.Cells[center]
		for idx := 0; idx <= 1; idx++ {
			actual := cell.Coefficients[ch][idx].V
			r := predict.LowFrequency(lat, center, ch, idx)
			enc.Put(r.Bucket, actual-r.Predicted)
		}
	}

	for level := uint8(1); level < lat.Depth; level++ {
		for _, pos := range lat.SortedLayers[level] {
			actual, ok := lat.CoefficientAt(level, pos, ch)
			if !ok {
				continue
			}
			r := predict.Predict(lat, &model, pos, level, ch)
			enc.Put(r.Bucket, actual-r.Predicted)
		}
	}

	data, maxFreqBits := enc.Finish()
	return container.ChannelPayload{
		Value:       model.Value[ch],
		Width:       model.Width[ch],
		MaxFreqBits: maxFreqBits,
		Data:        data,
	}, nil
}
