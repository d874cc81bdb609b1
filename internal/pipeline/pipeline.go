// Package pipeline names the stages of the encode and decode pipelines of
// spec.md §4.6 and wraps a failure with the stage it happened in. The stages
// themselves are run in order by frif.Encode and frif.Decode, which stop at
// the first CodecError; this package has no driver loop of its own.
package pipeline

import "fmt"

// Stage names one step of the encode or decode pipeline.
type Stage string

const (
	StageRaw              Stage = "raw"
	StageChannelTransform  Stage = "channel_transform"
	StageWaveletTransform  Stage = "wavelet_transform"
	StageQuantization      Stage = "quantization"
	StagePrediction        Stage = "prediction"
	StageEntropyEncoding   Stage = "entropy_encoding"
	StageSerialize         Stage = "serialize"

	StageSerialized        Stage = "serialized"
	StageEntropyDecoding    Stage = "entropy_decoding"
	StageDequantization     Stage = "dequantization"
	StageInverseWavelet     Stage = "inverse_wavelet"
	StageInverseChannel     Stage = "inverse_channel_transform"

	StageDone Stage = "done"
)

// CodecError carries which stage failed alongside the underlying cause
// (spec.md §7: "failures propagate to the pipeline driver which converts to
// a single string-carrying terminal state").
type CodecError struct {
	Stage Stage
	Err   error
}

func (e *CodecError) Error() string {
	return fmt.Sprintf("frif: stage %s: %v", e.Stage, e.Err)
}

func (e *CodecError) Unwrap() error {
	return e.Err
}

// Fail wraps err as a CodecError for the given stage.
func Fail(stage Stage, err error) error {
	if err == nil {
		return nil
	}
	return &CodecError{Stage: stage, Err: err}
}
