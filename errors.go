// Package frif implements the FRIF lossless still-image codec: a
// non-separable wavelet transform over a complex-base fractal ("twindragon")
// lattice, a least-squares context model, and a multi-stream rANS entropy
// coder, serialized into the .frif container format.
package frif

import (
	"errors"

	"github.com/twindragon/frif/internal/container"
)

var (
	// ErrInvalidParameter indicates encoding parameters are invalid (bad
	// dimensions, a pixel buffer of the wrong length, or an unknown variant).
	ErrInvalidParameter = errors.New("frif: invalid parameter")

	// ErrUnsupportedFormat is returned for a PixelData layout this codec
	// doesn't understand.
	ErrUnsupportedFormat = errors.New("frif: unsupported format")

	// ErrInvalidSignature, ErrInvalidMetadata, ErrMalformedSegment and
	// ErrUnsupportedColor re-export the container package's decode-time
	// sentinels so callers never need to import internal/container directly.
	ErrInvalidSignature = container.ErrInvalidSignature
	ErrInvalidMetadata  = container.ErrInvalidMetadata
	ErrMalformedSegment = container.ErrMalformedSegment
	ErrUnsupportedColor = container.ErrUnsupportedColor
)
