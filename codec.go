package frif

import "github.com/twindragon/frif/internal/container"

// Codec is the universal interface this module exposes: encode raw
// interleaved 8-bit pixel data to a .frif byte stream, and back.
type Codec interface {
	Encode(params EncodeParams) ([]byte, error)
	Decode(data []byte) (*DecodeResult, error)
	Name() string
}

// EncodeParams describes the raw bitmap handed to Encode: row-major,
// interleaved samples, one byte per sample (spec.md §7's UnsupportedColor
// restricts input to 8-bit Luma or RGB).
type EncodeParams struct {
	PixelData  []byte
	Width      int
	Height     int
	Components int // 1 = Luma, 3 = RGB
	Options    Options
}

// Options is codec-specific encoding configuration.
type Options interface {
	Validate() error
}

// EncodeOptions selects the fractal-tiling variant written to the header and
// whether the three-component case is stored as RGB or transformed to
// reversible YCbCr first. The variant is only recorded: the lattice geometry
// is the same for every variant.
type EncodeOptions struct {
	Variant Variant
	YCbCr   bool
}

// Variant mirrors container.Variant so callers don't need the internal
// package for the common case.
type Variant = container.Variant

const (
	VariantTameTwindragon = container.VariantTameTwindragon
	VariantTwindragon     = container.VariantTwindragon
	VariantBoxes          = container.VariantBoxes
)

// Validate checks the options are self-consistent.
func (o EncodeOptions) Validate() error {
	if o.Variant < VariantTameTwindragon || o.Variant > VariantBoxes {
		return ErrInvalidParameter
	}
	return nil
}

// DefaultEncodeOptions is the zero-config choice: the classic twindragon
// tiling, RGB stored untransformed.
func DefaultEncodeOptions() EncodeOptions {
	return EncodeOptions{Variant: VariantTwindragon}
}

// DecodeResult is what Decode hands back: the reconstructed bitmap in the
// same row-major interleaved layout Encode accepts.
type DecodeResult struct {
	PixelData  []byte
	Width      int
	Height     int
	Components int
}

// frifCodec is the concrete Codec implementation.
type frifCodec struct{}

// NewCodec returns the FRIF Codec implementation.
func NewCodec() Codec { return frifCodec{} }

func (frifCodec) Name() string { return "FRIF" }

func (frifCodec) Encode(params EncodeParams) ([]byte, error) {
	opts, _ := params.Options.(EncodeOptions)
	if opts == (EncodeOptions{}) {
		opts = DefaultEncodeOptions()
	}
	return Encode(params, opts)
}

func (frifCodec) Decode(data []byte) (*DecodeResult, error) {
	return Decode(data)
}
