package frif

import (
	"bytes"
	"testing"
)

func grayImage(w, h int, f func(x, y int) byte) []byte {
	out := make([]byte, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			out[y*w+x] = f(x, y)
		}
	}
	return out
}

func rgbImage(w, h int, f func(x, y int) (byte, byte, byte)) []byte {
	out := make([]byte, w*h*3)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b := f(x, y)
			i := (y*w + x) * 3
			out[i], out[i+1], out[i+2] = r, g, b
		}
	}
	return out
}

func roundTrip(t *testing.T, params EncodeParams, opts EncodeOptions) *DecodeResult {
	t.Helper()
	encoded, err := Encode(params, opts)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	result, err := Decode(encoded)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if result.Width != params.Width || result.Height != params.Height || result.Components != params.Components {
		t.Fatalf("dims = %dx%dx%d, want %dx%dx%d",
			result.Width, result.Height, result.Components, params.Width, params.Height, params.Components)
	}
	if !bytes.Equal(result.PixelData, params.PixelData) {
		t.Fatalf("round trip not lossless: mismatch over %d bytes", len(params.PixelData))
	}
	return result
}

func TestRoundTripGraySmall(t *testing.T) {
	const w, h = 17, 8
	data := grayImage(w, h, func(x, y int) byte { return byte((x*37 + y*91) % 256) })
	params := EncodeParams{PixelData: data, Width: w, Height: h, Components: 1}
	roundTrip(t, params, DefaultEncodeOptions())
}

func TestRoundTripRGBCheckerboard(t *testing.T) {
	const w, h = 88, 15
	data := rgbImage(w, h, func(x, y int) (byte, byte, byte) {
		if (x+y)%2 == 0 {
			return 255, 0, 128
		}
		return 0, 255, 64
	})
	params := EncodeParams{PixelData: data, Width: w, Height: h, Components: 3}
	roundTrip(t, params, EncodeOptions{Variant: VariantTwindragon, YCbCr: true})
	roundTrip(t, params, EncodeOptions{Variant: VariantTwindragon, YCbCr: false})
}

func TestRoundTripRGBNaturalish(t *testing.T) {
	const w, h = 202, 149
	data := rgbImage(w, h, func(x, y int) (byte, byte, byte) {
		r := byte((x*3 + y*5) % 256)
		g := byte((x*7 + y*2) % 256)
		b := byte((x + y*13) % 256)
		return r, g, b
	})
	params := EncodeParams{PixelData: data, Width: w, Height: h, Components: 3}
	roundTrip(t, params, EncodeOptions{Variant: VariantTwindragon, YCbCr: true})
}

func TestRoundTripAllZeroImage(t *testing.T) {
	const w, h = 10, 10
	data := make([]byte, w*h)
	params := EncodeParams{PixelData: data, Width: w, Height: h, Components: 1}
	roundTrip(t, params, DefaultEncodeOptions())
}

func TestRoundTripSingleSymbolGray(t *testing.T) {
	const w, h = 6, 6
	data := make([]byte, w*h)
	for i := range data {
		data[i] = 200
	}
	params := EncodeParams{PixelData: data, Width: w, Height: h, Components: 1}
	roundTrip(t, params, DefaultEncodeOptions())
}

func TestRoundTripOtherVariants(t *testing.T) {
	const w, h = 24, 19
	data := grayImage(w, h, func(x, y int) byte { return byte((x*3 + y*11) % 256) })
	params := EncodeParams{PixelData: data, Width: w, Height: h, Components: 1}

	for _, v := range []Variant{VariantTameTwindragon, VariantTwindragon, VariantBoxes} {
		roundTrip(t, params, EncodeOptions{Variant: v})
	}
}

func TestEncodeRejectsBadComponents(t *testing.T) {
	params := EncodeParams{PixelData: []byte{1, 2, 3, 4}, Width: 2, Height: 2, Components: 2}
	if _, err := Encode(params, DefaultEncodeOptions()); err == nil {
		t.Fatal("expected an error for Components == 2")
	}
}

func TestEncodeRejectsMismatchedPixelDataLength(t *testing.T) {
	params := EncodeParams{PixelData: []byte{1, 2, 3}, Width: 2, Height: 2, Components: 1}
	if _, err := Encode(params, DefaultEncodeOptions()); err == nil {
		t.Fatal("expected an error for a short pixel buffer")
	}
}

func TestEncodeRejectsNonPositiveDimensions(t *testing.T) {
	params := EncodeParams{PixelData: []byte{}, Width: 0, Height: 4, Components: 1}
	if _, err := Encode(params, DefaultEncodeOptions()); err == nil {
		t.Fatal("expected an error for Width == 0")
	}
}

func TestCodecInterfaceUsesDefaults(t *testing.T) {
	const w, h = 12, 9
	data := grayImage(w, h, func(x, y int) byte { return byte((x + y) % 256) })
	c := NewCodec()
	if c.Name() == "" {
		t.Fatal("Name() returned empty string")
	}

	encoded, err := c.Encode(EncodeParams{PixelData: data, Width: w, Height: h, Components: 1})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	result, err := c.Decode(encoded)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !bytes.Equal(result.PixelData, data) {
		t.Fatal("Codec round trip through defaults was not lossless")
	}
}

func TestDecodeRejectsGarbage(t *testing.T) {
	if _, err := Decode([]byte("not a frif stream")); err == nil {
		t.Fatal("expected an error decoding a non-frif stream")
	}
}
