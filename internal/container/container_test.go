package container

import (
	"bytes"
	"errors"
	"testing"
)

func TestHeaderRoundTrip(t *testing.T) {
	want := Metadata{Width: 1920, Height: 1080, Colorspace: ColorspaceYCbCr, Variant: VariantTwindragon}

	var buf bytes.Buffer
	if err := WriteHeader(&buf, want); err != nil {
		t.Fatalf("WriteHeader: %v", err)
	}

	got, err := ReadHeader(&buf)
	if err != nil {
		t.Fatalf("ReadHeader: %v", err)
	}
	if got != want {
		t.Fatalf("ReadHeader = %+v, want %+v", got, want)
	}
}

func TestReadHeaderRejectsBadMagic(t *testing.T) {
	buf := bytes.NewBufferString("nope")
	if _, err := ReadHeader(buf); !errors.Is(err, ErrInvalidSignature) {
		t.Fatalf("err = %v, want ErrInvalidSignature", err)
	}
}

func TestReadHeaderRejectsBadColorspace(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteHeader(&buf, Metadata{Width: 1, Height: 1, Colorspace: 3, Variant: 1}); err != nil {
		t.Fatalf("WriteHeader: %v", err)
	}
	raw := buf.Bytes()
	// mdat is the last little-endian uint32 (bytes 12..16); its top two bits
	// (the last byte's high bits) carry the colorspace. Clear them to 0, an
	// out-of-range value.
	raw[15] &^= 0xC0

	if _, err := ReadHeader(bytes.NewReader(raw)); !errors.Is(err, ErrInvalidMetadata) {
		t.Fatalf("err = %v, want ErrInvalidMetadata", err)
	}
}

func TestChannelRoundTrip(t *testing.T) {
	var want ChannelPayload
	for g := range want.Value {
		for j := range want.Value[g] {
			want.Value[g][j] = float32(g*6+j) * 0.5
			want.Width[g][j] = float32(g*6+j) * -0.25
		}
	}
	for b := range want.MaxFreqBits {
		want.MaxFreqBits[b] = uint32(8 + b)
	}
	want.Data = []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}

	var buf bytes.Buffer
	if err := WriteChannel(&buf, want); err != nil {
		t.Fatalf("WriteChannel: %v", err)
	}

	got, err := ReadChannel(&buf)
	if err != nil {
		t.Fatalf("ReadChannel: %v", err)
	}
	if got.Value != want.Value || got.Width != want.Width || got.MaxFreqBits != want.MaxFreqBits {
		t.Fatalf("ReadChannel predictors/bits mismatch: got %+v, want %+v", got, want)
	}
	if !bytes.Equal(got.Data, want.Data) {
		t.Fatalf("ReadChannel data = %v, want %v", got.Data, want.Data)
	}
}

func TestEOIRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteEOI(&buf); err != nil {
		t.Fatalf("WriteEOI: %v", err)
	}
	if err := ReadEOI(&buf); err != nil {
		t.Fatalf("ReadEOI: %v", err)
	}
}

func TestReadChannelRejectsTruncatedStream(t *testing.T) {
	if _, err := ReadChannel(bytes.NewReader(nil)); !errors.Is(err, ErrMalformedSegment) {
		t.Fatalf("err = %v, want ErrMalformedSegment", err)
	}
}

