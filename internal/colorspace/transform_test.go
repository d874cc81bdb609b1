package colorspace

import "testing"

func TestForwardInverseYCbCrRoundTrip(t *testing.T) {
	for r := int32(0); r <= 255; r += 17 {
		for g := int32(0); g <= 255; g += 23 {
			for b := int32(0); b <= 255; b += 29 {
				y, cb, cr := ForwardYCbCr(r, g, b)
				gotR, gotG, gotB := InverseYCbCr(y, cb, cr)
				if gotR != r || gotG != g || gotB != b {
					t.Fatalf("round trip (%d,%d,%d) -> (%d,%d,%d) -> (%d,%d,%d)",
						r, g, b, y, cb, cr, gotR, gotG, gotB)
				}
			}
		}
	}
}
