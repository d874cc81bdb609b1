// Package colorspace implements the reversible RGB<->YCbCr point transform
// used by the channel-transform pipeline stage (spec.md §6's Colorspace
// header field), adapted from JPEG 2000's integer RCT: exactly invertible,
// no rounding loss.
package colorspace

// ForwardYCbCr converts one RGB pixel to reversible YCbCr.
func ForwardYCbCr(r, g, b int32) (y, cb, cr int32) {
	y = (r + 2*g + b) >> 2
	cb = b - g
	cr = r - g
	return
}

// InverseYCbCr is the exact inverse of ForwardYCbCr.
func InverseYCbCr(y, cb, cr int32) (r, g, b int32) {
	g = y - ((cb + cr) >> 2)
	r = cr + g
	b = cb + g
	return
}
