package frif

// planarImage is a width*height int32 buffer per channel: the shared
// working representation between raw pixel extraction, the channel
// transform, and the wavelet transform (it satisfies both wavelet.PixelSource
// and wavelet.PixelSink).
type planarImage struct {
	width, height int
	channels      [][]int32
}

func newPlanarImage(width, height, numChannels int) *planarImage {
	p := &planarImage{width: width, height: height, channels: make([][]int32, numChannels)}
	for ch := range p.channels {
		p.channels[ch] = make([]int32, width*height)
	}
	return p
}

func (p *planarImage) GetPixel(x, y int32, ch int) (int32, bool) {
	if x < 0 || y < 0 || int(x) >= p.width || int(y) >= p.height {
		return 0, false
	}
	return p.channels[ch][int(y)*p.width+int(x)], true
}

func (p *planarImage) SetPixel(x, y int32, v int32, ch int) {
	if x < 0 || y < 0 || int(x) >= p.width || int(y) >= p.height {
		return
	}
	p.channels[ch][int(y)*p.width+int(x)] = v
}

// extractPlanar de-interleaves row-major 8-bit samples into one int32 plane
// per component.
func extractPlanar(data []byte, width, height, components int) *planarImage {
	p := newPlanarImage(width, height, components)
	for i := 0; i < width*height; i++ {
		for ch := 0; ch < components; ch++ {
			p.channels[ch][i] = int32(data[i*components+ch])
		}
	}
	return p
}

// interleave re-packs a planar buffer of already-clamped byte-range samples
// back into row-major interleaved form.
func interleave(p *planarImage) []byte {
	components := len(p.channels)
	out := make([]byte, p.width*p.height*components)
	for i := 0; i < p.width*p.height; i++ {
		for ch := 0; ch < components; ch++ {
			out[i*components+ch] = clampByte(p.channels[ch][i])
		}
	}
	return out
}

func clampByte(v int32) byte {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return byte(v)
}
