package frif

import (
	"github.com/twindragon/frif/internal/colorspace"
	"github.com/twindragon/frif/internal/container"
)

// applyForwardColorTransform rewrites p's three RGB planes to reversible
// YCbCr in place. No-op for anything but the three-component YCbCr case.
func applyForwardColorTransform(p *planarImage, cs container.Colorspace) {
	if cs != container.ColorspaceYCbCr {
		return
	}
	r, g, b := p.channels[0], p.channels[1], p.channels[2]
	for i := range r {
		y, cb, cr := colorspace.ForwardYCbCr(r[i], g[i], b[i])
		r[i], g[i], b[i] = y, cb, cr
	}
}

// applyInverseColorTransform is the exact inverse, run on the decode side
// before the output bitmap is materialized.
func applyInverseColorTransform(p *planarImage, cs container.Colorspace) {
	if cs != container.ColorspaceYCbCr {
		return
	}
	y, cb, cr := p.channels[0], p.channels[1], p.channels[2]
	for i := range y {
		r, g, b := colorspace.InverseYCbCr(y[i], cb[i], cr[i])
		y[i], cb[i], cr[i] = r, g, b
	}
}
