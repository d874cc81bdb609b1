package frif

import (
	"github.com/twindragon/frif/internal/lattice"
	"github.com/twindragon/frif/internal/quantize"
)

// quantizeLattice runs every populated coefficient through q.Quantize in
// place. Identity makes this a no-op today, but the pass is real: a lossy
// quantizer dropped in later needs no change to the stages around it.
func quantizeLattice(lat *lattice.Lattice, q quantize.Quantizer, numChannels int) {
	for _, cell := range lat.Cells {
		if !lat.Populated(cell) {
			continue
		}
		for ch := 0; ch < numChannels; ch++ {
			for i, c := range cell.Coefficients[ch] {
				if !c.Ok {
					continue
				}
				cell.Coefficients[ch][i] = lattice.Coef{V: q.Quantize(c.V), Ok: true}
			}
		}
	}
}

// dequantizeLattice is quantizeLattice's inverse, run on the decode side
// after entropy decoding and before wavelet synthesis.
func dequantizeLattice(lat *lattice.Lattice, q quantize.Quantizer, numChannels int) {
	for _, cell := range lat.Cells {
		if !lat.Populated(cell) {
			continue
		}
		for ch := 0; ch < numChannels; ch++ {
			for i, c := range cell.Coefficients[ch] {
				if !c.Ok {
					continue
				}
				cell.Coefficients[ch][i] = lattice.Coef{V: q.Dequantize(c.V), Ok: true}
			}
		}
	}
}
