// Package wavelet implements the reversible integer lifting transform over
// the binary tree inside each fractal cell (spec.md §4.2).
package wavelet

import "github.com/twindragon/frif/internal/lattice"

// PixelSource reads a single channel sample at an integer pixel position.
// ok is false when the position lies outside the source image.
type PixelSource interface {
	GetPixel(x, y int32, ch int) (v int32, ok bool)
}

// PixelSink writes a single channel sample at an integer pixel position.
// Implementations should silently ignore out-of-bounds positions.
type PixelSink interface {
	SetPixel(x, y int32, v int32, ch int)
}

// tryApply mirrors the reference implementation's try_apply: it combines two
// optional values with op, substituting `def` for whichever side is missing,
// and only yields "no value" when both sides are missing.
func tryApply(first, second lattice.Coef, def int32, op func(a, b int32) int32) lattice.Coef {
	switch {
	case first.Ok && second.Ok:
		return lattice.Coef{V: op(first.V, second.V), Ok: true}
	case first.Ok:
		return lattice.Coef{V: op(first.V, def), Ok: true}
	case second.Ok:
		return lattice.Coef{V: op(def, second.V), Ok: true}
	default:
		return lattice.Coef{}
	}
}

// Analyze runs the forward lifting transform over every cell of l
// (boundary cells included — their pixels simply read as "missing" and
// their coefficients propagate to None, so the caller must call
// l.Finalize() afterward to drop them), for the given number of channels.
func Analyze(l *lattice.Lattice, src PixelSource, numChannels int) {
	for _, cell := range l.Cells {
		analyzeCell(cell, src, numChannels)
	}
}

func analyzeCell(cell *lattice.Cell, src PixelSource, numChannels int) {
	depth := cell.Depth
	lowPass := make([]lattice.Coef, 1<<depth)

	for ch := 0; ch < numChannels; ch++ {
		for level := int(depth) - 1; level >= 0; level-- {
			lo, hi := 1<<level, 1<<(level+1)
			for pos := lo; pos < hi; pos++ {
				var left, right lattice.Coef
				if level == int(depth)-1 {
					lp := cell.ImagePositions[2*pos]
					rp := cell.ImagePositions[2*pos+1]
					if v, ok := src.GetPixel(lp.Re, lp.Im, ch); ok {
						left = lattice.Coef{V: v, Ok: true}
					}
					if v, ok := src.GetPixel(rp.Re, rp.Im, ch); ok {
						right = lattice.Coef{V: v, Ok: true}
					}
				} else {
					left = lowPass[2*pos]
					right = lowPass[2*pos+1]
				}

				hp := tryApply(left, right, 0, func(l, r int32) int32 { return l - r })
				cell.Coefficients[ch][pos] = hp
				lowPass[pos] = tryApply(right, hp, 0, func(r, h int32) int32 { return r + h/2 })
			}
		}
		cell.Coefficients[ch][0] = lowPass[1]
	}
}

// Synthesize runs the inverse lifting transform over every populated cell of
// l, writing reconstructed pixels into dst.
func Synthesize(l *lattice.Lattice, dst PixelSink, numChannels int) {
	for _, cell := range l.Cells {
		if !l.Populated(cell) {
			continue
		}
		synthesizeCell(cell, dst, numChannels)
	}
}

func synthesizeCell(cell *lattice.Cell, dst PixelSink, numChannels int) {
	depth := cell.Depth
	lowPass := make([]int32, 1<<depth)

	for ch := 0; ch < numChannels; ch++ {
		lowPass[1] = cell.Coefficients[ch][0].V

		for level := 0; level < int(depth); level++ {
			lo, hi := 1<<level, 1<<(level+1)
			for pos := lo; pos < hi; pos++ {
				hp := cell.Coefficients[ch][pos]
				if !hp.Ok {
					continue
				}
				right := lowPass[pos] - hp.V/2
				left := hp.V + right
				if level == int(depth)-1 {
					lp := cell.ImagePositions[2*pos]
					rp := cell.ImagePositions[2*pos+1]
					dst.SetPixel(lp.Re, lp.Im, left, ch)
					dst.SetPixel(rp.Re, rp.Im, right, ch)
				} else {
					lowPass[2*pos] = left
					lowPass[2*pos+1] = right
				}
			}
		}
	}
}
