package modeling

import (
	"github.com/twindragon/frif/internal/lattice"
	"gonum.org/v1/gonum/mat"
)

// Tolerance is the least-squares truncation threshold spec.md §4.3 fixes
// for both the value and width predictor solves.
const Tolerance = 1e-14

// Model holds the trained per-channel, per-group value and width predictor
// coefficients (spec.md §4.3). Value[ch][g] and Width[ch][g] are each a
// six-element row dotted against a coefficient's neighborhood.
type Model struct {
	Value [3][numGroups][6]float32
	Width [3][numGroups][6]float32
}

// observation is one (coefficient, neighborhood) training row.
type observation struct {
	value float64
	n     [6]int32
}

// Train solves the least-squares value and width predictors for one channel
// of a fully analyzed, finalized lattice, and stores them in m under that
// channel's three groups.
func Train(m *Model, lat *lattice.Lattice, channel int) {
	var rows [numGroups][]observation

	for level := int(lat.Depth) - 1; level >= 1; level-- {
		group := GroupFor(uint8(level), lat.Depth)
		for _, pos := range lat.SortedLayers[level] {
			v, ok := lat.CoefficientAt(uint8(level), pos, channel)
			if !ok {
				continue
			}
			n := Neighbors(lat, pos, uint8(level), channel)
			rows[group] = append(rows[group], observation{value: float64(v), n: n})
		}
	}

	for g := Group(0); g < numGroups; g++ {
		obs := rows[g]
		if len(obs) == 0 {
			continue
		}

		design := mat.NewDense(len(obs), 6, nil)
		values := mat.NewVecDense(len(obs), nil)
		for i, o := range obs {
			for j := 0; j < 6; j++ {
				design.Set(i, j, float64(o.n[j]))
			}
			values.SetVec(i, o.value)
		}

		p := solve(design, values, Tolerance)
		for j := 0; j < 6; j++ {
			m.Value[channel][g][j] = float32(p[j])
		}

		residuals := mat.NewVecDense(len(obs), nil)
		width := mat.NewDense(len(obs), 6, nil)
		for i, o := range obs {
			var predicted float64
			for j := 0; j < 6; j++ {
				predicted += float64(o.n[j]) * p[j]
			}
			residuals.SetVec(i, abs64(o.value-predicted))
			grad := Gradients(o.n)
			for j := 0; j < 6; j++ {
				width.Set(i, j, grad[j])
			}
		}

		q := solve(width, residuals, Tolerance)
		for j := 0; j < 6; j++ {
			m.Width[channel][g][j] = float32(q[j])
		}
	}
}

func abs64(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
