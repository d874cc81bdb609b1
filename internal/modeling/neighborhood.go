// Package modeling trains the per-channel, per-level-group least-squares
// predictors described in spec.md §4.3, by solving against the six-tap
// hexagonal neighborhood of every coefficient in a transformed lattice.
package modeling

import "github.com/twindragon/frif/internal/lattice"

// Group names one of the three predictor level groups a coefficient's tree
// level falls into.
type Group int

const (
	GroupTop Group = iota // level == depth-1, the finest scale
	GroupMid               // level == depth-2
	GroupDeep              // level < depth-2, every coarser scale pooled together
	numGroups
)

// GroupFor classifies a tree level under the cell's depth.
func GroupFor(level, depth uint8) Group {
	switch {
	case level == depth-1:
		return GroupTop
	case level == depth-2:
		return GroupMid
	default:
		return GroupDeep
	}
}

// Neighbors returns the six-tap neighborhood (N0..N5) of the coefficient at
// pos/level/channel, per spec.md §4.3:
//
//	N0,N1,N2 = same-level taps at left, upper-left, upper-right
//	N3,N4,N5 = parent-level taps at right, down-left, down-right
//
// Missing taps (outside the lattice, or inside a dropped boundary cell)
// default to 0.
func Neighbors(lat *lattice.Lattice, pos lattice.Vec, level uint8, channel int) [6]int32 {
	remaining := lat.Depth - level
	present := func(p lattice.Vec) bool { return lat.PresentAt(remaining, p) }

	left := lattice.NeighborLeft(pos, remaining)
	upLeft := lattice.NeighborUpLeft(pos, remaining, present)
	upRight := lattice.NeighborUpRight(pos, remaining, present)
	right := lattice.NeighborRight(pos, remaining)
	downLeft := lattice.NeighborDownLeft(pos, remaining, present)
	downRight := lattice.NeighborDownRight(pos, remaining, present)

	return [6]int32{
		lat.CoefficientOrZero(level, left, channel),
		lat.CoefficientOrZero(level, upLeft, channel),
		lat.CoefficientOrZero(level, upRight, channel),
		lat.ParentCoefficientOrZero(level, right, channel),
		lat.ParentCoefficientOrZero(level, downLeft, channel),
		lat.ParentCoefficientOrZero(level, downRight, channel),
	}
}

// Gradients computes the six-column width-model design row from a
// neighborhood, per spec.md §4.3's gradient matrix W:
//
//	W0 = 1
//	W1 = |N0-N3|, W2 = |N1-N2|, W3 = |N4-N5|
//	W4 = |N1-N5|, W5 = |N2-N4|
func Gradients(n [6]int32) [6]float64 {
	abs := func(x int32) float64 {
		if x < 0 {
			return float64(-x)
		}
		return float64(x)
	}
	return [6]float64{
		1,
		abs(n[0] - n[3]),
		abs(n[1] - n[2]),
		abs(n[4] - n[5]),
		abs(n[1] - n[5]),
		abs(n[2] - n[4]),
	}
}
