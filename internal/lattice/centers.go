package lattice

import "fmt"

// centerTier is one entry of the CENTERS table: the largest (width, height)
// this tile depth is meant to cover, tiled from a cell centered on the image
// midpoint.
type centerTier struct {
	maxW, maxH int32
	depth      uint8
}

// CENTERS is the statically tabulated depth-selection table described in
// spec.md §3 (C1). The reference implementation hardcodes depth 9 for every
// image and never consults a lookup table at lattice-build time (its own
// CENTERS/calculate_depth_center path exists but is dead code — see
// DESIGN.md). This expansion gives CENTERS a real job: resolving spec.md's
// open question about predictor-group depth for images outside the classic
// range by growing D with image size instead of leaving it fixed.
var CENTERS = []centerTier{
	{maxW: 4096, maxH: 4096, depth: 9},
	{maxW: 16384, maxH: 16384, depth: 10},
	{maxW: 65536, maxH: 65536, depth: 11},
}

// BaseDepth is the classic fixed tile depth used by the reference codec and
// the default for any image within CENTERS' first tier.
const BaseDepth uint8 = 9

// MinDepthForGroups is the smallest tile depth for which the three
// predictor level-groups (top/mid/deep, spec.md §4.3) are all non-empty.
const MinDepthForGroups uint8 = 3

// SelectDepth returns the tile depth to use for an image of the given
// dimensions and the lattice seed center (floor(w/2), floor(h/2)).
func SelectDepth(width, height int) (uint8, Vec, error) {
	if width <= 0 || height <= 0 {
		return 0, Vec{}, fmt.Errorf("lattice: invalid dimensions %dx%d", width, height)
	}
	center := Vec{Re: int32(width / 2), Im: int32(height / 2)}
	for _, tier := range CENTERS {
		if int32(width) <= tier.maxW && int32(height) <= tier.maxH {
			return tier.depth, center, nil
		}
	}
	last := CENTERS[len(CENTERS)-1]
	return 0, Vec{}, fmt.Errorf("lattice: dimensions %dx%d exceed supported range %dx%d", width, height, last.maxW, last.maxH)
}
