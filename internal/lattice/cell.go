package lattice

// Coef is an optional wavelet coefficient. Ok is false for "outside the
// image" (spec.md's None), matching the option-typed coefficient slots
// described in spec.md §3.
type Coef struct {
	V  int32
	Ok bool
}

// Cell is one fractal tile: a depth-D binary tree of image positions shared
// by every channel, plus per-channel coefficient/prediction-cache storage.
//
// The tree is kept as a 1-indexed heap array (spec.md §9: "recursive tree as
// indices, not pointers") — node i's children are 2i and 2i+1, and level l
// occupies indices [2^l, 2^(l+1)).
type Cell struct {
	Center Vec
	Depth  uint8

	// ImagePositions[i] is the pixel position covered by tree node i.
	// Index 0 is aliased to index 1 (spec.md invariant).
	ImagePositions []Vec

	// PositionMap[level] inverts ImagePositions restricted to that level:
	// pixel position -> tree index.
	PositionMap []map[Vec]int

	// Coefficients[channel][i] holds the wavelet coefficient at tree index i.
	// Coefficients[c][0] is the DC root; [1] is the top-level difference.
	Coefficients [3][]Coef

	// Boundary is true for cells outside the image box: they carry no
	// coefficients and exist purely so neighbor lookups never fault.
	Boundary bool
}

// NewCell builds a cell's tree geometry (ImagePositions/PositionMap) for the
// given center and depth. Coefficients are allocated for all three channels
// with every slot unset; wavelet.Analyze fills them in.
func NewCell(center Vec, depth uint8) *Cell {
	size := 1 << (depth + 1)
	c := &Cell{
		Center:         center,
		Depth:          depth,
		ImagePositions: make([]Vec, size),
		PositionMap:    make([]map[Vec]int, depth),
	}
	c.ImagePositions[0] = center
	c.ImagePositions[1] = center
	for level := uint8(0); level < depth; level++ {
		c.PositionMap[level] = make(map[Vec]int, 1<<level)
		lo, hi := 1<<level, 1<<(level+1)
		for pos := lo; pos < hi; pos++ {
			c.PositionMap[level][c.ImagePositions[pos]] = pos
			c.ImagePositions[2*pos] = c.ImagePositions[pos]
			c.ImagePositions[2*pos+1] = c.ImagePositions[pos].Add(LITERALS[int(depth)-int(level)-1])
		}
	}
	for ch := 0; ch < 3; ch++ {
		c.Coefficients[ch] = make([]Coef, 1<<depth)
	}
	return c
}

// nearbyVectors returns the six fixed offsets to neighboring tile centers at
// the given depth parameter, per spec.md §4.1:
//
//	n = [z_l, z_l - z_md, -z_md, -z_l, z_md - z_l, z_md]
//	z_l = LITERALS[depth], z_md = LITERALS[depth+1] + z_l
//
// Depths 1, 2 and 3 degenerate and are hard-coded (spec.md §9 design note).
func nearbyVectors(depth uint8) [6]Vec {
	var zl, zmd Vec
	switch depth {
	case 1:
		zl, zmd = Vec{-1, 1}, Vec{0, 2}
	case 2:
		zl, zmd = Vec{-2, 0}, Vec{0, -2}
	case 3:
		zl, zmd = Vec{-3, -1}, Vec{-1, -3}
	default:
		zl = LITERALS[depth]
		zmd = LITERALS[depth+1].Add(zl)
	}
	return [6]Vec{
		zl,
		zl.Sub(zmd),
		zmd.Neg(),
		zl.Neg(),
		zmd.Sub(zl),
		zmd,
	}
}

// NeighborCenters returns the six neighboring tile centers of this cell at
// its own depth, used by the lattice BFS (spec.md §4.1 step 2-3).
func (c *Cell) NeighborCenters() [6]Vec {
	v := nearbyVectors(c.Depth)
	var out [6]Vec
	for i, d := range v {
		out[i] = c.Center.Add(d)
	}
	return out
}

// present reports whether pos is populated, per whatever lookup the caller
// closes over. The reference implementation's down/up accessors probe
// global_position_map indexed by their own `depth` argument (not the
// pixel's tree level) when applying the depth-2 correction below — an
// apparent quirk of the source that we reproduce exactly rather than
// "fix", per spec.md §9's "must reproduce these exactly" design note.
type presenceFn func(pos Vec) bool

// NeighborLeft returns the image-position of the "left" hexagonal neighbor
// of centerPos at the given remaining-depth scale.
func NeighborLeft(centerPos Vec, depth uint8) Vec {
	v := nearbyVectors(depth)
	return centerPos.Add(v[4])
}

// NeighborRight returns the "right" hexagonal neighbor.
func NeighborRight(centerPos Vec, depth uint8) Vec {
	v := nearbyVectors(depth)
	return centerPos.Add(v[1])
}

// NeighborDownLeft returns the "down-left" hexagonal neighbor, applying the
// depth-2 lattice-degeneracy correction from the reference implementation:
// when the straightforward offset isn't populated but the diagonal (1,1)
// step is, the diagonal is used instead.
func NeighborDownLeft(centerPos Vec, depth uint8, present presenceFn) Vec {
	v := nearbyVectors(depth)
	if depth == 2 && !present(centerPos.Add(v[3])) && present(centerPos.Add(Vec{1, 1})) {
		return centerPos.Add(Vec{1, 1})
	}
	return centerPos.Add(v[3])
}

// NeighborDownRight returns the "down-right" hexagonal neighbor, with the
// same depth-2 correction as NeighborDownLeft.
func NeighborDownRight(centerPos Vec, depth uint8, present presenceFn) Vec {
	v := nearbyVectors(depth)
	if depth == 2 && !present(centerPos.Add(v[3])) && present(centerPos.Add(Vec{1, 1})) {
		return centerPos.Add(Vec{1, 1}).Add(v[1])
	}
	return centerPos.Add(v[2])
}

// NeighborUpRight returns the "up-right" hexagonal neighbor, applying the
// mirror-image depth-2 correction.
func NeighborUpRight(centerPos Vec, depth uint8, present presenceFn) Vec {
	v := nearbyVectors(depth)
	if depth == 2 && !present(centerPos.Add(v[0])) && present(centerPos.Add(Vec{-1, -1})) {
		return centerPos.Add(Vec{-1, -1})
	}
	return centerPos.Add(v[0])
}

// NeighborUpLeft returns the "up-left" hexagonal neighbor, with the same
// depth-2 correction as NeighborUpRight.
func NeighborUpLeft(centerPos Vec, depth uint8, present presenceFn) Vec {
	v := nearbyVectors(depth)
	if depth == 2 && !present(centerPos.Add(v[0])) && present(centerPos.Add(Vec{-1, -1})) {
		return centerPos.Add(Vec{-1, -1}).Add(v[4])
	}
	return centerPos.Add(v[5])
}
