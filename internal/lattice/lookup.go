package lattice

import "sort"

// PresentAt reports whether pos is a populated pixel position at the given
// tree level, i.e. whether GlobalPositionMap[level] has an entry for it.
func (l *Lattice) PresentAt(level uint8, pos Vec) bool {
	if int(level) >= len(l.GlobalPositionMap) {
		return false
	}
	_, ok := l.GlobalPositionMap[level][pos]
	return ok
}

// CoefficientAt resolves the wavelet coefficient for channel ch at pixel
// position pos and tree level, looking it up through GlobalPositionMap (the
// owning cell) then the cell's own PositionMap. It returns (0, false) when
// pos isn't owned by any populated cell at that level — the graceful
// fallback spec.md calls for instead of the reference implementation's
// panic on a missing/boundary cell (spec.md §9 design note).
func (l *Lattice) CoefficientAt(level uint8, pos Vec, ch int) (int32, bool) {
	if int(level) >= len(l.GlobalPositionMap) {
		return 0, false
	}
	center, ok := l.GlobalPositionMap[level][pos]
	if !ok {
		return 0, false
	}
	cell := l.Cells[center]
	if cell == nil {
		return 0, false
	}
	idx, ok := cell.PositionMap[level][pos]
	if !ok {
		return 0, false
	}
	coef := cell.Coefficients[ch][idx]
	if !coef.Ok {
		return 0, false
	}
	return coef.V, true
}

// CoefficientOrZero is CoefficientAt with the missing/unpopulated case
// collapsed to 0, matching the `.unwrap_or(0)` fallback used throughout the
// reference implementation's neighborhood accessors.
func (l *Lattice) CoefficientOrZero(level uint8, pos Vec, ch int) int32 {
	v, _ := l.CoefficientAt(level, pos, ch)
	return v
}

// SetCoefficient resolves the same owner-cell path as CoefficientAt and
// writes a decoded value into it. It is a no-op if pos isn't owned by any
// populated cell at that level.
func (l *Lattice) SetCoefficient(level uint8, pos Vec, ch int, v int32) {
	if int(level) >= len(l.GlobalPositionMap) {
		return
	}
	center, ok := l.GlobalPositionMap[level][pos]
	if !ok {
		return
	}
	cell := l.Cells[center]
	if cell == nil {
		return
	}
	idx, ok := cell.PositionMap[level][pos]
	if !ok {
		return
	}
	cell.Coefficients[ch][idx] = Coef{V: v, Ok: true}
}

// PopulatedCentersSorted returns the centers of every populated cell, in
// the deterministic total order encode and decode both rely on (spec.md
// §5: "Encoder emits coefficients in the order (channel, level ascending,
// sorted_layers[level])" — the low-frequency scan precedes this and needs
// its own fixed cell order).
func (l *Lattice) PopulatedCentersSorted() []Vec {
	var centers []Vec
	for center, cell := range l.Cells {
		if l.Populated(cell) {
			centers = append(centers, center)
		}
	}
	sort.Slice(centers, func(i, j int) bool { return Less(centers[i], centers[j]) })
	return centers
}

// ParentCoefficientOrZero reads the coarser-scale estimate for a neighbor
// offset: the coefficient at tree position floor(idx/2) within the cell that
// owns pos at the given level, per spec.md §4.3's "parent-level taps...
// reading the coefficient at tree position floor(loc/2)".
func (l *Lattice) ParentCoefficientOrZero(level uint8, pos Vec, ch int) int32 {
	if int(level) >= len(l.GlobalPositionMap) {
		return 0
	}
	center, ok := l.GlobalPositionMap[level][pos]
	if !ok {
		return 0
	}
	cell := l.Cells[center]
	if cell == nil {
		return 0
	}
	idx, ok := cell.PositionMap[level][pos]
	if !ok {
		return 0
	}
	coef := cell.Coefficients[ch][idx/2]
	if !coef.Ok {
		return 0
	}
	return coef.V
}
