package lattice

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// Lattice is the fractal tiling of an image plane: every cell reachable by
// BFS from the seed center, plus (after Finalize) the derived per-level
// position indexes used by the wavelet transform and context model.
type Lattice struct {
	Width, Height int32
	Depth         uint8

	// Cells holds every cell reached by the BFS, including boundary cells
	// outside the image box (spec.md §4.1 step 4: "so that neighbor lookups
	// during prediction never fault").
	Cells map[Vec]*Cell

	// GlobalPositionMap[level] maps a populated pixel position to the center
	// of the (non-dropped) cell that owns it. Populated by Finalize.
	GlobalPositionMap []map[Vec]Vec

	// SortedLayers[level] is the raster-like traversal order of every
	// populated pixel position at that level. Populated by Finalize.
	SortedLayers [][]Vec
}

// Build runs the BFS lattice construction of spec.md §4.1 (steps 1-4): it
// floods the plane with fractal cells from the seed center outward,
// instantiating boundary cells too so downstream neighbor lookups never
// index a missing key.
func Build(width, height int) (*Lattice, error) {
	depth, center, err := SelectDepth(width, height)
	if err != nil {
		return nil, err
	}

	cells := make(map[Vec]*Cell)
	queue := []Vec{center}
	var boundary []Vec

	for len(queue) > 0 {
		pos := queue[0]
		queue = queue[1:]

		if _, ok := cells[pos]; ok {
			continue
		}

		if !pos.InBox(int32(width), int32(height)) {
			boundary = append(boundary, pos)
			continue
		}

		cell := NewCell(pos, depth)
		for _, n := range cell.NeighborCenters() {
			if _, ok := cells[n]; ok {
				continue
			}
			if slices.Contains(queue, n) {
				continue
			}
			queue = append(queue, n)
		}
		cells[pos] = cell
	}

	for _, pos := range boundary {
		if _, ok := cells[pos]; ok {
			continue
		}
		b := NewCell(pos, depth)
		b.Boundary = true
		cells[pos] = b
	}

	return &Lattice{
		Width:  int32(width),
		Height: int32(height),
		Depth:  depth,
		Cells:  cells,
	}, nil
}

// Populated reports whether a cell has a DC root, i.e. it is not an
// out-of-bounds tile (spec.md §3 invariant: cells with any
// coefficients[c][0] == None are dropped before encoding). Only channel 0 is
// consulted: root presence depends on which pixel positions are in bounds,
// never on pixel values, so every analyzed channel agrees with channel 0,
// while the slots of channels an image does not use are never filled.
func (l *Lattice) Populated(c *Cell) bool {
	if c.Boundary {
		return false
	}
	return c.Coefficients[0][0].Ok
}

// Finalize computes GlobalPositionMap and SortedLayers from the currently
// populated cells. Must be called after the wavelet transform has filled in
// Cell.Coefficients for every cell.
func (l *Lattice) Finalize() error {
	l.GlobalPositionMap = make([]map[Vec]Vec, l.Depth)
	for level := range l.GlobalPositionMap {
		l.GlobalPositionMap[level] = make(map[Vec]Vec)
	}

	var any *Cell
	count := 0
	for _, c := range l.Cells {
		if !l.Populated(c) {
			continue
		}
		any = c
		count++
		for level := uint8(0); level < l.Depth; level++ {
			lo, hi := 1<<level, 1<<(level+1)
			for _, pos := range c.ImagePositions[lo:hi] {
				l.GlobalPositionMap[level][pos] = c.Center
			}
		}
	}
	if any == nil {
		return fmt.Errorf("lattice: no populated cells for %dx%d image", l.Width, l.Height)
	}

	minRe, maxRe, minIm, maxIm := bounds(l.GlobalPositionMap[l.Depth-1])
	center := Vec{Re: l.Width / 2, Im: l.Height / 2}

	l.SortedLayers = make([][]Vec, l.Depth)
	for level := uint8(0); level < l.Depth; level++ {
		plane := scanLevel(level, l.Depth, center, l.GlobalPositionMap[level], minRe, maxRe, minIm, maxIm)
		if len(plane) != count*(1<<level) {
			return fmt.Errorf("lattice: level %d scan produced %d positions, want %d", level, len(plane), count*(1<<level))
		}
		l.SortedLayers[level] = plane
	}
	return nil
}

func bounds(m map[Vec]Vec) (minRe, maxRe, minIm, maxIm int32) {
	first := true
	for pos := range m {
		if first {
			minRe, maxRe, minIm, maxIm = pos.Re, pos.Re, pos.Im, pos.Im
			first = false
			continue
		}
		if pos.Re < minRe {
			minRe = pos.Re
		}
		if pos.Re > maxRe {
			maxRe = pos.Re
		}
		if pos.Im < minIm {
			minIm = pos.Im
		}
		if pos.Im > maxIm {
			maxIm = pos.Im
		}
	}
	return
}

func abs32(x int32) int32 {
	if x < 0 {
		return -x
	}
	return x
}

// isPosInRowBoundary mirrors the reference implementation's row-boundary
// test used to stop the column-advance scan.
func isPosInRowBoundary(pos Vec, rowDir Vec, minRe, maxRe, minIm, maxIm int32) bool {
	if abs32(rowDir.Re) > abs32(rowDir.Im) {
		return pos.Im >= minIm && pos.Im <= maxIm
	}
	return pos.Re >= minRe && pos.Re <= maxRe
}

// scanLevel produces the deterministic raster-like traversal order of all
// populated pixel positions at one tree level (spec.md §4.1 step 7). It is a
// direct port of the reference implementation's scan_level, including the
// level-(D-2) step alternation that compensates for the small-depth
// neighbor-formula skew.
func scanLevel(level, depth uint8, center Vec, globalPos map[Vec]Vec, minRe, maxRe, minIm, maxIm int32) []Vec {
	vectors := nearbyVectors(depth - level)
	rowDir := vectors[3]
	revRowDir := vectors[0]
	colDir := vectors[1]
	revColDir := vectors[4]

	specialLevel := depth - 2

	present := func(p Vec) bool {
		_, ok := globalPos[p]
		return ok
	}

	first := center
	seventMod := 0
	if !present(center.Add(revRowDir)) && present(center.Add(Vec{-1, -1})) {
		seventMod = 1
	}
	lastSeen := first

	advanceRow := func() {
		if level != specialLevel {
			first = first.Add(revRowDir)
		} else {
			if seventMod%2 == 0 {
				first = first.Add(revRowDir)
			} else {
				first = first.Add(Vec{-1, -1})
			}
			seventMod++
		}
	}

	for present(first) {
		lastSeen = first
		advanceRow()
	}

	for {
		columnForward := first
		columnBackward := first
		emptyColumn := true
		for (columnForward.Im <= maxIm && columnForward.Im >= minIm) ||
			(columnBackward.Im <= maxIm && columnBackward.Im >= minIm) ||
			(columnForward.Re <= maxRe && columnForward.Re >= minRe) ||
			(columnBackward.Re <= maxRe && columnBackward.Re >= minRe) {
			columnForward = columnForward.Add(colDir)
			columnBackward = columnBackward.Add(revColDir)
			if present(columnForward) {
				lastSeen = columnForward
				emptyColumn = false
				break
			}
			if present(columnBackward) {
				lastSeen = columnBackward
				emptyColumn = false
				break
			}
		}
		if emptyColumn {
			first = lastSeen
			break
		}
		advanceRow()
	}

	for first.Im <= maxIm && first.Im >= minIm && first.Re <= maxRe && first.Re >= minRe {
		first = first.Add(revColDir)
		if present(first) {
			lastSeen = first
		}
	}
	first = lastSeen
	seventMod = 1

	var plane []Vec
outer:
	for {
		scan := first
		for {
			if present(scan) {
				plane = append(plane, scan)
			}
			if (scan.Im > maxIm || scan.Im < minIm) || (colDir.Im == 0 && (scan.Re > maxRe || scan.Re < minRe)) {
				break
			}
			scan = scan.Add(colDir)
		}

		if level != specialLevel {
			first = first.Add(rowDir)
		} else {
			if seventMod%2 == 0 {
				first = first.Add(Vec{1, 1})
			} else {
				first = first.Add(rowDir)
			}
			seventMod++
		}

		for !present(first) {
			first = first.Add(colDir)
			if !isPosInRowBoundary(first, rowDir, minRe, maxRe, minIm, maxIm) {
				break outer
			}
		}
		if present(first) {
			lastSeen = first
			for first.Im <= maxIm && first.Im >= minIm && first.Re <= maxRe && first.Re >= minRe {
				first = first.Add(revColDir)
				if present(first) {
					lastSeen = first
				}
			}
			first = lastSeen
		}
	}
	return plane
}
