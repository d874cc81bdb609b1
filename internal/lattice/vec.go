// Package lattice builds the fractal (twindragon) tiling of the image plane
// and the per-cell binary-tree position indexes the wavelet transform walks.
package lattice

// Vec is an integer complex number: a lattice coordinate or a digit vector.
//
// spec.md requires exact integer complex arithmetic; math/cmplx is
// float64-backed and cannot represent the lattice exactly, so a small
// dedicated type is used instead (the teacher's own colorspace package
// makes the same call, working on raw int32 triples rather than a builtin
// numeric type).
type Vec struct {
	Re, Im int32
}

// Add returns v+w.
func (v Vec) Add(w Vec) Vec { return Vec{v.Re + w.Re, v.Im + w.Im} }

// Sub returns v-w.
func (v Vec) Sub(w Vec) Vec { return Vec{v.Re - w.Re, v.Im - w.Im} }

// Neg returns -v.
func (v Vec) Neg() Vec { return Vec{-v.Re, -v.Im} }

// InBox reports whether v lies within [0,w] x [0,h], inclusive, matching the
// lattice builder's boundary test in spec.md §4.1.
func (v Vec) InBox(w, h int32) bool {
	return v.Re >= 0 && v.Im >= 0 && v.Re <= w && v.Im <= h
}

// Less provides a deterministic total order over Vec, used to sort cell keys
// before a scan (re ascending, then im ascending), matching
// original_source's utils::order_complex.
func Less(a, b Vec) bool {
	if a.Re != b.Re {
		return a.Re < b.Re
	}
	return a.Im < b.Im
}
