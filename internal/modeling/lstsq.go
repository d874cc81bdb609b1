package modeling

import "gonum.org/v1/gonum/mat"

// solve returns the minimum-norm least-squares solution x of M x ≈ v via a
// truncated-SVD pseudoinverse: singular values smaller than tol are treated
// as zero, the same truncation rule the reference implementation's lstsq
// crate applies (spec.md §4.3: "truncation tolerance 1e-14"). An empty or
// degenerate M (e.g. a 10x10 all-zero test image, §8 scenario 6) yields an
// all-zero solution rather than an error.
func solve(m *mat.Dense, v *mat.VecDense, tol float64) []float64 {
	rows, cols := m.Dims()
	out := make([]float64, cols)
	if rows == 0 {
		return out
	}

	var svd mat.SVD
	ok := svd.Factorize(m, mat.SVDThin)
	if !ok {
		return out
	}

	var u, vMat mat.Dense
	svd.UTo(&u)
	svd.VTo(&vMat)
	values := svd.Values(nil)

	// x = V * Sigma^+ * U^T * v
	uCols := u.RawMatrix().Cols
	coeffs := make([]float64, uCols)
	for j := 0; j < uCols && j < len(values); j++ {
		if values[j] <= tol {
			continue
		}
		dot := mat.Dot(u.ColView(j), v)
		coeffs[j] = dot / values[j]
	}

	for i := 0; i < cols; i++ {
		var sum float64
		for j := 0; j < uCols && j < len(values); j++ {
			sum += vMat.At(i, j) * coeffs[j]
		}
		out[i] = sum
	}
	return out
}
