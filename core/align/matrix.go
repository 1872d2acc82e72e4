// core/align/matrix.go
package align

import "math"

// matrices holds the three coupled score matrices of shape (m+1)x(n+1):
//
//	h[i][j]  best local score of an alignment ending exactly at (i, j), floor 0
//	e[i][j]  best score ending with a gap in seq1 (seq2 advances alone)
//	f[i][j]  best score ending with a gap in seq2 (seq1 advances alone)
//
// Row 0 and column 0 of h are 0. Column 0 of e and row 0 of f are -Inf so
// a gap can never open off the matrix edge. Built once per call, read during
// traceback, then discarded; never shared across calls.
type matrices struct {
	h, e, f [][]float64
}

// build fills the three matrices for a against b under sc. Row-major sweep;
// e and f are computed before h at each cell because h depends on both.
// O(m*n) time and space, no error conditions.
func build(a, b []byte, sc Scheme) *matrices {
	m, n := len(a), len(b)
	negInf := math.Inf(-1)

	mx := &matrices{
		h: newMatrix(m+1, n+1, 0),
		e: newMatrix(m+1, n+1, negInf),
		f: newMatrix(m+1, n+1, negInf),
	}
	for j := 0; j <= n; j++ {
		mx.h[0][j] = 0
	}
	for i := 0; i <= m; i++ {
		mx.h[i][0] = 0
	}

	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			mx.e[i][j] = max2(
				mx.h[i][j-1]+sc.GapOpen+sc.GapExt,
				mx.e[i][j-1]+sc.GapExt,
			)
			mx.f[i][j] = max2(
				mx.h[i-1][j]+sc.GapOpen+sc.GapExt,
				mx.f[i-1][j]+sc.GapExt,
			)
			diag := mx.h[i-1][j-1] + sc.score(a[i-1], b[j-1])
			// The 0 floor is what makes the alignment local.
			mx.h[i][j] = max2(0, max2(diag, max2(mx.e[i][j], mx.f[i][j])))
		}
	}
	return mx
}

// peak returns the maximum of h and its cell. Ties break to the first
// maximum in row-major scan order (strict > keeps the earliest cell).
func (mx *matrices) peak() (best float64, bi, bj int) {
	for i := range mx.h {
		for j := range mx.h[i] {
			if mx.h[i][j] > best {
				best, bi, bj = mx.h[i][j], i, j
			}
		}
	}
	return best, bi, bj
}

func newMatrix(rows, cols int, fill float64) [][]float64 {
	cells := make([]float64, rows*cols)
	if fill != 0 {
		for i := range cells {
			cells[i] = fill
		}
	}
	m := make([][]float64, rows)
	for i := range m {
		m[i] = cells[i*cols : (i+1)*cols : (i+1)*cols]
	}
	return m
}

func max2(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
