// core/align/matrix_test.go
package align

import (
	"math"
	"testing"
)

// Matrix invariants: H is floored at 0 everywhere with zero borders, and the
// gap matrices carry -Inf sentinels along the edge a gap cannot open from.
func TestMatrixInvariants(t *testing.T) {
	a, b := []byte("GATTACA"), []byte("GCATGC")
	mx := build(a, b, Default())

	for i := range mx.h {
		for j := range mx.h[i] {
			if mx.h[i][j] < 0 {
				t.Fatalf("H[%d][%d] = %v < 0", i, j, mx.h[i][j])
			}
		}
	}
	for j := range mx.h[0] {
		if mx.h[0][j] != 0 {
			t.Errorf("H[0][%d] = %v, want 0", j, mx.h[0][j])
		}
		if !math.IsInf(mx.f[0][j], -1) {
			t.Errorf("F[0][%d] = %v, want -Inf", j, mx.f[0][j])
		}
	}
	for i := range mx.h {
		if mx.h[i][0] != 0 {
			t.Errorf("H[%d][0] = %v, want 0", i, mx.h[i][0])
		}
		if !math.IsInf(mx.e[i][0], -1) {
			t.Errorf("E[%d][0] = %v, want -Inf", i, mx.e[i][0])
		}
	}
}

// Every positive interior cell must equal one of its three derivations, so
// the pointer-free traceback can always rederive the step.
func TestCellsMatchRecurrence(t *testing.T) {
	a, b := []byte("ACGTTACGT"), []byte("ACGTACGT")
	sc := Scheme{Match: 5, Mismatch: -4, GapOpen: -3, GapExt: -1}
	mx := build(a, b, sc)

	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			h := mx.h[i][j]
			if h == 0 {
				continue
			}
			diag := mx.h[i-1][j-1] + sc.score(a[i-1], b[j-1])
			if h != diag && h != mx.e[i][j] && h != mx.f[i][j] {
				t.Fatalf("H[%d][%d] = %v matches no derivation (diag=%v E=%v F=%v)",
					i, j, h, diag, mx.e[i][j], mx.f[i][j])
			}
		}
	}
}
