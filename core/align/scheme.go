// core/align/scheme.go
package align

import (
	"fmt"
	"math"
)

// Scheme holds the four scoring parameters for local alignment with
// affine gap penalties. A gap of length k costs GapOpen + k*GapExt:
// the first base of a new gap pays GapOpen+GapExt, each further base
// pays GapExt alone.
//
// By convention Match > 0 and the three penalties are <= 0, but no sign
// is enforced; the engine applies the formulas as given.
type Scheme struct {
	Match    float64
	Mismatch float64
	GapOpen  float64
	GapExt   float64
}

// Default returns the documented default parameters
// (match=5, mismatch=-4, gap_open=-12, gap_ext=-2).
func Default() Scheme {
	return Scheme{Match: 5, Mismatch: -4, GapOpen: -12, GapExt: -2}
}

// Validate rejects non-finite parameters before any matrix work starts.
func (s Scheme) Validate() error {
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"match", s.Match},
		{"mismatch", s.Mismatch},
		{"gap-open", s.GapOpen},
		{"gap-extend", s.GapExt},
	} {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return fmt.Errorf("scoring: %s must be finite, got %v", f.name, f.v)
		}
	}
	return nil
}

// score returns the substitution score for a pair of symbols.
func (s Scheme) score(a, b byte) float64 {
	if a == b {
		return s.Match
	}
	return s.Mismatch
}
