// core/align/align.go
package align

import "errors"

// Gap is the marker emitted for a position with no counterpart symbol.
const Gap byte = '-'

// ErrEmptySequence is returned when either input sequence has length zero.
var ErrEmptySequence = errors.New("align: sequences must be non-empty")

// Result is the outcome of a single local alignment. Aligned1 and Aligned2
// are equal-length strings over the input symbols plus the Gap marker.
// Coordinates are 1-based inclusive positions in the original (ungapped)
// inputs; for an empty alignment End < Start.
type Result struct {
	Aligned1 string
	Aligned2 string
	Score    float64

	Start1, End1 int
	Start2, End2 int

	Length     int
	Matches    int
	Mismatches int
	Gaps       int
	Identity   float64 // percent of aligned columns that match
}

// Empty reports whether no positive-scoring alignment exists.
func (r Result) Empty() bool { return r.Length == 0 }

// Align computes the best local alignment of seq1 against seq2 under sc
// using the Smith-Waterman recurrence with affine gap penalties. It is a
// pure function: inputs are never mutated and no state survives the call.
// Symbols are compared byte-for-byte; case folding is the caller's concern.
//
// The only failure modes are empty input and a non-finite scheme. A score
// of 0 with an empty alignment is a valid, degenerate result.
func Align(seq1, seq2 []byte, sc Scheme) (Result, error) {
	if len(seq1) == 0 || len(seq2) == 0 {
		return Result{}, ErrEmptySequence
	}
	if err := sc.Validate(); err != nil {
		return Result{}, err
	}

	mx := build(seq1, seq2, sc)
	score, pi, pj := mx.peak()
	a1, a2, si, sj := traceback(mx, seq1, seq2, sc, pi, pj)

	r := Result{
		Aligned1: string(a1),
		Aligned2: string(a2),
		Score:    score,
		Start1:   si + 1,
		End1:     pi,
		Start2:   sj + 1,
		End2:     pj,
	}
	r.tally()
	return r, nil
}

// traceback walks backward from the peak cell, rederiving at each step which
// of the three recurrence cases produced h[i][j]. No backpointers are stored;
// the matrices plus the formulas are enough. Precedence on exact ties is
// diagonal, then gap-in-seq1 (e), then gap-in-seq2 (f). The walk stops at a
// zero cell or a matrix edge. Emitted pairs are reversed once at the end.
func traceback(mx *matrices, seq1, seq2 []byte, sc Scheme, pi, pj int) (a1, a2 []byte, i, j int) {
	i, j = pi, pj
	for i > 0 && j > 0 && mx.h[i][j] > 0 {
		switch {
		case mx.h[i][j] == mx.h[i-1][j-1]+sc.score(seq1[i-1], seq2[j-1]):
			a1 = append(a1, seq1[i-1])
			a2 = append(a2, seq2[j-1])
			i--
			j--
		case mx.h[i][j] == mx.e[i][j]:
			a1 = append(a1, Gap)
			a2 = append(a2, seq2[j-1])
			j--
		default: // mx.h[i][j] == mx.f[i][j]
			a1 = append(a1, seq1[i-1])
			a2 = append(a2, Gap)
			i--
		}
	}
	reverse(a1)
	reverse(a2)
	return a1, a2, i, j
}

// tally fills the summary statistics from the aligned strings.
func (r *Result) tally() {
	r.Length = len(r.Aligned1)
	for k := 0; k < r.Length; k++ {
		a, b := r.Aligned1[k], r.Aligned2[k]
		switch {
		case a == Gap || b == Gap:
			r.Gaps++
		case a == b:
			r.Matches++
		default:
			r.Mismatches++
		}
	}
	if r.Length > 0 {
		r.Identity = 100 * float64(r.Matches) / float64(r.Length)
	}
}

func reverse(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}
