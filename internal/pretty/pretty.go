// internal/pretty/pretty.go
package pretty

import (
	"fmt"
	"strings"

	"seqalign-core/align"
	"seqalign/internal/pipeline"
)

// Options control the ASCII rendering of aligned blocks.
type Options struct {
	// Alignment columns per block line. If <=0, use default (60).
	LineWidth int

	// Glyphs for the midline.
	MatchGlyph    string // default "|"
	MismatchGlyph string // default "."
	GapGlyph      string // default " "
}

// DefaultOptions matches the original tool's look.
var DefaultOptions = Options{
	LineWidth:     60,
	MatchGlyph:    "|",
	MismatchGlyph: ".",
	GapGlyph:      " ",
}

const linePrefix = "# "

// RenderAlignment renders a pipeline.Alignment as a block of "# "-prefixed
// lines so it can be interleaved with TSV rows: query line with positions,
// midline, target line, repeated per LineWidth columns.
func RenderAlignment(a pipeline.Alignment) string {
	return RenderAlignmentWithOptions(a, DefaultOptions)
}

func RenderAlignmentWithOptions(a pipeline.Alignment, opt Options) string {
	if a.Empty() {
		return linePrefix + "(empty alignment)\n"
	}
	width := opt.LineWidth
	if width <= 0 {
		width = DefaultOptions.LineWidth
	}

	mid := midline(a.Aligned1, a.Aligned2, opt)

	// Label width fits the largest end position.
	labelW := len(fmt.Sprint(a.End1))
	if w := len(fmt.Sprint(a.End2)); w > labelW {
		labelW = w
	}
	if labelW < 4 {
		labelW = 4
	}

	var b strings.Builder
	pos1, pos2 := a.Start1, a.Start2
	for start := 0; start < a.Length; start += width {
		end := start + width
		if end > a.Length {
			end = a.Length
		}
		chunk1 := a.Aligned1[start:end]
		chunk2 := a.Aligned2[start:end]

		end1 := pos1 + residues(chunk1) - 1
		end2 := pos2 + residues(chunk2) - 1

		fmt.Fprintf(&b, "%sQuery  %*d  %s  %d\n", linePrefix, labelW, pos1, chunk1, end1)
		fmt.Fprintf(&b, "%s       %*s  %s\n", linePrefix, labelW, "", mid[start:end])
		fmt.Fprintf(&b, "%sTarget %*d  %s  %d\n", linePrefix, labelW, pos2, chunk2, end2)
		fmt.Fprintf(&b, "%s\n", strings.TrimRight(linePrefix, " "))

		pos1 = end1 + 1
		pos2 = end2 + 1
	}
	return b.String()
}

// midline builds the match/mismatch/gap track between the aligned strings.
func midline(a1, a2 string, opt Options) string {
	match, mismatch, gap := opt.MatchGlyph, opt.MismatchGlyph, opt.GapGlyph
	if match == "" {
		match = DefaultOptions.MatchGlyph
	}
	if mismatch == "" {
		mismatch = DefaultOptions.MismatchGlyph
	}
	if gap == "" {
		gap = DefaultOptions.GapGlyph
	}

	var b strings.Builder
	b.Grow(len(a1))
	for i := 0; i < len(a1); i++ {
		switch {
		case a1[i] == align.Gap || a2[i] == align.Gap:
			b.WriteString(gap)
		case a1[i] == a2[i]:
			b.WriteString(match)
		default:
			b.WriteString(mismatch)
		}
	}
	return b.String()
}

// residues counts non-gap symbols in a chunk.
func residues(chunk string) int {
	n := 0
	for i := 0; i < len(chunk); i++ {
		if chunk[i] != align.Gap {
			n++
		}
	}
	return n
}
