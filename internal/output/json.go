// internal/output/json.go
package output

import (
	"io"

	"seqalign/internal/jsonutil"
	"seqalign/internal/pipeline"
	"seqalign/pkg/api"
)

// ToAPIAlignment converts a domain alignment to the stable wire schema (v1).
func ToAPIAlignment(a pipeline.Alignment) api.AlignmentV1 {
	return api.AlignmentV1{
		QueryID:       a.QueryID,
		TargetID:      a.TargetID,
		Score:         a.Score,
		QueryStart:    a.Start1,
		QueryEnd:      a.End1,
		TargetStart:   a.Start2,
		TargetEnd:     a.End2,
		Length:        a.Length,
		Matches:       a.Matches,
		Mismatches:    a.Mismatches,
		Gaps:          a.Gaps,
		Identity:      a.Identity,
		AlignedQuery:  a.Aligned1,
		AlignedTarget: a.Aligned2,
	}
}

// WriteJSON writes a single JSON array of v1 alignments (pretty-indented).
func WriteJSON(w io.Writer, list []pipeline.Alignment) error {
	out := make([]api.AlignmentV1, 0, len(list))
	for _, a := range list {
		out = append(out, ToAPIAlignment(a))
	}
	return jsonutil.EncodePretty(w, out)
}
