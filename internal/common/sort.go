// internal/common/sort.go
package common

import (
	"sort"

	"seqalign/internal/pipeline"
)

// LessAlignment defines a stable order for alignments (for -sort):
// best score first, then query ID, target ID, and coordinates.
func LessAlignment(a, b pipeline.Alignment) bool {
	if a.Score != b.Score {
		return a.Score > b.Score
	}
	if a.QueryID != b.QueryID {
		return a.QueryID < b.QueryID
	}
	if a.TargetID != b.TargetID {
		return a.TargetID < b.TargetID
	}
	if a.Start1 != b.Start1 {
		return a.Start1 < b.Start1
	}
	return a.Start2 < b.Start2
}

func SortAlignments(list []pipeline.Alignment) {
	sort.SliceStable(list, func(i, j int) bool { return LessAlignment(list[i], list[j]) })
}
