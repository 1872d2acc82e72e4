// pkg/api/alignments_v1.go
package api

// AlignmentV1 is the stable JSON schema for pairwise local alignments.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type AlignmentV1 struct {
	QueryID       string  `json:"query_id"`
	TargetID      string  `json:"target_id"`
	Score         float64 `json:"score"`
	QueryStart    int     `json:"query_start"`
	QueryEnd      int     `json:"query_end"`
	TargetStart   int     `json:"target_start"`
	TargetEnd     int     `json:"target_end"`
	Length        int     `json:"length"`
	Matches       int     `json:"matches"`
	Mismatches    int     `json:"mismatches"`
	Gaps          int     `json:"gaps"`
	Identity      float64 `json:"identity"`
	AlignedQuery  string  `json:"aligned_query,omitempty"`
	AlignedTarget string  `json:"aligned_target,omitempty"`
}
