// internal/output/common.go
package output

// TSVHeader is the canonical header row for text/TSV outputs.
// Keep this as the single source of truth; all writers should use it.
const TSVHeader = "query_id\ttarget_id\tscore\tquery_start\tquery_end\ttarget_start\ttarget_end\tlength\tmatches\tmismatches\tgaps\tidentity"
