// internal/output/text.go
package output

import (
	"fmt"
	"io"

	"seqalign/internal/pipeline"
)

// Row renders one alignment as a TSV line (no trailing newline).
func Row(a pipeline.Alignment) string {
	return fmt.Sprintf("%s\t%s\t%.1f\t%d\t%d\t%d\t%d\t%d\t%d\t%d\t%d\t%.1f",
		a.QueryID, a.TargetID, a.Score,
		a.Start1, a.End1, a.Start2, a.End2,
		a.Length, a.Matches, a.Mismatches, a.Gaps, a.Identity,
	)
}

// WriteText prints one TSV line per alignment, optionally preceded by the
// header and followed by a rendered block per row (render may be nil).
func WriteText(w io.Writer, list []pipeline.Alignment, header bool, render func(pipeline.Alignment) string) error {
	if header {
		if _, err := fmt.Fprintln(w, TSVHeader); err != nil {
			return err
		}
	}
	for _, a := range list {
		if _, err := fmt.Fprintln(w, Row(a)); err != nil {
			return err
		}
		if render != nil {
			if _, err := io.WriteString(w, render(a)); err != nil {
				return err
			}
		}
	}
	return nil
}

// StreamText is the channel-driven variant used by the writer goroutine.
func StreamText(w io.Writer, in <-chan pipeline.Alignment, header bool, render func(pipeline.Alignment) string) error {
	if header {
		if _, err := fmt.Fprintln(w, TSVHeader); err != nil {
			return err
		}
	}
	for a := range in {
		if _, err := fmt.Fprintln(w, Row(a)); err != nil {
			return err
		}
		if render != nil {
			if _, err := io.WriteString(w, render(a)); err != nil {
				return err
			}
		}
	}
	return nil
}
