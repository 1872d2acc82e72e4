// internal/writers/alignment.go
package writers

import (
	"fmt"
	"io"

	"seqalign/internal/common"
	"seqalign/internal/output"
	"seqalign/internal/pipeline"
	"seqalign/internal/pretty"
)

// StartAlignmentWriter spins up a writer goroutine for pipeline.Alignment
// items. (Backward-compatible wrapper using pretty.DefaultOptions.)
func StartAlignmentWriter(out io.Writer, format string, sort, header, prettyMode bool, bufSize int) (chan<- pipeline.Alignment, <-chan error) {
	return StartAlignmentWriterWithPrettyOptions(out, format, sort, header, prettyMode, pretty.DefaultOptions, bufSize)
}

// StartAlignmentWriterWithPrettyOptions allows customizing the pretty renderer.
func StartAlignmentWriterWithPrettyOptions(out io.Writer, format string, sort, header, prettyMode bool, popt pretty.Options, bufSize int) (chan<- pipeline.Alignment, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan pipeline.Alignment, bufSize)
	errCh := make(chan error, 1)

	var render func(pipeline.Alignment) string
	if prettyMode {
		render = func(a pipeline.Alignment) string { return pretty.RenderAlignmentWithOptions(a, popt) }
	}

	go func() {
		var err error
		switch format {
		case "json":
			var buf []pipeline.Alignment
			for a := range in {
				buf = append(buf, a)
			}
			if sort {
				common.SortAlignments(buf)
			}
			err = output.WriteJSON(out, buf)

		case "text":
			if sort {
				var buf []pipeline.Alignment
				for a := range in {
					buf = append(buf, a)
				}
				common.SortAlignments(buf)
				err = output.WriteText(out, buf, header, render)
			} else {
				err = output.StreamText(out, in, header, render)
			}

		default:
			err = fmt.Errorf("unsupported output %q", format)
		}
		// Drain so senders never block after a write error.
		for range in {
		}
		errCh <- err
	}()

	return in, errCh
}
