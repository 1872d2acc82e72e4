// internal/pipeline/pipeline.go
package pipeline

import (
	"context"

	"golang.org/x/sync/errgroup"

	"seqalign-core/align"
	"seqalign-core/fasta"
)

// Config controls batch alignment execution.
type Config struct {
	Threads int // worker goroutines (>=1; caller resolves 0 to NumCPU)
	Scheme  align.Scheme
}

// Alignment pairs a core result with the records that produced it.
type Alignment struct {
	QueryID  string
	TargetID string
	align.Result
}

// ForEachAlignment aligns every query record against every target record
// and calls visit once per pair, in query-major input order regardless of
// Threads. Pairs share no state, so they are fanned out across an errgroup
// and collected by index; visit runs on the calling goroutine.
func ForEachAlignment(
	ctx context.Context,
	cfg Config,
	queries, targets []fasta.Record,
	visit func(Alignment) error,
) error {
	thr := cfg.Threads
	if thr < 1 {
		thr = 1
	}

	out := make([]Alignment, len(queries)*len(targets))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(thr)
	for qi := range queries {
		for ti := range targets {
			qi, ti := qi, ti
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				q, t := queries[qi], targets[ti]
				res, err := align.Align(q.Seq, t.Seq, cfg.Scheme)
				if err != nil {
					return err
				}
				out[qi*len(targets)+ti] = Alignment{QueryID: q.ID, TargetID: t.ID, Result: res}
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i := range out {
		if err := visit(out[i]); err != nil {
			return err
		}
	}
	return nil
}
