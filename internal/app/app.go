// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"runtime"

	"seqalign-core/align"
	"seqalign-core/fasta"
	"seqalign/internal/cli"
	"seqalign/internal/pipeline"
	"seqalign/internal/pretty"
	"seqalign/internal/summary"
	"seqalign/internal/version"
	"seqalign/internal/writers"
)

// RunContext parses argv, aligns the requested record pairs, and writes
// results to stdout. Exit codes: 0 ok, 2 usage/input error, 3 runtime or
// write error, 130 canceled.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("seqalign")
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		_, _ = cli.ParseArgs(fs, []string{"-h"})
		fs.SetOutput(outw)
		fs.Usage()
		if err := outw.Flush(); writers.IsBrokenPipe(err) {
			return 0
		} else if err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 3
		}
		return 0
	}

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
			if e := outw.Flush(); writers.IsBrokenPipe(e) {
				return 0
			} else if e != nil {
				_, _ = fmt.Fprintln(stderr, e)
				return 3
			}
			return 0
		}
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "seqalign version %s\n", version.Version)
		if e := outw.Flush(); writers.IsBrokenPipe(e) {
			return 0
		} else if e != nil {
			_, _ = fmt.Fprintln(stderr, e)
			return 3
		}
		return 0
	}

	if !opts.Quiet {
		for _, w := range opts.SignWarnings() {
			_, _ = fmt.Fprintf(stderr, "WARN: %s\n", w)
		}
	}

	scheme := align.Scheme{
		Match:    opts.Match,
		Mismatch: opts.Mismatch,
		GapOpen:  opts.GapOpen,
		GapExt:   opts.GapExt,
	}
	if err := scheme.Validate(); err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	queries, err := fasta.ReadAllPath(ctx, opts.QueryFile)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}
	targets, err := fasta.ReadAllPath(ctx, opts.TargetFile)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}
	if !opts.AllPairs {
		// Original behavior: one alignment, first record of each file.
		queries, targets = queries[:1], targets[:1]
	}

	thr := opts.Threads
	if thr <= 0 {
		thr = runtime.NumCPU()
	}

	popt := pretty.DefaultOptions
	popt.LineWidth = opts.LineWidth
	inCh, writeErr := writers.StartAlignmentWriterWithPrettyOptions(
		outw, opts.Output, opts.Sort, opts.Header, opts.Pretty, popt, thr*4)

	var scores []float64
	perr := pipeline.ForEachAlignment(ctx,
		pipeline.Config{Threads: thr, Scheme: scheme},
		queries, targets,
		func(a pipeline.Alignment) error {
			scores = append(scores, a.Score)
			select {
			case inCh <- a:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		},
	)
	close(inCh)

	if werr := <-writeErr; writers.IsBrokenPipe(werr) {
		return 0
	} else if werr != nil {
		_, _ = fmt.Fprintln(stderr, werr)
		return 3
	}
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return 0
	} else if e != nil {
		_, _ = fmt.Fprintln(stderr, e)
		return 3
	}

	if perr != nil {
		if errors.Is(perr, context.Canceled) {
			return 130
		}
		_, _ = fmt.Fprintln(stderr, perr)
		return 3
	}

	if opts.Stats {
		s, serr := summary.FromScores(scores)
		if serr != nil {
			_, _ = fmt.Fprintln(stderr, serr)
			return 3
		}
		if e := s.Write(stderr); e != nil && !writers.IsBrokenPipe(e) {
			return 3
		}
	}
	return 0
}

// Run wires RunContext to a background context.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
