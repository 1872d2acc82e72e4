// core/fasta/reader.go
package fasta

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Record is one parsed FASTA sequence. ID is the first whitespace-delimited
// token of the header; Description is the remainder, if any. Seq is the
// concatenated sequence upper-cased — the alignment engine compares symbols
// byte-for-byte, so normalization happens here, at the parsing boundary.
type Record struct {
	ID          string
	Description string
	Seq         []byte
}

// ErrNoRecords is returned when the input contains no FASTA header at all.
var ErrNoRecords = errors.New("fasta: no records found (missing '>' header)")

// ReadCtx parses FASTA from r and calls emit for each complete record.
// Cancellation via ctx is honored between lines. Records are validated:
// a record with no sequence data, or with non-IUPAC symbols, is an error.
func ReadCtx(ctx context.Context, r io.Reader, emit func(Record) error) error {
	sc := bufio.NewScanner(r)
	const maxLine = 64 * 1024 * 1024 // allow very long single-line sequences (64 MiB)
	buf := make([]byte, 64*1024)
	sc.Buffer(buf, maxLine)

	var (
		cur  *Record
		seen bool
		seq  = make([]byte, 0, 1<<16)
	)

	flush := func() error {
		if cur == nil {
			return nil
		}
		if len(seq) == 0 {
			return fmt.Errorf("fasta: record %q has no sequence data", cur.ID)
		}
		cur.Seq = normalize(seq)
		if err := ValidateSeq(cur.Seq); err != nil {
			return fmt.Errorf("fasta: record %q: %w", cur.ID, err)
		}
		if err := emit(*cur); err != nil {
			return err
		}
		cur, seq = nil, seq[:0]
		return nil
	}

	for sc.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 {
			continue
		}
		if line[0] == '>' {
			if err := flush(); err != nil {
				return err
			}
			seen = true
			id, desc := splitHeader(line[1:])
			cur = &Record{ID: id, Description: desc}
			continue
		}
		if cur == nil {
			return fmt.Errorf("fasta: sequence data before any '>' header")
		}
		seq = append(seq, line...)
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("fasta scan: %w", err)
	}
	if err := flush(); err != nil {
		return err
	}
	if !seen {
		return ErrNoRecords
	}
	return nil
}

// ReadAll collects every record from r.
func ReadAll(r io.Reader) ([]Record, error) {
	var out []Record
	if err := ReadCtx(context.Background(), r, func(rec Record) error {
		out = append(out, rec)
		return nil
	}); err != nil {
		return nil, err
	}
	return out, nil
}

// errFirstDone is a sentinel to stop ReadCtx after one record.
var errFirstDone = errors.New("fasta: first record read")

// First returns only the first record of r, without parsing the rest.
func First(r io.Reader) (Record, error) {
	var rec Record
	err := ReadCtx(context.Background(), r, func(got Record) error {
		rec = got
		return errFirstDone
	})
	if errors.Is(err, errFirstDone) {
		return rec, nil
	}
	if err != nil {
		return Record{}, err
	}
	return rec, nil
}

// ReadAllPath opens path (gzip and "-" for stdin handled by Open) and
// collects every record, honoring ctx.
func ReadAllPath(ctx context.Context, path string) ([]Record, error) {
	rc, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	var out []Record
	if err := ReadCtx(ctx, rc, func(rec Record) error {
		out = append(out, rec)
		return nil
	}); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return out, nil
}

func splitHeader(hdr []byte) (id, desc string) {
	h := strings.TrimSpace(string(hdr))
	if i := strings.IndexAny(h, " \t"); i >= 0 {
		return h[:i], strings.TrimSpace(h[i+1:])
	}
	return h, ""
}

func normalize(seq []byte) []byte {
	out := make([]byte, len(seq))
	for i, b := range seq {
		if 'a' <= b && b <= 'z' {
			b -= 'a' - 'A'
		}
		out[i] = b
	}
	return out
}
