// internal/pipeline/pipeline_test.go
package pipeline

import (
	"context"
	"fmt"
	"testing"

	"seqalign-core/align"
	"seqalign-core/fasta"
)

func recs(n int) []fasta.Record {
	out := make([]fasta.Record, n)
	for i := range out {
		out[i] = fasta.Record{ID: fmt.Sprintf("r%d", i), Seq: []byte("ACGTACGT")}
	}
	return out
}

func TestAllPairsOrder(t *testing.T) {
	cfg := Config{Threads: 4, Scheme: align.Default()}
	var got []string
	err := ForEachAlignment(context.Background(), cfg, recs(3), recs(2), func(a Alignment) error {
		got = append(got, a.QueryID+"/"+a.TargetID)
		return nil
	})
	if err != nil {
		t.Fatalf("ForEachAlignment: %v", err)
	}
	want := []string{"r0/r0", "r0/r1", "r1/r0", "r1/r1", "r2/r0", "r2/r1"}
	if len(got) != len(want) {
		t.Fatalf("got %d alignments, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("pair %d = %s, want %s (query-major order)", i, got[i], want[i])
		}
	}
}

// Worker count must not change results: same pairs, same scores.
func TestParallelMatchesSerial(t *testing.T) {
	run := func(threads int) []Alignment {
		var out []Alignment
		cfg := Config{Threads: threads, Scheme: align.Default()}
		err := ForEachAlignment(context.Background(), cfg, recs(4), recs(4), func(a Alignment) error {
			out = append(out, a)
			return nil
		})
		if err != nil {
			t.Fatalf("threads=%d: %v", threads, err)
		}
		return out
	}

	serial := run(1)
	parallel := run(8)
	if len(serial) != len(parallel) {
		t.Fatalf("count differs: %d vs %d", len(serial), len(parallel))
	}
	for i := range serial {
		if serial[i] != parallel[i] {
			t.Errorf("pair %d differs between serial and parallel", i)
		}
	}
}

func TestCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := ForEachAlignment(ctx, Config{Threads: 2, Scheme: align.Default()}, recs(2), recs(2), func(Alignment) error {
		return nil
	})
	if err == nil {
		t.Fatal("expected context error")
	}
}

func TestAlignErrorPropagates(t *testing.T) {
	bad := []fasta.Record{{ID: "empty", Seq: nil}}
	err := ForEachAlignment(context.Background(), Config{Threads: 1, Scheme: align.Default()}, bad, recs(1), func(Alignment) error {
		t.Fatal("visit must not run on error")
		return nil
	})
	if err == nil {
		t.Fatal("expected error for empty sequence")
	}
}
