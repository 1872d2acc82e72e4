// internal/summary/summary.go
package summary

import (
	"fmt"
	"io"

	"github.com/montanaflynn/stats"
)

// Summary aggregates the scores of a batch of alignments.
type Summary struct {
	Count  int
	Min    float64
	Max    float64
	Mean   float64
	Median float64
	StdDev float64
}

// FromScores computes a Summary; an empty batch yields the zero value.
func FromScores(scores []float64) (Summary, error) {
	if len(scores) == 0 {
		return Summary{}, nil
	}
	data := stats.Float64Data(scores)

	s := Summary{Count: len(scores)}
	var err error
	if s.Min, err = stats.Min(data); err != nil {
		return Summary{}, err
	}
	if s.Max, err = stats.Max(data); err != nil {
		return Summary{}, err
	}
	if s.Mean, err = stats.Mean(data); err != nil {
		return Summary{}, err
	}
	if s.Median, err = stats.Median(data); err != nil {
		return Summary{}, err
	}
	if s.StdDev, err = stats.StandardDeviation(data); err != nil {
		return Summary{}, err
	}
	return s, nil
}

// Write renders the summary as a single commented line, so it can trail
// TSV output or go to stderr without confusing downstream parsers.
func (s Summary) Write(w io.Writer) error {
	_, err := fmt.Fprintf(w,
		"# alignments=%d score min=%.1f max=%.1f mean=%.2f median=%.2f sd=%.2f\n",
		s.Count, s.Min, s.Max, s.Mean, s.Median, s.StdDev,
	)
	return err
}
