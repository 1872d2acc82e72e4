// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"

	"seqalign/internal/version"
)

// Options holds all CLI flags and arguments.
type Options struct {
	// Sequence input
	QueryFile  string
	TargetFile string

	// Scoring parameters
	Match    float64
	Mismatch float64
	GapOpen  float64
	GapExt   float64

	// Execution
	AllPairs bool
	Threads  int

	// Output
	Output    string
	Pretty    bool
	LineWidth int
	Sort      bool
	Header    bool // true unless --no-header
	Stats     bool
	Quiet     bool

	Version bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: pairwise local alignment (Smith-Waterman, affine gaps)

Version: %s

Usage of %s:
`, name, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}

// Parse is the top-level call for CLI parsing.
func Parse() (Options, error) { return ParseArgs(flag.CommandLine, nil) }

// ParseArgs registers and parses all flags, returns an Options struct.
// Penalty sign convention: mismatch and the two gap parameters are expected
// to be <= 0; violations warn rather than fail (see app).
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	// Sequence input
	fs.StringVar(&opt.QueryFile, "query", "", "query FASTA file ('-' for stdin, .gz ok) [*]")
	fs.StringVar(&opt.TargetFile, "target", "", "target FASTA file ('-' for stdin, .gz ok) [*]")

	// Scoring parameters
	fs.Float64Var(&opt.Match, "match", 5, "score for a matching pair [5]")
	fs.Float64Var(&opt.Mismatch, "mismatch", -4, "score for a mismatching pair [-4]")
	fs.Float64Var(&opt.GapOpen, "gap-open", -12, "penalty for opening a gap [-12]")
	fs.Float64Var(&opt.GapExt, "gap-extend", -2, "penalty per extended gap base [-2]")

	// Execution
	fs.BoolVar(&opt.AllPairs, "all-pairs", false, "align every query record against every target record [false]")
	fs.IntVar(&opt.Threads, "threads", 0, "number of worker threads (0 = all CPUs) [0]")

	// Output
	fs.StringVar(&opt.Output, "output", "text", "output format: text | json [text]")
	fs.BoolVar(&opt.Pretty, "pretty", false, "render aligned blocks under each text row [false]")
	fs.IntVar(&opt.LineWidth, "line-width", 60, "alignment columns per pretty block line [60]")
	fs.BoolVar(&opt.Sort, "sort", false, "sort outputs for determinism (score desc, then IDs) [false]")
	fs.BoolVar(&opt.Stats, "stats", false, "print batch score summary to stderr [false]")
	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress warnings [false]")
	noHeader := false
	fs.BoolVar(&noHeader, "no-header", false, "suppress header line in text/TSV [false]")

	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if help {
		fs.Usage()
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}
	opt.Header = !noHeader

	// Validation
	if opt.QueryFile == "" || opt.TargetFile == "" {
		return opt, errors.New("--query and --target are both required")
	}
	if opt.QueryFile == "-" && opt.TargetFile == "-" {
		return opt, errors.New("only one of --query/--target may read stdin")
	}
	if opt.Threads < 0 {
		return opt, errors.New("--threads must be ≥ 0")
	}
	if opt.LineWidth < 1 {
		return opt, errors.New("--line-width must be ≥ 1")
	}
	if opt.Output != "text" && opt.Output != "json" {
		return opt, fmt.Errorf("invalid --output %q", opt.Output)
	}
	return opt, nil
}

// SignWarnings reports which scoring parameters violate the documented sign
// convention (match > 0, penalties <= 0). The engine accepts them anyway.
func (o Options) SignWarnings() []string {
	var warns []string
	if o.Match <= 0 {
		warns = append(warns, fmt.Sprintf("--match %v is not positive", o.Match))
	}
	if o.Mismatch > 0 {
		warns = append(warns, fmt.Sprintf("--mismatch %v is positive; penalties are conventionally ≤ 0", o.Mismatch))
	}
	if o.GapOpen > 0 {
		warns = append(warns, fmt.Sprintf("--gap-open %v is positive; penalties are conventionally ≤ 0", o.GapOpen))
	}
	if o.GapExt > 0 {
		warns = append(warns, fmt.Sprintf("--gap-extend %v is positive; penalties are conventionally ≤ 0", o.GapExt))
	}
	return warns
}
