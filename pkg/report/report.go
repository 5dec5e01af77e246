// Package report renders benchmark results for people (an aligned table)
// and for later analysis (a parquet file, one row per unit).
package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/eunmann/twain-bench/pkg/bench"
	"github.com/eunmann/twain-bench/pkg/hostinfo"
	"github.com/eunmann/twain-bench/pkg/humanfmt"
)

// Run is one invocation of the harness: where it ran, on what corpus, and
// what each unit measured.
type Run struct {
	Host hostinfo.Info
	// Corpus is the source name. It is empty when only pathological units ran.
	Corpus  string
	Digest  uint64
	Results []bench.Result
}

// WriteTable prints a header and one aligned row per result.
func WriteTable(w io.Writer, run Run) error {
	mem := "unknown"
	if run.Host.MemoryKnown() {
		mem = humanfmt.Bytes(int64(run.Host.TotalMemBytes))
	}
	if _, err := fmt.Fprintf(w, "host: %s/%s, %d CPUs, %s RAM, %s\n",
		run.Host.OS, run.Host.Arch, run.Host.CPUs, mem, run.Host.GoVersion); err != nil {
		return err
	}
	if run.Corpus != "" {
		if _, err := fmt.Fprintf(w, "corpus: %s (xxh64 %016x)\n", run.Corpus, run.Digest); err != nil {
			return err
		}
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "unit\tneedles\titers\tbest\tmedian\tthroughput\tbest throughput\tmatches\t")
	for _, r := range run.Results {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%s\t%s\t%s\t%s\t%d\t\n",
			r.Unit,
			r.Needles,
			r.Iterations,
			humanfmt.Duration(r.Best),
			humanfmt.Duration(r.Median),
			humanfmt.Rate(r.Throughput()),
			humanfmt.Rate(r.BestThroughput()),
			r.Matches,
		)
	}
	return tw.Flush()
}
