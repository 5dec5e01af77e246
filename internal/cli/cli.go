// Package cli implements the command-line interface for twainbench.
package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/eunmann/twain-bench/internal/logctx"
	"github.com/eunmann/twain-bench/pkg/bench"
	"github.com/eunmann/twain-bench/pkg/benchutil"
	"github.com/eunmann/twain-bench/pkg/corpus"
	"github.com/eunmann/twain-bench/pkg/hostinfo"
	"github.com/eunmann/twain-bench/pkg/logging"
	"github.com/eunmann/twain-bench/pkg/report"
	"github.com/eunmann/twain-bench/pkg/sampler"
)

const usage = "usage: twainbench <command> [options]\ncommands: list, run, sample"

// Run executes the CLI with the given arguments.
func Run(args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return run(ctx, args, os.Stdout)
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	if len(args) == 0 {
		return errors.New(usage)
	}

	switch args[0] {
	case "list":
		return runList(args[1:], stdout)
	case "run":
		return runBench(ctx, args[1:], stdout)
	case "sample":
		return runSample(ctx, args[1:], stdout)
	default:
		return fmt.Errorf("unknown command: %s", args[0])
	}
}

func newSuite(uri string) (*bench.Suite, *corpus.Store, error) {
	src, err := corpus.ParseSource(uri)
	if err != nil {
		return nil, nil, err
	}
	store := corpus.NewStore(src)
	return bench.NewSuite(sampler.New(store)), store, nil
}

func runList(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	uri := fs.String("corpus", benchutil.CorpusURI(), "corpus path or s3://bucket/key")
	match := fs.String("match", "", "only list units matching this regexp")
	if err := fs.Parse(args); err != nil {
		return err
	}

	suite, _, err := newSuite(*uri)
	if err != nil {
		return err
	}
	units, err := bench.Select(suite.Units(), *match)
	if err != nil {
		return err
	}
	for _, u := range units {
		if u.Label != "" {
			fmt.Fprintf(stdout, "%s\t%s\n", u.Name, u.Label)
		} else {
			fmt.Fprintln(stdout, u.Name)
		}
	}
	return nil
}

func runSample(ctx context.Context, args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("sample", flag.ContinueOnError)
	uri := fs.String("corpus", benchutil.CorpusURI(), "corpus path or s3://bucket/key")
	name := fs.String("bucket", "", "length bucket: 3, 4, 5, 6, 7 or 8+")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *name == "" {
		return errors.New("--bucket is required")
	}
	bucket, ok := sampler.Lookup(*name)
	if !ok {
		return fmt.Errorf("unknown bucket %q", *name)
	}

	suite, _, err := newSuite(*uri)
	if err != nil {
		return err
	}
	words, err := suite.Sampler().Words(ctx, bucket)
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout, strings.Join(words, " "))
	return nil
}

func runBench(ctx context.Context, args []string, stdout io.Writer) error {
	defaults := bench.DefaultOptions()

	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	uri := fs.String("corpus", benchutil.CorpusURI(), "corpus path or s3://bucket/key")
	match := fs.String("match", "", "only run units matching this regexp")
	needles := fs.Int("needles", benchutil.DefaultNeedleCount, "needles per corpus unit")
	warmup := fs.Int("warmup", defaults.Warmup, "untimed scans before measuring")
	minIters := fs.Int("min-iters", defaults.MinIterations, "minimum timed scans per unit")
	maxIters := fs.Int("max-iters", defaults.MaxIterations, "maximum timed scans per unit")
	minTime := fs.Duration("min-time", defaults.MinTime, "minimum total scan time per unit")
	human := fs.Bool("human", false, "human-readable log output")
	debug := fs.Bool("debug", false, "enable debug logging")
	parquetOut := fs.String("parquet", "", "also write results to this parquet file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	logging.Init(*debug, *human)

	runner, err := bench.NewRunner(bench.Options{
		Warmup:        *warmup,
		MinIterations: *minIters,
		MaxIterations: *maxIters,
		MinTime:       *minTime,
	})
	if err != nil {
		return err
	}

	suite, store, err := newSuite(*uri)
	if err != nil {
		return err
	}
	if suite, err = suite.WithNeedleCount(*needles); err != nil {
		return err
	}
	units, err := bench.Select(suite.Units(), *match)
	if err != nil {
		return err
	}

	out := report.Run{Host: hostinfo.Snapshot()}
	if usesCorpus(units) {
		if out.Digest, err = store.Digest(ctx); err != nil {
			return err
		}
		out.Corpus = store.Name()
		if err := suite.Sampler().Prewarm(ctx); err != nil {
			return err
		}
	}
	logHeader(out, len(units))

	progress := logging.NewProgressTracker(int64(len(units)))
	for _, u := range units {
		start := time.Now()
		res, err := runUnit(logctx.WithStr(ctx, "kind", u.Kind), runner, u)
		if err != nil {
			log := logging.WithUnit(u.Name)
			log.Error().Err(err).Msg("unit failed")
			return err
		}
		out.Results = append(out.Results, res)

		elapsed := time.Since(start)
		progress.RecordCompletion(elapsed)
		logging.UnitProgress(*logging.L(), u.Name, elapsed).
			Progress(progress).
			Log("benchmark progress")
	}

	if err := report.WriteTable(stdout, out); err != nil {
		return err
	}
	if *parquetOut != "" {
		if err := report.WriteParquet(*parquetOut, out); err != nil {
			return err
		}
	}
	return nil
}

func runUnit(ctx context.Context, runner *bench.Runner, u bench.Unit) (bench.Result, error) {
	c, err := u.Case(ctx)
	if err != nil {
		return bench.Result{}, err
	}
	return runner.Run(ctx, c)
}

func usesCorpus(units []bench.Unit) bool {
	for _, u := range units {
		if u.Kind == bench.KindTwain {
			return true
		}
	}
	return false
}

func logHeader(run report.Run, units int) {
	e := logging.L().Info().
		Str("os", run.Host.OS).
		Str("arch", run.Host.Arch).
		Int("cpus", run.Host.CPUs).
		Str("go", run.Host.GoVersion).
		Uint64("total_mem_bytes", run.Host.TotalMemBytes).
		Int("units", units)
	if run.Corpus != "" {
		e = e.Str("corpus", run.Corpus).Str("corpus_xxh64", fmt.Sprintf("%016x", run.Digest))
	}
	e.Msg("benchmark run starting")
}
