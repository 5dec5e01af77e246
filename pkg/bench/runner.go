package bench

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/eunmann/twain-bench/internal/logctx"
	"github.com/eunmann/twain-bench/pkg/logging"
)

// Options controls how many timed iterations Runner performs. A run stops
// once it has done at least MinIterations and spent at least MinTime, or
// when it reaches MaxIterations.
type Options struct {
	Warmup        int
	MinIterations int
	MaxIterations int
	MinTime       time.Duration
}

// DefaultOptions returns settings close to go test's default benchtime.
func DefaultOptions() Options {
	return Options{
		Warmup:        1,
		MinIterations: 5,
		MaxIterations: 10_000,
		MinTime:       time.Second,
	}
}

func (o Options) validate() error {
	if o.Warmup < 0 || o.MinIterations < 1 || o.MaxIterations < o.MinIterations || o.MinTime < 0 {
		return fmt.Errorf("invalid runner options: %+v", o)
	}
	return nil
}

// Result is the measured outcome of one unit.
type Result struct {
	Unit       string
	Algorithm  string
	Needles    int
	Bytes      int64
	Iterations int
	Best       time.Duration
	Median     time.Duration
	// Matches is the count observed on the last iteration.
	Matches int
}

// Throughput returns bytes per second at the median iteration time.
func (r Result) Throughput() float64 {
	return rate(r.Bytes, r.Median)
}

// BestThroughput returns bytes per second at the best iteration time.
func (r Result) BestThroughput() float64 {
	return rate(r.Bytes, r.Best)
}

func rate(bytes int64, d time.Duration) float64 {
	if d <= 0 {
		return 0
	}
	return float64(bytes) / d.Seconds()
}

// Runner times units outside go test, for the CLI.
type Runner struct {
	opts Options
}

// NewRunner validates opts and returns a Runner.
func NewRunner(opts Options) (*Runner, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	return &Runner{opts: opts}, nil
}

// Run prepares c and times individual scans. Every iteration uses the same
// matcher and haystack. The first failure aborts the run.
func (r *Runner) Run(ctx context.Context, c Case) (Result, error) {
	start := time.Now()

	p, err := Prepare(c)
	if err != nil {
		return Result{}, err
	}

	for i := 0; i < r.opts.Warmup; i++ {
		if _, err := p.Scan(); err != nil {
			return Result{}, err
		}
	}

	var (
		samples []time.Duration
		total   time.Duration
		matches int
	)
	for len(samples) < r.opts.MaxIterations {
		if len(samples) >= r.opts.MinIterations && total >= r.opts.MinTime {
			break
		}
		if err := ctx.Err(); err != nil {
			return Result{}, fmt.Errorf("unit %s: %w", c.Unit, err)
		}

		t0 := time.Now()
		matches, err = p.Scan()
		d := time.Since(t0)
		if err != nil {
			return Result{}, err
		}
		samples = append(samples, d)
		total += d
	}

	slices.Sort(samples)
	res := Result{
		Unit:       c.Unit,
		Algorithm:  c.Constructor.Name(),
		Needles:    len(p.Needles),
		Bytes:      p.Bytes,
		Iterations: len(samples),
		Best:       samples[0],
		Median:     median(samples),
		Matches:    matches,
	}

	logging.RunCompleted(logctx.FromContext(ctx), c.Unit, time.Since(start)).
		Str("algorithm", res.Algorithm).
		Int("needles", res.Needles).
		Int("iterations", res.Iterations).
		Bytes("bytes", res.Bytes).
		Count("matches", int64(res.Matches)).
		Dur("best", res.Best).
		Dur("median", res.Median).
		Throughput(res.Bytes, res.Median).
		Log("run completed")

	return res, nil
}

// median expects sorted, non-empty samples.
func median(sorted []time.Duration) time.Duration {
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}
