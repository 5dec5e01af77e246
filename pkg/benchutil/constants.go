// Package benchutil holds the constants and environment gates shared by the
// benchmark units and the CLI.
package benchutil

// Shared constants for benchmarks across packages.

// SkipLines is the number of leading corpus lines treated as front matter.
const SkipLines = 1000

// BucketCap is the maximum number of sample words kept per length bucket.
const BucketCap = 100

// DefaultNeedleCount is the number of needles taken from a bucket per run.
const DefaultNeedleCount = 10

// DefaultCorpusPath is where the benchmark corpus lives unless TWAIN_CORPUS
// says otherwise. The path is relative to the working directory.
const DefaultCorpusPath = "benches/pg3200.txt"

// CorpusEnv names the environment variable that overrides the corpus location.
// Accepts a local path or an s3://bucket/key URI.
const CorpusEnv = "TWAIN_CORPUS"

// LongBenchEnv gates benchmarks that take minutes rather than seconds.
const LongBenchEnv = "TWAIN_LONG_BENCH"
