package benchutil

import (
	"os"
	"strings"
	"testing"
)

// CorpusURI returns the configured corpus location, falling back to
// DefaultCorpusPath.
func CorpusURI() string {
	if uri := strings.TrimSpace(os.Getenv(CorpusEnv)); uri != "" {
		return uri
	}
	return DefaultCorpusPath
}

// SkipIfNoLongBench skips the benchmark if TWAIN_LONG_BENCH is not set.
// Use this to gate long-running benchmarks that shouldn't run by default.
func SkipIfNoLongBench(b *testing.B) {
	if os.Getenv(LongBenchEnv) == "" {
		b.Skip("set " + LongBenchEnv + "=1 to run long benchmark")
	}
}

// SkipIfNoCorpus skips the benchmark when the corpus is a local file that
// does not exist. Remote corpora are never skipped; a fetch failure is fatal.
func SkipIfNoCorpus(b *testing.B) {
	uri := CorpusURI()
	if strings.HasPrefix(uri, "s3://") {
		return
	}
	if _, err := os.Stat(uri); err != nil {
		b.Skipf("corpus %s not available (set %s): %v", uri, CorpusEnv, err)
	}
}
