// Package corpustest builds small on-disk corpora for tests.
package corpustest

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/eunmann/twain-bench/pkg/benchutil"
)

// HeaderLine fills the skipped front matter. Its only token is one byte long,
// so it never satisfies a sampling bucket.
const HeaderLine = "-"

// WithHeader prefixes body with benchutil.SkipLines header lines.
func WithHeader(body ...string) []string {
	lines := make([]string, 0, benchutil.SkipLines+len(body))
	for i := 0; i < benchutil.SkipLines; i++ {
		lines = append(lines, HeaderLine)
	}
	return append(lines, body...)
}

// Write stores lines as a newline-terminated file in a temp directory and
// returns its path.
func Write(tb testing.TB, lines []string) string {
	tb.Helper()
	return WriteRaw(tb, []byte(strings.Join(lines, "\n")+"\n"))
}

// WriteRaw stores data verbatim, for encodings Write cannot express.
func WriteRaw(tb testing.TB, data []byte) string {
	tb.Helper()
	path := filepath.Join(tb.TempDir(), "corpus.txt")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		tb.Fatalf("write corpus: %v", err)
	}
	return path
}
