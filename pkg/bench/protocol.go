// Package bench runs one matcher configuration against one haystack and
// measures throughput.
//
// Every unit follows the same protocol: take a prefix of the needle pool,
// build the matcher once outside the timed region, then time repeated full
// scans of the same haystack with the same matcher, counting matches. The
// protocol is identical for every algorithm, so numbers are comparable.
package bench

import (
	"errors"
	"fmt"
	"testing"

	"github.com/eunmann/twain-bench/pkg/matcher"
)

// Case describes one benchmark run.
type Case struct {
	// Unit is the run's name, e.g. "twain/ac/3/10".
	Unit        string
	Constructor matcher.Constructor
	// Needles is the candidate pool; the first Count are used.
	Needles  []string
	Count    int
	Haystack string
}

// Prepared is a Case with its matcher built and ready to scan.
type Prepared struct {
	Case    Case
	Needles []string
	Matcher matcher.Matcher
	Bytes   int64
}

// Prepare takes the first Count needles (fewer if the pool is smaller) and
// builds the matcher. A needle set the algorithm rejects, including an
// empty one, fails with matcher.ErrConstruction.
func Prepare(c Case) (*Prepared, error) {
	if c.Count < 0 {
		return nil, fmt.Errorf("%w: unit %s: %d", ErrNeedleCount, c.Unit, c.Count)
	}
	k := min(c.Count, len(c.Needles))
	needles := c.Needles[:k:k]

	m, err := c.Constructor.Build(needles)
	if err != nil {
		if !errors.Is(err, matcher.ErrConstruction) {
			err = fmt.Errorf("%w: %w", matcher.ErrConstruction, err)
		}
		return nil, fmt.Errorf("unit %s (%d needles): %w", c.Unit, len(needles), err)
	}

	return &Prepared{
		Case:    c,
		Needles: needles,
		Matcher: m,
		Bytes:   int64(len(c.Haystack)),
	}, nil
}

// Scan runs one full find over the haystack, drains the stream, and returns
// the number of matches.
func (p *Prepared) Scan() (int, error) {
	n, err := matcher.Count(p.Matcher.Find(p.Case.Haystack))
	if err != nil {
		return n, fmt.Errorf("unit %s: %w", p.Case.Unit, err)
	}
	return n, nil
}

// Bench runs c under the go test benchmark runtime, which owns iteration
// count and timing. Throughput is reported through SetBytes and the last
// match count as the "matches" metric.
func Bench(b *testing.B, c Case) {
	b.Helper()

	p, err := Prepare(c)
	if err != nil {
		b.Fatal(err)
	}

	b.SetBytes(p.Bytes)
	var matches int
	for b.Loop() {
		matches, err = p.Scan()
		if err != nil {
			b.Fatal(err)
		}
	}
	b.ReportMetric(float64(matches), "matches")
}
