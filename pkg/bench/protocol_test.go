package bench

import (
	"errors"
	"strings"
	"testing"

	"github.com/eunmann/twain-bench/pkg/matcher"
	"github.com/eunmann/twain-bench/pkg/matcher/ahocorasick"
	"github.com/eunmann/twain-bench/pkg/pathological"
)

// countingConstructor records Build calls and the needles it was given.
type countingConstructor struct {
	inner  matcher.Constructor
	builds int
	got    []string
}

func (c *countingConstructor) Name() string { return "counting" }

func (c *countingConstructor) Build(needles []string) (matcher.Matcher, error) {
	c.builds++
	c.got = needles
	return c.inner.Build(needles)
}

// brokenConstructor fails without wrapping matcher.ErrConstruction.
type brokenConstructor struct{}

func (brokenConstructor) Name() string { return "broken" }

func (brokenConstructor) Build([]string) (matcher.Matcher, error) {
	return nil, errors.New("table overflow")
}

// failingMatcher yields one match and then a scan error.
type failingMatcher struct{}

func (failingMatcher) Find(string) matcher.Stream { return &failingStream{} }

type failingStream struct{ done bool }

func (s *failingStream) Next() bool {
	if s.done {
		return false
	}
	s.done = true
	return true
}

func (s *failingStream) Match() matcher.Match { return matcher.Match{} }
func (s *failingStream) Err() error           { return errors.New("scan aborted") }

type failingConstructor struct{}

func (failingConstructor) Name() string { return "failing" }

func (failingConstructor) Build([]string) (matcher.Matcher, error) {
	return failingMatcher{}, nil
}

func TestPrepare_TakesPrefix(t *testing.T) {
	ctor := &countingConstructor{inner: ahocorasick.Constructor{}}
	p, err := Prepare(Case{
		Unit:        "t",
		Constructor: ctor,
		Needles:     []string{"one", "two", "six", "ten", "red"},
		Count:       2,
		Haystack:    "one two six",
	})
	if err != nil {
		t.Fatalf("Prepare: %v", err)
	}
	if strings.Join(p.Needles, ",") != "one,two" || cap(p.Needles) != 2 {
		t.Errorf("Needles = %q (cap %d)", p.Needles, cap(p.Needles))
	}
	if strings.Join(ctor.got, ",") != "one,two" {
		t.Errorf("constructor got %q", ctor.got)
	}
	if p.Bytes != int64(len("one two six")) {
		t.Errorf("Bytes = %d", p.Bytes)
	}

	n, err := p.Scan()
	if err != nil || n != 2 {
		t.Errorf("Scan = %d, %v", n, err)
	}
}

func TestPrepare_SmallPool(t *testing.T) {
	p, err := Prepare(Case{Unit: "t", Constructor: ahocorasick.Constructor{}, Needles: []string{"cat"}, Count: 10})
	if err != nil {
		t.Fatalf("Prepare: %v", err)
	}
	if len(p.Needles) != 1 {
		t.Errorf("expected the whole pool, got %q", p.Needles)
	}
}

func TestPrepare_EmptyPoolIsConstructionError(t *testing.T) {
	_, err := Prepare(Case{Unit: "twain/ac/3/10", Constructor: ahocorasick.Constructor{}, Count: 10})
	if !errors.Is(err, matcher.ErrConstruction) {
		t.Fatalf("expected ErrConstruction, got %v", err)
	}
	if !strings.Contains(err.Error(), "twain/ac/3/10") {
		t.Errorf("error should name the unit: %v", err)
	}
}

func TestPrepare_WrapsForeignConstructionErrors(t *testing.T) {
	_, err := Prepare(Case{Unit: "u", Constructor: brokenConstructor{}, Needles: []string{"x"}, Count: 1})
	if !errors.Is(err, matcher.ErrConstruction) {
		t.Fatalf("expected ErrConstruction, got %v", err)
	}
	if !strings.Contains(err.Error(), "table overflow") {
		t.Errorf("original error lost: %v", err)
	}
}

func TestPrepare_NegativeCount(t *testing.T) {
	_, err := Prepare(Case{Unit: "u", Constructor: ahocorasick.Constructor{}, Needles: []string{"x"}, Count: -1})
	if !errors.Is(err, ErrNeedleCount) {
		t.Fatalf("expected ErrNeedleCount, got %v", err)
	}
}

func TestScan_SearchError(t *testing.T) {
	p, err := Prepare(Case{Unit: "u", Constructor: failingConstructor{}, Needles: []string{"x"}, Count: 1})
	if err != nil {
		t.Fatalf("Prepare: %v", err)
	}
	if _, err := p.Scan(); !errors.Is(err, matcher.ErrSearch) {
		t.Fatalf("expected ErrSearch, got %v", err)
	}
}

func TestScan_ReusesMatcher(t *testing.T) {
	ctor := &countingConstructor{inner: ahocorasick.Constructor{}}
	p, err := Prepare(Case{Unit: "u", Constructor: ctor, Needles: []string{"the"}, Count: 1, Haystack: "the theme of the day"})
	if err != nil {
		t.Fatalf("Prepare: %v", err)
	}
	for i := 0; i < 5; i++ {
		n, err := p.Scan()
		if err != nil || n != 3 {
			t.Fatalf("iteration %d: Scan = %d, %v", i, n, err)
		}
	}
	if ctor.builds != 1 {
		t.Errorf("matcher built %d times, want 1", ctor.builds)
	}
}

func TestPathologicalCase_ZeroMatches(t *testing.T) {
	needles, hay := pathological.Case()
	for _, c := range DefaultConstructors() {
		p, err := Prepare(Case{Unit: "pathological/" + c.Name(), Constructor: c, Needles: needles, Count: 1, Haystack: hay})
		if err != nil {
			t.Fatalf("%s: Prepare: %v", c.Name(), err)
		}
		n, err := p.Scan()
		if err != nil || n != 0 {
			t.Errorf("%s: Scan = %d, %v; want 0 matches", c.Name(), n, err)
		}
	}
}
