package bench

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/eunmann/twain-bench/pkg/corpus"
	"github.com/eunmann/twain-bench/pkg/corpus/corpustest"
	"github.com/eunmann/twain-bench/pkg/matcher/ahocorasick"
	"github.com/eunmann/twain-bench/pkg/matcher/wumanber"
	"github.com/eunmann/twain-bench/pkg/sampler"
)

func fixtureSuite(t *testing.T) *Suite {
	t.Helper()
	var body []string
	for i := 0; i < 30; i++ {
		body = append(body, fmt.Sprintf("the cat and a dog went home today with everyone agreed %d", i))
	}
	path := corpustest.Write(t, corpustest.WithHeader(body...))
	return NewSuite(sampler.New(corpus.NewStore(corpus.FileSource{Path: path})))
}

func TestUnits_Names(t *testing.T) {
	units := fixtureSuite(t).Units()

	if len(units) != 3*(6+1) {
		t.Fatalf("got %d units, want 21", len(units))
	}
	want := []string{
		"twain/ac/3/10", "twain/ac/4/10", "twain/ac/5/10", "twain/ac/6/10", "twain/ac/7/10", "twain/ac/8+/10",
		"twain/wm/3/10", "twain/wm/4/10", "twain/wm/5/10", "twain/wm/6/10", "twain/wm/7/10", "twain/wm/8+/10",
		"twain/naive/3/10", "twain/naive/4/10", "twain/naive/5/10", "twain/naive/6/10", "twain/naive/7/10", "twain/naive/8+/10",
		"pathological/ac", "pathological/wm", "pathological/naive",
	}
	for i, u := range units {
		if u.Name != want[i] {
			t.Errorf("unit %d = %q, want %q", i, u.Name, want[i])
		}
	}
	if units[0].Label != "3-letter words" || units[0].Kind != KindTwain {
		t.Errorf("unexpected first unit: %+v", units[0])
	}
}

func TestUnit_TwainCase(t *testing.T) {
	s := fixtureSuite(t)
	u, err := s.Lookup("twain/wm/3/10")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}

	c, err := u.Case(context.Background())
	if err != nil {
		t.Fatalf("Case: %v", err)
	}
	if c.Count != 10 || c.Constructor.Name() != "wm" {
		t.Errorf("unexpected case: count %d, alg %s", c.Count, c.Constructor.Name())
	}
	if strings.Join(c.Needles[:4], ",") != "the,cat,and,dog" {
		t.Errorf("needles = %q", c.Needles[:4])
	}

	full, _ := s.Sampler().Store().FullText(context.Background())
	if c.Haystack != full {
		t.Error("haystack must be the full corpus text")
	}

	p, err := Prepare(c)
	if err != nil {
		t.Fatalf("Prepare: %v", err)
	}
	if _, err := p.Scan(); err != nil {
		t.Fatalf("Scan: %v", err)
	}
}

func TestUnit_SameNeedlesAcrossAlgorithms(t *testing.T) {
	s := fixtureSuite(t)
	ctx := context.Background()

	ac, _ := s.Lookup("twain/ac/5/10")
	wm, _ := s.Lookup("twain/wm/5/10")
	a, err := ac.Case(ctx)
	if err != nil {
		t.Fatalf("Case: %v", err)
	}
	b, err := wm.Case(ctx)
	if err != nil {
		t.Fatalf("Case: %v", err)
	}
	if &a.Needles[0] != &b.Needles[0] || a.Count != b.Count {
		t.Error("algorithms must share the cached needle pool and count")
	}
}

func TestUnit_PathologicalNeedsNoCorpus(t *testing.T) {
	missing := corpus.NewStore(corpus.FileSource{Path: filepath.Join(t.TempDir(), "missing.txt")})
	s := NewSuite(sampler.New(missing))

	u, err := s.Lookup("pathological/wm")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	c, err := u.Case(context.Background())
	if err != nil {
		t.Fatalf("Case: %v", err)
	}
	if len(c.Needles) != 1 || len(c.Haystack) != 20500 {
		t.Errorf("unexpected pathological case: %d needles, %d bytes", len(c.Needles), len(c.Haystack))
	}

	tw, _ := s.Lookup("twain/wm/3/10")
	if _, err := tw.Case(context.Background()); !errors.Is(err, corpus.ErrResource) {
		t.Fatalf("expected ErrResource, got %v", err)
	}
}

func TestNewSuite_Constructors(t *testing.T) {
	s := NewSuite(nil, ahocorasick.Constructor{}, wumanber.Constructor{})
	if got := len(s.Units()); got != 2*7 {
		t.Errorf("got %d units, want 14", got)
	}
}

func TestWithNeedleCount(t *testing.T) {
	s, err := fixtureSuite(t).WithNeedleCount(5)
	if err != nil {
		t.Fatalf("WithNeedleCount: %v", err)
	}
	u, err := s.Lookup("twain/ac/3/5")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	c, err := u.Case(context.Background())
	if err != nil || c.Count != 5 {
		t.Errorf("Case = count %d, %v", c.Count, err)
	}

	if _, err := s.WithNeedleCount(0); !errors.Is(err, ErrNeedleCount) {
		t.Errorf("expected ErrNeedleCount, got %v", err)
	}
}

func TestLookup_Unknown(t *testing.T) {
	if _, err := fixtureSuite(t).Lookup("twain/xx/3/10"); !errors.Is(err, ErrUnknownUnit) {
		t.Fatalf("expected ErrUnknownUnit, got %v", err)
	}
}

func TestSelect(t *testing.T) {
	units := fixtureSuite(t).Units()

	tests := []struct {
		pattern string
		want    int
		wantErr error
	}{
		{"", 21, nil},
		{"^twain/ac/", 6, nil},
		{"/8\\+/", 3, nil},
		{"^pathological/", 3, nil},
		{"wm", 7, nil},
		{"nomatch", 0, ErrUnknownUnit},
	}
	for _, tt := range tests {
		got, err := Select(units, tt.pattern)
		if tt.wantErr != nil {
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Select(%q) error = %v, want %v", tt.pattern, err, tt.wantErr)
			}
			continue
		}
		if err != nil {
			t.Errorf("Select(%q): %v", tt.pattern, err)
			continue
		}
		if len(got) != tt.want {
			t.Errorf("Select(%q) = %d units, want %d", tt.pattern, len(got), tt.want)
		}
	}

	if _, err := Select(units, "("); err == nil {
		t.Error("expected error for invalid pattern")
	}
}
