package bench

import (
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/eunmann/twain-bench/pkg/benchutil"
	"github.com/eunmann/twain-bench/pkg/matcher"
	"github.com/eunmann/twain-bench/pkg/matcher/ahocorasick"
	"github.com/eunmann/twain-bench/pkg/matcher/naive"
	"github.com/eunmann/twain-bench/pkg/matcher/wumanber"
	"github.com/eunmann/twain-bench/pkg/pathological"
	"github.com/eunmann/twain-bench/pkg/sampler"
)

// Unit kinds.
const (
	KindTwain        = "twain"
	KindPathological = "pathological"
)

// DefaultConstructors returns the algorithms compared by default:
// Aho–Corasick, Wu–Manber, and the naive baseline.
func DefaultConstructors() []matcher.Constructor {
	return []matcher.Constructor{
		ahocorasick.Constructor{},
		wumanber.Constructor{},
		naive.Constructor{},
	}
}

// Suite enumerates the named benchmark units over one shared sampler.
// Build it once per process and hand it to every unit.
type Suite struct {
	sampler      *sampler.Sampler
	constructors []matcher.Constructor
	needleCount  int
}

// NewSuite creates a suite over s. With no constructors it uses
// DefaultConstructors.
func NewSuite(s *sampler.Sampler, constructors ...matcher.Constructor) *Suite {
	if len(constructors) == 0 {
		constructors = DefaultConstructors()
	}
	return &Suite{
		sampler:      s,
		constructors: constructors,
		needleCount:  benchutil.DefaultNeedleCount,
	}
}

// WithNeedleCount returns a copy of the suite taking n needles per corpus
// unit instead of benchutil.DefaultNeedleCount.
func (s *Suite) WithNeedleCount(n int) (*Suite, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrNeedleCount, n)
	}
	cp := *s
	cp.needleCount = n
	return &cp, nil
}

// Sampler returns the shared sampler.
func (s *Suite) Sampler() *sampler.Sampler {
	return s.sampler
}

// Unit is a separately runnable, independently timed comparison point.
type Unit struct {
	// Name is "twain/<alg>/<bucket>/<n>" or "pathological/<alg>".
	Name      string
	Kind      string
	Algorithm string
	// Bucket and Label are empty for pathological units.
	Bucket string
	Label  string

	build func(ctx context.Context) (Case, error)
}

// Case materializes the unit. Corpus units load the corpus and the bucket
// sample on first use; both are cached by the suite's sampler.
func (u Unit) Case(ctx context.Context) (Case, error) {
	return u.build(ctx)
}

// Units lists corpus units (every algorithm × bucket) followed by the
// pathological unit of every algorithm.
func (s *Suite) Units() []Unit {
	units := make([]Unit, 0, len(s.constructors)*(len(sampler.Buckets)+1))

	for _, c := range s.constructors {
		for _, b := range sampler.Buckets {
			units = append(units, s.twainUnit(c, b))
		}
	}
	for _, c := range s.constructors {
		units = append(units, pathologicalUnit(c))
	}
	return units
}

func (s *Suite) twainUnit(c matcher.Constructor, b sampler.Bucket) Unit {
	name := KindTwain + "/" + c.Name() + "/" + b.Name + "/" + strconv.Itoa(s.needleCount)
	count := s.needleCount
	return Unit{
		Name:      name,
		Kind:      KindTwain,
		Algorithm: c.Name(),
		Bucket:    b.Name,
		Label:     b.Label,
		build: func(ctx context.Context) (Case, error) {
			words, err := s.sampler.Words(ctx, b)
			if err != nil {
				return Case{}, fmt.Errorf("unit %s: %w", name, err)
			}
			haystack, err := s.sampler.Store().FullText(ctx)
			if err != nil {
				return Case{}, fmt.Errorf("unit %s: %w", name, err)
			}
			return Case{
				Unit:        name,
				Constructor: c,
				Needles:     words,
				Count:       count,
				Haystack:    haystack,
			}, nil
		},
	}
}

func pathologicalUnit(c matcher.Constructor) Unit {
	name := KindPathological + "/" + c.Name()
	return Unit{
		Name:      name,
		Kind:      KindPathological,
		Algorithm: c.Name(),
		build: func(context.Context) (Case, error) {
			needles, haystack := pathological.Case()
			return Case{
				Unit:        name,
				Constructor: c,
				Needles:     needles,
				Count:       len(needles),
				Haystack:    haystack,
			}, nil
		},
	}
}

// Lookup returns the unit with the exact name.
func (s *Suite) Lookup(name string) (Unit, error) {
	for _, u := range s.Units() {
		if u.Name == name {
			return u, nil
		}
	}
	return Unit{}, fmt.Errorf("%w: %s", ErrUnknownUnit, name)
}

// Select keeps the units whose name matches pattern, an unanchored regular
// expression like go test -bench. An empty pattern keeps everything.
func Select(units []Unit, pattern string) ([]Unit, error) {
	if pattern == "" {
		return units, nil
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("compile unit pattern: %w", err)
	}

	var out []Unit
	for _, u := range units {
		if re.MatchString(u.Name) {
			out = append(out, u)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: nothing matches %q", ErrUnknownUnit, pattern)
	}
	return out, nil
}
