// Package ahocorasick adapts github.com/petar-dambovaliev/aho-corasick to
// the matcher capability.
package ahocorasick

import (
	"unsafe"

	aho "github.com/petar-dambovaliev/aho-corasick"

	"github.com/eunmann/twain-bench/pkg/matcher"
)

// Name is the algorithm id used in unit names.
const Name = "ac"

// Constructor builds automata with the given options. The zero value uses
// standard (earliest-end) match semantics on an NFA with a failure function.
// After a match the scan resumes one byte past its start, so at most one
// match is reported per start offset and overlapping occurrences of the same
// needle are all counted: "aa" occurs 3 times in "aaaa".
type Constructor struct {
	// DFA compiles the full transition table instead of following failure
	// links at search time.
	DFA bool
}

// Name returns "ac", or "ac-dfa" for the DFA variant.
func (c Constructor) Name() string {
	if c.DFA {
		return Name + "-dfa"
	}
	return Name
}

// Build compiles the automaton over needles.
func (c Constructor) Build(needles []string) (matcher.Matcher, error) {
	if err := matcher.ValidateNeedles(c.Name(), needles); err != nil {
		return nil, err
	}
	builder := aho.NewAhoCorasickBuilder(aho.Opts{
		MatchKind: aho.StandardMatch,
		DFA:       c.DFA,
	})
	return &Matcher{automaton: builder.Build(needles)}, nil
}

// Matcher is a compiled automaton.
type Matcher struct {
	automaton aho.AhoCorasick
}

// Find starts a lazy scan of haystack. The automaton reads the string's
// bytes in place; Iter would copy the whole haystack on every call.
func (m *Matcher) Find(haystack string) matcher.Stream {
	return &stream{iter: m.automaton.IterByte(unsafe.Slice(unsafe.StringData(haystack), len(haystack)))}
}

type stream struct {
	iter aho.Iter
	cur  matcher.Match
}

func (s *stream) Next() bool {
	m := s.iter.Next()
	if m == nil {
		return false
	}
	s.cur = matcher.Match{Start: m.Start(), End: m.End(), Pattern: m.Pattern()}
	return true
}

func (s *stream) Match() matcher.Match { return s.cur }

func (s *stream) Err() error { return nil }
