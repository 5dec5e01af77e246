// Package naive is the backtracking baseline: at every haystack offset it
// compares each needle byte by byte and restarts from the next offset on a
// mismatch. It has no skip or failure information, so its cost grows with
// haystack length times the length of the longest partial match.
package naive

import "github.com/eunmann/twain-bench/pkg/matcher"

// Name is the algorithm id used in unit names.
const Name = "naive"

// Constructor builds naive matchers.
type Constructor struct{}

// Name returns "naive".
func (Constructor) Name() string { return Name }

// Build copies needles.
func (Constructor) Build(needles []string) (matcher.Matcher, error) {
	if err := matcher.ValidateNeedles(Name, needles); err != nil {
		return nil, err
	}
	return &Matcher{needles: append([]string(nil), needles...)}, nil
}

// Matcher is a needle list.
type Matcher struct {
	needles []string
}

// Find starts a lazy scan. Every occurrence is reported, including
// overlapping ones, ordered by start offset and then by needle index.
func (m *Matcher) Find(haystack string) matcher.Stream {
	return &stream{needles: m.needles, hay: haystack}
}

type stream struct {
	needles []string
	hay     string
	pos     int
	next    int
	cur     matcher.Match
}

func (s *stream) Next() bool {
	for s.pos < len(s.hay) {
		for s.next < len(s.needles) {
			idx := s.next
			s.next++
			if n := s.needles[idx]; matchAt(s.hay, s.pos, n) {
				s.cur = matcher.Match{Start: s.pos, End: s.pos + len(n), Pattern: idx}
				return true
			}
		}
		s.pos++
		s.next = 0
	}
	return false
}

func matchAt(hay string, pos int, needle string) bool {
	if len(hay)-pos < len(needle) {
		return false
	}
	for i := 0; i < len(needle); i++ {
		if hay[pos+i] != needle[i] {
			return false
		}
	}
	return true
}

func (s *stream) Match() matcher.Match { return s.cur }

func (s *stream) Err() error { return nil }
