// Package wumanber implements the Wu–Manber multi-pattern search with
// two-byte blocks.
//
// Every needle is aligned on its first m bytes, where m is the length of the
// shortest needle. A window of m haystack bytes slides left to right:
//
//   - SHIFT[block] says how far the window may jump given the two bytes at
//     its right end. Zero means some needle ends its m-prefix with block.
//   - HASH[block] lists those needles.
//   - PREFIX filters candidates on the two bytes at the window's left end
//     before a full comparison.
//
// Shift heuristics make it sublinear on natural text and quadratic-ish on
// highly repetitive input, which is what the pathological units measure.
package wumanber

import (
	"fmt"
	"strings"

	"github.com/eunmann/twain-bench/pkg/matcher"
)

// Name is the algorithm id used in unit names.
const Name = "wm"

// BlockSize is the number of bytes hashed per table lookup.
const BlockSize = 2

const tableSize = 1 << (8 * BlockSize)

// Constructor builds Wu–Manber tables.
type Constructor struct{}

// Name returns "wm".
func (Constructor) Name() string { return Name }

// Build indexes needles. Every needle must be at least BlockSize bytes.
func (Constructor) Build(needles []string) (matcher.Matcher, error) {
	return New(needles)
}

// Matcher holds the SHIFT, HASH and PREFIX tables for one needle set.
type Matcher struct {
	needles  []string
	minLen   int
	shift    []int
	hash     [][]int32
	prefixes []uint16
}

// New builds a Matcher over needles.
func New(needles []string) (*Matcher, error) {
	if err := matcher.ValidateNeedles(Name, needles); err != nil {
		return nil, err
	}

	minLen := len(needles[0])
	for i, n := range needles {
		if len(n) < BlockSize {
			return nil, fmt.Errorf("%w: %s: needle %d (%q) shorter than block size %d",
				matcher.ErrConstruction, Name, i, n, BlockSize)
		}
		minLen = min(minLen, len(n))
	}

	m := &Matcher{
		needles:  append([]string(nil), needles...),
		minLen:   minLen,
		shift:    make([]int, tableSize),
		hash:     make([][]int32, tableSize),
		prefixes: make([]uint16, len(needles)),
	}

	defaultShift := minLen - BlockSize + 1
	for i := range m.shift {
		m.shift[i] = defaultShift
	}

	for idx, n := range needles {
		// Block ending at q (exclusive) may shift by minLen-q.
		for q := BlockSize; q <= minLen; q++ {
			b := block(n, q-BlockSize)
			m.shift[b] = min(m.shift[b], minLen-q)
		}
		last := block(n, minLen-BlockSize)
		m.hash[last] = append(m.hash[last], int32(idx))
		m.prefixes[idx] = block(n, 0)
	}
	return m, nil
}

func block(s string, i int) uint16 {
	return uint16(s[i])<<8 | uint16(s[i+1])
}

// Find starts a lazy scan of haystack. Every occurrence is reported,
// including overlapping ones, ordered by start offset and then by needle
// index.
func (m *Matcher) Find(haystack string) matcher.Stream {
	return &stream{m: m, hay: haystack, end: m.minLen}
}

type stream struct {
	m   *Matcher
	hay string
	// end is the exclusive end of the current window.
	end int
	// cands and next track a partially consumed HASH bucket.
	cands []int32
	next  int
	cur   matcher.Match
}

func (s *stream) Next() bool {
	for {
		if s.emitCandidate() {
			return true
		}
		if s.end > len(s.hay) {
			return false
		}

		b := block(s.hay, s.end-BlockSize)
		if sh := s.m.shift[b]; sh > 0 {
			s.end += sh
			continue
		}

		s.cands = s.m.hash[b]
		s.next = 0
		s.end++
	}
}

// emitCandidate checks the pending candidates of the window that ended at
// s.end-1 and stops at the first full match.
func (s *stream) emitCandidate() bool {
	if s.next >= len(s.cands) {
		return false
	}
	start := s.end - 1 - s.m.minLen
	prefix := block(s.hay, start)
	for s.next < len(s.cands) {
		idx := s.cands[s.next]
		s.next++
		if s.m.prefixes[idx] != prefix {
			continue
		}
		n := s.m.needles[idx]
		if strings.HasPrefix(s.hay[start:], n) {
			s.cur = matcher.Match{Start: start, End: start + len(n), Pattern: int(idx)}
			return true
		}
	}
	return false
}

func (s *stream) Match() matcher.Match { return s.cur }

func (s *stream) Err() error { return nil }
