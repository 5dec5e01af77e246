// Package matcher defines the capability a multi-pattern search algorithm
// needs to take part in a benchmark run: build once from a needle list,
// then find all occurrences in any number of haystacks.
package matcher

import (
	"errors"
	"fmt"
)

var (
	// ErrConstruction indicates an algorithm cannot index the needle set.
	ErrConstruction = errors.New("matcher construction failed")
	// ErrSearch indicates a failure while scanning a haystack.
	ErrSearch = errors.New("matcher search failed")
)

// Match is a single occurrence. Start and End are byte offsets into the
// haystack; Pattern indexes the needle list given to Build.
type Match struct {
	Start   int
	End     int
	Pattern int
}

// Stream is a lazy, finite sequence of matches produced by one Find call.
// Typical use:
//
//	s := m.Find(haystack)
//	for s.Next() {
//		_ = s.Match()
//	}
//	if err := s.Err(); err != nil { ... }
type Stream interface {
	Next() bool
	Match() Match
	Err() error
}

// Matcher is an immutable index over a needle set.
type Matcher interface {
	Find(haystack string) Stream
}

// Constructor builds a Matcher for one algorithm.
type Constructor interface {
	// Name is the short algorithm id used in unit names, e.g. "ac".
	Name() string
	Build(needles []string) (Matcher, error)
}

// Count drains s and returns the number of matches it produced.
func Count(s Stream) (int, error) {
	n := 0
	for s.Next() {
		n++
	}
	if err := s.Err(); err != nil {
		return n, fmt.Errorf("%w: %w", ErrSearch, err)
	}
	return n, nil
}

// Collect drains s into a slice. Tests use it; benchmarks use Count.
func Collect(s Stream) ([]Match, error) {
	var out []Match
	for s.Next() {
		out = append(out, s.Match())
	}
	if err := s.Err(); err != nil {
		return out, fmt.Errorf("%w: %w", ErrSearch, err)
	}
	return out, nil
}

// ValidateNeedles applies the checks every built-in algorithm shares: at
// least one needle, and no empty needle.
func ValidateNeedles(algorithm string, needles []string) error {
	if len(needles) == 0 {
		return fmt.Errorf("%w: %s: empty needle set", ErrConstruction, algorithm)
	}
	for i, n := range needles {
		if n == "" {
			return fmt.Errorf("%w: %s: needle %d is empty", ErrConstruction, algorithm, i)
		}
	}
	return nil
}
