// Package matchertest checks the behavior every matcher.Constructor must
// share, regardless of its overlap semantics.
package matchertest

import (
	"errors"
	"testing"

	"github.com/eunmann/twain-bench/pkg/matcher"
	"github.com/eunmann/twain-bench/pkg/pathological"
)

// Run executes the shared checks as subtests of t.
func Run(t *testing.T, c matcher.Constructor) {
	t.Run("EmptyNeedleSet", func(t *testing.T) {
		if _, err := c.Build(nil); !errors.Is(err, matcher.ErrConstruction) {
			t.Fatalf("expected ErrConstruction, got %v", err)
		}
	})

	t.Run("EmptyNeedle", func(t *testing.T) {
		if _, err := c.Build([]string{"cat", ""}); !errors.Is(err, matcher.ErrConstruction) {
			t.Fatalf("expected ErrConstruction, got %v", err)
		}
	})

	t.Run("DistinctWords", func(t *testing.T) {
		needles := []string{"cat", "dog"}
		hay := "the cat saw a dog and a cat"
		m := build(t, c, needles)

		got, err := matcher.Collect(m.Find(hay))
		if err != nil {
			t.Fatalf("Collect: %v", err)
		}
		want := []matcher.Match{
			{Start: 4, End: 7, Pattern: 0},
			{Start: 14, End: 17, Pattern: 1},
			{Start: 24, End: 27, Pattern: 0},
		}
		if len(got) != len(want) {
			t.Fatalf("got %d matches %v, want %v", len(got), got, want)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("match %d = %+v, want %+v", i, got[i], want[i])
			}
			if hay[got[i].Start:got[i].End] != needles[got[i].Pattern] {
				t.Errorf("match %d spans %q", i, hay[got[i].Start:got[i].End])
			}
		}
	})

	t.Run("NoMatch", func(t *testing.T) {
		m := build(t, c, []string{"zebra"})
		for _, hay := range []string{"", "z", "zebr", "a zebr a"} {
			if n := count(t, m, hay); n != 0 {
				t.Errorf("Find(%q) = %d matches, want 0", hay, n)
			}
		}
	})

	t.Run("MatchAtEdges", func(t *testing.T) {
		m := build(t, c, []string{"ab", "yz"})
		if n := count(t, m, "ab-yz"); n != 2 {
			t.Errorf("got %d matches, want 2", n)
		}
		if n := count(t, m, "ab"); n != 1 {
			t.Errorf("haystack equal to needle: got %d matches, want 1", n)
		}
	})

	t.Run("RepeatedFind", func(t *testing.T) {
		m := build(t, c, []string{"the", "and"})
		a := "the cat and the dog and the bird"
		b := "nothing here"

		first := count(t, m, a)
		if other := count(t, m, b); other != 0 {
			t.Errorf("second haystack: got %d, want 0", other)
		}
		if again := count(t, m, a); again != first {
			t.Errorf("count changed across runs: %d then %d", first, again)
		}
		if first != 5 {
			t.Errorf("got %d matches, want 5", first)
		}
	})

	t.Run("Pathological", func(t *testing.T) {
		needles, hay := pathological.Case()
		m := build(t, c, needles)
		if n := count(t, m, hay); n != 0 {
			t.Errorf("pathological case: got %d matches, want 0", n)
		}
	})
}

func build(t *testing.T, c matcher.Constructor, needles []string) matcher.Matcher {
	t.Helper()
	m, err := c.Build(needles)
	if err != nil {
		t.Fatalf("Build(%q): %v", needles, err)
	}
	return m
}

func count(t *testing.T, m matcher.Matcher, hay string) int {
	t.Helper()
	n, err := matcher.Count(m.Find(hay))
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	return n
}
