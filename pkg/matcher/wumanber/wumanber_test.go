package wumanber

import (
	"errors"
	"strings"
	"testing"

	"github.com/eunmann/twain-bench/pkg/matcher"
	"github.com/eunmann/twain-bench/pkg/matcher/matchertest"
)

func TestConformance(t *testing.T) {
	matchertest.Run(t, Constructor{})
}

func TestBuild_ShortNeedle(t *testing.T) {
	_, err := New([]string{"cat", "a"})
	if !errors.Is(err, matcher.ErrConstruction) {
		t.Fatalf("expected ErrConstruction, got %v", err)
	}
	if !strings.Contains(err.Error(), `"a"`) {
		t.Errorf("error should name the needle: %v", err)
	}
}

func TestTables(t *testing.T) {
	m, err := New([]string{"abcd", "xbc"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if m.minLen != 3 {
		t.Fatalf("minLen = %d, want 3", m.minLen)
	}

	tests := []struct {
		block string
		want  int
	}{
		{"ab", 1},
		{"xb", 1},
		{"bc", 0},
		{"zz", 2},
	}
	for _, tt := range tests {
		if got := m.shift[block(tt.block, 0)]; got != tt.want {
			t.Errorf("shift[%q] = %d, want %d", tt.block, got, tt.want)
		}
	}
	if got := m.hash[block("bc", 0)]; len(got) != 2 {
		t.Errorf("hash[bc] = %v, want both needles", got)
	}
}

func TestOverlapping(t *testing.T) {
	m, err := New([]string{"aa"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	got, err := matcher.Collect(m.Find("aaaa"))
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("got %d matches, want 3 overlapping", len(got))
	}
	for i, mt := range got {
		if mt.Start != i {
			t.Errorf("match %d starts at %d", i, mt.Start)
		}
	}
}

func TestMixedLengths(t *testing.T) {
	needles := []string{"house", "hou", "use"}
	m, err := New(needles)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	hay := "a house in the houston suburbs"

	got, err := matcher.Collect(m.Find(hay))
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}
	want := referenceMatches(hay, needles)
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("match %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

// referenceMatches lists every occurrence by start offset, then needle index.
func referenceMatches(hay string, needles []string) []matcher.Match {
	var out []matcher.Match
	for pos := 0; pos < len(hay); pos++ {
		for idx, n := range needles {
			if strings.HasPrefix(hay[pos:], n) {
				out = append(out, matcher.Match{Start: pos, End: pos + len(n), Pattern: idx})
			}
		}
	}
	return out
}

func BenchmarkPathological(b *testing.B) {
	m, err := New([]string{strings.Repeat("aaaaa", 50) + "baa"})
	if err != nil {
		b.Fatal(err)
	}
	hay := strings.Repeat(strings.Repeat("a", 40)+"b", 500)
	b.SetBytes(int64(len(hay)))
	for b.Loop() {
		_, _ = matcher.Count(m.Find(hay))
	}
}
