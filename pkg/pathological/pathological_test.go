package pathological

import (
	"strings"
	"testing"
)

func TestLengths(t *testing.T) {
	if got := len(Needle()); got != 253 {
		t.Errorf("needle length = %d, want 253", got)
	}
	if NeedleLen != 253 {
		t.Errorf("NeedleLen = %d, want 253", NeedleLen)
	}
	if got := len(Haystack()); got != 20500 {
		t.Errorf("haystack length = %d, want 20500", got)
	}
	if HaystackLen != 20500 {
		t.Errorf("HaystackLen = %d, want 20500", HaystackLen)
	}
}

func TestShape(t *testing.T) {
	n := Needle()
	if !strings.HasPrefix(n, strings.Repeat("a", 250)) || !strings.HasSuffix(n, "baa") {
		t.Errorf("unexpected needle shape: %q...%q", n[:10], n[len(n)-10:])
	}

	h := Haystack()
	block := strings.Repeat("a", 40) + "b"
	if strings.Count(h, block) != 500 {
		t.Errorf("haystack should contain 500 blocks, got %d", strings.Count(h, block))
	}
}

func TestNeedleAbsent(t *testing.T) {
	needles, h := Case()
	if len(needles) != 1 {
		t.Fatalf("expected one needle, got %d", len(needles))
	}
	if strings.Contains(h, needles[0]) {
		t.Fatal("needle must not occur in haystack")
	}
}
