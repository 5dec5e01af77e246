// Package pathological builds the fixed adversarial needle/haystack pair.
//
// The needle is a long run of 'a' whose only distinguishing bytes sit at
// the very end. The haystack is saturated with shorter runs of 'a' broken
// by 'b', so every offset is a near miss and the needle never occurs.
// Matchers without failure-function-aware recovery re-scan the run on each
// near miss; an automaton stays linear.
package pathological

import "strings"

// Building blocks of the pair.
const (
	NeedleBlock    = "aaaaa"
	NeedleRepeat   = 50
	NeedleSuffix   = "baa"
	HaystackRun    = 40
	HaystackBreak  = "b"
	HaystackRepeat = 500
)

// NeedleLen and HaystackLen are the byte lengths of Needle and Haystack.
const (
	NeedleLen   = len(NeedleBlock)*NeedleRepeat + len(NeedleSuffix)
	HaystackLen = (HaystackRun + len(HaystackBreak)) * HaystackRepeat
)

// Needle returns 50×"aaaaa" followed by "baa".
func Needle() string {
	return strings.Repeat(NeedleBlock, NeedleRepeat) + NeedleSuffix
}

// Haystack returns 500 repetitions of 40×"a" followed by "b".
func Haystack() string {
	return strings.Repeat(strings.Repeat("a", HaystackRun)+HaystackBreak, HaystackRepeat)
}

// Case returns the single-needle set and the haystack.
func Case() ([]string, string) {
	return []string{Needle()}, Haystack()
}
