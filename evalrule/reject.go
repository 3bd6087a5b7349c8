package evalrule

import (
	"strings"

	"github.com/hackerman70000/cbwg/rule"
)

// ApplyReject runs a single RejectRule against s. It returns (s, true)
// when the word is kept unchanged, or ("", false) when the rule
// discards it — never an error, since a reject rule is a total
// predicate, not a fallible operation.
func ApplyReject(r rule.RejectRule, s string) (string, bool) {
	switch r.Op {
	case rule.OpShorterThan:
		return keepIf(s, len(s) >= r.N)
	case rule.OpLongerThan:
		return keepIf(s, len(s) <= r.N)
	case rule.OpNotEqualTo:
		return keepIf(s, len(s) == r.N)
	case rule.OpContains:
		return keepIf(s, !strings.Contains(s, r.Str))
	case rule.OpNotContains:
		return keepIf(s, strings.Contains(s, r.Str))
	case rule.OpNotStartsWith:
		return keepIf(s, strings.HasPrefix(s, r.Str))
	case rule.OpNotEndsWith:
		return keepIf(s, strings.HasSuffix(s, r.Str))
	case rule.OpNotEqualAt:
		return keepIf(s, substringAt(s, r.N, r.Str) == r.Str)
	case rule.OpContainsLessThan:
		return keepIf(s, countNonOverlapping(s, r.Str) >= r.N)
	default:
		return s, true
	}
}

// ApplyRejectScanned behaves like ApplyReject but answers
// Contains/NotContains/ContainsLessThan via sc when it has a compiled
// automaton for the literal in question, falling back to the plain
// strings path otherwise (including when sc is nil).
func ApplyRejectScanned(r rule.RejectRule, s string, sc *Scanner) (string, bool) {
	switch r.Op {
	case rule.OpContains:
		return keepIf(s, !sc.Contains(s, r.Str))
	case rule.OpNotContains:
		return keepIf(s, sc.Contains(s, r.Str))
	case rule.OpContainsLessThan:
		return keepIf(s, sc.Count(s, r.Str) >= r.N)
	default:
		return ApplyReject(r, s)
	}
}

func keepIf(s string, keep bool) (string, bool) {
	if keep {
		return s, true
	}
	return "", false
}

// substringAt returns the rune-indexed substring of s starting at
// position n with the same rune length as want, clamped to what's
// actually available — never panicking on an out-of-range n.
func substringAt(s string, n int, want string) string {
	rs := []rune(s)
	wantLen := len([]rune(want))
	return string(takeRunes(skipRunes(rs, n), wantLen))
}

func countNonOverlapping(s, pattern string) int {
	if pattern == "" {
		return 0
	}
	return strings.Count(s, pattern)
}
