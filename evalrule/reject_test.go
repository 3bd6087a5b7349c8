package evalrule

import (
	"testing"

	"github.com/hackerman70000/cbwg/rule"
)

func TestApplyReject(t *testing.T) {
	tests := []struct {
		name   string
		r      rule.RejectRule
		in     string
		want   string
		keep   bool
	}{
		{"shorter-than-keeps", rule.RejectRule{Op: rule.OpShorterThan, N: 3}, "abcd", "abcd", true},
		{"shorter-than-rejects", rule.RejectRule{Op: rule.OpShorterThan, N: 5}, "abcd", "", false},
		{"longer-than-keeps", rule.RejectRule{Op: rule.OpLongerThan, N: 5}, "abcd", "abcd", true},
		{"longer-than-rejects", rule.RejectRule{Op: rule.OpLongerThan, N: 3}, "abcd", "", false},
		{"not-equal-to-keeps", rule.RejectRule{Op: rule.OpNotEqualTo, N: 4}, "abcd", "abcd", true},
		{"not-equal-to-rejects", rule.RejectRule{Op: rule.OpNotEqualTo, N: 3}, "abcd", "", false},
		{"contains-rejects", rule.RejectRule{Op: rule.OpContains, Str: "bc"}, "abcd", "", false},
		{"contains-keeps", rule.RejectRule{Op: rule.OpContains, Str: "zz"}, "abcd", "abcd", true},
		{"not-contains-rejects", rule.RejectRule{Op: rule.OpNotContains, Str: "zz"}, "abcd", "", false},
		{"not-contains-keeps", rule.RejectRule{Op: rule.OpNotContains, Str: "bc"}, "abcd", "abcd", true},
		{"not-starts-with-rejects", rule.RejectRule{Op: rule.OpNotStartsWith, Str: "zz"}, "abcd", "", false},
		{"not-starts-with-keeps", rule.RejectRule{Op: rule.OpNotStartsWith, Str: "ab"}, "abcd", "abcd", true},
		{"not-ends-with-rejects", rule.RejectRule{Op: rule.OpNotEndsWith, Str: "zz"}, "abcd", "", false},
		{"not-ends-with-keeps", rule.RejectRule{Op: rule.OpNotEndsWith, Str: "cd"}, "abcd", "abcd", true},
		{"not-equal-at-keeps", rule.RejectRule{Op: rule.OpNotEqualAt, N: 0, Str: "a"}, "abcd", "abcd", true},
		{"not-equal-at-rejects", rule.RejectRule{Op: rule.OpNotEqualAt, N: 0, Str: "z"}, "abcd", "", false},
		{"not-equal-at-oob-rejects", rule.RejectRule{Op: rule.OpNotEqualAt, N: 99, Str: "a"}, "abcd", "", false},
		{"contains-less-than-keeps", rule.RejectRule{Op: rule.OpContainsLessThan, N: 2, Str: "a"}, "banana", "banana", true},
		{"contains-less-than-rejects", rule.RejectRule{Op: rule.OpContainsLessThan, N: 4, Str: "a"}, "banana", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, keep := ApplyReject(tt.r, tt.in)
			if keep != tt.keep {
				t.Fatalf("keep = %v, want %v", keep, tt.keep)
			}
			if keep && got != tt.want {
				t.Errorf("result = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestApplyRejectScannedMatchesUnscanned(t *testing.T) {
	rules := []rule.RejectRule{
		{Op: rule.OpContains, Str: "an"},
		{Op: rule.OpNotContains, Str: "zz"},
		{Op: rule.OpContainsLessThan, N: 2, Str: "a"},
	}
	words := []string{"banana", "apple", "", "aaa"}

	var seq []rule.Rule
	for _, r := range rules {
		seq = append(seq, rule.NewReject(r))
	}
	sc := NewScanner(seq)

	for _, r := range rules {
		for _, w := range words {
			wantS, wantOK := ApplyReject(r, w)
			gotS, gotOK := ApplyRejectScanned(r, w, sc)
			if gotOK != wantOK || gotS != wantS {
				t.Errorf("rule %+v word %q: scanned = (%q,%v), unscanned = (%q,%v)", r, w, gotS, gotOK, wantS, wantOK)
			}
		}
	}
}

func TestApplyRejectScannedWithNilScannerFallsBack(t *testing.T) {
	r := rule.RejectRule{Op: rule.OpContains, Str: "an"}
	got, ok := ApplyRejectScanned(r, "banana", nil)
	wantS, wantOK := ApplyReject(r, "banana")
	if ok != wantOK {
		t.Errorf("nil-scanner keep = %v, want %v", ok, wantOK)
	}
	if ok && got != wantS {
		t.Errorf("nil-scanner result = %q, want %q", got, wantS)
	}
}
