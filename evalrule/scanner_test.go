package evalrule

import (
	"testing"

	"github.com/hackerman70000/cbwg/rule"
)

func TestScannerContainsMatchesStrings(t *testing.T) {
	seq := []rule.Rule{rule.NewReject(rule.RejectRule{Op: rule.OpContains, Str: "an"})}
	sc := NewScanner(seq)

	tests := []struct {
		haystack string
		want     bool
	}{
		{"banana", true},
		{"apple", false},
		{"", false},
		{"an", true},
	}
	for _, tt := range tests {
		if got := sc.Contains(tt.haystack, "an"); got != tt.want {
			t.Errorf("Contains(%q, \"an\") = %v, want %v", tt.haystack, got, tt.want)
		}
	}
}

func TestScannerCountMatchesStringsCount(t *testing.T) {
	seq := []rule.Rule{rule.NewReject(rule.RejectRule{Op: rule.OpContainsLessThan, N: 1, Str: "a"})}
	sc := NewScanner(seq)

	tests := []struct {
		haystack string
		want     int
	}{
		{"banana", 3},
		{"apple", 1},
		{"xyz", 0},
	}
	for _, tt := range tests {
		if got := sc.Count(tt.haystack, "a"); got != tt.want {
			t.Errorf("Count(%q, \"a\") = %d, want %d", tt.haystack, got, tt.want)
		}
	}
}

func TestScannerSkipsLiteralsFromPurgeAndReplace(t *testing.T) {
	seq := []rule.Rule{
		rule.NewTransform(rule.TransformRule{Op: rule.OpPurge, Str: "x"}),
		rule.NewTransform(rule.TransformRule{Op: rule.OpReplace, Str: "a", Str2: "b"}),
	}
	sc := NewScanner(seq)
	if len(sc.automata) != 0 {
		t.Errorf("expected no compiled automata for Purge/Replace operands, got %d", len(sc.automata))
	}
}

func TestNilScannerFallsBackToPlainStrings(t *testing.T) {
	var sc *Scanner
	if !sc.Contains("banana", "an") {
		t.Error("nil scanner Contains should fall back correctly")
	}
	if sc.Count("banana", "a") != 3 {
		t.Error("nil scanner Count should fall back correctly")
	}
}

func TestScannerEmptyLiteralAlwaysMatches(t *testing.T) {
	sc := NewScanner(nil)
	if !sc.Contains("anything", "") {
		t.Error("empty literal should be reported as always contained")
	}
	if sc.Count("anything", "") != 0 {
		t.Error("empty literal should count as zero occurrences")
	}
}
