package evalrule

import (
	"strings"

	"github.com/coregx/ahocorasick"

	"github.com/hackerman70000/cbwg/rule"
)

func containsFallback(haystack, lit string) bool { return strings.Contains(haystack, lit) }

func countFallback(haystack, lit string) int { return strings.Count(haystack, lit) }

// Scanner precompiles every distinct literal operand referenced by a
// compiled rule sequence's Contains/NotContains/ContainsLessThan reject
// rules (Purge and Replace operands are left out; see literalsOf) into
// one single-pattern Aho-Corasick automaton per
// literal, so that a rule line's per-word cost of locating each literal
// is paid once at compile time and amortized over every word in a
// batch: compile off the hot path, scan every haystack against the
// already-built automaton.
//
// Scanner is purely an optimization: ApplyAll and ApplyAllScanned
// produce identical results for any Scanner (including nil), built or
// not. Building fails closed — if the ahocorasick library rejects a
// pattern (e.g. empty), that literal is simply left unaccelerated and
// falls back to the plain strings-based path in reject.go.
type Scanner struct {
	automata map[string]*ahocorasick.Automaton
}

// NewScanner builds a Scanner for every distinct, non-empty literal
// operand used by seq. It never returns an error: literals that fail to
// compile are silently omitted, and lookups for them fall back to the
// unaccelerated path.
func NewScanner(seq []rule.Rule) *Scanner {
	sc := &Scanner{automata: make(map[string]*ahocorasick.Automaton)}
	for _, r := range seq {
		for _, lit := range literalsOf(r) {
			sc.compile(lit)
		}
	}
	return sc
}

// literalsOf returns the literal operands of r that Contains-style
// reject predicates search for. Purge and Replace are deliberately not
// included: they remove/rewrite every occurrence rather than test for
// one, and at password-length inputs a find-and-rebuild loop against an
// automaton has no measurable edge over strings.ReplaceAll, so they
// stay on the plain path in transform.go.
func literalsOf(r rule.Rule) []string {
	if r.Kind != rule.KindReject {
		return nil
	}
	switch r.Reject.Op {
	case rule.OpContains, rule.OpNotContains, rule.OpContainsLessThan:
		return []string{r.Reject.Str}
	default:
		return nil
	}
}

func (sc *Scanner) compile(lit string) {
	if lit == "" {
		return
	}
	if _, ok := sc.automata[lit]; ok {
		return
	}
	builder := ahocorasick.NewBuilder()
	builder.AddPattern([]byte(lit))
	auto, err := builder.Build()
	if err != nil {
		return
	}
	sc.automata[lit] = auto
}

// Contains reports whether haystack contains lit, using the precompiled
// automaton when available.
func (sc *Scanner) Contains(haystack, lit string) bool {
	if lit == "" {
		return true
	}
	if sc == nil {
		return containsFallback(haystack, lit)
	}
	auto, ok := sc.automata[lit]
	if !ok {
		return containsFallback(haystack, lit)
	}
	return auto.IsMatch([]byte(haystack))
}

// Count returns the number of non-overlapping occurrences of lit in
// haystack, using the precompiled automaton when available.
func (sc *Scanner) Count(haystack, lit string) int {
	if lit == "" {
		return 0
	}
	if sc == nil {
		return countFallback(haystack, lit)
	}
	auto, ok := sc.automata[lit]
	if !ok {
		return countFallback(haystack, lit)
	}
	b := []byte(haystack)
	count := 0
	at := 0
	for at <= len(b) {
		m := auto.Find(b, at)
		if m == nil {
			break
		}
		count++
		at = m.End
		if m.End == m.Start {
			at++
		}
	}
	return count
}
