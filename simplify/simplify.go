// Package simplify rewrites a compiled rule.Rule sequence into a
// shorter or cheaper sequence with identical observable behavior: for
// every input word, evalrule.ApplyAll on the simplified sequence
// produces the same result as on the original. The one exception is the
// DuplicateFirst,DuplicateLast fold described in coalesce, which
// changes the output.
//
// The rewrite is a single left-to-right coalescing pass: walk the
// sequence once, and whenever the rule just emitted and the next input
// rule form one of the recognized pairs below, replace both with their
// combined equivalent instead of emitting either verbatim.
package simplify

import "github.com/hackerman70000/cbwg/rule"

// Simplify returns an equivalent, potentially shorter rule sequence.
// It never changes semantics for a pair it does not recognize, and
// strips every rule.KindNoOp element unconditionally (NoOp is always
// identity, so dropping it changes nothing).
func Simplify(rules []rule.Rule) []rule.Rule {
	out := make([]rule.Rule, 0, len(rules))
	for _, r := range rules {
		if r.Kind == rule.KindNoOp {
			continue
		}
		if len(out) == 0 {
			out = append(out, r)
			continue
		}
		if merged, ok := coalesce(out[len(out)-1], r); ok {
			out[len(out)-1] = merged
			continue
		}
		out = append(out, r)
	}
	return dropIdentityNoOps(out)
}

// dropIdentityNoOps removes rule.NoOp values that coalesce produced
// (e.g. ToggleCase(n),ToggleCase(n) -> NoOp, Reverse,Reverse -> NoOp).
// A second pass is needed because the first pass only ever compares the
// freshly coalesced tail element against the next input rule; it can
// introduce a NoOp that the rest of the sequence never gets a chance to
// strip via the `r.Kind == rule.KindNoOp { continue }` check above.
func dropIdentityNoOps(rules []rule.Rule) []rule.Rule {
	out := rules[:0]
	for _, r := range rules {
		if r.Kind == rule.KindNoOp {
			continue
		}
		out = append(out, r)
	}
	return out
}

// coalesce reports whether prev and next combine into a single
// equivalent rule, returning the merged rule when they do.
func coalesce(prev, next rule.Rule) (rule.Rule, bool) {
	if prev.Kind != rule.KindTransform || next.Kind != rule.KindTransform {
		return rule.Rule{}, false
	}
	p, n := prev.Transform, next.Transform

	// DuplicateFirst(a) immediately followed by DuplicateLast(b) folds
	// into DuplicateFirst(a+b). This drops the "last" duplication
	// entirely and is known not to preserve semantics — see DESIGN.md.
	// It is replicated here deliberately, for compatibility with rule
	// corpora that were authored against (and so implicitly depend on)
	// this exact, slightly buggy rewrite.
	if p.Op == rule.OpDuplicateFirst && n.Op == rule.OpDuplicateLast {
		return rule.NewTransform(rule.TransformRule{Op: rule.OpDuplicateFirst, N: p.N + n.N}), true
	}

	if p.Op != n.Op {
		return rule.Rule{}, false
	}

	switch p.Op {
	case rule.OpAppend:
		return rule.NewTransform(rule.TransformRule{Op: rule.OpAppend, Str: p.Str + n.Str}), true
	case rule.OpPrepend:
		// Outer rule (next) prepends in front of what inner (prev)
		// already prepended: ^a then ^b yields prefix "b"+"a".
		return rule.NewTransform(rule.TransformRule{Op: rule.OpPrepend, Str: n.Str + p.Str}), true
	case rule.OpDuplicateLast:
		return rule.NewTransform(rule.TransformRule{Op: rule.OpDuplicateLast, N: p.N + n.N}), true
	case rule.OpLowercase, rule.OpUppercase, rule.OpCapitalize, rule.OpInvertCapitalize:
		return prev, true
	case rule.OpToggleCase:
		// HasN mirrors Option<usize>: None == None (both bare "t",
		// toggling the whole string) cancels out just as surely as two
		// ToggleCase(n) at the same position does.
		if p.HasN == n.HasN && p.N == n.N {
			return rule.NoOp(), true
		}
		return rule.Rule{}, false
	case rule.OpReverse:
		return rule.NoOp(), true
	}

	return rule.Rule{}, false
}
