package evalrule

import "github.com/hackerman70000/cbwg/rule"

// Apply runs a single rule.Rule against s. It returns (s', true) when
// the word survives (identity, a transform's result, or a reject rule
// that kept the word), or ("", false) when a reject rule discarded it.
func Apply(r rule.Rule, s string) (string, bool) {
	switch r.Kind {
	case rule.KindNoOp, rule.KindEnd:
		return s, true
	case rule.KindTransform:
		return ApplyTransform(r.Transform, s), true
	case rule.KindReject:
		return ApplyReject(r.Reject, s)
	default:
		return s, true
	}
}

// ApplyAll folds Apply over rules left to right, short-circuiting on
// the first rejection. An empty rules sequence returns s unchanged.
func ApplyAll(rules []rule.Rule, s string) (string, bool) {
	cur := s
	for _, r := range rules {
		next, ok := Apply(r, cur)
		if !ok {
			return "", false
		}
		cur = next
	}
	return cur, true
}

// ApplyAllScanned behaves like ApplyAll but answers literal-search
// reject predicates through sc, the precompiled Scanner for this exact
// rule sequence (see evalrule.NewScanner). Passing a nil sc is
// equivalent to ApplyAll.
func ApplyAllScanned(rules []rule.Rule, s string, sc *Scanner) (string, bool) {
	cur := s
	for _, r := range rules {
		var next string
		var ok bool
		if r.Kind == rule.KindReject {
			next, ok = ApplyRejectScanned(r.Reject, cur, sc)
		} else {
			next, ok = Apply(r, cur)
		}
		if !ok {
			return "", false
		}
		cur = next
	}
	return cur, true
}
