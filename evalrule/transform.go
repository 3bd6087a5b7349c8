// Package evalrule applies compiled rule.Rule sequences to words.
//
// Apply and ApplyAll are total: every TransformRule always produces a
// string, and every out-of-range index (Delete past the end, Swap past
// the end, ToggleCase(n) past the end, ...) degrades to a bounded,
// deterministic fallback — clamped to the available range, or a no-op
// when no sensible in-range result exists — rather than panicking.
//
// Case-folding and every rune-indexed operation (Delete, Swap, Extract,
// Omit, Insert, Overwrite, ToggleCase(n), Duplicate{First,Last}[Block],
// ReplaceWith{Next,Prev}, Rotate, Truncate) address Unicode scalar
// positions. BitwiseShiftLeft/Right, AsciiIncrement/Decrement, Replace,
// and Purge address raw bytes, so their output may not be valid UTF-8 —
// by design: these rules model a byte-oriented mutation and the result
// is treated as an opaque byte string, never re-validated.
package evalrule

import (
	"strings"
	"unicode"

	"github.com/hackerman70000/cbwg/rule"
)

// ApplyTransform runs a single TransformRule against s and returns the
// result. Transforms never fail.
func ApplyTransform(t rule.TransformRule, s string) string {
	switch t.Op {
	case rule.OpLowercase:
		return strings.ToLower(s)
	case rule.OpUppercase:
		return strings.ToUpper(s)
	case rule.OpCapitalize:
		return capitalize(s)
	case rule.OpInvertCapitalize:
		return invertCapitalize(s)
	case rule.OpToggleCase:
		return toggleCase(s, t)
	case rule.OpReverse:
		return reverseString(s)
	case rule.OpDuplicate:
		n := 1
		if t.HasN {
			n = t.N
		}
		return strings.Repeat(s, 1+n)
	case rule.OpReflect:
		return s + reverseString(s)
	case rule.OpRotate:
		return rotate(s, t.Rotation)
	case rule.OpAppend:
		return s + t.Str
	case rule.OpPrepend:
		return t.Str + s
	case rule.OpTruncate:
		return truncate(s, t)
	case rule.OpDelete:
		rs := []rune(s)
		return string(append(takeRunes(rs, t.N), skipRunes(rs, t.N+1)...))
	case rule.OpExtract:
		rs := []rune(s)
		return string(takeRunes(skipRunes(rs, t.A), t.B))
	case rule.OpOmit:
		rs := []rune(s)
		return string(append(takeRunes(rs, t.A), skipRunes(rs, t.A+t.B)...))
	case rule.OpInsert:
		rs := []rune(s)
		out := takeRunes(rs, t.A)
		out = append(out, []rune(t.Str)...)
		out = append(out, skipRunes(rs, t.A)...)
		return string(out)
	case rule.OpOverwrite:
		rs := []rune(s)
		ins := []rune(t.Str)
		out := takeRunes(rs, t.A)
		out = append(out, ins...)
		out = append(out, skipRunes(rs, t.A+len(ins))...)
		return string(out)
	case rule.OpReplace:
		return replaceAll(s, t.Str, t.Str2)
	case rule.OpPurge:
		return replaceAll(s, t.Str, "")
	case rule.OpDuplicateFirst:
		rs := []rune(s)
		if len(rs) == 0 {
			return s
		}
		return strings.Repeat(string(rs[0]), clampNonNegative(t.N)) + s
	case rule.OpDuplicateLast:
		rs := []rune(s)
		if len(rs) == 0 {
			return s
		}
		return s + strings.Repeat(string(rs[len(rs)-1]), clampNonNegative(t.N))
	case rule.OpDuplicateAll:
		return duplicateAll(s)
	case rule.OpSwapFront:
		rs := []rune(s)
		if len(rs) < 2 {
			return s
		}
		rs[0], rs[1] = rs[1], rs[0]
		return string(rs)
	case rule.OpSwapBack:
		rs := []rune(s)
		if len(rs) < 2 {
			return s
		}
		last := len(rs) - 1
		rs[last], rs[last-1] = rs[last-1], rs[last]
		return string(rs)
	case rule.OpSwap:
		rs := []rune(s)
		if t.A < 0 || t.B < 0 || t.A >= len(rs) || t.B >= len(rs) {
			return s
		}
		rs[t.A], rs[t.B] = rs[t.B], rs[t.A]
		return string(rs)
	case rule.OpBitwiseShiftLeft:
		return mapBytes(s, func(b byte) byte { return b << (uint(t.N) % 8) })
	case rule.OpBitwiseShiftRight:
		return mapBytes(s, func(b byte) byte { return b >> (uint(t.N) % 8) })
	case rule.OpAsciiIncrement:
		return mapBytes(s, func(b byte) byte { return b + byte(t.N) })
	case rule.OpAsciiDecrement:
		return mapBytes(s, func(b byte) byte { return b - byte(t.N) })
	case rule.OpReplaceWithNext:
		rs := []rune(s)
		if t.N < 0 || t.N+1 >= len(rs) {
			return s
		}
		rs[t.N] = rs[t.N+1]
		return string(rs)
	case rule.OpReplaceWithPrev:
		rs := []rune(s)
		if t.N <= 0 || t.N >= len(rs) {
			return s
		}
		rs[t.N] = rs[t.N-1]
		return string(rs)
	case rule.OpDuplicateFirstBlock:
		rs := []rune(s)
		return string(takeRunes(rs, t.N)) + s
	case rule.OpDuplicateLastBlock:
		rs := []rune(s)
		n := t.N
		if n > len(rs) {
			n = len(rs)
		}
		return s + string(rs[len(rs)-n:])
	default:
		return s
	}
}

func capitalize(s string) string {
	rs := []rune(s)
	if len(rs) == 0 {
		return ""
	}
	return string(unicode.ToUpper(rs[0])) + strings.ToLower(string(rs[1:]))
}

func invertCapitalize(s string) string {
	rs := []rune(s)
	if len(rs) == 0 {
		return ""
	}
	return string(unicode.ToLower(rs[0])) + strings.ToUpper(string(rs[1:]))
}

func toggleCase(s string, t rule.TransformRule) string {
	if !t.HasN {
		rs := []rune(s)
		for i, c := range rs {
			rs[i] = flipCase(c)
		}
		return string(rs)
	}
	rs := []rune(s)
	if t.N < 0 || t.N >= len(rs) {
		return s
	}
	rs[t.N] = flipCase(rs[t.N])
	return string(rs)
}

func flipCase(c rune) rune {
	if unicode.IsUpper(c) {
		return unicode.ToLower(c)
	}
	return unicode.ToUpper(c)
}

func reverseString(s string) string {
	rs := []rune(s)
	for i, j := 0, len(rs)-1; i < j; i, j = i+1, j-1 {
		rs[i], rs[j] = rs[j], rs[i]
	}
	return string(rs)
}

func rotate(s string, dir rule.Rotation) string {
	rs := []rune(s)
	if len(rs) == 0 {
		return s
	}
	if dir == rule.RotateLeft {
		return string(rs[1:]) + string(rs[0])
	}
	last := len(rs) - 1
	return string(rs[last]) + string(rs[:last])
}

func truncate(s string, t rule.TransformRule) string {
	rs := []rune(s)
	switch t.Truncate {
	case rule.TruncateLeft:
		return string(skipRunes(rs, 1))
	case rule.TruncateRight:
		return string(takeRunes(rs, len(rs)-1))
	default: // TruncateTo
		return string(takeRunes(rs, t.N))
	}
}

func duplicateAll(s string) string {
	rs := []rune(s)
	out := make([]rune, 0, len(rs)*2)
	for _, c := range rs {
		out = append(out, c, c)
	}
	return string(out)
}

// replaceAll replaces every non-overlapping occurrence of old with new.
// An empty search string is a no-op, matching spec's explicit edge-case
// policy (Go's strings.ReplaceAll would otherwise splice new between
// every rune).
func replaceAll(s, old, new string) string {
	if old == "" {
		return s
	}
	return strings.ReplaceAll(s, old, new)
}

func mapBytes(s string, f func(byte) byte) string {
	b := []byte(s)
	out := make([]byte, len(b))
	for i, c := range b {
		out[i] = f(c)
	}
	return string(out)
}

// clampNonNegative floors n at 0, for callers (strings.Repeat) that
// panic on a negative count instead of clamping it themselves.
func clampNonNegative(n int) int {
	if n < 0 {
		return 0
	}
	return n
}

// takeRunes and skipRunes mirror Rust's Iterator::take/skip: both clamp
// silently to [0, len(rs)] instead of panicking on an out-of-range n,
// which is what lets Delete/Extract/Omit/Insert/Overwrite stay total
// without special-casing every caller.
func takeRunes(rs []rune, n int) []rune {
	if n < 0 {
		n = 0
	}
	if n > len(rs) {
		n = len(rs)
	}
	out := make([]rune, n)
	copy(out, rs[:n])
	return out
}

func skipRunes(rs []rune, n int) []rune {
	if n < 0 {
		n = 0
	}
	if n > len(rs) {
		n = len(rs)
	}
	out := make([]rune, len(rs)-n)
	copy(out, rs[n:])
	return out
}
