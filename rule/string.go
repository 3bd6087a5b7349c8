package rule

import "strconv"

// String renders r back to its canonical rule-line syntax.
//
// For rules as produced directly by package parser every payload string
// is exactly one character, so the output is a single opcode and String
// round-trips through parser.ParseLine to an identical Rule. The one
// exception is a rule whose <uint> operand is directly followed by a
// digit <char> (Overwrite, NotEqualAt, ContainsLessThan; e.g. "o05"):
// the parser reads all the digits as one number, so that text does not
// parse back. Package simplify can coalesce several rules into payloads
// longer than one character (e.g. two Append rules into one); String
// degrades gracefully by emitting one opcode per character (in reverse
// order for Prepend, since each '^' lands in front of the previous
// one), which is still a faithful textual expansion of the same
// transform.
func (r Rule) String() string {
	switch r.Kind {
	case KindNoOp:
		return ":"
	case KindEnd:
		return ""
	case KindReject:
		return r.Reject.String()
	case KindTransform:
		return r.Transform.String()
	default:
		return ""
	}
}

func (t TransformRule) String() string {
	switch t.Op {
	case OpLowercase:
		return "l"
	case OpUppercase:
		return "u"
	case OpCapitalize:
		return "c"
	case OpInvertCapitalize:
		return "C"
	case OpToggleCase:
		if t.HasN {
			return "T" + strconv.Itoa(t.N)
		}
		return "t"
	case OpReverse:
		return "r"
	case OpDuplicate:
		if t.HasN {
			return "p" + strconv.Itoa(t.N)
		}
		return "d"
	case OpReflect:
		return "f"
	case OpRotate:
		if t.Rotation == RotateLeft {
			return "{"
		}
		return "}"
	case OpAppend:
		return repeatOpcode('$', t.Str)
	case OpPrepend:
		rs := []rune(t.Str)
		for i, j := 0, len(rs)-1; i < j; i, j = i+1, j-1 {
			rs[i], rs[j] = rs[j], rs[i]
		}
		return repeatOpcode('^', string(rs))
	case OpTruncate:
		switch t.Truncate {
		case TruncateLeft:
			return "["
		case TruncateRight:
			return "]"
		default:
			return "'" + strconv.Itoa(t.N)
		}
	case OpDelete:
		return "D" + strconv.Itoa(t.N)
	case OpExtract:
		return "x" + strconv.Itoa(t.A) + ":" + strconv.Itoa(t.B)
	case OpOmit:
		return "O" + strconv.Itoa(t.A) + ":" + strconv.Itoa(t.B)
	case OpInsert:
		return "i" + t.Str + strconv.Itoa(t.A)
	case OpOverwrite:
		return "o" + strconv.Itoa(t.A) + t.Str
	case OpReplace:
		return "s" + t.Str + t.Str2
	case OpPurge:
		return repeatOpcode('@', t.Str)
	case OpDuplicateFirst:
		return "z" + strconv.Itoa(t.N)
	case OpDuplicateLast:
		return "Z" + strconv.Itoa(t.N)
	case OpDuplicateAll:
		return "q"
	case OpSwapFront:
		return "k"
	case OpSwapBack:
		return "K"
	case OpSwap:
		return "*" + strconv.Itoa(t.A) + ":" + strconv.Itoa(t.B)
	case OpBitwiseShiftLeft:
		return "L" + strconv.Itoa(t.N)
	case OpBitwiseShiftRight:
		return "R" + strconv.Itoa(t.N)
	case OpAsciiIncrement:
		return "+" + strconv.Itoa(t.N)
	case OpAsciiDecrement:
		return "-" + strconv.Itoa(t.N)
	case OpReplaceWithNext:
		return "." + strconv.Itoa(t.N)
	case OpReplaceWithPrev:
		return "," + strconv.Itoa(t.N)
	case OpDuplicateFirstBlock:
		return "y" + strconv.Itoa(t.N)
	case OpDuplicateLastBlock:
		return "Y" + strconv.Itoa(t.N)
	default:
		return ""
	}
}

func (r RejectRule) String() string {
	switch r.Op {
	case OpLongerThan:
		return "<" + strconv.Itoa(r.N)
	case OpShorterThan:
		return ">" + strconv.Itoa(r.N)
	case OpNotEqualTo:
		return "_" + strconv.Itoa(r.N)
	case OpContains:
		return repeatOpcode('!', r.Str)
	case OpNotContains:
		return repeatOpcode('/', r.Str)
	case OpNotStartsWith:
		return "(" + r.Str
	case OpNotEndsWith:
		return ")" + r.Str
	case OpNotEqualAt:
		return "=" + strconv.Itoa(r.N) + r.Str
	case OpContainsLessThan:
		return "%" + strconv.Itoa(r.N) + r.Str
	default:
		return ""
	}
}

// repeatOpcode emits one copy of opcode per rune in s, which is how a
// multi-character payload (only reachable after simplify coalesces
// several single-character rules) expands back to valid rule syntax.
func repeatOpcode(opcode byte, s string) string {
	if s == "" {
		return string(opcode)
	}
	out := make([]byte, 0, len(s)*2)
	for _, c := range s {
		out = append(out, opcode)
		out = append(out, []byte(string(c))...)
	}
	return string(out)
}
