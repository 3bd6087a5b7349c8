// Package rule defines the intermediate representation (IR) for the
// Hashcat/John-the-Ripper password-mutation rule dialect.
//
// A Rule is a tagged value with four cases — NoOp, Transform, Reject, and
// End — mirroring the grammar's four rule categories. TransformRule and
// RejectRule are themselves tagged values: each carries an Op selecting
// the variant and a small set of generic payload fields, the same way an
// AST expression node carries an Op plus reused Args/position fields.
//
// Rule values are immutable after construction and safe to share across
// goroutines. Package parser builds them, package evalrule interprets
// them, and package simplify rewrites sequences of them; this package
// only defines the data and the few pure helpers (String, Hash, Less)
// that make rules usable as map keys and in deterministic tests.
package rule

import "hash/fnv"

// Kind selects which of the four Rule cases a value represents.
type Kind uint8

const (
	KindNoOp Kind = iota
	KindTransform
	KindReject
	KindEnd
)

// Rule is one compiled command from a rule line.
//
// Exactly one of Transform / Reject is meaningful, selected by Kind;
// the others hold their zero value. This keeps Rule a small, comparable,
// allocation-free struct (no interfaces, no pointers) so it can be used
// directly as a map key or compared with ==.
type Rule struct {
	Kind      Kind
	Transform TransformRule
	Reject    RejectRule
}

// NoOp returns the identity rule (opcode ':').
func NoOp() Rule { return Rule{Kind: KindNoOp} }

// End returns the terminal marker rule, treated as identity during
// evaluation.
func End() Rule { return Rule{Kind: KindEnd} }

// NewTransform wraps a TransformRule as a Rule.
func NewTransform(t TransformRule) Rule { return Rule{Kind: KindTransform, Transform: t} }

// NewReject wraps a RejectRule as a Rule.
func NewReject(r RejectRule) Rule { return Rule{Kind: KindReject, Reject: r} }

// IsNoOp reports whether r behaves as identity: NoOp and End both do.
func (r Rule) IsNoOp() bool { return r.Kind == KindNoOp || r.Kind == KindEnd }

// Hash returns a deterministic 64-bit digest of r, derived from its
// canonical textual form. Useful for memoizing compiled rule sequences
// keyed by their source text.
func (r Rule) Hash() uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(r.String()))
	return h.Sum64()
}

// Less provides a total, deterministic order over Rule values for use in
// sorted test output; it is not meant to convey any semantic priority.
func (r Rule) Less(other Rule) bool { return r.String() < other.String() }

// TransformOp enumerates the transform-rule variants.
type TransformOp uint8

const (
	OpLowercase TransformOp = iota
	OpUppercase
	OpCapitalize
	OpInvertCapitalize
	OpToggleCase
	OpReverse
	OpDuplicate
	OpReflect
	OpRotate
	OpAppend
	OpPrepend
	OpTruncate
	OpDelete
	OpExtract
	OpOmit
	OpInsert
	OpOverwrite
	OpReplace
	OpPurge
	OpDuplicateFirst
	OpDuplicateLast
	OpDuplicateAll
	OpSwapFront
	OpSwapBack
	OpSwap
	OpBitwiseShiftLeft
	OpBitwiseShiftRight
	OpAsciiIncrement
	OpAsciiDecrement
	OpReplaceWithNext
	OpReplaceWithPrev
	OpDuplicateFirstBlock
	OpDuplicateLastBlock
)

// Rotation selects the direction for TransformRule.Rotate.
type Rotation uint8

const (
	RotateLeft Rotation = iota
	RotateRight
)

// TruncateKind selects which end (or target length) TransformRule.Truncate
// cuts to.
type TruncateKind uint8

const (
	TruncateLeft TruncateKind = iota
	TruncateRight
	TruncateTo
)

// TransformRule is a single, always-succeeding string transformation.
//
// Field meaning depends on Op; unused fields hold their zero value:
//
//	Op                      | fields used
//	------------------------|---------------------------------------------
//	ToggleCase              | HasN, N (position; absent = toggle every char)
//	Duplicate               | HasN, N (extra copies beyond the first, default 1)
//	Rotate                  | Rotation
//	Append, Prepend         | Str
//	Truncate                | Truncate (+ N when Truncate==TruncateTo)
//	Delete                  | N (index)
//	Extract, Omit, Swap     | A, B
//	Insert, Overwrite       | A (position), Str
//	Replace                 | Str (search), Str2 (replacement)
//	Purge                   | Str (search)
//	DuplicateFirst, DuplicateLast, DuplicateFirstBlock, DuplicateLastBlock | N
//	BitwiseShiftLeft, BitwiseShiftRight, AsciiIncrement, AsciiDecrement    | N
//	ReplaceWithNext, ReplaceWithPrev                                      | N
//
// Lowercase, Uppercase, Capitalize, InvertCapitalize, Reverse, Reflect,
// DuplicateAll, SwapFront, SwapBack use no fields at all.
type TransformRule struct {
	Op       TransformOp
	N        int
	HasN     bool
	A, B     int
	Str      string
	Str2     string
	Rotation Rotation
	Truncate TruncateKind
}

// RejectOp enumerates the reject-rule variants. The variant name states
// the condition under which the word is REJECTED (see package evalrule),
// which is often the inverse of what the opcode character suggests:
// '<' maps to LongerThan and '>' to ShorterThan — a mapping preserved
// verbatim here, not "fixed", since rule files in the wild depend on it.
type RejectOp uint8

const (
	OpShorterThan RejectOp = iota
	OpLongerThan
	OpNotEqualTo
	OpContains
	OpNotContains
	OpNotStartsWith
	OpNotEndsWith
	OpNotEqualAt
	OpContainsLessThan
)

// RejectRule is a single filter: keeps the word unchanged, or discards it.
//
//	Op                  | fields used
//	--------------------|---------------------------------
//	ShorterThan         | N
//	LongerThan          | N
//	NotEqualTo          | N
//	Contains            | Str
//	NotContains         | Str
//	NotStartsWith       | Str
//	NotEndsWith         | Str
//	NotEqualAt          | N (position), Str
//	ContainsLessThan    | N (count), Str
type RejectRule struct {
	Op  RejectOp
	N   int
	Str string
}
