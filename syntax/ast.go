// Package syntax implements the pattern parser and syntax tree for the rex
// regular-expression engine.
//
// The tree is a single flat Node type discriminated by Kind rather than a
// Go interface per variant: the set of shapes is fixed and small, and a
// flat struct keeps the compiler's emit switch a single type switch on
// Kind instead of a type-assertion chain.
package syntax

// Kind discriminates the syntax tree node variants.
type Kind byte

const (
	KindLiteral Kind = iota
	KindDot
	KindConcat
	KindAlternation
	KindQuantifier
	KindCharClass
	KindShorthand
	KindAnchor
	KindGroup
	KindNonCapturingGroup
	KindBackreference
	KindLookahead
	KindLookbehind
)

// QuantKind is the kind of repetition a Quantifier node applies.
type QuantKind byte

const (
	QuantStar QuantKind = iota
	QuantPlus
	QuantQuestion
	QuantExact
	QuantAtLeast
	QuantRange
)

// ShorthandKind is a single-character escape class (\d, \w, \s and their
// negations).
type ShorthandKind byte

const (
	ShorthandDigit ShorthandKind = iota
	ShorthandNonDigit
	ShorthandWord
	ShorthandNonWord
	ShorthandSpace
	ShorthandNonSpace
)

// AnchorKind is a zero-width position assertion.
type AnchorKind byte

const (
	AnchorStart AnchorKind = iota
	AnchorEnd
	AnchorWordBoundary
	AnchorNonWordBoundary
)

// ClassItem is one test within a CharClass node: a single rune, an
// inclusive rune range, or a shorthand class.
type ClassItem struct {
	IsRange   bool
	IsShort   bool
	Lit       rune
	Lo, Hi    rune
	Shorthand ShorthandKind
}

// LiteralItem builds a ClassItem matching exactly r.
func LiteralItem(r rune) ClassItem { return ClassItem{Lit: r} }

// RangeItem builds a ClassItem matching the inclusive range [lo, hi].
func RangeItem(lo, hi rune) ClassItem { return ClassItem{IsRange: true, Lo: lo, Hi: hi} }

// ShorthandItem builds a ClassItem matching a shorthand class.
func ShorthandItem(kind ShorthandKind) ClassItem { return ClassItem{IsShort: true, Shorthand: kind} }

// Node is one node of the syntax tree. Only the fields relevant to Kind
// are populated; the rest are zero.
type Node struct {
	Kind Kind

	// KindLiteral
	Lit rune

	// KindConcat, KindAlternation: ordered children.
	Children []*Node

	// KindQuantifier
	Sub    *Node
	Quant  QuantKind
	Greedy bool
	N, M   int // Exact(N), AtLeast(N), Range(N,M)

	// KindCharClass
	Items   []ClassItem
	Negated bool

	// KindShorthand
	Shorthand ShorthandKind

	// KindAnchor
	Anchor AnchorKind

	// KindGroup
	GroupIndex int

	// KindGroup, KindNonCapturingGroup, KindLookahead, KindLookbehind share Sub.

	// KindBackreference
	BackrefIndex int

	// KindLookahead, KindLookbehind
	Positive bool
}
