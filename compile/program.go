// Package compile lowers a syntax tree (package syntax) into a flat
// instruction program suitable for the Thompson-style backtracking vm.
package compile

import "github.com/rexcore/rex/syntax"

// Opcode discriminates Inst variants. Like syntax.Node, Inst is a flat
// struct rather than one Go type per variant, keeping the vm's dispatch a
// single type switch on Op.
type Opcode byte

const (
	OpChar Opcode = iota
	OpAnyChar
	OpCharClass
	OpShorthand
	OpMatch
	OpJump
	OpSplit
	OpSave
	OpAssertStart
	OpAssertEnd
	OpAssertWordBoundary
	OpAssertNonWordBoundary
	OpBackref
	OpLookaheadPositive
	OpLookaheadNegative
	OpLookbehindPositive
	OpLookbehindNegative
	OpNop
)

// Inst is one instruction of a compiled Program.
type Inst struct {
	Op Opcode

	Char rune // OpChar

	Items   []syntax.ClassItem // OpCharClass
	Negated bool                // OpCharClass

	Shorthand syntax.ShorthandKind // OpShorthand

	Target int // OpJump

	First, Second int // OpSplit

	Slot int // OpSave

	GroupIndex int // OpBackref

	SubStart, SubEnd int // Op{Lookahead,Lookbehind}{Positive,Negative}
}

// Program is the flat, zero-indexed instruction stream produced by Compile,
// plus the scalars the search driver needs to avoid running the vm at
// positions that cannot possibly match.
type Program struct {
	Insts []Inst

	// NumGroups is the number of capturing groups in the pattern. The
	// capture-slot array has 2*(NumGroups+1) entries.
	NumGroups int

	// HasFirstLiteral/FirstLiteral record a required leading literal rune,
	// when the program's first instruction (or the one right after a
	// leading AssertStart) is OpChar. Any other leading instruction, such
	// as a Save or Split, leaves HasFirstLiteral false.
	HasFirstLiteral bool
	FirstLiteral    rune

	// AnchoredStart is true when the program begins with AssertStart.
	AnchoredStart bool
}

// NumSlots returns the number of capture slots the program requires.
func (p *Program) NumSlots() int { return 2 * (p.NumGroups + 1) }
