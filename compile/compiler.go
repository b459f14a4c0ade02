package compile

import "github.com/rexcore/rex/syntax"

// Compile lowers tree into a Program. numGroups is the capturing-group
// count produced alongside tree by syntax.Parse.
func Compile(tree *syntax.Node, numGroups int) *Program {
	var insts []Inst
	insts = emit(insts, tree)
	insts = append(insts, Inst{Op: OpMatch})

	prog := &Program{Insts: insts, NumGroups: numGroups}
	prog.FirstLiteral, prog.HasFirstLiteral = extractFirstLiteral(insts)
	prog.AnchoredStart = len(insts) > 0 && insts[0].Op == OpAssertStart
	return prog
}

// extractFirstLiteral finds a leading required literal character, if any:
// either the very first instruction, or the instruction right after a
// leading AssertStart.
func extractFirstLiteral(insts []Inst) (rune, bool) {
	if len(insts) == 0 {
		return 0, false
	}
	if insts[0].Op == OpChar {
		return insts[0].Char, true
	}
	if insts[0].Op == OpAssertStart && len(insts) > 1 && insts[1].Op == OpChar {
		return insts[1].Char, true
	}
	return 0, false
}

func emit(insts []Inst, node *syntax.Node) []Inst {
	if node == nil {
		return insts
	}
	switch node.Kind {
	case syntax.KindLiteral:
		return append(insts, Inst{Op: OpChar, Char: node.Lit})

	case syntax.KindDot:
		return append(insts, Inst{Op: OpAnyChar})

	case syntax.KindConcat:
		for _, child := range node.Children {
			insts = emit(insts, child)
		}
		return insts

	case syntax.KindAlternation:
		return emitAlternation(insts, node.Children)

	case syntax.KindQuantifier:
		return emitQuantifier(insts, node.Sub, node)

	case syntax.KindCharClass:
		return append(insts, Inst{Op: OpCharClass, Items: node.Items, Negated: node.Negated})

	case syntax.KindShorthand:
		return append(insts, Inst{Op: OpShorthand, Shorthand: node.Shorthand})

	case syntax.KindAnchor:
		switch node.Anchor {
		case syntax.AnchorStart:
			return append(insts, Inst{Op: OpAssertStart})
		case syntax.AnchorEnd:
			return append(insts, Inst{Op: OpAssertEnd})
		case syntax.AnchorWordBoundary:
			return append(insts, Inst{Op: OpAssertWordBoundary})
		case syntax.AnchorNonWordBoundary:
			return append(insts, Inst{Op: OpAssertNonWordBoundary})
		}
		return insts

	case syntax.KindGroup:
		insts = append(insts, Inst{Op: OpSave, Slot: node.GroupIndex * 2})
		insts = emit(insts, node.Sub)
		insts = append(insts, Inst{Op: OpSave, Slot: node.GroupIndex*2 + 1})
		return insts

	case syntax.KindNonCapturingGroup:
		return emit(insts, node.Sub)

	case syntax.KindBackreference:
		return append(insts, Inst{Op: OpBackref, GroupIndex: node.BackrefIndex})

	case syntax.KindLookahead:
		return emitLookaround(insts, node, node.Positive, true)

	case syntax.KindLookbehind:
		return emitLookaround(insts, node, node.Positive, false)
	}
	return insts
}

// emitAlternation emits a chain of Split(branch_i_start, next_split);
// each branch but the last ends in a Jump to the common end, backpatched
// once the final branch's end is known.
func emitAlternation(insts []Inst, branches []*syntax.Node) []Inst {
	n := len(branches)
	if n == 0 {
		return insts
	}
	if n == 1 {
		return emit(insts, branches[0])
	}

	var jumpFixups []int
	for i := 0; i < n-1; i++ {
		splitPC := len(insts)
		insts = append(insts, Inst{Op: OpNop}) // placeholder split
		branchStart := len(insts)
		insts = emit(insts, branches[i])
		jumpPC := len(insts)
		insts = append(insts, Inst{Op: OpNop}) // placeholder jump to end
		jumpFixups = append(jumpFixups, jumpPC)
		nextBranch := len(insts)
		insts[splitPC] = Inst{Op: OpSplit, First: branchStart, Second: nextBranch}
	}
	insts = emit(insts, branches[n-1])
	end := len(insts)
	for _, jpc := range jumpFixups {
		insts[jpc] = Inst{Op: OpJump, Target: end}
	}
	return insts
}

// emitLookaround reserves a placeholder at the lookaround instruction's
// position, emits the sub-pattern followed by its own terminating Match,
// and patches the placeholder with the resolved sub-range and opcode.
func emitLookaround(insts []Inst, node *syntax.Node, positive, ahead bool) []Inst {
	laPC := len(insts)
	insts = append(insts, Inst{Op: OpNop})
	subStart := len(insts)
	insts = emit(insts, node.Sub)
	insts = append(insts, Inst{Op: OpMatch})
	subEnd := len(insts)

	var op Opcode
	switch {
	case ahead && positive:
		op = OpLookaheadPositive
	case ahead && !positive:
		op = OpLookaheadNegative
	case !ahead && positive:
		op = OpLookbehindPositive
	default:
		op = OpLookbehindNegative
	}
	insts[laPC] = Inst{Op: op, SubStart: subStart, SubEnd: subEnd}
	return insts
}

// emitQuantifier emits the Split wiring for a single quantified node,
// per the emission-rules table (spec §4.2). Lazy quantifiers swap the
// Split operands relative to their greedy counterpart.
func emitQuantifier(insts []Inst, sub *syntax.Node, q *syntax.Node) []Inst {
	greedy := q.Greedy
	switch q.Quant {
	case syntax.QuantStar:
		return emitStar(insts, sub, greedy)
	case syntax.QuantPlus:
		return emitPlus(insts, sub, greedy)
	case syntax.QuantQuestion:
		return emitQuestion(insts, sub, greedy)
	case syntax.QuantExact:
		for i := 0; i < q.N; i++ {
			insts = emit(insts, sub)
		}
		return insts
	case syntax.QuantAtLeast:
		for i := 0; i < q.N; i++ {
			insts = emit(insts, sub)
		}
		return emitStar(insts, sub, greedy)
	case syntax.QuantRange:
		for i := 0; i < q.N; i++ {
			insts = emit(insts, sub)
		}
		for i := 0; i < q.M-q.N; i++ {
			insts = emitQuestion(insts, sub, greedy)
		}
		return insts
	}
	return insts
}

func emitStar(insts []Inst, sub *syntax.Node, greedy bool) []Inst {
	// L1: split L2, L3 (greedy prefers L2)
	// L2: <sub> jump L1
	// L3:
	l1 := len(insts)
	insts = append(insts, Inst{Op: OpNop})
	l2 := len(insts)
	insts = emit(insts, sub)
	insts = append(insts, Inst{Op: OpJump, Target: l1})
	l3 := len(insts)
	if greedy {
		insts[l1] = Inst{Op: OpSplit, First: l2, Second: l3}
	} else {
		insts[l1] = Inst{Op: OpSplit, First: l3, Second: l2}
	}
	return insts
}

func emitPlus(insts []Inst, sub *syntax.Node, greedy bool) []Inst {
	// L1: <sub>
	//     split L1, L2 (greedy prefers L1)
	// L2:
	l1 := len(insts)
	insts = emit(insts, sub)
	l2 := len(insts) + 1
	if greedy {
		insts = append(insts, Inst{Op: OpSplit, First: l1, Second: l2})
	} else {
		insts = append(insts, Inst{Op: OpSplit, First: l2, Second: l1})
	}
	return insts
}

func emitQuestion(insts []Inst, sub *syntax.Node, greedy bool) []Inst {
	// split L1, L2 (greedy prefers L1)
	// L1: <sub>
	// L2:
	splitPC := len(insts)
	insts = append(insts, Inst{Op: OpNop})
	l1 := len(insts)
	insts = emit(insts, sub)
	l2 := len(insts)
	if greedy {
		insts[splitPC] = Inst{Op: OpSplit, First: l1, Second: l2}
	} else {
		insts[splitPC] = Inst{Op: OpSplit, First: l2, Second: l1}
	}
	return insts
}
