// Package vm implements the recursive backtracking executor that runs a
// compile.Program against an input. It is the one place backreferences
// and lookaround are handled: both require true backtracking rather than
// a parallel-state NFA simulation (spec §9), so rex never attempts a
// linear-time DFA/NFA path.
package vm

import "github.com/rexcore/rex/compile"

// unset marks a capture slot that has not been written during the current
// match attempt. Using a sentinel int rather than a boxed/pointer option
// matches the teacher's sentinel-offset convention (nfa.StateID's
// InvalidState) instead of Go's more ceremonious *int.
const unset = -1

// Config tunes the executor. Mirrors the teacher's Config-struct-plus-
// Default-constructor convention (nfa.CompilerConfig, dfa/lazy/config.go).
type Config struct {
	// MaxDepth bounds recursion to contain runaway backtracking; a branch
	// that would recurse past MaxDepth fails locally (the overall search
	// may still succeed via another start position or sibling branch).
	MaxDepth int
}

// DefaultConfig returns the spec's recommended depth bound (§4.3: "e.g.
// 10 000").
func DefaultConfig() Config {
	return Config{MaxDepth: 10000}
}

// undoEntry is one entry of the undo log: the slot that was written and
// its prior value, so a failed Split branch can restore exactly the slots
// it touched in O(writes) instead of cloning the whole capture array.
type undoEntry struct {
	slot  int
	prior int
}

// Machine runs a single compiled Program against a single input buffer.
// It owns no state across calls to Run beyond the Program/input/Config
// fields, so a Machine may be reused across searches at different start
// offsets (search.Driver instead builds a fresh one for each start offset)
// but never across concurrent goroutines.
type Machine struct {
	Program *compile.Program
	Input   []rune
	Config  Config
}

// NewMachine builds a Machine for prog over input, using cfg.
func NewMachine(prog *compile.Program, input []rune, cfg Config) *Machine {
	return &Machine{Program: prog, Input: input, Config: cfg}
}

// NewSlots allocates a fresh, all-unset capture slot array sized for m.Program.
func (m *Machine) NewSlots() []int {
	slots := make([]int, m.Program.NumSlots())
	for i := range slots {
		slots[i] = unset
	}
	return slots
}

// Run executes the program starting at input position start, instruction
// pointer 0, writing into slots (slots[0] must already hold start). It
// reports whether the match succeeded; on success slots[1] holds the
// overall match end.
func (m *Machine) Run(start int, slots []int) bool {
	var undo []undoEntry
	return m.exec(start, 0, slots, &undo, 0)
}

// exec is the depth-recursive executor. Each recursive activation
// represents taking one particular branch at a Split; pos/pc are the
// per-activation state, slots/undo are shared and mutated under the
// undo-log discipline described in spec §4.3.
func (m *Machine) exec(pos, pc int, slots []int, undo *[]undoEntry, depth int) bool {
	if depth > m.Config.MaxDepth {
		return false
	}

	insts := m.Program.Insts
	for {
		if pc < 0 || pc >= len(insts) {
			return false
		}
		inst := insts[pc]
		switch inst.Op {
		case compile.OpMatch:
			slots[1] = pos
			return true

		case compile.OpChar:
			if pos < len(m.Input) && m.Input[pos] == inst.Char {
				pos++
				pc++
				continue
			}
			return false

		case compile.OpAnyChar:
			if pos < len(m.Input) && m.Input[pos] != '\n' {
				pos++
				pc++
				continue
			}
			return false

		case compile.OpCharClass:
			if pos < len(m.Input) && classMatches(m.Input[pos], inst.Items, inst.Negated) {
				pos++
				pc++
				continue
			}
			return false

		case compile.OpShorthand:
			if pos < len(m.Input) && shorthandMatches(m.Input[pos], inst.Shorthand) {
				pos++
				pc++
				continue
			}
			return false

		case compile.OpJump:
			pc = inst.Target
			continue

		case compile.OpSplit:
			mark := len(*undo)
			if m.exec(pos, inst.First, slots, undo, depth+1) {
				return true
			}
			unwind(slots, undo, mark)
			pc = inst.Second
			continue

		case compile.OpSave:
			*undo = append(*undo, undoEntry{slot: inst.Slot, prior: slots[inst.Slot]})
			slots[inst.Slot] = pos
			pc++
			continue

		case compile.OpAssertStart:
			if pos == 0 {
				pc++
				continue
			}
			return false

		case compile.OpAssertEnd:
			if pos == len(m.Input) {
				pc++
				continue
			}
			return false

		case compile.OpAssertWordBoundary:
			if isWordBoundary(m.Input, pos) {
				pc++
				continue
			}
			return false

		case compile.OpAssertNonWordBoundary:
			if !isWordBoundary(m.Input, pos) {
				pc++
				continue
			}
			return false

		case compile.OpBackref:
			newPos, ok := m.matchBackref(inst.GroupIndex, pos, slots)
			if !ok {
				return false
			}
			pos = newPos
			pc++
			continue

		case compile.OpLookaheadPositive:
			matched, sub := m.execLookahead(pos, inst.SubStart, slots, depth)
			if !matched {
				return false
			}
			propagateCaptures(slots, sub, undo)
			pc = inst.SubEnd
			continue

		case compile.OpLookaheadNegative:
			matched, _ := m.execLookahead(pos, inst.SubStart, slots, depth)
			if matched {
				return false
			}
			pc = inst.SubEnd
			continue

		case compile.OpLookbehindPositive:
			matched, sub := m.execLookbehind(pos, inst.SubStart, slots, depth)
			if !matched {
				return false
			}
			propagateCaptures(slots, sub, undo)
			pc = inst.SubEnd
			continue

		case compile.OpLookbehindNegative:
			matched, _ := m.execLookbehind(pos, inst.SubStart, slots, depth)
			if matched {
				return false
			}
			pc = inst.SubEnd
			continue

		case compile.OpNop:
			pc++
			continue
		}
		return false
	}
}

// unwind restores slots to their values at undo-log mark, popping entries
// back down to that mark. This is the restoration half of the Split
// discipline: after a failed branch, captures equal their pre-branch value.
func unwind(slots []int, undo *[]undoEntry, mark int) {
	log := *undo
	for len(log) > mark {
		last := log[len(log)-1]
		log = log[:len(log)-1]
		slots[last.slot] = last.prior
	}
	*undo = log
}

func (m *Machine) matchBackref(groupIndex, pos int, slots []int) (int, bool) {
	startSlot, endSlot := groupIndex*2, groupIndex*2+1
	if startSlot < 0 || endSlot >= len(slots) {
		return pos, false
	}
	gs, ge := slots[startSlot], slots[endSlot]
	if gs == unset || ge == unset {
		return pos, false
	}
	n := ge - gs
	if pos+n > len(m.Input) {
		return pos, false
	}
	for i := 0; i < n; i++ {
		if m.Input[gs+i] != m.Input[pos+i] {
			return pos, false
		}
	}
	return pos + n, true
}

// execLookahead runs the sub-program at subStart from the current position
// pos, isolated in a copy of slots so failure never corrupts the caller's
// captures. It reports whether the sub-program matched and, if so, the
// resulting slot array (for the caller to propagate on the positive path).
func (m *Machine) execLookahead(pos, subStart int, slots []int, depth int) (bool, []int) {
	sub := append([]int(nil), slots...)
	sub[1] = unset
	var subUndo []undoEntry
	if !m.exec(pos, subStart, sub, &subUndo, depth+1) {
		return false, nil
	}
	return true, sub
}

// execLookbehind searches candidate starting positions pos, pos-1, ..., 0
// for one where the sub-program finishes exactly at pos (spec §4.3's
// accepted O(pos*|sub|) linear scan), stopping at the first such position.
func (m *Machine) execLookbehind(pos, subStart int, slots []int, depth int) (bool, []int) {
	for lookback := 0; lookback <= pos; lookback++ {
		tryPos := pos - lookback
		sub := append([]int(nil), slots...)
		sub[1] = unset
		var subUndo []undoEntry
		if m.exec(tryPos, subStart, sub, &subUndo, depth+1) && sub[1] == pos {
			return true, sub
		}
	}
	return false, nil
}

// propagateCaptures copies every changed capture slot (indices >= 2,
// skipping the overall match bounds) from sub into slots, recording each
// change in undo so a later failed sibling branch can unwind it too.
func propagateCaptures(slots, sub []int, undo *[]undoEntry) {
	for i := 2; i < len(slots); i++ {
		if sub[i] != slots[i] {
			*undo = append(*undo, undoEntry{slot: i, prior: slots[i]})
			slots[i] = sub[i]
		}
	}
}
