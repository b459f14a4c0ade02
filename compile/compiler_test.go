package compile

import (
	"testing"

	"github.com/rexcore/rex/syntax"
)

func mustParse(t *testing.T, pattern string) (*syntax.Node, int) {
	t.Helper()
	node, n, err := syntax.Parse(pattern)
	if err != nil {
		t.Fatalf("Parse(%q): %v", pattern, err)
	}
	return node, n
}

func TestCompileEndsWithMatch(t *testing.T) {
	node, n := mustParse(t, `abc`)
	prog := Compile(node, n)
	last := prog.Insts[len(prog.Insts)-1]
	if last.Op != OpMatch {
		t.Fatalf("last instruction = %v, want OpMatch", last.Op)
	}
}

func TestCompileFirstLiteral(t *testing.T) {
	tests := []struct {
		pattern  string
		wantHas  bool
		wantChar rune
	}{
		{`abc`, true, 'a'},
		{`^abc`, true, 'a'},
		{`.bc`, false, 0},
		{`a|b`, false, 0},
	}
	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			node, n := mustParse(t, tt.pattern)
			prog := Compile(node, n)
			if prog.HasFirstLiteral != tt.wantHas {
				t.Fatalf("HasFirstLiteral = %v, want %v", prog.HasFirstLiteral, tt.wantHas)
			}
			if tt.wantHas && prog.FirstLiteral != tt.wantChar {
				t.Fatalf("FirstLiteral = %q, want %q", prog.FirstLiteral, tt.wantChar)
			}
		})
	}
}

func TestCompileAnchoredStart(t *testing.T) {
	node, n := mustParse(t, `^abc`)
	prog := Compile(node, n)
	if !prog.AnchoredStart {
		t.Fatal("expected AnchoredStart")
	}

	node2, n2 := mustParse(t, `abc`)
	prog2 := Compile(node2, n2)
	if prog2.AnchoredStart {
		t.Fatal("did not expect AnchoredStart")
	}
}

func TestCompileGroupSaveSlots(t *testing.T) {
	node, n := mustParse(t, `(a)(b)`)
	prog := Compile(node, n)
	var slots []int
	for _, inst := range prog.Insts {
		if inst.Op == OpSave {
			slots = append(slots, inst.Slot)
		}
	}
	want := []int{2, 3, 4, 5}
	if len(slots) != len(want) {
		t.Fatalf("slots = %v, want %v", slots, want)
	}
	for i := range want {
		if slots[i] != want[i] {
			t.Fatalf("slots = %v, want %v", slots, want)
		}
	}
}

func TestCompileAlternationBranchCount(t *testing.T) {
	node, n := mustParse(t, `a|b|c`)
	prog := Compile(node, n)
	splits := 0
	for _, inst := range prog.Insts {
		if inst.Op == OpSplit {
			splits++
		}
	}
	if splits != 2 {
		t.Fatalf("expected 2 splits for a 3-way alternation, got %d", splits)
	}
}

func TestCompileQuantifierStarPlusQuestion(t *testing.T) {
	for _, pattern := range []string{`a*`, `a+`, `a?`} {
		node, n := mustParse(t, pattern)
		prog := Compile(node, n)
		hasSplit := false
		for _, inst := range prog.Insts {
			if inst.Op == OpSplit {
				hasSplit = true
			}
		}
		if !hasSplit {
			t.Fatalf("%s: expected a Split instruction", pattern)
		}
	}
}

func TestCompileLookaroundSubRange(t *testing.T) {
	node, n := mustParse(t, `a(?=b)`)
	prog := Compile(node, n)
	var found bool
	for _, inst := range prog.Insts {
		if inst.Op == OpLookaheadPositive {
			found = true
			if inst.SubStart >= inst.SubEnd {
				t.Fatalf("invalid sub-range [%d,%d)", inst.SubStart, inst.SubEnd)
			}
			if prog.Insts[inst.SubEnd-1].Op != OpMatch {
				t.Fatalf("sub-program must end in Match, got %v", prog.Insts[inst.SubEnd-1].Op)
			}
		}
	}
	if !found {
		t.Fatal("expected a LookaheadPositive instruction")
	}
}
