// Package search implements the driver that positions the vm at
// successive start offsets and applies the compiler's pre-filters
// (anchor, required-first-literal), per spec §4.5.
package search

import (
	"github.com/rexcore/rex/compile"
	"github.com/rexcore/rex/vm"
)

// Result is a single match report: the overall bounds and the full
// capture-slot array (slots[0]/slots[1] duplicate Start/End; groups live
// at slots[2*i]/slots[2*i+1]).
type Result struct {
	Start, End int
	Slots      []int
}

// Driver runs Program against successive candidate start positions of an
// input, the way meta.Engine/meta/find.go wraps a compiled program in the
// teacher, generalized here to rex's single rune-oriented strategy.
type Driver struct {
	Program *compile.Program
	Config  vm.Config
}

// NewDriver builds a Driver for prog using the default vm configuration.
func NewDriver(prog *compile.Program) *Driver {
	return &Driver{Program: prog, Config: vm.DefaultConfig()}
}

// FindRunes searches input (already decoded to code points) for the first
// match, reporting its bounds and capture slots.
func (d *Driver) FindRunes(input []rune) (*Result, bool) {
	if d.Program.AnchoredStart {
		return d.tryAt(input, 0)
	}
	for start := 0; start <= len(input); start++ {
		if d.Program.HasFirstLiteral {
			if start >= len(input) || input[start] != d.Program.FirstLiteral {
				continue
			}
		}
		if res, ok := d.tryAt(input, start); ok {
			return res, true
		}
	}
	return nil, false
}

// tryAt attempts a match anchored at exactly start.
func (d *Driver) tryAt(input []rune, start int) (*Result, bool) {
	m := vm.NewMachine(d.Program, input, d.Config)
	slots := m.NewSlots()
	slots[0] = start
	if !m.Run(start, slots) {
		return nil, false
	}
	end := slots[1]
	if end < 0 {
		end = start
		slots[1] = end
	}
	return &Result{Start: start, End: end, Slots: slots}, true
}
