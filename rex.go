// Package rex provides a small backtracking regular-expression engine.
//
// rex targets a Perl/PCRE-style subset: literals, `.`, alternation,
// greedy/lazy quantifiers (`* + ? {n} {n,} {n,m}`), character classes and
// shorthand escapes, anchors (`^ $ \b \B`), capturing and non-capturing
// groups, backreferences (`\1`..`\9`), and lookaround
// (`(?=) (?!) (?<=) (?<!)`).
//
// Matching is recursive backtracking rather than linear-time NFA/DFA
// simulation, because backreferences and lookaround are not expressible
// in a parallel-state NFA. All offsets are in code points (runes), not
// bytes.
//
// Limitations:
//   - Unicode-aware classes beyond ASCII are not supported.
//   - Named captures, atomic groups, possessive quantifiers, recursive
//     subpatterns, and conditional patterns are not supported.
//   - There is no replace/substitute and no find-all; only the first
//     (leftmost) match is reported.
//
// Example:
//
//	re, err := rex.Compile(`a(b+)c`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	loc := re.FindStringSubmatchIndex("xxabbbcx")
//	// loc == []int{2, 7, 3, 6}
package rex

import (
	"github.com/rexcore/rex/compile"
	"github.com/rexcore/rex/search"
	"github.com/rexcore/rex/syntax"
)

// Regexp is a compiled pattern, safe for concurrent use by any number of
// goroutines: the underlying Program is read-only after Compile returns,
// and every search allocates its own vm.Machine and capture-slot array.
type Regexp struct {
	program *compile.Program
	source  string
}

// Compile parses and compiles pattern, returning a *syntax.ParseError on
// failure.
//
// Example:
//
//	re, err := rex.Compile(`\d{3}-\d{4}`)
func Compile(pattern string) (*Regexp, error) {
	tree, numGroups, err := syntax.Parse(pattern)
	if err != nil {
		return nil, err
	}
	prog := compile.Compile(tree, numGroups)
	return &Regexp{program: prog, source: pattern}, nil
}

// MustCompile is like Compile but panics if pattern cannot be parsed. It
// simplifies safe initialization of global variables holding compiled
// patterns.
func MustCompile(pattern string) *Regexp {
	re, err := Compile(pattern)
	if err != nil {
		panic(`rex: Compile(` + quote(pattern) + `): ` + err.Error())
	}
	return re
}

// String returns the source pattern text.
func (re *Regexp) String() string { return re.source }

// NumSubexp returns the number of capturing groups in the pattern.
func (re *Regexp) NumSubexp() int { return re.program.NumGroups }

// FindStringSubmatchIndex returns a flat []int of 2*(NumSubexp()+1)
// entries, one (start, end) pair per group (group 0 is the overall
// match), in the same index layout as stdlib regexp.Regexp. Unset groups
// are reported as -1. Returns nil if there is no match.
func (re *Regexp) FindStringSubmatchIndex(s string) []int {
	input := []rune(s)
	d := search.NewDriver(re.program)
	result, ok := d.FindRunes(input)
	if !ok {
		return nil
	}
	return append([]int(nil), result.Slots...)
}

// FindString returns the text of the first match, or "" if there is no
// match (indistinguishable from an empty match; use
// FindStringSubmatchIndex to tell them apart).
func (re *Regexp) FindString(s string) string {
	loc := re.FindStringSubmatchIndex(s)
	if loc == nil {
		return ""
	}
	input := []rune(s)
	return string(input[loc[0]:loc[1]])
}

// MatchString reports whether s contains any match of the pattern.
func (re *Regexp) MatchString(s string) bool {
	return re.FindStringSubmatchIndex(s) != nil
}

func quote(s string) string {
	return "\"" + s + "\""
}
