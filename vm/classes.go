package vm

import (
	"github.com/rexcore/rex/charclass"
	"github.com/rexcore/rex/syntax"
)

func classMatches(r rune, items []syntax.ClassItem, negated bool) bool {
	return charclass.Matches(r, items, negated)
}

func shorthandMatches(r rune, kind syntax.ShorthandKind) bool {
	return charclass.ShorthandMatches(r, kind)
}

func isWordBoundary(input []rune, pos int) bool {
	return charclass.IsWordBoundary(input, pos)
}
