// Package charclass holds the character-class and word-boundary oracles
// used by the vm package when executing CharClass/Shorthand/
// AssertWordBoundary instructions. Factored into its own package the way the teacher factors
// class-membership testing out of its executor in nfa/charclass_searcher.go.
package charclass

import "github.com/rexcore/rex/syntax"

// Matches reports whether r satisfies the character class described by
// items/negated. Items are tested in order; the first match short-
// circuits, then negated flips the final verdict.
func Matches(r rune, items []syntax.ClassItem, negated bool) bool {
	matched := false
	for _, item := range items {
		switch {
		case item.IsShort:
			if ShorthandMatches(r, item.Shorthand) {
				matched = true
			}
		case item.IsRange:
			if r >= item.Lo && r <= item.Hi {
				matched = true
			}
		default:
			if r == item.Lit {
				matched = true
			}
		}
		if matched {
			break
		}
	}
	if negated {
		return !matched
	}
	return matched
}

// ShorthandMatches reports whether r satisfies the ASCII definition of the
// given shorthand class (spec §4.4).
func ShorthandMatches(r rune, kind syntax.ShorthandKind) bool {
	switch kind {
	case syntax.ShorthandDigit:
		return isDigit(r)
	case syntax.ShorthandNonDigit:
		return !isDigit(r)
	case syntax.ShorthandWord:
		return IsWordChar(r)
	case syntax.ShorthandNonWord:
		return !IsWordChar(r)
	case syntax.ShorthandSpace:
		return isSpace(r)
	case syntax.ShorthandNonSpace:
		return !isSpace(r)
	default:
		return false
	}
}

// IsWordChar reports whether r is an ASCII word character: digit, letter,
// or underscore.
func IsWordChar(r rune) bool {
	return isDigit(r) || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r == '_'
}

// IsWordBoundary reports whether pos is a word boundary in input: the
// is-word-character predicate must disagree between the characters
// immediately before and after pos. Out-of-range positions count as
// non-word.
func IsWordBoundary(input []rune, pos int) bool {
	before := pos > 0 && IsWordChar(input[pos-1])
	after := pos < len(input) && IsWordChar(input[pos])
	return before != after
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	default:
		return false
	}
}
