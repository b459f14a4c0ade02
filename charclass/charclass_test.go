package charclass

import (
	"testing"

	"github.com/rexcore/rex/syntax"
)

func TestMatchesRangeAndNegation(t *testing.T) {
	items := []syntax.ClassItem{syntax.RangeItem('a', 'z')}
	if !Matches('m', items, false) {
		t.Fatal("expected 'm' in [a-z]")
	}
	if Matches('M', items, false) {
		t.Fatal("did not expect 'M' in [a-z]")
	}
	if !Matches('M', items, true) {
		t.Fatal("expected 'M' in [^a-z]")
	}
}

func TestMatchesFirstItemShortCircuits(t *testing.T) {
	items := []syntax.ClassItem{
		syntax.LiteralItem('x'),
		syntax.RangeItem('a', 'z'),
	}
	if !Matches('x', items, false) {
		t.Fatal("expected literal 'x' to match")
	}
}

func TestShorthandMatches(t *testing.T) {
	tests := []struct {
		kind syntax.ShorthandKind
		in   rune
		want bool
	}{
		{syntax.ShorthandDigit, '5', true},
		{syntax.ShorthandDigit, 'a', false},
		{syntax.ShorthandWord, '_', true},
		{syntax.ShorthandWord, '-', false},
		{syntax.ShorthandSpace, '\t', true},
		{syntax.ShorthandNonSpace, 'x', true},
	}
	for _, tt := range tests {
		if got := ShorthandMatches(tt.in, tt.kind); got != tt.want {
			t.Errorf("ShorthandMatches(%q, %v) = %v, want %v", tt.in, tt.kind, got, tt.want)
		}
	}
}

func TestIsWordBoundary(t *testing.T) {
	input := []rune("a b")
	// positions: 0='a',1=' ',2='b', len=3
	tests := []struct {
		pos  int
		want bool
	}{
		{0, true}, // start, 'a' is word, nothing before
		{1, true}, // 'a' before (word), ' ' after (non-word)
		{2, true}, // ' ' before (non-word), 'b' after (word)
		{3, true}, // 'b' before (word), nothing after
	}
	for _, tt := range tests {
		if got := IsWordBoundary(input, tt.pos); got != tt.want {
			t.Errorf("IsWordBoundary(%d) = %v, want %v", tt.pos, got, tt.want)
		}
	}
	if IsWordBoundary([]rune("ab"), 1) {
		t.Fatal("middle of a word should not be a boundary")
	}
}
