package grammar

import (
	"errors"
	"testing"

	"github.com/npillmayer/rpnre"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestTokenize(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rpnre.grammar")
	defer teardown()
	//
	tokens, err := Tokenize("ab+1.c*")
	if err != nil {
		t.Fatal(err)
	}
	expected := []struct {
		kind rpnre.TokenKind
		r    rune
	}{
		{rpnre.Letter, 'a'},
		{rpnre.Letter, 'b'},
		{rpnre.Union, '+'},
		{rpnre.Empty, '1'},
		{rpnre.Concat, '.'},
		{rpnre.Letter, 'c'},
		{rpnre.Star, '*'},
	}
	if len(tokens) != len(expected) {
		t.Fatalf("expected %d tokens, have %d", len(expected), len(tokens))
	}
	for i, x := range expected {
		if tokens[i].Kind != x.kind || tokens[i].Symbol != x.r {
			t.Errorf("token %d: expected %c:%s, is %s", i, x.r, x.kind, tokens[i])
		}
		if tokens[i].Pos != i {
			t.Errorf("token %d: expected position %d, is %d", i, i, tokens[i].Pos)
		}
	}
}

func TestTokenizeEmpty(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rpnre.grammar")
	defer teardown()
	//
	tokens, err := Tokenize("")
	if err != nil {
		t.Errorf("empty expression should scan without error, got %v", err)
	}
	if len(tokens) != 0 {
		t.Errorf("expected no tokens for empty expression, have %d", len(tokens))
	}
}

func TestTokenizeUnknownSymbol(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rpnre.grammar")
	defer teardown()
	//
	for i, expr := range []string{"abd", "a b", "ab|", "(ab)", "ab.é"} {
		_, err := Tokenize(expr)
		if err == nil {
			t.Errorf("test %d: expected %q to fail scanning", i, expr)
		} else if !errors.Is(err, rpnre.ErrMalformedExpression) {
			t.Errorf("test %d: expected malformed expression error, got %v", i, err)
		}
	}
}

func TestScanKeepsUnknownSymbols(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rpnre.grammar")
	defer teardown()
	//
	tokens, err := Scan("daé+d")
	if err != nil {
		t.Fatal(err)
	}
	expected := []rpnre.Token{
		{Kind: rpnre.Invalid, Symbol: 'd', Pos: 0},
		{Kind: rpnre.Letter, Symbol: 'a', Pos: 1},
		{Kind: rpnre.Invalid, Symbol: 'é', Pos: 2},
		{Kind: rpnre.Union, Symbol: '+', Pos: 4},
		{Kind: rpnre.Invalid, Symbol: 'd', Pos: 5},
	}
	if len(tokens) != len(expected) {
		t.Fatalf("expected %d tokens, have %d: %v", len(expected), len(tokens), tokens)
	}
	for i, x := range expected {
		if tokens[i] != x {
			t.Errorf("token %d: expected %s, is %s", i, x, tokens[i])
		}
	}
}
