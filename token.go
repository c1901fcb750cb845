package rpnre

import (
	"fmt"
	"strings"
)

// The fixed alphabet of expressions. EmptyWord is not a letter, but the
// marker for the empty word.
const (
	Alphabet  = "abc"
	EmptyWord = '1'
)

// Operator symbols of postfix expressions.
const (
	ConcatOp = '.'
	UnionOp  = '+'
	StarOp   = '*'
)

// TokenKind classifies the symbols of a postfix expression.
type TokenKind int8

// Token kinds. Whether a Letter is the letter of interest is not a property
// of the token, but depends on the question asked.
const (
	Invalid TokenKind = iota
	Letter
	Empty
	Concat
	Union
	Star
)

var kindNames = [...]string{"invalid", "letter", "empty", "concat", "union", "star"}

func (k TokenKind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("TokenKind(%d)", int8(k))
	}
	return kindNames[k]
}

// IsOperator is a predicate: is this an operator token kind?
func (k TokenKind) IsOperator() bool {
	return k == Concat || k == Union || k == Star
}

// Arity returns the number of operands an operator consumes, 0 for
// letters and the empty word.
func (k TokenKind) Arity() int {
	switch k {
	case Concat, Union:
		return 2
	case Star:
		return 1
	}
	return 0
}

// KindOf classifies a symbol. Unknown symbols are Invalid.
func KindOf(r rune) TokenKind {
	switch {
	case IsLetter(r):
		return Letter
	case r == EmptyWord:
		return Empty
	case r == ConcatOp:
		return Concat
	case r == UnionOp:
		return Union
	case r == StarOp:
		return Star
	}
	return Invalid
}

// IsLetter is a predicate: is r a letter of the alphabet?
func IsLetter(r rune) bool {
	return strings.ContainsRune(Alphabet, r)
}

// Token is a symbol of a postfix expression, together with its byte position
// within the expression.
type Token struct {
	Kind   TokenKind
	Symbol rune
	Pos    int
}

// MakeToken creates a token for symbol r at position pos.
func MakeToken(r rune, pos int) Token {
	return Token{Kind: KindOf(r), Symbol: r, Pos: pos}
}

func (t Token) String() string {
	return fmt.Sprintf("%c:%s@%d", t.Symbol, t.Kind, t.Pos)
}
