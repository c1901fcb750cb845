package evaluator

import "github.com/npillmayer/rpnre"

// Infix rendering of subexpressions. The empty word is dropped from
// concatenations; a union of two empty words is the empty word.

var emptyInfix = string(rpnre.EmptyWord)

func infixConcat(l, r string) string {
	if r == emptyInfix {
		return l
	} else if l == emptyInfix {
		return r
	}
	return "(" + l + string(rpnre.ConcatOp) + r + ")"
}

func infixUnion(l, r string) string {
	if l == emptyInfix && r == emptyInfix {
		return emptyInfix
	}
	return "(" + l + string(rpnre.UnionOp) + r + ")"
}

func infixStar(s string) string {
	return s + string(rpnre.StarOp)
}
