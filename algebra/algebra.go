package algebra

import (
	"fmt"

	"github.com/npillmayer/rpnre"
)

// Attributes is the pair of attributes of a subexpression.
// S is always defined.
type Attributes struct {
	W rpnre.Length // longest run of x which is a word of the language
	S rpnre.Length // longest run of x which is a suffix of a word of the language
}

func (a Attributes) String() string {
	return fmt.Sprintf("(W=%s,S=%s)", a.W, a.S)
}

// Equals is a predicate: are both attributes equal?
func (a Attributes) Equals(b Attributes) bool {
	return a.W.Equals(b.W) && a.S.Equals(b.S)
}

// Admits is a predicate: does the language contain a word with suffix x^k?
func (a Attributes) Admits(k int) bool {
	return a.S.AtLeast(k)
}

// --- Leaves ----------------------------------------------------------------

// RequiredLetter returns the attributes of the letter of interest x.
func RequiredLetter() Attributes {
	return Attributes{W: rpnre.Finite(1), S: rpnre.Finite(1)}
}

// EmptyWord returns the attributes of the empty word.
func EmptyWord() Attributes {
	return Attributes{W: rpnre.Finite(0), S: rpnre.Finite(0)}
}

// OtherLetter returns the attributes of a letter different from x. Such a
// letter is never a run of x and does not end in one.
func OtherLetter() Attributes {
	return Attributes{W: rpnre.NoLength(), S: rpnre.Finite(0)}
}

// --- Operators -------------------------------------------------------------

// Concat computes the attributes of op1.op2.
//
// A concatenation is a pure run of x only if both operands are. Its suffix
// run is either the suffix run of op2 or, if op2 may be a pure run of
// length W2, that run extended by a suffix run of op1.
func Concat(op1, op2 Attributes) Attributes {
	r := Attributes{
		W: op1.W.Plus(op2.W),
		S: op2.S,
	}
	if op2.W.IsDefined() {
		r.S = op2.S.Max(op2.W.Plus(op1.S))
	}
	tracer().Debugf("%s . %s = %s", op1, op2, r)
	return r
}

// Union computes the attributes of op1+op2.
func Union(op1, op2 Attributes) Attributes {
	r := Attributes{S: op1.S.Max(op2.S)}
	if op1.W.IsDefined() || op2.W.IsDefined() {
		r.W = op1.W.OrZero().Max(op2.W.OrZero())
	}
	tracer().Debugf("%s + %s = %s", op1, op2, r)
	return r
}

// Star computes the attributes of op*.
//
// If op cannot produce a non-empty run of x, repetition will not produce
// longer runs either: W is 0 (from zero iterations) and S is unchanged.
// Otherwise runs may be repeated without bound.
func Star(op Attributes) Attributes {
	var r Attributes
	if !op.W.IsDefined() || op.W.IsZero() {
		r = Attributes{W: rpnre.Finite(0), S: op.S}
	} else {
		r = Attributes{W: rpnre.Infinite(), S: rpnre.Infinite()}
	}
	tracer().Debugf("%s* = %s", op, r)
	return r
}
