package rpnre

import (
	"fmt"
	"strconv"
)

// LengthKind represents the state of a length.
type LengthKind int8

// A length is either undefined, a finite number or infinite.
const (
	Undefined LengthKind = iota
	FiniteLength
	InfiniteLength
)

func (lk LengthKind) String() string {
	switch lk {
	case Undefined:
		return "undefined"
	case FiniteLength:
		return "finite"
	case InfiniteLength:
		return "infinite"
	}
	return fmt.Sprintf("LengthKind(%d)", int8(lk))
}

// --- Length ----------------------------------------------------------------

// Length is the length of a run of letters. Lengths may be undefined
// ("there is no such run") or infinite ("runs are unbounded"). The zero
// value is the undefined length.
//
// Lengths never take part in plain integer arithmetic; use Plus and Max,
// which know how to treat undefined and infinite operands.
type Length struct {
	kind LengthKind
	n    int
}

// NoLength returns the undefined length.
func NoLength() Length {
	return Length{}
}

// Finite creates a finite length. Negative values are invalid for runs of
// letters and are clamped to 0.
func Finite(n int) Length {
	if n < 0 {
		tracer().Errorf("negative length %d clamped to 0", n)
		n = 0
	}
	return Length{kind: FiniteLength, n: n}
}

// Infinite returns the length of an unbounded run.
func Infinite() Length {
	return Length{kind: InfiniteLength}
}

// Kind returns the state of a length.
func (l Length) Kind() LengthKind {
	return l.kind
}

// IsDefined is a predicate: is this a finite or infinite length?
func (l Length) IsDefined() bool {
	return l.kind != Undefined
}

// IsInfinite is a predicate: is this an unbounded length?
func (l Length) IsInfinite() bool {
	return l.kind == InfiniteLength
}

// IsZero is a predicate: is this a finite length of 0?
func (l Length) IsZero() bool {
	return l.kind == FiniteLength && l.n == 0
}

// Value returns a finite length as an int. For undefined or infinite lengths
// it returns 0 and false.
func (l Length) Value() (int, bool) {
	if l.kind != FiniteLength {
		return 0, false
	}
	return l.n, true
}

// OrZero returns l, or a finite length of 0 if l is undefined.
func (l Length) OrZero() Length {
	if l.kind == Undefined {
		return Finite(0)
	}
	return l
}

// Plus is l + m. The sum is undefined if either operand is undefined, and
// infinite if either operand is infinite (and none is undefined).
func (l Length) Plus(m Length) Length {
	switch {
	case l.kind == Undefined || m.kind == Undefined:
		return NoLength()
	case l.kind == InfiniteLength || m.kind == InfiniteLength:
		return Infinite()
	}
	return Finite(l.n + m.n)
}

// Max is the larger of l and m. An undefined operand yields to the other one;
// the maximum of two undefined lengths is undefined.
func (l Length) Max(m Length) Length {
	switch {
	case l.kind == Undefined:
		return m
	case m.kind == Undefined:
		return l
	case l.kind == InfiniteLength || m.kind == InfiniteLength:
		return Infinite()
	case l.n >= m.n:
		return l
	}
	return m
}

// AtLeast is a predicate: is l ≥ k? An undefined length is not at least
// anything, an infinite one is at least every k.
func (l Length) AtLeast(k int) bool {
	switch l.kind {
	case InfiniteLength:
		return true
	case FiniteLength:
		return l.n >= k
	}
	return false
}

// Equals is a predicate: do l and m denote the same length?
func (l Length) Equals(m Length) bool {
	if l.kind != m.kind {
		return false
	}
	return l.kind != FiniteLength || l.n == m.n
}

func (l Length) String() string {
	switch l.kind {
	case FiniteLength:
		return strconv.Itoa(l.n)
	case InfiniteLength:
		return "∞"
	}
	return "⊥"
}
