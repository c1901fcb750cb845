package evaluator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/emirpasic/gods/stacks/linkedliststack"
	"github.com/npillmayer/rpnre/algebra"
)

/*
----------------------------------------------------------------------

BSD License

Copyright (c) 2017–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

----------------------------------------------------------------------

 * This module implements a stack of expressions. It is used for
 * evaluation of postfix regular expressions.
 *
 * Every node on the stack stands for a completed subexpression. It
 * carries the attributes of the subexpression and a rendering of it in
 * infix notation. Operators replace their operands by a single node.
 *
 * The top of stack (TOS) is the most recently completed subexpression,
 * i.e. the right operand of a binary operator. The node below (OS) is
 * the left operand. Combination rules are not symmetric, so take care.

*/

// ErrStackUnderflow flags an operator lacking operands.
var ErrStackUnderflow = errors.New("not enough operands on expression stack")

// === Expressions ===========================================================

// ExprNode is a node on the expression stack.
type ExprNode struct {
	Attr  algebra.Attributes // attributes of the subexpression
	Infix string             // the subexpression in infix notation
}

func (e *ExprNode) String() string {
	return fmt.Sprintf("%s %s", e.Infix, e.Attr)
}

// === Expression Stack ======================================================

// ExprStack implements a stack of subexpressions.
// Operators of regular expressions may be performed on the stack values.
//
// Operators check the depth of the stack before popping any operands.
// A failing operator leaves the stack untouched.
type ExprStack struct {
	stack  *linkedliststack.Stack // a stack of expressions
	pooled bool                   // created by the stack pool
}

// NewExprStack creates
// a new expression stack. It is fully initialized and empty.
func NewExprStack() *ExprStack {
	return &ExprStack{
		stack: linkedliststack.New(), // stack of interface{}
	}
}

// Size returns the number of subexpressions on the stack.
func (es *ExprStack) Size() int {
	return es.stack.Size()
}

// IsEmpty is a predicate: is the stack empty?
func (es *ExprStack) IsEmpty() bool {
	return es.stack.Empty()
}

// Reset empties the stack.
func (es *ExprStack) Reset() {
	es.stack.Clear()
}

// Top is part of
// stack functionality. Will return nil if stack is empty.
func (es *ExprStack) Top() *ExprNode {
	tos, ok := es.stack.Peek()
	if !ok {
		return nil
	}
	return tos.(*ExprNode)
}

// Pop is part of
// stack functionality.
func (es *ExprStack) Pop() (*ExprNode, bool) {
	tos, ok := es.stack.Pop()
	if !ok {
		return nil, false
	}
	return tos.(*ExprNode), true
}

// Push is part of
// stack functionality.
func (es *ExprStack) Push(e *ExprNode) *ExprStack {
	es.stack.Push(e)
	return es
}

// PushRequiredLetter pushes
// the letter of interest onto the stack.
func (es *ExprStack) PushRequiredLetter(r rune) *ExprStack {
	e := &ExprNode{Attr: algebra.RequiredLetter(), Infix: string(r)}
	tracer().Debugf("pushing required letter %s", e)
	return es.Push(e)
}

// PushEmptyWord pushes
// the empty word onto the stack.
func (es *ExprStack) PushEmptyWord() *ExprStack {
	e := &ExprNode{Attr: algebra.EmptyWord(), Infix: emptyInfix}
	tracer().Debugf("pushing empty word %s", e)
	return es.Push(e)
}

// PushOtherLetter pushes
// a letter different from the letter of interest onto the stack.
func (es *ExprStack) PushOtherLetter(r rune) *ExprStack {
	e := &ExprNode{Attr: algebra.OtherLetter(), Infix: string(r)}
	tracer().Debugf("pushing letter %s", e)
	return es.Push(e)
}

// ConcatTOS2OS replaces OS and TOS by their concatenation OS.TOS.
func (es *ExprStack) ConcatTOS2OS() error {
	return es.combine2(algebra.Concat, infixConcat)
}

// UnionTOS2OS replaces OS and TOS by their union OS+TOS.
func (es *ExprStack) UnionTOS2OS() error {
	return es.combine2(algebra.Union, infixUnion)
}

// StarTOS replaces TOS by its Kleene closure TOS*.
func (es *ExprStack) StarTOS() error {
	if es.Size() < 1 {
		return ErrStackUnderflow
	}
	op, _ := es.Pop()
	e := &ExprNode{
		Attr:  algebra.Star(op.Attr),
		Infix: infixStar(op.Infix),
	}
	es.Push(e)
	return nil
}

func (es *ExprStack) combine2(
	rule func(op1, op2 algebra.Attributes) algebra.Attributes,
	render func(l, r string) string) error {
	//
	if es.Size() < 2 {
		return ErrStackUnderflow
	}
	op2, _ := es.Pop() // right operand is on top
	op1, _ := es.Pop()
	e := &ExprNode{
		Attr:  rule(op1.Attr, op2.Attr),
		Infix: render(op1.Infix, op2.Infix),
	}
	es.Push(e)
	return nil
}

// Dump is a debugging helper: it traces the contents of the stack,
// top first.
func (es *ExprStack) Dump() {
	var b strings.Builder
	b.WriteString("---- expression stack ----\n")
	it := es.stack.Iterator()
	for it.Next() {
		b.WriteString(fmt.Sprintf("  %s\n", it.Value().(*ExprNode)))
	}
	b.WriteString("--------------------------")
	tracer().Debugf(b.String())
}
