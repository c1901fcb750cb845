package evaluator

import (
	"errors"
	"testing"

	"github.com/npillmayer/rpnre"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestStackCreate(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rpnre.evaluator")
	defer teardown()
	//
	es := NewExprStack()
	if !es.IsEmpty() || es.Top() != nil {
		t.Errorf("expected new stack to be empty")
	}
	if _, ok := es.Pop(); ok {
		t.Errorf("expected pop from empty stack to fail")
	}
	es.PushRequiredLetter('a').PushEmptyWord().PushOtherLetter('b')
	if es.Size() != 3 {
		t.Errorf("expected 3 entries, have %d", es.Size())
	}
	if tos := es.Top(); tos.Infix != "b" || tos.Attr.W.IsDefined() {
		t.Errorf("expected TOS to be other letter b, is %s", tos)
	}
	es.Dump()
	es.Reset()
	if !es.IsEmpty() {
		t.Errorf("expected stack to be empty after reset")
	}
}

func TestStackUnderflow(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rpnre.evaluator")
	defer teardown()
	//
	es := NewExprStack()
	if err := es.StarTOS(); !errors.Is(err, ErrStackUnderflow) {
		t.Errorf("expected star on empty stack to underflow, got %v", err)
	}
	es.PushRequiredLetter('a')
	if err := es.ConcatTOS2OS(); !errors.Is(err, ErrStackUnderflow) {
		t.Errorf("expected concat with one operand to underflow, got %v", err)
	}
	if err := es.UnionTOS2OS(); !errors.Is(err, ErrStackUnderflow) {
		t.Errorf("expected union with one operand to underflow, got %v", err)
	}
	if es.Size() != 1 || es.Top().Infix != "a" {
		t.Errorf("expected failed operators to leave the stack untouched")
	}
}

func TestStackOperandOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rpnre.evaluator")
	defer teardown()
	//
	es := NewExprStack()
	es.PushOtherLetter('b').PushRequiredLetter('a') // b.a ends in a
	if err := es.ConcatTOS2OS(); err != nil {
		t.Fatal(err)
	}
	tos := es.Top()
	if tos.Infix != "(b.a)" {
		t.Errorf("expected OS to be the left operand, infix is %s", tos.Infix)
	}
	if !tos.Attr.S.Equals(rpnre.Finite(1)) {
		t.Errorf("expected b.a to have suffix run 1, is %s", tos.Attr.S)
	}
	es.Reset()
	es.PushRequiredLetter('a').PushOtherLetter('b') // a.b does not
	if err := es.ConcatTOS2OS(); err != nil {
		t.Fatal(err)
	}
	if !es.Top().Attr.S.Equals(rpnre.Finite(0)) {
		t.Errorf("expected a.b to have suffix run 0, is %s", es.Top().Attr.S)
	}
}

func TestStackPool(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rpnre.evaluator")
	defer teardown()
	//
	es := borrowStack()
	es.PushEmptyWord()
	releaseStack(es)
	es = borrowStack()
	if !es.IsEmpty() {
		t.Errorf("expected borrowed stack to be empty")
	}
	releaseStack(es)
}

func TestStackPoolRelease(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rpnre.evaluator")
	defer teardown()
	//
	opool := globalStackPool.opool
	active := opool.GetNumActive()
	es := borrowStack()
	if !es.pooled {
		t.Fatalf("expected borrowed stack to originate from pool")
	}
	if opool.GetNumActive() != active+1 {
		t.Errorf("expected %d active stacks, have %d", active+1, opool.GetNumActive())
	}
	releaseStack(es)
	if opool.GetNumActive() != active {
		t.Errorf("expected %d active stacks after release, have %d", active, opool.GetNumActive())
	}
	idle := opool.GetNumIdle()
	releaseStack(NewExprStack()) // not from the pool
	if opool.GetNumIdle() != idle {
		t.Errorf("expected foreign stack not to enter the pool")
	}
}
