package algebra

import (
	"testing"

	"github.com/npillmayer/rpnre"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

var (
	undef = rpnre.NoLength()
	inf   = rpnre.Infinite()
)

func fin(n int) rpnre.Length {
	return rpnre.Finite(n)
}

func attrs(w, s rpnre.Length) Attributes {
	return Attributes{W: w, S: s}
}

// a selection of attribute pairs, as they may occur on the stack
var samples = []Attributes{
	RequiredLetter(),
	EmptyWord(),
	OtherLetter(),
	attrs(undef, fin(3)),
	attrs(fin(2), fin(2)),
	attrs(fin(0), fin(4)),
	attrs(fin(5), fin(7)),
	attrs(inf, inf),
	attrs(undef, inf),
}

func TestLeaves(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rpnre.algebra")
	defer teardown()
	//
	if a := RequiredLetter(); !a.Equals(attrs(fin(1), fin(1))) {
		t.Errorf("expected required letter to be (1,1), is %s", a)
	}
	if a := EmptyWord(); !a.Equals(attrs(fin(0), fin(0))) {
		t.Errorf("expected empty word to be (0,0), is %s", a)
	}
	if a := OtherLetter(); !a.Equals(attrs(undef, fin(0))) {
		t.Errorf("expected other letter to be (⊥,0), is %s", a)
	}
}

func TestConcat(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rpnre.algebra")
	defer teardown()
	//
	for i, x := range []struct {
		op1, op2, r Attributes
	}{
		{op1: attrs(undef, fin(1)), op2: attrs(undef, fin(1)), r: attrs(undef, fin(1))},
		{op1: attrs(undef, fin(2)), op2: attrs(fin(1), fin(1)), r: attrs(undef, fin(3))},
		{op1: attrs(fin(3), fin(6)), op2: attrs(fin(4), fin(7)), r: attrs(fin(7), fin(10))},
		{op1: attrs(fin(1), fin(1)), op2: attrs(undef, fin(0)), r: attrs(undef, fin(0))},
		{op1: attrs(inf, inf), op2: attrs(fin(0), fin(0)), r: attrs(inf, inf)},
		{op1: attrs(undef, fin(2)), op2: attrs(inf, inf), r: attrs(undef, inf)},
		{op1: attrs(fin(2), fin(2)), op2: attrs(undef, inf), r: attrs(undef, inf)},
	} {
		if r := Concat(x.op1, x.op2); !r.Equals(x.r) {
			t.Errorf("test %d: expected %s . %s = %s, is %s", i, x.op1, x.op2, x.r, r)
		}
	}
}

func TestConcatIsOrderSensitive(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rpnre.algebra")
	defer teardown()
	//
	ax := Concat(OtherLetter(), RequiredLetter()) // a.x ends in x
	xa := Concat(RequiredLetter(), OtherLetter()) // x.a does not
	if !ax.S.Equals(fin(1)) {
		t.Errorf("expected a.x to have suffix run 1, is %s", ax.S)
	}
	if !xa.S.Equals(fin(0)) {
		t.Errorf("expected x.a to have suffix run 0, is %s", xa.S)
	}
}

func TestUnion(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rpnre.algebra")
	defer teardown()
	//
	for i, x := range []struct {
		op1, op2, r Attributes
	}{
		{op1: attrs(undef, fin(1)), op2: attrs(undef, fin(2)), r: attrs(undef, fin(2))},
		{op1: attrs(fin(2), fin(4)), op2: attrs(undef, fin(2)), r: attrs(fin(2), fin(4))},
		{op1: attrs(undef, fin(3)), op2: attrs(fin(2), fin(3)), r: attrs(fin(2), fin(3))},
		{op1: attrs(fin(5), fin(6)), op2: attrs(fin(2), fin(3)), r: attrs(fin(5), fin(6))},
		{op1: attrs(undef, fin(0)), op2: attrs(fin(0), fin(0)), r: attrs(fin(0), fin(0))},
		{op1: attrs(inf, inf), op2: attrs(fin(2), fin(3)), r: attrs(inf, inf)},
	} {
		if r := Union(x.op1, x.op2); !r.Equals(x.r) {
			t.Errorf("test %d: expected %s + %s = %s, is %s", i, x.op1, x.op2, x.r, r)
		}
	}
}

func TestStar(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rpnre.algebra")
	defer teardown()
	//
	for i, x := range []struct {
		op, r Attributes
	}{
		{op: attrs(undef, fin(2)), r: attrs(fin(0), fin(2))},
		{op: attrs(fin(0), fin(2)), r: attrs(fin(0), fin(2))},
		{op: attrs(fin(1), fin(2)), r: attrs(inf, inf)},
		{op: attrs(fin(3), fin(3)), r: attrs(inf, inf)},
		{op: attrs(inf, inf), r: attrs(inf, inf)},
	} {
		if r := Star(x.op); !r.Equals(x.r) {
			t.Errorf("test %d: expected %s* = %s, is %s", i, x.op, x.r, r)
		}
	}
}

func TestStarIsIdempotent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rpnre.algebra")
	defer teardown()
	//
	for i, a := range samples {
		once, twice := Star(a), Star(Star(a))
		if !once.Equals(twice) {
			t.Errorf("sample %d: %s* = %s, but %s** = %s", i, a, once, a, twice)
		}
	}
}

func TestConcatIsAssociative(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rpnre.algebra")
	defer teardown()
	//
	for _, a := range samples {
		for _, b := range samples {
			for _, c := range samples {
				left := Concat(Concat(a, b), c)
				right := Concat(a, Concat(b, c))
				if !left.Equals(right) {
					t.Errorf("(%s.%s).%s = %s, but %s.(%s.%s) = %s", a, b, c, left, a, b, c, right)
				}
			}
		}
	}
}

func TestAdmits(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rpnre.algebra")
	defer teardown()
	//
	a := attrs(undef, fin(3))
	for k := 0; k <= 3; k++ {
		if !a.Admits(k) {
			t.Errorf("expected %s to admit degree %d", a, k)
		}
	}
	if a.Admits(4) {
		t.Errorf("expected %s not to admit degree 4", a)
	}
	if !attrs(inf, inf).Admits(1000) {
		t.Errorf("expected infinite suffix run to admit every degree")
	}
}
