package hoterm

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sortlab/hocu/sortalg"
)

func TestTerm_Constructors(t *testing.T) {
	tb := sortalg.NewTable()
	iota := tb.Base("ι")

	v := NewVar(VarSpec{ID: 1, Namespace: 0}, iota)
	assert.True(t, v.IsVariableHeaded())
	assert.True(t, v.IsBareVariable())

	c := NewConst("a", iota)
	assert.False(t, c.IsVariableHeaded())
	assert.False(t, c.IsCombinatorHeaded())

	k := NewComb(K, tb.Function(iota, tb.Function(iota, iota)))
	assert.True(t, k.IsCombinatorHeaded())
}

func TestTerm_AddArgAndPop(t *testing.T) {
	tb := sortalg.NewTable()
	iota := tb.Base("ι")
	unary := tb.Function(iota, iota)

	f := NewConst("f", unary)
	a := NewConst("a", iota)

	fa := AddArg(f, a)
	assert.Equal(t, 1, len(fa.Args))
	assert.Equal(t, 0, len(f.Args), "AddArg must not mutate its receiver")

	rest, popped := PopBackArg(fa)
	assert.True(t, Equal(popped, a))
	assert.True(t, Equal(rest, f))

	fronted := PushFrontArg(f, a)
	front, tail := PopFrontArg(fronted)
	assert.True(t, Equal(front, a))
	assert.True(t, Equal(tail, f))
}

func TestTerm_Headify(t *testing.T) {
	tb := sortalg.NewTable()
	iota := tb.Base("ι")
	binary := tb.Function(iota, tb.Function(iota, iota))

	x := NewVar(VarSpec{ID: 0, Namespace: 0}, binary)
	a := NewConst("a", iota)
	b := NewConst("b", iota)
	xab := AddArg(AddArg(x, a), b) // x a b

	g := NewConst("g", tb.Function(iota, iota))
	c := NewConst("c", iota)
	gc := AddArg(g, c) // g c

	// headify self=xab onto u=gc: head becomes g, args = gc.Args ++ xab.Args = [c, a, b]
	got := Headify(xab, gc)
	want := AddArg(AddArg(AddArg(g, c), a), b)
	assert.True(t, Equal(got, want))
}

func TestTerm_SameFirstOrderHead(t *testing.T) {
	tb := sortalg.NewTable()
	iota := tb.Base("ι")

	a1 := NewConst("a", iota)
	a2 := NewConst("a", iota)
	b := NewConst("b", iota)
	x := NewVar(VarSpec{ID: 0, Namespace: 0}, iota)

	assert.True(t, SameFirstOrderHead(a1, a2))
	assert.False(t, SameFirstOrderHead(a1, b))
	assert.False(t, SameFirstOrderHead(a1, x))
	assert.False(t, SameFirstOrderHead(x, x), "variable heads are never a first-order match")
}

func TestTerm_IsUnderApplied(t *testing.T) {
	tb := sortalg.NewTable()
	iota := tb.Base("ι")
	kSort := tb.Function(iota, tb.Function(iota, iota))

	k := NewComb(K, kSort)
	assert.True(t, k.IsUnderApplied(tb))

	k1 := AddArg(k, NewConst("a", iota))
	assert.True(t, k1.IsUnderApplied(tb))

	k2 := AddArg(k1, NewConst("b", iota))
	assert.False(t, k2.IsUnderApplied(tb))
	assert.True(t, k2.IsWeakRedex(tb))
}
