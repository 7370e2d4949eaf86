package unify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sortlab/hocu/hoterm"
	"github.com/sortlab/hocu/sortalg"
)

func TestNewIterator_IllSorted(t *testing.T) {
	tb := sortalg.NewTable()
	iota := tb.Base("ι")
	unary := tb.Function(iota, iota)
	env := NewEnvironment(tb)

	x := hoterm.NewVar(hoterm.VarSpec{ID: 1, Namespace: 0}, iota)
	a := hoterm.NewConst("a", unary)

	_, err := NewIterator(env, x, a)
	assert.ErrorIs(t, err, ErrIllSorted)
}

func TestIterator_IdentityPair(t *testing.T) {
	tb := sortalg.NewTable()
	iota := tb.Base("ι")
	env := NewEnvironment(tb)

	spec := hoterm.VarSpec{ID: 1, Namespace: 0}
	x0 := hoterm.NewVar(spec, iota)
	x1 := hoterm.NewVar(spec, iota)

	it, err := NewIterator(env, x0, x1)
	require.NoError(t, err)

	u, err := it.Next()
	require.NoError(t, err)
	require.NotNil(t, u)

	_, err = it.Next()
	assert.ErrorIs(t, err, ErrNoMoreUnifiers)
}

func TestIterator_SimpleEliminate(t *testing.T) {
	tb := sortalg.NewTable()
	iota := tb.Base("ι")
	env := NewEnvironment(tb)

	x := hoterm.NewVar(hoterm.VarSpec{ID: 1, Namespace: 0}, iota)
	a := hoterm.NewConst("a", iota)

	it, err := NewIterator(env, x, a)
	require.NoError(t, err)

	u, err := it.Next()
	require.NoError(t, err)
	got := u.Apply(x, 0)
	assert.True(t, hoterm.Equal(got, a))

	_, err = it.Next()
	assert.ErrorIs(t, err, ErrNoMoreUnifiers)
}

func TestIterator_OccursCheckFails(t *testing.T) {
	tb := sortalg.NewTable()
	iota := tb.Base("ι")
	unary := tb.Function(iota, iota)
	env := NewEnvironment(tb)

	f := hoterm.NewConst("f", unary)
	x := hoterm.NewVar(hoterm.VarSpec{ID: 1, Namespace: 0}, iota)
	fx := hoterm.AddArg(f, x)

	it, err := NewIterator(env, x, fx)
	require.NoError(t, err)

	_, err = it.Next()
	assert.ErrorIs(t, err, ErrNoMoreUnifiers)
}

func binaryConstTerm(tb *sortalg.Table, iota sortalg.Sort, name string) *hoterm.Term {
	binary := tb.Function(iota, tb.Function(iota, iota))
	return hoterm.NewConst(name, binary)
}

func TestIterator_DecompChain(t *testing.T) {
	tb := sortalg.NewTable()
	iota := tb.Base("ι")
	env := NewEnvironment(tb)

	a := hoterm.NewConst("a", iota)
	b := hoterm.NewConst("b", iota)
	f := binaryConstTerm(tb, iota, "f")
	fab := hoterm.AddArg(hoterm.AddArg(f, a), b)

	it, err := NewIterator(env, fab, fab)
	require.NoError(t, err)

	u, err := it.Next()
	require.NoError(t, err)
	require.NotNil(t, u)

	_, err = it.Next()
	assert.ErrorIs(t, err, ErrNoMoreUnifiers)
}

func TestIterator_BudgetExhausted(t *testing.T) {
	tb := sortalg.NewTable()
	iota := tb.Base("ι")
	env := NewEnvironment(tb)

	a := hoterm.NewConst("a", iota)
	b := hoterm.NewConst("b", iota)
	f := binaryConstTerm(tb, iota, "f")
	fab := hoterm.AddArg(hoterm.AddArg(f, a), b)

	it, err := NewIterator(env, fab, fab)
	require.NoError(t, err)
	it.Budget = Budget{MaxSteps: 2}

	_, err = it.Next()
	assert.ErrorIs(t, err, ErrBudgetExhausted)
}

// The following scenarios are the "concrete scenarios" table (E1-E4) and
// the "(I x, y)" boundary case. Each of E1-E4 requires a REDUCE step
// followed by further work on the same pair, which is exactly what the
// iterator's per-frame candidate cache must survive; the "(I x, y)" case
// reduces inside apply() instead (see its own comment).

func TestIterator_E1_KReduceThenDecomp(t *testing.T) {
	tb := sortalg.NewTable()
	iota := tb.Base("ι")
	env := NewEnvironment(tb)

	kSort := tb.Function(iota, tb.Function(iota, iota))
	k := hoterm.NewComb(hoterm.K, kSort)
	a := hoterm.NewConst("a", iota)
	b := hoterm.NewConst("b", iota)

	left := hoterm.AddArg(hoterm.AddArg(k, a), b)
	right := a

	it, err := NewIterator(env, left, right)
	require.NoError(t, err)

	u, err := it.Next()
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.True(t, hoterm.Equal(u.Apply(left, 0), u.Apply(right, 0)))

	_, err = it.Next()
	assert.ErrorIs(t, err, ErrNoMoreUnifiers)
}

func TestIterator_E2_SKKx(t *testing.T) {
	tb := sortalg.NewTable()
	iota := tb.Base("ι")
	env := NewEnvironment(tb)

	iotaIota := tb.Function(iota, iota)
	iotaIotaIota := tb.Function(iota, iotaIota)
	// K1 : ι -> (ι -> ι) -> ι and K2 : ι -> ι -> ι, so S is instantiated
	// at (ι -> (ι -> ι) -> ι) -> (ι -> ι -> ι) -> ι -> ι.
	k1Sort := tb.Function(iota, tb.Function(iotaIota, iota))
	sSort := tb.Function(k1Sort, tb.Function(iotaIotaIota, tb.Function(iota, iota)))

	s := hoterm.NewComb(hoterm.S, sSort)
	k1 := hoterm.NewComb(hoterm.K, k1Sort)
	k2 := hoterm.NewComb(hoterm.K, iotaIotaIota)
	x := hoterm.NewConst("x", iota)

	left := hoterm.AddArg(hoterm.AddArg(hoterm.AddArg(s, k1), k2), x)
	right := x

	it, err := NewIterator(env, left, right)
	require.NoError(t, err)

	u, err := it.Next()
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.True(t, hoterm.Equal(u.Apply(left, 0), u.Apply(right, 0)))

	_, err = it.Next()
	assert.ErrorIs(t, err, ErrNoMoreUnifiers)
}

func TestIterator_E3_BReduce(t *testing.T) {
	tb := sortalg.NewTable()
	iota := tb.Base("ι")
	env := NewEnvironment(tb)

	iotaIota := tb.Function(iota, iota)
	bSort := tb.Function(iotaIota, tb.Function(iotaIota, tb.Function(iota, iota)))

	bComb := hoterm.NewComb(hoterm.B, bSort)
	f := hoterm.NewConst("f", iotaIota)
	g := hoterm.NewConst("g", iotaIota)
	x := hoterm.NewConst("x", iota)

	left := hoterm.AddArg(hoterm.AddArg(hoterm.AddArg(bComb, f), g), x)
	right := hoterm.AddArg(f, hoterm.AddArg(g, x))

	it, err := NewIterator(env, left, right)
	require.NoError(t, err)

	u, err := it.Next()
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.True(t, hoterm.Equal(u.Apply(left, 0), u.Apply(right, 0)))

	_, err = it.Next()
	assert.ErrorIs(t, err, ErrNoMoreUnifiers)
}

func TestIterator_E4_CReduce(t *testing.T) {
	tb := sortalg.NewTable()
	iota := tb.Base("ι")
	env := NewEnvironment(tb)

	binary := tb.Function(iota, tb.Function(iota, iota))
	cSort := tb.Function(binary, tb.Function(iota, tb.Function(iota, iota)))

	cComb := hoterm.NewComb(hoterm.C, cSort)
	f := hoterm.NewConst("f", binary)
	a := hoterm.NewConst("a", iota)
	b := hoterm.NewConst("b", iota)

	left := hoterm.AddArg(hoterm.AddArg(hoterm.AddArg(cComb, f), a), b)
	right := hoterm.AddArg(hoterm.AddArg(f, b), a)

	it, err := NewIterator(env, left, right)
	require.NoError(t, err)

	u, err := it.Next()
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.True(t, hoterm.Equal(u.Apply(left, 0), u.Apply(right, 0)))

	_, err = it.Next()
	assert.ErrorIs(t, err, ErrNoMoreUnifiers)
}

// "(I x, y)" is the boundary-behaviour case where I_REDUCE happens
// implicitly inside apply() rather than as an explicit step: ELIMINATE
// binds y to the unreduced "I x", and the weak-redex auto-reduce in
// subst.Apply collapses it to x once a caller actually applies the
// unifier.
func TestIterator_IReduceEliminate(t *testing.T) {
	tb := sortalg.NewTable()
	iota := tb.Base("ι")
	env := NewEnvironment(tb)

	iSort := tb.Function(iota, iota)
	iComb := hoterm.NewComb(hoterm.I, iSort)
	x := hoterm.NewVar(hoterm.VarSpec{ID: 1, Namespace: 0}, iota)
	y := hoterm.NewVar(hoterm.VarSpec{ID: 2, Namespace: 0}, iota)

	left := hoterm.AddArg(iComb, x)
	right := y

	it, err := NewIterator(env, left, right)
	require.NoError(t, err)

	u, err := it.Next()
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.True(t, hoterm.Equal(u.Apply(y, 0), x))
}

func TestIterator_TraceHookObservesSteps(t *testing.T) {
	tb := sortalg.NewTable()
	iota := tb.Base("ι")
	env := NewEnvironment(tb)

	x := hoterm.NewVar(hoterm.VarSpec{ID: 1, Namespace: 0}, iota)
	a := hoterm.NewConst("a", iota)

	it, err := NewIterator(env, x, a)
	require.NoError(t, err)

	var kinds []TraceKind
	it.Trace = func(ev TraceEvent) { kinds = append(kinds, ev.Kind) }

	_, err = it.Next()
	require.NoError(t, err)
	require.NotEmpty(t, kinds)
	assert.Equal(t, TraceTry, kinds[0])
	assert.Contains(t, kinds, TraceCommit)
}
