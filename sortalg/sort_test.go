package sortalg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTable_Base(t *testing.T) {
	tb := NewTable()

	iota1 := tb.Base("ι")
	iota2 := tb.Base("ι")
	o := tb.Base("o")

	assert.Equal(t, iota1, iota2, "interning the same name twice must return the same Sort")
	assert.NotEqual(t, iota1, o)
	assert.False(t, tb.IsFunctional(iota1))
}

func TestTable_Function(t *testing.T) {
	tb := NewTable()
	iota := tb.Base("ι")

	f1 := tb.Function(iota, iota)
	f2 := tb.Function(iota, iota)
	assert.Equal(t, f1, f2, "hash-consing: equal (domain,range) pairs must share a Sort")
	assert.True(t, tb.IsFunctional(f1))
	assert.Equal(t, iota, tb.Domain(f1))
	assert.Equal(t, iota, tb.Range(f1))

	g := tb.Function(iota, f1)
	assert.NotEqual(t, f1, g)
}

func TestTable_Arity(t *testing.T) {
	tb := NewTable()
	iota := tb.Base("ι")

	t.Run("base sort has arity 0", func(t *testing.T) {
		assert.Equal(t, 0, tb.Arity(iota))
	})

	t.Run("nested functions", func(t *testing.T) {
		// ι -> ι -> ι -> ι, arity 3
		s := tb.Function(iota, tb.Function(iota, tb.Function(iota, iota)))
		assert.Equal(t, 3, tb.Arity(s))
	})
}

func TestTable_AppliedToN(t *testing.T) {
	tb := NewTable()
	iota := tb.Base("ι")
	binOp := tb.Function(iota, tb.Function(iota, iota)) // ι -> ι -> ι

	t.Run("under", func(t *testing.T) {
		assert.Equal(t, tb.Function(iota, iota), tb.AppliedToN(binOp, 1))
	})

	t.Run("exact", func(t *testing.T) {
		assert.Equal(t, iota, tb.AppliedToN(binOp, 2))
	})

	t.Run("over-application returns the final range, per spec", func(t *testing.T) {
		assert.Equal(t, iota, tb.AppliedToN(binOp, 5))
	})

	t.Run("zero applications is identity", func(t *testing.T) {
		assert.Equal(t, binOp, tb.AppliedToN(binOp, 0))
	})
}

func TestTable_NthArgSort(t *testing.T) {
	tb := NewTable()
	iota := tb.Base("ι")
	o := tb.Base("o")
	// S-combinator-shaped: (ι->o->ι) -> (ι->o) -> ι -> ι (not the real S
	// sort, just exercising NthArgSort with mixed domains)
	s := tb.Function(tb.Function(iota, tb.Function(o, iota)), tb.Function(tb.Function(iota, o), tb.Function(iota, iota)))

	assert.Equal(t, tb.Function(iota, tb.Function(o, iota)), tb.NthArgSort(s, 0))
	assert.Equal(t, tb.Function(iota, o), tb.NthArgSort(s, 1))
	assert.Equal(t, iota, tb.NthArgSort(s, 2))
}

func TestTable_String(t *testing.T) {
	tb := NewTable()
	iota := tb.Base("ι")
	f := tb.Function(iota, iota)
	assert.Equal(t, "ι", tb.String(iota))
	assert.Equal(t, "(ι->ι)", tb.String(f))
}
