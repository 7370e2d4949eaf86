package hoterm

import (
	"fmt"

	"github.com/sortlab/hocu/sortalg"
)

// Combinator names one of the five fixed combinators this engine knows
// how to weakly reduce.
type Combinator uint8

const (
	I Combinator = iota
	K
	B
	C
	S
)

func (c Combinator) String() string {
	switch c {
	case I:
		return "I"
	case K:
		return "K"
	case B:
		return "B"
	case C:
		return "C"
	case S:
		return "S"
	default:
		return fmt.Sprintf("Combinator(%d)", uint8(c))
	}
}

// Arity is the number of arguments the combinator's reduction rule
// consumes: I needs 1, K needs 2, B/C/S need 3. Term.IsUnderApplied
// does not use this table; it compares against the arity of the
// combinator's sort, which can be larger.
func (c Combinator) Arity() int {
	switch c {
	case I:
		return 1
	case K:
		return 2
	default:
		return 3
	}
}

// VarSpec names a free variable: an identifier paired with the namespace
// it lives in. Two input terms may reuse the same ids; namespaces keep
// their variable spaces from colliding VarSpec and
// Namespace index glossary entries.
type VarSpec struct {
	ID        int
	Namespace int
}

func (v VarSpec) String() string {
	return fmt.Sprintf("X%d.%d", v.ID, v.Namespace)
}

type headKind uint8

const (
	headVar headKind = iota
	headComb
	headConst
	// headApp marks a node of the flat binary "@"-application tree built
	// by Appify/Deappify. It never appears in a headed Term produced by
	// the ordinary constructors below.
	headApp
)

// Head is either a free variable, one of the five combinators, or an
// uninterpreted constant. Every Head carries its own sort; Head values
// are immutable and comparable with ==.
type Head struct {
	kind  headKind
	v     VarSpec
	comb  Combinator
	const_ string
	sort  sortalg.Sort
}

// Sort returns the head's own sort (not the sort of any term it heads).
func (h Head) Sort() sortalg.Sort { return h.sort }

// IsVariable reports whether h is a free-variable head.
func (h Head) IsVariable() bool { return h.kind == headVar }

// IsCombinator reports whether h is one of I, K, B, C, S.
func (h Head) IsCombinator() bool { return h.kind == headComb }

// IsConst reports whether h is an uninterpreted constant.
func (h Head) IsConst() bool { return h.kind == headConst }

// Var returns the head's VarSpec. It panics if !h.IsVariable(); callers
// are expected to switch on IsVariable/IsCombinator/IsConst first, the
// same discipline a Head's three variants impose.
func (h Head) Var() VarSpec {
	if h.kind != headVar {
		panic("hoterm: Var() on a non-variable head")
	}
	return h.v
}

// Comb returns the head's combinator. See Var for the panic contract.
func (h Head) Comb() Combinator {
	if h.kind != headComb {
		panic("hoterm: Comb() on a non-combinator head")
	}
	return h.comb
}

// Const returns the head's constant symbol. See Var for the panic
// contract.
func (h Head) Const() string {
	if h.kind != headConst {
		panic("hoterm: Const() on a non-constant head")
	}
	return h.const_
}

// sameNonVariable reports whether h and o are both non-variable heads
// denoting the same symbol at the same sort — the "structurally equal"
// test SameFirstOrderHead needs.
func (h Head) sameNonVariable(o Head) bool {
	if h.kind == headVar || o.kind == headVar || h.kind != o.kind {
		return false
	}
	if h.sort != o.sort {
		return false
	}
	switch h.kind {
	case headComb:
		return h.comb == o.comb
	case headConst:
		return h.const_ == o.const_
	default:
		return false
	}
}

func varHead(v VarSpec, sort sortalg.Sort) Head {
	return Head{kind: headVar, v: v, sort: sort}
}

func combHead(c Combinator, sort sortalg.Sort) Head {
	return Head{kind: headComb, comb: c, sort: sort}
}

func constHead(name string, sort sortalg.Sort) Head {
	return Head{kind: headConst, const_: name, sort: sort}
}
