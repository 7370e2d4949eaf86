package hoterm

import (
	"github.com/sortlab/hocu/sortalg"
)

// Term is an applicative term: a head applied (left-associatively) to a
// sequence of arguments. Terms are immutable once constructed — every
// operation below that "changes" a term returns a new *Term sharing
// structure with the old one, per DESIGN.md's pointer-swap-over-arena
// decision. Args is treated as a deque: AddArg/PopBackArg operate at the
// back, PushFrontArg/PopFrontArg at the front.
type Term struct {
	Head Head
	Args []*Term
}

// NewVar builds a bare variable-headed term.
func NewVar(v VarSpec, sort sortalg.Sort) *Term {
	return &Term{Head: varHead(v, sort)}
}

// NewConst builds a bare constant-headed term.
func NewConst(name string, sort sortalg.Sort) *Term {
	return &Term{Head: constHead(name, sort)}
}

// NewComb builds a bare combinator-headed term.
func NewComb(c Combinator, sort sortalg.Sort) *Term {
	return &Term{Head: combHead(c, sort)}
}

// IsVariableHeaded reports whether t's head is a free variable.
func (t *Term) IsVariableHeaded() bool { return t.Head.IsVariable() }

// IsCombinatorHeaded reports whether t's head is one of I, K, B, C, S.
func (t *Term) IsCombinatorHeaded() bool { return t.Head.IsCombinator() }

// IsBareVariable reports whether t is a variable head with no arguments
// at all — the "bare variable" condition ELIMINATE and SPLIT key off of.
func (t *Term) IsBareVariable() bool {
	return t.Head.IsVariable() && len(t.Args) == 0
}

// HeadSort returns the sort of t's head (not of t itself).
func (t *Term) HeadSort() sortalg.Sort { return t.Head.sort }

// ResultSort returns appliedToN(headSort, |args|): the sort of t as a
// whole.
func (t *Term) ResultSort(tb *sortalg.Table) sortalg.Sort {
	return tb.AppliedToN(t.Head.sort, len(t.Args))
}

// SortOfLengthNPref returns appliedToN(headSort, n) — the sort t's head
// would have after taking exactly n of its arguments, regardless of how
// many arguments t currently carries.
func (t *Term) SortOfLengthNPref(tb *sortalg.Table, n int) sortalg.Sort {
	return tb.AppliedToN(t.Head.sort, n)
}

// NthArgSort returns the sort t's k-th argument (0-indexed) must have.
func (t *Term) NthArgSort(tb *sortalg.Table, k int) sortalg.Sort {
	return tb.NthArgSort(t.Head.sort, k)
}

// IsUnderApplied reports whether t is a combinator-headed term with
// fewer arguments than arity(headSort). This matches Combinator.Arity()
// only when the combinator's sort has exactly that many nested ranges; a
// combinator at a higher sort (such as the K an X-narrowing builds,
// whose sort takes three arguments) counts as under-applied until every
// argument its sort admits is present.
func (t *Term) IsUnderApplied(tb *sortalg.Table) bool {
	if !t.IsCombinatorHeaded() {
		return false
	}
	return len(t.Args) < tb.Arity(t.Head.sort)
}

// IsWeakRedex reports whether t is combinator-headed and has enough
// arguments to fire its reduction rule.
func (t *Term) IsWeakRedex(tb *sortalg.Table) bool {
	return t.IsCombinatorHeaded() && !t.IsUnderApplied(tb)
}

// copyArgs returns a fresh copy of t.Args, safe to append to without
// aliasing t's backing array.
func (t *Term) copyArgs() []*Term {
	cp := make([]*Term, len(t.Args))
	copy(cp, t.Args)
	return cp
}

// AddArg returns a new term equal to t with arg pushed onto the back of
// the argument list.
func AddArg(t *Term, arg *Term) *Term {
	return &Term{Head: t.Head, Args: append(t.copyArgs(), arg)}
}

// AppendArgs returns a new term equal to t with extra appended to the
// back of the argument list, in order. It generalises AddArg to the
// "apply several arguments at once" case the *_REDUCE rules need.
func AppendArgs(t *Term, extra ...*Term) *Term {
	if len(extra) == 0 {
		return t
	}
	return &Term{Head: t.Head, Args: append(t.copyArgs(), extra...)}
}

// PushFrontArg returns a new term equal to t with arg prepended to the
// front of the argument list.
func PushFrontArg(t *Term, arg *Term) *Term {
	args := make([]*Term, 0, len(t.Args)+1)
	args = append(args, arg)
	args = append(args, t.Args...)
	return &Term{Head: t.Head, Args: args}
}

// PopFrontArg splits t into its first argument and the term that
// remains after removing it. It panics if t has no arguments.
func PopFrontArg(t *Term) (arg *Term, rest *Term) {
	if len(t.Args) == 0 {
		panic("hoterm: PopFrontArg on an argument-less term")
	}
	args := make([]*Term, len(t.Args)-1)
	copy(args, t.Args[1:])
	return t.Args[0], &Term{Head: t.Head, Args: args}
}

// PopBackArg splits t into the term that remains after removing its last
// argument and that argument itself. It panics if t has no arguments.
func PopBackArg(t *Term) (rest *Term, arg *Term) {
	if len(t.Args) == 0 {
		panic("hoterm: PopBackArg on an argument-less term")
	}
	last := len(t.Args) - 1
	args := make([]*Term, last)
	copy(args, t.Args[:last])
	return &Term{Head: t.Head, Args: args}, t.Args[last]
}

// Headify returns the term obtained by applying self's arguments to u:
// the result's head becomes u's head, and u's own arguments are
// prepended (in their original order) to self's arguments. This is the
// headify operation, used whenever a variable head is eliminated in
// favour of a (possibly applied) replacement term.
func Headify(self *Term, u *Term) *Term {
	args := make([]*Term, 0, len(u.Args)+len(self.Args))
	args = append(args, u.Args...)
	args = append(args, self.Args...)
	return &Term{Head: u.Head, Args: args}
}

// SameFirstOrderHead reports whether a and b both have non-variable
// heads that denote the same symbol at the same sort — DECOMP's
// applicability test.
func SameFirstOrderHead(a, b *Term) bool {
	return a.Head.sameNonVariable(b.Head)
}

// Equal reports deep structural equality: same head (including sort and
// VarSpec/combinator/constant identity) and pairwise-equal arguments in
// the same order.
func Equal(a, b *Term) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.Head != b.Head {
		return false
	}
	if len(a.Args) != len(b.Args) {
		return false
	}
	for i := range a.Args {
		if !Equal(a.Args[i], b.Args[i]) {
			return false
		}
	}
	return true
}

// Walk calls visit once for every node in t's tree, pre-order (head
// first, then each argument left to right).
func Walk(t *Term, visit func(*Term)) {
	visit(t)
	for _, a := range t.Args {
		Walk(a, visit)
	}
}
