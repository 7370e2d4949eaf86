package unify

import (
	"github.com/sortlab/hocu/hoterm"
	"github.com/sortlab/hocu/subst"
)

// applyStep performs step against p, mutating the search state through
// it's undo-logged helpers. It returns false (having made no net change,
// thanks to the caller's rollback on failure) if the step turns out not
// to be applicable after all — occurs-check failures, primarily.
//
// mark is the undo-log position the step began at; DECOMP and SPLIT
// thread it into any new frames they push, so that exhausting a child
// pair's candidates later rolls all the way back to before this step.
func (it *Iterator) applyStep(p *Pair, step Step, mark int) bool {
	tb := it.env.Sorts

	switch step.Tag {
	case ELIMINATE:
		x := p.termFor(step.Side).Head.Var()
		other := p.otherTerm(step.Side)
		if other.IsBareVariable() && other.Head.Var() == x {
			// x =?= x: trivially solved, no binding needed (and none
			// wanted — binding a variable to itself would fail the
			// occurs check for no reason).
			it.popFrame()
			return true
		}
		if !it.bindAndPropagate(x, other) {
			return false
		}
		it.popFrame()
		return true

	case SPLIT:
		side := p.termFor(step.Side)
		other := p.otherTerm(step.Side)
		x := side.Head.Var()
		k, m := len(side.Args), len(other.Args)

		if subst.Occurs(it.tree, x, other) {
			return false
		}
		u := &hoterm.Term{Head: other.Head, Args: other.Args[:m-k]}
		if !it.bindAndPropagate(x, u) {
			return false
		}

		newL, newR := p.Left, p.Right
		it.popFrame()
		if !hoterm.SameFirstOrderHead(newL, newR) || len(newL.Args) != len(newR.Args) {
			return false
		}
		return decompose(it, newL, newR, mark)

	case DECOMP:
		if !hoterm.SameFirstOrderHead(p.Left, p.Right) || len(p.Left.Args) != len(p.Right.Args) {
			return false
		}
		L, R := p.Left, p.Right
		it.popFrame()
		return decompose(it, L, R, mark)

	case ADD_ARG:
		fresh := it.env.FreshConst(tb.Domain(p.Left.ResultSort(tb)))
		it.setLeft(p, hoterm.AddArg(p.Left, fresh))
		it.setRight(p, hoterm.AddArg(p.Right, fresh))
		it.recordStep(p, ADD_ARG)
		return true

	case I_REDUCE, K_REDUCE, B_REDUCE, C_REDUCE, S_REDUCE:
		term := p.termFor(step.Side)
		reduced := hoterm.Reduce(term)
		if step.Side == First {
			it.setLeft(p, reduced)
		} else {
			it.setRight(p, reduced)
		}
		it.recordStep(p, step.Tag)
		return true

	default:
		spec, ok := narrowSpecFor(step.Tag)
		if !ok {
			return false
		}
		term := p.termFor(step.Side)
		x := term.Head.Var()
		value, ok := buildNarrowValue(it.env, spec, term.HeadSort())
		if !ok {
			return false
		}
		if !it.bindAndPropagate(x, value) {
			return false
		}
		it.recordStep(p, step.Tag)
		return true
	}
}

// decompose pushes one frame per corresponding argument pair of L and R
// (which must already share a first-order head and argument count),
// ordered so that L.Args[0]/R.Args[0] ends up on top of the stack. If
// any two arguments have incompatible non-variable heads the whole
// DECOMP fails before anything is pushed
func decompose(it *Iterator, L, R *hoterm.Term, mark int) bool {
	n := len(L.Args)
	for i := 0; i < n; i++ {
		a, b := L.Args[i], R.Args[i]
		if !a.IsVariableHeaded() && !b.IsVariableHeaded() && !hoterm.SameFirstOrderHead(a, b) {
			return false
		}
	}
	for i := n - 1; i >= 0; i-- {
		it.pushFrame(&Pair{Left: L.Args[i], Right: R.Args[i]}, mark)
	}
	return true
}
