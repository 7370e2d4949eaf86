package unify

import (
	"github.com/sortlab/hocu/hoterm"
	"github.com/sortlab/hocu/sortalg"
	"github.com/sortlab/hocu/subst"
)

// Unifier is a read-only snapshot of one solution the search has found:
// a most-general combinatory unifier, the external-facing result of a
// search. It is safe to retain and query after the Iterator that
// produced it has moved on to the next solution, since the underlying
// substitution tree is immutable.
type Unifier struct {
	tree *subst.Tree
	tb   *sortalg.Table
}

// Apply substitutes t according to this unifier, treating every free
// variable of t as living in namespace ns regardless of what namespace
// (if any) is embedded in t — the host-facing "apply(term, index) ->
// term" contract.
func (u *Unifier) Apply(t *hoterm.Term, ns int) *hoterm.Term {
	return subst.Apply(u.tree, t, ns, u.tb)
}

// FreeVars reports the free variables of t, resolved through this
// unifier's bindings.
func (u *Unifier) FreeVars(t *hoterm.Term) []hoterm.VarSpec {
	return subst.FreeVars(u.tree, t)
}
