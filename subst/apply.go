package subst

import (
	"github.com/sortlab/hocu/hoterm"
	"github.com/sortlab/hocu/sortalg"
)

// ApplyInternal applies t's own embedded VarSpec namespaces when
// resolving bindings — the form every step of the unify package's
// applier uses to keep the pair stack's terms in sync with the
// substitution: after every step, the substitution's accumulated
// bindings are applied to any pair left on the stack.
func ApplyInternal(tree *Tree, t *hoterm.Term, tb *sortalg.Table) *hoterm.Term {
	return apply(tree, t, tb, nil)
}

// Apply is the host-facing form: "apply(term, index) -> term". ns
// overrides every variable's effective namespace for the purposes of
// this call, regardless of what namespace is embedded in the term — the
// right behaviour for a caller handing in a bare host term that was
// never tagged with a namespace of its own.
func Apply(tree *Tree, t *hoterm.Term, ns int, tb *sortalg.Table) *hoterm.Term {
	override := ns
	return apply(tree, t, tb, &override)
}

// apply is shared by ApplyInternal and Apply. When override is non-nil
// every variable is looked up as VarSpec{ID: head.Var().ID, Namespace:
// *override}; otherwise the variable's own embedded namespace is used.
// Substitution is applied idempotently: replacing a variable head may
// produce a weak redex, which is reduced in place and then substituted
// into again, so the result has no solved variable occurring in it.
func apply(tree *Tree, t *hoterm.Term, tb *sortalg.Table, override *int) *hoterm.Term {
	if t.IsVariableHeaded() {
		key := t.Head.Var()
		if override != nil {
			key.Namespace = *override
		}
		if bound, ok := tree.Lookup(key); ok {
			replaced := hoterm.Headify(t, bound)
			return apply(tree, replaced, tb, override)
		}
	}

	if len(t.Args) == 0 {
		return t
	}

	args := make([]*hoterm.Term, len(t.Args))
	changed := false
	for i, a := range t.Args {
		na := apply(tree, a, tb, override)
		args[i] = na
		if na != a {
			changed = true
		}
	}
	var result *hoterm.Term
	if changed {
		result = &hoterm.Term{Head: t.Head, Args: args}
	} else {
		result = t
	}
	if result.IsWeakRedex(tb) {
		return apply(tree, hoterm.Reduce(result), tb, override)
	}
	return result
}
