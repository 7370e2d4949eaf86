package subst

import "github.com/sortlab/hocu/hoterm"

// Occurs reports whether v occurs free in t under tree's current
// bindings — the occurs check ELIMINATE must run at every binding site,
// since a substitution target must never contain the bound variable it
// replaces. It resolves bound variables transitively through tree
// before comparing.
func Occurs(tree *Tree, v hoterm.VarSpec, t *hoterm.Term) bool {
	if t.IsVariableHeaded() {
		vs := t.Head.Var()
		if vs == v {
			return true
		}
		if bound, ok := tree.Lookup(vs); ok && Occurs(tree, v, bound) {
			return true
		}
	}
	for _, a := range t.Args {
		if Occurs(tree, v, a) {
			return true
		}
	}
	return false
}

// FreeVars collects the distinct free variables of t, resolving through
// tree's bindings. Order is deterministic (first occurrence, depth
// first). The occurs checks of ELIMINATE and SPLIT use Occurs, not this
// function.
func FreeVars(tree *Tree, t *hoterm.Term) []hoterm.VarSpec {
	var out []hoterm.VarSpec
	var walk func(*hoterm.Term)
	seen := map[hoterm.VarSpec]bool{}
	walk = func(t *hoterm.Term) {
		if t.IsVariableHeaded() {
			vs := t.Head.Var()
			if bound, ok := tree.Lookup(vs); ok {
				walk(bound)
			} else if !seen[vs] {
				seen[vs] = true
				out = append(out, vs)
			}
		}
		for _, a := range t.Args {
			walk(a)
		}
	}
	walk(t)
	return out
}
