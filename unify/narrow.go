package unify

import (
	"github.com/sortlab/hocu/hoterm"
	"github.com/sortlab/hocu/sortalg"
)

// narrowCandidates enumerates the *_NARROW steps admissible for a
// variable-headed term t on the given side, by matching each
// combinator's generic sort against t's own. The admissibility *gating
// table* (which forbids certain narrowings based on the pair's last two
// steps) is applied separately, in enumerate.go, since it depends on
// pair history rather than on t's shape.
//
// t is guaranteed to carry at least one argument: enumerate.go only
// reaches this function once the bare-variable case (rules 1/2) has
// already been ruled out for both sides of the pair.
func narrowCandidates(tb *sortalg.Table, side Side, t *hoterm.Term) []Step {
	var out []Step
	n := len(t.Args)

	// I_NARROW: arg0 sort equals the 1-prefix sort.
	if n >= 1 && t.NthArgSort(tb, 0) == t.SortOfLengthNPref(tb, 1) {
		out = append(out, Step{I_NARROW, side})
	}

	// K_NARROW: |args| > 1 and arg0 sort equals the 2-prefix sort.
	if n > 1 && t.NthArgSort(tb, 0) == t.SortOfLengthNPref(tb, 2) {
		out = append(out, Step{K_NARROW, side})
	}

	// KX_NARROW: always admissible once t has at least one argument — the
	// fresh variable's sort is always constructible (see narrowKXSort).
	if n >= 1 {
		if _, ok := narrowKXSort(tb, t.HeadSort()); ok {
			out = append(out, Step{KX_NARROW, side})
		}
	}

	if n > 2 {
		s0, s1, s2 := t.NthArgSort(tb, 0), t.NthArgSort(tb, 1), t.NthArgSort(tb, 2)

		// B_NARROW.
		if tb.IsFunctional(s0) && tb.IsFunctional(s1) &&
			tb.Domain(s0) == tb.Range(s1) &&
			tb.Domain(s1) == s2 &&
			tb.Range(s0) == t.SortOfLengthNPref(tb, 3) {
			out = append(out, Step{B_NARROW, side})
		}
	}

	// BX_NARROW needs two existing arguments (the first slot B needs is
	// the fresh variable itself).
	if n >= 2 {
		if _, ok := narrowBXSort(tb, t.HeadSort()); ok {
			out = append(out, Step{BX_NARROW, side})
		}
	}

	if n > 2 {
		s0, s1, s2 := t.NthArgSort(tb, 0), t.NthArgSort(tb, 1), t.NthArgSort(tb, 2)

		// C_NARROW.
		if tb.Arity(s0) >= 2 &&
			tb.AppliedToN(s0, 2) == t.SortOfLengthNPref(tb, 3) &&
			tb.NthArgSort(s0, 0) == s1 &&
			tb.NthArgSort(s0, 1) == s2 {
			out = append(out, Step{C_NARROW, side})
		}
	}

	if n >= 2 {
		if _, ok := narrowCXSort(tb, t.HeadSort()); ok {
			out = append(out, Step{CX_NARROW, side})
		}
	}

	if n > 2 {
		s0, s1, s2 := t.NthArgSort(tb, 0), t.NthArgSort(tb, 1), t.NthArgSort(tb, 2)

		// S_NARROW.
		if tb.Arity(s0) >= 2 && tb.Arity(s1) >= 1 &&
			tb.AppliedToN(s0, 2) == t.SortOfLengthNPref(tb, 3) &&
			tb.Domain(s0) == s2 && s2 == tb.Domain(s1) &&
			tb.NthArgSort(s0, 1) == tb.Range(s1) {
			out = append(out, Step{S_NARROW, side})
		}
	}

	if n >= 2 {
		if _, ok := narrowSXSort(tb, t.HeadSort()); ok {
			out = append(out, Step{SX_NARROW, side})
		}
	}

	return out
}

// The narrowKXSort/narrowBXSort/narrowCXSort/narrowSXSort helpers derive
// the sort of the fresh variable an X-narrowing introduces. They are not
// ported from original_source/ — the C++ there computes this sort after
// the term has already been mutated in place and the result does not
// check out as sound (see DESIGN.md's "Open Question decisions", #4).
// The derivation here instead starts from first principles: binding a
// variable x of sort S to (Comb w) must leave the term well sorted, so
// w's sort and Comb's own instantiated sort are pinned down by working
// out what "sort(Comb w) == S" forces, given each combinator's generic
// type.
//
// K : a -> b -> a.  Binding x:S to (K w) needs sort(K w) == S, i.e.
// K instantiated at a=Range(S), b=Domain(S); w's sort is therefore
// Range(S), unconditionally (S need only be functional, which it is
// whenever t carries at least one argument).
func narrowKXSort(tb *sortalg.Table, headSort sortalg.Sort) (sortalg.Sort, bool) {
	if !tb.IsFunctional(headSort) {
		return 0, false
	}
	return tb.Range(headSort), true
}

// B : (b -> c) -> (a -> b) -> a -> c.  Binding x:S to (B w) needs
// sort(B w) == S, i.e. Domain(S) == (a -> b) and Range(S) == (a -> c)
// for some a, b, c. The two independent mentions of 'a' (inside
// Domain(S) and inside Range(S)) must agree — the one extra condition
// K never needed.
func narrowBXSort(tb *sortalg.Table, headSort sortalg.Sort) (sortalg.Sort, bool) {
	if !tb.IsFunctional(headSort) {
		return 0, false
	}
	d1 := tb.Domain(headSort) // a -> b
	r := tb.Range(headSort)   // a -> c
	if !tb.IsFunctional(d1) || !tb.IsFunctional(r) {
		return 0, false
	}
	if tb.Domain(d1) != tb.Domain(r) {
		return 0, false
	}
	b := tb.Range(d1)
	c := tb.Range(r)
	return tb.Function(b, c), true
}

// C : (a -> b -> c) -> b -> a -> c.  Binding x:S to (C w) needs
// Domain(S) == b and Range(S) == (a -> c); both fully determined by S
// alone, so no cross-consistency condition is needed beyond the two
// functionality checks.
func narrowCXSort(tb *sortalg.Table, headSort sortalg.Sort) (sortalg.Sort, bool) {
	if !tb.IsFunctional(headSort) {
		return 0, false
	}
	r := tb.Range(headSort) // a -> c
	if !tb.IsFunctional(r) {
		return 0, false
	}
	b := tb.Domain(headSort)
	a := tb.Domain(r)
	c := tb.Range(r)
	return tb.Function(a, tb.Function(b, c)), true
}

// S : (a -> b -> c) -> (a -> b) -> a -> c.  Binding x:S to (S w) needs
// Domain(S) == (a -> b) and Range(S) == (a -> c); as with B, the two
// mentions of 'a' must agree.
func narrowSXSort(tb *sortalg.Table, headSort sortalg.Sort) (sortalg.Sort, bool) {
	if !tb.IsFunctional(headSort) {
		return 0, false
	}
	d1 := tb.Domain(headSort) // a -> b
	r := tb.Range(headSort)   // a -> c
	if !tb.IsFunctional(d1) || !tb.IsFunctional(r) {
		return 0, false
	}
	if tb.Domain(d1) != tb.Domain(r) {
		return 0, false
	}
	b := tb.Range(d1)
	c := tb.Range(r)
	return tb.Function(tb.Domain(d1), tb.Function(b, c)), true
}

// buildNarrowValue constructs the term a *_NARROW step binds the
// variable head to: the bare combinator at headSort for a plain narrow,
// or (Comb w) for an w variant, where w is a freshly manufactured
// variable of the sort the corresponding narrowXSort helper computes.
//
// Every X variant shares one property: applying the constructed
// combinator term to w must itself have sort headSort, so the
// combinator's own declared sort is always Function(freshSort,
// headSort) — independent of which of K/B/C/S it is.
func buildNarrowValue(env *Environment, spec narrowSpec, headSort sortalg.Sort) (*hoterm.Term, bool) {
	tb := env.Sorts
	if !spec.IsX {
		return hoterm.NewComb(spec.Comb, headSort), true
	}

	var freshSort sortalg.Sort
	var ok bool
	switch spec.Comb {
	case hoterm.K:
		freshSort, ok = narrowKXSort(tb, headSort)
	case hoterm.B:
		freshSort, ok = narrowBXSort(tb, headSort)
	case hoterm.C:
		freshSort, ok = narrowCXSort(tb, headSort)
	case hoterm.S:
		freshSort, ok = narrowSXSort(tb, headSort)
	default:
		return nil, false
	}
	if !ok {
		return nil, false
	}

	combSort := tb.Function(freshSort, headSort)
	w := env.FreshVar(freshSort)
	return hoterm.AddArg(hoterm.NewComb(spec.Comb, combSort), w), true
}

// gateAllowed applies the admissibility gating table: it forbids
// specific narrowing steps when the pair's two most recent steps
// match a known unproductive pattern. Every step tag not explicitly
// listed in the table is always allowed, matching the table's own
// "others: always allowed" catch-all.
func gateAllowed(tag, last, secondLast StepTag) bool {
	switch tag {
	case KX_NARROW:
		if last == SX_NARROW || last == BX_NARROW {
			return false
		}
		if last == CX_NARROW && secondLast == SX_NARROW {
			return false
		}
		if last == KX_NARROW && secondLast == CX_NARROW {
			return false
		}
		return true
	case K_NARROW:
		return last != SX_NARROW && last != CX_NARROW
	case I_NARROW:
		if last == BX_NARROW {
			return false
		}
		if last == KX_NARROW && secondLast == CX_NARROW {
			return false
		}
		return true
	case CX_NARROW:
		return last != CX_NARROW
	default:
		return true
	}
}
