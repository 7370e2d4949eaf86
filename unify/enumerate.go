package unify

import "github.com/sortlab/hocu/hoterm"

// enumerate produces p's candidate steps, in a fixed deterministic
// order: BOTH-side candidates first, then the FIRST-side candidates,
// then the SECOND-side candidates. Within BOTH, DECOMP comes before
// ADD_ARG; within a side, SPLIT comes first, then the narrowings in
// step-tag order (or the single REDUCE). The admissibility gating table is applied to narrowing
// candidates before they are returned.
//
// Rules 1 and 2 (a bare variable on either side) short-circuit every
// other rule: if either side is a bare variable, ELIMINATE on that side
// is the pair's only candidate.
func enumerate(env *Environment, p *Pair) []Step {
	if p.Left.IsBareVariable() {
		return []Step{{ELIMINATE, First}}
	}
	if p.Right.IsBareVariable() {
		return []Step{{ELIMINATE, Second}}
	}

	tb := env.Sorts

	var both, first, second []Step

	// Rule 6: DECOMP.
	if hoterm.SameFirstOrderHead(p.Left, p.Right) && len(p.Left.Args) == len(p.Right.Args) {
		both = append(both, Step{DECOMP, Both})
	}

	// Rule 7: ADD_ARG.
	if (p.Left.IsCombinatorHeaded() && p.Left.IsUnderApplied(tb)) ||
		(p.Right.IsCombinatorHeaded() && p.Right.IsUnderApplied(tb)) {
		both = append(both, Step{ADD_ARG, Both})
	}

	first = append(first, sideCandidates(env, First, p, p.Left)...)
	second = append(second, sideCandidates(env, Second, p, p.Right)...)

	out := make([]Step, 0, len(both)+len(first)+len(second))
	out = append(out, both...)
	out = append(out, first...)
	out = append(out, second...)
	return out
}

// sideCandidates enumerates the single-side rules (3: SPLIT, 4: the
// narrowing family, 5: REDUCE) for term, which is p's term on side.
func sideCandidates(env *Environment, side Side, p *Pair, term *hoterm.Term) []Step {
	tb := env.Sorts
	var out []Step

	if term.IsVariableHeaded() {
		// Rule 3: SPLIT. Admissible when term has at least one argument
		// and no more arguments than the other side.
		other := p.otherTerm(side)
		if len(term.Args) > 0 && len(term.Args) <= len(other.Args) {
			out = append(out, Step{SPLIT, side})
		}

		// Rule 4: the narrowing family, filtered by the gating table.
		for _, c := range narrowCandidates(tb, side, term) {
			if gateAllowed(c.Tag, p.LastStep, p.SecondLastStep) {
				out = append(out, c)
			}
		}
		return out
	}

	// Rule 5: REDUCE, when term is a combinator-headed weak redex.
	if term.IsCombinatorHeaded() && !term.IsUnderApplied(tb) {
		out = append(out, Step{reduceTagFor(term.Head.Comb()), side})
	}

	return out
}
