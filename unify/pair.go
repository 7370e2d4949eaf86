package unify

import "github.com/sortlab/hocu/hoterm"

// Pair is a single unification subgoal: two applicative terms that must
// be made weakly equal, plus the two most recent steps applied to it —
// the minimal history the admissibility gating table needs to forbid
// narrowing loops.
//
// A freshly created Pair (the top-level problem, or a subgoal spawned by
// DECOMP/SPLIT) starts with LastStep and SecondLastStep both NoStep: its
// narrowing history does not carry over from whatever produced it —
// the gating table only ever looks at a pair's own last two steps.
type Pair struct {
	Left, Right *hoterm.Term

	LastStep       StepTag
	SecondLastStep StepTag
}

// termFor returns the term on the named side. It panics on Both, which
// never identifies a single term.
func (p *Pair) termFor(s Side) *hoterm.Term {
	switch s {
	case First:
		return p.Left
	case Second:
		return p.Right
	default:
		panic("unify: termFor(Both)")
	}
}

func (p *Pair) otherTerm(s Side) *hoterm.Term {
	switch s {
	case First:
		return p.Right
	case Second:
		return p.Left
	default:
		panic("unify: otherTerm(Both)")
	}
}
