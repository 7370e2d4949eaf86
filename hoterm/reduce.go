package hoterm

// The five weak-reduction rules, one per combinator. Each assumes its
// term is a weak redex (IsWeakRedex(tb)) — callers enumerate REDUCE steps
// only for non-under-applied combinator-headed terms, so none of these
// need the sort table themselves: the rules are purely about rearranging
// arguments.

// ReduceI performs "I a … -> a …".
func ReduceI(t *Term) *Term {
	a := t.Args[0]
	return AppendArgs(a, t.Args[1:]...)
}

// ReduceK performs "K a b … -> a …".
func ReduceK(t *Term) *Term {
	a := t.Args[0]
	return AppendArgs(a, t.Args[2:]...)
}

// ReduceB performs "B a b c … -> a (b c) …".
func ReduceB(t *Term) *Term {
	a, b, c := t.Args[0], t.Args[1], t.Args[2]
	bc := AddArg(b, c)
	extra := append([]*Term{bc}, t.Args[3:]...)
	return AppendArgs(a, extra...)
}

// ReduceC performs "C a b c … -> a c b …".
func ReduceC(t *Term) *Term {
	a, b, c := t.Args[0], t.Args[1], t.Args[2]
	extra := append([]*Term{c, b}, t.Args[3:]...)
	return AppendArgs(a, extra...)
}

// ReduceS performs "S a b c … -> a c (b c) …".
func ReduceS(t *Term) *Term {
	a, b, c := t.Args[0], t.Args[1], t.Args[2]
	bc := AddArg(b, c)
	extra := append([]*Term{c, bc}, t.Args[3:]...)
	return AppendArgs(a, extra...)
}

// Reduce dispatches to the rule matching t's combinator head. It panics
// if t is not a combinator-headed term; the unify package only calls it
// after confirming IsWeakRedex.
func Reduce(t *Term) *Term {
	switch t.Head.Comb() {
	case I:
		return ReduceI(t)
	case K:
		return ReduceK(t)
	case B:
		return ReduceB(t)
	case C:
		return ReduceC(t)
	case S:
		return ReduceS(t)
	default:
		panic("hoterm: Reduce of unknown combinator")
	}
}
