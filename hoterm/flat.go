package hoterm

import "github.com/sortlab/hocu/sortalg"

// Appify folds t into a flat binary "@"-application tree: a left spine
// of headApp nodes, each with exactly two children (the partially
// applied function on the left, one argument on the right), bottoming
// out at a bare copy of t's head. Appify and Deappify are mutual
// inverses on well-sorted terms.
func Appify(t *Term, tb *sortalg.Table) *Term {
	result := &Term{Head: t.Head}
	sort := t.Head.sort
	for _, arg := range t.Args {
		sort = tb.AppliedToN(sort, 1)
		result = &Term{Head: Head{kind: headApp, sort: sort}, Args: []*Term{result, arg}}
	}
	return result
}

// Deappify is the inverse of Appify: it walks the left spine of a flat
// application tree back down to its leaf head and recovers the argument
// list in original left-to-right order.
func Deappify(f *Term) *Term {
	var args []*Term
	cur := f
	for cur.Head.kind == headApp {
		args = append(args, cur.Args[1])
		cur = cur.Args[0]
	}
	for i, j := 0, len(args)-1; i < j; i, j = i+1, j-1 {
		args[i], args[j] = args[j], args[i]
	}
	return &Term{Head: cur.Head, Args: args}
}
