// Package subst implements the substitution map: a finite, persistent
// mapping from hoterm.VarSpec to hoterm.Term, plus its application to
// terms (with inline weak reduction) and its occurs-check.
//
// The binding tree itself is a red-black tree in the Okazaki persistent
// style, re-keyed on VarSpec instead of a bare variable name. Binding
// returns a new root sharing untouched subtrees with the old one, which
// gives a "create on bind, remove via its paired undo token" lifecycle:
// the old *Tree is still valid and usable as the undo target.
package subst

import "github.com/sortlab/hocu/hoterm"

type color uint8

const (
	red color = iota
	black
)

// Tree is an immutable binding map. The nil *Tree is the empty map.
type Tree struct {
	clr         color
	left, right *Tree
	binding
}

type binding struct {
	key   hoterm.VarSpec
	value *hoterm.Term
}

// compare imposes a total order on VarSpec so it can key a BST:
// namespace first, then id.
func compare(a, b hoterm.VarSpec) int {
	switch {
	case a.Namespace != b.Namespace:
		return a.Namespace - b.Namespace
	default:
		return a.ID - b.ID
	}
}

// Empty is the empty substitution.
var Empty *Tree

// Lookup returns the term k is bound to, if any.
func (t *Tree) Lookup(k hoterm.VarSpec) (*hoterm.Term, bool) {
	node := t
	for node != nil {
		switch c := compare(k, node.key); {
		case c < 0:
			node = node.left
		case c > 0:
			node = node.right
		default:
			return node.value, true
		}
	}
	return nil, false
}

// Bind returns a new Tree equal to t plus k ↦ v. If k is already bound,
// the existing binding is left untouched — ELIMINATE never rebinds an
// already-solved variable; it always targets a bare variable head that
// hasn't been eliminated yet.
func (t *Tree) Bind(k hoterm.VarSpec, v *hoterm.Term) *Tree {
	ret := *t.insert(k, v)
	ret.clr = black
	return &ret
}

func (t *Tree) insert(k hoterm.VarSpec, v *hoterm.Term) *Tree {
	if t == nil {
		return &Tree{clr: red, binding: binding{key: k, value: v}}
	}
	switch c := compare(k, t.key); {
	case c < 0:
		ret := *t
		ret.left = t.left.insert(k, v)
		ret.balance()
		return &ret
	case c > 0:
		ret := *t
		ret.right = t.right.insert(k, v)
		ret.balance()
		return &ret
	default:
		return t
	}
}

func (t *Tree) balance() {
	var (
		a, b, c, d *Tree
		x, y, z    binding
	)
	switch {
	case t.left != nil && t.left.clr == red:
		switch {
		case t.left.left != nil && t.left.left.clr == red:
			a = t.left.left.left
			b = t.left.left.right
			c = t.left.right
			d = t.right
			x = t.left.left.binding
			y = t.left.binding
			z = t.binding
		case t.left.right != nil && t.left.right.clr == red:
			a = t.left.left
			b = t.left.right.left
			c = t.left.right.right
			d = t.right
			x = t.left.binding
			y = t.left.right.binding
			z = t.binding
		default:
			return
		}
	case t.right != nil && t.right.clr == red:
		switch {
		case t.right.left != nil && t.right.left.clr == red:
			a = t.left
			b = t.right.left.left
			c = t.right.left.right
			d = t.right.right
			x = t.binding
			y = t.right.left.binding
			z = t.right.binding
		case t.right.right != nil && t.right.right.clr == red:
			a = t.left
			b = t.right.left
			c = t.right.right.left
			d = t.right.right.right
			x = t.binding
			y = t.right.binding
			z = t.right.right.binding
		default:
			return
		}
	default:
		return
	}
	*t = Tree{
		clr:   red,
		left:  &Tree{clr: black, left: a, right: b, binding: x},
		right: &Tree{clr: black, left: c, right: d, binding: z},
		binding: y,
	}
}
