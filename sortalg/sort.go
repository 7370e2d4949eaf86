// Package sortalg implements the functional sort algebra that gives
// every head and applicative term in package hoterm its type.
//
// A Sort is either a base sort (an uninterpreted atomic type) or a
// functional sort domain -> range. Functional sorts are hash-consed: two
// calls to Table.Function with the same domain and range return the same
// Sort value, so Sort equality is always a cheap integer comparison.
package sortalg

import "fmt"

// Sort is an opaque, interned sort identifier. The zero Sort is never
// valid; Sorts are obtained from a Table.
type Sort int

// kind distinguishes base sorts from functional ones.
type kind uint8

const (
	kindBase kind = iota
	kindFunc
)

type def struct {
	kind        kind
	name        string // only meaningful for kindBase
	domain, rng Sort   // only meaningful for kindFunc
}

// Table interns base and functional sorts. The zero Table is not usable;
// create one with NewTable. A Table is not safe for concurrent use
// without external synchronization, matching the single-engine-per-
// Environment model described for Environment in package unify.
type Table struct {
	defs  []def
	bases map[string]Sort
	funcs map[funcKey]Sort
}

type funcKey struct {
	domain, rng Sort
}

// NewTable creates an empty sort table.
func NewTable() *Table {
	return &Table{
		bases: map[string]Sort{},
		funcs: map[funcKey]Sort{},
	}
}

// Base interns a base sort named name, returning the same Sort for equal
// names.
func (tb *Table) Base(name string) Sort {
	if s, ok := tb.bases[name]; ok {
		return s
	}
	s := Sort(len(tb.defs))
	tb.defs = append(tb.defs, def{kind: kindBase, name: name})
	tb.bases[name] = s
	return s
}

// Function interns the functional sort domain -> rng, returning the same
// Sort for equal (domain, rng) pairs.
func (tb *Table) Function(domain, rng Sort) Sort {
	k := funcKey{domain, rng}
	if s, ok := tb.funcs[k]; ok {
		return s
	}
	s := Sort(len(tb.defs))
	tb.defs = append(tb.defs, def{kind: kindFunc, domain: domain, rng: rng})
	tb.funcs[k] = s
	return s
}

func (tb *Table) def(s Sort) def {
	if int(s) < 0 || int(s) >= len(tb.defs) {
		panic(fmt.Sprintf("sortalg: unknown sort %d", s))
	}
	return tb.defs[s]
}

// IsFunctional reports whether s is a functional sort.
func (tb *Table) IsFunctional(s Sort) bool {
	return tb.def(s).kind == kindFunc
}

// Domain returns the domain sort of a functional sort. It panics if s is
// not functional — callers must check IsFunctional (or rely on Arity > 0)
// first: an ill-sorted request is a construction-time error, never a
// branch failure.
func (tb *Table) Domain(s Sort) Sort {
	d := tb.def(s)
	if d.kind != kindFunc {
		panic(fmt.Sprintf("sortalg: Domain of base sort %d", s))
	}
	return d.domain
}

// Range returns the range sort of a functional sort. See Domain for the
// panic contract.
func (tb *Table) Range(s Sort) Sort {
	d := tb.def(s)
	if d.kind != kindFunc {
		panic(fmt.Sprintf("sortalg: Range of base sort %d", s))
	}
	return d.rng
}

// Arity counts the nested ranges of s: the number of arguments a term of
// sort s can be applied to before reaching a base sort.
func (tb *Table) Arity(s Sort) int {
	n := 0
	for tb.def(s).kind == kindFunc {
		s = tb.def(s).rng
		n++
	}
	return n
}

// AppliedToN returns the sort of a term of sort s applied to n arguments.
// If n exceeds Arity(s), AppliedToN returns the final (base) range sort
// rather than erroring, which lets callers probe "what's left after
// over-application" without a separate clamped-arity dance.
func (tb *Table) AppliedToN(s Sort, n int) Sort {
	for i := 0; i < n; i++ {
		if tb.def(s).kind != kindFunc {
			return s
		}
		s = tb.def(s).rng
	}
	return s
}

// NthArgSort returns the sort of the k-th argument (0-indexed) that a
// term of sort s expects, i.e. Domain(AppliedToN(s, k)).
func (tb *Table) NthArgSort(s Sort, k int) Sort {
	return tb.Domain(tb.AppliedToN(s, k))
}

// String renders a sort for diagnostics; functional sorts print as
// "(domain->range)".
func (tb *Table) String(s Sort) string {
	d := tb.def(s)
	if d.kind == kindBase {
		return d.name
	}
	return fmt.Sprintf("(%s->%s)", tb.String(d.domain), tb.String(d.rng))
}
