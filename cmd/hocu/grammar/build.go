package grammar

import (
	"fmt"

	"github.com/sortlab/hocu/hoterm"
	"github.com/sortlab/hocu/sortalg"
)

// LeftNamespace and RightNamespace are the fixed namespace indices a
// compiled QueryDecl's two sides are tagged with: the two input terms
// of a query each get their own namespace index, so a variable name
// reused across both sides of "unify X = f X ." compiles to two
// distinct hoterm.VarSpecs, never one spliced into the other's side by
// accident. Callers applying a Unifier back to a query's terms use
// these same indices.
const (
	LeftNamespace  = 0
	RightNamespace = 1
)

var combinators = map[string]hoterm.Combinator{
	"I": hoterm.I,
	"K": hoterm.K,
	"B": hoterm.B,
	"C": hoterm.C,
	"S": hoterm.S,
}

// Signature is a compiled sig block: every symbol's declared sort, plus
// the name -> VarSpec.ID table that keeps repeated variable names
// within one Program resolving to the same variable.
type Signature struct {
	tb      *sortalg.Table
	sorts   map[string]sortalg.Sort
	varIDs  map[string]int
	nextVar int
}

// NewSignature creates an empty Signature over tb. tb is not copied;
// callers share one Table across every Program compiled in a session so
// that sort identity is consistent across queries.
func NewSignature(tb *sortalg.Table) *Signature {
	return &Signature{tb: tb, sorts: map[string]sortalg.Sort{}, varIDs: map[string]int{}}
}

// Declare records decl's sort. A later sig for the same name overwrites
// the earlier one — useful in a REPL, where redeclaring a symbol's sort
// for the next query is the norm rather than an error.
func (s *Signature) Declare(decl *SigDecl) {
	s.sorts[decl.Name] = s.buildSort(decl.Sort)
}

func (s *Signature) buildSort(e *SortExpr) sortalg.Sort {
	left := s.buildSortAtom(e.Left)
	if e.Arrow == nil {
		return left
	}
	return s.tb.Function(left, s.buildSort(e.Arrow))
}

func (s *Signature) buildSortAtom(a *SortAtom) sortalg.Sort {
	if a.Paren != nil {
		return s.buildSort(a.Paren)
	}
	return s.tb.Base(a.Name)
}

// BuildQuery compiles q's two sides into hoterm.Terms, tagging q.Left's
// variables with LeftNamespace and q.Right's with RightNamespace.
func (s *Signature) BuildQuery(q *QueryDecl) (left, right *hoterm.Term, err error) {
	left, err = s.term(q.Left, LeftNamespace)
	if err != nil {
		return nil, nil, err
	}
	right, err = s.term(q.Right, RightNamespace)
	if err != nil {
		return nil, nil, err
	}
	return left, right, nil
}

func (s *Signature) term(t *Term, ns int) (*hoterm.Term, error) {
	head, err := s.atom(t.Head, ns)
	if err != nil {
		return nil, err
	}
	for _, a := range t.Args {
		arg, err := s.atom(a, ns)
		if err != nil {
			return nil, err
		}
		head = hoterm.AddArg(head, arg)
	}
	return head, nil
}

func (s *Signature) atom(a *Atom, ns int) (*hoterm.Term, error) {
	if a.Paren != nil {
		return s.term(a.Paren, ns)
	}

	name := a.Name
	sort, ok := s.sorts[name]
	if !ok {
		return nil, fmt.Errorf("grammar: %q has no sig declaration", name)
	}
	if c, ok := combinators[name]; ok {
		return hoterm.NewComb(c, sort), nil
	}
	if isVariableName(name) {
		return hoterm.NewVar(hoterm.VarSpec{ID: s.varID(name), Namespace: ns}, sort), nil
	}
	return hoterm.NewConst(name, sort), nil
}

func (s *Signature) varID(name string) int {
	if id, ok := s.varIDs[name]; ok {
		return id
	}
	s.nextVar++
	s.varIDs[name] = s.nextVar
	return s.nextVar
}

// isVariableName follows Prolog term syntax's own convention: a symbol
// starting with an uppercase letter names a variable, anything else
// names a constant.
func isVariableName(name string) bool {
	return name != "" && name[0] >= 'A' && name[0] <= 'Z'
}
