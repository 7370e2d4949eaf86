package unify

import (
	"fmt"

	"github.com/sortlab/hocu/hoterm"
	"github.com/sortlab/hocu/sortalg"
)

// freshNamespace is the VarSpec namespace reserved for variables this
// package manufactures itself (X-narrowing's fresh variable arguments).
// Host-supplied terms are expected to use namespaces >= 0 (each of the
// two input terms to a query gets its own namespace index), so a
// negative namespace can never collide with one the host chose.
const freshNamespace = -1

// Environment holds the sort table a search runs against plus the
// monotonic counters that manufacture fresh variables (for X-narrowing)
// and fresh constants (for ADD_ARG). All of a search's shared, mutable
// state is encapsulated here rather than behind package level globals,
// so two Environments — and the Iterators built from them — never
// interfere with each other even when run concurrently by an
// internal/workpool worker pool.
type Environment struct {
	Sorts *sortalg.Table

	nextVarID   int
	nextConstID int
}

// NewEnvironment creates an Environment backed by tb. tb is not copied;
// the caller must not mutate it concurrently with a search in progress.
func NewEnvironment(tb *sortalg.Table) *Environment {
	return &Environment{Sorts: tb}
}

// FreshVar manufactures a variable of sort, guaranteed to be distinct
// from every variable the host could have supplied (see freshNamespace)
// and from every other variable this Environment has manufactured.
func (e *Environment) FreshVar(sort sortalg.Sort) *hoterm.Term {
	e.nextVarID++
	return hoterm.NewVar(hoterm.VarSpec{ID: e.nextVarID, Namespace: freshNamespace}, sort)
}

// FreshConst manufactures a constant of sort that cannot collide with a
// host-supplied symbol name, for ADD_ARG's "generate a fresh constant"
// rule.
func (e *Environment) FreshConst(sort sortalg.Sort) *hoterm.Term {
	e.nextConstID++
	return hoterm.NewConst(fmt.Sprintf("$%d", e.nextConstID), sort)
}
