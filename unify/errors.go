package unify

import "errors"

// ErrNoMoreUnifiers is returned by Iterator.Next once the search has
// exhausted every alternative.
var ErrNoMoreUnifiers = errors.New("unify: no more unifiers")

// ErrBudgetExhausted is returned by Iterator.Next when the caller's
// Budget (step count or wall-clock deadline) is spent before the search
// reaches either a unifier or exhaustion
var ErrBudgetExhausted = errors.New("unify: budget exhausted")

// ErrIllSorted is returned by NewIterator when the two input terms do
// not have the same result sort. This is a construction-time invariant
// breach, not a branch failure: ill-sorted input is rejected before any
// search state is created.
var ErrIllSorted = errors.New("unify: left and right terms have different sorts")
