package workpool

import (
	"context"
	"sync"

	"github.com/sortlab/hocu/hoterm"
	"github.com/sortlab/hocu/unify"
)

// Problem is one independent unification search to run on the pool: a
// term pair plus the Environment it runs against (each Problem must
// bring its own Environment — see package doc) and how the search
// should be bounded/limited.
type Problem struct {
	Env   *unify.Environment
	Left  *hoterm.Term
	Right *hoterm.Term
	// Budget bounds the search, per unify.Budget.
	Budget unify.Budget
	// Limit caps how many unifiers are collected before the search
	// stops early. Zero means collect until ErrNoMoreUnifiers.
	Limit int
}

// Result is one Problem's outcome: the unifiers found (possibly none)
// and, if the search stopped for a reason other than exhaustion or
// hitting Limit, the error that stopped it.
type Result struct {
	Unifiers []*unify.Unifier
	Err      error
}

// RunAll runs every problem on a Pool of size workers, one
// unify.Iterator per problem, and returns one Result per problem in
// the same order as problems. ctx is only consulted while problems are
// being queued: if it is cancelled first, RunAll returns its error; once
// every problem is queued, RunAll blocks until all of them have finished.
func RunAll(ctx context.Context, size int, problems []Problem) ([]Result, error) {
	pool := New(size)
	defer pool.Close()

	results := make([]Result, len(problems))
	var wg sync.WaitGroup
	for i, prob := range problems {
		i, prob := i, prob
		wg.Add(1)
		err := pool.Submit(ctx, func() {
			defer wg.Done()
			results[i] = runOne(prob)
		})
		if err != nil {
			wg.Done()
			return nil, err
		}
	}
	wg.Wait()
	return results, nil
}

func runOne(prob Problem) Result {
	it, err := unify.NewIterator(prob.Env, prob.Left, prob.Right)
	if err != nil {
		return Result{Err: err}
	}
	it.Budget = prob.Budget

	var out Result
	for prob.Limit <= 0 || len(out.Unifiers) < prob.Limit {
		u, err := it.Next()
		if err != nil {
			if err != unify.ErrNoMoreUnifiers {
				out.Err = err
			}
			break
		}
		out.Unifiers = append(out.Unifiers, u)
	}
	return out
}
