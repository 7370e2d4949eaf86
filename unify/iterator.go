package unify

import (
	"time"

	"github.com/sortlab/hocu/hoterm"
	"github.com/sortlab/hocu/subst"
)

// Budget bounds how much work a single Iterator may do before giving up
// and reporting ErrBudgetExhausted The zero Budget
// never gives up on its own.
type Budget struct {
	// MaxSteps caps the number of Advance steps attempted, including
	// failed ones. Zero means unlimited.
	MaxSteps int
	// Deadline, if non-zero, is a wall-clock time after which the search
	// stops. Zero means unlimited.
	Deadline time.Time
}

func (b Budget) exceeded(steps int) bool {
	if b.MaxSteps > 0 && steps >= b.MaxSteps {
		return true
	}
	if !b.Deadline.IsZero() && time.Now().After(b.Deadline) {
		return true
	}
	return false
}

// TraceKind names the kind of event a Trace hook is notified of, in the
// same spirit as a Prolog tracer's Call/Exit/Fail/Redo ports.
type TraceKind int

const (
	// TraceTry fires just before a candidate step is applied.
	TraceTry TraceKind = iota
	// TraceCommit fires once a step has been applied successfully.
	TraceCommit
	// TraceFail fires when a step's application failed and was rolled
	// back.
	TraceFail
	// TraceBacktrack fires when a pair's candidates are exhausted and the
	// search undoes the step that created it.
	TraceBacktrack
)

// TraceEvent is delivered to an Iterator's Trace hook.
type TraceEvent struct {
	Kind TraceKind
	Step Step
}

// frame is one entry of the pair stack: a pending or active subgoal plus
// its lazily-computed candidate list and enumeration cursor. Candidates
// are computed once, the first time the frame becomes the top of the
// stack — never eagerly at push time — because a sibling pair sitting
// lower in the stack may still have its Left/Right rewritten by a later
// binding before it is ever promoted to top: every step applies the
// substitution's accumulated bindings to every pair still on the stack.
//
// A step that changes its own frame's pair shape in place rather than
// popping the frame (see resetFrame) invalidates that cache, so the
// "computed once" rule holds only between resets.
type frame struct {
	pair       *Pair
	candidates []Step
	computed   bool
	next       int

	// mark is the undo-log length captured just before the step that
	// created this frame was applied. Exhausting this frame's candidates
	// rolls the whole search back to mark, which both removes this frame
	// from the stack and undoes everything else that step did.
	mark int
}

// Iterator performs the backtracking depth-first search, producing one
// Unifier per call to Next until the search is exhausted. It is not
// safe for concurrent use; run independent searches through independent
// Iterators (see internal/workpool for running many of them
// concurrently).
type Iterator struct {
	env *Environment

	tree   *subst.Tree
	frames []*frame
	undo   []func()

	solved     bool
	resumeMark int
	steps      int

	// Budget bounds the search. The zero Budget never stops the search on
	// its own.
	Budget Budget

	// Trace, if non-nil, is called for every step the search tries,
	// succeeds at, fails at, or backtracks past.
	Trace func(TraceEvent)
}

// NewIterator builds an Iterator over the single top-level pair (left,
// right). It returns ErrIllSorted if the two terms do not share a result
// sort — that is treated as a construction-time fatal error rather than
// a branch failure.
func NewIterator(env *Environment, left, right *hoterm.Term) (*Iterator, error) {
	if left.ResultSort(env.Sorts) != right.ResultSort(env.Sorts) {
		return nil, ErrIllSorted
	}
	it := &Iterator{env: env, tree: subst.Empty}
	it.frames = append(it.frames, &frame{pair: &Pair{Left: left, Right: right}, mark: 0})
	return it, nil
}

func (it *Iterator) trace(ev TraceEvent) {
	if it.Trace != nil {
		it.Trace(ev)
	}
}

func (it *Iterator) pushUndo(fn func()) {
	it.undo = append(it.undo, fn)
}

func (it *Iterator) rollbackTo(mark int) {
	for i := len(it.undo) - 1; i >= mark; i-- {
		it.undo[i]()
	}
	it.undo = it.undo[:mark]
}

func (it *Iterator) pushFrame(p *Pair, mark int) {
	old := it.frames
	// Appending to a full-capacity slice always copies, so the backing
	// array that an earlier popFrame's undo still refers to is never
	// overwritten.
	it.frames = append(old[:len(old):len(old)], &frame{pair: p, mark: mark})
	it.pushUndo(func() { it.frames = old })
}

func (it *Iterator) popFrame() {
	old := it.frames
	it.frames = old[:len(old)-1]
	it.pushUndo(func() { it.frames = old })
}

func (it *Iterator) setLeft(p *Pair, v *hoterm.Term) {
	old := p.Left
	p.Left = v
	it.pushUndo(func() { p.Left = old })
}

func (it *Iterator) setRight(p *Pair, v *hoterm.Term) {
	old := p.Right
	p.Right = v
	it.pushUndo(func() { p.Right = old })
}

func (it *Iterator) recordStep(p *Pair, tag StepTag) {
	oldLast, oldSecond := p.LastStep, p.SecondLastStep
	p.SecondLastStep = p.LastStep
	p.LastStep = tag
	it.pushUndo(func() { p.LastStep, p.SecondLastStep = oldLast, oldSecond })
}

// resetFrame clears fr's cached candidate list and moves fr.mark to
// mark. A step that rewrites fr.pair in place (ADD_ARG, a *_REDUCE, or
// a *_NARROW) changes the pair's shape without popping fr and pushing a
// replacement, so fr's previously computed candidates and enumeration
// cursor no longer describe what is now sitting in fr.pair. Without this
// reset, Next would judge fr exhausted against the old candidate list
// instead of enumerating the rewritten term.
func (it *Iterator) resetFrame(fr *frame, mark int) {
	oldCandidates, oldComputed, oldNext, oldMark := fr.candidates, fr.computed, fr.next, fr.mark
	fr.candidates = nil
	fr.computed = false
	fr.next = 0
	fr.mark = mark
	it.pushUndo(func() {
		fr.candidates, fr.computed, fr.next, fr.mark = oldCandidates, oldComputed, oldNext, oldMark
	})
}

// bindAndPropagate binds x to value in the substitution tree (after an
// occurs check) and then re-applies the resulting tree to every pair
// currently on the stack, since every step that adds a binding must be
// propagated to the rest of the search immediately. It returns false,
// performing no mutation at all, if the occurs check fails.
func (it *Iterator) bindAndPropagate(x hoterm.VarSpec, value *hoterm.Term) bool {
	if subst.Occurs(it.tree, x, value) {
		return false
	}
	oldTree := it.tree
	it.tree = it.tree.Bind(x, value)
	it.pushUndo(func() { it.tree = oldTree })

	tb := it.env.Sorts
	for _, fr := range it.frames {
		p := fr.pair
		if newL := subst.ApplyInternal(it.tree, p.Left, tb); newL != p.Left {
			it.setLeft(p, newL)
		}
		if newR := subst.ApplyInternal(it.tree, p.Right, tb); newR != p.Right {
			it.setRight(p, newR)
		}
	}
	return true
}

// Next advances the search and returns the next Unifier, or
// ErrNoMoreUnifiers once every alternative has been exhausted, or
// ErrBudgetExhausted if Budget is spent first.
func (it *Iterator) Next() (*Unifier, error) {
	if it.solved {
		// Resume the search for another solution: undo the step that made
		// the pair stack empty last time, then fall through to the main
		// loop to try that pair's next candidate.
		it.solved = false
		it.rollbackTo(it.resumeMark)
	}

	for {
		if len(it.frames) == 0 {
			return nil, ErrNoMoreUnifiers
		}

		if it.Budget.exceeded(it.steps) {
			return nil, ErrBudgetExhausted
		}

		top := it.frames[len(it.frames)-1]
		if !top.computed {
			top.candidates = enumerate(it.env, top.pair)
			top.computed = true
		}

		if top.next >= len(top.candidates) {
			if top.mark >= len(it.undo) {
				// Nothing was done to create or rewrite this frame, so it
				// is the top-level pair itself and it is exhausted: no
				// undo mark exists before it, so the whole search is done.
				it.frames = nil
				return nil, ErrNoMoreUnifiers
			}
			it.trace(TraceEvent{Kind: TraceBacktrack})
			it.rollbackTo(top.mark)
			continue
		}

		step := top.candidates[top.next]
		top.next++
		it.steps++

		it.trace(TraceEvent{Kind: TraceTry, Step: step})
		mark := len(it.undo)
		if it.applyStep(top.pair, step, mark) {
			it.trace(TraceEvent{Kind: TraceCommit, Step: step})
			if len(it.frames) > 0 && it.frames[len(it.frames)-1] == top {
				// top's pair was rewritten in place (ADD_ARG, *_REDUCE,
				// *_NARROW) rather than popped: its cached candidates
				// describe a pair that no longer exists.
				it.resetFrame(top, mark)
			}
			if len(it.frames) == 0 {
				it.solved = true
				it.resumeMark = mark
				return &Unifier{tree: it.tree, tb: it.env.Sorts}, nil
			}
			continue
		}
		it.trace(TraceEvent{Kind: TraceFail, Step: step})
		it.rollbackTo(mark)
	}
}
