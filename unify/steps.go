package unify

import (
	"fmt"

	"github.com/sortlab/hocu/hoterm"
)

// StepTag names one admissible transformation a pair's enumerator can
// produce step taxonomy.
type StepTag uint8

const (
	// NoStep marks a pair that has not yet had any step applied to it —
	// the initial value of Pair.LastStep/SecondLastStep.
	NoStep StepTag = iota
	ADD_ARG
	DECOMP
	ELIMINATE
	SPLIT
	I_NARROW
	K_NARROW
	KX_NARROW
	B_NARROW
	BX_NARROW
	C_NARROW
	CX_NARROW
	S_NARROW
	SX_NARROW
	I_REDUCE
	K_REDUCE
	B_REDUCE
	C_REDUCE
	S_REDUCE
)

var stepTagNames = map[StepTag]string{
	NoStep:     "NONE",
	ADD_ARG:    "ADD_ARG",
	DECOMP:     "DECOMP",
	ELIMINATE:  "ELIMINATE",
	SPLIT:      "SPLIT",
	I_NARROW:   "I_NARROW",
	K_NARROW:   "K_NARROW",
	KX_NARROW:  "KX_NARROW",
	B_NARROW:   "B_NARROW",
	BX_NARROW:  "BX_NARROW",
	C_NARROW:   "C_NARROW",
	CX_NARROW:  "CX_NARROW",
	S_NARROW:   "S_NARROW",
	SX_NARROW:  "SX_NARROW",
	I_REDUCE:   "I_REDUCE",
	K_REDUCE:   "K_REDUCE",
	B_REDUCE:   "B_REDUCE",
	C_REDUCE:   "C_REDUCE",
	S_REDUCE:   "S_REDUCE",
}

func (t StepTag) String() string {
	if n, ok := stepTagNames[t]; ok {
		return n
	}
	return fmt.Sprintf("StepTag(%d)", uint8(t))
}

// Side names which half of a pair (or both) a step applies to: the
// FIRST | SECOND | BOTH side tag.
type Side uint8

const (
	First Side = iota
	Second
	Both
)

func (s Side) String() string {
	switch s {
	case First:
		return "FIRST"
	case Second:
		return "SECOND"
	case Both:
		return "BOTH"
	default:
		return fmt.Sprintf("Side(%d)", uint8(s))
	}
}

// Step is one admissible candidate transformation for a pair.
type Step struct {
	Tag  StepTag
	Side Side
}

func (s Step) String() string {
	return fmt.Sprintf("%s/%s", s.Tag, s.Side)
}

func reduceTagFor(c hoterm.Combinator) StepTag {
	switch c {
	case hoterm.I:
		return I_REDUCE
	case hoterm.K:
		return K_REDUCE
	case hoterm.B:
		return B_REDUCE
	case hoterm.C:
		return C_REDUCE
	case hoterm.S:
		return S_REDUCE
	default:
		panic("unify: reduceTagFor: unknown combinator")
	}
}

// narrowSpec names which combinator a *_NARROW step family narrows to
// and whether it is the "X" variant that additionally introduces a
// fresh variable argument before reducing.
type narrowSpec struct {
	Tag  StepTag
	Comb hoterm.Combinator
	IsX  bool
}

var narrowSpecs = []narrowSpec{
	{I_NARROW, hoterm.I, false},
	{K_NARROW, hoterm.K, false},
	{KX_NARROW, hoterm.K, true},
	{B_NARROW, hoterm.B, false},
	{BX_NARROW, hoterm.B, true},
	{C_NARROW, hoterm.C, false},
	{CX_NARROW, hoterm.C, true},
	{S_NARROW, hoterm.S, false},
	{SX_NARROW, hoterm.S, true},
}

func narrowSpecFor(tag StepTag) (narrowSpec, bool) {
	for _, s := range narrowSpecs {
		if s.Tag == tag {
			return s, true
		}
	}
	return narrowSpec{}, false
}

func isNarrowTag(tag StepTag) bool {
	_, ok := narrowSpecFor(tag)
	return ok
}
