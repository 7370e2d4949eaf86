package grammar

import (
	"strings"

	"github.com/sortlab/hocu/hoterm"
)

// FormatTerm renders t back into the same juxtaposition syntax Term
// parses, parenthesising any argument that is itself applied, so a term
// built from declared constants and combinators re-parses to an equal
// term. Variables print as their VarSpec (X<id>.<namespace>) and fresh
// constants as $<n>; the grammar does not accept either form.
func FormatTerm(t *hoterm.Term) string {
	var b strings.Builder
	writeTerm(&b, t)
	return b.String()
}

func writeTerm(b *strings.Builder, t *hoterm.Term) {
	writeHead(b, t)
	for _, a := range t.Args {
		b.WriteByte(' ')
		writeArg(b, a)
	}
}

func writeHead(b *strings.Builder, t *hoterm.Term) {
	switch {
	case t.Head.IsVariable():
		b.WriteString(t.Head.Var().String())
	case t.Head.IsCombinator():
		b.WriteString(t.Head.Comb().String())
	default:
		b.WriteString(t.Head.Const())
	}
}

// writeArg writes t as an argument position: bare if it has no args of
// its own, parenthesised otherwise.
func writeArg(b *strings.Builder, t *hoterm.Term) {
	if len(t.Args) == 0 {
		writeHead(b, t)
		return
	}
	b.WriteByte('(')
	writeTerm(b, t)
	b.WriteByte(')')
}
