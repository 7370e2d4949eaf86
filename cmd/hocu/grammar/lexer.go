// Package grammar parses hocu's minimal juxtaposition-application term
// syntax plus a one-line sort-signature block, for cmd/hocu's batch and
// REPL front ends. A TPTP/SMT front end is out of scope for the engine
// proper, and this grammar is not held to any completeness standard
// beyond what cmd/hocu itself needs.
package grammar

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// Lexer tokenises hocu source the same way kanso's grammar.KansoLexer
// does: a single stateful ruleset, longest-match-first, with whitespace
// elided by the parser rather than dropped here.
var Lexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		{"Comment", `//[^\n]*`, nil},
		{"Ident", `[a-zA-Z_][a-zA-Z0-9_']*`, nil},
		{"Arrow", `->`, nil},
		{"Punct", `[():.=]`, nil},
		{"Whitespace", `[ \t\r\n]+`, nil},
	},
})
