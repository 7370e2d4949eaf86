package grammar

// Program is a whole hocu source file or REPL buffer: zero or more sort
// signatures and unification queries, in any order. Declarations are
// processed in order, so a query can only use symbols whose sig appears
// before it.
type Program struct {
	Decls []*Decl `@@*`
}

// Decl is one top-level declaration.
type Decl struct {
	Sig   *SigDecl   `  @@`
	Query *QueryDecl `| @@`
}

// SigDecl assigns a sort to a symbol: "sig f : i -> i -> i ."
// The names I, K, B, C and S are the combinators; other symbols starting
// with an uppercase letter are variables, and anything else is a
// constant. This is the same uppercase-is-a-variable
// convention Prolog term syntax uses.
type SigDecl struct {
	Name string    `"sig" @Ident ":"`
	Sort *SortExpr `@@ "."`
}

// SortExpr is a right-associative functional sort, with parentheses for
// grouping: "i -> i -> i" means i -> (i -> i); "(i -> i) -> i -> i"
// groups explicitly, the way a B-narrow's sort needs to.
type SortExpr struct {
	Left  *SortAtom `@@`
	Arrow *SortExpr `[ "->" @@ ]`
}

// SortAtom is either a base sort name or a parenthesised sub-expression.
type SortAtom struct {
	Paren *SortExpr `  "(" @@ ")"`
	Name  string    `| @Ident`
}

// QueryDecl is one unification goal: "unify <term> = <term> ."
type QueryDecl struct {
	Left  *Term `"unify" @@ "="`
	Right *Term `@@ "."`
}

// Term is a left-associative application: a head atom applied to zero
// or more argument atoms, e.g. "B f g x" or "X a".
type Term struct {
	Head *Atom   `@@`
	Args []*Atom `@@*`
}

// Atom is a single term with no juxtaposed arguments of its own: a bare
// name, or a parenthesised (possibly applied) term.
type Atom struct {
	Paren *Term  `  "(" @@ ")"`
	Name  string `| @Ident`
}
