// Command hocu drives the unification engine from a batch file or an
// interactive REPL, the same shape a Prolog top level gives its
// interpreter: parse a buffer, run it, print solutions one at a time,
// let the user ask for more with ";".
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/pflag"
	"golang.org/x/crypto/ssh/terminal"

	"github.com/sortlab/hocu/cmd/hocu/grammar"
	"github.com/sortlab/hocu/hoterm"
	"github.com/sortlab/hocu/internal/workpool"
	"github.com/sortlab/hocu/sortalg"
	"github.com/sortlab/hocu/unify"
)

// Version is a version of this build.
var Version = "hocu/0.1"

func main() {
	var maxSteps int
	var deadline time.Duration
	var limit int
	var workers int
	var verbose bool
	var showVersion bool
	pflag.IntVar(&maxSteps, "budget-steps", 0, "cap search steps per query (0 = unlimited)")
	pflag.DurationVar(&deadline, "deadline", 0, "cap wall-clock time per query (0 = unlimited)")
	pflag.IntVarP(&limit, "limit", "n", 1, "max unifiers to print per query in batch mode (0 = unlimited)")
	pflag.IntVarP(&workers, "workers", "j", 0, "worker pool size for batch mode (0 = number of CPUs)")
	pflag.BoolVarP(&verbose, "verbose", "v", false, "trace every step the search tries (REPL only)")
	pflag.BoolVar(&showVersion, "version", false, "print version and exit")
	pflag.Parse()

	if showVersion {
		fmt.Println(Version)
		return
	}

	budget := unify.Budget{MaxSteps: maxSteps}
	if deadline > 0 {
		budget.Deadline = time.Now().Add(deadline)
	}

	opts := runOpts{budget: budget, limit: limit, workers: workers, verbose: verbose}

	if args := pflag.Args(); len(args) > 0 {
		for _, path := range args {
			if err := runFile(path, opts); err != nil {
				log.Fatalf("hocu: %s: %v", path, err)
			}
		}
		return
	}

	if err := runREPL(opts); err != nil {
		log.Fatalf("hocu: %v", err)
	}
}

type runOpts struct {
	budget  unify.Budget
	limit   int
	workers int
	verbose bool
}

func runFile(path string, opts runOpts) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	prog, err := grammar.ParseString(path, string(src))
	if err != nil {
		grammar.ReportParseError(string(src), err)
		return err
	}

	tb := sortalg.NewTable()
	sig := grammar.NewSignature(tb)

	var problems []workpool.Problem
	var terms []queryTerms
	for _, decl := range prog.Decls {
		switch {
		case decl.Sig != nil:
			sig.Declare(decl.Sig)
		case decl.Query != nil:
			left, right, err := sig.BuildQuery(decl.Query)
			if err != nil {
				return err
			}
			problems = append(problems, workpool.Problem{
				Env:    unify.NewEnvironment(tb),
				Left:   left,
				Right:  right,
				Budget: opts.budget,
				Limit:  opts.limit,
			})
			terms = append(terms, queryTerms{left: left, right: right})
		}
	}

	results, err := workpool.RunAll(context.Background(), opts.workers, problems)
	if err != nil {
		return err
	}
	for i, res := range results {
		fmt.Printf("query %d: %s = %s\n", i+1, grammar.FormatTerm(terms[i].left), grammar.FormatTerm(terms[i].right))
		printResult(res, terms[i])
	}
	return nil
}

type queryTerms struct {
	left, right *hoterm.Term
}

func printResult(res workpool.Result, qt queryTerms) {
	if res.Err != nil && res.Err != unify.ErrNoMoreUnifiers {
		color.Red("  %v", res.Err)
		return
	}
	if len(res.Unifiers) == 0 {
		color.Red("  no unifier")
		return
	}
	for j, u := range res.Unifiers {
		lhs := grammar.FormatTerm(u.Apply(qt.left, grammar.LeftNamespace))
		rhs := grammar.FormatTerm(u.Apply(qt.right, grammar.RightNamespace))
		color.Green("  [%d] %s = %s", j+1, lhs, rhs)
	}
}

func runREPL(opts runOpts) error {
	oldState, err := terminal.MakeRaw(0)
	if err != nil {
		return fmt.Errorf("failed to enter raw mode: %w", err)
	}
	restore := func() { _ = terminal.Restore(0, oldState) }
	defer restore()

	t := terminal.NewTerminal(os.Stdin, "hocu?- ")
	defer fmt.Printf("\r\n")
	log.SetOutput(t)

	tb := sortalg.NewTable()
	sig := grammar.NewSignature(tb)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	keys := bufio.NewReader(os.Stdin)
	var buf strings.Builder
	for {
		if err := handleLine(ctx, &buf, t, keys, tb, sig, opts); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
	}
}

// handleLine reads one line into buf, and once buf's trimmed contents
// end in "." (a complete declaration), parses and runs it. A terminator
// check stands in for a syntax.ErrInsufficient-style sentinel, since
// this grammar has no incremental-parse signal of its own.
func handleLine(ctx context.Context, buf *strings.Builder, t *terminal.Terminal, keys *bufio.Reader, tb *sortalg.Table, sig *grammar.Signature, opts runOpts) error {
	if buf.Len() == 0 {
		t.SetPrompt("hocu?- ")
	} else {
		t.SetPrompt("|  ")
	}

	line, err := t.ReadLine()
	if err != nil {
		return err
	}
	buf.WriteString(line)
	buf.WriteByte('\n')

	if !strings.HasSuffix(strings.TrimSpace(line), ".") {
		return nil
	}

	src := buf.String()
	buf.Reset()

	prog, err := grammar.ParseString("<repl>", src)
	if err != nil {
		grammar.ReportParseError(src, err)
		return nil
	}

	for _, decl := range prog.Decls {
		switch {
		case decl.Sig != nil:
			sig.Declare(decl.Sig)
		case decl.Query != nil:
			if err := runQuery(ctx, decl.Query, tb, sig, t, keys, opts); err != nil {
				fmt.Fprintf(t, "%v\r\n", err)
			}
		}
	}
	return nil
}

func runQuery(ctx context.Context, q *grammar.QueryDecl, tb *sortalg.Table, sig *grammar.Signature, t *terminal.Terminal, keys *bufio.Reader, opts runOpts) error {
	left, right, err := sig.BuildQuery(q)
	if err != nil {
		return err
	}

	env := unify.NewEnvironment(tb)
	it, err := unify.NewIterator(env, left, right)
	if err != nil {
		return err
	}
	it.Budget = opts.budget
	if opts.verbose {
		it.Trace = func(ev unify.TraceEvent) {
			fmt.Fprintf(t, "\r\n%s %s", traceKindName(ev.Kind), ev.Step)
		}
	}

	found := 0
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		u, err := it.Next()
		if err != nil {
			if err == unify.ErrNoMoreUnifiers {
				if found == 0 {
					fmt.Fprintf(t, "%t.\r\n", false)
				}
				return nil
			}
			return err
		}
		found++

		lhs := grammar.FormatTerm(u.Apply(left, grammar.LeftNamespace))
		rhs := grammar.FormatTerm(u.Apply(right, grammar.RightNamespace))
		fmt.Fprintf(t, "%s = %s ", lhs, rhs)

		r, _, err := keys.ReadRune()
		if err != nil {
			return err
		}
		if r != ';' {
			r = '.'
		}
		fmt.Fprintf(t, "%s\r\n", string(r))
		if r == '.' {
			return nil
		}
	}
}

func traceKindName(k unify.TraceKind) string {
	switch k {
	case unify.TraceTry:
		return "TRY"
	case unify.TraceCommit:
		return "COMMIT"
	case unify.TraceFail:
		return "FAIL"
	case unify.TraceBacktrack:
		return "BACKTRACK"
	default:
		return "?"
	}
}
