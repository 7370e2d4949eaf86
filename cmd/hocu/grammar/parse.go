package grammar

import (
	"fmt"
	"strings"
	"sync"

	"github.com/alecthomas/participle/v2"
	"github.com/fatih/color"
)

var (
	parserOnce sync.Once
	parser     *participle.Parser[Program]
	parserErr  error
)

func build() (*participle.Parser[Program], error) {
	parserOnce.Do(func() {
		parser, parserErr = participle.Build[Program](
			participle.Lexer(Lexer),
			participle.Elide("Whitespace", "Comment"),
			participle.UseLookahead(2),
		)
	})
	return parser, parserErr
}

// ParseString parses one hocu source buffer (a whole batch file, or
// everything typed into the REPL so far) into a Program.
func ParseString(filename, src string) (*Program, error) {
	p, err := build()
	if err != nil {
		return nil, fmt.Errorf("grammar: building parser: %w", err)
	}
	return p.ParseString(filename, src)
}

// ReportParseError prints a caret-annotated diagnostic for err, in the
// style of kanso's grammar.reportParseError and
// internal/errors.ErrorReporter: red for the message, a source line,
// and a caret under the offending column.
func ReportParseError(src string, err error) {
	pe, ok := err.(participle.Error)
	if !ok {
		color.Red("hocu: %s", err)
		return
	}

	pos := pe.Position()
	lines := strings.Split(src, "\n")
	if pos.Line <= 0 || pos.Line > len(lines) {
		color.Red("hocu: syntax error at unknown location: %s", err)
		return
	}

	line := lines[pos.Line-1]
	caret := strings.Repeat(" ", max(0, pos.Column-1)) + "^"

	color.Red("syntax error at line %d, column %d:", pos.Line, pos.Column)
	fmt.Println(line)
	color.New(color.FgRed, color.Bold).Println(caret)
	fmt.Printf("  %s\n", pe.Message())
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
