/*
File    : enact/diag/diag.go
*/

// Package diag collects and formats compiler diagnostics. Every stage —
// lexer, parser, SemaDecls, SemaDefs — reports into a shared Context
// instead of stopping at the first problem, so a single run can surface
// every independent error it finds.
package diag

import (
	"fmt"
	"strings"

	"github.com/enact-lang/enact/lexer"
)

// Kind classifies a Diagnostic by which phase/rule raised it.
type Kind int

const (
	LexError Kind = iota
	SyntaxError
	NameError
	TypeError
	TraitNotSatisfied
	FlowError
	ImmutabilityError
)

func (k Kind) String() string {
	switch k {
	case LexError:
		return "LexError"
	case SyntaxError:
		return "SyntaxError"
	case NameError:
		return "NameError"
	case TypeError:
		return "TypeError"
	case TraitNotSatisfied:
		return "TraitNotSatisfied"
	case FlowError:
		return "FlowError"
	case ImmutabilityError:
		return "ImmutabilityError"
	default:
		return "Error"
	}
}

// Diagnostic is a single reported problem, anchored to the token that
// triggered it.
type Diagnostic struct {
	Kind    Kind
	Token   lexer.Token
	Message string
}

// Context holds the source being compiled and accumulates diagnostics
// against it. A Context is shared across the lexer, parser and sema
// stages of one compile.
type Context struct {
	Source      string
	Diagnostics []Diagnostic
}

// NewContext creates a Context over source, ready to accept diagnostics.
func NewContext(source string) *Context {
	return &Context{Source: source}
}

// Report records a diagnostic of the given kind, anchored at token.
func (c *Context) Report(kind Kind, token lexer.Token, message string) {
	c.Diagnostics = append(c.Diagnostics, Diagnostic{Kind: kind, Token: token, Message: message})
}

// HadError reports whether any diagnostic has been recorded.
func (c *Context) HadError() bool {
	return len(c.Diagnostics) > 0
}

// SourceLine returns the 1-indexed line of Source, or "" past the end.
func (c *Context) SourceLine(line int) string {
	lineNumber := 1
	for _, l := range strings.Split(c.Source, "\n") {
		if lineNumber == line {
			return l
		}
		lineNumber++
	}
	return ""
}

// Format renders a diagnostic in the teacher's line/caret style: a
// "[line L] Kind at 'lexeme':" header, the offending source line, and a
// caret run underlining the lexeme, followed by the message.
func (c *Context) Format(d Diagnostic) string {
	var b strings.Builder
	fmt.Fprintf(&b, "[line %d] %s", d.Token.Line, d.Kind)

	if d.Token.IsAtEnd() {
		fmt.Fprintf(&b, " at end: %s\n\n", d.Message)
		return b.String()
	}

	if d.Token.Type == lexer.ERROR {
		b.WriteString(":\n")
	} else if d.Token.Lexeme == "\n" {
		b.WriteString(" at newline:\n")
	} else {
		fmt.Fprintf(&b, " at '%s':\n", d.Token.Lexeme)
	}

	line := d.Token.Line
	if d.Token.Lexeme == "\n" {
		line--
	}
	b.WriteString("    ")
	b.WriteString(c.SourceLine(line))
	b.WriteString("\n    ")

	col := d.Token.Column
	if col < 1 {
		col = 1
	}
	b.WriteString(strings.Repeat(" ", col-1))
	b.WriteString(strings.Repeat("^", maxInt(1, len(d.Token.Lexeme))))
	b.WriteString("\n")
	b.WriteString(d.Message)
	b.WriteString("\n\n")

	return b.String()
}

// FormatAll renders every recorded diagnostic in order.
func (c *Context) FormatAll() string {
	var b strings.Builder
	for _, d := range c.Diagnostics {
		b.WriteString(c.Format(d))
	}
	return b.String()
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
