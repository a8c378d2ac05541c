/*
File    : enact/repl/repl.go
*/

// Package repl implements an interactive front end for Enact: a Read-
// Check-Print loop. There is no evaluator in this build — Enact's
// front end stops at semantic analysis — so the REPL's job is to run
// each line's accumulated source through the lexer, parser, and both
// sema passes, and report either the diagnostics it produced or the
// resolved type of whatever was just declared.
//
// Line-at-a-time incremental analysis is not implemented (incremental
// recompilation is out of scope for this front end): each Readline is
// appended to a running buffer and the whole buffer is re-analyzed from
// scratch, so a function or struct declared on one line is visible to
// every line after it, at the cost of redoing work already done. That
// tradeoff is fine for an interactive session; it would not be for a
// build.
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/enact-lang/enact/ast"
	"github.com/enact-lang/enact/diag"
	"github.com/enact-lang/enact/parser"
	"github.com/enact-lang/enact/sema"
	"github.com/fatih/color"
)

// Color definitions for REPL output.
var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl represents the Read-Check-Print Loop instance.
type Repl struct {
	Banner  string // ASCII art banner displayed at startup
	Version string // Version string
	Author  string // Author contact information
	Line    string // Separator line for visual formatting
	License string // Software license information
	Prompt  string // Command prompt shown to the user (e.g., "enact >>> ")
}

// NewRepl creates and initializes a new REPL instance.
func NewRepl(banner string, version string, author string, line string, license string, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt}
}

// PrintBannerInfo displays the welcome banner and usage instructions.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Welcome to Enact!")
	cyanColor.Fprintf(writer, "%s\n", "Type a declaration or expression and press enter.")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' to quit, '.reset' to clear accumulated source.")
	cyanColor.Fprintf(writer, "%s\n", "Use up/down arrows to navigate command history.")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start begins the REPL main loop: display the banner, read lines via
// readline (history, editing), and check each one against the running
// source buffer until the user exits.
func (r *Repl) Start(reader io.Reader, writer io.Writer) {
	r.PrintBannerInfo(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	var buffer strings.Builder

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		line = strings.Trim(line, " \n\t\r")
		if line == "" {
			continue
		}
		if line == ".exit" {
			writer.Write([]byte("Good Bye!\n"))
			break
		}
		if line == ".reset" {
			buffer.Reset()
			cyanColor.Fprintf(writer, "%s\n", "Buffer cleared.")
			continue
		}

		rl.SaveHistory(line)
		r.checkWithRecovery(writer, &buffer, line)
	}
}

// checkWithRecovery appends line to buffer and runs the full front-end
// pipeline over the result, displaying diagnostics or the type of
// line's own statement. A panic anywhere in the pipeline (a malformed
// AST shape the analyzer didn't expect) is reported and the buffer is
// rolled back to its state before line, so one bad line doesn't wedge
// the session.
func (r *Repl) checkWithRecovery(writer io.Writer, buffer *strings.Builder, line string) {
	before := buffer.String()

	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(writer, "[INTERNAL ERROR] %v\n", recovered)
			buffer.Reset()
			buffer.WriteString(before)
		}
	}()

	buffer.WriteString(line)
	buffer.WriteString("\n")
	source := buffer.String()

	par := parser.NewParser(source)
	module := par.Parse()

	if par.HasErrors() {
		printDiagnostics(writer, par.Ctx)
		buffer.Reset()
		buffer.WriteString(before)
		return
	}

	s := sema.Analyze(par.Ctx, module)
	if par.Ctx.HadError() {
		printDiagnostics(writer, par.Ctx)
		buffer.Reset()
		buffer.WriteString(before)
		return
	}

	greenColor.Fprintf(writer, "ok")
	if t := lastResultType(s, module); t != "" {
		yellowColor.Fprintf(writer, "  :: %s", t)
	}
	writer.Write([]byte("\n"))
}

// printDiagnostics renders every diagnostic reported since the last
// accepted line, in red.
func printDiagnostics(writer io.Writer, ctx *diag.Context) {
	for _, d := range ctx.Diagnostics {
		redColor.Fprintf(writer, "%s", ctx.Format(d))
	}
}

// lastResultType reports the type most relevant to the line just
// entered: the expression's type for a bare expression statement, or
// the declared/inferred type of a variable just bound. Returns "" for
// statements (struct/trait/func/impl declarations) with no single type
// worth printing.
func lastResultType(s *sema.Sema, module *ast.Module) string {
	if len(module.Statements) == 0 {
		return ""
	}
	switch st := module.Statements[len(module.Statements)-1].(type) {
	case *ast.ExpressionStmt:
		if st.Expression != nil && st.Expression.Type() != nil {
			return st.Expression.Type().String()
		}
	case *ast.VariableStmt:
		if info, ok := s.VariableDeclared(st.Name.Lexeme); ok && info.Type != nil {
			return info.Type.String()
		}
	}
	return ""
}
