/*
File    : enact/main/main.go
*/

// Package main is the entry point for the Enact compiler front end. It
// supports two modes:
//  1. No argument: an interactive prompt, one line at a time.
//  2. One argument: a file path, read whole and compiled once.
//
// There is no VM in this build, so "compile" means running source
// through the lexer, the parser, and both sema passes, then reporting
// whatever diagnostics came out the other end.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/enact-lang/enact/astdump"
	"github.com/enact-lang/enact/diag"
	"github.com/enact-lang/enact/parser"
	"github.com/enact-lang/enact/repl"
	"github.com/enact-lang/enact/sema"
	"github.com/fatih/color"
)

const (
	exitSuccess       = 0
	exitUsageError    = 65
	exitFileError     = 70
	exitCompileError  = 75
	exitAnalysisError = 76
)

// VERSION is the current version of the Enact front end.
var VERSION = "v0.1.0"

// AUTHOR is shown by --version.
var AUTHOR = "the Enact project"

// LICENSE is shown by --version.
var LICENSE = "MIT"

// PROMPT is the prompt shown in interactive mode.
var PROMPT = "enact > "

// BANNER is the ASCII logo shown when the readline-backed REPL starts.
var BANNER = `
  ▄████▄   ▄▄▄       ▄████▄  ▄▄▄█████▓
 ▒██▀ ▀█  ▒████▄    ▒██▀ ▀█  ▓  ██▒ ▓▒
 ▒▓█    ▄ ▒██  ▀█▄  ▒▓█    ▄ ▒ ▓██░ ▒░
 ▒▓▓▄ ▄██▒░██▄▄▄▄██ ▒▓▓▄ ▄██▒░ ▓██▓ ░
 ▒ ▓███▀ ░ ▓█   ▓██▒▒ ▓███▀ ░  ▒██▒ ░
`

// LINE is a separator line used for visual formatting in the REPL.
var LINE = "----------------------------------------------------------------"

var (
	redColor  = color.New(color.FgRed)
	cyanColor = color.New(color.FgCyan)
)

// debugFlags mirrors the set of `--debug-…` flags the front end
// recognizes; only print-ast has an observable effect in a front end
// with no VM to disassemble or trace.
type debugFlags struct {
	printAST         bool
	disassembleChunk bool
	traceExecution   bool
	stressGC         bool
	logGC            bool
}

func (d *debugFlags) enableAll() {
	d.printAST = true
	d.disassembleChunk = true
	d.traceExecution = true
	d.stressGC = true
	d.logGC = true
}

func main() {
	args := os.Args[1:]

	var flags debugFlags
	var positional []string

	for _, arg := range args {
		switch arg {
		case "--help", "-h":
			showHelp()
			os.Exit(exitSuccess)
		case "--version", "-v":
			showVersion()
			os.Exit(exitSuccess)
		case "--debug":
			flags.enableAll()
		case "--debug-print-ast":
			flags.printAST = true
		case "--debug-disassemble-chunk":
			flags.disassembleChunk = true
		case "--debug-trace-execution":
			flags.traceExecution = true
		case "--debug-stress-gc":
			flags.stressGC = true
		case "--debug-log-gc":
			flags.logGC = true
		default:
			if strings.HasPrefix(arg, "-") {
				redColor.Fprintf(os.Stderr, "[USAGE ERROR] unknown flag '%s'\n", arg)
				os.Exit(exitUsageError)
			}
			positional = append(positional, arg)
		}
	}

	if len(positional) > 1 {
		redColor.Fprintf(os.Stderr, "[USAGE ERROR] expected at most one file argument, got %d\n", len(positional))
		os.Exit(exitUsageError)
	}

	if len(positional) == 1 {
		os.Exit(runFile(positional[0], flags))
	}
	runPrompt(flags)
}

func showHelp() {
	cyanColor.Println("Enact - a statically-typed, expression-oriented language (front end)")
	cyanColor.Println("")
	cyanColor.Println("USAGE:")
	fmt.Println("  enact                         Start the interactive prompt")
	fmt.Println("  enact <path-to-file>          Compile a single Enact source file")
	fmt.Println("  enact --debug-print-ast ...    Print the parsed AST before analysis")
	fmt.Println("  enact --debug                 Enable every --debug-… flag")
	fmt.Println("  enact --help                  Display this help message")
	fmt.Println("  enact --version               Display version information")
}

func showVersion() {
	fmt.Printf("Enact %s (%s, %s)\n", VERSION, LICENSE, AUTHOR)
}

// runPrompt starts the readline-backed interactive front end (see the
// repl package): one line at a time, accumulated into a running
// compilation unit, diagnostics printed after every line.
func runPrompt(flags debugFlags) {
	// The interactive prompt has no VM phases to trace or disassemble;
	// only --debug-print-ast would have an effect here, and the repl
	// package already shows a line's resolved type on success, which
	// serves the same purpose interactively.
	repler := repl.NewRepl(BANNER, VERSION, AUTHOR, LINE, LICENSE, PROMPT)
	repler.Start(os.Stdin, os.Stdout)
}

// runFile reads path whole, compiles it, and returns the process exit
// code the run should use.
func runFile(path string, flags debugFlags) int {
	source, err := os.ReadFile(path)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[FILE ERROR] could not read '%s': %v\n", path, err)
		return exitFileError
	}

	par := parser.NewParser(string(source))
	module := par.Parse()

	if par.HasErrors() {
		printDiagnostics(par.Ctx)
		return exitCompileError
	}

	if flags.printAST {
		astdump.Fprint(os.Stdout, module)
	}

	sema.Analyze(par.Ctx, module)
	if par.Ctx.HadError() {
		printDiagnostics(par.Ctx)
		return exitAnalysisError
	}

	return exitSuccess
}

func printDiagnostics(ctx *diag.Context) {
	for _, d := range ctx.Diagnostics {
		redColor.Fprint(os.Stderr, ctx.Format(d))
	}
}

