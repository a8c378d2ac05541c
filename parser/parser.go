/*
File    : enact/parser/parser.go
*/

// Package parser implements a recursive-descent parser for Enact source
// code, Pratt-style where the grammar calls for operator precedence. It
// converts a stream of lexer.Tokens into an ast.Module: statements by
// recursive descent, expressions by an explicit precedence ladder
// (assignment down through primary).
//
// Like the teacher's parser, this one does not stop at the first
// problem: syntax errors are reported into a diag.Context and parsing
// continues from a synchronisation point, so a single run surfaces every
// independent error it can find. A malformed production unwinds with a
// plain Go panic/recover pair carrying the unexported parseError
// sentinel — the same unwind-to-statement-boundary shape the original
// compiler gets from C++ exceptions — and that panic never escapes this
// package.
package parser

import (
	"github.com/enact-lang/enact/ast"
	"github.com/enact-lang/enact/diag"
	"github.com/enact-lang/enact/lexer"
)

// parseError is panicked to unwind a malformed production back to the
// nearest statement boundary. It carries no data: the diagnostic is
// reported via errorAt before the panic.
type parseError struct{}

// Parser holds parsing state: a two-token lookahead over the lexer
// stream (CurrToken, NextToken, in the teacher's naming), and the
// diagnostics context errors are reported into.
type Parser struct {
	Lex       lexer.Lexer
	CurrToken lexer.Token
	NextToken lexer.Token

	Ctx *diag.Context
}

// NewParser creates a Parser over src, primed with the first two tokens.
func NewParser(src string) *Parser {
	par := &Parser{
		Lex: lexer.NewLexer(src),
		Ctx: diag.NewContext(src),
	}
	par.advance()
	par.advance()
	return par
}

// advance shifts the lookahead window forward by one token, skipping (and
// reporting) any ERROR tokens the lexer produces along the way.
func (par *Parser) advance() {
	par.CurrToken = par.NextToken

	for {
		par.NextToken = par.Lex.NextToken()
		if par.NextToken.Type != lexer.ERROR {
			break
		}
		par.Ctx.Report(diag.LexError, par.NextToken, par.NextToken.Lexeme)
	}
}

// check reports whether CurrToken has the given type, without consuming
// it.
func (par *Parser) check(tokType lexer.TokenType) bool {
	return par.CurrToken.Type == tokType
}

// checkNext reports whether NextToken has the given type, without
// consuming anything.
func (par *Parser) checkNext(tokType lexer.TokenType) bool {
	return par.NextToken.Type == tokType
}

// match advances and returns true if CurrToken has one of the given
// types; otherwise it leaves the parser untouched.
func (par *Parser) match(tokTypes ...lexer.TokenType) bool {
	for _, tokType := range tokTypes {
		if par.check(tokType) {
			par.advance()
			return true
		}
	}
	return false
}

// consume advances past CurrToken if it has the expected type, and
// otherwise reports a syntax error and panics with parseError.
func (par *Parser) consume(tokType lexer.TokenType, message string) lexer.Token {
	if par.check(tokType) {
		tok := par.CurrToken
		par.advance()
		return tok
	}
	panic(par.errorAtCurrent(message))
}

// errorAtCurrent reports a syntax error at CurrToken.
func (par *Parser) errorAtCurrent(message string) parseError {
	return par.errorAt(par.CurrToken, message)
}

// errorAt reports a syntax error at the given token and returns the
// sentinel for the caller to panic with.
func (par *Parser) errorAt(token lexer.Token, message string) parseError {
	par.Ctx.Report(diag.SyntaxError, token, message)
	return parseError{}
}

// HasErrors reports whether any diagnostic has been recorded so far.
func (par *Parser) HasErrors() bool {
	return par.Ctx.HadError()
}

// recoverySet is the token-type set synchronise() scans for: the leading
// token of every statement-starting keyword, so one malformed statement
// doesn't cascade errors into the next.
var recoverySet = map[lexer.TokenType]bool{
	lexer.ENUM:   true,
	lexer.FOR:    true,
	lexer.FUNC:   true,
	lexer.IMM:    true,
	lexer.IMPL:   true,
	lexer.MUT:    true,
	lexer.STRUCT: true,
	lexer.TRAIT:  true,
}

// synchronise discards tokens until one looks like the start of a fresh
// statement.
func (par *Parser) synchronise() {
	par.advance()
	for !par.check(lexer.EOF) {
		if recoverySet[par.CurrToken.Type] {
			return
		}
		par.advance()
	}
}

// Parse consumes the entire token stream and returns the resulting
// Module. Malformed statements are skipped (after resynchronising)
// instead of aborting the parse; check Ctx.HadError() afterwards.
func (par *Parser) Parse() *ast.Module {
	module := &ast.Module{}

	for !par.check(lexer.EOF) {
		if stmt := par.parseStatement(); stmt != nil {
			module.Statements = append(module.Statements, stmt)
		}
	}

	return module
}

// parseStatement parses one top-level or block-level statement, catching
// a parseError panic from anywhere below it and resynchronising so the
// caller's loop can continue.
func (par *Parser) parseStatement() (stmt ast.Stmt) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(parseError); ok {
				par.synchronise()
				stmt = nil
				return
			}
			panic(r)
		}
	}()

	return par.parseDeclaration()
}

// parseDeclaration dispatches on CurrToken to the statement production it
// introduces, falling back to a bare expression statement.
func (par *Parser) parseDeclaration() ast.Stmt {
	switch par.CurrToken.Type {
	case lexer.FUNC:
		return par.parseFunctionStatement()
	case lexer.STRUCT:
		return par.parseStructStatement()
	case lexer.ENUM:
		return par.parseEnumStatement()
	case lexer.TRAIT:
		return par.parseTraitStatement()
	case lexer.IMPL:
		return par.parseImplStatement()
	case lexer.IMM, lexer.MUT:
		return par.parseVariableStatement()
	case lexer.RETURN:
		return par.parseReturnStatement()
	case lexer.BREAK:
		return par.parseBreakStatement()
	case lexer.CONTINUE:
		return par.parseContinueStatement()
	default:
		return par.parseExpressionStatement()
	}
}
