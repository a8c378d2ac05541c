/*
File    : enact/parser/parser_switch.go
*/
package parser

import (
	"github.com/enact-lang/enact/ast"
	"github.com/enact-lang/enact/lexer"
)

// parseSwitchExpr parses `switch value { case pat [when expr] => body; ...
// default => body; }`.
func (par *Parser) parseSwitchExpr() ast.Expr {
	where := par.CurrToken
	par.advance()

	value := par.parseExpression()
	par.consume(lexer.LEFT_BRACE, "expected '{' after switch value")

	var cases []ast.SwitchCase
	for !par.check(lexer.RIGHT_BRACE) && !par.check(lexer.EOF) {
		switch {
		case par.check(lexer.CASE):
			cases = append(cases, par.parseSwitchCase())
		case par.check(lexer.DEFAULT):
			cases = append(cases, par.parseSwitchDefault())
		default:
			panic(par.errorAtCurrent("expected 'case' or 'default' in switch body"))
		}
	}

	par.consume(lexer.RIGHT_BRACE, "expected '}' after switch body")
	return ast.NewSwitchExpr(where, value, cases)
}

// parseSwitchCase parses one `case pat [when expr] => body;` clause.
func (par *Parser) parseSwitchCase() ast.SwitchCase {
	par.advance() // consume 'case'

	pattern := ast.NewValuePattern(par.parseExpression())

	var predicate ast.Expr
	if par.match(lexer.WHEN) {
		predicate = par.parseExpression()
	}

	par.consume(lexer.EQUAL_GREATER, "expected '=>' after switch case pattern")
	body := par.parseCaseBody()
	par.consume(lexer.SEMICOLON, "expected ';' after switch case")

	return ast.SwitchCase{Pattern: pattern, Predicate: predicate, Body: body}
}

// parseSwitchDefault parses the `default => body;` clause, which matches
// unconditionally.
func (par *Parser) parseSwitchDefault() ast.SwitchCase {
	where := par.CurrToken
	par.advance() // consume 'default'

	par.consume(lexer.EQUAL_GREATER, "expected '=>' after 'default'")
	body := par.parseCaseBody()
	par.consume(lexer.SEMICOLON, "expected ';' after switch default")

	return ast.SwitchCase{Pattern: ast.NewWildcardPattern(where), Body: body}
}

// parseCaseBody parses a switch case's body, which is written either as a
// full `{ ... }` block or a single bare expression.
func (par *Parser) parseCaseBody() *ast.BlockExpr {
	if par.check(lexer.LEFT_BRACE) {
		openBrace := par.CurrToken
		par.advance()
		return par.finishBlock(openBrace)
	}

	expr := par.parseExpression()
	return ast.NewBlockExpr(expr.Where(), nil, expr)
}
