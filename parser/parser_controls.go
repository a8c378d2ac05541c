/*
File    : enact/parser/parser_controls.go
*/
package parser

import (
	"github.com/enact-lang/enact/ast"
	"github.com/enact-lang/enact/lexer"
)

// parseReturnStatement parses `return [expr];`. A bare `return;` returns
// unit.
func (par *Parser) parseReturnStatement() ast.Stmt {
	where := par.CurrToken
	par.advance()

	var value ast.Expr
	if par.check(lexer.SEMICOLON) {
		value = ast.NewUnitExpr(where)
	} else {
		value = par.parseExpression()
	}

	par.consume(lexer.SEMICOLON, "expected ';' after return value")
	return ast.NewReturnStmt(where, value)
}

// parseBreakStatement parses `break [expr];`. A bare `break;` carries
// unit.
func (par *Parser) parseBreakStatement() ast.Stmt {
	where := par.CurrToken
	par.advance()

	var value ast.Expr
	if par.check(lexer.SEMICOLON) {
		value = ast.NewUnitExpr(where)
	} else {
		value = par.parseExpression()
	}

	par.consume(lexer.SEMICOLON, "expected ';' after break value")
	return ast.NewBreakStmt(where, value)
}

// parseContinueStatement parses `continue;`.
func (par *Parser) parseContinueStatement() ast.Stmt {
	where := par.CurrToken
	par.advance()
	par.consume(lexer.SEMICOLON, "expected ';' after continue")
	return ast.NewContinueStmt(where)
}
