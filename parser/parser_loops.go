/*
File    : enact/parser/parser_loops.go
*/
package parser

import (
	"github.com/enact-lang/enact/ast"
	"github.com/enact-lang/enact/lexer"
)

// parseWhileExpr parses `while condition { body }`.
func (par *Parser) parseWhileExpr() ast.Expr {
	where := par.CurrToken
	par.advance()

	condition := par.parseExpression()
	body := par.parseBlock()

	return ast.NewWhileExpr(where, condition, body)
}

// parseForExpr parses `for name in iterable { body }`.
func (par *Parser) parseForExpr() ast.Expr {
	where := par.CurrToken
	par.advance()

	name := par.consume(lexer.IDENTIFIER, "expected loop variable name")
	par.consume(lexer.IN, "expected 'in' after for loop variable")
	iterable := par.parseExpression()
	body := par.parseBlock()

	return ast.NewForExpr(where, name, iterable, body)
}
