/*
File    : enact/parser/parser_trait.go
*/
package parser

import (
	"github.com/enact-lang/enact/ast"
	"github.com/enact-lang/enact/lexer"
)

// parseTraitStatement parses `trait name { func method(params) R; ... }`.
// Each method signature is parsed in trait-method mode, where a ';'
// substitutes for a body.
func (par *Parser) parseTraitStatement() ast.Stmt {
	where := par.CurrToken
	par.advance()

	name := par.consume(lexer.IDENTIFIER, "expected trait name")
	par.consume(lexer.LEFT_BRACE, "expected '{' after trait name")

	var methods []*ast.FunctionStmt
	for !par.check(lexer.RIGHT_BRACE) && !par.check(lexer.EOF) {
		if !par.check(lexer.FUNC) {
			panic(par.errorAtCurrent("expected method signature inside trait body"))
		}
		methods = append(methods, par.parseTraitMethod())
	}

	par.consume(lexer.RIGHT_BRACE, "expected '}' after trait body")
	return ast.NewTraitStmt(where, name, methods)
}
