/*
File    : enact/parser/parser_impl.go
*/
package parser

import (
	"github.com/enact-lang/enact/ast"
	"github.com/enact-lang/enact/lexer"
)

// parseImplStatement parses both impl forms, `impl T { ... }` (inherent)
// and `impl Trait for T { ... }` (trait impl), re-associating the trait
// form into (implementing, trait) order regardless of which order the
// surface syntax wrote them in.
func (par *Parser) parseImplStatement() ast.Stmt {
	where := par.CurrToken
	par.advance()

	first := par.parseTypename(false)

	var implementing = first
	var trait = first
	hasTrait := par.match(lexer.FOR)
	if hasTrait {
		implementing = par.parseTypename(false)
	}

	par.consume(lexer.LEFT_BRACE, "expected '{' after impl target")

	var methods []*ast.FunctionStmt
	for !par.check(lexer.RIGHT_BRACE) && !par.check(lexer.EOF) {
		if !par.check(lexer.FUNC) {
			panic(par.errorAtCurrent("expected method declaration inside impl body"))
		}
		methods = append(methods, par.parseFunctionStatement().(*ast.FunctionStmt))
	}

	par.consume(lexer.RIGHT_BRACE, "expected '}' after impl body")

	if !hasTrait {
		return ast.NewImplStmt(where, implementing, nil, methods)
	}
	return ast.NewImplStmt(where, implementing, trait, methods)
}
