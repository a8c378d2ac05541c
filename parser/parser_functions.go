/*
File    : enact/parser/parser_functions.go
*/
package parser

import (
	"github.com/enact-lang/enact/ast"
	"github.com/enact-lang/enact/lexer"
)

// parseFunctionStatement parses a full function declaration:
// `func name(p: T, ...) R { body }`.
func (par *Parser) parseFunctionStatement() ast.Stmt {
	return par.parseFunctionDecl(false)
}

// parseTraitMethod parses a function declaration inside a trait body,
// where the body is replaced by a terminating ';'.
func (par *Parser) parseTraitMethod() *ast.FunctionStmt {
	return par.parseFunctionDecl(true).(*ast.FunctionStmt)
}

// parseFunctionDecl is the shared core for both forms. allowNoBody
// permits `;` in place of `{ ... }`, for trait method signatures.
func (par *Parser) parseFunctionDecl(allowNoBody bool) ast.Stmt {
	where := par.CurrToken
	par.advance()

	name := par.consume(lexer.IDENTIFIER, "expected function name")
	params := par.parseParamList()

	// The return typename is parsed below the function-typename level, so
	// a following `=>` starts an arrow body; a function-typed return type
	// is written in parentheses: `func f() (int => int) { ... }`.
	var returnTypename = par.parseUnaryTypename(true)

	if allowNoBody && par.check(lexer.SEMICOLON) {
		par.advance()
		return ast.NewFunctionStmt(where, name, params, returnTypename, nil)
	}

	body := par.parseBlock()
	return ast.NewFunctionStmt(where, name, params, returnTypename, body)
}

// parseParamList parses `(name: T, name: T, ...)`, enforcing the same
// 255-element limit as call argument lists.
func (par *Parser) parseParamList() []ast.Param {
	par.consume(lexer.LEFT_PAREN, "expected '(' after function name")

	var params []ast.Param
	if !par.check(lexer.RIGHT_PAREN) {
		for {
			if len(params) >= maxArguments {
				par.errorAtCurrent("can't have more than 255 parameters")
			}
			name := par.consume(lexer.IDENTIFIER, "expected parameter name")
			par.consume(lexer.COLON, "expected ':' after parameter name")
			typeName := par.parseTypename(false)
			params = append(params, ast.Param{Name: name, Typename: typeName})

			if !par.match(lexer.COMMA) {
				break
			}
		}
	}

	par.consume(lexer.RIGHT_PAREN, "expected ')' after parameters")
	return params
}
