/*
File    : enact/parser/parser_struct.go
*/
package parser

import (
	"github.com/enact-lang/enact/ast"
	"github.com/enact-lang/enact/lexer"
)

// parseStructStatement parses `struct name { field: T; ... }`.
func (par *Parser) parseStructStatement() ast.Stmt {
	where := par.CurrToken
	par.advance()

	name := par.consume(lexer.IDENTIFIER, "expected struct name")
	par.consume(lexer.LEFT_BRACE, "expected '{' after struct name")

	var fields []ast.Field
	for !par.check(lexer.RIGHT_BRACE) && !par.check(lexer.EOF) {
		fieldName := par.consume(lexer.IDENTIFIER, "expected field name")
		par.consume(lexer.COLON, "expected ':' after field name")
		fieldType := par.parseTypename(false)
		par.consume(lexer.SEMICOLON, "expected ';' after field declaration")
		fields = append(fields, ast.Field{Name: fieldName, Typename: fieldType})
	}

	par.consume(lexer.RIGHT_BRACE, "expected '}' after struct body")
	return ast.NewStructStmt(where, name, fields)
}
