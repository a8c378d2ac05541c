/*
File    : enact/parser/parser_enum.go
*/
package parser

import (
	"github.com/enact-lang/enact/ast"
	"github.com/enact-lang/enact/lexer"
	"github.com/enact-lang/enact/typename"
)

// parseEnumStatement parses `enum name { variant [T]; ... }`. A variant
// with no payload typename is written bare, just the name followed by
// ';'.
func (par *Parser) parseEnumStatement() ast.Stmt {
	where := par.CurrToken
	par.advance()

	name := par.consume(lexer.IDENTIFIER, "expected enum name")
	par.consume(lexer.LEFT_BRACE, "expected '{' after enum name")

	var variants []ast.EnumVariant
	for !par.check(lexer.RIGHT_BRACE) && !par.check(lexer.EOF) {
		variantName := par.consume(lexer.IDENTIFIER, "expected variant name")

		var payload = par.maybeParseVariantPayload()
		par.consume(lexer.SEMICOLON, "expected ';' after enum variant")
		variants = append(variants, ast.EnumVariant{Name: variantName, Typename: payload})
	}

	par.consume(lexer.RIGHT_BRACE, "expected '}' after enum body")
	return ast.NewEnumStmt(where, name, variants)
}

func (par *Parser) maybeParseVariantPayload() typename.Typename {
	if par.check(lexer.SEMICOLON) {
		return nil
	}
	return par.parseTypename(false)
}
