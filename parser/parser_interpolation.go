/*
File    : enact/parser/parser_interpolation.go
*/
package parser

import (
	"github.com/enact-lang/enact/ast"
	"github.com/enact-lang/enact/lexer"
)

// parseInterpolation parses one link of a string-interpolation chain.
// The lexer has already done the hard part: an INTERPOLATION token's
// lexeme is the string fragment leading up to `\(`, and once the
// embedded expression finishes, the lexer resumes string scanning on its
// own (no RIGHT_PAREN token appears) and hands back either another
// INTERPOLATION token (another `\(` followed) or a terminal STRING token
// closing the literal.
func (par *Parser) parseInterpolation() ast.Expr {
	where := par.CurrToken
	start := ast.NewStringExpr(where, where.Lexeme)
	par.advance()

	interpolated := par.parseExpression()

	switch par.CurrToken.Type {
	case lexer.INTERPOLATION:
		end := par.parseInterpolation()
		return ast.NewInterpolationExpr(where, start, interpolated, end)
	case lexer.STRING:
		tok := par.CurrToken
		par.advance()
		end := ast.NewStringExpr(tok, tok.Lexeme)
		return ast.NewInterpolationExpr(where, start, interpolated, end)
	default:
		panic(par.errorAtCurrent("unterminated string interpolation"))
	}
}
