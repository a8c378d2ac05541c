/*
File    : enact/parser/parser_primary.go
*/
package parser

import (
	"strconv"

	"github.com/enact-lang/enact/ast"
	"github.com/enact-lang/enact/lexer"
)

// parsePrimary parses the tightest-binding expression forms: literals,
// symbol references, parenthesised/tuple/unit expressions, reference
// formation, bare blocks, and the four control expressions.
func (par *Parser) parsePrimary() ast.Expr {
	switch par.CurrToken.Type {
	case lexer.INTEGER:
		return par.parseIntegerLiteral()
	case lexer.FLOAT:
		return par.parseFloatLiteral()
	case lexer.TRUE:
		tok := par.CurrToken
		par.advance()
		return ast.NewBooleanExpr(tok, true)
	case lexer.FALSE:
		tok := par.CurrToken
		par.advance()
		return ast.NewBooleanExpr(tok, false)
	case lexer.STRING:
		tok := par.CurrToken
		par.advance()
		return ast.NewStringExpr(tok, tok.Lexeme)
	case lexer.INTERPOLATION:
		return par.parseInterpolation()
	case lexer.IDENTIFIER:
		tok := par.CurrToken
		par.advance()
		return ast.NewSymbolExpr(tok)
	case lexer.AMPERSAND:
		return par.parseReferenceExpr()
	case lexer.LEFT_PAREN:
		return par.parseParenOrTuple()
	case lexer.LEFT_BRACE:
		return par.parseBlock()
	case lexer.IF:
		return par.parseIfExpr()
	case lexer.WHILE:
		return par.parseWhileExpr()
	case lexer.FOR:
		return par.parseForExpr()
	case lexer.SWITCH:
		return par.parseSwitchExpr()
	default:
		panic(par.errorAtCurrent("expected expression"))
	}
}

func (par *Parser) parseIntegerLiteral() ast.Expr {
	tok := par.CurrToken
	par.advance()
	value, err := strconv.ParseInt(tok.Lexeme, 10, 64)
	if err != nil {
		par.errorAt(tok, "invalid integer literal")
		value = 0
	}
	return ast.NewIntegerExpr(tok, value)
}

func (par *Parser) parseFloatLiteral() ast.Expr {
	tok := par.CurrToken
	par.advance()
	value, err := strconv.ParseFloat(tok.Lexeme, 64)
	if err != nil {
		par.errorAt(tok, "invalid float literal")
		value = 0
	}
	return ast.NewFloatExpr(tok, value)
}

// parseReferenceExpr parses `&[imm|mut]? [so|rc|gc]? referent`.
func (par *Parser) parseReferenceExpr() ast.Expr {
	where := par.CurrToken
	par.advance()

	var permission, region lexer.Token
	if par.check(lexer.IMM) || par.check(lexer.MUT) {
		permission = par.CurrToken
		par.advance()
	}
	if par.check(lexer.SO) || par.check(lexer.RC) || par.check(lexer.GC) {
		region = par.CurrToken
		par.advance()
	}

	referent := par.parseCall()
	return ast.NewReferenceExpr(where, permission, region, referent)
}

// parseParenOrTuple parses `()` (unit), `(expr)` (grouping, collapses to
// expr), and `(expr, expr, ...)` (tuple, two or more elements).
func (par *Parser) parseParenOrTuple() ast.Expr {
	where := par.CurrToken
	par.advance()

	if par.check(lexer.RIGHT_PAREN) {
		par.advance()
		return ast.NewUnitExpr(where)
	}

	first := par.parseExpression()
	if par.check(lexer.COMMA) {
		elements := []ast.Expr{first}
		for par.match(lexer.COMMA) {
			elements = append(elements, par.parseExpression())
		}
		par.consume(lexer.RIGHT_PAREN, "expected ')' after tuple")
		return ast.NewTupleExpr(where, elements)
	}

	par.consume(lexer.RIGHT_PAREN, "expected ')' after expression")
	return first
}
