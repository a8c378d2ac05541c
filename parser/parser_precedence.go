/*
File    : enact/parser/parser_precedence.go
*/
package parser

import "github.com/enact-lang/enact/ast"
import "github.com/enact-lang/enact/lexer"

// Expression precedence, loosest to tightest binding. Each level is a
// function that parses its operand by calling the next-tighter level,
// then loops while it sees an operator belonging to its own level.
//
//  1. assignment        =              (right-associative)
//  2. logical or        or
//  3. logical and       and
//  4. equality          == !=
//  5. comparison        < <= > >=
//  6. cast              as is
//  7. range             .. ...
//  8. bitwise or        |
//  9. bitwise xor       ^
//  10. bitwise and      &
//  11. additive         + -
//  12. multiplicative   * /
//  13. shift            << >>
//  14. unary            - ~ not        (prefix)
//  15. call/field       ( ) .          (postfix)
//  16. primary          literals, identifiers, ( ), &, if/while/for/switch/block
//
// parseExpression is the entry point; everything above feeds into it.
func (par *Parser) parseExpression() ast.Expr {
	return par.parseAssignment()
}

// parseAssignment is right-associative: `a = b = c` parses as
// `a = (b = c)`.
func (par *Parser) parseAssignment() ast.Expr {
	target := par.parseLogicalOr()

	if par.check(lexer.EQUAL) {
		op := par.CurrToken
		par.advance()
		value := par.parseAssignment()
		return ast.NewAssignExpr(target, value, op)
	}

	return target
}

func (par *Parser) parseLogicalOr() ast.Expr {
	left := par.parseLogicalAnd()
	for par.check(lexer.OR) {
		op := par.CurrToken
		par.advance()
		right := par.parseLogicalAnd()
		left = ast.NewLogicalExpr(left, right, op)
	}
	return left
}

func (par *Parser) parseLogicalAnd() ast.Expr {
	left := par.parseEquality()
	for par.check(lexer.AND) {
		op := par.CurrToken
		par.advance()
		right := par.parseEquality()
		left = ast.NewLogicalExpr(left, right, op)
	}
	return left
}

func (par *Parser) parseEquality() ast.Expr {
	left := par.parseComparison()
	for par.check(lexer.EQUAL_EQUAL) || par.check(lexer.BANG_EQUAL) {
		op := par.CurrToken
		par.advance()
		right := par.parseComparison()
		left = ast.NewBinaryExpr(left, right, op)
	}
	return left
}

func (par *Parser) parseComparison() ast.Expr {
	left := par.parseCast()
	for par.check(lexer.LESS) || par.check(lexer.LESS_EQUAL) || par.check(lexer.GREATER) || par.check(lexer.GREATER_EQUAL) {
		op := par.CurrToken
		par.advance()
		right := par.parseCast()
		left = ast.NewBinaryExpr(left, right, op)
	}
	return left
}

// parseCast handles `value as Typename` and `value is Typename`, and
// allows chaining (`x as Int is Float`) by looping.
func (par *Parser) parseCast() ast.Expr {
	left := par.parseRange()
	for par.check(lexer.AS) || par.check(lexer.IS) {
		op := par.CurrToken
		par.advance()
		typeName := par.parseTypename(false)
		left = ast.NewCastExpr(left, op, typeName)
	}
	return left
}

// parseRange handles `a..b` (exclusive) and `a...b` (inclusive). Ranges
// don't chain, so this is a single optional application rather than a
// loop.
func (par *Parser) parseRange() ast.Expr {
	left := par.parseBitwiseOr()
	if par.check(lexer.DOT_DOT) || par.check(lexer.DOT_DOT_DOT) {
		op := par.CurrToken
		par.advance()
		right := par.parseBitwiseOr()
		return ast.NewBinaryExpr(left, right, op)
	}
	return left
}

func (par *Parser) parseBitwiseOr() ast.Expr {
	left := par.parseBitwiseXor()
	for par.check(lexer.PIPE) {
		op := par.CurrToken
		par.advance()
		right := par.parseBitwiseXor()
		left = ast.NewBinaryExpr(left, right, op)
	}
	return left
}

func (par *Parser) parseBitwiseXor() ast.Expr {
	left := par.parseBitwiseAnd()
	for par.check(lexer.CARAT) {
		op := par.CurrToken
		par.advance()
		right := par.parseBitwiseAnd()
		left = ast.NewBinaryExpr(left, right, op)
	}
	return left
}

func (par *Parser) parseBitwiseAnd() ast.Expr {
	left := par.parseAdditive()
	for par.check(lexer.AMPERSAND) {
		op := par.CurrToken
		par.advance()
		right := par.parseAdditive()
		left = ast.NewBinaryExpr(left, right, op)
	}
	return left
}

func (par *Parser) parseAdditive() ast.Expr {
	left := par.parseMultiplicative()
	for par.check(lexer.PLUS) || par.check(lexer.MINUS) {
		op := par.CurrToken
		par.advance()
		right := par.parseMultiplicative()
		left = ast.NewBinaryExpr(left, right, op)
	}
	return left
}

func (par *Parser) parseMultiplicative() ast.Expr {
	left := par.parseShift()
	for par.check(lexer.STAR) || par.check(lexer.SLASH) {
		op := par.CurrToken
		par.advance()
		right := par.parseShift()
		left = ast.NewBinaryExpr(left, right, op)
	}
	return left
}

func (par *Parser) parseShift() ast.Expr {
	left := par.parseUnary()
	for par.check(lexer.LESS_LESS) || par.check(lexer.GREATER_GREATER) {
		op := par.CurrToken
		par.advance()
		right := par.parseUnary()
		left = ast.NewBinaryExpr(left, right, op)
	}
	return left
}

// parseUnary handles prefix `-`, `~`, and `not`, recursing on itself so
// `- -x` and `not not x` both parse.
func (par *Parser) parseUnary() ast.Expr {
	if par.check(lexer.MINUS) || par.check(lexer.TILDE) || par.check(lexer.NOT) {
		op := par.CurrToken
		par.advance()
		operand := par.parseUnary()
		return ast.NewUnaryExpr(operand, op)
	}
	return par.parseCall()
}

// parseCall handles the postfix chain of calls and field accesses that
// can follow a primary expression: `f(x).field(y)`.
func (par *Parser) parseCall() ast.Expr {
	expr := par.parsePrimary()

	for {
		switch {
		case par.check(lexer.LEFT_PAREN):
			expr = par.finishCall(expr)
		case par.check(lexer.DOT):
			op := par.CurrToken
			par.advance()
			name := par.consume(lexer.IDENTIFIER, "expected field or method name after '.'")
			expr = ast.NewFieldExpr(expr, name, op)
		default:
			return expr
		}
	}
}

// maxArguments is the limit on a single call's argument list;
// parseParamList applies the same limit to parameters. Struct fields and
// tuple elements have no such limit.
const maxArguments = 255

func (par *Parser) finishCall(callee ast.Expr) ast.Expr {
	paren := par.CurrToken
	par.advance()

	var args []ast.Expr
	if !par.check(lexer.RIGHT_PAREN) {
		for {
			if len(args) >= maxArguments {
				par.errorAtCurrent("can't have more than 255 arguments")
			}
			args = append(args, par.parseExpression())
			if !par.match(lexer.COMMA) {
				break
			}
		}
	}

	par.consume(lexer.RIGHT_PAREN, "expected ')' after arguments")
	return ast.NewCallExpr(callee, args, paren)
}
