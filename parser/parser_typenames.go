/*
File    : enact/parser/parser_typenames.go
*/
package parser

import (
	"github.com/enact-lang/enact/lexer"
	"github.com/enact-lang/enact/typename"
)

// parseTypename is the entry point for the typename-parsing chain (lowest
// to highest precedence: function, unary reference/optional, parametric,
// primary). When emptyAllowed is set and the current token can't start a
// typename, it returns an empty BasicTypename instead of reporting an
// error — used wherever a type annotation is optional.
func (par *Parser) parseTypename(emptyAllowed bool) typename.Typename {
	return par.parseFunctionTypename(emptyAllowed)
}

// parseFunctionTypename handles `A => R` and `(A, B) => R`. If the
// left side parsed as a tuple, its elements spread into the parameter
// list; otherwise the left side is the lone parameter. A bare `A, B => R`
// is not read as one function typename: the left side is a single unary
// typename, so the comma ends the typename at `A`. The return
// typename is parsed by recursing into this same level, so
// `A => B => C` reads as `A => (B => C)`.
func (par *Parser) parseFunctionTypename(emptyAllowed bool) typename.Typename {
	left := par.parseUnaryTypename(emptyAllowed)
	if left.Name() == "" {
		return left
	}

	if !par.check(lexer.EQUAL_GREATER) {
		return left
	}
	where := par.CurrToken
	par.advance()

	var params []typename.Typename
	if tuple, ok := left.(*typename.TupleTypename); ok {
		params = typename.CloneAll(tuple.Elements)
	} else {
		params = []typename.Typename{left}
	}

	returnTypename := par.parseFunctionTypename(false)
	return typename.NewFunction(returnTypename, params, where)
}

// parseUnaryTypename handles `&[perm?] [region?] T` (reference) and `?T`
// (optional).
func (par *Parser) parseUnaryTypename(emptyAllowed bool) typename.Typename {
	if par.check(lexer.AMPERSAND) {
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

		referent := par.parseParametricTypename(false)
		return typename.NewReference(permission, region, referent, where)
	}

	if par.check(lexer.QUESTION) {
		where := par.CurrToken
		par.advance()
		wrapped := par.parseParametricTypename(false)
		return typename.NewOptional(wrapped, where)
	}

	return par.parseParametricTypename(emptyAllowed)
}

// parseParametricTypename handles `T[A, B, ...]`.
func (par *Parser) parseParametricTypename(emptyAllowed bool) typename.Typename {
	primary := par.parsePrimaryTypename(emptyAllowed)
	if primary.Name() == "" {
		return primary
	}

	if !par.check(lexer.LEFT_SQUARE) {
		return primary
	}
	where := par.CurrToken
	par.advance()

	var params []typename.Typename
	for {
		params = append(params, par.parseTypename(false))
		if !par.match(lexer.COMMA) {
			break
		}
	}

	par.consume(lexer.RIGHT_SQUARE, "expected ']' after type parameters")
	return typename.NewParametric(primary, params, where)
}

// parsePrimaryTypename handles a bare name, a `$name` type variable, and
// parenthesised forms: `()` (unit), `(T)` (grouping, collapses to T), and
// `(A, B, ...)` (tuple).
func (par *Parser) parsePrimaryTypename(emptyAllowed bool) typename.Typename {
	switch par.CurrToken.Type {
	case lexer.IDENTIFIER:
		tok := par.CurrToken
		par.advance()
		return typename.NewBasic(tok.Lexeme, tok)

	case lexer.DOLLAR:
		where := par.CurrToken
		par.advance()
		name := par.consume(lexer.IDENTIFIER, "expected type variable name after '$'")
		return typename.NewVariable(name.Lexeme, where)

	case lexer.LEFT_PAREN:
		where := par.CurrToken
		par.advance()

		if par.check(lexer.RIGHT_PAREN) {
			par.advance()
			return typename.NewTuple(nil, where)
		}

		first := par.parseTypename(false)
		if par.check(lexer.COMMA) {
			elements := []typename.Typename{first}
			for par.match(lexer.COMMA) {
				elements = append(elements, par.parseTypename(false))
			}
			par.consume(lexer.RIGHT_PAREN, "expected ')' after tuple typename")
			return typename.NewTuple(elements, where)
		}

		par.consume(lexer.RIGHT_PAREN, "expected ')' after typename")
		return first

	default:
		if emptyAllowed {
			return typename.NewBasic("", par.CurrToken)
		}
		panic(par.errorAtCurrent("expected typename"))
	}
}
