/*
File    : enact/parser/parser_statements.go
*/
package parser

import (
	"github.com/enact-lang/enact/ast"
	"github.com/enact-lang/enact/lexer"
	"github.com/enact-lang/enact/typename"
)

// parseVariableStatement parses `imm name [: T] = expr` or
// `mut name [: T] = expr`.
func (par *Parser) parseVariableStatement() ast.Stmt {
	keyword := par.CurrToken
	par.advance()

	name := par.consume(lexer.IDENTIFIER, "expected variable name")

	var typeName typename.Typename
	if par.check(lexer.COLON) {
		par.advance()
		typeName = par.parseTypename(false)
	} else {
		typeName = typename.NewBasic("", name)
	}

	par.consume(lexer.EQUAL, "expected '=' after variable name")
	initializer := par.parseExpression()
	par.consume(lexer.SEMICOLON, "expected ';' after variable declaration")

	return ast.NewVariableStmt(keyword, name, typeName, initializer)
}

// parseExpressionStatement parses a bare expression used as a top-level
// statement, requiring a terminating ';'.
func (par *Parser) parseExpressionStatement() ast.Stmt {
	expr := par.parseExpression()
	par.consume(lexer.SEMICOLON, "expected ';' after expression")
	return ast.NewExpressionStmt(expr)
}

// parseBlock parses a block expression, which is written either as
// `{ statements... trailingExpr }` or the arrow shorthand `=> expr`.
func (par *Parser) parseBlock() *ast.BlockExpr {
	if par.check(lexer.EQUAL_GREATER) {
		where := par.CurrToken
		par.advance()
		return ast.NewBlockExpr(where, nil, par.parseExpression())
	}

	openBrace := par.consume(lexer.LEFT_BRACE, "expected '{' or '=>' to begin block")
	return par.finishBlock(openBrace)
}

// finishBlock parses the contents of a brace-delimited block after the
// opening '{' has been consumed. Every statement but the last must be
// followed by ';'; the final bare expression (with no ';') becomes the
// block's value. A block with no trailing expression values as unit.
func (par *Parser) finishBlock(openBrace lexer.Token) *ast.BlockExpr {
	var stmts []ast.Stmt
	var value ast.Expr

	for !par.check(lexer.RIGHT_BRACE) && !par.check(lexer.EOF) {
		stmt, trailing, ok := par.parseBlockStatement()
		if !ok {
			continue
		}
		if trailing != nil {
			value = trailing
			break
		}
		stmts = append(stmts, stmt)
	}

	if value == nil {
		value = ast.NewUnitExpr(lexer.Synthetic("()"))
	}

	par.consume(lexer.RIGHT_BRACE, "expected '}' after block")
	return ast.NewBlockExpr(openBrace, stmts, value)
}

// parseBlockStatement parses one statement inside a block, distinguishing
// a plain statement (terminated by ';') from the block's final trailing
// expression (terminated by '}', with no ';'). Like parseStatement, it
// recovers from a parseError panic by resynchronising.
func (par *Parser) parseBlockStatement() (stmt ast.Stmt, trailing ast.Expr, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			if _, isParseErr := r.(parseError); isParseErr {
				par.synchronise()
				ok = false
				return
			}
			panic(r)
		}
	}()

	switch par.CurrToken.Type {
	case lexer.FUNC:
		return par.parseFunctionStatement(), nil, true
	case lexer.STRUCT:
		return par.parseStructStatement(), nil, true
	case lexer.ENUM:
		return par.parseEnumStatement(), nil, true
	case lexer.TRAIT:
		return par.parseTraitStatement(), nil, true
	case lexer.IMPL:
		return par.parseImplStatement(), nil, true
	case lexer.IMM, lexer.MUT:
		return par.parseVariableStatement(), nil, true
	case lexer.RETURN:
		return par.parseReturnStatement(), nil, true
	case lexer.BREAK:
		return par.parseBreakStatement(), nil, true
	case lexer.CONTINUE:
		return par.parseContinueStatement(), nil, true
	default:
		expr := par.parseExpression()
		if par.match(lexer.SEMICOLON) {
			return ast.NewExpressionStmt(expr), nil, true
		}
		return nil, expr, true
	}
}
