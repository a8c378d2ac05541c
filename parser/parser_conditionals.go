/*
File    : enact/parser/parser_conditionals.go
*/
package parser

import (
	"github.com/enact-lang/enact/ast"
	"github.com/enact-lang/enact/lexer"
)

// parseIfExpr parses `if condition { then } [else ...]`. `else if` is a
// special case: it produces a nested IfExpr directly, without requiring
// the block-or-arrow syntax an `else { }` would need.
func (par *Parser) parseIfExpr() ast.Expr {
	where := par.CurrToken
	par.advance()

	condition := par.parseExpression()
	then := par.parseBlock()

	var elseBranch ast.Expr
	if par.match(lexer.ELSE) {
		if par.check(lexer.IF) {
			elseBranch = par.parseIfExpr()
		} else {
			elseBranch = par.parseBlock()
		}
	}

	return ast.NewIfExpr(where, condition, then, elseBranch)
}
