/*
File    : enact/ast/pattern.go
*/
package ast

import "github.com/enact-lang/enact/lexer"

// ValuePattern matches when the switched-on value loosely-equals Value.
type ValuePattern struct {
	patternBase
	Value Expr
}

func NewValuePattern(value Expr) *ValuePattern {
	return &ValuePattern{patternBase: patternBase{WhereTok: value.Where()}, Value: value}
}

// WildcardPattern (`default`) matches unconditionally.
type WildcardPattern struct {
	patternBase
}

func NewWildcardPattern(where lexer.Token) *WildcardPattern {
	return &WildcardPattern{patternBase: patternBase{WhereTok: where}}
}
