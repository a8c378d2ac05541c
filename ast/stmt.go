/*
File    : enact/ast/stmt.go
*/
package ast

import (
	"github.com/enact-lang/enact/lexer"
	"github.com/enact-lang/enact/types"
	"github.com/enact-lang/enact/typename"
)

// BreakStmt is `break [value]`; Value defaults to a UnitExpr when no
// value was written.
type BreakStmt struct {
	stmtBase
	Value Expr
}

func NewBreakStmt(where lexer.Token, value Expr) *BreakStmt {
	return &BreakStmt{stmtBase: stmtBase{WhereTok: where}, Value: value}
}

// ContinueStmt is `continue`.
type ContinueStmt struct {
	stmtBase
}

func NewContinueStmt(where lexer.Token) *ContinueStmt {
	return &ContinueStmt{stmtBase: stmtBase{WhereTok: where}}
}

// EnumVariant is one `name [typename];` line inside an EnumStmt.
type EnumVariant struct {
	Name     lexer.Token
	Typename typename.Typename // nil if the variant carries no payload
}

// EnumStmt is `enum Name { variant [typename]; ... }`.
type EnumStmt struct {
	stmtBase
	Name     lexer.Token
	Variants []EnumVariant

	ResolvedType types.Type // set by SemaDecls
}

func NewEnumStmt(where lexer.Token, name lexer.Token, variants []EnumVariant) *EnumStmt {
	return &EnumStmt{stmtBase: stmtBase{WhereTok: where}, Name: name, Variants: variants}
}

// ExpressionStmt wraps a bare expression used as a statement.
type ExpressionStmt struct {
	stmtBase
	Expression Expr
}

func NewExpressionStmt(expr Expr) *ExpressionStmt {
	return &ExpressionStmt{stmtBase: stmtBase{WhereTok: expr.Where()}, Expression: expr}
}

// Param is one `name: typename` function parameter.
type Param struct {
	Name     lexer.Token
	Typename typename.Typename
}

// FunctionStmt is `func name(params) returnTypename { body }`. Trait
// method declarations (no body, terminated by `;`) have HasBody false and
// Body nil.
type FunctionStmt struct {
	stmtBase
	Name           lexer.Token
	Params         []Param
	ReturnTypename typename.Typename
	HasBody        bool
	Body           *BlockExpr

	ResolvedType types.Type // set by SemaDecls
}

func NewFunctionStmt(where lexer.Token, name lexer.Token, params []Param, returnTypename typename.Typename, body *BlockExpr) *FunctionStmt {
	return &FunctionStmt{
		stmtBase:       stmtBase{WhereTok: where},
		Name:           name,
		Params:         params,
		ReturnTypename: returnTypename,
		HasBody:        body != nil,
		Body:           body,
	}
}

// ImplStmt is `impl Trait for Type { methods }` or the inherent form
// `impl Type { methods }`. The parser always normalises to
// (ImplementingTypename, TraitTypename) regardless of which order the
// surface syntax wrote them in; TraitTypename is nil for an inherent impl.
type ImplStmt struct {
	stmtBase
	ImplementingTypename typename.Typename
	TraitTypename        typename.Typename
	Methods              []*FunctionStmt
}

func NewImplStmt(where lexer.Token, implementing, trait typename.Typename, methods []*FunctionStmt) *ImplStmt {
	return &ImplStmt{stmtBase: stmtBase{WhereTok: where}, ImplementingTypename: implementing, TraitTypename: trait, Methods: methods}
}

// IsTraitImpl reports whether this is `impl Trait for Type` rather than
// an inherent `impl Type`.
func (i *ImplStmt) IsTraitImpl() bool { return i.TraitTypename != nil }

// ReturnStmt is `return [value]`; Value defaults to a UnitExpr when no
// value was written.
type ReturnStmt struct {
	stmtBase
	Value Expr
}

func NewReturnStmt(where lexer.Token, value Expr) *ReturnStmt {
	return &ReturnStmt{stmtBase: stmtBase{WhereTok: where}, Value: value}
}

// Field is one `name: typename;` line inside a StructStmt.
type Field struct {
	Name     lexer.Token
	Typename typename.Typename
}

// StructStmt is `struct Name { field: typename; ... }`.
type StructStmt struct {
	stmtBase
	Name   lexer.Token
	Fields []Field

	ResolvedType types.Type // set by SemaDecls
}

func NewStructStmt(where lexer.Token, name lexer.Token, fields []Field) *StructStmt {
	return &StructStmt{stmtBase: stmtBase{WhereTok: where}, Name: name, Fields: fields}
}

// TraitStmt is `trait Name { func method(params) returnTypename; ... }`.
type TraitStmt struct {
	stmtBase
	Name    lexer.Token
	Methods []*FunctionStmt

	ResolvedType types.Type // set by SemaDecls
}

func NewTraitStmt(where lexer.Token, name lexer.Token, methods []*FunctionStmt) *TraitStmt {
	return &TraitStmt{stmtBase: stmtBase{WhereTok: where}, Name: name, Methods: methods}
}

// VariableStmt is `imm|mut name [: typename] = initializer`.
type VariableStmt struct {
	stmtBase
	Keyword     lexer.Token // IMM or MUT
	Name        lexer.Token
	Typename    typename.Typename // may be an empty BasicTypename if omitted
	Initializer Expr
}

func NewVariableStmt(keyword, name lexer.Token, typeName typename.Typename, initializer Expr) *VariableStmt {
	return &VariableStmt{stmtBase: stmtBase{WhereTok: keyword}, Keyword: keyword, Name: name, Typename: typeName, Initializer: initializer}
}

// IsMutable reports whether this declaration used `mut` rather than
// `imm`.
func (v *VariableStmt) IsMutable() bool { return v.Keyword.Type == lexer.MUT }
