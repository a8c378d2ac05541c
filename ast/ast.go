/*
File    : enact/ast/ast.go
*/

// Package ast defines Enact's abstract syntax tree: three sibling sum
// types — Stmt, Expr, Pattern — plus Module, which aggregates a source
// file's top-level statements.
//
// There is no visitor interface here. Each sum type is a plain Go
// interface implemented by every concrete node; callers that need to
// handle every variant do it with a type switch, so "the visitor
// disappears into the match" rather than living as a separate dispatch
// layer (SemaDecls and SemaDefs are the two real consumers, and both work
// this way).
package ast

import (
	"github.com/enact-lang/enact/lexer"
	"github.com/enact-lang/enact/types"
)

// Module is the root of a parsed source file: its top-level statements in
// source order.
type Module struct {
	Statements []Stmt
}

// Stmt is implemented by every statement node.
type Stmt interface {
	Where() lexer.Token
	stmtNode()
}

type stmtBase struct {
	WhereTok lexer.Token
}

func (s stmtBase) Where() lexer.Token { return s.WhereTok }
func (stmtBase) stmtNode()            {}

// Expr is implemented by every expression node. Every expression carries
// a resolved Type slot, nil until SemaDefs assigns it; downstream phases
// (including SemaDefs itself, reading a sub-expression it already
// visited) can then read the type off any node rather than recomputing
// it.
type Expr interface {
	Where() lexer.Token
	Type() types.Type
	SetType(types.Type)
	exprNode()
}

type exprBase struct {
	WhereTok     lexer.Token
	ResolvedType types.Type
}

func (e *exprBase) Where() lexer.Token     { return e.WhereTok }
func (e *exprBase) Type() types.Type       { return e.ResolvedType }
func (e *exprBase) SetType(t types.Type)   { e.ResolvedType = t }
func (*exprBase) exprNode()                {}

// Pattern is implemented by every switch-case pattern node.
type Pattern interface {
	Where() lexer.Token
	patternNode()
}

type patternBase struct {
	WhereTok lexer.Token
}

func (p patternBase) Where() lexer.Token { return p.WhereTok }
func (patternBase) patternNode()         {}
