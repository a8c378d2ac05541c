/*
File    : enact/ast/expr.go
*/
package ast

import (
	"github.com/enact-lang/enact/lexer"
	"github.com/enact-lang/enact/typename"
)

// AssignExpr is `target = value`. The parser does not pre-distinguish
// which expressions are valid assignment targets — Target may be any
// Expr the grammar allowed on the left of `=` (a SymbolExpr, FieldExpr,
// or something else entirely); SemaDefs is what rejects a non-lvalue
// target.
type AssignExpr struct {
	exprBase
	Target   Expr
	Value    Expr
	Operator lexer.Token
}

func NewAssignExpr(target, value Expr, operator lexer.Token) *AssignExpr {
	return &AssignExpr{exprBase: exprBase{WhereTok: operator}, Target: target, Value: value, Operator: operator}
}

// BinaryExpr covers every left/right infix operator except `and`/`or`
// (LogicalExpr) and `as`/`is` (CastExpr): arithmetic, comparison,
// bitwise, and range.
type BinaryExpr struct {
	exprBase
	Left     Expr
	Right    Expr
	Operator lexer.Token
}

func NewBinaryExpr(left, right Expr, operator lexer.Token) *BinaryExpr {
	return &BinaryExpr{exprBase: exprBase{WhereTok: operator}, Left: left, Right: right, Operator: operator}
}

// LogicalExpr is `and`/`or`, kept distinct from BinaryExpr because both
// operators short-circuit.
type LogicalExpr struct {
	exprBase
	Left     Expr
	Right    Expr
	Operator lexer.Token
}

func NewLogicalExpr(left, right Expr, operator lexer.Token) *LogicalExpr {
	return &LogicalExpr{exprBase: exprBase{WhereTok: operator}, Left: left, Right: right, Operator: operator}
}

// BlockExpr is a sequence of statements followed by a single trailing
// expression, its value. A block with no explicit trailing expression has
// Value set to a UnitExpr.
type BlockExpr struct {
	exprBase
	Statements []Stmt
	Value      Expr
}

func NewBlockExpr(where lexer.Token, statements []Stmt, value Expr) *BlockExpr {
	return &BlockExpr{exprBase: exprBase{WhereTok: where}, Statements: statements, Value: value}
}

// BooleanExpr is a `true`/`false` literal.
type BooleanExpr struct {
	exprBase
	Value bool
}

func NewBooleanExpr(where lexer.Token, value bool) *BooleanExpr {
	return &BooleanExpr{exprBase: exprBase{WhereTok: where}, Value: value}
}

// CallExpr is `callee(arguments...)`.
type CallExpr struct {
	exprBase
	Callee    Expr
	Arguments []Expr
	Paren     lexer.Token
}

func NewCallExpr(callee Expr, arguments []Expr, paren lexer.Token) *CallExpr {
	return &CallExpr{exprBase: exprBase{WhereTok: paren}, Callee: callee, Arguments: arguments, Paren: paren}
}

// CastExpr is `value as Typename` or `value is Typename`.
type CastExpr struct {
	exprBase
	Value    Expr
	Operator lexer.Token // AS or IS
	Typename typename.Typename
}

func NewCastExpr(value Expr, operator lexer.Token, typeName typename.Typename) *CastExpr {
	return &CastExpr{exprBase: exprBase{WhereTok: operator}, Value: value, Operator: operator, Typename: typeName}
}

// FloatExpr is a floating point literal.
type FloatExpr struct {
	exprBase
	Value float64
}

func NewFloatExpr(where lexer.Token, value float64) *FloatExpr {
	return &FloatExpr{exprBase: exprBase{WhereTok: where}, Value: value}
}

// IntegerExpr is an integer literal.
type IntegerExpr struct {
	exprBase
	Value int64
}

func NewIntegerExpr(where lexer.Token, value int64) *IntegerExpr {
	return &IntegerExpr{exprBase: exprBase{WhereTok: where}, Value: value}
}

// ForExpr is `for name in iterable { body }`.
type ForExpr struct {
	exprBase
	Name     lexer.Token
	Iterable Expr
	Body     *BlockExpr
}

func NewForExpr(where lexer.Token, name lexer.Token, iterable Expr, body *BlockExpr) *ForExpr {
	return &ForExpr{exprBase: exprBase{WhereTok: where}, Name: name, Iterable: iterable, Body: body}
}

// FieldExpr is `object.name`, field or method access.
type FieldExpr struct {
	exprBase
	Object   Expr
	Name     lexer.Token
	Operator lexer.Token
}

func NewFieldExpr(object Expr, name lexer.Token, operator lexer.Token) *FieldExpr {
	return &FieldExpr{exprBase: exprBase{WhereTok: operator}, Object: object, Name: name, Operator: operator}
}

// IfExpr is `if condition { then } [else ...]`. Else is nil when no else
// clause was written, a *BlockExpr for a plain `else { }`, or a nested
// *IfExpr for `else if`.
type IfExpr struct {
	exprBase
	Condition Expr
	Then      *BlockExpr
	Else      Expr
}

func NewIfExpr(where lexer.Token, condition Expr, then *BlockExpr, elseBranch Expr) *IfExpr {
	return &IfExpr{exprBase: exprBase{WhereTok: where}, Condition: condition, Then: then, Else: elseBranch}
}

// InterpolationExpr is one link of a string-interpolation chain: a
// leading string fragment, the interpolated expression, and the
// continuation (another InterpolationExpr, or the terminal StringExpr).
type InterpolationExpr struct {
	exprBase
	Start        *StringExpr
	Interpolated Expr
	End          Expr // *StringExpr or *InterpolationExpr
}

func NewInterpolationExpr(where lexer.Token, start *StringExpr, interpolated Expr, end Expr) *InterpolationExpr {
	return &InterpolationExpr{exprBase: exprBase{WhereTok: where}, Start: start, Interpolated: interpolated, End: end}
}

// ReferenceExpr is `&[imm|mut]? [so|rc|gc]? referent`.
type ReferenceExpr struct {
	exprBase
	Permission lexer.Token
	Region     lexer.Token
	Referent   Expr
}

func NewReferenceExpr(where lexer.Token, permission, region lexer.Token, referent Expr) *ReferenceExpr {
	return &ReferenceExpr{exprBase: exprBase{WhereTok: where}, Permission: permission, Region: region, Referent: referent}
}

// HasPermission reports whether an explicit imm/mut permission was
// written.
func (r *ReferenceExpr) HasPermission() bool { return r.Permission.Lexeme != "" }

// HasRegion reports whether an explicit so/rc/gc region tag was written.
func (r *ReferenceExpr) HasRegion() bool { return r.Region.Lexeme != "" }

// StringExpr is a string literal with no interpolation, or the terminal
// fragment of one that has.
type StringExpr struct {
	exprBase
	Value string
}

func NewStringExpr(where lexer.Token, value string) *StringExpr {
	return &StringExpr{exprBase: exprBase{WhereTok: where}, Value: value}
}

// SwitchExpr is `value { case pattern [when predicate] block ... }`.
type SwitchExpr struct {
	exprBase
	Value Expr
	Cases []SwitchCase
}

func NewSwitchExpr(where lexer.Token, value Expr, cases []SwitchCase) *SwitchExpr {
	return &SwitchExpr{exprBase: exprBase{WhereTok: where}, Value: value, Cases: cases}
}

// SwitchCase pairs a pattern and optional predicate with the block to run
// when both match.
type SwitchCase struct {
	Pattern   Pattern
	Predicate Expr // nil if no `when` clause
	Body      *BlockExpr
}

// SymbolExpr is a bare identifier reference.
type SymbolExpr struct {
	exprBase
	Name lexer.Token
}

func NewSymbolExpr(name lexer.Token) *SymbolExpr {
	return &SymbolExpr{exprBase: exprBase{WhereTok: name}, Name: name}
}

// TupleExpr is `(a, b, ...)` with two or more elements — a single
// parenthesised expression collapses during parsing, and `()` parses as
// UnitExpr instead.
type TupleExpr struct {
	exprBase
	Elements []Expr
}

func NewTupleExpr(where lexer.Token, elements []Expr) *TupleExpr {
	return &TupleExpr{exprBase: exprBase{WhereTok: where}, Elements: elements}
}

// UnaryExpr is a prefix operator applied to a single operand: `-`, `~`,
// `not`.
type UnaryExpr struct {
	exprBase
	Operand  Expr
	Operator lexer.Token
}

func NewUnaryExpr(operand Expr, operator lexer.Token) *UnaryExpr {
	return &UnaryExpr{exprBase: exprBase{WhereTok: operator}, Operand: operand, Operator: operator}
}

// UnitExpr is the single value of the unit type, written `()` or implicit
// wherever a block/if/return/break has no other value.
type UnitExpr struct {
	exprBase
}

func NewUnitExpr(where lexer.Token) *UnitExpr {
	return &UnitExpr{exprBase: exprBase{WhereTok: where}}
}

// WhileExpr is `while condition { body }`.
type WhileExpr struct {
	exprBase
	Condition Expr
	Body      *BlockExpr
}

func NewWhileExpr(where lexer.Token, condition Expr, body *BlockExpr) *WhileExpr {
	return &WhileExpr{exprBase: exprBase{WhereTok: where}, Condition: condition, Body: body}
}
