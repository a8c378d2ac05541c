/*
File    : enact/sema/sema_defs_operators.go
*/
package sema

import (
	"github.com/enact-lang/enact/ast"
	"github.com/enact-lang/enact/diag"
	"github.com/enact-lang/enact/lexer"
	"github.com/enact-lang/enact/types"
)

var comparisonOperators = map[lexer.TokenType]bool{
	lexer.EQUAL_EQUAL:   true,
	lexer.BANG_EQUAL:    true,
	lexer.LESS:          true,
	lexer.LESS_EQUAL:    true,
	lexer.GREATER:       true,
	lexer.GREATER_EQUAL: true,
}

var bitwiseOperators = map[lexer.TokenType]bool{
	lexer.AMPERSAND:       true,
	lexer.PIPE:            true,
	lexer.CARAT:           true,
	lexer.LESS_LESS:       true,
	lexer.GREATER_GREATER: true,
}

var rangeOperators = map[lexer.TokenType]bool{
	lexer.DOT_DOT:     true,
	lexer.DOT_DOT_DOT: true,
}

// analyzeBinaryExpr types every infix operator except and/or (LogicalExpr)
// and as/is (CastExpr).
func (d *semaDefs) analyzeBinaryExpr(e *ast.BinaryExpr) types.Type {
	left := d.analyzeExpr(e.Left)
	right := d.analyzeExpr(e.Right)

	switch {
	case comparisonOperators[e.Operator.Type]:
		if !left.Compatible(right) && !right.Compatible(left) {
			d.sema.Ctx.Report(diag.TypeError, e.Operator,
				"cannot compare "+left.String()+" and "+right.String())
		}
		return types.BoolType

	case bitwiseOperators[e.Operator.Type]:
		d.requireInt(e.Operator, left)
		d.requireInt(e.Operator, right)
		return types.IntType

	case rangeOperators[e.Operator.Type]:
		d.requireInt(e.Operator, left)
		d.requireInt(e.Operator, right)
		// No Type kind models a range's shape; see resolveTypename's
		// treatment of Tuple for the same reasoning.
		return types.DynamicType

	case e.Operator.Type == lexer.PLUS:
		if types.IsString(left) || types.IsString(right) {
			if !types.IsDynamic(left) && !types.IsString(left) {
				d.sema.Ctx.Report(diag.TypeError, e.Operator, "cannot add "+left.String()+" and "+right.String())
			}
			if !types.IsDynamic(right) && !types.IsString(right) {
				d.sema.Ctx.Report(diag.TypeError, e.Operator, "cannot add "+left.String()+" and "+right.String())
			}
			return types.StringType
		}
		return d.arithmeticResult(e.Operator, left, right)

	default: // MINUS, STAR, SLASH
		return d.arithmeticResult(e.Operator, left, right)
	}
}

func (d *semaDefs) arithmeticResult(where lexer.Token, left, right types.Type) types.Type {
	d.requireNumeric(where, left)
	d.requireNumeric(where, right)
	if types.IsDynamic(left) {
		return right
	}
	return left
}

func (d *semaDefs) requireNumeric(where lexer.Token, t types.Type) {
	if types.IsNumeric(t) || types.IsDynamic(t) {
		return
	}
	d.sema.Ctx.Report(diag.TypeError, where, "expected a numeric operand, got "+t.String())
}

func (d *semaDefs) requireInt(where lexer.Token, t types.Type) {
	if types.IsInt(t) || types.IsDynamic(t) {
		return
	}
	d.sema.Ctx.Report(diag.TypeError, where, "expected an integer operand, got "+t.String())
}

// analyzeLogicalExpr types and/or: both operands must be bool (or
// dynamic), and the result is always bool.
func (d *semaDefs) analyzeLogicalExpr(e *ast.LogicalExpr) types.Type {
	left := d.analyzeExpr(e.Left)
	right := d.analyzeExpr(e.Right)
	if !types.IsBool(left) && !types.IsDynamic(left) {
		d.sema.Ctx.Report(diag.TypeError, e.Operator, "expected bool, got "+left.String())
	}
	if !types.IsBool(right) && !types.IsDynamic(right) {
		d.sema.Ctx.Report(diag.TypeError, e.Operator, "expected bool, got "+right.String())
	}
	return types.BoolType
}

// analyzeUnaryExpr types the prefix operators: `not` (bool), `-`
// (numeric), `~` (int).
func (d *semaDefs) analyzeUnaryExpr(e *ast.UnaryExpr) types.Type {
	operand := d.analyzeExpr(e.Operand)
	switch e.Operator.Type {
	case lexer.NOT:
		if !types.IsBool(operand) && !types.IsDynamic(operand) {
			d.sema.Ctx.Report(diag.TypeError, e.Operator, "expected bool, got "+operand.String())
		}
		return types.BoolType
	case lexer.TILDE:
		d.requireInt(e.Operator, operand)
		return operand
	default: // MINUS
		d.requireNumeric(e.Operator, operand)
		return operand
	}
}

// analyzeCastExpr types `value as Typename` (reinterpret, yields
// Typename's resolved type) and `value is Typename` (type test, yields
// bool).
func (d *semaDefs) analyzeCastExpr(e *ast.CastExpr) types.Type {
	d.analyzeExpr(e.Value)
	target := d.sema.resolveTypename(e.Typename)
	if e.Operator.Type == lexer.IS {
		return types.BoolType
	}
	return target
}

// analyzeAssignExpr types `target = value`: a symbol target must name a
// mutable binding; a field-access target may not name a struct method or
// a constructor property other than an associated one. The mutability of
// a field access's receiver is not checked. Every other target is
// rejected as not assignable.
func (d *semaDefs) analyzeAssignExpr(e *ast.AssignExpr) types.Type {
	valueType := d.analyzeExpr(e.Value)

	switch target := e.Target.(type) {
	case *ast.SymbolExpr:
		info, ok := d.lookupVariable(target.Name.Lexeme)
		if !ok {
			d.sema.Ctx.Report(diag.NameError, target.Where(), "undeclared name '"+target.Name.Lexeme+"'")
			return valueType
		}
		if info.Mutability != Mutable {
			d.sema.Ctx.Report(diag.ImmutabilityError, e.Where(), "cannot assign to immutable '"+target.Name.Lexeme+"'")
		}
		if info.Type != nil && !info.Type.Compatible(valueType) {
			d.sema.Ctx.Report(diag.TypeError, e.Where(),
				"cannot assign "+valueType.String()+" to "+target.Name.Lexeme+" of type "+info.Type.String())
		}
		info.Initialized = true
		target.SetType(info.Type)
		return info.Type

	case *ast.FieldExpr:
		fieldType := d.analyzeExpr(target)
		objectType := target.Object.Type()
		if structType, ok := objectType.(*types.StructType); ok {
			if _, isMethod := structType.GetMethod(target.Name.Lexeme); isMethod {
				d.sema.Ctx.Report(diag.ImmutabilityError, e.Where(), "cannot assign to method '"+target.Name.Lexeme+"'")
			}
		}
		if ct, ok := objectType.(*types.ConstructorType); ok {
			if _, isAssoc := ct.GetAssocProperty(target.Name.Lexeme); !isAssoc {
				d.sema.Ctx.Report(diag.ImmutabilityError, e.Where(), "cannot assign to '"+target.Name.Lexeme+"'")
			}
		}
		if fieldType != nil && !fieldType.Compatible(valueType) {
			d.sema.Ctx.Report(diag.TypeError, e.Where(),
				"cannot assign "+valueType.String()+" to field of type "+fieldType.String())
		}
		return fieldType

	default:
		d.sema.Ctx.Report(diag.TypeError, e.Where(), "invalid assignment target")
		return valueType
	}
}
