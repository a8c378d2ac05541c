/*
File    : enact/sema/sema_defs_exprs.go
*/
package sema

import (
	"fmt"

	"github.com/enact-lang/enact/ast"
	"github.com/enact-lang/enact/diag"
	"github.com/enact-lang/enact/types"
)

const maxArguments = 255

// analyzeExpr computes expr's type, attaches it via Expr.SetType, and
// returns it so callers that need the value (an operator's operand, a
// call's argument) don't have to read it back off the node.
func (d *semaDefs) analyzeExpr(expr ast.Expr) types.Type {
	if expr == nil {
		return types.NothingType
	}

	var result types.Type
	switch e := expr.(type) {
	case *ast.IntegerExpr:
		result = types.IntType
	case *ast.FloatExpr:
		result = types.FloatType
	case *ast.BooleanExpr:
		result = types.BoolType
	case *ast.StringExpr:
		result = types.StringType
	case *ast.UnitExpr:
		result = types.NothingType
	case *ast.TupleExpr:
		result = d.analyzeTupleExpr(e)
	case *ast.SymbolExpr:
		result = d.analyzeSymbolExpr(e)
	case *ast.ReferenceExpr:
		result = d.analyzeReferenceExpr(e)
	case *ast.InterpolationExpr:
		result = d.analyzeInterpolationExpr(e)
	case *ast.FieldExpr:
		result = d.analyzeFieldExpr(e)
	case *ast.CallExpr:
		result = d.analyzeCallExpr(e)
	case *ast.BlockExpr:
		result = d.analyzeBlock(e)
	case *ast.AssignExpr:
		result = d.analyzeAssignExpr(e)
	case *ast.BinaryExpr:
		result = d.analyzeBinaryExpr(e)
	case *ast.LogicalExpr:
		result = d.analyzeLogicalExpr(e)
	case *ast.UnaryExpr:
		result = d.analyzeUnaryExpr(e)
	case *ast.CastExpr:
		result = d.analyzeCastExpr(e)
	case *ast.IfExpr:
		result = d.analyzeIfExpr(e)
	case *ast.WhileExpr:
		result = d.analyzeWhileExpr(e)
	case *ast.ForExpr:
		result = d.analyzeForExpr(e)
	case *ast.SwitchExpr:
		result = d.analyzeSwitchExpr(e)
	default:
		result = types.DynamicType
	}

	expr.SetType(result)
	return result
}

func (d *semaDefs) analyzeTupleExpr(e *ast.TupleExpr) types.Type {
	for _, elem := range e.Elements {
		d.analyzeExpr(elem)
	}
	// No Type kind models a tuple's shape; see resolveTypename.
	return types.DynamicType
}

func (d *semaDefs) analyzeSymbolExpr(e *ast.SymbolExpr) types.Type {
	info, ok := d.lookupVariable(e.Name.Lexeme)
	if !ok {
		d.sema.Ctx.Report(diag.NameError, e.Where(), "undeclared name '"+e.Name.Lexeme+"'")
		return types.DynamicType
	}
	if !info.Initialized {
		d.sema.Ctx.Report(diag.NameError, e.Where(), "use of uninitialized '"+e.Name.Lexeme+"'")
	}
	return info.Type
}

// analyzeReferenceExpr forms a reference to its referent. The resolved
// Type set has no reference kind (see resolveTypename), so a reference
// expression's static type is simply its referent's type; the
// permission/region annotation governs access, not shape.
func (d *semaDefs) analyzeReferenceExpr(e *ast.ReferenceExpr) types.Type {
	return d.analyzeExpr(e.Referent)
}

// analyzeInterpolationExpr types every piece for its own sake (the
// interpolated expression's value is rendered via `dis` at runtime, so
// any type is accepted there) and always yields string.
func (d *semaDefs) analyzeInterpolationExpr(e *ast.InterpolationExpr) types.Type {
	d.analyzeExpr(e.Start)
	d.analyzeExpr(e.Interpolated)
	d.analyzeExpr(e.End)
	return types.StringType
}

// analyzeFieldExpr types `object.name`: object must be a struct (field
// or method), a trait (method lookup), a constructor (associated
// property lookup), or dynamic.
func (d *semaDefs) analyzeFieldExpr(e *ast.FieldExpr) types.Type {
	objectType := d.analyzeExpr(e.Object)
	name := e.Name.Lexeme

	switch ot := objectType.(type) {
	case *types.StructType:
		if t, ok := ot.GetProperty(name); ok {
			return t
		}
	case *types.TraitType:
		if t, ok := ot.GetMethod(name); ok {
			return t
		}
	case *types.ConstructorType:
		if t, ok := ot.GetAssocProperty(name); ok {
			return t
		}
	case *types.PrimitiveType:
		if ot.Primitive == types.Dynamic {
			return types.DynamicType
		}
	}

	if types.IsDynamic(objectType) {
		return types.DynamicType
	}

	d.sema.Ctx.Report(diag.NameError, e.Where(), "'"+objectType.String()+"' has no property '"+name+"'")
	return types.DynamicType
}

// analyzeCallExpr types `callee(arguments...)`: the callee must be a
// function type, a constructor type, or dynamic; argument count must
// match parameter count exactly, and each argument must be loosely-equal
// to its parameter.
func (d *semaDefs) analyzeCallExpr(e *ast.CallExpr) types.Type {
	calleeType := d.analyzeExpr(e.Callee)

	argTypes := make([]types.Type, len(e.Arguments))
	for i, arg := range e.Arguments {
		argTypes[i] = d.analyzeExpr(arg)
	}

	if len(e.Arguments) > maxArguments {
		d.sema.Ctx.Report(diag.TypeError, e.Where(), "can't call with more than 255 arguments")
	}

	switch ct := calleeType.(type) {
	case *types.FunctionType:
		d.checkArguments(e, ct.ParameterTypes, argTypes)
		return ct.ReturnType
	case *types.ConstructorType:
		d.checkArguments(e, ct.StructType.Fields.Values(), argTypes)
		return ct.StructType
	default:
		if types.IsDynamic(calleeType) {
			return types.DynamicType
		}
		d.sema.Ctx.Report(diag.TypeError, e.Where(), "'"+calleeType.String()+"' is not callable")
		return types.DynamicType
	}
}

func (d *semaDefs) checkArguments(e *ast.CallExpr, params []types.Type, args []types.Type) {
	if len(params) != len(args) {
		d.sema.Ctx.Report(diag.TypeError, e.Where(), fmt.Sprintf("expected %d arguments, got %d", len(params), len(args)))
		return
	}
	for i, param := range params {
		if !param.Compatible(args[i]) {
			d.sema.Ctx.Report(diag.TypeError, e.Arguments[i].Where(),
				"argument "+args[i].String()+" is not compatible with parameter type "+param.String())
		}
	}
}
