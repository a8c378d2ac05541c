/*
File    : enact/sema/sema_defs_control.go
*/
package sema

import (
	"github.com/enact-lang/enact/ast"
	"github.com/enact-lang/enact/diag"
	"github.com/enact-lang/enact/types"
)

func (d *semaDefs) requireBool(expr ast.Expr, context string) {
	t := d.analyzeExpr(expr)
	if !types.IsBool(t) && !types.IsDynamic(t) {
		d.sema.Ctx.Report(diag.TypeError, expr.Where(), context+" must be bool, got "+t.String())
	}
}

// analyzeIfExpr types `if condition { then } [else ...]`. With no else
// clause the expression yields nothing, since the then-branch might not
// run; with an else clause, both branches must agree and the expression
// yields that shared type.
func (d *semaDefs) analyzeIfExpr(e *ast.IfExpr) types.Type {
	d.requireBool(e.Condition, "'if' condition")
	thenType := d.analyzeBlock(e.Then)

	if e.Else == nil {
		return types.NothingType
	}

	elseType := d.analyzeExpr(e.Else)
	if !thenType.Compatible(elseType) && !elseType.Compatible(thenType) {
		d.sema.Ctx.Report(diag.TypeError, e.Where(),
			"'if' branches disagree: "+thenType.String()+" vs "+elseType.String())
	}
	if types.IsDynamic(thenType) {
		return elseType
	}
	return thenType
}

// analyzeWhileExpr types `while condition { body }`. Like a function body
// with no return, a loop's body value is discarded each iteration; the
// loop itself yields nothing.
func (d *semaDefs) analyzeWhileExpr(e *ast.WhileExpr) types.Type {
	d.requireBool(e.Condition, "'while' condition")
	d.loopDepth++
	d.analyzeBlock(e.Body)
	d.loopDepth--
	return types.NothingType
}

// analyzeForExpr types `for name in iterable { body }`: iterable must be
// an array (or dynamic), and name is bound in the body with the array's
// element type.
func (d *semaDefs) analyzeForExpr(e *ast.ForExpr) types.Type {
	iterableType := d.analyzeExpr(e.Iterable)

	elementType := types.Type(types.DynamicType)
	switch it := iterableType.(type) {
	case *types.ArrayType:
		elementType = it.ElementType
	case *types.PrimitiveType:
		if it.Primitive != types.Dynamic {
			d.sema.Ctx.Report(diag.TypeError, e.Iterable.Where(), "'"+iterableType.String()+"' is not iterable")
		}
	default:
		d.sema.Ctx.Report(diag.TypeError, e.Iterable.Where(), "'"+iterableType.String()+"' is not iterable")
	}

	d.loopDepth++
	d.beginScope()
	d.scope.declare(e.Name.Lexeme, &VariableInfo{Type: elementType, Mutability: Immutable, Initialized: true})
	for _, stmt := range e.Body.Statements {
		d.analyzeStmt(stmt)
	}
	bodyValue := d.analyzeExpr(e.Body.Value)
	e.Body.SetType(bodyValue)
	d.endScope()
	d.loopDepth--

	return types.NothingType
}

// analyzeSwitchExpr types `value { case pattern [when predicate] block
// ... }`: every ValuePattern's value must be loosely-equal to the
// switched value, every `when` predicate must be bool, and the case
// bodies must all agree on a common type, which becomes the switch
// expression's own type.
func (d *semaDefs) analyzeSwitchExpr(e *ast.SwitchExpr) types.Type {
	valueType := d.analyzeExpr(e.Value)

	var resultType types.Type = types.DynamicType
	haveResult := false

	for _, c := range e.Cases {
		if vp, ok := c.Pattern.(*ast.ValuePattern); ok {
			patternType := d.analyzeExpr(vp.Value)
			if !valueType.Compatible(patternType) && !patternType.Compatible(valueType) {
				d.sema.Ctx.Report(diag.TypeError, vp.Where(),
					"case "+patternType.String()+" does not match switched value of type "+valueType.String())
			}
		}
		if c.Predicate != nil {
			d.requireBool(c.Predicate, "'when' predicate")
		}

		caseType := d.analyzeBlock(c.Body)
		if !haveResult {
			resultType = caseType
			haveResult = true
			continue
		}
		if !resultType.Compatible(caseType) && !caseType.Compatible(resultType) {
			d.sema.Ctx.Report(diag.TypeError, c.Body.Where(),
				"switch cases disagree: "+resultType.String()+" vs "+caseType.String())
		} else if types.IsDynamic(resultType) {
			resultType = caseType
		}
	}

	return resultType
}
