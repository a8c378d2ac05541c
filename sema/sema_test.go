/*
File    : enact/sema/sema_test.go
*/
package sema

import (
	"testing"

	"github.com/enact-lang/enact/ast"
	"github.com/enact-lang/enact/diag"
	"github.com/enact-lang/enact/parser"
	"github.com/enact-lang/enact/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func analyzeSource(t *testing.T, src string) (*Sema, *diag.Context) {
	t.Helper()
	p := parser.NewParser(src)
	module := p.Parse()
	require.False(t, p.HasErrors(), "unexpected parse errors: %v", p.Ctx.Diagnostics)
	s := Analyze(p.Ctx, module)
	return s, p.Ctx
}

func kinds(ctx *diag.Context) []diag.Kind {
	ks := make([]diag.Kind, len(ctx.Diagnostics))
	for i, d := range ctx.Diagnostics {
		ks[i] = d.Kind
	}
	return ks
}

// S1 — minimal function, inferred body type.
func TestSema_MinimalFunction(t *testing.T) {
	s, ctx := analyzeSource(t, `func add(a: int, b: int) int { a + b }`)
	require.False(t, ctx.HadError(), "unexpected diagnostics: %v", kinds(ctx))

	fn, ok := s.VariableDeclared("add")
	require.True(t, ok)
	fnType, ok := fn.Type.(*types.FunctionType)
	require.True(t, ok)
	assert.True(t, fnType.ReturnType.Equivalent(types.IntType))
}

// S2 — immutable reassignment.
func TestSema_ImmutableReassignment(t *testing.T) {
	_, ctx := analyzeSource(t, `
		imm x = 1;
		func f() { x = 2; }
	`)
	require.True(t, ctx.HadError())
	assert.Contains(t, kinds(ctx), diag.ImmutabilityError)
}

func TestSema_MutableReassignment(t *testing.T) {
	_, ctx := analyzeSource(t, `
		func f() {
			mut x = 1;
			x = 2;
		}
	`)
	assert.False(t, ctx.HadError(), "unexpected diagnostics: %v", kinds(ctx))
}

// S3 — trait conformance success.
func TestSema_TraitSatisfied(t *testing.T) {
	s, ctx := analyzeSource(t, `
		trait Show { func render() string; }
		struct P { }
		impl Show for P { func render() string { "p" } }
	`)
	require.False(t, ctx.HadError(), "unexpected diagnostics: %v", kinds(ctx))

	pType, ok := s.TypeDeclared("P")
	require.True(t, ok)
	structType := pType.(*types.StructType)
	require.Len(t, structType.Traits, 1)
	assert.Equal(t, "Show", structType.Traits[0].Name)

	method, ok := structType.GetMethod("render")
	require.True(t, ok)
	fnType := method.(*types.FunctionType)
	assert.True(t, fnType.ReturnType.Equivalent(types.StringType))
}

// S4 — missing trait method.
func TestSema_TraitNotSatisfied(t *testing.T) {
	_, ctx := analyzeSource(t, `
		trait Show { func render() string; }
		struct P { }
		impl Show for P { }
	`)
	require.True(t, ctx.HadError())
	require.Len(t, ctx.Diagnostics, 1)
	d := ctx.Diagnostics[0]
	assert.Equal(t, diag.TraitNotSatisfied, d.Kind)
	assert.Contains(t, d.Message, "render")
	assert.Contains(t, d.Message, "Show")
}

// S5 — precedence and associativity.
func TestSema_PrecedenceAndAssociativity(t *testing.T) {
	module, ctx := parseAndAnalyze(t, `imm x = 1 + 2 * 3 == 7 and not false;`)
	require.False(t, ctx.HadError(), "unexpected diagnostics: %v", kinds(ctx))

	vs := module.Statements[0].(*ast.VariableStmt)
	assert.True(t, vs.Initializer.Type().Equivalent(types.BoolType))

	logical := vs.Initializer.(*ast.LogicalExpr)
	assert.Equal(t, "and", string(logical.Operator.Type))
	equality, ok := logical.Left.(*ast.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, "==", string(equality.Operator.Type))
}

// S6 — string interpolation always yields string, regardless of the
// interpolated sub-expression's type.
func TestSema_StringInterpolation(t *testing.T) {
	module, ctx := parseAndAnalyze(t, "imm name = \"a\"; imm age = 1; imm s = \"hi \\(name), age \\(age)\";")
	require.False(t, ctx.HadError(), "unexpected diagnostics: %v", kinds(ctx))

	s := module.Statements[2].(*ast.VariableStmt)
	assert.True(t, s.Initializer.Type().Equivalent(types.StringType))
}

// Top-level bindings may reference each other regardless of order.
func TestSema_ForwardReferencedGlobals(t *testing.T) {
	_, ctx := analyzeSource(t, `
		imm a = b;
		imm b = 1;
	`)
	assert.False(t, ctx.HadError(), "unexpected diagnostics: %v", kinds(ctx))
}

// A global defined in terms of itself is a cycle, not infinite recursion.
func TestSema_GlobalDefinitionCycle(t *testing.T) {
	_, ctx := analyzeSource(t, `
		imm a = b;
		imm b = a;
	`)
	require.True(t, ctx.HadError())
	assert.Contains(t, kinds(ctx), diag.TypeError)
}

func TestSema_StructConstructorCall(t *testing.T) {
	s, ctx := analyzeSource(t, `
		struct Point { x: int; y: int; }
		imm p = Point(1, 2);
	`)
	require.False(t, ctx.HadError(), "unexpected diagnostics: %v", kinds(ctx))

	p, ok := s.VariableDeclared("p")
	require.True(t, ok)
	assert.Equal(t, "Point", p.Type.String())
}

func TestSema_UndeclaredName(t *testing.T) {
	_, ctx := analyzeSource(t, `func f() { missing }`)
	require.True(t, ctx.HadError())
	assert.Contains(t, kinds(ctx), diag.NameError)
}

func TestSema_BreakOutsideLoop(t *testing.T) {
	_, ctx := analyzeSource(t, `func f() { break; }`)
	require.True(t, ctx.HadError())
	assert.Contains(t, kinds(ctx), diag.FlowError)
}

func TestSema_BreakInsideLoop(t *testing.T) {
	_, ctx := analyzeSource(t, `
		func f() {
			mut i = 0;
			while i < 10 {
				i = i + 1;
				break;
			}
		}
	`)
	assert.False(t, ctx.HadError(), "unexpected diagnostics: %v", kinds(ctx))
}

func TestSema_ReturnTypeMismatch(t *testing.T) {
	_, ctx := analyzeSource(t, `func f() int { "not an int" }`)
	require.True(t, ctx.HadError())
	assert.Contains(t, kinds(ctx), diag.TypeError)
}

func TestSema_CallArgumentCountMismatch(t *testing.T) {
	_, ctx := analyzeSource(t, `
		func add(a: int, b: int) int { a + b }
		imm x = add(1);
	`)
	require.True(t, ctx.HadError())
	assert.Contains(t, kinds(ctx), diag.TypeError)
}

func TestSema_FieldAccess(t *testing.T) {
	_, ctx := analyzeSource(t, `
		struct Point { x: int; y: int; }
		imm p = Point(1, 2);
		imm px = p.x;
	`)
	assert.False(t, ctx.HadError(), "unexpected diagnostics: %v", kinds(ctx))
}

// parseAndAnalyze is like analyzeSource but also hands back the parsed
// module, for tests that need to inspect a specific node's resolved type.
func parseAndAnalyze(t *testing.T, src string) (*ast.Module, *diag.Context) {
	t.Helper()
	p := parser.NewParser(src)
	module := p.Parse()
	require.False(t, p.HasErrors(), "unexpected parse errors: %v", p.Ctx.Diagnostics)
	Analyze(p.Ctx, module)
	return module, p.Ctx
}
