/*
File    : enact/parser/parser_test.go
*/
package parser

import (
	"testing"

	"github.com/enact-lang/enact/ast"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseModule(t *testing.T, src string) *ast.Module {
	t.Helper()
	p := NewParser(src)
	module := p.Parse()
	require.False(t, p.HasErrors(), "unexpected parse errors: %v", p.Ctx.Diagnostics)
	return module
}

func TestParser_VariableDeclaration(t *testing.T) {
	module := parseModule(t, `imm x = 1; mut y: string = "hi";`)
	require.Len(t, module.Statements, 2)

	x := module.Statements[0].(*ast.VariableStmt)
	assert.Equal(t, "x", x.Name.Lexeme)
	assert.False(t, x.IsMutable())

	y := module.Statements[1].(*ast.VariableStmt)
	assert.Equal(t, "y", y.Name.Lexeme)
	assert.True(t, y.IsMutable())
	assert.Equal(t, "string", y.Typename.Name())
}

func TestParser_FunctionDeclaration(t *testing.T) {
	module := parseModule(t, `func add(a: int, b: int) int { a + b }`)
	require.Len(t, module.Statements, 1)

	fn := module.Statements[0].(*ast.FunctionStmt)
	assert.Equal(t, "add", fn.Name.Lexeme)
	require.Len(t, fn.Params, 2)
	assert.Equal(t, "a", fn.Params[0].Name.Lexeme)
	assert.Equal(t, "int", fn.Params[0].Typename.Name())
	assert.Equal(t, "int", fn.ReturnTypename.Name())
	require.True(t, fn.HasBody)
	require.NotNil(t, fn.Body.Value)
}

func TestParser_FunctionArrowBody(t *testing.T) {
	module := parseModule(t, `func square(x: int) int => x * x`)
	fn := module.Statements[0].(*ast.FunctionStmt)
	assert.Empty(t, fn.Body.Statements)
	bin, ok := fn.Body.Value.(*ast.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, "*", string(bin.Operator.Type))
}

func TestParser_StructDeclaration(t *testing.T) {
	module := parseModule(t, `struct Point { x: int; y: int; }`)
	st := module.Statements[0].(*ast.StructStmt)
	assert.Equal(t, "Point", st.Name.Lexeme)
	require.Len(t, st.Fields, 2)
	assert.Equal(t, "x", st.Fields[0].Name.Lexeme)
	assert.Equal(t, "int", st.Fields[1].Typename.Name())
}

func TestParser_EnumDeclaration(t *testing.T) {
	module := parseModule(t, `enum Shape { circle float; square float; empty; }`)
	en := module.Statements[0].(*ast.EnumStmt)
	require.Len(t, en.Variants, 3)
	assert.Equal(t, "circle", en.Variants[0].Name.Lexeme)
	assert.Equal(t, "float", en.Variants[0].Typename.Name())
	assert.Nil(t, en.Variants[2].Typename)
}

func TestParser_TraitAndInherentImpl(t *testing.T) {
	module := parseModule(t, `
		trait Show { func render() string; }
		struct P { x: int; }
		impl Show for P { func render() string { "p" } }
		impl P { func magnitude() int { 0 } }
	`)
	require.Len(t, module.Statements, 4)

	traitImpl := module.Statements[2].(*ast.ImplStmt)
	assert.True(t, traitImpl.IsTraitImpl())
	assert.Equal(t, "P", traitImpl.ImplementingTypename.Name())
	assert.Equal(t, "Show", traitImpl.TraitTypename.Name())

	inherentImpl := module.Statements[3].(*ast.ImplStmt)
	assert.False(t, inherentImpl.IsTraitImpl())
	assert.Equal(t, "P", inherentImpl.ImplementingTypename.Name())
}

func TestParser_IfElseIfChain(t *testing.T) {
	module := parseModule(t, `
		imm result = if x == 1 { 1 } else if x == 2 { 2 } else { 3 };
	`)
	decl := module.Statements[0].(*ast.VariableStmt)
	outer := decl.Initializer.(*ast.IfExpr)
	nested, ok := outer.Else.(*ast.IfExpr)
	require.True(t, ok)
	assert.NotNil(t, nested.Else)
}

func TestParser_WhileAndForExpressions(t *testing.T) {
	module := parseModule(t, `
		while x < 10 { x = x + 1; };
		for item in items { print(item); };
	`)
	_, ok := module.Statements[0].(*ast.ExpressionStmt).Expression.(*ast.WhileExpr)
	assert.True(t, ok)

	forExpr := module.Statements[1].(*ast.ExpressionStmt).Expression.(*ast.ForExpr)
	assert.Equal(t, "item", forExpr.Name.Lexeme)
}

func TestParser_SwitchExpression(t *testing.T) {
	module := parseModule(t, `
		imm described = switch n {
			case 0 => "zero";
			case 1 when flag => "one, flagged";
			default => "many";
		};
	`)
	decl := module.Statements[0].(*ast.VariableStmt)
	sw := decl.Initializer.(*ast.SwitchExpr)
	require.Len(t, sw.Cases, 3)

	_, isWildcard := sw.Cases[2].Pattern.(*ast.WildcardPattern)
	assert.True(t, isWildcard)
	assert.NotNil(t, sw.Cases[1].Predicate)
}

func TestParser_TupleAndUnit(t *testing.T) {
	module := parseModule(t, `imm pair = (1, 2); imm nothing = ();`)
	pair := module.Statements[0].(*ast.VariableStmt).Initializer.(*ast.TupleExpr)
	require.Len(t, pair.Elements, 2)

	_, isUnit := module.Statements[1].(*ast.VariableStmt).Initializer.(*ast.UnitExpr)
	assert.True(t, isUnit)
}

func TestParser_ReferenceExpression(t *testing.T) {
	module := parseModule(t, `imm r = &mut rc counter;`)
	ref := module.Statements[0].(*ast.VariableStmt).Initializer.(*ast.ReferenceExpr)
	assert.True(t, ref.HasPermission())
	assert.True(t, ref.HasRegion())
	assert.Equal(t, "mut", ref.Permission.Lexeme)
	assert.Equal(t, "rc", ref.Region.Lexeme)
}

func TestParser_StringInterpolation(t *testing.T) {
	module := parseModule(t, `imm s = "hi \(name), age \(age)";`)
	interp := module.Statements[0].(*ast.VariableStmt).Initializer.(*ast.InterpolationExpr)
	assert.Equal(t, "hi ", interp.Start.Value)

	sym, ok := interp.Interpolated.(*ast.SymbolExpr)
	require.True(t, ok)
	assert.Equal(t, "name", sym.Name.Lexeme)

	tail, ok := interp.End.(*ast.InterpolationExpr)
	require.True(t, ok)
	assert.Equal(t, ", age ", tail.Start.Value)
}

func TestParser_PrecedenceArithmeticOverLogical(t *testing.T) {
	module := parseModule(t, `imm x = a + b == c and d;`)
	decl := module.Statements[0].(*ast.VariableStmt)
	logical := decl.Initializer.(*ast.LogicalExpr)
	assert.Equal(t, "and", string(logical.Operator.Type))

	equality := logical.Left.(*ast.BinaryExpr)
	assert.Equal(t, "==", string(equality.Operator.Type))

	additive := equality.Left.(*ast.BinaryExpr)
	assert.Equal(t, "+", string(additive.Operator.Type))
}

func TestParser_AssignmentIsRightAssociative(t *testing.T) {
	module := parseModule(t, `a = b = 1;`)
	outer := module.Statements[0].(*ast.ExpressionStmt).Expression.(*ast.AssignExpr)
	inner, ok := outer.Value.(*ast.AssignExpr)
	require.True(t, ok)
	assert.IsType(t, &ast.IntegerExpr{}, inner.Value)
}

func TestParser_CallAndFieldChain(t *testing.T) {
	module := parseModule(t, `imm v = obj.method(1, 2).field;`)
	field := module.Statements[0].(*ast.VariableStmt).Initializer.(*ast.FieldExpr)
	assert.Equal(t, "field", field.Name.Lexeme)

	call := field.Object.(*ast.CallExpr)
	require.Len(t, call.Arguments, 2)
}

func TestParser_CastAndRange(t *testing.T) {
	module := parseModule(t, `imm n = 1..10; imm f = x as float;`)
	rangeExpr := module.Statements[0].(*ast.VariableStmt).Initializer.(*ast.BinaryExpr)
	assert.Equal(t, "..", string(rangeExpr.Operator.Type))

	cast := module.Statements[1].(*ast.VariableStmt).Initializer.(*ast.CastExpr)
	assert.Equal(t, "as", string(cast.Operator.Type))
	assert.Equal(t, "float", cast.Typename.Name())
}

func TestParser_FunctionTypenameParameter(t *testing.T) {
	module := parseModule(t, `func apply(f: (int, int) => int) int { 0 }`)
	fn := module.Statements[0].(*ast.FunctionStmt)
	assert.Equal(t, "(int, int) => int", fn.Params[0].Typename.Name())
}

func TestParser_ReferenceTypename(t *testing.T) {
	module := parseModule(t, `struct Box { value: &imm gc int; }`)
	st := module.Statements[0].(*ast.StructStmt)
	assert.Equal(t, "&imm gc int", st.Fields[0].Typename.Name())
}

func TestParser_ErrorRecoverySynchronises(t *testing.T) {
	p := NewParser(`struct { x: int; } struct Good { y: int; }`)
	module := p.Parse()
	require.True(t, p.HasErrors())

	var names []string
	for _, stmt := range module.Statements {
		if st, ok := stmt.(*ast.StructStmt); ok {
			names = append(names, st.Name.Lexeme)
		}
	}
	assert.Contains(t, names, "Good")
}

func TestParser_MissingSemicolonReportsError(t *testing.T) {
	p := NewParser(`imm x = 1`)
	p.Parse()
	assert.True(t, p.HasErrors())
}

func TestParser_TooManyArgumentsReportsError(t *testing.T) {
	args := "f("
	for i := 0; i < 300; i++ {
		if i > 0 {
			args += ", "
		}
		args += "1"
	}
	args += ");"

	p := NewParser(args)
	p.Parse()
	assert.True(t, p.HasErrors())
}
