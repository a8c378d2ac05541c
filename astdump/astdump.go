/*
File    : enact/astdump/astdump.go
*/

// Package astdump implements the debug AST printer behind --debug-print-ast:
// an indented, one-line-per-node dump of a parsed module.
package astdump

import (
	"bytes"
	"fmt"
	"io"

	"github.com/enact-lang/enact/ast"
)

const indentSize = 2

// dumper accumulates the indented dump into a buffer as it walks a
// module's statement tree.
type dumper struct {
	indent int
	buf    bytes.Buffer
}

func (d *dumper) line(format string, args ...interface{}) {
	for i := 0; i < d.indent; i++ {
		d.buf.WriteByte(' ')
	}
	fmt.Fprintf(&d.buf, format, args...)
	d.buf.WriteByte('\n')
}

func (d *dumper) nested(body func()) {
	d.indent += indentSize
	body()
	d.indent -= indentSize
}

// Fprint writes an indented dump of module to w.
func Fprint(w io.Writer, module *ast.Module) {
	d := &dumper{}
	d.line("Module")
	d.nested(func() {
		for _, stmt := range module.Statements {
			d.stmt(stmt)
		}
	})
	io.WriteString(w, d.buf.String())
}

func (d *dumper) stmt(s ast.Stmt) {
	switch st := s.(type) {
	case *ast.VariableStmt:
		d.line("VariableStmt %s mut=%t", st.Name.Lexeme, st.IsMutable())
		d.nested(func() { d.expr(st.Initializer) })

	case *ast.ExpressionStmt:
		d.line("ExpressionStmt")
		d.nested(func() { d.expr(st.Expression) })

	case *ast.ReturnStmt:
		d.line("ReturnStmt")
		d.nested(func() { d.expr(st.Value) })

	case *ast.BreakStmt:
		d.line("BreakStmt")
		d.nested(func() { d.expr(st.Value) })

	case *ast.ContinueStmt:
		d.line("ContinueStmt")

	case *ast.FunctionStmt:
		d.line("FunctionStmt %s", st.Name.Lexeme)
		if st.HasBody {
			d.nested(func() { d.expr(st.Body) })
		}

	case *ast.StructStmt:
		d.line("StructStmt %s", st.Name.Lexeme)
		d.nested(func() {
			for _, f := range st.Fields {
				d.line("Field %s: %s", f.Name.Lexeme, f.Typename.Name())
			}
		})

	case *ast.EnumStmt:
		d.line("EnumStmt %s", st.Name.Lexeme)
		d.nested(func() {
			for _, v := range st.Variants {
				d.line("Variant %s", v.Name.Lexeme)
			}
		})

	case *ast.TraitStmt:
		d.line("TraitStmt %s", st.Name.Lexeme)
		d.nested(func() {
			for _, m := range st.Methods {
				d.line("Method %s", m.Name.Lexeme)
			}
		})

	case *ast.ImplStmt:
		d.line("ImplStmt %s", st.ImplementingTypename.Name())
		d.nested(func() {
			for _, m := range st.Methods {
				d.stmt(m)
			}
		})

	default:
		d.line("Stmt(%T)", st)
	}
}

func (d *dumper) expr(e ast.Expr) {
	if e == nil {
		d.line("<nil>")
		return
	}
	switch ex := e.(type) {
	case *ast.IntegerExpr:
		d.line("IntegerExpr %d", ex.Value)
	case *ast.FloatExpr:
		d.line("FloatExpr %g", ex.Value)
	case *ast.BooleanExpr:
		d.line("BooleanExpr %t", ex.Value)
	case *ast.StringExpr:
		d.line("StringExpr %q", ex.Value)
	case *ast.UnitExpr:
		d.line("UnitExpr")
	case *ast.SymbolExpr:
		d.line("SymbolExpr %s", ex.Name.Lexeme)
	case *ast.BinaryExpr:
		d.line("BinaryExpr %s", ex.Operator.Lexeme)
		d.nested(func() { d.expr(ex.Left); d.expr(ex.Right) })
	case *ast.LogicalExpr:
		d.line("LogicalExpr %s", ex.Operator.Lexeme)
		d.nested(func() { d.expr(ex.Left); d.expr(ex.Right) })
	case *ast.UnaryExpr:
		d.line("UnaryExpr %s", ex.Operator.Lexeme)
		d.nested(func() { d.expr(ex.Operand) })
	case *ast.AssignExpr:
		d.line("AssignExpr")
		d.nested(func() { d.expr(ex.Target); d.expr(ex.Value) })
	case *ast.CallExpr:
		d.line("CallExpr")
		d.nested(func() {
			d.expr(ex.Callee)
			for _, a := range ex.Arguments {
				d.expr(a)
			}
		})
	case *ast.FieldExpr:
		d.line("FieldExpr .%s", ex.Name.Lexeme)
		d.nested(func() { d.expr(ex.Object) })
	case *ast.CastExpr:
		d.line("CastExpr %s %s", ex.Operator.Lexeme, ex.Typename.Name())
		d.nested(func() { d.expr(ex.Value) })
	case *ast.ReferenceExpr:
		d.line("ReferenceExpr")
		d.nested(func() { d.expr(ex.Referent) })
	case *ast.TupleExpr:
		d.line("TupleExpr")
		d.nested(func() {
			for _, el := range ex.Elements {
				d.expr(el)
			}
		})
	case *ast.BlockExpr:
		d.line("BlockExpr")
		d.nested(func() {
			for _, st := range ex.Statements {
				d.stmt(st)
			}
			d.expr(ex.Value)
		})
	case *ast.IfExpr:
		d.line("IfExpr")
		d.nested(func() {
			d.expr(ex.Condition)
			d.expr(ex.Then)
			if ex.Else != nil {
				d.expr(ex.Else)
			}
		})
	case *ast.WhileExpr:
		d.line("WhileExpr")
		d.nested(func() { d.expr(ex.Condition); d.expr(ex.Body) })
	case *ast.ForExpr:
		d.line("ForExpr %s", ex.Name.Lexeme)
		d.nested(func() { d.expr(ex.Iterable); d.expr(ex.Body) })
	case *ast.SwitchExpr:
		d.line("SwitchExpr")
		d.nested(func() {
			d.expr(ex.Value)
			for _, c := range ex.Cases {
				d.line("Case")
				d.nested(func() { d.expr(c.Body) })
			}
		})
	case *ast.InterpolationExpr:
		d.line("InterpolationExpr")
		d.nested(func() { d.expr(ex.Interpolated); d.expr(ex.End) })
	default:
		d.line("Expr(%T)", ex)
	}
}
