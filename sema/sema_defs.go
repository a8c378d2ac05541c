/*
File    : enact/sema/sema_defs.go
*/
package sema

import (
	"github.com/enact-lang/enact/ast"
	"github.com/enact-lang/enact/diag"
	"github.com/enact-lang/enact/types"
)

// semaDefs is the second pass: it walks the whole module again, this
// time computing and attaching a type to every expression and declaring
// local names as their binding statements are reached. Top-level
// variable initializers are resolved lazily — the first reference to a
// not-yet-defined global triggers its definition on the spot — so that
// top-level bindings may still reference each other regardless of
// source order, the same freedom SemaDecls already gave struct/trait/
// function declarations.
type semaDefs struct {
	sema *Sema

	scope           *localScope // nil while analyzing at global (top-level) scope
	functionStack   []*types.FunctionType
	loopDepth       int
	globalVarStmts  map[string]*ast.VariableStmt
	definingGlobals map[string]bool
}

func newSemaDefs(sema *Sema) *semaDefs {
	return &semaDefs{
		sema:            sema,
		globalVarStmts:  make(map[string]*ast.VariableStmt),
		definingGlobals: make(map[string]bool),
	}
}

func (d *semaDefs) defineModule(module *ast.Module) {
	for _, stmt := range module.Statements {
		if vs, ok := stmt.(*ast.VariableStmt); ok {
			d.globalVarStmts[vs.Name.Lexeme] = vs
		}
	}
	for _, stmt := range module.Statements {
		d.analyzeStmt(stmt)
	}
}

// inFunction reports whether analysis is currently inside a function or
// method body.
func (d *semaDefs) inFunction() bool {
	return len(d.functionStack) > 0
}

func (d *semaDefs) currentFunction() *types.FunctionType {
	if !d.inFunction() {
		return nil
	}
	return d.functionStack[len(d.functionStack)-1]
}

func (d *semaDefs) pushFunction(fn *types.FunctionType) {
	d.functionStack = append(d.functionStack, fn)
}

func (d *semaDefs) popFunction() {
	d.functionStack = d.functionStack[:len(d.functionStack)-1]
}

func (d *semaDefs) beginScope() {
	d.scope = newLocalScope(d.scope)
}

func (d *semaDefs) endScope() {
	d.scope = d.scope.parent
}

// declareLocal binds name in the innermost scope if one is open
// (otherwise the binding is global, already declared by SemaDecls).
// Reports NameError on redeclaration within the same scope.
func (d *semaDefs) declareLocal(where ast.Stmt, name string, info *VariableInfo) {
	if d.scope == nil {
		d.sema.DefineVariable(name, info.Type)
		return
	}
	if !d.scope.declare(name, info) {
		d.sema.Ctx.Report(diag.NameError, where.Where(), "redeclaration of '"+name+"' in this scope")
	}
}

// lookupVariable finds name's VariableInfo, searching local scopes
// innermost-first and falling back to the global scope. A global hit
// that has not been defined yet is resolved lazily before being
// returned.
func (d *semaDefs) lookupVariable(name string) (*VariableInfo, bool) {
	if d.scope != nil {
		if info, ok := d.scope.lookup(name); ok {
			return info, true
		}
	}
	if info, ok := d.sema.VariableDeclared(name); ok {
		if !info.Initialized {
			d.defineGlobalVariable(name)
		}
		return info, true
	}
	return nil, false
}

// defineGlobalVariable resolves a top-level imm/mut binding's initializer
// on first reference, guarding against a definition cycle (`imm a = b;
// imm b = a;`).
func (d *semaDefs) defineGlobalVariable(name string) {
	stmt, ok := d.globalVarStmts[name]
	if !ok {
		return
	}
	if d.definingGlobals[name] {
		d.sema.Ctx.Report(diag.TypeError, stmt.Where(), "'"+name+"' is defined in terms of itself")
		return
	}
	d.definingGlobals[name] = true
	d.analyzeVariableStmt(stmt)
	delete(d.definingGlobals, name)
}

// analyzeStmt dispatches on a statement's kind. It is used uniformly for
// top-level statements and for statements nested inside a block.
func (d *semaDefs) analyzeStmt(stmt ast.Stmt) {
	switch st := stmt.(type) {
	case *ast.VariableStmt:
		d.analyzeVariableStmt(st)
	case *ast.ExpressionStmt:
		d.analyzeExpr(st.Expression)
	case *ast.ReturnStmt:
		d.analyzeReturnStmt(st)
	case *ast.BreakStmt:
		d.analyzeBreakStmt(st)
	case *ast.ContinueStmt:
		d.analyzeContinueStmt(st)
	case *ast.FunctionStmt:
		if st.ResolvedType == nil {
			return
		}
		d.analyzeFunctionBody(st, st.ResolvedType.(*types.FunctionType))
	case *ast.ImplStmt:
		d.analyzeImpl(st)
	case *ast.StructStmt, *ast.EnumStmt, *ast.TraitStmt:
		// Field/variant/method typenames were already resolved in
		// SemaDecls; these productions carry no body to analyze.
	}
}

func (d *semaDefs) analyzeVariableStmt(st *ast.VariableStmt) {
	initType := d.analyzeExpr(st.Initializer)

	declared, hasGlobal := d.sema.VariableDeclared(st.Name.Lexeme)
	var annotated types.Type
	if hasGlobal && declared.Type != nil && !isEmptyTypename(st.Typename) {
		annotated = declared.Type
	} else if !isEmptyTypename(st.Typename) {
		annotated = d.sema.resolveTypename(st.Typename)
	}

	resultType := initType
	if annotated != nil {
		if !annotated.Compatible(initType) {
			d.sema.Ctx.Report(diag.TypeError, st.Where(),
				"cannot assign "+initType.String()+" to "+st.Name.Lexeme+" of type "+annotated.String())
		}
		resultType = annotated
	}

	mutability := Immutable
	if st.IsMutable() {
		mutability = Mutable
	}
	d.declareLocal(st, st.Name.Lexeme, &VariableInfo{Type: resultType, Mutability: mutability, Initialized: true})
}

func (d *semaDefs) analyzeReturnStmt(st *ast.ReturnStmt) {
	valueType := d.analyzeExpr(st.Value)
	if !d.inFunction() {
		d.sema.Ctx.Report(diag.FlowError, st.Where(), "'return' outside a function")
		return
	}
	fn := d.currentFunction()
	if !fn.ReturnType.Compatible(valueType) {
		d.sema.Ctx.Report(diag.TypeError, st.Where(),
			"return type "+valueType.String()+" is not compatible with declared return type "+fn.ReturnType.String())
	}
}

func (d *semaDefs) analyzeBreakStmt(st *ast.BreakStmt) {
	d.analyzeExpr(st.Value)
	if d.loopDepth == 0 {
		d.sema.Ctx.Report(diag.FlowError, st.Where(), "'break' outside a loop")
	}
}

func (d *semaDefs) analyzeContinueStmt(st *ast.ContinueStmt) {
	if d.loopDepth == 0 {
		d.sema.Ctx.Report(diag.FlowError, st.Where(), "'continue' outside a loop")
	}
}

// analyzeFunctionBody type-checks a function or method body against its
// already-resolved signature: push the function, push a scope, declare
// its parameters, analyze the block, and check the block's trailing
// value against the declared return type.
func (d *semaDefs) analyzeFunctionBody(fn *ast.FunctionStmt, fnType *types.FunctionType) {
	if !fn.HasBody {
		return
	}
	d.pushFunction(fnType)
	d.beginScope()

	for i, param := range fn.Params {
		d.scope.declare(param.Name.Lexeme, &VariableInfo{
			Type:        fnType.ParameterTypes[i],
			Mutability:  Immutable,
			Initialized: true,
		})
	}

	bodyType := d.analyzeBlock(fn.Body)
	if !fnType.ReturnType.Compatible(bodyType) {
		d.sema.Ctx.Report(diag.TypeError, fn.Body.Where(),
			"function '"+fn.Name.Lexeme+"' returns "+bodyType.String()+", declared "+fnType.ReturnType.String())
	}

	d.endScope()
	d.popFunction()
}

func (d *semaDefs) analyzeImpl(st *ast.ImplStmt) {
	implementingType := d.sema.resolveTypename(st.ImplementingTypename)
	structType, ok := implementingType.(*types.StructType)
	if !ok {
		return
	}
	for _, method := range st.Methods {
		methodType, ok := structType.GetMethod(method.Name.Lexeme)
		if !ok {
			continue
		}
		d.analyzeFunctionBody(method, methodType.(*types.FunctionType))
	}
}

// analyzeBlock analyzes a block expression's statements and trailing
// value in a fresh scope, and returns the value's type (the block's own
// type).
func (d *semaDefs) analyzeBlock(block *ast.BlockExpr) types.Type {
	d.beginScope()
	for _, stmt := range block.Statements {
		d.analyzeStmt(stmt)
	}
	valueType := d.analyzeExpr(block.Value)
	d.endScope()
	block.SetType(valueType)
	return valueType
}
