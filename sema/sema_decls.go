/*
File    : enact/sema/sema_decls.go
*/
package sema

import (
	"github.com/enact-lang/enact/ast"
	"github.com/enact-lang/enact/diag"
	"github.com/enact-lang/enact/typename"
	"github.com/enact-lang/enact/types"
)

// semaDecls is the first pass over a module: it registers every
// top-level name into the global scope before any body or initializer is
// looked at, so declarations may reference each other regardless of the
// order they appear in source.
//
// It runs in two internal sweeps. The first gives every struct/enum/trait
// a name and a placeholder type, so that any typename appearing anywhere
// else in the module can already resolve the identity of that type (even
// though its fields/methods aren't filled in yet). The second sweep then
// resolves field types, method signatures, function signatures, and impl
// method tables, all of which may reference any type from the first
// sweep no matter where it was declared.
type semaDecls struct {
	sema *Sema
}

func newSemaDecls(sema *Sema) *semaDecls {
	return &semaDecls{sema: sema}
}

func (d *semaDecls) declareModule(module *ast.Module) {
	for _, stmt := range module.Statements {
		d.registerName(stmt)
	}
	for _, stmt := range module.Statements {
		d.resolveContent(stmt)
	}
}

// registerName is the first sweep: give struct/enum/trait declarations a
// name and an empty placeholder type.
func (d *semaDecls) registerName(stmt ast.Stmt) {
	switch st := stmt.(type) {
	case *ast.StructStmt:
		structType := &types.StructType{
			Name:    st.Name.Lexeme,
			Fields:  types.NewOrderedMap[types.Type](),
			Methods: types.NewOrderedMap[types.Type](),
		}
		st.ResolvedType = structType
		d.sema.DeclareType(st, st.Name.Lexeme, structType)
		d.sema.DeclareVariable(st, st.Name.Lexeme, &VariableInfo{
			Type: &types.ConstructorType{
				StructType:      structType,
				AssocProperties: types.NewOrderedMap[types.Type](),
			},
			Mutability:  Immutable,
			Initialized: true,
		})

	case *ast.EnumStmt:
		// An enum is given the resolved shape of a struct: one field per
		// variant, named after the variant and typed by its payload (or
		// `nothing` for a payload-less variant). The closed Type set has
		// no dedicated enum kind, and nothing in the semantic rules
		// describes constructing or matching a specific variant, so this
		// is as far as an enum's static type goes in this front end — it
		// is named, it is distinct, and its variants are visible as
		// fields for whatever later phase needs them.
		enumType := &types.StructType{
			Name:    st.Name.Lexeme,
			Fields:  types.NewOrderedMap[types.Type](),
			Methods: types.NewOrderedMap[types.Type](),
		}
		st.ResolvedType = enumType
		d.sema.DeclareType(st, st.Name.Lexeme, enumType)

	case *ast.TraitStmt:
		traitType := &types.TraitType{
			Name:    st.Name.Lexeme,
			Methods: types.NewOrderedMap[types.Type](),
		}
		st.ResolvedType = traitType
		d.sema.DeclareType(st, st.Name.Lexeme, traitType)
	}
}

// resolveContent is the second sweep: fill in what registerName left
// unresolved, plus register function and variable names (which have
// nothing to pre-declare, since they carry no type identity of their
// own for other declarations to reference).
func (d *semaDecls) resolveContent(stmt ast.Stmt) {
	switch st := stmt.(type) {
	case *ast.StructStmt:
		structType := st.ResolvedType.(*types.StructType)
		for _, field := range st.Fields {
			structType.Fields.Insert(field.Name.Lexeme, d.sema.resolveTypename(field.Typename))
		}

	case *ast.EnumStmt:
		enumType := st.ResolvedType.(*types.StructType)
		for _, variant := range st.Variants {
			payload := types.Type(types.NothingType)
			if variant.Typename != nil {
				payload = d.sema.resolveTypename(variant.Typename)
			}
			enumType.Fields.Insert(variant.Name.Lexeme, payload)
		}

	case *ast.TraitStmt:
		traitType := st.ResolvedType.(*types.TraitType)
		for _, method := range st.Methods {
			traitType.Methods.Insert(method.Name.Lexeme, d.functionType(method, true))
		}

	case *ast.FunctionStmt:
		funcType := d.functionType(st, false)
		st.ResolvedType = funcType
		d.sema.DeclareVariable(st, st.Name.Lexeme, &VariableInfo{
			Type:        funcType,
			Mutability:  Immutable,
			Initialized: true,
		})

	case *ast.ImplStmt:
		d.declareImpl(st)

	case *ast.VariableStmt:
		info := &VariableInfo{Mutability: Immutable, Initialized: false}
		if st.IsMutable() {
			info.Mutability = Mutable
		}
		if !isEmptyTypename(st.Typename) {
			info.Type = d.sema.resolveTypename(st.Typename)
		}
		d.sema.DeclareVariable(st, st.Name.Lexeme, info)
	}
}

// functionType builds a resolved function signature from a FunctionStmt's
// parameter and return typenames. isMethod marks a signature that binds
// an implicit receiver (trait method and impl method declarations never
// list it among Params).
func (d *semaDecls) functionType(fn *ast.FunctionStmt, isMethod bool) *types.FunctionType {
	params := make([]types.Type, len(fn.Params))
	for i, p := range fn.Params {
		params[i] = d.sema.resolveTypename(p.Typename)
	}
	returnType := types.Type(types.NothingType)
	if !isEmptyTypename(fn.ReturnTypename) {
		returnType = d.sema.resolveTypename(fn.ReturnTypename)
	}
	return &types.FunctionType{ReturnType: returnType, ParameterTypes: params, IsMethod: isMethod}
}

func (d *semaDecls) declareImpl(st *ast.ImplStmt) {
	implementingType := d.sema.resolveTypename(st.ImplementingTypename)
	structType, ok := implementingType.(*types.StructType)
	if !ok {
		d.sema.Ctx.Report(diag.TypeError, st.Where(), "impl target '"+st.ImplementingTypename.Name()+"' is not a struct")
		return
	}

	for _, method := range st.Methods {
		structType.Methods.Insert(method.Name.Lexeme, d.functionType(method, true))
	}

	if !st.IsTraitImpl() {
		return
	}

	traitValue := d.sema.resolveTypename(st.TraitTypename)
	traitType, ok := traitValue.(*types.TraitType)
	if !ok {
		d.sema.Ctx.Report(diag.NameError, st.Where(), "'"+st.TraitTypename.Name()+"' is not a trait")
		return
	}
	if _, already := structType.FindTrait(traitType); !already {
		structType.Traits = append(structType.Traits, traitType)
	}
}

// isEmptyTypename reports whether tn is the empty BasicTypename sentinel
// the typename parser returns when an optional annotation was omitted.
func isEmptyTypename(tn typename.Typename) bool {
	basic, ok := tn.(*typename.BasicTypename)
	return ok && basic.NameStr == ""
}
