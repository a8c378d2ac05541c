/*
File    : enact/sema/sema_typenames.go
*/
package sema

import (
	"github.com/enact-lang/enact/diag"
	"github.com/enact-lang/enact/typename"
	"github.com/enact-lang/enact/types"
)

var primitiveTypenames = map[string]types.Type{
	"int":     types.IntType,
	"i8":      &types.PrimitiveType{Primitive: types.I8},
	"i16":     &types.PrimitiveType{Primitive: types.I16},
	"i32":     &types.PrimitiveType{Primitive: types.I32},
	"i64":     &types.PrimitiveType{Primitive: types.I64},
	"uint":    &types.PrimitiveType{Primitive: types.Uint},
	"u8":      &types.PrimitiveType{Primitive: types.U8},
	"u16":     &types.PrimitiveType{Primitive: types.U16},
	"u32":     &types.PrimitiveType{Primitive: types.U32},
	"u64":     &types.PrimitiveType{Primitive: types.U64},
	"float":   types.FloatType,
	"f32":     &types.PrimitiveType{Primitive: types.F32},
	"f64":     &types.PrimitiveType{Primitive: types.F64},
	"bool":    types.BoolType,
	"dynamic": types.DynamicType,
	"nothing": types.NothingType,
	"string":  types.StringType,
}

// resolveTypename converts a surface Typename into a resolved Type.
//
// Reference and Optional typenames have no corresponding Type kind —
// they describe how a value is accessed (by reference, permission,
// region) or whether it may be absent, not a distinct structural shape —
// so both resolve straight through to their referent/wrapped type.
// Tuple and type-variable ($Name) typenames have no Type kind either;
// without generics instantiation there is no concrete type to give a
// variable, and without a tuple member in the closed Type set a tuple's
// static type is `dynamic`, matching how the rest of the type system
// already treats anything it cannot fully describe.
func (s *Sema) resolveTypename(tn typename.Typename) types.Type {
	switch t := tn.(type) {
	case *typename.BasicTypename:
		if t.NameStr == "" {
			return types.DynamicType
		}
		if prim, ok := primitiveTypenames[t.NameStr]; ok {
			return prim
		}
		if resolved, ok := s.globalTypes.At(t.NameStr); ok {
			return resolved
		}
		s.Ctx.Report(diag.NameError, t.WhereTok, "undeclared type '"+t.NameStr+"'")
		return types.DynamicType

	case *typename.ParametricTypename:
		if t.Constructor.Name() == "Array" && len(t.Parameters) == 1 {
			return &types.ArrayType{ElementType: s.resolveTypename(t.Parameters[0])}
		}
		s.Ctx.Report(diag.NameError, t.WhereTok, "unknown parametric type '"+t.Name()+"'")
		return types.DynamicType

	case *typename.TupleTypename:
		if t.IsUnit() {
			return types.NothingType
		}
		return types.DynamicType

	case *typename.FunctionTypename:
		params := make([]types.Type, len(t.Parameters))
		for i, p := range t.Parameters {
			params[i] = s.resolveTypename(p)
		}
		return &types.FunctionType{
			ReturnType:     s.resolveTypename(t.ReturnTypename),
			ParameterTypes: params,
		}

	case *typename.ReferenceTypename:
		return s.resolveTypename(t.Referent)

	case *typename.OptionalTypename:
		return s.resolveTypename(t.Wrapped)

	case *typename.VariableTypename:
		return types.DynamicType

	default:
		return types.DynamicType
	}
}
