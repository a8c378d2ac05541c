/*
File    : enact/sema/natives.go
*/
package sema

import "github.com/enact-lang/enact/types"

// seedNatives declares the handful of globals whose bodies are supplied
// by the runtime rather than Enact source: `print` and `put` write a
// value to standard output (with and without a trailing newline), and
// `dis` renders any value to its string form, the same rendering string
// interpolation invokes implicitly.
func seedNatives(s *Sema) {
	native := func(params ...types.Type) func(ret types.Type) *types.FunctionType {
		return func(ret types.Type) *types.FunctionType {
			return &types.FunctionType{ReturnType: ret, ParameterTypes: params, IsNative: true}
		}
	}

	s.globalVariables.Insert("print", &VariableInfo{
		Type:        native(types.DynamicType)(types.NothingType),
		Mutability:  Immutable,
		Initialized: true,
	})
	s.globalVariables.Insert("put", &VariableInfo{
		Type:        native(types.DynamicType)(types.NothingType),
		Mutability:  Immutable,
		Initialized: true,
	})
	s.globalVariables.Insert("dis", &VariableInfo{
		Type:        native(types.DynamicType)(types.StringType),
		Mutability:  Immutable,
		Initialized: true,
	})
}
