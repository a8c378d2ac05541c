/*
File    : enact/sema/sema_traits.go
*/
package sema

import (
	"github.com/enact-lang/enact/diag"
	"github.com/enact-lang/enact/types"
)

// checkTraitSatisfaction runs once, after every type definition in the
// module has been fully resolved, and verifies that every struct lists
// only traits it actually implements: one matching method, by name and
// signature, for every method the trait declares.
func checkTraitSatisfaction(s *Sema) {
	for _, name := range s.GlobalTypeNames() {
		t, _ := s.TypeDeclared(name)
		structType, ok := t.(*types.StructType)
		if !ok {
			continue
		}
		where := s.TypeSite(name)

		for _, trait := range structType.Traits {
			for _, methodName := range trait.Methods.Keys() {
				traitMethod, _ := trait.Methods.At(methodName)

				structMethod, found := structType.GetMethod(methodName)
				if !found {
					s.Ctx.Report(diag.TraitNotSatisfied, where,
						"'"+structType.Name+"' does not satisfy trait '"+trait.Name+"': missing method '"+methodName+"'")
					continue
				}
				if !traitMethod.Compatible(structMethod) {
					s.Ctx.Report(diag.TraitNotSatisfied, where,
						"'"+structType.Name+"' does not satisfy trait '"+trait.Name+"': '"+methodName+
							"' has signature "+structMethod.String()+", expected "+traitMethod.String())
				}
			}
		}
	}
}
