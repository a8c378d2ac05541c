/*
File    : enact/sema/sema.go
*/

// Package sema implements Enact's two-pass semantic analyzer: SemaDecls
// registers every top-level name into the global scope with as much of
// its type as can be known without looking at any body or initializer,
// then SemaDefs walks the whole AST a second time, typing every
// expression and declaring local names as it descends into bodies.
//
// The split exists so that top-level declarations may reference each
// other in any order — a function may call another defined later in the
// file, a struct field may name a type declared further down — while
// local declarations inside a body must still appear before their use,
// exactly as the source reads.
package sema

import (
	"github.com/enact-lang/enact/ast"
	"github.com/enact-lang/enact/diag"
	"github.com/enact-lang/enact/lexer"
	"github.com/enact-lang/enact/types"
)

// Mutability classifies how a binding may be reassigned. Surface syntax
// only ever produces Immutable (`imm`) or Mutable (`mut`); BoxedSingleAssignment
// exists for a captured `imm` binding promoted to a heap box by closure
// conversion, a later compilation stage this front end does not perform.
type Mutability int

const (
	Immutable Mutability = iota
	BoxedSingleAssignment
	Mutable
)

func (m Mutability) String() string {
	switch m {
	case Immutable:
		return "immutable"
	case BoxedSingleAssignment:
		return "single-assignment-boxed"
	case Mutable:
		return "mutable"
	default:
		return "unknown"
	}
}

// VariableInfo is a symbol table entry for a name bound to a value: its
// type, how it may be reassigned, and whether it has been given a value
// yet. Type is nil until the binding's type has been resolved, which for
// a struct's constructor or a function happens immediately in SemaDecls, and for an
// `imm`/`mut` binding with no type annotation happens lazily in SemaDefs
// once its initializer has been analyzed.
type VariableInfo struct {
	Type        types.Type
	Mutability  Mutability
	Initialized bool
}

// Sema owns the global scope shared by both passes: every top-level
// struct/trait/enum/function name and every top-level imm/mut binding.
// Local scopes, pushed and popped as SemaDefs descends into bodies, live
// only for the duration of that pass (see scope.go).
type Sema struct {
	Ctx *diag.Context

	globalVariables *types.OrderedMap[*VariableInfo]
	globalTypes     *types.OrderedMap[types.Type]
	typeSites       map[string]lexer.Token
}

// NewSema creates a Sema reporting into ctx, with no global names
// declared yet.
func NewSema(ctx *diag.Context) *Sema {
	return &Sema{
		Ctx:             ctx,
		globalVariables: types.NewOrderedMap[*VariableInfo](),
		globalTypes:     types.NewOrderedMap[types.Type](),
		typeSites:       make(map[string]lexer.Token),
	}
}

// DeclareVariable registers name in the global scope. Reports a
// NameError and leaves the existing entry untouched if name is already
// declared globally.
func (s *Sema) DeclareVariable(where ast.Stmt, name string, info *VariableInfo) {
	if s.globalVariables.Contains(name) {
		s.Ctx.Report(diag.NameError, where.Where(), "redeclaration of '"+name+"' at global scope")
		return
	}
	s.globalVariables.Insert(name, info)
}

// DeclareType registers a type name in the global scope, subject to the
// same redeclaration check as DeclareVariable.
func (s *Sema) DeclareType(where ast.Stmt, name string, value types.Type) {
	if s.globalTypes.Contains(name) {
		s.Ctx.Report(diag.NameError, where.Where(), "redeclaration of '"+name+"' at global scope")
		return
	}
	s.globalTypes.Insert(name, value)
	s.typeSites[name] = where.Where()
}

// TypeSite returns the token where a global type was declared, for
// diagnostics raised against the type itself rather than a specific use
// of it (e.g. the deferred trait satisfaction check).
func (s *Sema) TypeSite(name string) lexer.Token {
	return s.typeSites[name]
}

// DefineVariable marks a global binding's type resolved and initialized.
func (s *Sema) DefineVariable(name string, t types.Type) {
	info, ok := s.globalVariables.At(name)
	if !ok {
		return
	}
	info.Type = t
	info.Initialized = true
}

// VariableDeclared looks up a global binding by name.
func (s *Sema) VariableDeclared(name string) (*VariableInfo, bool) {
	return s.globalVariables.At(name)
}

// TypeDeclared looks up a global type by name.
func (s *Sema) TypeDeclared(name string) (types.Type, bool) {
	return s.globalTypes.At(name)
}

// GlobalTypeNames returns every declared global type name, in
// declaration order. Used by the post-definition trait satisfaction
// pass to visit every struct exactly once.
func (s *Sema) GlobalTypeNames() []string {
	return s.globalTypes.Keys()
}

// Analyze runs both passes (plus the deferred trait satisfaction check)
// over module and returns the Sema that did the work, so callers can
// inspect the resolved global scope afterward (e.g. a REPL printing a
// top-level binding's type). Each phase runs even if an earlier one
// reported errors, matching the "continue best-effort on remaining,
// independent declarations" cancellation policy; callers should check
// ctx.HadError() before trusting the result for anything beyond
// diagnostics.
func Analyze(ctx *diag.Context, module *ast.Module) *Sema {
	s := NewSema(ctx)
	seedNatives(s)

	decls := newSemaDecls(s)
	decls.declareModule(module)

	defs := newSemaDefs(s)
	defs.defineModule(module)

	checkTraitSatisfaction(s)

	return s
}
