/*
File    : enact/types/type.go
*/

// Package types holds the resolved-type model: the sum type SemaDefs
// builds as it types every expression. Unlike typename.Typename, a Type
// answers "what type is this" with full semantic meaning — structural
// equivalence, loose compatibility, and (for struct/trait/constructor
// types) ordered member tables for future codegen offset assignment.
//
// types intentionally has no dependency on the ast package: a Type only
// ever references other Types, never AST nodes, so ast is free to import
// types for every expression's resolved-type field without a cycle.
package types

import (
	"github.com/enact-lang/enact/lexer"
	"github.com/enact-lang/enact/typename"
)

// lexerZeroToken produces a synthetic token for Typenames manufactured
// from a resolved Type (toTypename, used by diagnostics and the round-trip
// property), which have no single point in the source they came from.
func lexerZeroToken() lexer.Token {
	return lexer.Synthetic("<synthesized>")
}

// Kind identifies which Type variant a value holds.
type Kind int

const (
	PrimitiveKind Kind = iota
	ArrayKind
	FunctionKind
	TraitKind
	StructKind
	ConstructorKind
)

func (k Kind) String() string {
	switch k {
	case PrimitiveKind:
		return "Primitive"
	case ArrayKind:
		return "Array"
	case FunctionKind:
		return "Function"
	case TraitKind:
		return "Trait"
	case StructKind:
		return "Struct"
	case ConstructorKind:
		return "Constructor"
	default:
		return "Unknown"
	}
}

// Type is the common interface implemented by every resolved type.
type Type interface {
	Kind() Kind
	String() string
	ToTypename() typename.Typename

	// Equivalent is strict structural equality: same kind, same shape.
	Equivalent(other Type) bool

	// Compatible is loose equality: equivalent, OR dynamic on either
	// side, OR (for numeric primitives) safely widenable.
	Compatible(other Type) bool
}

// Primitive enumerates Enact's built-in scalar kinds: the signed and
// unsigned integer families, the float family, bool, and the three
// synthetic kinds dynamic/nothing/string.
type Primitive int

const (
	Int Primitive = iota
	I8
	I16
	I32
	I64
	Uint
	U8
	U16
	U32
	U64
	FloatP
	F32
	F64
	Bool
	Dynamic
	Nothing
	String
)

var primitiveNames = map[Primitive]string{
	Int: "int", I8: "i8", I16: "i16", I32: "i32", I64: "i64",
	Uint: "uint", U8: "u8", U16: "u16", U32: "u32", U64: "u64",
	FloatP: "float", F32: "f32", F64: "f64",
	Bool: "bool", Dynamic: "dynamic", Nothing: "nothing", String: "string",
}

func (p Primitive) String() string { return primitiveNames[p] }

var signedIntKinds = map[Primitive]bool{Int: true, I8: true, I16: true, I32: true, I64: true}
var unsignedIntKinds = map[Primitive]bool{Uint: true, U8: true, U16: true, U32: true, U64: true}
var floatKinds = map[Primitive]bool{FloatP: true, F32: true, F64: true}

// PrimitiveType is a resolved primitive scalar.
type PrimitiveType struct {
	Primitive Primitive
}

// Shared singletons for the commonly referenced primitives, mirroring the
// original compiler's INT_TYPE/FLOAT_TYPE/... globals.
var (
	IntType     = &PrimitiveType{Primitive: Int}
	FloatType   = &PrimitiveType{Primitive: FloatP}
	BoolType    = &PrimitiveType{Primitive: Bool}
	StringType  = &PrimitiveType{Primitive: String}
	DynamicType = &PrimitiveType{Primitive: Dynamic}
	NothingType = &PrimitiveType{Primitive: Nothing}
)

func (t *PrimitiveType) Kind() Kind     { return PrimitiveKind }
func (t *PrimitiveType) String() string { return t.Primitive.String() }

func (t *PrimitiveType) ToTypename() typename.Typename {
	return typename.NewBasic(t.Primitive.String(), lexerZeroToken())
}

func (t *PrimitiveType) Equivalent(other Type) bool {
	o, ok := other.(*PrimitiveType)
	return ok && o.Primitive == t.Primitive
}

func (t *PrimitiveType) Compatible(other Type) bool {
	if t.Equivalent(other) {
		return true
	}
	if t.Primitive == Dynamic {
		return true
	}
	o, ok := other.(*PrimitiveType)
	if !ok {
		return false
	}
	if o.Primitive == Dynamic {
		return true
	}
	return numericWidens(t.Primitive, o.Primitive)
}

// numericWidens reports whether a value of kind `from` may be used where
// `to` is expected without an explicit cast: same numeric family
// (signed/unsigned/float), any width.
func numericWidens(from, to Primitive) bool {
	if signedIntKinds[from] && signedIntKinds[to] {
		return true
	}
	if unsignedIntKinds[from] && unsignedIntKinds[to] {
		return true
	}
	if floatKinds[from] && floatKinds[to] {
		return true
	}
	return false
}

// IsNumeric reports whether p is an integer or float kind.
func (p Primitive) IsNumeric() bool {
	return signedIntKinds[p] || unsignedIntKinds[p] || floatKinds[p]
}

// IsInt reports whether p is a signed or unsigned integer kind.
func (p Primitive) IsInt() bool {
	return signedIntKinds[p] || unsignedIntKinds[p]
}

// IsFloat reports whether p is a float kind.
func (p Primitive) IsFloat() bool {
	return floatKinds[p]
}

// Convenience predicates mirroring TypeBase::isNumeric/isBool/... from the
// original compiler, implemented against the Type interface so callers
// don't need to type-switch at every call site.

func IsPrimitive(t Type) bool { return t.Kind() == PrimitiveKind }

func IsNumeric(t Type) bool {
	p, ok := t.(*PrimitiveType)
	return ok && p.Primitive.IsNumeric()
}

func IsInt(t Type) bool {
	p, ok := t.(*PrimitiveType)
	return ok && p.Primitive.IsInt()
}

func IsFloat(t Type) bool {
	p, ok := t.(*PrimitiveType)
	return ok && p.Primitive.IsFloat()
}

func IsBool(t Type) bool {
	p, ok := t.(*PrimitiveType)
	return ok && p.Primitive == Bool
}

func IsString(t Type) bool {
	p, ok := t.(*PrimitiveType)
	return ok && p.Primitive == String
}

func IsDynamic(t Type) bool {
	p, ok := t.(*PrimitiveType)
	return ok && p.Primitive == Dynamic
}

func IsNothing(t Type) bool {
	p, ok := t.(*PrimitiveType)
	return ok && p.Primitive == Nothing
}

// ArrayType is a resolved homogeneous array of ElementType.
type ArrayType struct {
	ElementType Type
}

func (t *ArrayType) Kind() Kind     { return ArrayKind }
func (t *ArrayType) String() string { return "[" + t.ElementType.String() + "]" }

func (t *ArrayType) ToTypename() typename.Typename {
	zero := lexerZeroToken()
	return typename.NewParametric(typename.NewBasic("Array", zero), []typename.Typename{t.ElementType.ToTypename()}, zero)
}

func (t *ArrayType) Equivalent(other Type) bool {
	o, ok := other.(*ArrayType)
	return ok && t.ElementType.Equivalent(o.ElementType)
}

func (t *ArrayType) Compatible(other Type) bool {
	if IsDynamic(other) {
		return true
	}
	o, ok := other.(*ArrayType)
	return ok && t.ElementType.Compatible(o.ElementType)
}

// FunctionType is a resolved function signature: return type, ordered
// parameter types, and flags distinguishing methods (which bind an
// implicit receiver) and natives (whose body is supplied outside Enact
// source, e.g. print/put/dis).
type FunctionType struct {
	ReturnType    Type
	ParameterTypes []Type
	IsMethod      bool
	IsNative      bool
}

func (t *FunctionType) Kind() Kind { return FunctionKind }

func (t *FunctionType) String() string {
	s := "("
	for i, p := range t.ParameterTypes {
		if i > 0 {
			s += ", "
		}
		s += p.String()
	}
	return s + ") => " + t.ReturnType.String()
}

func (t *FunctionType) ToTypename() typename.Typename {
	zero := lexerZeroToken()
	params := make([]typename.Typename, len(t.ParameterTypes))
	for i, p := range t.ParameterTypes {
		params[i] = p.ToTypename()
	}
	return typename.NewFunction(t.ReturnType.ToTypename(), params, zero)
}

func (t *FunctionType) Equivalent(other Type) bool {
	o, ok := other.(*FunctionType)
	if !ok {
		return false
	}
	if !t.ReturnType.Equivalent(o.ReturnType) {
		return false
	}
	if len(t.ParameterTypes) != len(o.ParameterTypes) {
		return false
	}
	for i := range t.ParameterTypes {
		if !t.ParameterTypes[i].Equivalent(o.ParameterTypes[i]) {
			return false
		}
	}
	return true
}

func (t *FunctionType) Compatible(other Type) bool {
	if IsDynamic(other) {
		return true
	}
	o, ok := other.(*FunctionType)
	if !ok {
		return false
	}
	if !t.ReturnType.Compatible(o.ReturnType) {
		return false
	}
	if len(t.ParameterTypes) != len(o.ParameterTypes) {
		return false
	}
	for i := range t.ParameterTypes {
		if !t.ParameterTypes[i].Compatible(o.ParameterTypes[i]) {
			return false
		}
	}
	return true
}

// TraitType is a named, ordered set of method signatures a struct may
// implement.
type TraitType struct {
	Name    string
	Methods *OrderedMap[Type]
}

func (t *TraitType) Kind() Kind     { return TraitKind }
func (t *TraitType) String() string { return t.Name }

func (t *TraitType) ToTypename() typename.Typename {
	return typename.NewBasic(t.Name, lexerZeroToken())
}

func (t *TraitType) Equivalent(other Type) bool {
	o, ok := other.(*TraitType)
	return ok && t.Name == o.Name
}

func (t *TraitType) Compatible(other Type) bool {
	if IsDynamic(other) {
		return true
	}
	return t.Equivalent(other)
}

// GetMethod looks up a trait method's function type by name.
func (t *TraitType) GetMethod(name string) (Type, bool) {
	return t.Methods.At(name)
}

// StructType is a named record: the traits it implements, its ordered
// fields, and its ordered methods.
type StructType struct {
	Name    string
	Traits  []*TraitType
	Fields  *OrderedMap[Type]
	Methods *OrderedMap[Type]
}

func (t *StructType) Kind() Kind     { return StructKind }
func (t *StructType) String() string { return t.Name }

func (t *StructType) ToTypename() typename.Typename {
	return typename.NewBasic(t.Name, lexerZeroToken())
}

func (t *StructType) Equivalent(other Type) bool {
	o, ok := other.(*StructType)
	return ok && t.Name == o.Name
}

func (t *StructType) Compatible(other Type) bool {
	if IsDynamic(other) {
		return true
	}
	if t.Equivalent(other) {
		return true
	}
	if trait, ok := other.(*TraitType); ok {
		return t.HasTrait(trait)
	}
	return false
}

// HasTrait reports whether this struct implements trait (compared by
// name, matching TypeBase::operator== for TRAIT kinds).
func (t *StructType) HasTrait(trait *TraitType) bool {
	_, ok := t.FindTrait(trait)
	return ok
}

// FindTrait returns the index of trait in this struct's ordered trait
// list, if implemented.
func (t *StructType) FindTrait(trait *TraitType) (int, bool) {
	for i, impl := range t.Traits {
		if impl.Equivalent(trait) {
			return i, true
		}
	}
	return 0, false
}

// GetProperty looks up a field or method by name, fields taking priority
// (matching the original compiler's getProperty, which checks fields
// first then falls back to methods).
func (t *StructType) GetProperty(name string) (Type, bool) {
	if field, ok := t.Fields.At(name); ok {
		return field, true
	}
	return t.Methods.At(name)
}

// GetField looks up a field's type by name.
func (t *StructType) GetField(name string) (Type, bool) {
	return t.Fields.At(name)
}

// FindField returns a field's position among the struct's ordered fields.
func (t *StructType) FindField(name string) (int, bool) {
	return t.Fields.Find(name)
}

// GetMethod looks up a method's function type by name.
func (t *StructType) GetMethod(name string) (Type, bool) {
	return t.Methods.At(name)
}

// FindMethod returns a method's position among the struct's ordered
// methods.
func (t *StructType) FindMethod(name string) (int, bool) {
	return t.Methods.Find(name)
}

// ConstructorType is the callable that builds a StructType instance. It
// carries the struct's associated (static) properties separately from
// the struct's own instance fields/methods.
type ConstructorType struct {
	StructType       *StructType
	AssocProperties  *OrderedMap[Type]
}

func (t *ConstructorType) Kind() Kind     { return ConstructorKind }
func (t *ConstructorType) String() string { return t.StructType.Name }

func (t *ConstructorType) ToTypename() typename.Typename {
	return typename.NewBasic(t.StructType.Name, lexerZeroToken())
}

func (t *ConstructorType) Equivalent(other Type) bool {
	o, ok := other.(*ConstructorType)
	return ok && t.StructType.Equivalent(o.StructType)
}

func (t *ConstructorType) Compatible(other Type) bool {
	if IsDynamic(other) {
		return true
	}
	return t.Equivalent(other)
}

// GetAssocProperty looks up a constructor's associated property by name.
func (t *ConstructorType) GetAssocProperty(name string) (Type, bool) {
	return t.AssocProperties.At(name)
}

// FindAssocProperty returns an associated property's declaration order
// position.
func (t *ConstructorType) FindAssocProperty(name string) (int, bool) {
	return t.AssocProperties.Find(name)
}
