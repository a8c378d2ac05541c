/*
File    : enact/types/type_test.go
*/
package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrimitiveEquivalence(t *testing.T) {
	assert.True(t, IntType.Equivalent(IntType))
	assert.False(t, IntType.Equivalent(FloatType))
	assert.False(t, IntType.Equivalent(&PrimitiveType{Primitive: I8}))
}

func TestPrimitiveCompatibility(t *testing.T) {
	assert.True(t, IntType.Compatible(IntType))
	assert.True(t, IntType.Compatible(DynamicType))
	assert.True(t, DynamicType.Compatible(IntType))
	assert.True(t, IntType.Compatible(&PrimitiveType{Primitive: I64}))
	assert.False(t, IntType.Compatible(StringType))
	assert.False(t, IntType.Compatible(FloatType))
}

func TestArrayTypeEquivalence(t *testing.T) {
	a := &ArrayType{ElementType: IntType}
	b := &ArrayType{ElementType: IntType}
	c := &ArrayType{ElementType: StringType}

	assert.True(t, a.Equivalent(b))
	assert.False(t, a.Equivalent(c))
}

func TestFunctionTypeEquivalence(t *testing.T) {
	f1 := &FunctionType{ReturnType: NothingType, ParameterTypes: []Type{DynamicType}, IsNative: true}
	f2 := &FunctionType{ReturnType: NothingType, ParameterTypes: []Type{DynamicType}, IsNative: true}
	f3 := &FunctionType{ReturnType: StringType, ParameterTypes: []Type{DynamicType}, IsNative: true}

	assert.True(t, f1.Equivalent(f2))
	assert.False(t, f1.Equivalent(f3))
}

func TestStructTraitConformance(t *testing.T) {
	printable := &TraitType{Name: "Printable", Methods: NewOrderedMap[Type]()}
	printable.Methods.Insert("show", &FunctionType{ReturnType: StringType, IsMethod: true})

	fields := NewOrderedMap[Type]()
	fields.Insert("x", IntType)
	fields.Insert("y", IntType)

	methods := NewOrderedMap[Type]()
	methods.Insert("show", &FunctionType{ReturnType: StringType, IsMethod: true})

	point := &StructType{Name: "Point", Traits: []*TraitType{printable}, Fields: fields, Methods: methods}

	assert.True(t, point.HasTrait(printable))
	assert.True(t, point.Compatible(printable))

	idx, ok := point.FindField("y")
	assert.True(t, ok)
	assert.Equal(t, 1, idx)

	notImplemented := &TraitType{Name: "Comparable", Methods: NewOrderedMap[Type]()}
	assert.False(t, point.HasTrait(notImplemented))
}

func TestOrderedMapPreservesInsertionOrder(t *testing.T) {
	m := NewOrderedMap[Type]()
	m.Insert("b", IntType)
	m.Insert("a", StringType)
	m.Insert("c", BoolType)

	assert.Equal(t, []string{"b", "a", "c"}, m.Keys())

	v, ok := m.AtIndex(1)
	assert.True(t, ok)
	assert.Equal(t, StringType, v)

	idx, ok := m.Find("c")
	assert.True(t, ok)
	assert.Equal(t, 2, idx)
}

func TestConstructorType(t *testing.T) {
	fields := NewOrderedMap[Type]()
	fields.Insert("x", IntType)
	st := &StructType{Name: "Point", Fields: fields, Methods: NewOrderedMap[Type]()}

	assoc := NewOrderedMap[Type]()
	assoc.Insert("origin", &FunctionType{ReturnType: st, IsNative: false})

	ctor := &ConstructorType{StructType: st, AssocProperties: assoc}

	prop, ok := ctor.GetAssocProperty("origin")
	assert.True(t, ok)
	assert.Equal(t, st, prop.(*FunctionType).ReturnType)
}
