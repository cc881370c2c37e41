package types

import (
	"github.com/iammosespaulr/noms/d"
	"github.com/iammosespaulr/noms/ref"
)

// Type defines and describes Noms types, both custom and built-in.
// Desc provides the details: it may contain only a NomsKind, in the case of
// primitives, or it may contain additional information -- e.g. element Types
// for compound type specializations, field descriptions for structs.
// Checking Kind() allows code to understand how to interpret the rest.
//
// Types are themselves values, so they are hashable and can be written to a
// chunk store. Two independently constructed types with the same structure
// encode to the same bytes and therefore have equal refs.
type Type struct {
	Desc TypeDesc

	ref *ref.Ref
}

type TypeDesc interface {
	Kind() NomsKind
}

type PrimitiveDesc NomsKind

func (p PrimitiveDesc) Kind() NomsKind {
	return NomsKind(p)
}

// CompoundDesc describes a Ref, Set or Map type: the kind plus its element
// type(s). Maps have two element types, keys then values.
type CompoundDesc struct {
	kind      NomsKind
	ElemTypes []*Type
}

func (c CompoundDesc) Kind() NomsKind {
	return c.kind
}

// StructDesc describes a struct type: a name plus an ordered list of fields.
// Field order is part of the type; the canonical encoding of a struct value
// writes fields in this order.
type StructDesc struct {
	Name   string
	Fields []Field
}

func (s StructDesc) Kind() NomsKind {
	return StructKind
}

type Field struct {
	Name string
	T    *Type
}

func (t *Type) Kind() NomsKind {
	return t.Desc.Kind()
}

// Name returns the name of a struct type. Only struct types are named.
func (t *Type) Name() string {
	desc, ok := t.Desc.(StructDesc)
	d.Chk.True(ok, "Name() is only valid on struct types")
	return desc.Name
}

// ElemType returns the single element type of a Ref or Set type.
func (t *Type) ElemType() *Type {
	desc, ok := t.Desc.(CompoundDesc)
	d.Chk.True(ok, "ElemType() is only valid on compound types")
	d.Chk.Equal(1, len(desc.ElemTypes))
	return desc.ElemTypes[0]
}

func (t *Type) Equals(other Value) bool {
	return other != nil && t.Ref() == other.Ref()
}

func (t *Type) Ref() ref.Ref {
	return EnsureRef(t.ref, t)
}

func (t *Type) Chunks() []Ref {
	return nil
}

func (t *Type) Type() *Type {
	return TypeType
}

var (
	BoolType    = makePrimitiveType(BoolKind)
	Int64Type   = makePrimitiveType(Int64Kind)
	Uint64Type  = makePrimitiveType(Uint64Kind)
	Float64Type = makePrimitiveType(Float64Kind)
	StringType  = makePrimitiveType(StringKind)
	ValueType   = makePrimitiveType(ValueKind)
	TypeType    = makePrimitiveType(TypeKind)

	primitiveTypes = map[NomsKind]*Type{
		BoolKind:    BoolType,
		Int64Kind:   Int64Type,
		Uint64Kind:  Uint64Type,
		Float64Kind: Float64Type,
		StringKind:  StringType,
		ValueKind:   ValueType,
		TypeKind:    TypeType,
	}
)

func makePrimitiveType(k NomsKind) *Type {
	return &Type{Desc: PrimitiveDesc(k), ref: &ref.Ref{}}
}

// MakePrimitiveType returns the canonical (memoized) *Type for a primitive
// kind. The same pointer is returned across calls.
func MakePrimitiveType(k NomsKind) *Type {
	t, ok := primitiveTypes[k]
	d.Chk.True(ok, "%s is not a primitive kind", k)
	return t
}

func MakeRefType(elemType *Type) *Type {
	return &Type{Desc: CompoundDesc{RefKind, []*Type{elemType}}, ref: &ref.Ref{}}
}

func MakeSetType(elemType *Type) *Type {
	return &Type{Desc: CompoundDesc{SetKind, []*Type{elemType}}, ref: &ref.Ref{}}
}

func MakeMapType(keyType, valType *Type) *Type {
	return &Type{Desc: CompoundDesc{MapKind, []*Type{keyType, valType}}, ref: &ref.Ref{}}
}

// MakeStructType creates a struct type. Recursive types are expressed by
// mutating a field's T after creation to point back at the returned type, the
// same way the Commit type is registered in datas.
func MakeStructType(name string, fields []Field) *Type {
	return &Type{Desc: StructDesc{name, fields}, ref: &ref.Ref{}}
}
