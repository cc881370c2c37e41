package types

import (
	"github.com/iammosespaulr/noms/d"
	"github.com/iammosespaulr/noms/ref"
)

type structData map[string]Value

// Struct is an immutable record with named fields, laid out by its struct
// type's field order.
type Struct struct {
	data structData
	t    *Type
	ref  *ref.Ref
}

func NewStruct(t *Type, data map[string]Value) Struct {
	desc, ok := t.Desc.(StructDesc)
	d.Chk.True(ok, "NewStruct() requires a struct type")

	newData := make(structData, len(desc.Fields))
	for _, f := range desc.Fields {
		v, ok := data[f.Name]
		d.Chk.True(ok, "Missing required field %s", f.Name)
		newData[f.Name] = v
	}
	return structFromData(t, newData)
}

func structFromData(t *Type, data structData) Struct {
	return Struct{data, t, &ref.Ref{}}
}

func (s Struct) MaybeGet(n string) (Value, bool) {
	v, ok := s.data[n]
	return v, ok
}

func (s Struct) Get(n string) Value {
	v, ok := s.MaybeGet(n)
	d.Chk.True(ok, `Struct has no field "%s"`, n)
	return v
}

// Set returns a new struct with field n set to v. The field must exist in the
// struct's type.
func (s Struct) Set(n string, v Value) Struct {
	_, ok := s.data[n]
	d.Chk.True(ok, `Struct has no field "%s"`, n)

	data := make(structData, len(s.data))
	for k, val := range s.data {
		data[k] = val
	}
	data[n] = v
	return structFromData(s.t, data)
}

func (s Struct) Equals(other Value) bool {
	return other != nil && s.Ref() == other.Ref()
}

func (s Struct) Ref() ref.Ref {
	return EnsureRef(s.ref, s)
}

func (s Struct) Chunks() (chunks []Ref) {
	for _, f := range s.desc().Fields {
		chunks = append(chunks, s.data[f.Name].Chunks()...)
	}
	return
}

func (s Struct) Type() *Type {
	return s.t
}

func (s Struct) desc() StructDesc {
	return s.t.Desc.(StructDesc)
}
