package types

import "github.com/iammosespaulr/noms/ref"

type Bool bool

func (v Bool) Equals(other Value) bool {
	if other, ok := other.(Bool); ok {
		return v == other
	}
	return false
}

func (v Bool) Ref() ref.Ref {
	return getRef(v)
}

func (v Bool) Chunks() []Ref {
	return nil
}

func (v Bool) Type() *Type {
	return BoolType
}

type Int64 int64

func (v Int64) Equals(other Value) bool {
	if other, ok := other.(Int64); ok {
		return v == other
	}
	return false
}

func (v Int64) Ref() ref.Ref {
	return getRef(v)
}

func (v Int64) Chunks() []Ref {
	return nil
}

func (v Int64) Type() *Type {
	return Int64Type
}

type Uint64 uint64

func (v Uint64) Equals(other Value) bool {
	if other, ok := other.(Uint64); ok {
		return v == other
	}
	return false
}

func (v Uint64) Ref() ref.Ref {
	return getRef(v)
}

func (v Uint64) Chunks() []Ref {
	return nil
}

func (v Uint64) Type() *Type {
	return Uint64Type
}

type Float64 float64

func (v Float64) Equals(other Value) bool {
	if other, ok := other.(Float64); ok {
		return v == other
	}
	return false
}

func (v Float64) Ref() ref.Ref {
	return getRef(v)
}

func (v Float64) Chunks() []Ref {
	return nil
}

func (v Float64) Type() *Type {
	return Float64Type
}
