package types

import (
	"github.com/iammosespaulr/noms/d"
	"github.com/iammosespaulr/noms/ref"
)

// Ref is a value holding the hash of another value, together with the type of
// its target. Two Refs are equal iff their target hashes are equal.
type Ref struct {
	target ref.Ref
	t      *Type
	r      *ref.Ref
}

var refOfValueType = MakeRefType(ValueType)

// NewRef creates a Ref<Value> to target.
func NewRef(target ref.Ref) Ref {
	return Ref{target, refOfValueType, &ref.Ref{}}
}

// NewTypedRef creates a ref of the given Ref<T> type to target.
func NewTypedRef(t *Type, target ref.Ref) Ref {
	d.Chk.Equal(RefKind, t.Kind())
	return Ref{target, t, &ref.Ref{}}
}

func (r Ref) TargetRef() ref.Ref {
	return r.target
}

// TargetValue reads and decodes the value this ref points at.
func (r Ref) TargetValue(vr ValueReader) Value {
	return vr.ReadValue(r.target)
}

func (r Ref) Equals(other Value) bool {
	if other, ok := other.(Ref); ok {
		return r.target == other.target
	}
	return false
}

func (r Ref) Ref() ref.Ref {
	return EnsureRef(r.r, r)
}

func (r Ref) Chunks() []Ref {
	return []Ref{r}
}

func (r Ref) Type() *Type {
	return r.t
}
