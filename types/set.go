package types

import (
	"sort"

	"github.com/iammosespaulr/noms/d"
	"github.com/iammosespaulr/noms/ref"
)

type setData []Value // sorted by Ref()

// Set is an immutable set of values, deduplicated and ordered by content
// hash. Mutating operations return a new Set.
type Set struct {
	data setData
	t    *Type
	ref  *ref.Ref
}

var setOfValueType = MakeSetType(ValueType)

func NewSet(v ...Value) Set {
	return newTypedSet(setOfValueType, buildSetData(nil, v))
}

func NewTypedSet(t *Type, v ...Value) Set {
	d.Chk.Equal(SetKind, t.Kind())
	return newTypedSet(t, buildSetData(nil, v))
}

func newTypedSet(t *Type, data setData) Set {
	return Set{data, t, &ref.Ref{}}
}

func (s Set) Empty() bool {
	return s.Len() == uint64(0)
}

func (s Set) Len() uint64 {
	return uint64(len(s.data))
}

func (s Set) Has(v Value) bool {
	idx := indexSetData(s.data, v.Ref())
	return idx < len(s.data) && s.data[idx].Equals(v)
}

func (s Set) Insert(values ...Value) Set {
	return newTypedSet(s.t, buildSetData(s.data, values))
}

func (s Set) Remove(values ...Value) Set {
	data := copySetData(s.data)
	for _, v := range values {
		if v != nil {
			idx := indexSetData(data, v.Ref())
			if idx < len(data) && data[idx].Equals(v) {
				data = append(data[:idx], data[idx+1:]...)
			}
		}
	}
	return newTypedSet(s.t, data)
}

func (s Set) Union(others ...Set) (result Set) {
	result = s
	for _, other := range others {
		other.IterAll(func(v Value) {
			result = result.Insert(v)
		})
	}
	return result
}

type setIterCallback func(v Value) bool
type setIterAllCallback func(v Value)

// Iter calls cb for each element in hash order, stopping early if cb returns
// true.
func (s Set) Iter(cb setIterCallback) {
	for _, v := range s.data {
		if cb(v) {
			break
		}
	}
}

func (s Set) IterAll(cb setIterAllCallback) {
	for _, v := range s.data {
		cb(v)
	}
}

func (s Set) Equals(other Value) bool {
	return other != nil && s.Ref() == other.Ref()
}

func (s Set) Ref() ref.Ref {
	return EnsureRef(s.ref, s)
}

func (s Set) Chunks() (chunks []Ref) {
	for _, v := range s.data {
		chunks = append(chunks, v.Chunks()...)
	}
	return
}

func (s Set) Type() *Type {
	return s.t
}

func (s Set) elemType() *Type {
	return s.t.ElemType()
}

func copySetData(m setData) setData {
	r := make(setData, len(m))
	copy(r, m)
	return r
}

func buildSetData(old setData, values []Value) setData {
	data := copySetData(old)
	for _, v := range values {
		d.Chk.NotNil(v)
		r := v.Ref()
		idx := indexSetData(data, r)
		if idx < len(data) && data[idx].Ref() == r {
			continue
		}
		data = append(data, nil)
		copy(data[idx+1:], data[idx:])
		data[idx] = v
	}
	return data
}

func indexSetData(m setData, r ref.Ref) int {
	return sort.Search(len(m), func(i int) bool {
		return !ref.Less(m[i].Ref(), r)
	})
}
