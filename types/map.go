package types

import (
	"sort"

	"github.com/iammosespaulr/noms/d"
	"github.com/iammosespaulr/noms/ref"
)

type mapEntry struct {
	key   Value
	value Value
}

type mapData []mapEntry // sorted by key.Ref()

// Map is an immutable map from values to values, ordered by key hash.
// Mutating operations return a new Map.
type Map struct {
	data mapData
	t    *Type
	ref  *ref.Ref
}

var mapOfValueType = MakeMapType(ValueType, ValueType)

func NewMap(kv ...Value) Map {
	return newTypedMap(mapOfValueType, buildMapData(nil, kv))
}

func NewTypedMap(t *Type, kv ...Value) Map {
	d.Chk.Equal(MapKind, t.Kind())
	return newTypedMap(t, buildMapData(nil, kv))
}

func newTypedMap(t *Type, data mapData) Map {
	return Map{data, t, &ref.Ref{}}
}

func (m Map) Empty() bool {
	return m.Len() == uint64(0)
}

func (m Map) Len() uint64 {
	return uint64(len(m.data))
}

func (m Map) Has(key Value) bool {
	_, ok := m.MaybeGet(key)
	return ok
}

func (m Map) MaybeGet(key Value) (Value, bool) {
	idx := indexMapData(m.data, key.Ref())
	if idx < len(m.data) {
		entry := m.data[idx]
		if entry.key.Equals(key) {
			return entry.value, true
		}
	}
	return nil, false
}

func (m Map) Get(key Value) Value {
	v, ok := m.MaybeGet(key)
	d.Chk.True(ok, "Map has no key %s", key.Ref())
	return v
}

func (m Map) Set(key, value Value) Map {
	return newTypedMap(m.t, buildMapData(m.data, []Value{key, value}))
}

func (m Map) Remove(key Value) Map {
	idx := indexMapData(m.data, key.Ref())
	if idx == len(m.data) || !m.data[idx].key.Equals(key) {
		return m
	}

	data := make(mapData, 0, len(m.data)-1)
	data = append(data, m.data[:idx]...)
	data = append(data, m.data[idx+1:]...)
	return newTypedMap(m.t, data)
}

type mapIterCallback func(key, value Value) bool
type mapIterAllCallback func(key, value Value)

// Iter calls cb for each entry in key-hash order, stopping early if cb
// returns true.
func (m Map) Iter(cb mapIterCallback) {
	for _, entry := range m.data {
		if cb(entry.key, entry.value) {
			break
		}
	}
}

func (m Map) IterAll(cb mapIterAllCallback) {
	for _, entry := range m.data {
		cb(entry.key, entry.value)
	}
}

func (m Map) Equals(other Value) bool {
	return other != nil && m.Ref() == other.Ref()
}

func (m Map) Ref() ref.Ref {
	return EnsureRef(m.ref, m)
}

func (m Map) Chunks() (chunks []Ref) {
	for _, entry := range m.data {
		chunks = append(chunks, entry.key.Chunks()...)
		chunks = append(chunks, entry.value.Chunks()...)
	}
	return
}

func (m Map) Type() *Type {
	return m.t
}

func buildMapData(old mapData, kv []Value) mapData {
	d.Chk.Equal(0, len(kv)%2, "Map requires even number of key/value arguments")

	data := make(mapData, len(old), len(old)+len(kv)/2)
	copy(data, old)
	for i := 0; i < len(kv); i += 2 {
		k, v := kv[i], kv[i+1]
		d.Chk.NotNil(k)
		d.Chk.NotNil(v)
		idx := indexMapData(data, k.Ref())
		if idx < len(data) && data[idx].key.Ref() == k.Ref() {
			data[idx] = mapEntry{k, v}
			continue
		}
		data = append(data, mapEntry{})
		copy(data[idx+1:], data[idx:])
		data[idx] = mapEntry{k, v}
	}
	return data
}

func indexMapData(m mapData, r ref.Ref) int {
	return sort.Search(len(m), func(i int) bool {
		return !ref.Less(m[i].key.Ref(), r)
	})
}
