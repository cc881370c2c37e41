package types

import (
	"github.com/iammosespaulr/noms/chunks"
	"github.com/iammosespaulr/noms/ref"
)

// ValueStore is the plain, uncached ValueReadWriter over a ChunkStore. The
// cached implementation lives in datas; this one is used by tests in this
// package and anywhere caching is unwanted.
type ValueStore struct {
	cs chunks.ChunkStore
}

func NewValueStore(cs chunks.ChunkStore) *ValueStore {
	return &ValueStore{cs}
}

// NewTestValueStore creates a ValueStore backed by a chunks.TestStore.
func NewTestValueStore() *ValueStore {
	return &ValueStore{chunks.NewTestStore()}
}

// ReadValue reads and decodes a value. It is not considered an error for the
// requested chunk to be absent; in this case, the function simply returns nil.
func (vs *ValueStore) ReadValue(r ref.Ref) Value {
	return DecodeChunk(vs.cs.Get(r))
}

func (vs *ValueStore) WriteValue(v Value) Ref {
	c := EncodeValue(v)
	vs.cs.Put(c)
	return NewTypedRef(MakeRefType(v.Type()), c.Ref())
}
