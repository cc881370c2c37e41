package datas

import (
	"github.com/iammosespaulr/noms/chunks"
	"github.com/iammosespaulr/noms/d"
	"github.com/iammosespaulr/noms/ref"
	"github.com/iammosespaulr/noms/types"
)

// cachingValueStore is the DataStore's read-through value layer: decoded
// values are cached by chunk ref, and writes of chunks the cache believes
// present are elided. The cache stores decode handles, so concurrent reads of
// the same ref share one decode (see lru_cache.go).
type cachingValueStore struct {
	cs    chunks.ChunkStore
	cache valueCache
}

func newCachingValueStore(cs chunks.ChunkStore, cacheSize uint64) cachingValueStore {
	var cache valueCache = noopCache{}
	if cacheSize > 0 {
		cache = newLRUCache(cacheSize)
	}
	return cachingValueStore{cs, cache}
}

// ReadValue reads and decodes the value at r. It is not considered an error
// for the requested chunk to be absent; in this case, the function simply
// returns nil (and the miss itself is cached, at zero cost to the byte
// budget).
func (cvs *cachingValueStore) ReadValue(r ref.Ref) types.Value {
	if rec, ok := cvs.cache.entry(r); ok {
		return rec.value()
	}

	// The pending record goes in before the decode so that a concurrent
	// reader of the same ref blocks on it rather than decoding twice.
	rec := newPendingRecord()
	cvs.cache.add(r, 0, rec)

	c := cvs.cs.Get(r)
	v := types.DecodeChunk(c)
	rec.resolve(v)
	cvs.cache.add(r, uint64(len(c.Data())), rec)
	return v
}

// WriteValue encodes v, writes the resulting chunk unless the cache believes
// it already present, and returns a typed ref to it. Writing is idempotent
// against both the chunk store and the cache.
func (cvs *cachingValueStore) WriteValue(v types.Value) types.Ref {
	d.Chk.NotNil(v, "Cannot write a nil Value")

	c := types.EncodeValue(v)
	d.Chk.False(c.IsEmpty(), "WriteValue produced an empty chunk")
	target := c.Ref()
	r := types.NewTypedRef(types.MakeRefType(v.Type()), target)

	if rec, ok := cvs.cache.entry(target); ok && rec.present() {
		return r
	}

	cvs.cs.Put(c)
	cvs.cache.add(target, uint64(len(c.Data())), newResolvedRecord(v))
	return r
}

func (cvs *cachingValueStore) Root() ref.Ref {
	return cvs.cs.Root()
}

func (cvs *cachingValueStore) UpdateRoot(current, last ref.Ref) bool {
	return cvs.cs.UpdateRoot(current, last)
}
